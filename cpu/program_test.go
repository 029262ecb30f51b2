package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Statements: []Statement{
			{LineNo: 1, Addr: 0, Words: []string{"LDI", "R0", "8"},
				Bytes: []uint8{uint8(OP_LDI), 0, 8}},
			{LineNo: 2, Addr: 3, Words: []string{"PRN", "R0"},
				Bytes: []uint8{uint8(OP_PRN), 0}},
			{LineNo: 4, Addr: 5, Words: []string{"HLT"},
				Bytes: []uint8{uint8(OP_HLT)}},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Statement)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.NotNil(dbg.Statement)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(4)
	assert.NotNil(dbg.Statement)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(5)
	assert.NotNil(dbg.Statement)
	assert.Equal(4, dbg.LineNo)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(6)
	assert.Nil(dbg.Statement)
	assert.Equal(0, dbg.Index)

	dbg = (&Program{}).Debug(0)
	assert.Nil(dbg.Statement)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()
	assert.Equal(6, prog.Size())
	assert.Equal([]uint8{0x82, 0, 8, 0x47, 0, 0x01}, prog.Binary())

	assert.Empty((&Program{}).Binary())
}

func TestProgram_Codes(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	var addrs []int
	for addr := range prog.Codes() {
		addrs = append(addrs, addr)
		if addr == 3 {
			break
		}
	}

	assert.Equal([]int{0, 1, 2, 3}, addrs)
}

func TestProgram_WriteImage(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	err := testProgram().WriteImage(output)
	assert.NoError(err)

	expected := []string{
		"10000010 # LDI R0 8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
		"",
	}
	assert.Equal(strings.Join(expected, "\n"), output.String())
}

func TestLoadImage(t *testing.T) {
	assert := assert.New(t)

	image := []string{
		"# print8.ls8: Print the number 8 on the screen",
		"",
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"   ",
		"00000001 # HLT",
		"0000000111111111 extra digits are ignored",
	}

	prog, err := LoadImage(strings.NewReader(strings.Join(image, "\n")))
	assert.NoError(err)
	assert.Equal([]uint8{0x82, 0, 8, 0x47, 0, 0x01, 0x01}, prog.Binary())

	dbg := prog.Debug(0)
	assert.Equal(3, dbg.LineNo)
	assert.Equal([]string{"LDI", "R0,8"}, dbg.Words)

	dbg = prog.Debug(5)
	assert.Equal(9, dbg.LineNo)
	assert.Equal([]string{"HLT"}, dbg.Words)

	dbg = prog.Debug(6)
	assert.Equal(10, dbg.LineNo)
	assert.Equal([]string{"11111111", "extra", "digits", "are", "ignored"}, dbg.Words)
}

func TestLoadImage_Short(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		line  string
		value uint8
	}{
		{"1", 1},
		{"0", 0},
		{"0101\t", 5},
		{"0101    ", 5},
		{"0101    # padded", 5},
		{"11 ", 3},
		{"0000011", 3},
	}

	for _, entry := range table {
		prog, err := LoadImage(strings.NewReader(entry.line + "\n"))
		if assert.NoError(err, entry.line) {
			assert.Equal([]uint8{entry.value}, prog.Binary(), entry.line)
		}
	}
}

func TestLoadImage_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	assert.NoError(testProgram().WriteImage(output))

	prog, err := LoadImage(output)
	assert.NoError(err)
	assert.Equal(testProgram().Binary(), prog.Binary())
	assert.Equal([]string{"LDI", "R0", "8"}, prog.Debug(0).Words)
}

func TestLoadImage_Errors(t *testing.T) {
	assert := assert.New(t)

	table := []struct {
		name   string
		image  string
		lineno int
	}{
		{"digit", "10000002", 1},
		{"gap", "0101 1", 1},
		{"sign", "1-000000", 1},
		{"later", "00000001\n\n1x000000 # bad", 3},
	}

	for _, entry := range table {
		_, err := LoadImage(strings.NewReader(entry.image))
		var syntax ErrImageSyntax
		assert.True(errors.As(err, &syntax), entry.name)
		assert.Equal(entry.lineno, syntax.LineNo, entry.name)
	}
}

func TestLoadImage_Empty(t *testing.T) {
	assert := assert.New(t)

	prog, err := LoadImage(strings.NewReader("# nothing here\n\n"))
	assert.NoError(err)
	assert.Equal(0, prog.Size())
}
