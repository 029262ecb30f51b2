package cpu

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assemble(t *testing.T, asm *Assembler, program ...string) (prog *Program) {
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if !assert.NoError(t, err) {
		t.FailNow()
	}

	return
}

func TestAssembler(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	prog := assemble(t, asm)
	assert.Equal(0, len(prog.Statements))

	assert.Equal("0", asm.Equate["LINENO"])
	assert.Equal(fmt.Sprintf("%v", MEMORY_SIZE), asm.Equate["MEMORY_SIZE"])
	assert.Equal("1", asm.Equate["FL_EQUAL"])
	assert.Equal("2", asm.Equate["FL_GREATER"])
	assert.Equal("4", asm.Equate["FL_LESS"])
}

func TestAssemblerPrint(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		"; print8: Print the number 8",
		"LDI R0,8",
		"PRN R0",
		"HLT",
	)

	expected := []Statement{
		{2, 0, []string{"LDI", "R0", "8"}, []uint8{0x82, 0x00, 0x08}, ""},
		{3, 3, []string{"PRN", "R0"}, []uint8{0x47, 0x00}, ""},
		{4, 5, []string{"HLT"}, []uint8{0x01}, ""},
	}

	assert.Equal(expected, prog.Statements)
}

func TestAssemblerAlu(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		"LDI R0,8",
		"LDI R1,9",
		"MUL R0,R1",
		"ADD R0,R1",
		"CMP R0,R1",
		"PRN R0",
		"HLT",
	)

	assert.Equal([]uint8{
		0x82, 0, 8,
		0x82, 1, 9,
		0xa2, 0, 1,
		0xa0, 0, 1,
		0xa7, 0, 1,
		0x47, 0,
		0x01,
	}, prog.Binary())
}

func TestAssemblerCase(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		"ldi r3, 1",
		"push sp",
		"POP r7",
		"halt",
	)

	assert.Equal([]uint8{0x82, 3, 1, 0x45, 7, 0x46, 7, 0x01}, prog.Binary())
	assert.Equal([]string{"ldi", "r3", "1"}, prog.Statements[0].Words)
}

func TestAssemblerComment(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		"# full line comment",
		"",
		"   ; indented comment",
		"HLT ; trailing",
		"HLT # trailing",
		"LDI R0, ';' ; quoted",
		"LDI R1, '#' # quoted",
	)

	assert.Equal([]uint8{0x01, 0x01, 0x82, 0, ';', 0x82, 1, '#'}, prog.Binary())
	assert.Equal(4, prog.Statements[0].LineNo)
	assert.Equal(5, prog.Statements[1].LineNo)
}

func TestAssemblerCharacter(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		"LDI R0, 'A'",
		"LDI R1, '\\n'",
		"LDI R2, ','",
		".db 'h', 'i', '\\0'",
	)

	assert.Equal([]uint8{
		0x82, 0, 'A',
		0x82, 1, '\n',
		0x82, 2, ',',
		'h', 'i', 0,
	}, prog.Binary())
}

func TestAssemblerEquate(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("SP_INIT", "0")

	prog := assemble(t, asm,
		"START:",
		".equ COUNT 3",
		".equ ACC R2",
		"LDI R0, COUNT",
		"LDI R1, $(COUNT * 10 + 1)",
		"LDI ACC, $(MEMORY_SIZE - 1)",
		"LDI R3, ~0",
		"LDI R4, -128",
		"LDI R5, $(START + 2)",
		"LDI R6, SP_INIT",
		"LDI R0, $(FL_EQUAL | FL_LESS)",
	)

	assert.Equal([]uint8{
		0x82, 0, 3,
		0x82, 1, 31,
		0x82, 2, 255,
		0x82, 3, 0xff,
		0x82, 4, 0x80,
		0x82, 5, 2,
		0x82, 6, 0,
		0x82, 0, 5,
	}, prog.Binary())

	assert.Equal("3", asm.Equate["COUNT"])
	assert.Equal(0, asm.Label["START"])
}

func TestAssemblerLabel(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		"LDI R1, FUNC",
		"CALL R1",
		"HLT",
		"FUNC: ALSO_FUNC:",
		"LDI R0, 42",
		"PRN R0",
		"RET",
	)

	expected := []Statement{
		{1, 0, []string{"LDI", "R1", "FUNC"}, []uint8{0x82, 1, 6}, "FUNC"},
		{2, 3, []string{"CALL", "R1"}, []uint8{0x50, 1}, ""},
		{3, 5, []string{"HLT"}, []uint8{0x01}, ""},
		{5, 6, []string{"LDI", "R0", "42"}, []uint8{0x82, 0, 42}, ""},
		{6, 9, []string{"PRN", "R0"}, []uint8{0x47, 0}, ""},
		{7, 11, []string{"RET"}, []uint8{0x11}, ""},
	}

	assert.Equal(expected, prog.Statements)
	assert.Equal(6, asm.Label["FUNC"])
	assert.Equal(6, asm.Label["ALSO_FUNC"])

	// Parsing again starts from a clean slate.
	prog = assemble(t, asm, "FUNC: HLT")
	assert.Equal([]uint8{0x01}, prog.Binary())
	assert.Equal(0, asm.Label["FUNC"])
}

func TestAssemblerMacro(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		".macro PRINTN rn value",
		"LDI rn, value",
		"PRN rn",
		".endm",
		".macro SKIP",
		"LDI R6, @over",
		"JMP R6",
		".db 0xff",
		"@over:",
		".endm",
		"PRINTN R0 7",
		"SKIP",
		"SKIP",
		"HLT",
	)

	assert.Equal([]uint8{
		0x82, 0, 7,
		0x47, 0,
		0x82, 6, 11,
		0x54, 6,
		0xff,
		0x82, 6, 17,
		0x54, 6,
		0xff,
		0x01,
	}, prog.Binary())

	assert.Equal(2, prog.Statements[0].LineNo)
	assert.Equal([]string{"LDI", "R0", "7"}, prog.Statements[0].Words)
	assert.Equal(11, asm.Label["SKIP_2_over"])
	assert.Equal(17, asm.Label["SKIP_3_over"])

	// Macro arguments do not leak out as equates.
	_, ok := asm.Equate["rn"]
	assert.False(ok)
}

func TestAssemblerNestedMacro(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog := assemble(t, asm,
		".macro SET rn value",
		"LDI rn value",
		".endm",
		".macro SETBOTH value",
		"SET R0 value",
		"SET R1 $(~value)",
		".endm",
		"SETBOTH 0",
	)

	assert.Equal([]uint8{0x82, 0, 0, 0x82, 1, 0xff}, prog.Binary())
}

func TestAssemblerErrSyntax(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	// Various syntax errors
	table := [](struct {
		prog string
		line int
	}){
		{"DUP:\nDUP:\n", 2},
		{"1BAD: HLT", 1},
		{"FOO R0", 1},
		{"HLT R0", 1},
		{"HLT\n\nJMP\n", 3},
		{"LDI R0", 1},
		{"LDI R0 1 2", 1},
		{"LDI R9 1", 1},
		{"LDI 1 1", 1},
		{"PRN 0", 1},
		{"ADD R0 1", 1},
		{"LDI R0 256", 1},
		{"LDI R0 -129", 1},
		{"LDI R0 'ab'", 1},
		{"LDI R0 nowhere", 1},
		{"HLT\nLDI R0 nowhere", 2},
		{"LDI R0 $(\"aaa\")", 1},
		{"LDI R0 $(more(\"aaa\"))", 1},
		{"LDI R0 $(0x10000000000000000)", 1},
		{"LDI R0 $(1/0)", 1},
		{".db", 1},
		{".db 300", 1},
		{".equ", 1},
		{".equ A", 1},
		{".equ A 1\n.equ A 2\n", 2},
		{".macro\n.endm\n", 1},
		{".macro A B C\n.endm\nA 1\n", 3},
		{".macro A X\nLDI X 1\n.endm\nHLT\nA R9\n", 5},
		{".macro A B\n.macro C\n.endm\n.endm", 2},
		{".macro A B\n.endm\n.macro A\n.endm\n", 3},
		{".macro A B\n.endm\n.endm\n", 3},
		{".macro A\nHLT\n", 2},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		var se *ErrSyntax
		assert.NotNil(err, entry.prog)
		if err != nil {
			assert.True(errors.As(err, &se), entry.prog)
			assert.Equal(entry.line, se.LineNo, entry.prog)
		}
	}
}

func TestAssemblerErrIs(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}

	table := []struct {
		prog string
		err  error
	}{
		{"LDI R0 256", ErrValueRange},
		{"LDI R9 1", ErrRegisterInvalid},
		{"LDI R0", ErrOpcodeValueMissing},
		{"LDI R0 1 2", ErrOpcodeExtraArgs},
		{"NOP", ErrInstructionInvalid},
		{"A:\nA:", ErrLabelDuplicate},
		{".equ A 1\n.equ A 1", ErrEquateDuplicate},
		{".endm", ErrMacroLonelyEndm},
		{".macro A\n", ErrMacroLonely},
	}

	for _, entry := range table {
		_, err := asm.Parse(strings.NewReader(entry.prog))
		assert.ErrorIs(err, entry.err, entry.prog)
	}

	_, err := asm.Parse(strings.NewReader("JMP_TARGET:\nLDI R0 missing\n"))
	var missing ErrLabelMissing
	assert.True(errors.As(err, &missing))
	assert.Equal(ErrLabelMissing("missing"), missing)
}
