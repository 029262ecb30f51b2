package cpu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// LoadImage reads a program image: one byte per line, written as up to
// eight binary digits. Lines that do not start with '0' or '1' are ignored,
// as is anything after the eighth character. Whitespace within the first
// eight characters ends the number.
func LoadImage(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	prog = &Program{}

	var lineno int
	var addr int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		if len(text) == 0 || (text[0] != '0' && text[0] != '1') {
			continue
		}

		digits := text[:min(8, len(text))]

		var value uint64
		value, err = strconv.ParseUint(strings.TrimSpace(digits), 2, 8)
		if err != nil {
			err = ErrImageSyntax{LineNo: lineno, Line: text}
			return
		}

		comment := strings.TrimSpace(text[len(digits):])
		comment = strings.TrimPrefix(comment, "#")

		prog.Statements = append(prog.Statements, Statement{
			LineNo: lineno,
			Addr:   addr,
			Words:  strings.Fields(comment),
			Bytes:  []uint8{uint8(value)},
		})
		addr++
	}

	err = scanner.Err()

	return
}

// WriteImage writes the program as an image that LoadImage can read.
// The first byte of each statement is annotated with its source.
func (prog *Program) WriteImage(output io.Writer) (err error) {
	w := bufio.NewWriter(output)

	for _, st := range prog.Statements {
		for n, code := range st.Bytes {
			if n == 0 && len(st.Words) > 0 {
				_, err = fmt.Fprintf(w, "%08b # %s\n", code, strings.Join(st.Words, " "))
			} else {
				_, err = fmt.Fprintf(w, "%08b\n", code)
			}
			if err != nil {
				return
			}
		}
	}

	return w.Flush()
}
