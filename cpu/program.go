package cpu

import (
	"iter"
)

// Statement is a line of assembled code, with its source location and
// generated bytes.
type Statement struct {
	LineNo    int
	Addr      int
	Words     []string
	Bytes     []uint8
	LinkLabel string
}

type Program struct {
	Statements []Statement
}

type Debug struct {
	*Statement
	Index int
}

// Debug returns the statement that generated the byte at addr.
func (prog *Program) Debug(addr int) (dbg Debug) {
	for n, st := range prog.Statements {
		if addr >= st.Addr && addr < st.Addr+len(st.Bytes) {
			dbg = Debug{
				Statement: &prog.Statements[n],
				Index:     addr - st.Addr,
			}
			break
		}
	}

	return
}

// Size returns the number of bytes of memory the program occupies.
func (prog *Program) Size() (size int) {
	for _, st := range prog.Statements {
		size = max(size, st.Addr+len(st.Bytes))
	}

	return
}

// Binary returns the memory image of the program, starting at address 0.
func (prog *Program) Binary() (bins []uint8) {
	bins = make([]uint8, prog.Size())
	for addr, code := range prog.Codes() {
		bins[addr] = code
	}

	return
}

// Codes iterates over the address and value of every byte in the program.
func (prog *Program) Codes() iter.Seq2[int, uint8] {
	return func(yield func(addr int, code uint8) bool) {
		for _, st := range prog.Statements {
			for n, code := range st.Bytes {
				if !yield(st.Addr+n, code) {
					return
				}
			}
		}
	}
}
