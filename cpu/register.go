package cpu

const (
	REGISTER_COUNT = 8 // Number of general purpose registers.
	REG_SP         = 7 // Register used as the stack pointer.
)

// Registers is the general purpose register bank.
// All arithmetic on register values wraps modulo 256.
type Registers [REGISTER_COUNT]uint8

// Read returns the value of register index.
func (reg *Registers) Read(index uint8) (value uint8, err error) {
	if int(index) >= len(reg) {
		err = ErrRegister(index)
		return
	}

	value = reg[index]
	return
}

// Write sets the value of register index.
func (reg *Registers) Write(index uint8, value uint8) (err error) {
	if int(index) >= len(reg) {
		err = ErrRegister(index)
		return
	}

	reg[index] = value
	return
}

// Flags holds the condition codes set by CMP.
type Flags uint8

const (
	FL_EQUAL   = Flags(1 << 0) // a == b
	FL_GREATER = Flags(1 << 1) // a > b
	FL_LESS    = Flags(1 << 2) // a < b
)

// Equal returns true if the last compare was equal.
func (fl Flags) Equal() bool {
	return fl&FL_EQUAL != 0
}

// Greater returns true if the last compare was greater-than.
func (fl Flags) Greater() bool {
	return fl&FL_GREATER != 0
}

// Less returns true if the last compare was less-than.
func (fl Flags) Less() bool {
	return fl&FL_LESS != 0
}

func (fl Flags) String() (out string) {
	for _, bit := range []struct {
		flag Flags
		name string
	}{{FL_LESS, "L"}, {FL_GREATER, "G"}, {FL_EQUAL, "E"}} {
		if fl&bit.flag != 0 {
			out += bit.name
		} else {
			out += "-"
		}
	}
	return
}
