package cpu

// Alu performs the requested ALU operation on two registers.
// ADD and MUL store their result in reg_a, modulo 256.
// CMP sets exactly one of the equal, greater or less flags.
func (cpu *Cpu) Alu(op AluOp, reg_a, reg_b uint8) (err error) {
	a, err := cpu.Register.Read(reg_a)
	if err != nil {
		return
	}
	b, err := cpu.Register.Read(reg_b)
	if err != nil {
		return
	}

	switch op {
	case ALU_OP_ADD:
		cpu.Register[reg_a] = a + b
	case ALU_OP_MUL:
		cpu.Register[reg_a] = a * b
	case ALU_OP_CMP:
		cpu.Fl = compare(a, b)
	default:
		err = ErrAluOp(op)
	}

	return
}

// compare returns the flags for a against b.
func compare(a, b uint8) Flags {
	switch {
	case a == b:
		return FL_EQUAL
	case a > b:
		return FL_GREATER
	default:
		return FL_LESS
	}
}
