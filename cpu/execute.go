package cpu

import (
	"errors"
)

var (
	regOnly = []OperandKind{OPERAND_REG}
	regReg  = []OperandKind{OPERAND_REG, OPERAND_REG}
	regImm  = []OperandKind{OPERAND_REG, OPERAND_IMM}
)

// opcodeTable decodes every known instruction.
var opcodeTable = map[Opcode]opcodeInfo{
	OP_HLT:  {nil, (*Cpu).opHlt},
	OP_LDI:  {regImm, (*Cpu).opLdi},
	OP_PRN:  {regOnly, (*Cpu).opPrn},
	OP_ADD:  {regReg, (*Cpu).opAdd},
	OP_MUL:  {regReg, (*Cpu).opMul},
	OP_CMP:  {regReg, (*Cpu).opCmp},
	OP_PUSH: {regOnly, (*Cpu).opPush},
	OP_POP:  {regOnly, (*Cpu).opPop},
	OP_CALL: {regOnly, (*Cpu).opCall},
	OP_RET:  {nil, (*Cpu).opRet},
	OP_JMP:  {regOnly, (*Cpu).opJmp},
	OP_JEQ:  {regOnly, (*Cpu).opJeq},
	OP_JNE:  {regOnly, (*Cpu).opJne},
}

func (cpu *Cpu) opHlt(args []uint8) (err error) {
	cpu.Running = false
	cpu.next = cpu.Pc
	return
}

func (cpu *Cpu) opLdi(args []uint8) (err error) {
	return cpu.Register.Write(args[0], args[1])
}

func (cpu *Cpu) opPrn(args []uint8) (err error) {
	value, err := cpu.Register.Read(args[0])
	if err != nil {
		return
	}

	if cpu.Output == nil {
		return ErrChannelInvalid
	}

	err = cpu.Output.Print(value)
	if err != nil {
		err = errors.Join(ErrChannelInvalid, err)
	}

	return
}

func (cpu *Cpu) opAdd(args []uint8) (err error) {
	return cpu.Alu(ALU_OP_ADD, args[0], args[1])
}

func (cpu *Cpu) opMul(args []uint8) (err error) {
	return cpu.Alu(ALU_OP_MUL, args[0], args[1])
}

func (cpu *Cpu) opCmp(args []uint8) (err error) {
	return cpu.Alu(ALU_OP_CMP, args[0], args[1])
}

// opPush decrements SP, then stores the register. PUSH R7 stores the
// decremented stack pointer.
func (cpu *Cpu) opPush(args []uint8) (err error) {
	value, err := cpu.Register.Read(args[0])
	if err != nil {
		return
	}

	sp := cpu.Register[REG_SP] - 1
	if args[0] == REG_SP {
		value = sp
	}

	err = cpu.Memory.Write(int(sp), value)
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = sp
	return
}

// opPop loads the register, then increments SP. POP R7 leaves the
// popped value plus one in the stack pointer.
func (cpu *Cpu) opPop(args []uint8) (err error) {
	_, err = cpu.Register.Read(args[0])
	if err != nil {
		return
	}

	value, err := cpu.Memory.Read(int(cpu.Register[REG_SP]))
	if err != nil {
		return
	}

	cpu.Register[args[0]] = value
	cpu.Register[REG_SP]++

	return
}

func (cpu *Cpu) opCall(args []uint8) (err error) {
	target, err := cpu.Register.Read(args[0])
	if err != nil {
		return
	}

	// The return address must lie within memory.
	if cpu.next >= len(cpu.Memory) {
		err = ErrAddress(cpu.next)
		return
	}

	err = cpu.Push(uint8(cpu.next))
	if err != nil {
		return
	}

	cpu.next = int(target)
	return
}

func (cpu *Cpu) opRet(args []uint8) (err error) {
	target, err := cpu.Pop()
	if err != nil {
		return
	}

	cpu.next = int(target)
	return
}

func (cpu *Cpu) opJmp(args []uint8) (err error) {
	target, err := cpu.Register.Read(args[0])
	if err != nil {
		return
	}

	cpu.next = int(target)
	return
}

func (cpu *Cpu) opJeq(args []uint8) (err error) {
	target, err := cpu.Register.Read(args[0])
	if err != nil {
		return
	}

	if cpu.Fl.Equal() {
		cpu.next = int(target)
	}
	return
}

func (cpu *Cpu) opJne(args []uint8) (err error) {
	target, err := cpu.Register.Read(args[0])
	if err != nil {
		return
	}

	if !cpu.Fl.Equal() {
		cpu.next = int(target)
	}
	return
}
