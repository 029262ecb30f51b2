package cpu

import (
	"fmt"
	"strings"
)

// Opcode is an instruction byte.
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0b0000_0001) // HLT
	OP_RET  = Opcode(0b0001_0001) // RET
	OP_PUSH = Opcode(0b0100_0101) // PUSH
	OP_POP  = Opcode(0b0100_0110) // POP
	OP_PRN  = Opcode(0b0100_0111) // PRN
	OP_CALL = Opcode(0b0101_0000) // CALL
	OP_JMP  = Opcode(0b0101_0100) // JMP
	OP_JEQ  = Opcode(0b0101_0101) // JEQ
	OP_JNE  = Opcode(0b0101_0110) // JNE
	OP_LDI  = Opcode(0b1000_0010) // LDI
	OP_ADD  = Opcode(0b1010_0000) // ADD
	OP_MUL  = Opcode(0b1010_0010) // MUL
	OP_CMP  = Opcode(0b1010_0111) // CMP
)

// AluOp is an ALU operation type.
type AluOp int

//go:generate go tool stringer -linecomment -type=AluOp
const (
	ALU_OP_ADD = AluOp(0) // ADD
	ALU_OP_MUL = AluOp(1) // MUL
	ALU_OP_CMP = AluOp(2) // CMP
)

// OperandKind describes how an operand byte is interpreted.
type OperandKind int

const (
	OPERAND_REG = OperandKind(0) // Register index.
	OPERAND_IMM = OperandKind(1) // Immediate value.
)

// opcodeInfo is the decode table entry for an instruction.
type opcodeInfo struct {
	operands []OperandKind
	execute  func(cpu *Cpu, args []uint8) error
}

// Operands returns the number of operand bytes that follow the opcode.
func (op Opcode) Operands() int {
	return int(op >> 6)
}

// Valid returns true if the opcode is a known instruction.
func (op Opcode) Valid() bool {
	_, ok := opcodeTable[op]
	return ok
}

// OperandKinds returns the operand layout of a known instruction.
func (op Opcode) OperandKinds() (kinds []OperandKind, ok bool) {
	info, ok := opcodeTable[op]
	if ok {
		kinds = info.operands
	}
	return
}

// Opcodes returns all of the known instructions, in ascending byte order.
func Opcodes() (ops []Opcode) {
	for n := range 256 {
		op := Opcode(n)
		if op.Valid() {
			ops = append(ops, op)
		}
	}
	return
}

// Disassemble returns the assembly text for an opcode and its operands.
func Disassemble(op Opcode, args []uint8) string {
	kinds, ok := op.OperandKinds()
	if !ok {
		return fmt.Sprintf(".db 0x%02x", uint8(op))
	}

	var words []string
	for n, kind := range kinds {
		if n >= len(args) {
			break
		}
		switch kind {
		case OPERAND_REG:
			words = append(words, fmt.Sprintf("R%d", args[n]))
		case OPERAND_IMM:
			words = append(words, fmt.Sprintf("%d", args[n]))
		}
	}

	if len(words) == 0 {
		return op.String()
	}

	return op.String() + " " + strings.Join(words, ",")
}
