// Package cpu implements the LS-8 processor, its program images, and its assembler.
//
// The CPU consists of a flat byte-addressable memory (256 bytes by default),
// eight 8-bit registers (r7 doubles as the stack pointer), a flags register
// written by CMP, and a program counter. Each instruction is a single opcode
// byte followed by zero, one, or two operand bytes; the count is held in the
// top two bits of the opcode.
//
// Programs are exchanged as text images of one binary byte per line, and
// may be written in a small assembly language that supports labels, equates,
// macros, and compile-time expression evaluation.
package cpu
