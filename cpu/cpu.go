// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%v", MEMORY_SIZE),
	"FL_EQUAL":    fmt.Sprintf("%#x", uint8(FL_EQUAL)),
	"FL_GREATER":  fmt.Sprintf("%#x", uint8(FL_GREATER)),
	"FL_LESS":     fmt.Sprintf("%#x", uint8(FL_LESS)),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Memory   Memory    // Main memory, holding program and stack.
	Register Registers // Register bank. r7 is the stack pointer.
	Pc       int       // Address of the next instruction.
	Fl       Flags     // Condition flags, set by CMP.
	Running  bool      // Cleared on halt or a fatal error.

	Ticks int // Instructions executed since reset.

	Output Channel   // Destination of PRN values.
	Trace  io.Writer // If set, a trace line is written before each instruction.

	next int // Pc after the current instruction.
}

// NewCpu creates a new CPU with size bytes of memory.
// The size must be between 1 and MEMORY_SIZE, as the stack pointer
// and jump targets are held in 8-bit registers.
func NewCpu(size int) (cpu *Cpu) {
	if size < 1 || size > MEMORY_SIZE {
		panic(ErrMemorySize)
	}

	cpu = &Cpu{
		Memory: make(Memory, size),
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	defines := maps.Clone(_cpu_defines)
	defines["MEMORY_SIZE"] = fmt.Sprintf("%v", len(cpu.Memory))
	return maps.All(defines)
}

// Reset the CPU state.
// - Clears memory, registers and flags.
// - Points the stack pointer just past the end of memory.
// - Sets the program counter to 0 and the CPU running.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Memory)
	clear(cpu.Register[:])
	// For a full 256 byte memory this wraps to 0; the first push
	// decrements it to the last byte of memory.
	cpu.Register[REG_SP] = uint8(len(cpu.Memory))
	cpu.Fl = 0
	cpu.Pc = 0
	cpu.Running = true
	cpu.Ticks = 0
}

// Load copies a program image into memory at address 0.
func (cpu *Cpu) Load(data []uint8) (err error) {
	err = cpu.Memory.Load(0, data)
	if err != nil {
		return
	}

	if cpu.Verbose {
		log.Printf("cpu: loaded %d bytes", len(data))
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 7s: %02X\n", "pc", cpu.Pc)
	text += fmt.Sprintf("% 7s: %v\n", "fl", cpu.Fl)
	for n, val := range cpu.Register {
		name := fmt.Sprintf("r%d", n)
		if n == REG_SP {
			name = "r7/sp"
		}
		text += fmt.Sprintf("% 7s: %02X\n", name, val)
	}
	text += fmt.Sprintf("% 7s: %v\n", "running", cpu.Running)

	return
}

// WriteTrace writes a single line summary of the CPU state:
// the program counter, the next three bytes of memory, and all registers.
func (cpu *Cpu) WriteTrace(w io.Writer) {
	fmt.Fprintf(w, "TRACE: %02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.Memory.Peek(cpu.Pc),
		cpu.Memory.Peek(cpu.Pc+1),
		cpu.Memory.Peek(cpu.Pc+2),
	)

	for _, val := range cpu.Register {
		fmt.Fprintf(w, " %02X", val)
	}

	fmt.Fprintln(w)
}

// Step executes a single fetch-decode-execute cycle.
// Any error halts the CPU.
func (cpu *Cpu) Step() (err error) {
	if !cpu.Running {
		return ErrHalted
	}

	defer func() {
		if err != nil {
			cpu.Running = false
		}
	}()

	if cpu.Trace != nil {
		cpu.WriteTrace(cpu.Trace)
	}

	value, err := cpu.Memory.Read(cpu.Pc)
	if err != nil {
		return
	}

	op := Opcode(value)
	info, ok := opcodeTable[op]
	if !ok {
		if cpu.Verbose {
			log.Printf("cpu: %02x: unknown opcode 0x%02x", cpu.Pc, value)
		}
		err = ErrOpcode(op)
		return
	}

	return cpu.execute(op, info)
}

// execute reads the operands of a decoded instruction, and executes it.
func (cpu *Cpu) execute(op Opcode, info opcodeInfo) (err error) {
	pc := cpu.Pc
	args := make([]uint8, op.Operands())

	defer func() {
		if err != nil {
			err = &ErrInstruction{Pc: pc, Op: op, Args: args, Err: err}
		}
	}()

	for n := range args {
		args[n], err = cpu.Memory.Read(pc + 1 + n)
		if err != nil {
			return
		}
	}

	if cpu.Verbose {
		log.Printf("cpu: %02x: %v", pc, Disassemble(op, args))
	}

	cpu.next = pc + 1 + len(args)

	err = info.execute(cpu, args)
	if err != nil {
		return
	}

	cpu.Pc = cpu.next
	cpu.Ticks++

	return
}

// Run steps the CPU until it halts.
func (cpu *Cpu) Run() (err error) {
	for cpu.Running {
		err = cpu.Step()
		if err != nil {
			return
		}
	}

	return
}
