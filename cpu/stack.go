package cpu

// Push decrements the stack pointer and stores value at the new top of stack.
// The stack pointer is unchanged if the store fails.
func (cpu *Cpu) Push(value uint8) (err error) {
	sp := cpu.Register[REG_SP] - 1

	err = cpu.Memory.Write(int(sp), value)
	if err != nil {
		return
	}

	cpu.Register[REG_SP] = sp
	return
}

// Pop loads the value at the top of stack and increments the stack pointer.
func (cpu *Cpu) Pop() (value uint8, err error) {
	value, err = cpu.Peek()
	if err != nil {
		return
	}

	cpu.Register[REG_SP]++
	return
}

// Peek returns the value at the top of stack.
func (cpu *Cpu) Peek() (value uint8, err error) {
	return cpu.Memory.Read(int(cpu.Register[REG_SP]))
}

// StackDepth returns the number of bytes on the stack, assuming the
// stack pointer has not been moved below its reset value.
func (cpu *Cpu) StackDepth() int {
	top := len(cpu.Memory) % 256
	return (top - int(cpu.Register[REG_SP]) + 256) % 256
}
