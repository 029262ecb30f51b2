package cpu

const (
	MEMORY_SIZE = 256 // Default memory size, in bytes.
)

// Memory is the flat byte-addressable store of the CPU.
type Memory []uint8

// Read returns the byte at addr.
func (mem Memory) Read(addr int) (value uint8, err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrAddress(addr)
		return
	}

	value = mem[addr]
	return
}

// Write sets the byte at addr.
func (mem Memory) Write(addr int, value uint8) (err error) {
	if addr < 0 || addr >= len(mem) {
		err = ErrAddress(addr)
		return
	}

	mem[addr] = value
	return
}

// Load copies data into memory starting at addr.
func (mem Memory) Load(addr int, data []uint8) (err error) {
	if addr < 0 || addr+len(data) > len(mem) {
		err = ErrProgramSize
		return
	}

	copy(mem[addr:], data)
	return
}

// Peek returns the byte at addr, or 0 if addr is out of range.
func (mem Memory) Peek(addr int) (value uint8) {
	value, _ = mem.Read(addr)
	return
}
