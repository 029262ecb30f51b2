package io

import (
	"iter"
)

// Temporary collects printed values in a FIFO buffer.
// A Capacity of zero places no limit on the buffer.
type Temporary struct {
	Capacity int // Capacity in values.

	Data []uint8
}

var _ Buffer = (*Temporary)(nil)

// Rewind empties the buffer.
func (temp *Temporary) Rewind() {
	temp.Data = temp.Data[:0]
}

// Receive returns an iterator that yields, and removes, buffered values
// until the buffer is empty.
func (temp *Temporary) Receive() iter.Seq[uint8] {
	return func(yield func(value uint8) bool) {
		for len(temp.Data) > 0 {
			value := temp.Data[0]
			temp.Data = temp.Data[1:]
			if !yield(value) {
				return
			}
		}
	}
}

// Print appends value to the buffer.
// Returns ErrChannelFull if the buffer has reached capacity.
func (temp *Temporary) Print(value uint8) (err error) {
	if temp.Capacity > 0 && len(temp.Data) >= temp.Capacity {
		err = ErrChannelFull
		return
	}

	temp.Data = append(temp.Data, value)
	return
}
