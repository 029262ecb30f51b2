// Package io provides the output channels for the LS-8 emulator.
// It includes a line-oriented decimal printer (Tape) for streams, and an
// in-memory buffer (Temporary) for capturing printed values.
package io

import (
	"iter"
)

// Channel defines the interface for the PRN output of the CPU.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
	// Print emits a single value to the channel.
	Print(value uint8) error
}

// Buffer is a Channel whose printed values can be read back.
type Buffer interface {
	Channel
	// Receive returns an iterator that yields the printed values.
	Receive() iter.Seq[uint8]
}
