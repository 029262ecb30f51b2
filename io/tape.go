package io

import (
	"fmt"
	"io"
)

// Tape prints values to an io.Writer, one decimal number per line.
type Tape struct {
	Output io.Writer

	Count int // Values printed since the last rewind.
}

var _ Channel = (*Tape)(nil)

// Rewind is not possible on a tape; only the count is reset.
func (tc *Tape) Rewind() {
	tc.Count = 0
}

// Print writes value as a decimal line.
func (tc *Tape) Print(value uint8) (err error) {
	if tc.Output == nil {
		err = ErrChannelDetached
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%d\n", value)
	if err != nil {
		return
	}

	tc.Count++
	return
}
