package cpu

import (
	"github.com/ezrec/ls8/io"
)

// Channel is the PRN output interface.
type Channel io.Channel
