package cpu

import (
	"github.com/mr-tron/base58"
	"golang.org/x/crypto/blake2b"
)

// Digest identifies a program image by the BLAKE2b-256 hash of its bytes.
type Digest [blake2b.Size256]byte

// String returns the base58 representation.
func (dg Digest) String() string {
	return base58.Encode(dg[:])
}

// Digest returns the hash of the memory image of the program.
// Programs that load identically have the same digest, regardless of
// their source listing.
func (prog *Program) Digest() Digest {
	return blake2b.Sum256(prog.Binary())
}
