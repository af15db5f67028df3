// Package digest is a small, fixed-hash specialisation of grailbio-base's
// digest package: where that package generalises over every crypto.Hash
// the standard library registers, this one only ever needs BLAKE2b-256,
// so it keeps the same "digest is a stable, comparable, printable value"
// shape without the generality.
package digest

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/blake2b"
)

// Digest is the BLAKE2b-256 content hash of a Sample's raw bytes. It is
// comparable and usable as a map key.
type Digest [32]byte

// Of computes the digest of b.
func Of(b []byte) Digest {
	return Digest(blake2b.Sum256(b))
}

// String renders the digest as lowercase hex, prefixed with the
// algorithm name, e.g. "blake2b256:9f86d0...".
func (d Digest) String() string {
	return fmt.Sprintf("blake2b256:%s", hex.EncodeToString(d[:]))
}

// IsZero reports whether d is the zero digest (never a real hash of
// any input, since a real hash would need probability 2^-256 to land
// there; used as a "not computed" sentinel).
func (d Digest) IsZero() bool {
	return d == Digest{}
}
