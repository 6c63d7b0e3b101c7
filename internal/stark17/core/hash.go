package core

import "github.com/zeebo/blake3"

// DigestSize is the fixed output width of every hash this package
// produces, matching BLAKE3's default digest length.
const DigestSize = 32

// Hash32 returns the 32-byte BLAKE3 digest of data.
func Hash32(data []byte) [DigestSize]byte {
	var out [DigestSize]byte
	h := blake3.New()
	h.Write(data) //nolint:errcheck // hash.Hash.Write never errors
	h.Digest().Read(out[:])
	return out
}

// HashConcat hashes the concatenation of the given byte slices in order,
// used to combine Merkle sibling hashes and channel state without
// intermediate allocations beyond the writer itself.
func HashConcat(parts ...[]byte) [DigestSize]byte {
	var out [DigestSize]byte
	h := blake3.New()
	for _, part := range parts {
		h.Write(part) //nolint:errcheck
	}
	h.Digest().Read(out[:])
	return out
}
