package cuckoofilter

import (
	"hash"

	"github.com/aviddiviner/go-murmur"
	"github.com/cespare/xxhash/v2"
)

// HasherFactory produces a fresh streaming hash.Hash64 on each call.
// It is the filter's injected hash capability: the filter itself never
// hardcodes a hash function, since fingerprint values and therefore
// exported blobs are only portable between filters built with the
// same HasherFactory.
type HasherFactory func() hash.Hash64

// DefaultHasher builds an xxHash-backed hasher. xxHash is a good
// general-purpose, non-cryptographic hash with a native streaming
// hash.Hash64 implementation, which is exactly the shape the
// fingerprint/index derivation in fingerprint.go needs.
func DefaultHasher() hash.Hash64 {
	return xxhash.New()
}

// MurmurHasher builds a MurmurHash64A-backed hasher, preserved for
// callers that need bit-compatible fingerprints with the original
// buildParams/altHash derivation this package grew out of.
func MurmurHasher() hash.Hash64 {
	return &murmurHasher{}
}

// murmurHasher adapts the one-shot murmur.MurmurHash64A into the
// streaming hash.Hash64 contract by buffering writes.
type murmurHasher struct {
	buf []byte
}

func (m *murmurHasher) Write(p []byte) (int, error) {
	m.buf = append(m.buf, p...)
	return len(p), nil
}

func (m *murmurHasher) Sum(b []byte) []byte {
	sum := m.Sum64()
	return append(b,
		byte(sum>>56), byte(sum>>48), byte(sum>>40), byte(sum>>32),
		byte(sum>>24), byte(sum>>16), byte(sum>>8), byte(sum))
}

func (m *murmurHasher) Reset()         { m.buf = m.buf[:0] }
func (m *murmurHasher) Size() int      { return 8 }
func (m *murmurHasher) BlockSize() int { return 1 }

func (m *murmurHasher) Sum64() uint64 {
	return murmur.MurmurHash64A(m.buf, 0)
}
