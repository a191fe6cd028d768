package cuckoofilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextPow2(t *testing.T) {
	cases := map[uint64]uint64{
		0:       0,
		1:       1,
		2:       2,
		3:       4,
		4:       4,
		5:       8,
		1000000: 1048576,
	}
	for in, want := range cases {
		assert.Equal(t, want, nextPow2(in), "nextPow2(%d)", in)
	}
}

func TestNewTableIsPowerOfTwo(t *testing.T) {
	for _, n := range []uint64{0, 1, 3, 5, 100} {
		tbl := newTable(n)
		sz := tbl.size()
		assert.GreaterOrEqual(t, sz, uint64(1))
		assert.Zero(t, sz&(sz-1), "table size %d is not a power of two", sz)
	}
}

func TestTableAtWrapsWithMask(t *testing.T) {
	tbl := newTable(8)
	assert.Equal(t, uint64(8), tbl.size())

	// Indices beyond the table size must still resolve, via the mask,
	// to the same bucket as their reduction modulo N.
	b1 := tbl.at(3)
	b2 := tbl.at(3 + 8)
	assert.Same(t, b1, b2)
}
