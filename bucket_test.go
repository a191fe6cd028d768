package cuckoofilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBucketInsertContainsDelete(t *testing.T) {
	var b bucket
	assert.False(t, b.contains(1))

	for fp := fingerprint(1); fp <= bucketSize; fp++ {
		assert.True(t, b.insert(fp))
	}
	assert.Equal(t, bucketSize, b.size())
	assert.False(t, b.insert(99), "bucket should be full")

	assert.True(t, b.contains(2))
	assert.True(t, b.delete(2))
	assert.False(t, b.contains(2))
	assert.False(t, b.delete(2), "second delete of the same fp should fail")

	assert.True(t, b.insert(42), "freed slot should accept a new fingerprint")
}

func TestBucketDuplicates(t *testing.T) {
	var b bucket
	assert.True(t, b.insert(5))
	assert.True(t, b.insert(5))
	assert.Equal(t, 2, b.size())
	assert.True(t, b.delete(5))
	assert.True(t, b.contains(5), "one occurrence of 5 should remain")
}

func TestBucketReplaceAt(t *testing.T) {
	var b bucket
	b.insert(9)
	evicted := b.replaceAt(0, 11)
	assert.Equal(t, fingerprint(9), evicted)
	assert.Equal(t, fingerprint(11), b.at(0))
}

func TestBucketReset(t *testing.T) {
	var b bucket
	b.insert(1)
	b.insert(2)
	b.reset()
	assert.Equal(t, 0, b.size())
}
