package cuckoofilter

// bucketSize is B: the fixed number of fingerprint slots per bucket.
// It is a compile-time constant, not a constructor parameter — the
// achievable load factor at B=4 assumes this value.
const bucketSize = 4

// bucket is a fixed-capacity, order-insignificant collection of up to
// bucketSize fingerprints. An empty slot holds nullFingerprint.
//
// Duplicates are permitted: the same fingerprint may occupy more than
// one slot, which is how a cuckoo filter approximates item
// multiplicity.
type bucket [bucketSize]fingerprint

// insert places fp in the first empty slot. It fails iff the bucket is
// full.
func (b *bucket) insert(fp fingerprint) bool {
	for i, v := range b {
		if v == nullFingerprint {
			b[i] = fp
			return true
		}
	}
	return false
}

// contains reports whether fp occupies any slot.
func (b *bucket) contains(fp fingerprint) bool {
	for _, v := range b {
		if v == fp {
			return true
		}
	}
	return false
}

// delete removes one occurrence of fp, if present.
func (b *bucket) delete(fp fingerprint) bool {
	for i, v := range b {
		if v == fp {
			b[i] = nullFingerprint
			return true
		}
	}
	return false
}

// at returns the fingerprint currently in slot j.
func (b *bucket) at(j int) fingerprint {
	return b[j]
}

// replaceAt overwrites slot j with fp and returns the fingerprint it
// displaced. Used by the cuckoo-kick loop in filter.go.
func (b *bucket) replaceAt(j int, fp fingerprint) fingerprint {
	evicted := b[j]
	b[j] = fp
	return evicted
}

// size reports how many occupied slots the bucket currently has.
func (b *bucket) size() int {
	n := 0
	for _, v := range b {
		if v != nullFingerprint {
			n++
		}
	}
	return n
}

func (b *bucket) reset() {
	*b = bucket{}
}
