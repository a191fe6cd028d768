package cuckoofilter

import (
	"math/rand"
	"time"
	"unsafe"
)

// defaultMaxKicks is the bound on relocation attempts per Add.
const defaultMaxKicks = 500

// defaultCapacity is the requested capacity used by New.
const defaultCapacity = (1 << 20) - 1

// Filter is a Cuckoo filter. The zero value is not usable; build one
// with New or NewWithCapacity.
//
// A Filter is not safe for concurrent use. Mutating calls (Add,
// TestAndAdd, Delete) require exclusive access; Contains, Len,
// IsEmpty, MemoryUsage and Export require only that no mutation is
// concurrently in flight. Callers sharing a Filter across goroutines
// must mediate with their own lock; the type itself holds none, so
// that single-writer callers don't pay for synchronization they don't
// need.
type Filter struct {
	table     *table
	length    uint64
	maxKicks  int
	newHasher HasherFactory
	rng       *rand.Rand
}

// NewWithCapacity builds a Filter sized for cap items. The bucket
// count N is derived as max(1, nextPow2(cap)/B).
func NewWithCapacity(cap uint64, opts ...Option) *Filter {
	n := nextPow2(cap) / bucketSize
	if n == 0 {
		n = 1
	}
	f := &Filter{
		table:     newTable(n),
		maxKicks:  defaultMaxKicks,
		newHasher: DefaultHasher,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// New builds a Filter at the default capacity.
func New(opts ...Option) *Filter {
	return NewWithCapacity(defaultCapacity, opts...)
}

// Contains reports whether data might be in the filter. It never
// returns false for an item currently stored at either of its
// candidate buckets, but may return true for an item never inserted
// (a false positive).
func (f *Filter) Contains(data []byte) bool {
	fai := deriveFaI(f.newHasher, data)
	return f.table.at(fai.i1).contains(fai.fp) || f.table.at(fai.i2).contains(fai.fp)
}

// Add inserts data into the filter. It may return ErrNotEnoughSpace if
// both candidate buckets are full and the relocation-attempt bound is
// exhausted. Add never fails to record an item that already has room
// in one of its two candidate buckets, and duplicate inserts of the
// same data increase its stored multiplicity — use TestAndAdd for set
// semantics.
func (f *Filter) Add(data []byte) error {
	fai := deriveFaI(f.newHasher, data)
	if f.table.at(fai.i1).insert(fai.fp) {
		f.length++
		return nil
	}
	if f.table.at(fai.i2).insert(fai.fp) {
		f.length++
		return nil
	}
	return f.cuckooKick(fai)
}

// cuckooKick performs the bounded relocation loop: starting from a
// uniformly random choice of fai's two candidate buckets, repeatedly
// evict a random slot's fingerprint, swap in the arriving one, and
// retry placing the evicted fingerprint in its own alternate bucket.
// If the bound is exhausted, the swaps are undone in reverse order, so
// a failed call leaves the table exactly as it found it.
func (f *Filter) cuckooKick(fai faI) error {
	i := fai.randomIndex(f.rng.Intn(2) == 0)
	fp := fai.fp

	type swap struct {
		i uint64
		j int
	}
	var swaps []swap
	for k := 0; k < f.maxKicks; k++ {
		j := f.rng.Intn(bucketSize)
		b := f.table.at(i)
		fp = b.replaceAt(j, fp)
		swaps = append(swaps, swap{i: i, j: j})
		i = altIndex(f.newHasher, fp, i)
		if f.table.at(i).insert(fp) {
			f.length++
			return nil
		}
	}
	for k := len(swaps) - 1; k >= 0; k-- {
		fp = f.table.at(swaps[k].i).replaceAt(swaps[k].j, fp)
	}
	return ErrNotEnoughSpace
}

// TestAndAdd adds data only if it is not already (possibly, per the
// filter's false-positive rate) present. It reports true iff it
// performed an insertion.
func (f *Filter) TestAndAdd(data []byte) (bool, error) {
	if f.Contains(data) {
		return false, nil
	}
	if err := f.Add(data); err != nil {
		return false, err
	}
	return true, nil
}

// Delete removes one occurrence of data from the filter, if present,
// and reports whether it did. It is not an error to delete an item
// that is not present.
func (f *Filter) Delete(data []byte) bool {
	fai := deriveFaI(f.newHasher, data)
	if f.table.at(fai.i1).delete(fai.fp) {
		f.length--
		return true
	}
	if f.table.at(fai.i2).delete(fai.fp) {
		f.length--
		return true
	}
	return false
}

// Len returns the number of fingerprint occurrences currently stored.
func (f *Filter) Len() uint64 {
	return f.length
}

// IsEmpty reports whether the filter currently holds no items.
func (f *Filter) IsEmpty() bool {
	return f.length == 0
}

// MemoryUsage estimates the filter's resident memory footprint in
// bytes: bucket storage plus fixed struct/slice-header overhead.
func (f *Filter) MemoryUsage() uint64 {
	bucketStorage := f.table.size() * bucketSize
	overhead := uint64(unsafe.Sizeof(*f)) + uint64(unsafe.Sizeof(*f.table))
	return bucketStorage + overhead
}

// Export serializes the raw fingerprint bytes of every bucket into a
// flat, N*B-byte sequence. Empty slots are encoded as 0. Pair with
// Recover to persist and rebuild a filter.
func (f *Filter) Export() []byte {
	n := f.table.size()
	out := make([]byte, n*bucketSize)
	for i := uint64(0); i < n; i++ {
		b := f.table.at(i)
		for j := 0; j < bucketSize; j++ {
			out[i*bucketSize+uint64(j)] = byte(b.at(j))
		}
	}
	return out
}

// Recover rebuilds a filter from a blob produced by Export and the
// item count at the time of export. It performs no validation beyond
// the implicit floor division by B: a length not evenly divisible by
// B silently drops its trailing remainder bytes, trusting the caller
// to have passed a well-formed blob. The returned filter must use the
// same HasherFactory the original did (pass WithHasher if it wasn't
// DefaultHasher), or subsequent Add/Contains/Delete calls will
// disagree with the original's fingerprints.
func Recover(data []byte, length uint64, opts ...Option) *Filter {
	n := uint64(len(data)) / bucketSize
	buckets := make([]bucket, n)
	for i := uint64(0); i < n; i++ {
		for j := 0; j < bucketSize; j++ {
			buckets[i][j] = fingerprint(data[i*bucketSize+uint64(j)])
		}
	}
	f := &Filter{
		table:     newTableFromBuckets(buckets),
		length:    length,
		maxKicks:  defaultMaxKicks,
		newHasher: DefaultHasher,
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}
