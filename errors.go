package cuckoofilter

import "errors"

// ErrNotEnoughSpace is returned by Add and TestAndAdd when the bound
// on consecutive relocation attempts is exhausted without finding an
// empty slot. The relocations are undone, so the filter is left as it
// was before the call; the caller's item was not added.
var ErrNotEnoughSpace = errors.New("cuckoofilter: not enough space")
