// Package cuckoofilter implements a Cuckoo filter: a probabilistic,
// approximate-membership structure that supports insertion, lookup and
// deletion of arbitrary byte-slice items with bounded memory and a
// tunable false-positive rate.
//
// Unlike a Bloom filter, items can be deleted: each item is represented
// by a small fingerprint stored in one of two candidate buckets, and
// collisions are resolved by relocating ("kicking") an existing
// fingerprint to its own alternate bucket.
//
// See https://www.cs.cmu.edu/~dga/papers/cuckoo-conext2014.pdf for the
// underlying algorithm.
package cuckoofilter
