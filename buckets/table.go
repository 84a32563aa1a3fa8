// Package buckets implements a hash table keyed by strings, built on
// a power-of-two array of chained buckets rather than a Go map.
//
// A key's bucket is [strhash.Hash] of the key modulo the number of
// buckets. Colliding keys share a bucket, kept as a slice in insertion
// order. When an insert would take the number of entries above
// capacity*loadFactor, the bucket array doubles and every entry is
// rehashed into a fresh array, which then replaces the old one.
// The table never shrinks except when cleared.
//
// [Table] is the shared storage for the map and set packages; it
// holds a payload of type V alongside each key (struct{} for sets).
package buckets

import (
	"iter"
	"math/bits"
	"slices"

	"go.uber.org/zap"

	"github.com/rogpeppe/chainmap/strhash"
)

// Table is a chained hash table from string keys to values of type V.
//
// The zero value is an empty table using the default configuration.
// Just as with map[K]V, a nil *Table is a valid empty table for
// read-only operations.
//
// A Table is not safe for concurrent use. Read-only operations
// may be called concurrently with each other, but any mutation
// must be serialized with all other calls by the caller.
type Table[V any] struct {
	// buckets holds the chains. Its length is the capacity and is
	// always a power of two, or zero if the table has never
	// been written to.
	buckets [][]entry[V]

	// len holds the number of entries across all buckets.
	len int

	// initCap and loadFactor hold the configuration. Zero
	// means the default.
	initCap    int
	loadFactor float64

	// growths counts growth events since creation or the last Clear.
	growths int

	logger *zap.Logger
}

// entry holds a key and its payload. The hash is kept so that
// rehashing need only reduce it against the new capacity.
type entry[V any] struct {
	hash uint32
	key  string
	val  V
}

// New returns a new empty table configured with the given options.
// It panics if the options are invalid; use [NewWithConfig] to
// get an error instead.
func New[V any](opts ...Option) *Table[V] {
	t, err := NewWithConfig[V](Config{}, opts...)
	if err != nil {
		panic("buckets: " + err.Error())
	}
	return t
}

// NewWithConfig returns a new empty table configured with cfg
// and then the given options.
func NewWithConfig[V any](cfg Config, opts ...Option) (*Table[V], error) {
	t := new(Table[V])
	if err := t.Init(cfg, opts...); err != nil {
		return nil, err
	}
	return t, nil
}

// Init discards any contents of t and configures it with cfg
// and then the given options. If the resulting configuration is
// invalid, t is left unchanged and an error is returned.
func (t *Table[V]) Init(cfg Config, opts ...Option) error {
	o := options{cfg: cfg}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return err
	}
	cfg = o.cfg.withDefaults()
	*t = Table[V]{
		buckets:    make([][]entry[V], cfg.InitialCapacity),
		initCap:    cfg.InitialCapacity,
		loadFactor: cfg.LoadFactor,
		logger:     o.logger,
	}
	return nil
}

// Len returns the number of entries in the table.
func (t *Table[V]) Len() int {
	if t == nil {
		return 0
	}
	return t.len
}

// Cap returns the current number of buckets. For a table that
// has not been written to, that is the configured initial capacity.
// Cap returns 0 for a nil table.
func (t *Table[V]) Cap() int {
	if t == nil {
		return 0
	}
	if t.buckets == nil {
		return t.initialCapacity()
	}
	return len(t.buckets)
}

// LoadFactor returns the configured load factor.
func (t *Table[V]) LoadFactor() float64 {
	if t == nil || t.loadFactor == 0 {
		return DefaultLoadFactor
	}
	return t.loadFactor
}

func (t *Table[V]) initialCapacity() int {
	if t.initCap == 0 {
		return DefaultInitialCapacity
	}
	return t.initCap
}

// Locate returns the index of the bucket that holds or would hold
// key, and the position of key within that bucket, or -1 if key is
// not present. Both are -1 for a nil table.
//
// Positions are invalidated by any mutation of the table.
func (t *Table[V]) Locate(key string) (bucket, slot int) {
	if t == nil {
		return -1, -1
	}
	_, bucket, slot = t.find(key)
	return bucket, slot
}

// find is like Locate but also returns the hash of the key.
func (t *Table[V]) find(key string) (h uint32, bucket, slot int) {
	h = strhash.Hash(key)
	bucket = strhash.Index(h, t.Cap())
	if t.buckets == nil {
		return h, bucket, -1
	}
	for i, e := range t.buckets[bucket] {
		if e.hash == h && e.key == key {
			return h, bucket, i
		}
	}
	return h, bucket, -1
}

// Get returns the value stored for key and reports whether
// it was present.
func (t *Table[V]) Get(key string) (V, bool) {
	if t == nil {
		return *new(V), false
	}
	_, b, i := t.find(key)
	if i < 0 {
		return *new(V), false
	}
	return t.buckets[b][i].val, true
}

// Contains reports whether key is present in the table.
func (t *Table[V]) Contains(key string) bool {
	_, i := t.Locate(key)
	return i >= 0
}

// Set sets the value for key to v. If key was already present,
// its value is replaced in place and the previous value is returned
// with replaced set to true; the number of entries is unchanged.
// Otherwise the table grows first if the new entry would take it
// over its load factor, and the entry is appended to its bucket.
//
// Set panics if t is nil.
func (t *Table[V]) Set(key string, v V) (prev V, replaced bool) {
	if t == nil {
		panic("buckets: (*Table).Set called on nil *Table")
	}
	t.lazyInit()
	h, b, i := t.find(key)
	if i >= 0 {
		e := &t.buckets[b][i]
		prev, e.val = e.val, v
		return prev, true
	}
	if t.ensureCapacity() {
		b = strhash.Index(h, len(t.buckets))
	}
	t.buckets[b] = append(t.buckets[b], entry[V]{
		hash: h,
		key:  key,
		val:  v,
	})
	t.len++
	return prev, false
}

// Delete removes the entry for key, if present, and returns its value.
// The remaining entries in the bucket keep their relative order.
func (t *Table[V]) Delete(key string) (old V, deleted bool) {
	if t == nil || t.buckets == nil {
		return *new(V), false
	}
	_, b, i := t.find(key)
	if i < 0 {
		return *new(V), false
	}
	old = t.buckets[b][i].val
	t.buckets[b] = slices.Delete(t.buckets[b], i, i+1)
	t.len--
	return old, true
}

// Clear removes all entries and returns the table to its
// initial capacity.
func (t *Table[V]) Clear() {
	if t == nil {
		return
	}
	n := t.len
	t.buckets = make([][]entry[V], t.initialCapacity())
	t.len = 0
	t.growths = 0
	t.log().Debug("bucket table cleared",
		zap.Int("len", n),
		zap.Int("cap", len(t.buckets)),
	)
}

// lazyInit allocates the buckets of a zero Table.
func (t *Table[V]) lazyInit() {
	if t.buckets == nil {
		t.buckets = make([][]entry[V], t.initialCapacity())
	}
}

// ensureCapacity grows the table if adding one more entry would take
// it over its load factor. It reports whether the table grew.
func (t *Table[V]) ensureCapacity() bool {
	if float64(t.len+1) <= float64(len(t.buckets))*t.LoadFactor() {
		return false
	}
	t.grow()
	return true
}

// grow doubles the number of buckets and rehashes every entry.
// Old buckets are visited in index order and their entries in
// stored order, so entries that land in the same new bucket keep
// their relative order. The new array is only installed once
// every entry has been moved.
func (t *Table[V]) grow() {
	oldCap := len(t.buckets)
	// The next power of two strictly greater than oldCap.
	newCap := 1 << bits.Len(uint(oldCap))
	buckets := make([][]entry[V], newCap)
	longest := 0
	for _, chain := range t.buckets {
		for _, e := range chain {
			b := strhash.Index(e.hash, newCap)
			buckets[b] = append(buckets[b], e)
			longest = max(longest, len(buckets[b]))
		}
	}
	t.buckets = buckets
	t.growths++
	t.log().Debug("bucket table grew",
		zap.Int("from", oldCap),
		zap.Int("to", newCap),
		zap.Int("len", t.len),
		zap.Int("longest-chain", longest),
	)
}

func (t *Table[V]) log() *zap.Logger {
	if t.logger == nil {
		return zap.NewNop()
	}
	return t.logger
}

// All returns an iterator over all (key, value) pairs, visiting
// buckets in ascending index order and the entries of each bucket
// in the order they were added. The order generally changes when
// the table grows.
//
// If the table is modified during iteration, entries may be
// skipped or visited more than once.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if t == nil {
			return
		}
		for b := 0; b < len(t.buckets); b++ {
			for i := 0; i < len(t.buckets[b]); i++ {
				e := t.buckets[b][i]
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over all keys in the same order as [Table.All].
func (t *Table[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over all values in the same order as [Table.All].
func (t *Table[V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}
