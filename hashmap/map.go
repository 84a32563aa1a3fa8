// Package hashmap provides a map from strings to arbitrary values,
// stored in a [buckets.Table].
//
// The iteration order is the table's storage order: by bucket, then
// by insertion within a bucket. It is deterministic for a given
// sequence of operations but changes whenever the map grows.
package hashmap

import (
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/rogpeppe/chainmap/buckets"
)

// Map is a map from string keys to values of type V.
//
// The zero value is an empty map ready to use, with the default
// table configuration. A nil *Map is a valid empty map for
// read-only operations.
//
// A Map is not safe for concurrent use.
type Map[V any] struct {
	t buckets.Table[V]
}

// Entry holds a key and its value.
type Entry[V any] struct {
	Key   string
	Value V
}

// New returns a new empty map. It panics if the options are
// invalid; use [NewWithConfig] to get an error instead.
func New[V any](opts ...buckets.Option) *Map[V] {
	m, err := NewWithConfig[V](buckets.Config{}, opts...)
	if err != nil {
		panic("hashmap: " + err.Error())
	}
	return m
}

// NewWithConfig returns a new empty map whose table is configured
// with cfg and then the given options.
func NewWithConfig[V any](cfg buckets.Config, opts ...buckets.Option) (*Map[V], error) {
	m := new(Map[V])
	if err := m.t.Init(cfg, opts...); err != nil {
		return nil, err
	}
	return m, nil
}

// table returns the underlying table, which is nil when m is nil.
func (m *Map[V]) table() *buckets.Table[V] {
	if m == nil {
		return nil
	}
	return &m.t
}

// Set sets the value for key to v, replacing any existing value.
// Set panics if m is nil.
func (m *Map[V]) Set(key string, v V) {
	if m == nil {
		panic("hashmap: (*Map).Set called on nil *Map")
	}
	m.t.Set(key, v)
}

// Get returns the value for key and reports whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	return m.table().Get(key)
}

// At returns the value for key, or the zero value of V if key is
// not present. A stored zero value cannot be told apart from a missing
// key; use [Map.Get] or [Map.Contains] when that matters.
func (m *Map[V]) At(key string) V {
	v, _ := m.table().Get(key)
	return v
}

// Contains reports whether key is present.
func (m *Map[V]) Contains(key string) bool {
	return m.table().Contains(key)
}

// Delete removes key from the map and reports whether it was present.
func (m *Map[V]) Delete(key string) bool {
	_, deleted := m.table().Delete(key)
	return deleted
}

// Len returns the number of entries in the map.
func (m *Map[V]) Len() int {
	return m.table().Len()
}

// Cap returns the number of buckets in the underlying table.
func (m *Map[V]) Cap() int {
	return m.table().Cap()
}

// Stats returns statistics on the underlying table.
func (m *Map[V]) Stats() buckets.Stats {
	return m.table().Stats()
}

// Clear removes all entries and returns the table to its initial capacity.
func (m *Map[V]) Clear() {
	m.table().Clear()
}

// All returns an iterator over all the entries in the map.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return m.table().All()
}

// Keys returns all the keys in the map.
func (m *Map[V]) Keys() []string {
	return slices.AppendSeq(make([]string, 0, m.Len()), m.table().Keys())
}

// Values returns all the values in the map, in the same order
// as the keys returned by [Map.Keys].
func (m *Map[V]) Values() []V {
	return slices.AppendSeq(make([]V, 0, m.Len()), m.table().Values())
}

// Entries returns all the entries in the map.
func (m *Map[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], 0, m.Len())
	for k, v := range m.All() {
		entries = append(entries, Entry[V]{k, v})
	}
	return entries
}

// String returns the entries of the map in the same format
// that fmt uses for Go maps, but in iteration order.
func (m *Map[V]) String() string {
	var buf strings.Builder
	buf.WriteString("map[")
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(&buf, "%s:%v", k, v)
		i++
	}
	buf.WriteByte(']')
	return buf.String()
}
