// Package hashset provides a set of strings stored in a [buckets.Table].
package hashset

import (
	"iter"
	"slices"
	"strings"

	"github.com/rogpeppe/chainmap/buckets"
)

// Set is a set of strings.
//
// The zero value is an empty set ready to use. A nil *Set is a valid
// empty set for read-only operations.
//
// A Set is not safe for concurrent use.
type Set struct {
	t buckets.Table[struct{}]
}

// New returns a new empty set. It panics if the options are invalid;
// use [NewWithConfig] to get an error instead.
func New(opts ...buckets.Option) *Set {
	s, err := NewWithConfig(buckets.Config{}, opts...)
	if err != nil {
		panic("hashset: " + err.Error())
	}
	return s
}

// NewWithConfig returns a new empty set whose table is configured
// with cfg and then the given options.
func NewWithConfig(cfg buckets.Config, opts ...buckets.Option) (*Set, error) {
	s := new(Set)
	if err := s.t.Init(cfg, opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Of returns a new set with the default configuration holding
// the given keys.
func Of(keys ...string) *Set {
	s := New()
	for _, k := range keys {
		s.Add(k)
	}
	return s
}

func (s *Set) table() *buckets.Table[struct{}] {
	if s == nil {
		return nil
	}
	return &s.t
}

// Add adds key to the set and reports whether it was
// not already present. Adding a key that is already present
// does nothing.
//
// Add panics if s is nil.
func (s *Set) Add(key string) bool {
	if s == nil {
		panic("hashset: (*Set).Add called on nil *Set")
	}
	_, replaced := s.t.Set(key, struct{}{})
	return !replaced
}

// Contains reports whether key is in the set.
func (s *Set) Contains(key string) bool {
	return s.table().Contains(key)
}

// Delete removes key from the set and reports whether it was present.
func (s *Set) Delete(key string) bool {
	_, deleted := s.table().Delete(key)
	return deleted
}

// Len returns the number of keys in the set.
func (s *Set) Len() int {
	return s.table().Len()
}

// Cap returns the number of buckets in the underlying table.
func (s *Set) Cap() int {
	return s.table().Cap()
}

// Stats returns statistics on the underlying table.
func (s *Set) Stats() buckets.Stats {
	return s.table().Stats()
}

// Clear removes all keys and returns the table to its initial capacity.
func (s *Set) Clear() {
	s.table().Clear()
}

// All returns an iterator over the keys in the set in storage order.
func (s *Set) All() iter.Seq[string] {
	return s.table().Keys()
}

// Entries returns all the keys in the set.
func (s *Set) Entries() []string {
	return slices.AppendSeq(make([]string, 0, s.Len()), s.All())
}

// String returns the keys in the set in iteration order,
// formatted as "set[a b c]".
func (s *Set) String() string {
	var buf strings.Builder
	buf.WriteString("set[")
	i := 0
	for k := range s.All() {
		if i > 0 {
			buf.WriteByte(' ')
		}
		buf.WriteString(k)
		i++
	}
	buf.WriteByte(']')
	return buf.String()
}
