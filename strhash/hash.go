// Package strhash implements the classic 31-multiplier string hash
// (the one used by Java's String.hashCode) reduced to a non-negative
// value, and the reduction of that value to a bucket index.
//
// The hash is stable across processes and implementations: there is
// no seed. It is not suitable where keys may be chosen by an adversary.
package strhash

import "unicode/utf16"

// Hash returns the hash of s.
//
// The hash is computed over the UTF-16 code units of s, so a
// character outside the Basic Multilingual Plane contributes both
// halves of its surrogate pair. Invalid UTF-8 is hashed as U+FFFD.
// For each unit c the running value h becomes h*31 + c, with
// 32-bit two's-complement wraparound. The result is the absolute
// value of the final 32-bit signed value; when that value is
// math.MinInt32 the result is 1<<31, which is why the return type
// is uint32 rather than int32.
//
// Hash("") is 0.
func Hash(s string) uint32 {
	var h int32
	for _, r := range s {
		if r >= 0x10000 {
			r1, r2 := utf16.EncodeRune(r)
			h = step(step(h, r1), r2)
			continue
		}
		h = step(h, r)
	}
	if h < 0 {
		return uint32(-int64(h))
	}
	return uint32(h)
}

// step is h*31 + c written the way it is usually written.
func step(h int32, c rune) int32 {
	return h<<5 - h + int32(c)
}

// Index returns the bucket index for hash h in a table
// with the given number of buckets. It panics if n <= 0.
func Index(h uint32, n int) int {
	if n <= 0 {
		panic("strhash.Index called with non-positive bucket count")
	}
	return int(h % uint32(n))
}
