package hashset_test

import (
	"encoding/json"
	"fmt"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/rogpeppe/chainmap/buckets"
	"github.com/rogpeppe/chainmap/hashset"
)

var sortStrings = cmpopts.SortSlices(func(a, b string) bool { return a < b })

func TestAddDuplicate(t *testing.T) {
	c := qt.New(t)
	s := hashset.New()
	c.Assert(s.Add("a"), qt.IsTrue)
	c.Assert(s.Add("b"), qt.IsTrue)
	c.Assert(s.Add("a"), qt.IsFalse)
	c.Assert(s.Len(), qt.Equals, 2)
	c.Assert(s.Entries(), qt.CmpEquals(sortStrings), []string{"a", "b"})
	// "a" and "b" hash to buckets 1 and 2.
	c.Assert(s.Entries(), qt.DeepEquals, []string{"a", "b"})
}

func TestZeroSet(t *testing.T) {
	c := qt.New(t)
	var s hashset.Set
	c.Assert(s.Len(), qt.Equals, 0)
	c.Assert(s.Contains(""), qt.IsFalse)
	c.Assert(s.Add(""), qt.IsTrue)
	c.Assert(s.Contains(""), qt.IsTrue)
	c.Assert(s.Len(), qt.Equals, 1)
}

func TestNilSet(t *testing.T) {
	c := qt.New(t)
	var s *hashset.Set
	c.Assert(s.Len(), qt.Equals, 0)
	c.Assert(s.Cap(), qt.Equals, 0)
	c.Assert(s.Contains("a"), qt.IsFalse)
	c.Assert(s.Delete("a"), qt.IsFalse)
	c.Assert(s.Entries(), qt.HasLen, 0)
	c.Assert(s.String(), qt.Equals, "set[]")
	s.Clear()
	c.Assert(func() { s.Add("a") }, qt.PanicMatches, `hashset: \(\*Set\).Add called on nil \*Set`)
}

func TestDelete(t *testing.T) {
	c := qt.New(t)
	s := hashset.Of("x", "y", "z")
	c.Assert(s.Delete("w"), qt.IsFalse)
	c.Assert(s.Len(), qt.Equals, 3)
	c.Assert(s.Delete("y"), qt.IsTrue)
	c.Assert(s.Len(), qt.Equals, 2)
	c.Assert(s.Contains("y"), qt.IsFalse)
	c.Assert(s.Entries(), qt.CmpEquals(sortStrings), []string{"x", "z"})
}

func TestGrowthAndClear(t *testing.T) {
	c := qt.New(t)
	s := hashset.New()
	var want []string
	for i := range 13 {
		k := fmt.Sprintf("key%d", i)
		want = append(want, k)
		s.Add(k)
	}
	c.Assert(s.Cap(), qt.Equals, 32)
	c.Assert(s.Stats().Growths, qt.Equals, 1)
	c.Assert(s.Entries(), qt.CmpEquals(sortStrings), want)

	s.Clear()
	c.Assert(s.Len(), qt.Equals, 0)
	c.Assert(s.Cap(), qt.Equals, 16)
	for _, k := range want {
		c.Assert(s.Contains(k), qt.IsFalse)
	}
}

func TestCollidingKeys(t *testing.T) {
	c := qt.New(t)
	s := hashset.Of("Aa", "BB", "AaAa", "BBBB", "AaBB", "BBAa")
	c.Assert(s.Len(), qt.Equals, 6)
	// All six hash to multiples of 16, so they share bucket 0.
	c.Assert(s.Stats().LongestChain, qt.Equals, 6)
	c.Assert(s.Stats().UsedBuckets, qt.Equals, 1)
	c.Assert(s.Delete("BB"), qt.IsTrue)
	c.Assert(s.Contains("Aa"), qt.IsTrue)
	c.Assert(s.Contains("BB"), qt.IsFalse)
}

func TestNewWithConfig(t *testing.T) {
	c := qt.New(t)
	s, err := hashset.NewWithConfig(buckets.Config{InitialCapacity: 4})
	c.Assert(err, qt.IsNil)
	c.Assert(s.Cap(), qt.Equals, 4)

	s, err = hashset.NewWithConfig(buckets.Config{LoadFactor: -1})
	c.Assert(err, qt.ErrorIs, buckets.ErrInvalidLoadFactor)
	c.Assert(s, qt.IsNil)

	c.Assert(func() { hashset.New(buckets.WithInitialCapacity(5)) }, qt.PanicMatches, `hashset: invalid initial capacity 5: .*`)
}

func TestString(t *testing.T) {
	c := qt.New(t)
	c.Assert(hashset.New().String(), qt.Equals, "set[]")
	c.Assert(hashset.Of("b", "a").String(), qt.Equals, "set[a b]")
}

func TestMarshalJSON(t *testing.T) {
	c := qt.New(t)
	data, err := json.Marshal(hashset.Of("b", "a", "b"))
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, `["a","b"]`)

	data, err = json.Marshal(hashset.New())
	c.Assert(err, qt.IsNil)
	c.Assert(string(data), qt.Equals, `[]`)
}

func TestUnmarshalJSON(t *testing.T) {
	c := qt.New(t)
	var s hashset.Set
	err := json.Unmarshal([]byte(`["x", "y", "x"]`), &s)
	c.Assert(err, qt.IsNil)
	c.Assert(s.Entries(), qt.CmpEquals(sortStrings), []string{"x", "y"})

	err = json.Unmarshal([]byte(`null`), &s)
	c.Assert(err, qt.IsNil)
	c.Assert(s.Len(), qt.Equals, 2)

	c.Assert(s.UnmarshalJSON([]byte(`{"x": 1}`)), qt.Not(qt.IsNil))
	c.Assert(s.UnmarshalJSON([]byte(`[1]`)), qt.Not(qt.IsNil))
	c.Assert(s.UnmarshalJSON([]byte(`[null]`)), qt.Not(qt.IsNil))
	c.Assert(s.Len(), qt.Equals, 2)
}

func TestJSONRoundTrip(t *testing.T) {
	c := qt.New(t)
	s := hashset.New()
	for i := range 100 {
		s.Add(fmt.Sprint(i))
	}
	data, err := json.Marshal(s)
	c.Assert(err, qt.IsNil)
	var s1 hashset.Set
	c.Assert(json.Unmarshal(data, &s1), qt.IsNil)
	c.Assert(s1.Entries(), qt.CmpEquals(sortStrings), s.Entries())
}
