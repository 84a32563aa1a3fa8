package hashset

import (
	json "github.com/json-iterator/go"
)

// MarshalJSON implements [encoding/json.Marshaler] by encoding
// the set as a JSON array of strings in iteration order.
func (s *Set) MarshalJSON() ([]byte, error) {
	stream := json.ConfigDefault.BorrowStream(nil)
	defer json.ConfigDefault.ReturnStream(stream)

	stream.WriteArrayStart()
	i := 0
	for k := range s.All() {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteString(k)
		i++
	}
	stream.WriteArrayEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. The data
// must hold a JSON array of strings or null; the strings are added
// to the set.
func (s *Set) UnmarshalJSON(data []byte) error {
	iterator := json.ConfigDefault.BorrowIterator(data)
	defer json.ConfigDefault.ReturnIterator(iterator)

	iterator.ReadArrayCB(func(iterator *json.Iterator) bool {
		if iterator.WhatIsNext() != json.StringValue {
			iterator.ReportError("hashset.UnmarshalJSON", "expect string element")
			return false
		}
		key := iterator.ReadString()
		if iterator.Error != nil {
			return false
		}
		s.Add(key)
		return true
	})
	return iterator.Error
}
