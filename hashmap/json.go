package hashmap

import (
	json "github.com/json-iterator/go"
)

// MarshalJSON implements [encoding/json.Marshaler] by encoding
// the map as a JSON object with members in iteration order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	stream := json.ConfigDefault.BorrowStream(nil)
	defer json.ConfigDefault.ReturnStream(stream)

	stream.WriteObjectStart()
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteObjectField(k)
		stream.WriteVal(v)
		i++
	}
	stream.WriteObjectEnd()
	if stream.Error != nil {
		return nil, stream.Error
	}
	return append([]byte(nil), stream.Buffer()...), nil
}

// UnmarshalJSON implements [encoding/json.Unmarshaler]. The data
// must hold a JSON object or null. As with Go maps, members are
// added to any existing entries; a member that appears more than
// once takes its last value.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	iterator := json.ConfigDefault.BorrowIterator(data)
	defer json.ConfigDefault.ReturnIterator(iterator)

	iterator.ReadObjectCB(func(iterator *json.Iterator, key string) bool {
		var v V
		iterator.ReadVal(&v)
		if iterator.Error != nil {
			return false
		}
		m.Set(key, v)
		return true
	})
	return iterator.Error
}
