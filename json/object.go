package json

import (
	"iter"
	"slices"
	"strings"
)

// Member is one key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// sortMembers returns members sorted by key in ascending byte order with
// duplicate keys resolved last-one-wins. The input slice is not modified.
func sortMembers(members []Member) []Member {
	if len(members) == 0 {
		return nil
	}

	ms := slices.Clone(members)
	slices.SortStableFunc(ms, func(a, b Member) int {
		return strings.Compare(a.Key, b.Key)
	})

	// Stable sort keeps duplicates in insertion order, so the last entry of
	// each equal-key run is the winner.
	out := ms[:0]
	for i, m := range ms {
		if i+1 < len(ms) && ms[i+1].Key == m.Key {
			continue
		}
		out = append(out, m)
	}

	return out
}

// findMember locates key in the sorted member list.
func findMember(members []Member, key string) (int, bool) {
	return slices.BinarySearchFunc(members, key, func(m Member, k string) int {
		return strings.Compare(m.Key, k)
	})
}

// Member returns the value stored under key. The second result is false
// when the value is not an object or the key is absent.
func (v Value) Member(key string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}

	i, ok := findMember(v.obj, key)
	if !ok {
		return Value{}, false
	}

	return v.obj[i].Value, true
}

// Members iterates the members of an object value in ascending key order.
// Other kinds yield nothing.
func (v Value) Members() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if v.kind != KindObject {
			return
		}
		for _, m := range v.obj {
			if !yield(m.Key, m.Value) {
				return
			}
		}
	}
}

// Keys returns the object's keys in ascending byte order, or nil for other
// kinds.
func (v Value) Keys() []string {
	if v.kind != KindObject || len(v.obj) == 0 {
		return nil
	}

	keys := make([]string, len(v.obj))
	for i, m := range v.obj {
		keys[i] = m.Key
	}

	return keys
}
