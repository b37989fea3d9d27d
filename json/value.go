package json

import (
	"iter"
	"math"
	"slices"
)

// Kind identifies the variant stored in a Value.
type Kind uint8

const (
	KindNull    Kind = iota // the null value
	KindBoolean             // true or false
	KindInteger             // signed 64-bit integer
	KindDouble              // IEEE 754 double
	KindString              // UTF-8 text
	KindArray               // ordered element list
	KindObject              // key-sorted member list
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindBoolean:
		return "Boolean"
	case KindInteger:
		return "Integer"
	case KindDouble:
		return "Double"
	case KindString:
		return "String"
	case KindArray:
		return "Array"
	case KindObject:
		return "Object"
	default:
		return "Unknown"
	}
}

// Value is a JSON-like document tree node: a closed tagged union over Null,
// Boolean, Integer, Double, String, Array and Object.
//
// Values are treated as immutable once built. Object members are stored
// sorted by key in ascending byte order, so wildcard matching, recursive
// descent and serialization all observe the same deterministic order
// regardless of construction order.
//
// The zero Value is Null.
type Value struct {
	str  string
	arr  []Value
	obj  []Member
	num  uint64
	kind Kind
}

// Null returns the null value. It is identical to the zero Value.
func Null() Value {
	return Value{}
}

// Boolean returns a boolean value.
func Boolean(b bool) Value {
	var n uint64
	if b {
		n = 1
	}

	return Value{kind: KindBoolean, num: n}
}

// Integer returns a signed 64-bit integer value.
func Integer(n int64) Value {
	return Value{kind: KindInteger, num: uint64(n)}
}

// Double returns a floating-point value.
func Double(f float64) Value {
	return Value{kind: KindDouble, num: math.Float64bits(f)}
}

// String returns a string value holding s verbatim. The text is stored as
// given; no escape processing happens here (see UnquoteString).
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Array returns an array value preserving the given element order.
// The element slice is copied.
func Array(elems ...Value) Value {
	return Value{kind: KindArray, arr: slices.Clone(elems)}
}

// Object returns an object value from members. Members are sorted by key in
// ascending byte order; when a key appears more than once the last
// occurrence wins.
func Object(members ...Member) Value {
	return Value{kind: KindObject, obj: sortMembers(members)}
}

// ObjectFromMap returns an object value from a Go map. Enumeration order of
// the resulting object is ascending key order, independent of map order.
func ObjectFromMap(m map[string]Value) Value {
	members := make([]Member, 0, len(m))
	for k, v := range m {
		members = append(members, Member{Key: k, Value: v})
	}

	return Value{kind: KindObject, obj: sortMembers(members)}
}

// Kind returns the variant stored in the value.
func (v Value) Kind() Kind {
	return v.kind
}

// Bool returns the boolean payload, or false when the value is not a
// Boolean.
func (v Value) Bool() bool {
	return v.kind == KindBoolean && v.num != 0
}

// Int64 returns the integer payload, or 0 when the value is not an Integer.
func (v Value) Int64() int64 {
	if v.kind != KindInteger {
		return 0
	}

	return int64(v.num)
}

// Float64 returns the double payload, or 0 when the value is not a Double.
func (v Value) Float64() float64 {
	if v.kind != KindDouble {
		return 0
	}

	return math.Float64frombits(v.num)
}

// Str returns the string payload, or "" when the value is not a String.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}

	return v.str
}

// Len returns the element count for arrays, the member count for objects,
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr)
	case KindObject:
		return len(v.obj)
	default:
		return 0
	}
}

// Elem returns the array element at index i. The second result is false
// when the value is not an array or i is out of range.
func (v Value) Elem(i int) (Value, bool) {
	if v.kind != KindArray || i < 0 || i >= len(v.arr) {
		return Value{}, false
	}

	return v.arr[i], true
}

// Elems iterates the elements of an array value in stored order. Other
// kinds yield nothing.
func (v Value) Elems() iter.Seq[Value] {
	return func(yield func(Value) bool) {
		if v.kind != KindArray {
			return
		}
		for _, elem := range v.arr {
			if !yield(elem) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the value. The result shares no storage with
// the receiver at any depth.
func (v Value) Clone() Value {
	switch v.kind {
	case KindArray:
		elems := make([]Value, len(v.arr))
		for i, elem := range v.arr {
			elems[i] = elem.Clone()
		}

		return Value{kind: KindArray, arr: elems}
	case KindObject:
		members := make([]Member, len(v.obj))
		for i, m := range v.obj {
			members[i] = Member{Key: m.Key, Value: m.Value.Clone()}
		}

		return Value{kind: KindObject, obj: members}
	default:
		return v
	}
}

// Equal reports structural equality: same kind, same payload, and for
// containers the same children in the same order. Doubles compare with IEEE
// semantics.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindBoolean, KindInteger:
		return v.num == other.num
	case KindDouble:
		return math.Float64frombits(v.num) == math.Float64frombits(other.num)
	case KindString:
		return v.str == other.str
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}

		return true
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != other.obj[i].Key || !v.obj[i].Value.Equal(other.obj[i].Value) {
				return false
			}
		}

		return true
	default:
		return false
	}
}
