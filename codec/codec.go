// Package codec implements the type-tagged binary form of a value tree.
//
// Every value starts with a one-byte type code followed by its payload:
// booleans carry one byte, integers a zigzag varint, doubles eight bytes in
// the caller's byte order, strings a uvarint length plus raw bytes. Arrays
// and objects carry a uvarint element count followed by their encoded
// children; object members are written as uvarint key length, key bytes,
// then the encoded member value, in ascending key order.
//
// Encoding never fails. Decoding is strict: unknown type codes, truncated
// payloads, trailing bytes, misordered or duplicated object keys, and
// nesting beyond MaxDepth are all rejected with errs sentinels.
package codec

import (
	"encoding/binary"
	"math"

	"github.com/meloir/jex/endian"
	"github.com/meloir/jex/json"
)

// MaxDepth bounds the value-tree nesting Decode accepts. A document whose
// values nest more than MaxDepth levels deep fails with
// errs.ErrMaxDepthExceeded.
const MaxDepth = 128

// Wire type codes.
const (
	typeNull    byte = 0x01
	typeBoolean byte = 0x02
	typeInteger byte = 0x03
	typeDouble  byte = 0x04
	typeString  byte = 0x05
	typeArray   byte = 0x06
	typeObject  byte = 0x07
)

// Encode returns the binary form of v, writing doubles in the byte order of
// engine.
func Encode(v json.Value, engine endian.EndianEngine) []byte {
	return AppendValue(nil, v, engine)
}

// AppendValue appends the binary form of v to dst and returns the extended
// slice.
func AppendValue(dst []byte, v json.Value, engine endian.EndianEngine) []byte {
	switch v.Kind() {
	case json.KindBoolean:
		if v.Bool() {
			return append(dst, typeBoolean, 0x01)
		}

		return append(dst, typeBoolean, 0x00)
	case json.KindInteger:
		dst = append(dst, typeInteger)
		return appendZigzag(dst, v.Int64())
	case json.KindDouble:
		dst = append(dst, typeDouble)
		return engine.AppendUint64(dst, math.Float64bits(v.Float64()))
	case json.KindString:
		dst = append(dst, typeString)
		return appendString(dst, v.Str())
	case json.KindArray:
		dst = append(dst, typeArray)
		dst = binary.AppendUvarint(dst, uint64(v.Len()))
		for elem := range v.Elems() {
			dst = AppendValue(dst, elem, engine)
		}

		return dst
	case json.KindObject:
		dst = append(dst, typeObject)
		dst = binary.AppendUvarint(dst, uint64(v.Len()))
		for key, member := range v.Members() {
			dst = appendString(dst, key)
			dst = AppendValue(dst, member, engine)
		}

		return dst
	default:
		return append(dst, typeNull)
	}
}

// appendString writes a uvarint byte length followed by the raw bytes.
func appendString(dst []byte, s string) []byte {
	dst = binary.AppendUvarint(dst, uint64(len(s)))
	return append(dst, s...)
}

// appendZigzag writes val zigzag-mapped so small negative integers stay
// short on the wire.
func appendZigzag(dst []byte, val int64) []byte {
	uval := uint64(val<<1) ^ uint64(val>>63)
	return binary.AppendUvarint(dst, uval)
}
