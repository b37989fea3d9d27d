package json

import (
	"math"
	"strconv"
)

// String renders the canonical text form of the value. This is the form
// unquote returns for non-string values:
//
//   - Null, Boolean: null, true, false
//   - Integer: decimal
//   - Double: shortest decimal that round-trips exactly
//   - String: the raw stored text, not re-escaped and not quoted
//   - Array: [elem,elem,...] with canonical children in stored order
//   - Object: {"key":value,...} with quoted keys in ascending key order
//
// The canonical form is a debug and unquote surface, not interchange JSON;
// use JSONString for fully escaped output.
func (v Value) String() string {
	return string(v.AppendCanonical(nil))
}

// AppendCanonical appends the canonical text form of the value to dst and
// returns the extended slice.
func (v Value) AppendCanonical(dst []byte) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBoolean:
		if v.num != 0 {
			return append(dst, "true"...)
		}

		return append(dst, "false"...)
	case KindInteger:
		return strconv.AppendInt(dst, int64(v.num), 10)
	case KindDouble:
		return strconv.AppendFloat(dst, math.Float64frombits(v.num), 'g', -1, 64)
	case KindString:
		return append(dst, v.str...)
	case KindArray:
		dst = append(dst, '[')
		for i, elem := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = elem.AppendCanonical(dst)
		}

		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i, m := range v.obj {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = append(dst, '"')
			dst = append(dst, m.Key...)
			dst = append(dst, '"', ':')
			dst = m.Value.AppendCanonical(dst)
		}

		return append(dst, '}')
	default:
		return dst
	}
}

// JSONString renders the value as interchange JSON: strings and object keys
// are fully escaped, objects enumerate in ascending key order. Non-finite
// doubles render as null since JSON has no representation for them.
func (v Value) JSONString() string {
	return string(v.AppendJSON(nil))
}

// AppendJSON appends the interchange JSON form of the value to dst and
// returns the extended slice.
func (v Value) AppendJSON(dst []byte) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBoolean:
		if v.num != 0 {
			return append(dst, "true"...)
		}

		return append(dst, "false"...)
	case KindInteger:
		return strconv.AppendInt(dst, int64(v.num), 10)
	case KindDouble:
		f := math.Float64frombits(v.num)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return append(dst, "null"...)
		}

		return strconv.AppendFloat(dst, f, 'g', -1, 64)
	case KindString:
		return appendJSONString(dst, v.str)
	case KindArray:
		dst = append(dst, '[')
		for i, elem := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = elem.AppendJSON(dst)
		}

		return append(dst, ']')
	case KindObject:
		dst = append(dst, '{')
		for i, m := range v.obj {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendJSONString(dst, m.Key)
			dst = append(dst, ':')
			dst = m.Value.AppendJSON(dst)
		}

		return append(dst, '}')
	default:
		return dst
	}
}

const hexDigits = "0123456789abcdef"

// appendJSONString appends s as a quoted JSON string with RFC 8259 escaping.
func appendJSONString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		dst = append(dst, s[start:i]...)
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xF])
		}
		start = i + 1
	}
	dst = append(dst, s[start:]...)

	return append(dst, '"')
}
