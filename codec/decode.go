package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/meloir/jex/endian"
	"github.com/meloir/jex/errs"
	"github.com/meloir/jex/json"
)

// Decode parses one binary value from data, reading doubles in the byte
// order of engine. The whole input must be consumed; leftover bytes fail
// with errs.ErrTrailingBytes.
func Decode(data []byte, engine endian.EndianEngine) (json.Value, error) {
	d := decoder{data: data, engine: engine}

	v, err := d.value(1)
	if err != nil {
		return json.Value{}, err
	}

	if d.pos != len(d.data) {
		return json.Value{}, fmt.Errorf("%w: %d bytes after value", errs.ErrTrailingBytes, len(d.data)-d.pos)
	}

	return v, nil
}

type decoder struct {
	data   []byte
	engine endian.EndianEngine
	pos    int
}

// value decodes one value. depth counts nesting levels from 1 at the top.
func (d *decoder) value(depth int) (json.Value, error) {
	if depth > MaxDepth {
		return json.Value{}, fmt.Errorf("%w: deeper than %d levels", errs.ErrMaxDepthExceeded, MaxDepth)
	}

	code, err := d.readByte()
	if err != nil {
		return json.Value{}, err
	}

	switch code {
	case typeNull:
		return json.Null(), nil
	case typeBoolean:
		return d.boolean()
	case typeInteger:
		uval, err := d.readUvarint()
		if err != nil {
			return json.Value{}, err
		}

		return json.Integer(int64(uval>>1) ^ -int64(uval&1)), nil
	case typeDouble:
		raw, err := d.readBytes(8)
		if err != nil {
			return json.Value{}, err
		}

		return json.Double(math.Float64frombits(d.engine.Uint64(raw))), nil
	case typeString:
		s, err := d.readString()
		if err != nil {
			return json.Value{}, err
		}

		return json.String(s), nil
	case typeArray:
		return d.array(depth)
	case typeObject:
		return d.object(depth)
	default:
		return json.Value{}, fmt.Errorf("%w: 0x%02x at offset %d", errs.ErrInvalidTypeCode, code, d.pos-1)
	}
}

func (d *decoder) boolean() (json.Value, error) {
	b, err := d.readByte()
	if err != nil {
		return json.Value{}, err
	}

	switch b {
	case 0x00:
		return json.Boolean(false), nil
	case 0x01:
		return json.Boolean(true), nil
	default:
		return json.Value{}, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidBooleanByte, b)
	}
}

func (d *decoder) array(depth int) (json.Value, error) {
	count, err := d.count()
	if err != nil {
		return json.Value{}, err
	}

	elems := make([]json.Value, 0, count)
	for i := 0; i < count; i++ {
		elem, err := d.value(depth + 1)
		if err != nil {
			return json.Value{}, err
		}

		elems = append(elems, elem)
	}

	return json.Array(elems...), nil
}

func (d *decoder) object(depth int) (json.Value, error) {
	count, err := d.count()
	if err != nil {
		return json.Value{}, err
	}

	members := make([]json.Member, 0, count)
	var prev string
	for i := 0; i < count; i++ {
		key, err := d.readString()
		if err != nil {
			return json.Value{}, err
		}
		if i > 0 && key <= prev {
			return json.Value{}, fmt.Errorf("%w: %q after %q", errs.ErrInvalidObjectKeyOrder, key, prev)
		}

		val, err := d.value(depth + 1)
		if err != nil {
			return json.Value{}, err
		}

		members = append(members, json.Member{Key: key, Value: val})
		prev = key
	}

	return json.Object(members...), nil
}

// count reads a container element count. Every element occupies at least
// one byte, so a count larger than the remaining input is truncation and is
// rejected before it can size an allocation.
func (d *decoder) count() (int, error) {
	count, err := d.readUvarint()
	if err != nil {
		return 0, err
	}
	if count > uint64(len(d.data)-d.pos) {
		return 0, fmt.Errorf("%w: %d elements in %d bytes", errs.ErrTruncatedPayload, count, len(d.data)-d.pos)
	}

	return int(count), nil
}

func (d *decoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, fmt.Errorf("%w: want 1 byte at offset %d", errs.ErrTruncatedPayload, d.pos)
	}

	b := d.data[d.pos]
	d.pos++

	return b, nil
}

func (d *decoder) readBytes(n int) ([]byte, error) {
	if len(d.data)-d.pos < n {
		return nil, fmt.Errorf("%w: want %d bytes at offset %d", errs.ErrTruncatedPayload, n, d.pos)
	}

	raw := d.data[d.pos : d.pos+n]
	d.pos += n

	return raw, nil
}

func (d *decoder) readUvarint() (uint64, error) {
	uval, n := binary.Uvarint(d.data[d.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("%w: bad varint at offset %d", errs.ErrTruncatedPayload, d.pos)
	}
	d.pos += n

	return uval, nil
}

func (d *decoder) readString() (string, error) {
	n, err := d.readUvarint()
	if err != nil {
		return "", err
	}
	if n > uint64(len(d.data)-d.pos) {
		return "", fmt.Errorf("%w: want %d string bytes at offset %d", errs.ErrTruncatedPayload, n, d.pos)
	}

	raw, err := d.readBytes(int(n))
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
