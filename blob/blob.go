package blob

import (
	"fmt"
	"math"

	"github.com/meloir/jex/codec"
	"github.com/meloir/jex/compress"
	"github.com/meloir/jex/errs"
	"github.com/meloir/jex/format"
	"github.com/meloir/jex/internal/hash"
	"github.com/meloir/jex/internal/options"
	"github.com/meloir/jex/internal/pool"
	"github.com/meloir/jex/json"
)

// Option is a functional option for configuring Pack.
type Option = options.Option[*Header]

// WithCompression selects the payload compression algorithm.
// Available types: format.CompressionZstd, format.CompressionS2,
// format.CompressionLZ4, format.CompressionNone.
// Default is format.CompressionZstd.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(h *Header) error {
		switch compression {
		case format.CompressionNone, format.CompressionZstd, format.CompressionS2, format.CompressionLZ4:
			h.Flag.SetCompression(compression)
			return nil
		default:
			return fmt.Errorf("invalid pack compression: %s", compression)
		}
	})
}

// WithLittleEndian sets little-endian payload byte order. This is the
// default.
func WithLittleEndian() Option {
	return options.NoError(func(h *Header) {
		h.Flag.WithLittleEndian()
	})
}

// WithBigEndian sets big-endian payload byte order. Use this for
// compatibility with big-endian consumers.
func WithBigEndian() Option {
	return options.NoError(func(h *Header) {
		h.Flag.WithBigEndian()
	})
}

// WithoutChecksum omits the payload checksum. Unpack then skips
// verification; use only when an outer layer already guards integrity.
func WithoutChecksum() Option {
	return options.NoError(func(h *Header) {
		h.Flag.WithoutChecksum()
	})
}

// Pack encodes v into its binary form, compresses it, and frames it with a
// Header.
//
// When the selected codec does not shrink the payload, or reports it
// incompressible the way LZ4 block compression does, the payload is stored
// raw and the header records format.CompressionNone; no option combination
// can produce a blob Unpack cannot read back.
//
// Parameters:
//   - v: document to pack
//   - opts: optional configuration (compression, byte order, checksum)
//
// Returns:
//   - []byte: framed blob, header plus payload
//   - error: configuration or compression error
func Pack(v json.Value, opts ...Option) ([]byte, error) {
	header := NewHeader()
	if err := options.Apply(&header, opts...); err != nil {
		return nil, err
	}

	engine := header.GetEndianEngine()

	buf := pool.GetPackBuffer()
	defer pool.PutPackBuffer(buf)

	buf.B = codec.AppendValue(buf.B, v, engine)
	raw := buf.B
	if len(raw) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: encoded size %d", errs.ErrDocumentTooLarge, len(raw))
	}

	dataCodec, err := compress.GetCodec(header.Flag.CompressionType())
	if err != nil {
		return nil, err
	}

	payload, err := dataCodec.Compress(raw)
	if err != nil {
		return nil, fmt.Errorf("pack compression failed: %w", err)
	}

	if len(payload) == 0 || len(payload) >= len(raw) {
		header.Flag.SetCompression(format.CompressionNone)
		payload = raw
	}

	header.RawSize = uint32(len(raw))
	header.PayloadSize = uint32(len(payload))
	if header.Flag.HasChecksum() {
		header.Checksum = hash.Sum64(payload)
	}

	out := make([]byte, 0, HeaderSize+len(payload))
	out = append(out, header.Bytes()...)
	out = append(out, payload...)

	return out, nil
}

// Unpack parses a packed blob, verifies its framing, and decodes the
// document inside.
//
// Validation order: header size and flags, payload size, checksum (when
// present), decompression, binary decode. Each failure maps to an errs
// sentinel.
func Unpack(data []byte) (json.Value, error) {
	var header Header
	if err := header.Parse(data); err != nil {
		return json.Value{}, err
	}

	payload := data[HeaderSize:]
	if len(payload) < int(header.PayloadSize) {
		return json.Value{}, fmt.Errorf("%w: payload %d bytes, header says %d",
			errs.ErrTruncatedPayload, len(payload), header.PayloadSize)
	}
	if len(payload) > int(header.PayloadSize) {
		return json.Value{}, fmt.Errorf("%w: %d bytes after payload",
			errs.ErrTrailingBytes, len(payload)-int(header.PayloadSize))
	}

	if header.Flag.HasChecksum() {
		if got := hash.Sum64(payload); got != header.Checksum {
			return json.Value{}, fmt.Errorf("%w: got 0x%016x, header says 0x%016x",
				errs.ErrChecksumMismatch, got, header.Checksum)
		}
	}

	dataCodec, err := compress.GetCodec(header.Flag.CompressionType())
	if err != nil {
		return json.Value{}, err
	}

	raw, err := dataCodec.Decompress(payload)
	if err != nil {
		return json.Value{}, fmt.Errorf("unpack decompression failed: %w", err)
	}
	if len(raw) != int(header.RawSize) {
		return json.Value{}, fmt.Errorf("%w: decompressed to %d bytes, header says %d",
			errs.ErrTruncatedPayload, len(raw), header.RawSize)
	}

	return codec.Decode(raw, header.GetEndianEngine())
}
