package blob

import (
	"fmt"

	"github.com/meloir/jex/endian"
	"github.com/meloir/jex/errs"
)

// HeaderSize is the fixed header size in bytes.
const HeaderSize = 20

// Header represents the fixed-size header framing a packed document.
//
// Layout:
//   - Options     uint16, offset 0-1, always little-endian on the wire
//   - Compression uint8, offset 2
//   - Reserved    uint8, offset 3, must be zero
//   - RawSize     uint32, offset 4-7, encoded size before compression
//   - PayloadSize uint32, offset 8-11, stored payload size
//   - Checksum    uint64, offset 12-19, xxHash64 of the stored payload
//
// RawSize, PayloadSize and Checksum use the byte order selected by the
// endianness flag. The Options field itself is always little-endian so a
// parser can bootstrap before knowing the payload order.
type Header struct {
	// Flag holds the packed Options field and the compression byte.
	Flag Flag
	// Reserved pads the header to a 4-byte boundary, must be zero.
	Reserved uint8
	// RawSize is the encoded document size before compression.
	RawSize uint32
	// PayloadSize is the stored payload size after compression.
	PayloadSize uint32
	// Checksum is the xxHash64 of the stored payload bytes, zero when the
	// checksum flag is off.
	Checksum uint64
}

// NewHeader creates a new Header with default flags.
func NewHeader() Header {
	return Header{Flag: NewFlag()}
}

// Parse parses the header from the leading HeaderSize bytes of data.
// It returns an error if data is too short or the flags are invalid.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return fmt.Errorf("%w: %d bytes, want at least %d", errs.ErrInvalidHeaderSize, len(data), HeaderSize)
	}

	// Parse Options first to determine endianness (always little-endian for
	// the Options field itself).
	h.Flag.Options = uint16(data[0]) | (uint16(data[1]) << 8)
	h.Flag.Compression = data[2]
	h.Reserved = data[3]

	engine := h.GetEndianEngine()
	h.RawSize = engine.Uint32(data[4:8])
	h.PayloadSize = engine.Uint32(data[8:12])
	h.Checksum = engine.Uint64(data[12:20])

	if err := h.Flag.Validate(); err != nil {
		return err
	}
	if h.Reserved != 0 {
		return fmt.Errorf("%w: nonzero reserved byte", errs.ErrInvalidHeaderFlags)
	}

	return nil
}

// Bytes serializes the Header into a byte slice.
func (h *Header) Bytes() []byte {
	b := make([]byte, HeaderSize)

	b[0] = byte(h.Flag.Options)
	b[1] = byte(h.Flag.Options >> 8)
	b[2] = h.Flag.Compression
	b[3] = h.Reserved

	engine := h.GetEndianEngine()
	engine.PutUint32(b[4:8], h.RawSize)
	engine.PutUint32(b[8:12], h.PayloadSize)
	engine.PutUint64(b[12:20], h.Checksum)

	return b
}

// GetEndianEngine returns the appropriate endian engine based on the header
// flags.
func (h *Header) GetEndianEngine() endian.EndianEngine {
	return h.Flag.GetEndianEngine()
}
