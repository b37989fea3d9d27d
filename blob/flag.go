package blob

import (
	"github.com/meloir/jex/endian"
	"github.com/meloir/jex/errs"
	"github.com/meloir/jex/format"
)

const (
	// Bit masks for the packed Options field.
	ChecksumMask     = 0x0001 // Mask for checksum bit (bit 0)
	EndiannessMask   = 0x0002 // Mask for endianness bit (bit 1)
	ReservedBitsMask = 0x000C // Mask for reserved bits (bits 2-3)
	MagicNumberMask  = 0xFFF0 // Mask for magic number (bits 4-15)

	// MagicDocumentV1Opt is the version 1 magic number for the document blob
	// format, carried in bits 4-15 of the Options field.
	MagicDocumentV1Opt = 0xDC10
)

// Flag represents the packed option fields of the blob header.
type Flag struct {
	// Options is a packed field for various options.
	// Bit 0 is the checksum flag, 0 means no checksum, 1 means checksum present.
	// Bit 1 is the endianness flag, 0 means little-endian, 1 means big-endian.
	// Bits 2-3 are reserved for future use, must be set to 0.
	// Bits 4-15 are the magic number identifying the blob format:
	//   - 0xDC10 (0b1101_1100_0001_0000): document blob format v1
	Options uint16

	// Compression is an enum indicating the compression applied to the payload.
	Compression uint8
}

var validCompressions = map[uint8]struct{}{
	uint8(format.CompressionNone): {},
	uint8(format.CompressionZstd): {},
	uint8(format.CompressionS2):   {},
	uint8(format.CompressionLZ4):  {},
}

// NewFlag creates a new Flag with default settings: little-endian byte
// order, checksum enabled, zstd compression.
func NewFlag() Flag {
	flag := Flag{
		Options:     MagicDocumentV1Opt,
		Compression: uint8(format.CompressionZstd),
	}
	flag.WithChecksum()
	flag.WithLittleEndian()

	return flag
}

// HasChecksum returns whether the payload checksum is present.
func (f Flag) HasChecksum() bool {
	return (f.Options & ChecksumMask) != 0
}

// WithChecksum enables the payload checksum.
func (f *Flag) WithChecksum() {
	f.Options |= ChecksumMask
}

// WithoutChecksum disables the payload checksum.
func (f *Flag) WithoutChecksum() {
	f.Options &^= ChecksumMask
}

// IsLittleEndian returns whether the payload is little-endian.
func (f Flag) IsLittleEndian() bool {
	return (f.Options & EndiannessMask) == 0
}

// IsBigEndian returns whether the payload is big-endian.
func (f Flag) IsBigEndian() bool {
	return (f.Options & EndiannessMask) != 0
}

// WithLittleEndian sets little-endian payload byte order.
func (f *Flag) WithLittleEndian() {
	f.Options &= ^uint16(EndiannessMask)
}

// WithBigEndian sets big-endian payload byte order.
func (f *Flag) WithBigEndian() {
	f.Options |= EndiannessMask
}

// CompressionType returns the payload compression type.
func (f Flag) CompressionType() format.CompressionType {
	return format.CompressionType(f.Compression)
}

// SetCompression sets the payload compression type.
func (f *Flag) SetCompression(compression format.CompressionType) {
	f.Compression = uint8(compression)
}

// GetMagicNumber returns the magic number from the Options field.
func (f Flag) GetMagicNumber() uint16 {
	return f.Options & MagicNumberMask
}

// IsValidMagicNumber checks if the magic number is valid.
func (f Flag) IsValidMagicNumber() bool {
	return f.GetMagicNumber() == MagicDocumentV1Opt
}

// IsValidCompression checks if the compression type is valid.
func (f Flag) IsValidCompression() bool {
	_, ok := validCompressions[f.Compression]
	return ok
}

// Validate checks if the flag contains valid values.
func (f Flag) Validate() error {
	if !f.IsValidMagicNumber() {
		return errs.ErrInvalidMagicNumber
	}

	if (f.Options & ReservedBitsMask) != 0 {
		return errs.ErrInvalidHeaderFlags
	}

	if !f.IsValidCompression() {
		return errs.ErrInvalidHeaderFlags
	}

	return nil
}

// GetEndianEngine returns the appropriate endian engine based on the flag.
func (f Flag) GetEndianEngine() endian.EndianEngine {
	if f.IsLittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}
