package blob

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meloir/jex/errs"
	"github.com/meloir/jex/format"
)

func TestHeader_BytesParseRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Header)
	}{
		{"defaults", func(h *Header) {}},
		{"big endian", func(h *Header) { h.Flag.WithBigEndian() }},
		{"no checksum", func(h *Header) { h.Flag.WithoutChecksum() }},
		{"lz4 compression", func(h *Header) { h.Flag.SetCompression(format.CompressionLZ4) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := NewHeader()
			tt.mutate(&header)
			header.RawSize = 0x01020304
			header.PayloadSize = 0x00A0B0C0
			header.Checksum = 0x1122334455667788

			var parsed Header
			require.NoError(t, parsed.Parse(header.Bytes()))
			require.Equal(t, header, parsed)
		})
	}
}

func TestHeader_OptionsAlwaysLittleEndianOnWire(t *testing.T) {
	header := NewHeader()
	header.Flag.WithBigEndian()
	header.RawSize = 0x01020304

	b := header.Bytes()

	// The Options word stays little-endian even in a big-endian blob.
	require.Equal(t, byte(header.Flag.Options), b[0])
	require.Equal(t, byte(header.Flag.Options>>8), b[1])

	// The sizes follow the flagged byte order.
	require.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, b[4:8])
}

func TestHeader_SizesFollowLittleEndianByDefault(t *testing.T) {
	header := NewHeader()
	header.RawSize = 0x01020304

	b := header.Bytes()
	require.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, b[4:8])
}

func TestHeader_Parse_Failures(t *testing.T) {
	validHeader := NewHeader()
	valid := validHeader.Bytes()

	corrupt := func(mutate func([]byte)) []byte {
		data := make([]byte, len(valid))
		copy(data, valid)
		mutate(data)

		return data
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"empty", nil, errs.ErrInvalidHeaderSize},
		{"short", valid[:HeaderSize-1], errs.ErrInvalidHeaderSize},
		{"bad magic", corrupt(func(b []byte) { b[1] = 0x00 }), errs.ErrInvalidMagicNumber},
		{"reserved option bits", corrupt(func(b []byte) { b[0] |= ReservedBitsMask }), errs.ErrInvalidHeaderFlags},
		{"bad compression", corrupt(func(b []byte) { b[2] = 0xEE }), errs.ErrInvalidHeaderFlags},
		{"nonzero reserved byte", corrupt(func(b []byte) { b[3] = 0x01 }), errs.ErrInvalidHeaderFlags},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var header Header
			require.ErrorIs(t, header.Parse(tt.data), tt.wantErr)
		})
	}
}
