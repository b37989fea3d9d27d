package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/meloir/jex/format"
)

// samplePayload builds a compressible payload shaped like an encoded
// document: repeated member structures with a little variation.
func samplePayload(size int) []byte {
	pattern := []byte{0x07, 0x03, 0x04, 'n', 'a', 'm', 'e', 0x05, 0x08}
	payload := make([]byte, 0, size+len(pattern))
	for i := 0; len(payload) < size; i++ {
		payload = append(payload, pattern...)
		payload = append(payload, byte(i))
	}

	return payload[:size]
}

func allCodecs(t *testing.T) map[string]Codec {
	t.Helper()

	codecs := make(map[string]Codec)
	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := CreateCodec(typ, "test")
		require.NoError(t, err)
		codecs[typ.String()] = codec
	}

	return codecs
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		typ  format.CompressionType
		want Codec
	}{
		{format.CompressionNone, NoOpCompressor{}},
		{format.CompressionZstd, ZstdCompressor{}},
		{format.CompressionS2, S2Compressor{}},
		{format.CompressionLZ4, LZ4Compressor{}},
	}

	for _, tt := range tests {
		t.Run(tt.typ.String(), func(t *testing.T) {
			codec, err := CreateCodec(tt.typ, "payload")
			require.NoError(t, err)
			require.Equal(t, tt.want, codec)
		})
	}

	_, err := CreateCodec(format.CompressionType(0xEE), "payload")
	require.Error(t, err)
	require.Contains(t, err.Error(), "payload")
}

func TestGetCodec(t *testing.T) {
	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
}

func TestCodec_RoundTrip(t *testing.T) {
	payloads := map[string][]byte{
		"repetitive": samplePayload(4096),
		"large":      samplePayload(256 * 1024),
	}

	for codecName, codec := range allCodecs(t) {
		for payloadName, payload := range payloads {
			t.Run(codecName+"/"+payloadName, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestCodec_RoundTripSmallPayloads(t *testing.T) {
	// LZ4 block compression is excluded: it reports short inputs as
	// incompressible instead of expanding them.
	payloads := map[string][]byte{
		"tiny":         {0x01},
		"short":        []byte(`{"a":"a1","b":20.08,"c":false}`),
		"binary noise": {0x00, 0xFF, 0x13, 0x37, 0x00, 0x00, 0x00, 0x80, 0x7F},
	}

	for _, typ := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
	} {
		codec, err := GetCodec(typ)
		require.NoError(t, err)

		for payloadName, payload := range payloads {
			t.Run(typ.String()+"/"+payloadName, func(t *testing.T) {
				compressed, err := codec.Compress(payload)
				require.NoError(t, err)

				decompressed, err := codec.Decompress(compressed)
				require.NoError(t, err)
				require.Equal(t, payload, decompressed)
			})
		}
	}
}

func TestCodec_CompressesRepetitiveData(t *testing.T) {
	payload := samplePayload(64 * 1024)

	for _, name := range []string{"Zstd", "S2", "LZ4"} {
		t.Run(name, func(t *testing.T) {
			typ, ok := format.ParseCompressionType(name)
			require.True(t, ok)
			codec, err := GetCodec(typ)
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			require.Less(t, len(compressed), len(payload))
		})
	}
}

func TestNoOpCompressor_ReturnsInputUnchanged(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte("untouched")

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestLZ4Compressor_GrowsDecompressBuffer(t *testing.T) {
	// A megabyte of near-identical data compresses far below a quarter of
	// its size, so decompression must outgrow its initial 4x buffer.
	payload := bytes.Repeat([]byte{0xAB}, 1024*1024)
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Less(t, len(compressed)*4, len(payload))

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestLZ4Compressor_IncompressibleInputReportsEmpty(t *testing.T) {
	codec := NewLZ4Compressor()

	compressed, err := codec.Compress([]byte{0x00, 0xFF, 0x13, 0x37, 0x80})
	require.NoError(t, err)
	require.Empty(t, compressed)
}

func TestCodec_EmptyInputRoundTrip(t *testing.T) {
	for name, codec := range allCodecs(t) {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Empty(t, decompressed)
		})
	}
}

func TestZstdCompressor_RejectsCorruptedInput(t *testing.T) {
	codec := NewZstdCompressor()

	_, err := codec.Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.Error(t, err)
}
