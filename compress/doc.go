// Package compress provides the compression codecs used for blob payloads.
//
// A packed blob stores one encoded value tree; compression is applied to the
// whole encoded payload before framing, and the chosen algorithm is recorded
// in the blob header so Unpack can pick the matching codec.
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// Codecs are selected by format.CompressionType, either through the
// CreateCodec factory or the shared built-in registry via GetCodec.
//
// # Supported Algorithms
//
// **None** (format.CompressionNone)
//
// Pass-through. The payload is stored as encoded. Use when documents are
// small or incompressible, or when latency matters more than size.
//
// **Zstandard** (format.CompressionZstd)
//
// Best compression ratio, moderate speed. Two implementations are selected
// at build time: with cgo enabled the codec wraps valyala/gozstd (libzstd),
// otherwise the pure-Go klauspost/compress/zstd implementation is used. The
// wire format is identical; blobs packed by one build decompress under the
// other.
//
// **S2** (format.CompressionS2)
//
// Snappy-compatible successor from klauspost/compress. Very fast with a
// reasonable ratio; a good default for large documents.
//
// **LZ4** (format.CompressionLZ4)
//
// Block-format LZ4 via pierrec/lz4. Fastest decompression. The block format
// does not record the decompressed size, so decompression grows its buffer
// adaptively up to a 128MB cap.
//
// # Concurrency
//
// All codecs are stateless values and safe for concurrent use. The zstd and
// lz4 implementations keep internal sync.Pool-managed encoder state; the
// registry shares one codec instance per algorithm.
package compress
