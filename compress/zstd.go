package compress

// ZstdCompressor compresses payloads with Zstandard. It has the best ratio
// of the built-in codecs and is the blob default; prefer it whenever storage
// or transfer size matters more than packing latency.
//
// The implementation is chosen at build time: builds with cgo link
// valyala/gozstd (libzstd), builds without cgo use the pure-Go
// klauspost/compress/zstd. Both produce standard zstd frames, so blobs are
// portable across builds.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
