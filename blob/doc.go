// Package blob frames encoded documents for storage and transport.
//
// A blob is a fixed 20-byte Header followed by one payload: the binary form
// of a single value tree (see the codec package), optionally compressed.
// The header records the payload byte order, the compression algorithm, the
// raw and stored sizes, and an xxHash64 checksum of the stored bytes.
//
// # Format
//
//	offset 0   Options     uint16  flags + magic 0xDC1, always little-endian
//	offset 2   Compression uint8   format.CompressionType
//	offset 3   Reserved    uint8   must be zero
//	offset 4   RawSize     uint32  encoded size before compression
//	offset 8   PayloadSize uint32  stored payload size
//	offset 12  Checksum    uint64  xxHash64 of the stored payload
//
// The Options field is always written little-endian so a parser can read
// the endianness flag before anything endianness-dependent; the remaining
// fields and the encoded doubles inside the payload follow the flagged
// order.
//
// # Usage
//
//	data, err := blob.Pack(doc,
//	    blob.WithCompression(format.CompressionS2),
//	)
//	if err != nil {
//	    return err
//	}
//
//	doc, err = blob.Unpack(data)
//
// Pack falls back to raw storage when compression does not pay off, so the
// recorded compression type reflects what was stored, not what was asked
// for.
//
// Pack and Unpack are pure over their inputs and safe for concurrent use.
package blob
