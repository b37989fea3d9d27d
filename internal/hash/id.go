package hash

import "github.com/cespare/xxhash/v2"

// Sum64 returns the xxHash64 digest of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Sum64String returns the xxHash64 digest of the string data.
func Sum64String(data string) uint64 {
	return xxhash.Sum64String(data)
}
