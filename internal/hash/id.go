package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// Sum computes the xxHash64 of b without copying it into a string.
// Sum(b) == ID(string(b)) for every b.
func Sum(b []byte) uint64 {
	return xxhash.Sum64(b)
}
