package fingerprint

import murmur "github.com/aviddiviner/go-murmur"

// Murmur2 computes the 32-bit x86 MurmurHash2 of data with the given seed.
// Blocks are read little-endian regardless of host byte order.
func Murmur2(data []byte, seed uint32) uint32 {
	return murmur.MurmurHash2(data, seed)
}
