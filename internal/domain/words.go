package domain

import "encoding/binary"

// WordSize is the width of one input word in bytes.
const WordSize = 4

// WordsFromBytes reinterprets b as 32-bit words in native byte order.
// Trailing bytes that do not fill a word are dropped.
func WordsFromBytes(b []byte) []uint32 {
	words := make([]uint32, len(b)/WordSize)
	for i := range words {
		words[i] = binary.NativeEndian.Uint32(b[i*WordSize:])
	}
	return words
}

// WordsToBytes is the inverse of WordsFromBytes.
func WordsToBytes(words []uint32) []byte {
	b := make([]byte, len(words)*WordSize)
	for i, w := range words {
		binary.NativeEndian.PutUint32(b[i*WordSize:], w)
	}
	return b
}
