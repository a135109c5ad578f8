// Package sampling implements secure sampling of bytes and integers.
package sampling

import (
	"crypto/rand"
	"encoding/binary"
	"math/big"
)

// RandUint64 returns a random value between 0 and 0xFFFFFFFFFFFFFFFF.
func RandUint64() uint64 {
	b := []byte{0, 0, 0, 0, 0, 0, 0, 0}
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return binary.LittleEndian.Uint64(b)
}

// RandInt generates a random Int in [0, max-1].
func RandInt(max *big.Int) (n *big.Int) {
	var err error
	if n, err = rand.Int(rand.Reader, max); err != nil {
		panic(err)
	}
	return
}
