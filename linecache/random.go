package linecache

import (
	"crypto/rand"
	"encoding/binary"
	mathrand "math/rand/v2"
	"time"
)

// shuffleStream is the fixed PCG stream used for keyed generators.
const shuffleStream = 0x6562755f6c696e65

// newRand returns a generator scoped to one call. A non-nil key makes the
// sequence reproducible.
func newRand(key *int64) *mathrand.Rand {
	if key != nil {
		return mathrand.New(mathrand.NewPCG(uint64(*key), shuffleStream))
	}
	return mathrand.New(mathrand.NewPCG(randomSeed(), randomSeed()))
}

// randomSeed reads 8 bytes from crypto/rand, falling back to the clock if
// the system source fails.
func randomSeed() uint64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return uint64(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint64(buf[:])
}
