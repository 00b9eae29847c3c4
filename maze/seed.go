package maze

import (
	"math/rand"
	"time"
)

// seedStream is the stream identifier mixed into a layout seed to derive the
// generator of later layout seeds.
const seedStream uint64 = 1

// resolveSeed returns seed, or a clock-based seed when seed == 0.
func resolveSeed(seed int64) int64 {
	if seed == 0 {
		return time.Now().UnixNano()
	}
	return seed
}

// newSeedSource returns the generator Regenerate draws layout seeds from.
// It is derived from, not equal to, the first layout seed so the two
// streams are not correlated.
func newSeedSource(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(seed, seedStream)))
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// seed with a SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}
