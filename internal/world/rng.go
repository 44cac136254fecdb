package world

import (
	"encoding/binary"
	"math/rand/v2"

	"github.com/cespare/xxhash/v2"
)

// TurnSeed mixes the world seed with a turn number.
func TurnSeed(seed uint64, turn int) uint64 {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:8], seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(turn))
	return xxhash.Sum64(buf[:])
}

// RNG returns a generator that yields the same sequence for the same seed and
// turn.
func (st *State) RNG() *rand.Rand {
	return rand.New(rand.NewPCG(TurnSeed(st.Seed, st.Turn), st.Seed))
}

// BootstrapRNG returns the generator used while building the initial world.
func BootstrapRNG(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, xxhash.Sum64String("bootstrap")))
}

// RandomColor picks a fully random colour.
func RandomColor(rng *rand.Rand) RGB {
	v := rng.Uint32()
	return RGB{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16)}
}
