package chip8

import "math/rand"

// RNG supplies random bytes for CXNN. It is injected so tests can run
// deterministically instead of depending on the process-global source.
type RNG interface {
	Byte() byte
}

// defaultRNG is the CPU's RNG when none is supplied, backed by
// math/rand's auto-seeded top-level source.
type defaultRNG struct{}

func (defaultRNG) Byte() byte {
	return byte(rand.Intn(256))
}

// SeededRNG is a reproducible RNG for tests and deterministic replays.
type SeededRNG struct {
	r *rand.Rand
}

// NewSeededRNG returns an RNG seeded with seed.
func NewSeededRNG(seed int64) *SeededRNG {
	return &SeededRNG{r: rand.New(rand.NewSource(seed))}
}

func (s *SeededRNG) Byte() byte {
	return byte(s.r.Intn(256))
}

// SetRNG overrides the CPU's random source. Intended for tests.
func (c *CPU) SetRNG(rng RNG) {
	c.rng = rng
}
