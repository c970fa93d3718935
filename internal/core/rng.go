package core

// RNG is the random source used by game logic.
// All randomized branching goes through it so tests can inject a fixed sequence.
type RNG interface {
	// Intn returns a value in [0, n). Returns 0 for n <= 0.
	Intn(n int) int
	// Float64 returns a value in [0, 1).
	Float64() float64
}

// Between returns a random int in [lo, hi] inclusive.
func Between(r RNG, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + r.Intn(hi-lo+1)
}

// FloatBetween returns a random float64 in [lo, hi).
func FloatBetween(r RNG, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// Chance returns true with the given percentage (0-100).
func Chance(r RNG, percent int) bool {
	return r.Intn(100) < percent
}

// SimpleRNG is a deterministic pseudo-random number generator.
// Uses a 64-bit LCG; only the high bits are handed out.
type SimpleRNG struct {
	state uint64
}

// NewSimpleRNG creates a new RNG with the given seed.
func NewSimpleRNG(seed int64) *SimpleRNG {
	s := uint64(seed) //#nosec G115 -- intentional conversion for RNG seeding
	if s == 0 {
		s = 1
	}
	return &SimpleRNG{state: s}
}

// Next generates the next random uint64.
func (r *SimpleRNG) Next() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// State returns the internal generator state (for snapshots).
func (r *SimpleRNG) State() uint64 {
	return r.state
}

// Intn returns a random int in [0, n).
func (r *SimpleRNG) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int((r.Next() >> 32) % uint64(n)) //#nosec G115 -- n is always positive
}

// Float64 returns a random float64 in [0, 1).
func (r *SimpleRNG) Float64() float64 {
	return float64(r.Next()>>11) / float64(1<<53)
}

// SeqRNG replays a fixed sequence of values; used to pin random outcomes in tests.
// Ints and Floats are consumed independently and wrap around when exhausted.
type SeqRNG struct {
	Ints   []int
	Floats []float64
	ii, fi int
}

// Intn returns the next scripted int, reduced into [0, n).
func (s *SeqRNG) Intn(n int) int {
	if n <= 0 || len(s.Ints) == 0 {
		return 0
	}
	v := s.Ints[s.ii%len(s.Ints)]
	s.ii++
	if v < 0 {
		v = -v
	}
	return v % n
}

// Float64 returns the next scripted float.
func (s *SeqRNG) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[s.fi%len(s.Floats)]
	s.fi++
	return v
}
