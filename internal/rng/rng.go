// Package rng provides the deterministic pseudo-random stream that drives
// station, network and trip generation. Every generation stage receives its
// own Source so runs are reproducible in isolation; there is no package-level
// state.
package rng

const (
	multiplier = 1103515245
	increment  = 12345
	modulus    = 1 << 31
)

// Source is a linear-congruential generator over 31-bit state. Two sources
// built from the same seed produce bit-identical output sequences.
type Source struct {
	state int64
}

// New returns a Source seeded with the given 32-bit seed.
func New(seed int32) *Source {
	state := int64(seed) % modulus
	if state < 0 {
		state += modulus
	}
	return &Source{state: state}
}

// Next advances the state and returns a float in [0, 1).
func (s *Source) Next() float64 {
	s.state = (s.state*multiplier + increment) % modulus
	return float64(s.state) / float64(modulus)
}

// IntN returns an int in [0, n).
func (s *Source) IntN(n int) int {
	return int(s.Next() * float64(n))
}

// Range returns a float in [min, max).
func (s *Source) Range(min, max float64) float64 {
	return min + s.Next()*(max-min)
}

// Shuffle permutes n elements in place using Fisher-Yates driven by this
// source's stream.
func (s *Source) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := s.IntN(i + 1)
		swap(i, j)
	}
}
