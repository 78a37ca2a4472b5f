package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Next(), b.Next(), "sequences diverged at draw %d", i)
	}
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := New(42)
	b := New(43)

	same := true
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			same = false
			break
		}
	}
	assert.False(t, same, "different seeds produced identical prefixes")
}

func TestNextBounds(t *testing.T) {
	s := New(7)
	for i := 0; i < 10000; i++ {
		v := s.Next()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestNegativeSeed(t *testing.T) {
	s := New(-5)
	v := s.Next()
	assert.GreaterOrEqual(t, v, 0.0)
	assert.Less(t, v, 1.0)
}

func TestIntNBounds(t *testing.T) {
	s := New(99)
	for i := 0; i < 1000; i++ {
		v := s.IntN(6)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 6)
	}
}

func TestRangeBounds(t *testing.T) {
	s := New(11)
	for i := 0; i < 1000; i++ {
		v := s.Range(3.0, 25.0)
		assert.GreaterOrEqual(t, v, 3.0)
		assert.Less(t, v, 25.0)
	}
}

func TestShuffleDeterministic(t *testing.T) {
	first := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	second := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	New(42).Shuffle(len(first), func(i, j int) { first[i], first[j] = first[j], first[i] })
	New(42).Shuffle(len(second), func(i, j int) { second[i], second[j] = second[j], second[i] })

	assert.Equal(t, first, second)
}
