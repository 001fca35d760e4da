package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_WithinRange(t *testing.T) {
	base := time.Second

	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestDuration_ZeroFactor(t *testing.T) {
	assert.Equal(t, time.Second, Duration(time.Second, 0))
}

func TestDurationWithSeed_Deterministic(t *testing.T) {
	first := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(42)))
	second := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(42)))

	assert.Equal(t, first, second)
}

func TestExponentialBackoff_Doubling(t *testing.T) {
	assert.Equal(t, time.Second, ExponentialBackoff(time.Second, 30*time.Second, 0, 0))
	assert.Equal(t, 2*time.Second, ExponentialBackoff(time.Second, 30*time.Second, 1, 0))
	assert.Equal(t, 8*time.Second, ExponentialBackoff(time.Second, 30*time.Second, 3, 0))
}

func TestExponentialBackoff_CappedAtMax(t *testing.T) {
	assert.Equal(t, 10*time.Second, ExponentialBackoff(time.Second, 10*time.Second, 20, 0))
}
