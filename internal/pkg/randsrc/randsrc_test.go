package randsrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeeded_IsReproducible(t *testing.T) {
	a, b := Seeded(42), Seeded(42)
	for range 20 {
		assert.Equal(t, a.IntN(100), b.IntN(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestFixed(t *testing.T) {
	assert.Equal(t, 2, Fixed{N: 7}.IntN(5))
	assert.Zero(t, Fixed{N: -1}.IntN(5))
	assert.Zero(t, Fixed{N: 3}.IntN(0))
	assert.Equal(t, 0.25, Fixed{F: 0.25}.Float64())
}

func TestDefault_StaysInRange(t *testing.T) {
	src := Default()
	for range 50 {
		n := src.IntN(3)
		assert.GreaterOrEqual(t, n, 0)
		assert.Less(t, n, 3)
	}
}
