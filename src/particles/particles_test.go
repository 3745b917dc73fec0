package particles

import (
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewCreatesFixedCount(t *testing.T) {
	f := New(rand.New(rand.NewSource(1)))
	assert.Len(t, f.Particles, Count)
	assert.Equal(t, 80, Count)

	for _, p := range f.Particles {
		assert.GreaterOrEqual(t, p.X, 0.0)
		assert.Less(t, p.X, 1.0)
		assert.GreaterOrEqual(t, p.Duration, MinDuration)
		assert.Less(t, p.Duration, MaxDuration)
	}
}

func TestNewWithoutRNG(t *testing.T) {
	assert.Len(t, New(nil).Particles, Count)
}

func TestPositionRisesAndWraps(t *testing.T) {
	p := Particle{X: 0.5, Duration: 10 * time.Second}

	col, row := p.Position(20, 10, 0)
	assert.Equal(t, 10, col)
	assert.Equal(t, 9, row)

	_, row = p.Position(20, 10, 5*time.Second)
	assert.Equal(t, 4, row)

	_, row = p.Position(20, 10, 10*time.Second)
	assert.Equal(t, 9, row, "wraps back to the bottom")
}

func TestPositionStaysInBounds(t *testing.T) {
	p := Particle{X: 0.9999, Duration: MinDuration}
	for elapsed := time.Duration(0); elapsed < 2*MinDuration; elapsed += 250 * time.Millisecond {
		col, row := p.Position(7, 3, elapsed)
		assert.True(t, col >= 0 && col < 7)
		assert.True(t, row >= 0 && row < 3)
	}
}

func TestRenderDimensions(t *testing.T) {
	f := New(rand.New(rand.NewSource(42)))
	out := f.Render(40, 5, 3*time.Second)
	assert.Len(t, strings.Split(out, "\n"), 5)

	var nilField *Field
	assert.Empty(t, nilField.Render(40, 5, 0))
	assert.Empty(t, f.Render(0, 5, 0))
}
