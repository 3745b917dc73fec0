// Package particles draws the decorative rising-dot background of the home
// section.
package particles

import (
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	// Count is the number of particles created for a field.
	Count = 80

	// MinDuration and MaxDuration bound one particle's rise time.
	MinDuration = 6 * time.Second
	MaxDuration = 18 * time.Second
)

var glyphs = []rune{'.', '·', '•', '∙'}

var particleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))

// Particle is one dot. X is a fraction of the field width in [0,1).
type Particle struct {
	X        float64
	Duration time.Duration
}

// Field is a fixed set of particles.
type Field struct {
	Particles []Particle
}

// New creates Count particles with random positions and durations.
func New(rng *rand.Rand) *Field {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	spread := float64(MaxDuration - MinDuration)
	f := &Field{Particles: make([]Particle, Count)}
	for i := range f.Particles {
		f.Particles[i] = Particle{
			X:        rng.Float64(),
			Duration: MinDuration + time.Duration(rng.Float64()*spread),
		}
	}
	return f
}

// Position returns the particle's cell at elapsed time in a width x height
// area. Particles start at the bottom row and rise, wrapping after Duration.
func (p Particle) Position(width, height int, elapsed time.Duration) (col, row int) {
	col = int(p.X * float64(width))
	if col >= width {
		col = width - 1
	}
	progress := float64(elapsed%p.Duration) / float64(p.Duration)
	row = height - 1 - int(progress*float64(height))
	if row < 0 {
		row = 0
	}
	return col, row
}

// Render draws the field at elapsed time into a width x height block.
func (f *Field) Render(width, height int, elapsed time.Duration) string {
	if f == nil || width <= 0 || height <= 0 {
		return ""
	}
	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(" ", width))
	}
	for i, p := range f.Particles {
		col, row := p.Position(width, height, elapsed)
		grid[row][col] = glyphs[i%len(glyphs)]
	}
	lines := make([]string, height)
	for y, runes := range grid {
		lines[y] = particleStyle.Render(string(runes))
	}
	return strings.Join(lines, "\n")
}
