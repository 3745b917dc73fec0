package chart

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var labels = []string{"Exam", "Scholarship", "Library", "Notice"}

func TestNewKeepsFixedOrder(t *testing.T) {
	c := New("User Queries", labels, []float64{4, 3, 2, 1})
	bars := c.Bars()
	require.Len(t, bars, 4)
	for i, label := range labels {
		assert.Equal(t, label, bars[i].Label)
	}
	assert.Equal(t, []float64{4, 3, 2, 1}, []float64{bars[0].Value, bars[1].Value, bars[2].Value, bars[3].Value})
	assert.Equal(t, "User Queries", c.Title())
}

func TestNewPadsMissingValues(t *testing.T) {
	c := New("User Queries", labels, []float64{5})
	bars := c.Bars()
	assert.Equal(t, 5.0, bars[0].Value)
	assert.Equal(t, 0.0, bars[3].Value)
}

func TestRenderContainsLabels(t *testing.T) {
	c := New("User Queries", labels, []float64{4, 3, 2, 1})
	out := c.Render(60, 12)
	for _, label := range labels {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "User Queries")
	assert.Len(t, strings.Split(out, "\n"), 12)
}

func TestRenderAllZero(t *testing.T) {
	c := New("User Queries", labels, []float64{0, 0, 0, 0})
	out := c.Render(60, 10)
	assert.Contains(t, out, "Notice")
}

func TestRenderClampsSmallArea(t *testing.T) {
	c := New("User Queries", labels, []float64{1, 1, 1, 1})
	out := c.Render(10, 2)
	assert.Len(t, strings.Split(out, "\n"), 6)
}

func TestHolderReplaceDestroysPrevious(t *testing.T) {
	var h Holder
	assert.Nil(t, h.Current())
	assert.Equal(t, 0, h.Attached())

	first := New("User Queries", labels, []float64{1, 2, 3, 4})
	h.Replace(first)
	assert.Equal(t, 1, h.Attached())

	second := New("User Queries", labels, []float64{2, 3, 4, 5})
	h.Replace(second)

	assert.True(t, first.Destroyed())
	assert.False(t, second.Destroyed())
	assert.Same(t, second, h.Current())
	assert.Equal(t, 1, h.Attached())
	assert.Empty(t, first.Render(60, 10))

	h.Release()
	assert.True(t, second.Destroyed())
	assert.Equal(t, 0, h.Attached())
	assert.Nil(t, h.Current())
}
