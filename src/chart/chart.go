// Package chart draws the analytics bar chart with termui widgets into an
// off-screen buffer and turns it into a styled string for the TUI.
package chart

import (
	"fmt"
	"image"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	ui "github.com/gizak/termui/v3"
	"github.com/gizak/termui/v3/widgets"
)

const (
	barWidth = 11 // fits the longest label, "Scholarship"
	barGap   = 2
	minWidth = 4*barWidth + 3*barGap + 2
)

// Bar is a single labelled value.
type Bar struct {
	Label string
	Value float64
}

// Chart is one bar chart instance. It must be destroyed before it is
// dropped; Holder does that when it replaces it.
type Chart struct {
	title     string
	bars      []Bar
	widget    *widgets.BarChart
	destroyed bool
}

// New builds a bar chart for the given labels and values. Extra values are
// ignored; missing values are drawn as 0.
func New(title string, labels []string, values []float64) *Chart {
	bars := make([]Bar, len(labels))
	for i, label := range labels {
		bars[i].Label = label
		if i < len(values) {
			bars[i].Value = values[i]
		}
	}

	bc := widgets.NewBarChart()
	bc.Title = " " + title + " "
	bc.BarWidth = barWidth
	bc.BarGap = barGap
	bc.BarColors = []ui.Color{ui.ColorCyan}
	bc.LabelStyles = []ui.Style{ui.NewStyle(ui.ColorWhite)}
	bc.NumStyles = []ui.Style{ui.NewStyle(ui.ColorBlack, ui.ColorCyan, ui.ModifierBold)}
	bc.NumFormatter = func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) }
	bc.Labels = make([]string, len(bars))
	bc.Data = make([]float64, len(bars))
	maxVal := 0.0
	for i, b := range bars {
		bc.Labels[i] = b.Label
		bc.Data[i] = b.Value
		if b.Value > maxVal {
			maxVal = b.Value
		}
	}
	// termui divides by MaxVal; an all-zero chart would divide by zero.
	if maxVal <= 0 {
		maxVal = 1
	}
	bc.MaxVal = maxVal

	return &Chart{title: title, bars: bars, widget: bc}
}

// Bars returns the chart's data in display order.
func (c *Chart) Bars() []Bar {
	out := make([]Bar, len(c.bars))
	copy(out, c.bars)
	return out
}

// Title returns the dataset label.
func (c *Chart) Title() string {
	return c.title
}

// Destroyed reports whether Destroy has been called.
func (c *Chart) Destroyed() bool {
	return c.destroyed
}

// Destroy releases the widget. Rendering a destroyed chart returns "".
func (c *Chart) Destroy() {
	c.destroyed = true
	c.widget = nil
}

// Render draws the chart into a width x height cell area.
func (c *Chart) Render(width, height int) string {
	if c.destroyed || c.widget == nil {
		return ""
	}
	if width < minWidth {
		width = minWidth
	}
	if height < 6 {
		height = 6
	}

	rect := image.Rect(0, 0, width, height)
	c.widget.SetRect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Max.Y)
	buf := ui.NewBuffer(rect)
	c.widget.Draw(buf)
	return bufferToString(buf)
}

// bufferToString converts termui cells to text, grouping runs of equal
// style so lipgloss only styles each run once.
func bufferToString(buf *ui.Buffer) string {
	var out strings.Builder
	for y := buf.Min.Y; y < buf.Max.Y; y++ {
		var run strings.Builder
		runStyle := ui.StyleClear
		flush := func() {
			if run.Len() == 0 {
				return
			}
			out.WriteString(lipglossStyle(runStyle).Render(run.String()))
			run.Reset()
		}
		for x := buf.Min.X; x < buf.Max.X; x++ {
			cell := buf.GetCell(image.Pt(x, y))
			if cell.Style != runStyle {
				flush()
				runStyle = cell.Style
			}
			r := cell.Rune
			if r == 0 {
				r = ' '
			}
			run.WriteRune(r)
		}
		flush()
		if y < buf.Max.Y-1 {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

func lipglossStyle(s ui.Style) lipgloss.Style {
	st := lipgloss.NewStyle()
	if s.Fg != ui.ColorClear {
		st = st.Foreground(lipgloss.Color(fmt.Sprint(int(s.Fg))))
	}
	if s.Bg != ui.ColorClear {
		st = st.Background(lipgloss.Color(fmt.Sprint(int(s.Bg))))
	}
	if s.Modifier&ui.ModifierBold != 0 {
		st = st.Bold(true)
	}
	return st
}
