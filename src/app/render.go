package app

import (
	"strings"

	"campusai/src/i18n"
	"campusai/src/models"

	"github.com/charmbracelet/lipgloss"
)

// =====================================================================================
// 🎨 Log Rendering
// =====================================================================================

var (
	userBubbleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("238")).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240"))

	botBubbleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("252")).
		Background(lipgloss.Color("236")).
		Padding(0, 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("33"))

	noticeStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Italic(true)
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true)
	eligibleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	ineligibleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	reasonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	cardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)
)

// getSpinnerChar returns the spinner character for the given index
func getSpinnerChar(index int) string {
	spinnerChars := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	return spinnerChars[index%len(spinnerChars)]
}

// wrapText wraps text to the specified width
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	lines := strings.Split(text, "\n")
	var wrapped []string

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			wrapped = append(wrapped, "")
			continue
		}
		currentLine := words[0]
		for _, word := range words[1:] {
			if lipgloss.Width(currentLine)+1+lipgloss.Width(word) <= width {
				currentLine += " " + word
			} else {
				wrapped = append(wrapped, currentLine)
				currentLine = word
			}
		}
		wrapped = append(wrapped, currentLine)
	}
	return strings.Join(wrapped, "\n")
}

// scholarshipText is the plain text of one evaluated scholarship block.
func scholarshipText(loc *i18n.Localizer, s *models.ScholarshipResult) string {
	badge := eligibleStyle.Render(loc.T(i18n.Eligible))
	if !s.Eligible {
		badge = ineligibleStyle.Render(loc.T(i18n.NotEligible))
	}
	lines := []string{
		"🎓 " + headingStyle.Render(s.Name),
		badge,
		loc.T(i18n.Benefit, map[string]any{"Benefit": s.Benefit.String()}),
		loc.T(i18n.Chance, map[string]any{"Probability": s.Probability.String()}),
	}
	if len(s.Reasons) > 0 {
		lines = append(lines, reasonStyle.Render(strings.Join(s.Reasons, "\n")))
	}
	return strings.Join(lines, "\n")
}

// renderEntry draws one log entry for a log of the given width. The
// user's entries sit on the right, everything else on the left.
func (m *Model) renderEntry(e models.LogEntry, width int) string {
	bubbleWidth := width * 2 / 3
	if bubbleWidth < 20 {
		bubbleWidth = width
	}
	textWidth := bubbleWidth - userBubbleStyle.GetHorizontalFrameSize()

	var out string
	switch e.Kind {
	case models.EntryUser:
		out = userBubbleStyle.Width(bubbleWidth).Render(wrapText(e.Text, textWidth))
	case models.EntryBot:
		out = botBubbleStyle.Width(bubbleWidth).Render(wrapText(e.Text, textWidth))
	case models.EntryError:
		out = botBubbleStyle.Width(bubbleWidth).Render(errorStyle.Render(wrapText(e.Text, textWidth)))
	case models.EntryNotice, models.EntryNoScholarships:
		out = noticeStyle.Render(wrapText(e.Text, width))
	case models.EntryScholarshipHeader:
		out = headingStyle.Render(e.Text)
	case models.EntryScholarship:
		if e.Scholarship == nil {
			out = headingStyle.Render(e.Text)
		} else {
			out = cardStyle.Width(bubbleWidth).Render(scholarshipText(m.loc, e.Scholarship))
		}
	default:
		out = wrapText(e.Text, width)
	}

	if e.Role() == models.RoleUser {
		return lipgloss.PlaceHorizontal(width, lipgloss.Right, out)
	}
	return out
}

// logLines renders the whole log as lines.
func (m *Model) logLines(width int) []string {
	var lines []string
	for i, e := range m.state.Log {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, strings.Split(m.renderEntry(e, width), "\n")...)
	}
	return lines
}

// renderLog draws the tail of the log into a width x height viewport,
// offset upward by the scroll position.
func (m *Model) renderLog(width, height int) string {
	if height <= 0 {
		return ""
	}
	lines := m.logLines(width)
	if len(lines) == 0 {
		return lipgloss.NewStyle().Width(width).Height(height).Render(placeholderStyle.Render(m.loc.T(i18n.NoMessages)))
	}
	end := len(lines) - min(m.scroll, max(len(lines)-height, 0))
	start := max(end-height, 0)
	return lipgloss.NewStyle().Width(width).Height(height).Render(strings.Join(lines[start:end], "\n"))
}

// scrollBy moves the log viewport; positive deltas go back in history.
func (m *Model) scrollBy(delta int) {
	total := len(m.logLines(m.contentWidth()))
	m.scroll = min(max(m.scroll+delta, 0), max(total-1, 0))
}
