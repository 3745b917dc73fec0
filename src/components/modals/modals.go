// modals.go - Contains the dialogs drawn over the page: quit confirmation and help.
// Update logic supports left/right to move the selection, enter to choose, esc to close.

package modals

import (
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Modal is a dialog that captures keys until it closes itself.
type Modal interface {
	Update(msg tea.KeyMsg) tea.Cmd
	View(width, height int) string
	Closed() bool
}

// Option is one choice of a ConfirmationModal.
type Option struct {
	Label    string
	OnSelect func() tea.Cmd
}

// ConfirmationModal is a reusable modal for confirmations with 1-3 options.
type ConfirmationModal struct {
	Prompt   string
	Options  []Option
	Selected int
	closed   bool
}

// NewConfirmationModal creates a confirmation dialog. It panics on fewer
// than one or more than three options.
func NewConfirmationModal(prompt string, options ...Option) *ConfirmationModal {
	if len(options) < 1 || len(options) > 3 {
		panic("ConfirmationModal must have 1-3 options")
	}
	return &ConfirmationModal{Prompt: prompt, Options: options}
}

func (m *ConfirmationModal) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "left", "shift+tab":
		if m.Selected > 0 {
			m.Selected--
		} else {
			m.Selected = len(m.Options) - 1
		}
	case "right", "tab":
		if m.Selected < len(m.Options)-1 {
			m.Selected++
		} else {
			m.Selected = 0
		}
	case "enter":
		m.closed = true
		if fn := m.Options[m.Selected].OnSelect; fn != nil {
			return fn()
		}
	case "esc":
		m.closed = true
	}
	return nil
}

func (m *ConfirmationModal) Closed() bool { return m.closed }

func (m *ConfirmationModal) View(width, height int) string {
	boxWidth := 40
	var rendered []string
	for i, opt := range m.Options {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Width(8).Align(lipgloss.Center)
		if i == m.Selected {
			style = style.Bold(true).Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236"))
		}
		rendered = append(rendered, style.Render(opt.Label))
	}
	optionsLine := lipgloss.JoinHorizontal(lipgloss.Center, rendered...)
	content := lipgloss.NewStyle().Width(boxWidth).Align(lipgloss.Center).Render(m.Prompt + "\n\n" + optionsLine)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("203")).
		Padding(1, 2).
		Width(boxWidth + 4).
		Align(lipgloss.Center).
		Render(content)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}

// InformationModal shows help text until esc, enter or q is pressed.
// No background, white text, blue heading, blue box outline.
type InformationModal struct {
	Title   string
	Content string
	closed  bool
}

func NewInformationModal(title, content string) *InformationModal {
	return &InformationModal{Title: title, Content: content}
}

func (m *InformationModal) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter", "q":
		m.closed = true
	}
	return nil
}

func (m *InformationModal) Closed() bool { return m.closed }

var (
	markupRe   = regexp.MustCompile("([*_]{1,2}|`)")
	newlinesRe = regexp.MustCompile(`\n{3,}`)
)

// parseText strips markdown emphasis and collapses runs of blank lines.
func parseText(content string) string {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")
	content = markupRe.ReplaceAllString(content, "")
	return newlinesRe.ReplaceAllString(content, "\n\n")
}

func (m *InformationModal) View(width, height int) string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Render(m.Title)
	body := lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Render(parseText(m.Content))
	boxWidth := width - 10
	if boxWidth < 30 {
		boxWidth = 30
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("39")).
		Padding(1, 2).
		Width(boxWidth).
		Render(title + "\n\n" + body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, box)
}
