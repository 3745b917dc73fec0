package app

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// textField is a single-line editable value with a rune cursor.
type textField struct {
	label  string
	value  []rune
	cursor int
	masked bool
}

func newTextField(label string) *textField {
	return &textField{label: label}
}

func (f *textField) Value() string { return string(f.value) }

func (f *textField) SetValue(s string) {
	f.value = []rune(s)
	f.cursor = len(f.value)
}

func (f *textField) Clear() { f.SetValue("") }

// Insert places s at the cursor. Newlines are flattened to spaces.
func (f *textField) Insert(s string) {
	s = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(s)
	r := []rune(s)
	out := make([]rune, 0, len(f.value)+len(r))
	out = append(out, f.value[:f.cursor]...)
	out = append(out, r...)
	out = append(out, f.value[f.cursor:]...)
	f.value = out
	f.cursor += len(r)
}

// HandleKey applies an editing key and reports whether it was consumed.
func (f *textField) HandleKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyRunes:
		f.Insert(string(msg.Runes))
		return true
	case tea.KeySpace:
		f.Insert(" ")
		return true
	case tea.KeyBackspace:
		if f.cursor > 0 {
			f.value = append(f.value[:f.cursor-1], f.value[f.cursor:]...)
			f.cursor--
		}
		return true
	case tea.KeyDelete:
		if f.cursor < len(f.value) {
			f.value = append(f.value[:f.cursor], f.value[f.cursor+1:]...)
		}
		return true
	case tea.KeyLeft:
		if f.cursor > 0 {
			f.cursor--
		}
		return true
	case tea.KeyRight:
		if f.cursor < len(f.value) {
			f.cursor++
		}
		return true
	case tea.KeyHome, tea.KeyCtrlA:
		f.cursor = 0
		return true
	case tea.KeyEnd, tea.KeyCtrlE:
		f.cursor = len(f.value)
		return true
	case tea.KeyCtrlU:
		f.Clear()
		return true
	case tea.KeyCtrlV:
		if text, err := clipboard.ReadAll(); err == nil {
			f.Insert(text)
		}
		return true
	}
	return false
}

var (
	fieldLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	fieldBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	fieldFocusedStyle = fieldBoxStyle.BorderForeground(lipgloss.Color("63"))
	placeholderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
)

// display returns the value with the cursor drawn as "|" when focused.
func (f *textField) display(focused bool) string {
	value := f.value
	if f.masked {
		value = []rune(strings.Repeat("*", len(f.value)))
	}
	if !focused {
		return string(value)
	}
	return string(value[:f.cursor]) + "|" + string(value[f.cursor:])
}

// View renders the field as a bordered box of the given width.
func (f *textField) View(width int, focused bool, placeholder string) string {
	style := fieldBoxStyle
	if focused {
		style = fieldFocusedStyle
	}
	text := f.display(focused)
	if len(f.value) == 0 && placeholder != "" {
		text = placeholderStyle.Render(placeholder)
		if focused {
			text = "|" + text
		}
	}
	box := style.Width(max(width-2, 10)).Render(text)
	if f.label == "" {
		return box
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, fieldLabelStyle.Render(f.label), box)
}

// form is an ordered set of fields with one focused.
type form struct {
	fields []*textField
	focus  int
}

func newForm(fields ...*textField) *form {
	return &form{fields: fields}
}

func (f *form) Focused() *textField { return f.fields[f.focus] }

func (f *form) Next() { f.focus = (f.focus + 1) % len(f.fields) }

func (f *form) Prev() { f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields) }

func (f *form) Value(i int) string { return f.fields[i].Value() }

// HandleKey moves focus on tab/arrows and forwards editing keys to the
// focused field.
func (f *form) HandleKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "tab", "down":
		f.Next()
		return true
	case "shift+tab", "up":
		f.Prev()
		return true
	}
	return f.Focused().HandleKey(msg)
}

func (f *form) View(width int) string {
	rows := make([]string, len(f.fields))
	for i, field := range f.fields {
		rows[i] = field.View(width-fieldLabelStyle.GetWidth(), i == f.focus, "")
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
