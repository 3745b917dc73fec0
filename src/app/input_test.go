package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"campusai/src/models"
	"campusai/src/testutil/fakebackend"
)

func TestTextFieldEditing(t *testing.T) {
	f := newTextField("")

	f.HandleKey(key("héllo"))
	f.HandleKey(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	f.HandleKey(key("wörld"))
	assert.Equal(t, "héllo wörld", f.Value())

	f.HandleKey(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "héllo wörl", f.Value())

	f.HandleKey(tea.KeyMsg{Type: tea.KeyHome})
	f.HandleKey(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, "éllo wörl", f.Value())

	f.HandleKey(tea.KeyMsg{Type: tea.KeyRight})
	f.HandleKey(key("X"))
	assert.Equal(t, "éXllo wörl", f.Value())

	f.HandleKey(tea.KeyMsg{Type: tea.KeyCtrlU})
	assert.Empty(t, f.Value())
	assert.False(t, f.HandleKey(tea.KeyMsg{Type: tea.KeyF2}))
}

func TestTextFieldInsertFlattensNewlines(t *testing.T) {
	f := newTextField("")
	f.Insert("line one\nline two")
	assert.Equal(t, "line one line two", f.Value())
}

func TestMaskedField(t *testing.T) {
	f := &textField{masked: true}
	f.SetValue("secret")
	assert.Equal(t, "******", f.display(false))
	assert.Equal(t, "******|", f.display(true))
}

func TestFormFocus(t *testing.T) {
	fm := newForm(newTextField("a"), newTextField("b"), newTextField("c"))

	fm.HandleKey(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, 2, fm.focus, "shift+tab wraps to the last field")
	fm.HandleKey(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, 0, fm.focus)

	fm.HandleKey(key("x"))
	fm.HandleKey(tea.KeyMsg{Type: tea.KeyDown})
	fm.HandleKey(key("y"))
	assert.Equal(t, "x", fm.Value(0))
	assert.Equal(t, "y", fm.Value(1))
}

func TestWrapText(t *testing.T) {
	assert.Equal(t, "the quick\nbrown fox", wrapText("the quick brown fox", 10))
	assert.Equal(t, "a\n\nb", wrapText("a\n\nb", 10))
	assert.Equal(t, "unchanged", wrapText("unchanged", 0))
	for _, line := range strings.Split(wrapText(strings.Repeat("word ", 40), 22), "\n") {
		assert.LessOrEqual(t, len(line), 22)
	}
}

func TestGetSpinnerCharWraps(t *testing.T) {
	assert.Equal(t, getSpinnerChar(0), getSpinnerChar(10))
	assert.NotEqual(t, getSpinnerChar(0), getSpinnerChar(1))
}

func TestScrollIsClamped(t *testing.T) {
	m := newTestModel(t, fakebackend.New())
	for i := 0; i < 20; i++ {
		m.appendEntry(models.EntryBot, "reply")
	}

	m.scrollBy(-5)
	assert.Zero(t, m.scroll)
	m.scrollBy(1000)
	assert.Less(t, m.scroll, 1000)
	assert.Positive(t, m.scroll)

	m.SwitchCategory("exam")
	assert.Zero(t, m.scroll, "switching category scrolls to the bottom")
}
