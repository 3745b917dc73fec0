// Package navigation switches between the client's sections. Exactly one
// section is visible at a time.
package navigation

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Section ids.
const (
	Home        = "home"
	Chat        = "chat"
	Scholarship = "scholarship"
	Admin       = "admin"
	Login       = "login"
)

// DefaultSections lists the sections in tab order.
var DefaultSections = []string{Home, Chat, Scholarship, Admin, Login}

// ErrUnknownSection is returned when navigating to an id that does not exist.
var ErrUnknownSection = errors.New("unknown section")

// NavigationMsg asks the app to show a section.
type NavigationMsg struct {
	Target string
}

// Open returns a command that requests navigation to target.
func Open(target string) tea.Cmd {
	return func() tea.Msg {
		return NavigationMsg{Target: target}
	}
}

// Router tracks which section is visible.
type Router struct {
	sections []string
	visible  map[string]bool
	current  string
}

// NewRouter creates a router over sections with start visible. An unknown
// start falls back to the first section.
func NewRouter(sections []string, start string) *Router {
	r := &Router{
		sections: append([]string(nil), sections...),
		visible:  make(map[string]bool, len(sections)),
	}
	if err := r.Navigate(start); err != nil && len(r.sections) > 0 {
		_ = r.Navigate(r.sections[0])
	}
	return r
}

// Navigate hides every section and shows id. Unknown ids leave the
// current section visible.
func (r *Router) Navigate(id string) error {
	if !r.Has(id) {
		return fmt.Errorf("navigate to %q: %w", id, ErrUnknownSection)
	}
	for _, s := range r.sections {
		r.visible[s] = false
	}
	r.visible[id] = true
	r.current = id
	return nil
}

// Has reports whether id is a known section.
func (r *Router) Has(id string) bool {
	for _, s := range r.sections {
		if s == id {
			return true
		}
	}
	return false
}

// Current returns the visible section.
func (r *Router) Current() string {
	return r.current
}

// Visible reports whether id is shown.
func (r *Router) Visible(id string) bool {
	return r.visible[id]
}

// Sections returns the section ids in tab order.
func (r *Router) Sections() []string {
	return append([]string(nil), r.sections...)
}

// Next returns the section after the current one, wrapping around.
func (r *Router) Next() string {
	return r.offset(1)
}

// Prev returns the section before the current one, wrapping around.
func (r *Router) Prev() string {
	return r.offset(-1)
}

func (r *Router) offset(delta int) string {
	n := len(r.sections)
	if n == 0 {
		return ""
	}
	for i, s := range r.sections {
		if s == r.current {
			return r.sections[((i+delta)%n+n)%n]
		}
	}
	return r.sections[0]
}
