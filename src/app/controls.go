package app

import (
	"fmt"
	"strings"

	"campusai/src/components/modals"
	"campusai/src/i18n"
	"campusai/src/navigation"

	tea "github.com/charmbracelet/bubbletea"
)

// Control binds keys to a page action. Name is a message ID.
type Control struct {
	Name   string
	Keys   []string
	Action func(m *Model) tea.Cmd
}

// ControlSet groups the controls active in one context.
type ControlSet struct {
	Controls []Control
}

// Match returns the control bound to key.
func (s ControlSet) Match(key string) (Control, bool) {
	for _, c := range s.Controls {
		for _, k := range c.Keys {
			if k == key {
				return c, true
			}
		}
	}
	return Control{}, false
}

func goTo(section string) func(m *Model) tea.Cmd {
	return func(m *Model) tea.Cmd { return m.Navigate(section) }
}

// open defers the switch to a NavigationMsg.
func open(section string) func(m *Model) tea.Cmd {
	return func(*Model) tea.Cmd { return navigation.Open(section) }
}

// globalControls are active in every section.
func globalControls() ControlSet {
	return ControlSet{Controls: []Control{
		{Name: i18n.ControlQuit, Keys: []string{"ctrl+q"}, Action: (*Model).confirmQuit},
		{Name: i18n.ControlHelp, Keys: []string{"f1"}, Action: (*Model).showHelp},
		{Name: i18n.ControlNextSection, Keys: []string{"ctrl+n"}, Action: func(m *Model) tea.Cmd { return m.Navigate(m.router.Next()) }},
		{Name: i18n.ControlPrevSection, Keys: []string{"ctrl+p"}, Action: func(m *Model) tea.Cmd { return m.Navigate(m.router.Prev()) }},
		{Name: i18n.SectionHome, Keys: []string{"alt+1"}, Action: goTo(navigation.Home)},
		{Name: i18n.SectionChat, Keys: []string{"alt+2"}, Action: goTo(navigation.Chat)},
		{Name: i18n.SectionScholarship, Keys: []string{"alt+3"}, Action: goTo(navigation.Scholarship)},
		{Name: i18n.SectionAdmin, Keys: []string{"alt+4"}, Action: goTo(navigation.Admin)},
		{Name: i18n.SectionLogin, Keys: []string{"alt+5"}, Action: goTo(navigation.Login)},
	}}
}

func scrollControls() []Control {
	return []Control{
		{Name: i18n.ControlScrollUp, Keys: []string{"pgup"}, Action: func(m *Model) tea.Cmd { m.scrollBy(5); return nil }},
		{Name: i18n.ControlScrollDown, Keys: []string{"pgdown"}, Action: func(m *Model) tea.Cmd { m.scrollBy(-5); return nil }},
	}
}

// sectionControls returns the controls of one section.
func sectionControls(section string) ControlSet {
	switch section {
	case navigation.Home:
		return ControlSet{Controls: []Control{
			{Name: i18n.ControlStartChat, Keys: []string{"enter"}, Action: open(navigation.Chat)},
			{Name: i18n.SectionChat, Keys: []string{"2", "c"}, Action: open(navigation.Chat)},
			{Name: i18n.SectionScholarship, Keys: []string{"3", "s"}, Action: open(navigation.Scholarship)},
			{Name: i18n.SectionAdmin, Keys: []string{"4", "a"}, Action: open(navigation.Admin)},
			{Name: i18n.SectionLogin, Keys: []string{"5", "l"}, Action: open(navigation.Login)},
		}}
	case navigation.Chat:
		return ControlSet{Controls: append([]Control{
			{Name: i18n.ControlSend, Keys: []string{"enter"}, Action: (*Model).submitChat},
			{Name: i18n.ControlNextCategory, Keys: []string{"ctrl+t"}, Action: (*Model).cycleCategory},
			{Name: i18n.ControlCopyReply, Keys: []string{"ctrl+y"}, Action: (*Model).copyLastReply},
			{Name: i18n.ControlScrollUp, Keys: []string{"up"}, Action: func(m *Model) tea.Cmd { m.scrollBy(1); return nil }},
			{Name: i18n.ControlScrollDown, Keys: []string{"down"}, Action: func(m *Model) tea.Cmd { m.scrollBy(-1); return nil }},
		}, scrollControls()...)}
	case navigation.Scholarship:
		return ControlSet{Controls: append([]Control{
			{Name: i18n.ControlCheckEligibility, Keys: []string{"enter"}, Action: (*Model).GetScholarship},
		}, scrollControls()...)}
	case navigation.Admin:
		return ControlSet{Controls: []Control{
			{Name: i18n.ControlRefresh, Keys: []string{"r", "f5"}, Action: (*Model).refreshAnalytics},
		}}
	case navigation.Login:
		return ControlSet{Controls: []Control{
			{Name: i18n.ControlLogIn, Keys: []string{"enter"}, Action: (*Model).Login},
			{Name: i18n.ControlLogOut, Keys: []string{"ctrl+l"}, Action: (*Model).Logout},
		}}
	}
	return ControlSet{}
}

// handleKey runs the first matching control: modal, global, then section.
// Unmatched keys edit the section's input.
func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if key == "ctrl+c" {
		return m.quit()
	}
	if m.modal != nil {
		cmd := m.modal.Update(msg)
		if m.modal != nil && m.modal.Closed() {
			m.modal = nil
		}
		return cmd
	}
	if c, ok := globalControls().Match(key); ok {
		return c.Action(m)
	}
	if c, ok := sectionControls(m.router.Current()).Match(key); ok {
		return c.Action(m)
	}
	switch m.router.Current() {
	case navigation.Chat:
		m.input.HandleKey(msg)
	case navigation.Scholarship:
		m.scholarship.HandleKey(msg)
	case navigation.Login:
		m.login.HandleKey(msg)
	}
	return nil
}

func (m *Model) confirmQuit() tea.Cmd {
	m.modal = modals.NewConfirmationModal(m.loc.T(i18n.QuitPrompt),
		modals.Option{Label: m.loc.T(i18n.Yes), OnSelect: m.quit},
		modals.Option{Label: m.loc.T(i18n.No)},
	)
	return nil
}

func (m *Model) showHelp() tea.Cmd {
	m.modal = modals.NewInformationModal(m.loc.T(i18n.HelpTitle), m.helpText())
	return nil
}

// helpText lists the global controls and those of the visible section.
func (m *Model) helpText() string {
	var b strings.Builder
	writeSet := func(title string, set ControlSet) {
		fmt.Fprintf(&b, "%s\n", title)
		for _, c := range set.Controls {
			fmt.Fprintf(&b, "  %-16s %s\n", strings.Join(c.Keys, "/"), m.loc.T(c.Name))
		}
		b.WriteString("\n")
	}
	writeSet(m.loc.T(i18n.Everywhere), globalControls())
	writeSet(m.sectionTitle(m.router.Current()), sectionControls(m.router.Current()))
	if m.router.Current() == navigation.Chat {
		b.WriteString(m.loc.T(i18n.CategoryHint) + "\n")
	}
	return b.String()
}

// controlHints renders the section controls for the footer.
func (m *Model) controlHints() string {
	set := sectionControls(m.router.Current())
	hints := make([]string, 0, len(set.Controls)+1)
	seen := map[string]bool{}
	for _, c := range set.Controls {
		if seen[c.Name] {
			continue
		}
		seen[c.Name] = true
		hints = append(hints, fmt.Sprintf("%s: %s", c.Keys[0], m.loc.T(c.Name)))
	}
	hints = append(hints, "f1: "+m.loc.T(i18n.ControlHelp), "ctrl+q: "+m.loc.T(i18n.ControlQuit))
	return strings.Join(hints, " | ")
}
