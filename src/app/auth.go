package app

import (
	"strings"

	"campusai/src/i18n"
	"campusai/src/models"
	"campusai/src/navigation"
	"campusai/src/services/requests"
	"campusai/src/services/storage"

	tea "github.com/charmbracelet/bubbletea"
)

// =====================================================================================
// 🔐 Login Section
// =====================================================================================

const (
	loginUsername = iota
	loginPassword
	loginRole
)

// Login posts the login form. The password field is cleared right away.
func (m *Model) Login() tea.Cmd {
	username := strings.TrimSpace(m.login.Value(loginUsername))
	password := m.login.Value(loginPassword)
	role := strings.ToLower(strings.TrimSpace(m.login.Value(loginRole)))
	if role == "" {
		role = models.RoleStudent
	}
	m.login.fields[loginPassword].Clear()

	ticket := m.tracker.Begin(requests.Auth)
	client := m.client
	return func() tea.Msg {
		resp, err := client.Login(ticket.Context(), username, password, role)
		return loginMsg{ticket: ticket, username: username, role: role, resp: resp, err: err}
	}
}

// handleLogin records the session and opens the section matching the role.
func (m *Model) handleLogin(msg loginMsg) tea.Cmd {
	if !m.tracker.Finish(msg.ticket) {
		return nil
	}
	if msg.err != nil {
		m.logger.Warn("login failed", "username", msg.username, "error", msg.err)
		m.status = m.loc.T(i18n.LoginFailed, map[string]any{"Reason": models.Reason(msg.err)})
		return nil
	}

	role := msg.role
	if msg.resp != nil && msg.resp.Role != "" {
		role = msg.resp.Role
	}
	m.state.Username = msg.username
	m.state.Role = role
	m.status = m.loc.T(i18n.LoggedIn, map[string]any{"Username": msg.username, "Role": role})
	m.saveSession()

	if role == models.RoleAdmin {
		return m.Navigate(navigation.Admin)
	}
	return m.Navigate(navigation.Chat)
}

// Logout ends the backend session and forgets the saved one.
func (m *Model) Logout() tea.Cmd {
	ticket := m.tracker.Begin(requests.Auth)
	client := m.client
	return func() tea.Msg {
		return logoutMsg{ticket: ticket, err: client.Logout(ticket.Context())}
	}
}

func (m *Model) handleLogout(msg logoutMsg) {
	if !m.tracker.Finish(msg.ticket) {
		return
	}
	if msg.err != nil {
		m.logger.Warn("logout request failed", "error", msg.err)
	}
	m.state.Username = ""
	m.state.Role = ""
	m.status = m.loc.T(i18n.LoggedOut)
	if m.sessions != nil {
		if err := m.sessions.Clear(); err != nil {
			m.logger.Error("clearing saved session failed", "error", err)
		}
	}
}

func (m *Model) saveSession() {
	if m.sessions == nil {
		return
	}
	session := &models.Session{
		BaseURL:  m.client.BaseURL(),
		Username: m.state.Username,
		Role:     m.state.Role,
		Cookies:  storage.ToStored(m.client.Cookies()),
	}
	if err := m.sessions.Save(session); err != nil {
		m.logger.Error("saving session failed", "error", err)
	}
}
