package app

import (
	"strings"

	"campusai/src/i18n"
	"campusai/src/models"
	"campusai/src/services/requests"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// =====================================================================================
// 💬 Chat Controller
// =====================================================================================

// SwitchCategory makes cat the active category and announces it in the log.
func (m *Model) SwitchCategory(cat string) {
	m.state.Category = cat
	m.appendEntry(models.EntryNotice, m.loc.T(i18n.SwitchedCategory, map[string]any{
		"Category": strings.ToUpper(cat),
	}))
	m.scrollToBottom()
}

// cycleCategory switches to the category after the active one.
func (m *Model) cycleCategory() tea.Cmd {
	next := models.Categories[0]
	for i, c := range models.Categories {
		if c == m.state.Category {
			next = models.Categories[(i+1)%len(models.Categories)]
			break
		}
	}
	m.SwitchCategory(next)
	return nil
}

// submitChat handles enter in the chat input. Lines starting with "/cat"
// switch category and "/help" opens the help dialog; anything else is sent.
func (m *Model) submitChat() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	switch {
	case text == "/help":
		m.input.Clear()
		return m.showHelp()
	case text == "/cat" || strings.HasPrefix(text, "/cat "):
		m.input.Clear()
		if cat := strings.TrimSpace(strings.TrimPrefix(text, "/cat")); cat != "" {
			m.SwitchCategory(strings.ToLower(cat))
		}
		return nil
	}
	return m.SendMessage()
}

// SendMessage posts the chat input tagged with the active category. The
// user entry is appended and the input cleared before the reply arrives.
// Blank input does nothing.
func (m *Model) SendMessage() tea.Cmd {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return nil
	}
	m.appendEntry(models.EntryUser, text)

	ticket := m.tracker.Begin(requests.Chat)
	message := models.TagMessage(m.state.Category, text)
	client := m.client
	cmd := func() tea.Msg {
		resp, err := client.Ask(ticket.Context(), message)
		return chatReplyMsg{ticket: ticket, resp: resp, err: err}
	}

	m.input.Clear()
	m.scrollToBottom()
	return cmd
}

func (m *Model) handleChatReply(msg chatReplyMsg) tea.Cmd {
	if !m.tracker.Finish(msg.ticket) {
		m.logger.Debug("dropping superseded chat reply", "request", msg.ticket.ID)
		return nil
	}
	if msg.err != nil {
		m.logger.Error("chat request failed", "error", msg.err)
		m.appendEntry(models.EntryError, m.loc.T(i18n.ServerError))
		m.scrollToBottom()
		return nil
	}

	answer := ""
	if msg.resp != nil {
		answer = msg.resp.Answer
	}
	if answer == "" {
		answer = m.loc.T(i18n.NoResponse)
	}
	m.appendEntry(models.EntryBot, answer)
	m.scrollToBottom()
	return m.refreshAnalytics()
}

// copyLastReply puts the newest bot answer on the clipboard.
func (m *Model) copyLastReply() tea.Cmd {
	for i := len(m.state.Log) - 1; i >= 0; i-- {
		if e := m.state.Log[i]; e.Kind == models.EntryBot {
			if err := clipboard.WriteAll(e.Text); err != nil {
				m.logger.Warn("clipboard write failed", "error", err)
				return nil
			}
			m.status = m.loc.T(i18n.Copied)
			return nil
		}
	}
	return nil
}
