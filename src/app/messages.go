package app

import (
	"time"

	"campusai/src/models"
	"campusai/src/services/requests"

	tea "github.com/charmbracelet/bubbletea"
)

// Result messages carry the ticket of the request that produced them so
// stale responses can be dropped.

type chatReplyMsg struct {
	ticket requests.Ticket
	resp   *models.AskResponse
	err    error
}

type scholarshipMsg struct {
	ticket requests.Ticket
	resp   *models.ScholarshipResponse
	err    error
}

type analyticsMsg struct {
	ticket   requests.Ticket
	snapshot *models.AnalyticsSnapshot
	err      error
}

type chartMsg struct {
	ticket   requests.Ticket
	snapshot *models.AnalyticsSnapshot
	err      error
}

type loginMsg struct {
	ticket   requests.Ticket
	username string
	role     string
	resp     *models.AuthResponse
	err      error
}

type logoutMsg struct {
	ticket requests.Ticket
	err    error
}

// frameTickMsg advances the particle animation and the spinner.
type frameTickMsg struct{}

func frameTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return frameTickMsg{}
	})
}
