package app

import (
	"errors"

	"campusai/src/chart"
	"campusai/src/i18n"
	"campusai/src/models"
	"campusai/src/services/requests"

	tea "github.com/charmbracelet/bubbletea"
)

// =====================================================================================
// 📊 Analytics Poller
// =====================================================================================

// refreshAnalytics reloads the counters and the chart.
func (m *Model) refreshAnalytics() tea.Cmd {
	return tea.Batch(m.LoadAnalytics(), m.LoadChart())
}

// LoadAnalytics fetches the counters.
func (m *Model) LoadAnalytics() tea.Cmd {
	ticket := m.tracker.Begin(requests.Analytics)
	client := m.client
	return func() tea.Msg {
		snap, err := client.Analytics(ticket.Context())
		return analyticsMsg{ticket: ticket, snapshot: snap, err: err}
	}
}

// LoadChart fetches the analytics again for the chart.
func (m *Model) LoadChart() tea.Cmd {
	ticket := m.tracker.Begin(requests.Chart)
	client := m.client
	return func() tea.Msg {
		snap, err := client.Analytics(ticket.Context())
		return chartMsg{ticket: ticket, snapshot: snap, err: err}
	}
}

func (m *Model) handleAnalytics(msg analyticsMsg) {
	if !m.tracker.Finish(msg.ticket) {
		m.logger.Debug("dropping stale analytics", "request", msg.ticket.ID)
		return
	}
	if msg.err != nil {
		m.noteAnalyticsError("analytics request failed", msg.err)
		return
	}
	if msg.snapshot == nil {
		return
	}
	m.state.Counters = *msg.snapshot
	m.adminNotice = ""
}

func (m *Model) handleChart(msg chartMsg) {
	if !m.tracker.Finish(msg.ticket) {
		m.logger.Debug("dropping stale chart data", "request", msg.ticket.ID)
		return
	}
	if msg.err != nil {
		m.noteAnalyticsError("chart request failed", msg.err)
		return
	}
	if msg.snapshot == nil {
		return
	}
	m.state.Chart.Replace(chart.New(m.loc.T(i18n.ChartTitle), models.ChartLabels, msg.snapshot.ChartValues()))
}

// noteAnalyticsError logs err. A rejected session also leaves a hint on
// the admin section; counters and chart keep their last values.
func (m *Model) noteAnalyticsError(what string, err error) {
	m.logger.Error(what, "error", err)
	if errors.Is(err, models.ErrUnauthorized) {
		m.adminNotice = m.loc.T(i18n.NeedAdmin)
	}
}
