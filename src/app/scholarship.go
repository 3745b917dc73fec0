package app

import (
	"campusai/src/i18n"
	"campusai/src/models"
	"campusai/src/services/requests"

	tea "github.com/charmbracelet/bubbletea"
)

// =====================================================================================
// 🎓 Scholarship Controller
// =====================================================================================

const (
	fieldCourse = iota
	fieldYear
	fieldCategory
	fieldIncome
)

// Profile returns the scholarship form values exactly as typed.
func (m *Model) Profile() models.ScholarshipProfile {
	return models.ScholarshipProfile{
		Course:   m.scholarship.Value(fieldCourse),
		Year:     m.scholarship.Value(fieldYear),
		Category: m.scholarship.Value(fieldCategory),
		Income:   m.scholarship.Value(fieldIncome),
	}
}

// SetProfile fills the scholarship form.
func (m *Model) SetProfile(p models.ScholarshipProfile) {
	m.scholarship.fields[fieldCourse].SetValue(p.Course)
	m.scholarship.fields[fieldYear].SetValue(p.Year)
	m.scholarship.fields[fieldCategory].SetValue(p.Category)
	m.scholarship.fields[fieldIncome].SetValue(p.Income)
}

// GetScholarship posts the form values for evaluation.
func (m *Model) GetScholarship() tea.Cmd {
	profile := m.Profile()
	ticket := m.tracker.Begin(requests.Scholarship)
	client := m.client
	return func() tea.Msg {
		resp, err := client.RecommendScholarship(ticket.Context(), profile)
		return scholarshipMsg{ticket: ticket, resp: resp, err: err}
	}
}

// handleScholarship renders the evaluation. Failures are only logged.
func (m *Model) handleScholarship(msg scholarshipMsg) tea.Cmd {
	if !m.tracker.Finish(msg.ticket) {
		m.logger.Debug("dropping superseded scholarship result", "request", msg.ticket.ID)
		return nil
	}
	if msg.err != nil {
		m.logger.Error("scholarship request failed", "error", msg.err)
		return nil
	}

	m.appendEntry(models.EntryScholarshipHeader, m.loc.T(i18n.ScholarshipHeader))
	var results []models.ScholarshipResult
	if msg.resp != nil {
		results = msg.resp.Data
	}
	if len(results) == 0 {
		m.appendEntry(models.EntryNoScholarships, m.loc.T(i18n.NoScholarships))
	}
	for i := range results {
		result := results[i]
		m.state.Log = append(m.state.Log, models.LogEntry{
			Kind:        models.EntryScholarship,
			Text:        result.Name,
			Scholarship: &result,
		})
	}
	m.scrollToBottom()
	return m.refreshAnalytics()
}
