package app

import (
	"fmt"
	"strings"

	"campusai/src/i18n"
	"campusai/src/navigation"

	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"
)

// =====================================================================================
// 🎯 Rendering Methods
// =====================================================================================

var (
	headerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("62")).
		Bold(true).
		Padding(0, 1)

	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Padding(0, 1)
	activeTabStyle = tabStyle.Foreground(lipgloss.Color("15")).Background(lipgloss.Color("62")).Bold(true)

	footerStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Italic(true)
	bannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true)

	counterStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 2).
		Align(lipgloss.Center)
)

var bannerArt = figure.NewFigure("CampusAI", "", true).String()

// View renders the visible section between the tab header and the footer.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width < 40 || m.height < 10 {
		return m.renderMinimalView()
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)

	var body string
	if m.modal != nil {
		body = m.modal.View(m.width, bodyHeight)
	} else {
		body = m.renderSection(m.contentWidth(), bodyHeight)
	}
	body = lipgloss.NewStyle().Padding(0, 1).Height(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// renderMinimalView renders a minimal view for very small terminals
func (m *Model) renderMinimalView() string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Align(lipgloss.Center, lipgloss.Center).
		Width(m.width).
		Height(m.height).
		Render(m.loc.T(i18n.TooSmall))
}

// contentWidth is the width available to a section.
func (m *Model) contentWidth() int {
	return max(m.width-2, 10)
}

func (m *Model) sectionTitle(id string) string {
	switch id {
	case navigation.Home:
		return m.loc.T(i18n.SectionHome)
	case navigation.Chat:
		return m.loc.T(i18n.SectionChat)
	case navigation.Scholarship:
		return m.loc.T(i18n.SectionScholarship)
	case navigation.Admin:
		return m.loc.T(i18n.SectionAdmin)
	case navigation.Login:
		return m.loc.T(i18n.SectionLogin)
	}
	return id
}

// renderHeader draws one tab per section with the visible one highlighted.
func (m *Model) renderHeader() string {
	tabs := make([]string, 0, len(m.router.Sections()))
	for i, id := range m.router.Sections() {
		label := fmt.Sprintf("%d %s", i+1, m.sectionTitle(id))
		if m.router.Visible(id) {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	left := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	right := m.loc.T(i18n.ActiveCategory, map[string]any{"Category": strings.ToUpper(m.state.Category)})
	if m.state.Username != "" {
		right += " | " + m.state.Username + " (" + m.state.Role + ")"
	}
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return headerStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + right)
}

// renderFooter shows the spinner or status line and the section controls.
func (m *Model) renderFooter() string {
	status := m.status
	if m.busy() {
		status = getSpinnerChar(m.spinnerIndex) + " " + m.loc.T(i18n.Waiting)
	}
	line := m.controlHints()
	if status != "" {
		line = statusStyle.Render(status) + "  " + line
	}
	return footerStyle.Width(m.width).Render(line)
}

func (m *Model) renderSection(width, height int) string {
	switch m.router.Current() {
	case navigation.Home:
		return m.renderHome(width, height)
	case navigation.Chat:
		return m.renderChat(width, height)
	case navigation.Scholarship:
		return m.renderScholarship(width, height)
	case navigation.Admin:
		return m.renderAdmin(width, height)
	case navigation.Login:
		return m.renderLogin(width, height)
	}
	return ""
}

// renderHome draws the banner over the rising particle field.
func (m *Model) renderHome(width, height int) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		bannerStyle.Render(bannerArt),
		m.loc.T(i18n.Welcome),
		"",
		helpStyle.Render("enter: "+m.loc.T(i18n.SectionChat)+"  3: "+m.loc.T(i18n.SectionScholarship)+"  5: "+m.loc.T(i18n.SectionLogin)),
	)
	content = lipgloss.PlaceHorizontal(width, lipgloss.Center, content)
	band := height - lipgloss.Height(content)
	if m.field == nil || band <= 0 {
		return content
	}
	return lipgloss.JoinVertical(lipgloss.Left, content, m.field.Render(width, band, m.elapsed))
}

// renderChat draws the log above the input box.
func (m *Model) renderChat(width, height int) string {
	input := m.input.View(width, true, m.loc.T(i18n.InputPlaceholder))
	logHeight := height - lipgloss.Height(input)
	return lipgloss.JoinVertical(lipgloss.Left, m.renderLog(width, logHeight), input)
}

// renderScholarship draws the profile form above the log the results go to.
func (m *Model) renderScholarship(width, height int) string {
	top := lipgloss.JoinVertical(lipgloss.Left,
		m.scholarship.View(min(width, 60)),
		helpStyle.Render(m.loc.T(i18n.SubmitHint)),
		"",
	)
	return lipgloss.JoinVertical(lipgloss.Left, top, m.renderLog(width, height-lipgloss.Height(top)))
}

// renderAdmin draws the counters and the live chart.
func (m *Model) renderAdmin(width, height int) string {
	counter := func(label string, value int) string {
		return counterStyle.Render(headingStyle.Render(fmt.Sprint(value)) + "\n" + label)
	}
	c := m.state.Counters
	counters := lipgloss.JoinHorizontal(lipgloss.Top,
		counter(m.loc.T(i18n.TotalQueries), c.TotalQueries),
		" ",
		counter(m.loc.T(i18n.ExamQueries), c.Exam),
		" ",
		counter(m.loc.T(i18n.ScholarshipQueries), c.Scholarship),
	)
	parts := []string{counters}
	if m.adminNotice != "" {
		parts = append(parts, errorStyle.Render(m.adminNotice))
	}
	if ch := m.state.Chart.Current(); ch != nil {
		chartHeight := height - lipgloss.Height(counters) - len(parts)
		parts = append(parts, "", ch.Render(min(width, 80), max(chartHeight, 6)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// renderLogin draws the login form and the current session.
func (m *Model) renderLogin(width, _ int) string {
	session := helpStyle.Render(m.loc.T(i18n.LoggedOut))
	if m.state.Username != "" {
		session = statusStyle.Render(m.loc.T(i18n.LoggedIn, map[string]any{
			"Username": m.state.Username,
			"Role":     m.state.Role,
		}))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		session,
		"",
		m.login.View(min(width, 60)),
		helpStyle.Render(m.loc.T(i18n.SubmitHint)),
	)
}
