// Package app provides the Bubble Tea page model of the CampusAI client.
package app

import (
	"context"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"campusai/src/chart"
	"campusai/src/components/modals"
	"campusai/src/i18n"
	"campusai/src/models"
	"campusai/src/navigation"
	"campusai/src/particles"
	"campusai/src/services/requests"

	tea "github.com/charmbracelet/bubbletea"
)

// =====================================================================================
// 🚀 Page Model
// =====================================================================================

// Backend is the part of the API client the page talks to.
type Backend interface {
	BaseURL() string
	Ask(ctx context.Context, message string) (*models.AskResponse, error)
	RecommendScholarship(ctx context.Context, profile models.ScholarshipProfile) (*models.ScholarshipResponse, error)
	Analytics(ctx context.Context) (*models.AnalyticsSnapshot, error)
	Login(ctx context.Context, username, password, role string) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	Cookies() []*http.Cookie
}

// SessionStore persists the login between runs.
type SessionStore interface {
	Save(session *models.Session) error
	Clear() error
}

// Options configures a Model. Client and Localizer are required.
type Options struct {
	Client        Backend
	Sessions      SessionStore
	Session       *models.Session
	Localizer     *i18n.Localizer
	Logger        *slog.Logger
	Context       context.Context
	StartSection  string
	Particles     bool
	FrameInterval time.Duration
	Rand          *rand.Rand
}

// PageState is the state shared by the page controllers.
type PageState struct {
	Category string
	Log      []models.LogEntry
	Counters models.AnalyticsSnapshot
	Chart    chart.Holder
	Username string
	Role     string
}

// Model is the root tea.Model of the client.
type Model struct {
	client   Backend
	sessions SessionStore
	loc      *i18n.Localizer
	logger   *slog.Logger
	router   *navigation.Router
	tracker  *requests.Tracker
	field    *particles.Field
	frame    time.Duration
	elapsed  time.Duration

	state       PageState
	input       *textField
	scholarship *form
	login       *form

	scroll       int // log lines hidden below the viewport
	status       string
	adminNotice  string
	spinnerIndex int
	modal        modals.Modal
	width        int
	height       int
	quitting     bool
}

// New builds the page with the start section visible and the default
// category active.
func New(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	frame := opts.FrameInterval
	if frame <= 0 {
		frame = 100 * time.Millisecond
	}
	loc := opts.Localizer
	m := &Model{
		client:   opts.Client,
		sessions: opts.Sessions,
		loc:      loc,
		logger:   logger,
		router:   navigation.NewRouter(navigation.DefaultSections, opts.StartSection),
		tracker:  requests.NewTracker(opts.Context),
		frame:    frame,
		state:    PageState{Category: models.DefaultCategory},
		input:    newTextField(""),
		scholarship: newForm(
			newTextField(loc.T(i18n.FieldCourse)),
			newTextField(loc.T(i18n.FieldYear)),
			newTextField(loc.T(i18n.FieldCategory)),
			newTextField(loc.T(i18n.FieldIncome)),
		),
		login: newForm(
			newTextField(loc.T(i18n.FieldUsername)),
			&textField{label: loc.T(i18n.FieldPassword), masked: true},
			newTextField(loc.T(i18n.FieldRole)),
		),
		width:  80,
		height: 24,
	}
	m.login.fields[loginRole].SetValue(models.RoleStudent)
	if opts.Particles {
		m.field = particles.New(opts.Rand)
	}
	if s := opts.Session; s != nil {
		m.state.Username = s.Username
		m.state.Role = s.Role
		m.login.fields[loginUsername].SetValue(s.Username)
		if s.Role != "" {
			m.login.fields[loginRole].SetValue(s.Role)
		}
	}
	return m
}

// Init starts the frame clock and loads analytics when the page opens on
// the admin section.
func (m *Model) Init() tea.Cmd {
	var load tea.Cmd
	if m.router.Current() == navigation.Admin {
		load = m.refreshAnalytics()
	}
	return tea.Batch(frameTick(m.frame), load)
}

// Update routes messages to the controllers.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.OnResize(msg.Width, msg.Height)
		return m, nil
	case frameTickMsg:
		m.elapsed += m.frame
		m.spinnerIndex++
		return m, frameTick(m.frame)
	case navigation.NavigationMsg:
		return m, m.Navigate(msg.Target)
	case chatReplyMsg:
		return m, m.handleChatReply(msg)
	case scholarshipMsg:
		return m, m.handleScholarship(msg)
	case analyticsMsg:
		m.handleAnalytics(msg)
		return m, nil
	case chartMsg:
		m.handleChart(msg)
		return m, nil
	case loginMsg:
		return m, m.handleLogin(msg)
	case logoutMsg:
		m.handleLogout(msg)
		return m, nil
	}
	return m, nil
}

// OnResize records the terminal size.
func (m *Model) OnResize(width, height int) {
	m.width = width
	m.height = height
}

// State returns the page state.
func (m *Model) State() *PageState { return &m.state }

// Section returns the visible section.
func (m *Model) Section() string { return m.router.Current() }

// Navigate shows section id. Entering the admin section refreshes the
// counters and the chart. Unknown ids are logged and ignored.
func (m *Model) Navigate(id string) tea.Cmd {
	if err := m.router.Navigate(id); err != nil {
		m.logger.Warn("navigation ignored", "error", err)
		return nil
	}
	m.scroll = 0
	if id == navigation.Admin {
		return m.refreshAnalytics()
	}
	return nil
}

// Shutdown cancels in-flight requests and destroys the chart.
func (m *Model) Shutdown() {
	m.tracker.CancelAll()
	m.state.Chart.Release()
}

func (m *Model) quit() tea.Cmd {
	m.quitting = true
	m.Shutdown()
	return tea.Quit
}

// appendEntry adds an entry to the log.
func (m *Model) appendEntry(kind models.EntryKind, text string) {
	m.state.Log = append(m.state.Log, models.LogEntry{Kind: kind, Text: text})
}

func (m *Model) scrollToBottom() {
	m.scroll = 0
}

// busy reports whether a user-triggered request is in flight.
func (m *Model) busy() bool {
	return m.tracker.Pending(requests.Chat) ||
		m.tracker.Pending(requests.Scholarship) ||
		m.tracker.Pending(requests.Auth)
}
