package app

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusai/src/models"
	"campusai/src/navigation"
	"campusai/src/services/api"
	"campusai/src/services/storage"
	"campusai/src/testutil/fakebackend"
)

func fillLogin(m *Model, username, password, role string) {
	m.login.fields[loginUsername].SetValue(username)
	m.login.fields[loginPassword].SetValue(password)
	m.login.fields[loginRole].SetValue(role)
}

func TestAdminLoginUnlocksAnalytics(t *testing.T) {
	backend := fakebackend.New()
	backend.RequireAdmin()
	backend.AddUser("dean", "s3cret", models.RoleAdmin)
	backend.Respond(api.PathAnalytics, 200, map[string]int{"total_queries": 3})
	repo := storage.NewSessionRepository(filepath.Join(t.TempDir(), "session.json"))
	m := newTestModel(t, backend, func(o *Options) {
		o.Sessions = repo
		o.StartSection = navigation.Login
	})
	fillLogin(m, "dean", "s3cret", "Admin")

	cmd := m.Login()
	assert.Empty(t, m.login.Value(loginPassword), "password is cleared once submitted")
	drain(t, m, cmd)

	assert.Equal(t, navigation.Admin, m.Section())
	assert.Equal(t, "dean", m.State().Username)
	assert.Equal(t, models.RoleAdmin, m.State().Role)
	assert.Equal(t, 3, m.State().Counters.TotalQueries)
	assert.Empty(t, m.adminNotice)
	assert.Contains(t, m.status, "Logged in as dean")

	saved, err := repo.Load()
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, "dean", saved.Username)
	assert.Equal(t, models.RoleAdmin, saved.Role)
	require.Len(t, saved.Cookies, 1)
	assert.Equal(t, "session", saved.Cookies[0].Name)
}

func TestStudentLoginOpensChat(t *testing.T) {
	backend := fakebackend.New()
	backend.AddUser("asha", "pw", models.RoleStudent)
	m := newTestModel(t, backend, func(o *Options) { o.StartSection = navigation.Login })
	fillLogin(m, "asha", "pw", "")

	drain(t, m, m.Login())

	assert.Equal(t, navigation.Chat, m.Section())
	assert.Equal(t, models.RoleStudent, m.State().Role)
	assert.Empty(t, backend.Requests(api.PathAnalytics))
}

func TestLoginFailureShowsReason(t *testing.T) {
	backend := fakebackend.New()
	backend.AddUser("asha", "pw", models.RoleStudent)
	m := newTestModel(t, backend, func(o *Options) { o.StartSection = navigation.Login })
	fillLogin(m, "asha", "wrong", models.RoleStudent)

	drain(t, m, m.Login())

	assert.Equal(t, navigation.Login, m.Section())
	assert.Empty(t, m.State().Username)
	assert.Equal(t, "Login failed: Invalid password", m.status)
}

func TestLogoutForgetsSession(t *testing.T) {
	backend := fakebackend.New()
	backend.AddUser("asha", "pw", models.RoleStudent)
	repo := storage.NewSessionRepository(filepath.Join(t.TempDir(), "session.json"))
	m := newTestModel(t, backend, func(o *Options) { o.Sessions = repo })
	fillLogin(m, "asha", "pw", models.RoleStudent)
	drain(t, m, m.Login())
	require.Equal(t, "asha", m.State().Username)

	drain(t, m, m.Logout())

	assert.Empty(t, m.State().Username)
	assert.Empty(t, m.State().Role)
	assert.Equal(t, "Logged out", m.status)
	saved, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, saved)
	assert.Len(t, backend.Requests(api.PathLogout), 1)
}

func TestNewRestoresSavedSession(t *testing.T) {
	m := newTestModel(t, fakebackend.New(), func(o *Options) {
		o.Session = &models.Session{Username: "asha", Role: models.RoleStudent}
	})

	assert.Equal(t, "asha", m.State().Username)
	assert.Equal(t, "asha", m.login.Value(loginUsername))
	assert.Equal(t, models.RoleStudent, m.login.Value(loginRole))
}
