package storage

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusai/src/models"
)

func TestSessionRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "state", "session.json")
	repo := NewSessionRepository(file)

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	session := &models.Session{
		BaseURL:  "http://localhost:5000",
		Username: "admin@campus.edu",
		Role:     models.RoleAdmin,
		Cookies:  []models.StoredCookie{{Name: "session", Value: "abc"}},
	}
	require.NoError(t, repo.Save(session))

	info, err := os.Stat(file)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err = repo.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "admin@campus.edu", loaded.Username)
	assert.Equal(t, models.RoleAdmin, loaded.Role)
	assert.Equal(t, session.Cookies, loaded.Cookies)
	assert.False(t, loaded.SavedAt.IsZero())

	require.NoError(t, repo.Clear())
	loaded, err = repo.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// Clearing twice is fine.
	assert.NoError(t, repo.Clear())
}

func TestLoadCorruptSession(t *testing.T) {
	file := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(file, []byte("{not json"), 0600))

	_, err := NewSessionRepository(file).Load()
	var storageErr *models.StorageError
	assert.ErrorAs(t, err, &storageErr)
}

func TestCookieConversion(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	stored := ToStored([]*http.Cookie{
		{Name: "session", Value: "live"},
		{Name: "old", Value: "gone", Expires: past},
	})
	require.Len(t, stored, 2)

	cookies := FromStored(stored)
	require.Len(t, cookies, 1)
	assert.Equal(t, "session", cookies[0].Name)
	assert.Equal(t, "live", cookies[0].Value)
	assert.Equal(t, "/", cookies[0].Path)
}
