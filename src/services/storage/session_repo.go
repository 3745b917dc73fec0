// Package storage persists client state between runs.
package storage

import (
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"campusai/src/models"
)

// SessionRepository stores the backend session cookies in a JSON file.
type SessionRepository struct {
	file string
}

// NewSessionRepository returns a repository backed by file.
func NewSessionRepository(file string) *SessionRepository {
	return &SessionRepository{file: file}
}

// Load returns the saved session, or nil if none was saved.
func (r *SessionRepository) Load() (*models.Session, error) {
	data, err := os.ReadFile(r.file)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, &models.StorageError{Message: "failed to read session file", Err: err}
	}
	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, &models.StorageError{Message: "failed to parse session file", Err: err}
	}
	return &session, nil
}

// Save writes the session with owner-only permissions.
func (r *SessionRepository) Save(session *models.Session) error {
	if err := os.MkdirAll(filepath.Dir(r.file), 0755); err != nil {
		return &models.StorageError{Message: "failed to create state directory", Err: err}
	}
	session.SavedAt = time.Now().UTC()
	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return &models.StorageError{Message: "failed to marshal session to JSON", Err: err}
	}
	if err := os.WriteFile(r.file, data, 0600); err != nil {
		return &models.StorageError{Message: "failed to write session file", Err: err}
	}
	return nil
}

// Clear removes the saved session.
func (r *SessionRepository) Clear() error {
	if err := os.Remove(r.file); err != nil && !os.IsNotExist(err) {
		return &models.StorageError{Message: "failed to remove session file", Err: err}
	}
	return nil
}

// ToStored converts jar cookies into their persisted form.
func ToStored(cookies []*http.Cookie) []models.StoredCookie {
	out := make([]models.StoredCookie, 0, len(cookies))
	for _, c := range cookies {
		out = append(out, models.StoredCookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  c.Expires,
			Secure:   c.Secure,
			HttpOnly: c.HttpOnly,
		})
	}
	return out
}

// FromStored converts persisted cookies back for a cookie jar. Expired
// cookies are dropped.
func FromStored(stored []models.StoredCookie) []*http.Cookie {
	now := time.Now()
	out := make([]*http.Cookie, 0, len(stored))
	for _, s := range stored {
		if !s.Expires.IsZero() && s.Expires.Before(now) {
			continue
		}
		path := s.Path
		if path == "" {
			path = "/"
		}
		out = append(out, &http.Cookie{
			Name:     s.Name,
			Value:    s.Value,
			Path:     path,
			Domain:   s.Domain,
			Expires:  s.Expires,
			Secure:   s.Secure,
			HttpOnly: s.HttpOnly,
		})
	}
	return out
}
