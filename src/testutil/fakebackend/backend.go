// Package fakebackend is an in-process stand-in for the CampusAI backend,
// used by client and UI tests.
package fakebackend

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const sessionCookie = "session"

// Request is one recorded call.
type Request struct {
	Method string
	Path   string
	Body   []byte
}

// Decode unmarshals the recorded body into v.
func (r Request) Decode(v any) error {
	return json.Unmarshal(r.Body, v)
}

type canned struct {
	status int
	body   any
}

type user struct {
	password string
	role     string
}

// Backend serves /ask, /recommend_scholarship, /analytics and the auth
// endpoints with canned responses.
type Backend struct {
	mu           sync.Mutex
	responses    map[string]canned
	requireAdmin bool
	users        map[string]user
	sessions     map[string]string // token -> role
	requests     []Request
}

// New returns a backend answering every endpoint with an empty 200 JSON object.
func New() *Backend {
	return &Backend{
		responses: make(map[string]canned),
		users:     make(map[string]user),
		sessions:  make(map[string]string),
	}
}

// Start serves the backend on a test server closed at the end of the test.
func (b *Backend) Start(t testing.TB) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(b.Router())
	t.Cleanup(srv.Close)
	return srv
}

// Router builds the chi router for the backend.
func (b *Backend) Router() chi.Router {
	r := chi.NewRouter()
	r.Post("/ask", b.handleCanned("/ask"))
	r.Post("/recommend_scholarship", b.handleCanned("/recommend_scholarship"))
	r.Get("/analytics", b.handleAnalytics)
	r.Post("/login", b.handleLogin)
	r.Post("/signup", b.handleSignup)
	r.Get("/logout", b.handleLogout)
	return r
}

// Respond sets the status and JSON body returned for path.
func (b *Backend) Respond(path string, status int, body any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.responses[path] = canned{status: status, body: body}
}

// RespondRaw sets a non-JSON body, for malformed-response tests.
func (b *Backend) RespondRaw(path string, status int, body string) {
	b.Respond(path, status, rawBody(body))
}

// RequireAdmin makes /analytics answer 403 unless the session role is admin.
func (b *Backend) RequireAdmin() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requireAdmin = true
}

// AddUser registers an account accepted by /login.
func (b *Backend) AddUser(username, password, role string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[username] = user{password: password, role: role}
}

// Requests returns the recorded calls to path, in arrival order.
func (b *Backend) Requests(path string) []Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	var out []Request
	for _, r := range b.requests {
		if r.Path == path {
			out = append(out, r)
		}
	}
	return out
}

// RequestCount returns the number of calls to any endpoint.
func (b *Backend) RequestCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.requests)
}

type rawBody string

func (b *Backend) record(r *http.Request) []byte {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	b.requests = append(b.requests, Request{Method: r.Method, Path: r.URL.Path, Body: body})
	b.mu.Unlock()
	return body
}

func (b *Backend) response(path string) canned {
	b.mu.Lock()
	defer b.mu.Unlock()
	if c, ok := b.responses[path]; ok {
		return c
	}
	return canned{status: http.StatusOK, body: map[string]any{}}
}

func (b *Backend) handleCanned(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		b.record(r)
		c := b.response(path)
		writeJSON(w, c.status, c.body)
	}
}

func (b *Backend) handleAnalytics(w http.ResponseWriter, r *http.Request) {
	b.record(r)
	b.mu.Lock()
	requireAdmin := b.requireAdmin
	b.mu.Unlock()
	if requireAdmin && b.roleFor(r) != "admin" {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "Unauthorized"})
		return
	}
	c := b.response("/analytics")
	writeJSON(w, c.status, c.body)
}

func (b *Backend) handleLogin(w http.ResponseWriter, r *http.Request) {
	body := b.record(r)
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := json.Unmarshal(body, &req); err != nil || req.Username == "" || req.Password == "" || req.Role == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"status": "error", "message": "Missing fields"})
		return
	}

	b.mu.Lock()
	u, ok := b.users[req.Username]
	b.mu.Unlock()
	switch {
	case !ok:
		writeJSON(w, http.StatusUnauthorized, map[string]string{"status": "error", "message": "User not found"})
		return
	case u.password != req.Password:
		writeJSON(w, http.StatusUnauthorized, map[string]string{"status": "error", "message": "Invalid password"})
		return
	case u.role != req.Role:
		writeJSON(w, http.StatusForbidden, map[string]string{"status": "error", "message": "Unauthorized role access"})
		return
	}

	token := uuid.NewString()
	b.mu.Lock()
	b.sessions[token] = u.role
	b.mu.Unlock()
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: token, Path: "/", HttpOnly: true})
	writeJSON(w, http.StatusOK, map[string]string{"status": "success", "role": u.role})
}

func (b *Backend) handleSignup(w http.ResponseWriter, r *http.Request) {
	body := b.record(r)
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.Unmarshal(body, &req); err != nil || req.Email == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"status": "error", "message": "Missing fields"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[req.Email]; exists {
		writeJSON(w, http.StatusConflict, map[string]string{"status": "error", "message": "User already exists"})
		return
	}
	b.users[req.Email] = user{password: req.Password, role: "student"}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (b *Backend) handleLogout(w http.ResponseWriter, r *http.Request) {
	b.record(r)
	if ck, err := r.Cookie(sessionCookie); err == nil {
		b.mu.Lock()
		delete(b.sessions, ck.Value)
		b.mu.Unlock()
	}
	http.SetCookie(w, &http.Cookie{Name: sessionCookie, Value: "", Path: "/", MaxAge: -1})
	http.Redirect(w, r, "/login", http.StatusFound)
}

func (b *Backend) roleFor(r *http.Request) string {
	ck, err := r.Cookie(sessionCookie)
	if err != nil {
		return ""
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.sessions[ck.Value]
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	if raw, ok := data.(rawBody); ok {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(status)
		io.WriteString(w, string(raw))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
