package models

import "time"

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// SignupRequest is the body of POST /signup.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse is returned by /login and /signup.
type AuthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Role    string `json:"role,omitempty"`
}

// Roles accepted by the backend login.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// StoredCookie is the persisted form of a backend session cookie.
type StoredCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HttpOnly bool      `json:"http_only,omitempty"`
}

// Session is what the client remembers about a login between runs.
type Session struct {
	BaseURL  string         `json:"base_url"`
	Username string         `json:"username,omitempty"`
	Role     string         `json:"role,omitempty"`
	Cookies  []StoredCookie `json:"cookies"`
	SavedAt  time.Time      `json:"saved_at"`
}
