package models

import (
	"bytes"
	"encoding/json"
)

// ScholarshipProfile holds the raw form values. Nothing is validated or
// coerced; empty strings are sent as-is.
type ScholarshipProfile struct {
	Course   string `json:"course"`
	Year     string `json:"year"`
	Category string `json:"category"`
	Income   string `json:"income"`
}

// ScholarshipResult is one evaluated scholarship returned by the backend.
type ScholarshipResult struct {
	Name        string   `json:"name"`
	Eligible    bool     `json:"eligible"`
	Benefit     Literal  `json:"benefit"`
	Probability Literal  `json:"probability"`
	Reasons     []string `json:"reasons"`
}

// ScholarshipResponse is the body returned by POST /recommend_scholarship.
type ScholarshipResponse struct {
	Data []ScholarshipResult `json:"data"`
}

// Literal keeps a JSON scalar exactly as received so it can be displayed
// whether the backend sent a string or a number.
type Literal json.RawMessage

// UnmarshalJSON stores a copy of the raw value.
func (l *Literal) UnmarshalJSON(data []byte) error {
	*l = append((*l)[0:0], data...)
	return nil
}

// MarshalJSON writes the raw value back, or null when empty.
func (l Literal) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("null"), nil
	}
	return l, nil
}

// String returns strings unquoted and any other value verbatim.
func (l Literal) String() string {
	raw := bytes.TrimSpace(l)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "-"
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
