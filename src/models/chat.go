package models

import "fmt"

// DefaultCategory is the category active before any switch.
const DefaultCategory = "general"

// Categories offered as shortcuts in the chat view. Any other string is
// still accepted as a category.
var Categories = []string{"general", "exam", "scholarship", "library", "notice"}

// AskRequest is the body of POST /ask.
type AskRequest struct {
	Message string `json:"message"`
}

// AskResponse is the body returned by POST /ask. Only Answer is rendered.
type AskResponse struct {
	Answer     string `json:"answer,omitempty"`
	Intent     string `json:"intent,omitempty"`
	Confidence string `json:"confidence,omitempty"`
}

// TagMessage prefixes text with the category tag sent to the backend.
func TagMessage(category, text string) string {
	return fmt.Sprintf("[%s] %s", category, text)
}
