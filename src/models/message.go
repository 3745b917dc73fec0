// message.go - Defines the structured chat log entries rendered by the chat view.
// Entries are held in memory only and never persisted.

package models

// Role identifies who produced a chat log entry.
type Role string

const (
	RoleUser Role = "user"
	RoleBot  Role = "bot"
)

// EntryKind selects how a LogEntry is rendered.
type EntryKind int

const (
	EntryUser EntryKind = iota
	EntryBot
	EntryNotice
	EntryError
	EntryScholarshipHeader
	EntryScholarship
	EntryNoScholarships
)

// LogEntry is a single rendered item of the chat log.
type LogEntry struct {
	Kind        EntryKind
	Text        string
	Scholarship *ScholarshipResult // set for EntryScholarship only
}

// Role reports which side of the conversation the entry belongs to.
func (e LogEntry) Role() Role {
	if e.Kind == EntryUser {
		return RoleUser
	}
	return RoleBot
}
