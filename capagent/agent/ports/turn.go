package agentports

import "time"

// Role tells who produced a turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleAgent Role = "agent"
)

func (r Role) String() string { return string(r) }

// Turn is one recorded message of a conversation. Turns are values and are
// never modified after they are appended.
type Turn struct {
	Role       Role      `json:"role"`
	Content    string    `json:"content"`
	Timestamp  time.Time `json:"timestamp"`
	Capability Label     `json:"capability,omitempty"` // set on agent turns that were dispatched
	IsError    bool      `json:"is_error,omitempty"`
}

// HistoryView is a read-only view over a conversation.
type HistoryView interface {
	SessionID() string
	Len() int
	Turns() []Turn // returns a copy, oldest first
	Last() (Turn, bool)
}
