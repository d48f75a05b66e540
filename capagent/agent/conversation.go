package agent

import (
	"sync"

	ports "github.com/ZanzyTHEbar/capagent/capagent/agent/ports"
	"github.com/google/uuid"
)

// Conversation is the append-only context of one agent: history, inert user
// preferences and a session id fixed at creation. It is safe for concurrent use.
type Conversation struct {
	mu          sync.RWMutex
	sessionID   string
	history     []ports.Turn
	preferences map[string]any
}

// NewConversation creates an empty conversation with a fresh session id.
func NewConversation(sessionPrefix string) *Conversation {
	return &Conversation{
		sessionID:   sessionPrefix + uuid.New().String(),
		preferences: make(map[string]any),
	}
}

func (c *Conversation) SessionID() string { return c.sessionID }

// Append records turns in order. All turns passed in one call are adjacent in history.
func (c *Conversation) Append(turns ...ports.Turn) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, turns...)
}

func (c *Conversation) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.history)
}

// Turns returns a copy of the history, oldest first.
func (c *Conversation) Turns() []ports.Turn {
	c.mu.RLock()
	defer c.mu.RUnlock()
	turns := make([]ports.Turn, len(c.history))
	copy(turns, c.history)
	return turns
}

func (c *Conversation) Last() (ports.Turn, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.history) == 0 {
		return ports.Turn{}, false
	}
	return c.history[len(c.history)-1], true
}

// SetPreference stores a user preference. Nothing reads preferences yet.
func (c *Conversation) SetPreference(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.preferences[key] = value
}

func (c *Conversation) Preference(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.preferences[key]
	return v, ok
}

// pendingView is what a capability sees while a message is in flight: the
// committed history followed by the not yet committed user turn.
type pendingView struct {
	conv    *Conversation
	pending ports.Turn
}

func (v pendingView) SessionID() string { return v.conv.SessionID() }

func (v pendingView) Len() int { return v.conv.Len() + 1 }

func (v pendingView) Turns() []ports.Turn { return append(v.conv.Turns(), v.pending) }

func (v pendingView) Last() (ports.Turn, bool) { return v.pending, true }

var (
	_ ports.HistoryView = (*Conversation)(nil)
	_ ports.HistoryView = pendingView{}
)
