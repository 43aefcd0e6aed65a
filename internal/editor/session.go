package editor

import (
	"sync"
	"time"
)

// Session is an editor owned by one client. Do runs events one at a time.
type Session struct {
	ID string

	mu           sync.Mutex
	editor       *Editor
	lastActivity time.Time
}

func NewSession(id string, settings Settings, now time.Time) *Session {
	return &Session{
		ID:           id,
		editor:       New(settings),
		lastActivity: now,
	}
}

// Do runs fn with exclusive access to the editor and records the activity time.
func (s *Session) Do(now time.Time, fn func(e *Editor) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lastActivity = now
	return fn(s.editor)
}

// IdleSince reports whether the session saw no event after cutoff.
func (s *Session) IdleSince(cutoff time.Time) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastActivity.Before(cutoff)
}

func (s *Session) LastActivity() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.lastActivity
}
