package database

import (
	"sync"
	"time"

	"github.com/ds124wfegd/catchcraft/internal/editor"
	"github.com/ds124wfegd/catchcraft/internal/entity"
)

type memorySessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*editor.Session
}

func NewSessionRepository() SessionRepository {
	return &memorySessionRepository{sessions: make(map[string]*editor.Session)}
}

func (r *memorySessionRepository) Save(session *editor.Session) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = session
}

func (r *memorySessionRepository) FindByID(id string) (*editor.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[id]
	if !ok {
		return nil, entity.ErrSessionNotFound
	}
	return session, nil
}

func (r *memorySessionRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[id]; !ok {
		return entity.ErrSessionNotFound
	}
	delete(r.sessions, id)
	return nil
}

// DeleteIdle removes sessions with no activity after cutoff and returns their ids.
func (r *memorySessionRepository) DeleteIdle(cutoff time.Time) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	var removed []string
	for id, session := range r.sessions {
		if session.IdleSince(cutoff) {
			delete(r.sessions, id)
			removed = append(removed, id)
		}
	}
	return removed
}

func (r *memorySessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}
