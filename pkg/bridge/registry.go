package bridge

import (
	"fmt"
	"sync"
	"time"
)

// Registry is the thread-safe map of session id to session. Removal
// closes the session's connection before dropping the entry; the
// receiver goroutine keeps ownership of the socket until it has observed
// the closure (Session.Done).
type Registry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	lastID   int64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sessions: make(map[string]*Session)}
}

// Create builds a session with a fresh time-based id and registers it.
// The caller still has to Connect it.
func (r *Registry) Create(addr, clientName string, numRounds int, timeout time.Duration) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Millisecond timestamps collide under burst creation; bump until
	// unique so ids stay strictly increasing.
	id := time.Now().UnixMilli()
	if id <= r.lastID {
		id = r.lastID + 1
	}
	r.lastID = id

	s := NewSession(fmt.Sprintf("session_%d", id), addr, clientName, numRounds, timeout)
	r.sessions[s.ID()] = s
	sessionsCreated.Inc()
	return s
}

// Get looks up a session by id.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Remove closes the session's connection and deletes the entry. It
// reports whether the id was present.
func (r *Registry) Remove(id string) bool {
	r.mu.Lock()
	s, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()
	if ok {
		s.Close()
	}
	return ok
}

// Len returns the number of registered sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
