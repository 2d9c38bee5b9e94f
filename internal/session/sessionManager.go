package session

import (
	"encoding/hex"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/clearclause/contract-rag/internal/apperr"
	"github.com/clearclause/contract-rag/internal/rag/vectorindex"
	"github.com/clearclause/contract-rag/pkg/logger_i"
)

// Session holds everything indexed for one uploaded document. The index is
// immutable after creation; only the access timestamp mutates, under the
// manager lock.
type Session struct {
	ID             string
	Filename       string
	Text           string
	Index          *vectorindex.FlatIndex
	ChunkMap       map[int]string
	CreatedAt      time.Time
	LastAccessedAt time.Time
}

type Stats struct {
	Count     int
	OldestAge time.Duration
	NewestAge time.Duration
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session
	maxAge   time.Duration
	logger   *logger_i.Logger
	now      func() time.Time
}

func NewManager(maxAge time.Duration) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		maxAge:   maxAge,
		logger:   logger_i.NewLogger("sessionManager"),
		now:      time.Now,
	}
}

// Create registers a new session and returns its id, a 32-char lowercase hex
// string with no dashes.
func (m *Manager) Create(filename, text string, index *vectorindex.FlatIndex, chunkMap map[int]string) string {
	u := uuid.New()
	id := hex.EncodeToString(u[:])

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	m.sessions[id] = &Session{
		ID:             id,
		Filename:       filename,
		Text:           text,
		Index:          index,
		ChunkMap:       chunkMap,
		CreatedAt:      now,
		LastAccessedAt: now,
	}
	m.logger.Info("session created", "sessionId", id, "filename", filename, "chunks", len(chunkMap))
	return id
}

// Get returns the session and refreshes its access time. A session past the
// configured max age is deleted on the spot and reported as expired.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	s, ok := m.sessions[id]
	if !ok {
		return nil, apperr.New(apperr.NotFound, "session %q not found", id)
	}
	if m.maxAge > 0 && m.now().Sub(s.CreatedAt) > m.maxAge {
		delete(m.sessions, id)
		m.logger.Info("session expired on access", "sessionId", id)
		return nil, apperr.New(apperr.Expired, "session %q has expired", id)
	}
	s.LastAccessedAt = m.now()
	return s, nil
}

// Delete is idempotent; removing an unknown id is not an error.
func (m *Manager) Delete(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return false
	}
	delete(m.sessions, id)
	m.logger.Info("session deleted", "sessionId", id)
	return true
}

// CleanupExpired removes every session older than maxAge and returns how many
// were removed. A zero maxAge removes all sessions regardless of age.
func (m *Manager) CleanupExpired(maxAge time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	removed := 0
	for id, s := range m.sessions {
		if maxAge == 0 || now.Sub(s.CreatedAt) > maxAge {
			delete(m.sessions, id)
			removed++
		}
	}
	if removed > 0 {
		m.logger.Info("expired sessions cleaned", "removed", removed, "remaining", len(m.sessions))
	}
	return removed
}

func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func (m *Manager) MaxAge() time.Duration { return m.maxAge }

// SessionStats reports the population and the age spread, for the detailed
// health endpoint.
func (m *Manager) SessionStats() Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := Stats{Count: len(m.sessions)}
	now := m.now()
	first := true
	for _, s := range m.sessions {
		age := now.Sub(s.CreatedAt)
		if first {
			stats.OldestAge, stats.NewestAge = age, age
			first = false
			continue
		}
		if age > stats.OldestAge {
			stats.OldestAge = age
		}
		if age < stats.NewestAge {
			stats.NewestAge = age
		}
	}
	return stats
}
