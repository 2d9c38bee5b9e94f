package session

import (
	"sync"
	"testing"
	"time"

	"github.com/clearclause/contract-rag/internal/apperr"
)

func TestCreateAndGet(t *testing.T) {
	m := NewManager(24 * time.Hour)

	id := m.Create("contract.pdf", "full text", nil, map[int]string{0: "chunk"})
	if len(id) != 32 {
		t.Fatalf("session id = %q; want 32 hex chars", id)
	}

	s, err := m.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if s.Filename != "contract.pdf" || s.ChunkMap[0] != "chunk" {
		t.Errorf("session content mismatch: %+v", s)
	}
}

func TestGetUnknown(t *testing.T) {
	m := NewManager(24 * time.Hour)

	_, err := m.Get("deadbeefdeadbeefdeadbeefdeadbeef")
	if !apperr.Is(err, apperr.NotFound) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestLazyExpiryOnGet(t *testing.T) {
	m := NewManager(1 * time.Hour)
	current := time.Now()
	m.now = func() time.Time { return current }

	id := m.Create("old.pdf", "text", nil, nil)

	current = current.Add(2 * time.Hour)
	_, err := m.Get(id)
	if !apperr.Is(err, apperr.Expired) {
		t.Fatalf("expected Expired, got %v", err)
	}

	// the expired session must have been removed, a second lookup misses
	_, err = m.Get(id)
	if !apperr.Is(err, apperr.NotFound) {
		t.Errorf("expected NotFound after lazy removal, got %v", err)
	}
}

func TestGetRefreshesAccessTime(t *testing.T) {
	m := NewManager(24 * time.Hour)
	current := time.Now()
	m.now = func() time.Time { return current }

	id := m.Create("c.pdf", "text", nil, nil)
	current = current.Add(10 * time.Minute)

	s, err := m.Get(id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !s.LastAccessedAt.Equal(current) {
		t.Errorf("LastAccessedAt = %v; want %v", s.LastAccessedAt, current)
	}
	if !s.CreatedAt.Equal(current.Add(-10 * time.Minute)) {
		t.Errorf("CreatedAt must not move on access")
	}
}

func TestDeleteIdempotent(t *testing.T) {
	m := NewManager(24 * time.Hour)
	id := m.Create("c.pdf", "text", nil, nil)

	if !m.Delete(id) {
		t.Error("first delete should report removal")
	}
	if m.Delete(id) {
		t.Error("second delete should be a no-op")
	}
}

func TestCleanupExpired(t *testing.T) {
	m := NewManager(24 * time.Hour)
	current := time.Now()
	m.now = func() time.Time { return current }

	m.Create("old1.pdf", "text", nil, nil)
	m.Create("old2.pdf", "text", nil, nil)
	current = current.Add(3 * time.Hour)
	fresh := m.Create("fresh.pdf", "text", nil, nil)

	removed := m.CleanupExpired(2 * time.Hour)
	if removed != 2 {
		t.Errorf("removed = %d; want 2", removed)
	}
	if _, err := m.Get(fresh); err != nil {
		t.Errorf("fresh session must survive: %v", err)
	}
}

func TestCleanupZeroAgeRemovesAll(t *testing.T) {
	m := NewManager(24 * time.Hour)
	for range 5 {
		m.Create("c.pdf", "text", nil, nil)
	}

	if removed := m.CleanupExpired(0); removed != 5 {
		t.Errorf("removed = %d; want 5", removed)
	}
	if m.Count() != 0 {
		t.Errorf("count = %d; want 0", m.Count())
	}
}

func TestConcurrentCreates(t *testing.T) {
	m := NewManager(24 * time.Hour)

	const workers = 50
	ids := make([]string, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i] = m.Create("c.pdf", "text", nil, nil)
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for _, id := range ids {
		if seen[id] {
			t.Fatalf("duplicate session id %q", id)
		}
		seen[id] = true
	}
	if m.Count() != workers {
		t.Errorf("count = %d; want %d", m.Count(), workers)
	}
}

func TestSessionStats(t *testing.T) {
	m := NewManager(24 * time.Hour)
	current := time.Now()
	m.now = func() time.Time { return current }

	m.Create("old.pdf", "text", nil, nil)
	current = current.Add(time.Hour)
	m.Create("new.pdf", "text", nil, nil)
	current = current.Add(time.Minute)

	stats := m.SessionStats()
	if stats.Count != 2 {
		t.Errorf("Count = %d; want 2", stats.Count)
	}
	if stats.OldestAge != time.Hour+time.Minute {
		t.Errorf("OldestAge = %v; want %v", stats.OldestAge, time.Hour+time.Minute)
	}
	if stats.NewestAge != time.Minute {
		t.Errorf("NewestAge = %v; want %v", stats.NewestAge, time.Minute)
	}
}
