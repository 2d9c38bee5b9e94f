package session

import (
	"testing"
	"time"
)

func TestJanitorSweep(t *testing.T) {
	m := NewManager(1 * time.Hour)
	current := time.Now()
	m.now = func() time.Time { return current }

	m.Create("old.pdf", "text", nil, nil)
	current = current.Add(2 * time.Hour)
	m.Create("fresh.pdf", "text", nil, nil)

	j := NewJanitor(m, time.Minute)
	j.sweep()

	if m.Count() != 1 {
		t.Errorf("count after sweep = %d; want 1", m.Count())
	}
}

func TestJanitorSweepSkipsWhenRunning(t *testing.T) {
	m := NewManager(1 * time.Hour)
	current := time.Now()
	m.now = func() time.Time { return current }
	m.Create("a.pdf", "text", nil, nil)
	current = current.Add(2 * time.Hour)

	j := NewJanitor(m, time.Minute)
	j.running.Store(true)

	j.sweep()
	if m.Count() != 1 {
		t.Error("overlapping sweep must not touch the store")
	}
}

func TestJanitorStopDropsEverything(t *testing.T) {
	m := NewManager(24 * time.Hour)
	m.Create("a.pdf", "text", nil, nil)
	m.Create("b.pdf", "text", nil, nil)

	j := NewJanitor(m, time.Hour)
	if err := j.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	j.Stop()

	if m.Count() != 0 {
		t.Errorf("count after Stop = %d; want 0", m.Count())
	}
}
