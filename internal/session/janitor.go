package session

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/clearclause/contract-rag/internal/metrics"
	"github.com/clearclause/contract-rag/pkg/logger_i"
)

// Janitor sweeps expired sessions on a fixed schedule. A run that overlaps a
// still-executing previous run is skipped.
type Janitor struct {
	manager  *Manager
	cron     *cron.Cron
	running  atomic.Bool
	interval time.Duration
	logger   *logger_i.Logger
}

func NewJanitor(manager *Manager, interval time.Duration) *Janitor {
	return &Janitor{
		manager:  manager,
		cron:     cron.New(),
		interval: interval,
		logger:   logger_i.NewLogger("sessionJanitor"),
	}
}

func (j *Janitor) Start() error {
	schedule := fmt.Sprintf("@every %s", j.interval)
	_, err := j.cron.AddFunc(schedule, j.sweep)
	if err != nil {
		return fmt.Errorf("scheduling session cleanup: %w", err)
	}
	j.cron.Start()
	j.logger.Info("session cleanup scheduled", "interval", j.interval.String())
	return nil
}

func (j *Janitor) sweep() {
	if !j.running.CompareAndSwap(false, true) {
		j.logger.Warn("previous cleanup still running, skipping this run")
		return
	}
	defer j.running.Store(false)

	removed := j.manager.CleanupExpired(j.manager.MaxAge())
	metrics.SessionsCleanedTotal.Add(float64(removed))
	metrics.ActiveSessions.Set(float64(j.manager.Count()))
}

// Stop halts the schedule, waits for an in-flight sweep, then drops every
// remaining session so nothing survives shutdown.
func (j *Janitor) Stop() {
	<-j.cron.Stop().Done()
	removed := j.manager.CleanupExpired(0)
	metrics.SessionsCleanedTotal.Add(float64(removed))
	metrics.ActiveSessions.Set(0)
	j.logger.Info("session janitor stopped", "finalRemoved", removed)
}
