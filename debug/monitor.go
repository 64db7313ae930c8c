// Package debug provides runtime monitoring and diagnostics.
package debug

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/drake/darkpool/session"
)

// Enabled returns true if debug mode is active (DARKPOOL_DEBUG=1).
func Enabled() bool {
	return os.Getenv("DARKPOOL_DEBUG") == "1"
}

// Monitor periodically logs session counters when debug mode is enabled.
type Monitor struct {
	stats    *session.Stats
	interval time.Duration
	ctx      context.Context
	logger   *log.Logger
}

// NewMonitor creates a monitor over the session's counters.
// Returns nil when debug mode is off; a nil monitor is safe to Start.
func NewMonitor(ctx context.Context, stats *session.Stats) *Monitor {
	if !Enabled() {
		return nil
	}

	return &Monitor{
		stats:    stats,
		interval: 5 * time.Second,
		ctx:      ctx,
		logger:   log.New(os.Stderr, "", log.LstdFlags),
	}
}

// Start begins the monitoring loop in a goroutine.
func (m *Monitor) Start() {
	if m == nil {
		return
	}
	go m.run()
}

func (m *Monitor) run() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Println("[DEBUG] Monitor started")

	for {
		select {
		case <-m.ctx.Done():
			m.logger.Println("[DEBUG] Monitor stopped")
			return
		case <-ticker.C:
			m.logger.Printf("[DEBUG] frames=%d keys=%d submissions=%d",
				m.stats.Frames.Load(),
				m.stats.Keys.Load(),
				m.stats.Submissions.Load(),
			)
		}
	}
}
