package worker

import (
	"context"
	"time"

	"github.com/ds124wfegd/catchcraft/internal/service"
	"github.com/sirupsen/logrus"
)

// SessionSweeper drops idle editing sessions on a fixed interval.
type SessionSweeper struct {
	editorService service.EditorService
	interval      time.Duration
	now           func() time.Time
}

func NewSessionSweeper(editorService service.EditorService, interval time.Duration) *SessionSweeper {
	return &SessionSweeper{
		editorService: editorService,
		interval:      interval,
		now:           time.Now,
	}
}

// Start blocks until ctx is done.
func (w *SessionSweeper) Start(ctx context.Context) {
	if w.interval <= 0 {
		logrus.Info("Session sweeper disabled")
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	logrus.WithField("interval", w.interval.String()).Info("Session sweeper started")

	for {
		select {
		case <-ctx.Done():
			logrus.Info("Session sweeper stopped")
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *SessionSweeper) sweep() int {
	removed := w.editorService.SweepIdle(w.now())
	entry := logrus.WithField("live", w.editorService.SessionCount())
	if removed > 0 {
		entry.Infof("Idle sessions cleanup completed: %d removed", removed)
	} else {
		entry.Debug("No idle sessions found for cleanup")
	}
	return removed
}
