package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// SessionStore exposes the subset of session persistence required by the janitor.
type SessionStore interface {
	DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error)
}

// SessionJanitor periodically removes expired sessions from the store.
// Expired tokens are already rejected at resolution time; the janitor only
// keeps the sessions table from growing without bound.
type SessionJanitor struct {
	store         SessionStore
	sweepInterval time.Duration
	batchSize     int
	logger        *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
	now    func() time.Time
}

// NewSessionJanitor constructs the background session sweeper.
func NewSessionJanitor(store SessionStore, sweepInterval time.Duration, batchSize int, logger *slog.Logger) *SessionJanitor {
	if batchSize <= 0 {
		batchSize = 1
	}
	if sweepInterval <= 0 {
		sweepInterval = time.Minute
	}
	return &SessionJanitor{
		store:         store,
		sweepInterval: sweepInterval,
		batchSize:     batchSize,
		logger:        logger,
		now:           time.Now,
	}
}

// Start launches background sweeping.
func (j *SessionJanitor) Start(ctx context.Context) {
	j.mu.Lock()
	defer j.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel

	j.wg.Add(1)
	go j.run(runCtx)
}

// Stop halts sweeping and waits for the active sweep to finish.
func (j *SessionJanitor) Stop() {
	j.mu.Lock()
	if j.cancel != nil {
		j.cancel()
		j.cancel = nil
	}
	j.mu.Unlock()

	j.wg.Wait()
}

func (j *SessionJanitor) run(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

func (j *SessionJanitor) sweep(ctx context.Context) {
	for {
		removed, err := j.store.DeleteExpired(ctx, j.now(), j.batchSize)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			j.logger.Error("session sweep failed", slog.String("error", err.Error()))
			return
		}
		if removed > 0 {
			j.logger.Info("expired sessions removed", slog.Int64("count", removed))
		}
		// A full batch means there may be more backlog to drain.
		if removed < int64(j.batchSize) {
			return
		}
	}
}
