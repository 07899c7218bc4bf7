package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/butcherynv/posdesk/internal/adapter/backend"
	"github.com/butcherynv/posdesk/internal/pkg/session"
)

// RefreshFacade exposes the subset of application functionality required by the worker.
type RefreshFacade interface {
	RefreshOrders(ctx context.Context) error
	RefreshItems(ctx context.Context) error
	RefreshWaiters(ctx context.Context) error
}

// SnapshotRefresher re-fetches the upstream lists on a fixed interval so the
// snapshots stay warm between user actions.
type SnapshotRefresher struct {
	facade   RefreshFacade
	interval time.Duration
	token    string
	logger   *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewSnapshotRefresher constructs the background refresher. The token is the
// machine credential forwarded upstream; without one the refresher stays
// idle and snapshots are only filled on demand.
func NewSnapshotRefresher(facade RefreshFacade, interval time.Duration, token string, logger *slog.Logger) *SnapshotRefresher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &SnapshotRefresher{
		facade:   facade,
		interval: interval,
		token:    token,
		logger:   logger,
	}
}

// Start launches background refreshing.
func (r *SnapshotRefresher) Start(ctx context.Context) {
	if r.token == "" {
		r.logger.Info("no service token configured, background refresh disabled")
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel

	r.wg.Add(1)
	go r.loop(runCtx)
}

// Stop waits for the refresh loop to finish.
func (r *SnapshotRefresher) Stop() {
	r.mu.Lock()
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.mu.Unlock()

	r.wg.Wait()
}

func (r *SnapshotRefresher) loop(ctx context.Context) {
	defer r.wg.Done()
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.refreshAll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.refreshAll(ctx)
		}
	}
}

func (r *SnapshotRefresher) refreshAll(ctx context.Context) {
	sess, err := session.FromCredential(r.token)
	if err != nil {
		r.logger.Error("service token is not a usable credential", slog.String("error", err.Error()))
		return
	}
	ctx = session.NewContext(ctx, sess)

	for name, refresh := range map[string]func(context.Context) error{
		"orders":  r.facade.RefreshOrders,
		"items":   r.facade.RefreshItems,
		"waiters": r.facade.RefreshWaiters,
	} {
		if err := refresh(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}
			var netErr backend.NetworkError
			if errors.As(err, &netErr) {
				// Upstream outages are expected; the stale snapshot stays
				// visible until the next successful pass.
				r.logger.Warn("snapshot refresh skipped", slog.String("list", name), slog.String("error", err.Error()))
				continue
			}
			r.logger.Error("snapshot refresh failed", slog.String("list", name), slog.String("error", err.Error()))
		}
	}
}
