package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

const refreshTimeout = 30 * time.Second

// RefreshTrigger listens for finance source row changes and re-derives the
// owning tenant's stats. Bursts of changes coalesce through a per-tenant
// debounce window.
type RefreshTrigger struct {
	stats    *FinanceStatsService
	logger   *zap.Logger
	debounce time.Duration

	mu     sync.Mutex
	timers map[uuid.UUID]*time.Timer
}

// RefreshOption configures a RefreshTrigger.
type RefreshOption func(*RefreshTrigger)

// WithRefreshLogger sets the logger.
func WithRefreshLogger(logger *zap.Logger) RefreshOption {
	return func(t *RefreshTrigger) {
		t.logger = logger
	}
}

// WithDebounce sets the quiet period before a burst of changes triggers one
// refresh. Zero disables debouncing.
func WithDebounce(d time.Duration) RefreshOption {
	return func(t *RefreshTrigger) {
		t.debounce = d
	}
}

// NewRefreshTrigger creates a trigger over the stats service.
func NewRefreshTrigger(stats *FinanceStatsService, opts ...RefreshOption) *RefreshTrigger {
	t := &RefreshTrigger{
		stats:    stats,
		logger:   zap.NewNop(),
		debounce: 250 * time.Millisecond,
		timers:   make(map[uuid.UUID]*time.Timer),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// EventTypes implements shared.EventHandler.
func (t *RefreshTrigger) EventTypes() []string {
	return []string{studio.SourceChangedEventType}
}

// Handle implements shared.EventHandler. Any source row change schedules a
// full re-aggregation for that tenant.
func (t *RefreshTrigger) Handle(_ context.Context, event shared.DomainEvent) error {
	tenantID := event.TenantID()
	if tenantID == uuid.Nil {
		return nil
	}

	if t.debounce <= 0 {
		t.refresh(tenantID)
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if timer, ok := t.timers[tenantID]; ok {
		timer.Reset(t.debounce)
		return nil
	}
	t.timers[tenantID] = time.AfterFunc(t.debounce, func() {
		t.mu.Lock()
		delete(t.timers, tenantID)
		t.mu.Unlock()
		t.refresh(tenantID)
	})
	return nil
}

func (t *RefreshTrigger) refresh(tenantID uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	if _, err := t.stats.Refresh(ctx, tenantID); err != nil {
		t.logger.Warn("background stats refresh failed",
			zap.String("tenant_id", tenantID.String()),
			zap.Error(err))
	}
}
