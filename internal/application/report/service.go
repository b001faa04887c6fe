package report

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	domreport "github.com/studiosnap/backend/internal/domain/report"
	"github.com/studiosnap/backend/internal/domain/shared"
)

// StatsQuery selects what to aggregate. An empty range means global.
type StatsQuery struct {
	Range       domreport.TimeRange
	CustomStart *time.Time
	CustomEnd   *time.Time
}

func (q StatsQuery) normalized() StatsQuery {
	if q.Range == "" {
		q.Range = domreport.RangeGlobal
	}
	return q
}

// FinanceStatsService runs aggregation passes and keeps the latest good
// result per tenant. Concurrent passes for one tenant resolve by
// last-initiated-wins: an older pass that finishes late never overwrites a
// newer one.
type FinanceStatsService struct {
	fetcher   *SnapshotFetcher
	publisher shared.EventPublisher
	logger    *zap.Logger
	clock     func() time.Time

	mu         sync.Mutex
	passSeq    uint64
	latestPass map[uuid.UUID]uint64
	lastGood   map[uuid.UUID]*domreport.DerivedStats
	lastQuery  map[uuid.UUID]StatsQuery
}

// StatsOption configures a FinanceStatsService.
type StatsOption func(*FinanceStatsService)

// WithStatsLogger sets the logger.
func WithStatsLogger(logger *zap.Logger) StatsOption {
	return func(s *FinanceStatsService) {
		s.logger = logger
	}
}

// WithEventPublisher sets the bus successful passes are announced on.
func WithEventPublisher(publisher shared.EventPublisher) StatsOption {
	return func(s *FinanceStatsService) {
		s.publisher = publisher
	}
}

// WithClock overrides the time source, for tests.
func WithClock(clock func() time.Time) StatsOption {
	return func(s *FinanceStatsService) {
		s.clock = clock
	}
}

// NewFinanceStatsService creates the stats service.
func NewFinanceStatsService(fetcher *SnapshotFetcher, opts ...StatsOption) *FinanceStatsService {
	s := &FinanceStatsService{
		fetcher:    fetcher,
		logger:     zap.NewNop(),
		clock:      time.Now,
		latestPass: make(map[uuid.UUID]uint64),
		lastGood:   make(map[uuid.UUID]*domreport.DerivedStats),
		lastQuery:  make(map[uuid.UUID]StatsQuery),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Compute runs one aggregation pass. A nil tenant short-circuits to an
// all-zero picture without touching the database. On a fetch failure the
// previous good stats for the tenant are returned alongside the error so
// callers can keep a stale-but-consistent display.
func (s *FinanceStatsService) Compute(ctx context.Context, tenantID uuid.UUID, query StatsQuery) (*domreport.DerivedStats, error) {
	query = query.normalized()
	now := s.clock()

	window, err := domreport.ResolveWindow(query.Range, now, query.CustomStart, query.CustomEnd)
	if err != nil {
		return nil, err
	}

	if tenantID == uuid.Nil {
		return domreport.EmptyStats(uuid.Nil, query.Range, window, now), nil
	}

	pass := s.beginPass(tenantID, query)

	snap, err := s.fetcher.Fetch(ctx, tenantID, query.Range, window)
	if err != nil {
		s.logger.Error("aggregation pass failed",
			zap.String("tenant_id", tenantID.String()),
			zap.String("range", string(query.Range)),
			zap.Error(err))
		return s.LastGood(tenantID), err
	}

	stats := Aggregate(tenantID, query.Range, window, now, snap)

	if !s.commitPass(tenantID, pass, stats) {
		// A newer pass started while this one ran; its result wins.
		return stats, nil
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, domreport.NewStatsRecomputedEvent(stats)); err != nil {
			s.logger.Warn("failed to publish recomputed stats",
				zap.String("tenant_id", tenantID.String()),
				zap.Error(err))
		}
	}

	return stats, nil
}

// Refresh reruns the tenant's most recent query, defaulting to global when
// the tenant has not asked for stats yet.
func (s *FinanceStatsService) Refresh(ctx context.Context, tenantID uuid.UUID) (*domreport.DerivedStats, error) {
	s.mu.Lock()
	query, ok := s.lastQuery[tenantID]
	s.mu.Unlock()
	if !ok {
		query = StatsQuery{Range: domreport.RangeGlobal}
	}
	return s.Compute(ctx, tenantID, query)
}

// LastGood returns the most recent successful stats for the tenant, or nil.
func (s *FinanceStatsService) LastGood(tenantID uuid.UUID) *domreport.DerivedStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastGood[tenantID]
}

func (s *FinanceStatsService) beginPass(tenantID uuid.UUID, query StatsQuery) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.passSeq++
	s.latestPass[tenantID] = s.passSeq
	s.lastQuery[tenantID] = query
	return s.passSeq
}

func (s *FinanceStatsService) commitPass(tenantID uuid.UUID, pass uint64, stats *domreport.DerivedStats) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.latestPass[tenantID] != pass {
		return false
	}
	s.lastGood[tenantID] = stats
	return true
}
