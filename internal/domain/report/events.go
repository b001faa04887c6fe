package report

import (
	"github.com/studiosnap/backend/internal/domain/shared"
)

// StatsRecomputedEventType is published after each successful aggregation
// pass. Streaming consumers push the carried stats to connected clients.
const StatsRecomputedEventType = "finance.stats_recomputed"

// StatsRecomputedEvent carries a freshly derived stats picture.
type StatsRecomputedEvent struct {
	shared.BaseDomainEvent
	Stats *DerivedStats `json:"stats"`
}

// NewStatsRecomputedEvent wraps derived stats in a domain event.
func NewStatsRecomputedEvent(stats *DerivedStats) *StatsRecomputedEvent {
	return &StatsRecomputedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(StatsRecomputedEventType, "derived_stats", stats.TenantID, stats.TenantID),
		Stats:           stats,
	}
}
