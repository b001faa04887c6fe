package studio

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// notifyChange publishes a source change event for a finance table row.
// The write has already been persisted; a failed publish only delays the
// next stats recompute.
func notifyChange(ctx context.Context, publisher shared.EventPublisher, table, action string, recordID, tenantID uuid.UUID) {
	if publisher == nil {
		return
	}
	_ = publisher.Publish(ctx, studio.NewSourceChangedEvent(table, action, recordID, tenantID))
}
