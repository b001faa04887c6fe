package studio

import (
	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
)

// SourceChangedEventType is published whenever a row in any finance source
// table is created, updated or deleted. Stats consumers treat every change
// the same way: re-derive from scratch.
const SourceChangedEventType = "finance.source_changed"

// Source table names carried on change events.
const (
	TableEvents             = "events"
	TablePayments           = "payments"
	TableExpenses           = "expenses"
	TableStaffPayments      = "staff_payments"
	TableFreelancerPayments = "freelancer_payments"
	TableLedgerEntries      = "ledger_entries"
	TableClosingBalances    = "closing_balances"
)

// Change actions carried on change events.
const (
	ChangeActionCreated = "created"
	ChangeActionUpdated = "updated"
	ChangeActionDeleted = "deleted"
)

// SourceChangedEvent signals a row change in one of the finance source tables.
type SourceChangedEvent struct {
	shared.BaseDomainEvent
	Table  string `json:"table"`
	Action string `json:"action"`
}

// NewSourceChangedEvent creates a change event for a finance source row.
func NewSourceChangedEvent(table, action string, recordID, tenantID uuid.UUID) *SourceChangedEvent {
	return &SourceChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(SourceChangedEventType, table, recordID, tenantID),
		Table:           table,
		Action:          action,
	}
}
