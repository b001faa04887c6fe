package studio

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studiosnap/backend/internal/domain/shared"
)

// Event is a booked shoot or engagement. TotalAmount is the agreed price,
// AdvanceAmount the deposit collected at booking time, and the editing flags
// track post-production progress on the photo and video deliverables.
type Event struct {
	shared.BaseEntity
	TenantID             uuid.UUID
	ClientName           string
	EventType            string
	Venue                string
	EventDate            time.Time
	TotalAmount          decimal.Decimal
	AdvanceAmount        decimal.Decimal
	AdvancePaymentMethod string
	PhotoEditingDone     bool
	VideoEditingDone     bool
	Notes                string
}

// NewEvent creates a booking after validating the billable fields.
func NewEvent(tenantID uuid.UUID, clientName, eventType string, eventDate time.Time, totalAmount, advanceAmount decimal.Decimal) (*Event, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "tenant ID is required")
	}
	if strings.TrimSpace(clientName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "client name is required")
	}
	if totalAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "total amount cannot be negative")
	}
	if advanceAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "advance amount cannot be negative")
	}

	return &Event{
		BaseEntity:    shared.NewBaseEntity(),
		TenantID:      tenantID,
		ClientName:    strings.TrimSpace(clientName),
		EventType:     eventType,
		EventDate:     eventDate,
		TotalAmount:   totalAmount,
		AdvanceAmount: advanceAmount,
	}, nil
}

// BalanceDue is the portion of the agreed price not covered by the advance.
func (e *Event) BalanceDue() decimal.Decimal {
	due := e.TotalAmount.Sub(e.AdvanceAmount)
	if due.IsNegative() {
		return decimal.Zero
	}
	return due
}
