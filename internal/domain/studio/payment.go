package studio

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studiosnap/backend/internal/domain/shared"
)

// Payment is money received from a client after booking, usually settling the
// balance on an event. EventID is optional; walk-in payments have none.
type Payment struct {
	shared.BaseEntity
	TenantID    uuid.UUID
	EventID     *uuid.UUID
	ClientName  string
	Amount      decimal.Decimal
	Method      string
	PaymentDate time.Time
	Notes       string
}

// NewPayment creates a client payment after validating the amount.
func NewPayment(tenantID uuid.UUID, clientName string, amount decimal.Decimal, method string, paymentDate time.Time) (*Payment, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "tenant ID is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "payment amount cannot be negative")
	}

	return &Payment{
		BaseEntity:  shared.NewBaseEntity(),
		TenantID:    tenantID,
		ClientName:  clientName,
		Amount:      amount,
		Method:      method,
		PaymentDate: paymentDate,
	}, nil
}
