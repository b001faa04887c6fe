package studio

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studiosnap/backend/internal/domain/shared"
)

// ClosingBalance records money already settled and carried out of the books
// at a period close. Closed amounts reduce what still counts as pending.
type ClosingBalance struct {
	shared.BaseEntity
	TenantID    uuid.UUID
	Amount      decimal.Decimal
	ClosingDate time.Time
	Notes       string
}

// NewClosingBalance creates a period-close record.
func NewClosingBalance(tenantID uuid.UUID, amount decimal.Decimal, closingDate time.Time) (*ClosingBalance, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "tenant ID is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "closing amount cannot be negative")
	}

	return &ClosingBalance{
		BaseEntity:  shared.NewBaseEntity(),
		TenantID:    tenantID,
		Amount:      amount,
		ClosingDate: closingDate,
	}, nil
}
