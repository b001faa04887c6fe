package studio

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studiosnap/backend/internal/domain/shared"
)

// Ledger entry directions.
const (
	LedgerCredit = "Credit"
	LedgerDebit  = "Debit"
)

// DefaultLedgerCategory labels debit entries that carry no category of their
// own in the expense breakdown.
const DefaultLedgerCategory = "Accounting"

// LedgerEntry is a free-form book entry outside the regular payment and
// expense flows: a partner loan, an owner draw, a correction. Only entries
// flagged ReflectToCompany participate in the company totals; the rest are
// personal bookkeeping.
type LedgerEntry struct {
	shared.BaseEntity
	TenantID         uuid.UUID
	EntryType        string
	Amount           decimal.Decimal
	Method           string
	Category         string
	Description      string
	EntryDate        time.Time
	ReflectToCompany bool
}

// NewLedgerEntry creates a ledger entry after validating the direction.
func NewLedgerEntry(tenantID uuid.UUID, entryType string, amount decimal.Decimal, method string, entryDate time.Time, reflectToCompany bool) (*LedgerEntry, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "tenant ID is required")
	}
	if entryType != LedgerCredit && entryType != LedgerDebit {
		return nil, shared.NewDomainError("INVALID_INPUT", "entry type must be Credit or Debit")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "entry amount cannot be negative")
	}

	return &LedgerEntry{
		BaseEntity:       shared.NewBaseEntity(),
		TenantID:         tenantID,
		EntryType:        entryType,
		Amount:           amount,
		Method:           method,
		EntryDate:        entryDate,
		ReflectToCompany: reflectToCompany,
	}, nil
}

// IsCredit reports whether the entry adds to incoming money.
func (l *LedgerEntry) IsCredit() bool {
	return l.EntryType == LedgerCredit
}

// IsDebit reports whether the entry adds to outgoing money.
func (l *LedgerEntry) IsDebit() bool {
	return l.EntryType == LedgerDebit
}

// ExpenseCategory returns the category a reflected debit contributes to in
// the expense breakdown, falling back to the accounting bucket when unset.
func (l *LedgerEntry) ExpenseCategory() string {
	if l.Category == "" {
		return DefaultLedgerCategory
	}
	return l.Category
}
