package studio

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studiosnap/backend/internal/domain/shared"
)

// Expense source markers. Staff and freelancer payouts are mirrored into the
// expenses table so payroll money is counted exactly once, through here.
const (
	ExpenseSourceManual     = "manual"
	ExpenseSourceStaff      = "staff_payment"
	ExpenseSourceFreelancer = "freelancer_payment"
)

// Expense is outgoing studio money: rent, travel, gear, payroll mirrors.
type Expense struct {
	shared.BaseEntity
	TenantID    uuid.UUID
	Category    string
	Description string
	Amount      decimal.Decimal
	Method      string
	ExpenseDate time.Time
	Source      string
	SourceID    *uuid.UUID
}

// NewExpense creates a manually entered expense.
func NewExpense(tenantID uuid.UUID, category string, amount decimal.Decimal, method string, expenseDate time.Time) (*Expense, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "tenant ID is required")
	}
	if strings.TrimSpace(category) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "expense category is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "expense amount cannot be negative")
	}

	return &Expense{
		BaseEntity:  shared.NewBaseEntity(),
		TenantID:    tenantID,
		Category:    strings.TrimSpace(category),
		Amount:      amount,
		Method:      method,
		ExpenseDate: expenseDate,
		Source:      ExpenseSourceManual,
	}, nil
}

// NewMirroredExpense creates the expense row that shadows a staff or
// freelancer payout. The source marker ties it back to the payroll record.
func NewMirroredExpense(tenantID uuid.UUID, category, description string, amount decimal.Decimal, method string, expenseDate time.Time, source string, sourceID uuid.UUID) (*Expense, error) {
	if source != ExpenseSourceStaff && source != ExpenseSourceFreelancer {
		return nil, shared.NewDomainError("INVALID_INPUT", "unknown expense source: "+source)
	}
	e, err := NewExpense(tenantID, category, amount, method, expenseDate)
	if err != nil {
		return nil, err
	}
	e.Description = description
	e.Source = source
	e.SourceID = &sourceID
	return e, nil
}
