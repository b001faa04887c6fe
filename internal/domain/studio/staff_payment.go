package studio

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/studiosnap/backend/internal/domain/shared"
)

// StaffPayment is a salary or wage payout to a permanent staff member.
// The payout itself never enters the outgoing totals; its mirrored expense
// row does.
type StaffPayment struct {
	shared.BaseEntity
	TenantID    uuid.UUID
	StaffName   string
	Role        string
	Amount      decimal.Decimal
	Method      string
	PaymentDate time.Time
	Notes       string
}

// NewStaffPayment creates a staff payout after validating the payee and amount.
func NewStaffPayment(tenantID uuid.UUID, staffName, role string, amount decimal.Decimal, method string, paymentDate time.Time) (*StaffPayment, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "tenant ID is required")
	}
	if strings.TrimSpace(staffName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "staff name is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "payment amount cannot be negative")
	}

	return &StaffPayment{
		BaseEntity:  shared.NewBaseEntity(),
		TenantID:    tenantID,
		StaffName:   strings.TrimSpace(staffName),
		Role:        role,
		Amount:      amount,
		Method:      method,
		PaymentDate: paymentDate,
	}, nil
}

// FreelancerPayment is a per-assignment payout to an external shooter or
// editor. Mirrored into expenses the same way as staff payouts.
type FreelancerPayment struct {
	shared.BaseEntity
	TenantID       uuid.UUID
	FreelancerName string
	Assignment     string
	Amount         decimal.Decimal
	Method         string
	PaymentDate    time.Time
	Notes          string
}

// NewFreelancerPayment creates a freelancer payout.
func NewFreelancerPayment(tenantID uuid.UUID, freelancerName, assignment string, amount decimal.Decimal, method string, paymentDate time.Time) (*FreelancerPayment, error) {
	if tenantID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "tenant ID is required")
	}
	if strings.TrimSpace(freelancerName) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "freelancer name is required")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "payment amount cannot be negative")
	}

	return &FreelancerPayment{
		BaseEntity:     shared.NewBaseEntity(),
		TenantID:       tenantID,
		FreelancerName: strings.TrimSpace(freelancerName),
		Assignment:     assignment,
		Amount:         amount,
		Method:         method,
		PaymentDate:    paymentDate,
	}, nil
}
