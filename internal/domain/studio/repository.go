package studio

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
)

// EventRepository persists bookings.
type EventRepository interface {
	shared.TenantRepository[Event]
	// FindInWindow returns all bookings whose event date falls inside the
	// bounds. Nil bounds are open ended.
	FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]Event, error)
}

// PaymentRepository persists client payments.
type PaymentRepository interface {
	shared.TenantRepository[Payment]
	FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]Payment, error)
}

// ExpenseRepository persists expenses, including payroll mirror rows.
type ExpenseRepository interface {
	shared.TenantRepository[Expense]
	FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]Expense, error)
	// DeleteBySource removes the mirror row that shadows a payroll record.
	DeleteBySource(ctx context.Context, tenantID uuid.UUID, source string, sourceID uuid.UUID) error
}

// StaffPaymentRepository persists staff payouts.
type StaffPaymentRepository interface {
	shared.TenantRepository[StaffPayment]
	FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]StaffPayment, error)
}

// FreelancerPaymentRepository persists freelancer payouts.
type FreelancerPaymentRepository interface {
	shared.TenantRepository[FreelancerPayment]
	FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]FreelancerPayment, error)
}

// LedgerEntryRepository persists free-form book entries.
type LedgerEntryRepository interface {
	shared.TenantRepository[LedgerEntry]
	FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]LedgerEntry, error)
}

// ClosingBalanceRepository persists period-close records.
type ClosingBalanceRepository interface {
	shared.TenantRepository[ClosingBalance]
	FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]ClosingBalance, error)
}
