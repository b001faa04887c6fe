package studio

import (
	"context"

	"github.com/studiosnap/backend/internal/domain/studio"
)

// PayrollTransactionScope provides transactional access to the payroll
// repositories. A payout and its expense mirror row are written inside one
// scope so the books never hold one without the other.
type PayrollTransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	Execute(ctx context.Context, fn func(repos PayrollRepositories) error) error
}

// PayrollRepositories provides access to the payroll repositories within a
// transaction. All repositories returned share the same underlying database
// transaction.
type PayrollRepositories interface {
	StaffPayments() studio.StaffPaymentRepository
	FreelancerPayments() studio.FreelancerPaymentRepository
	Expenses() studio.ExpenseRepository
}

// NoOpPayrollScope is a payroll scope that doesn't actually use transactions.
// This is useful for testing or when transaction support is not required.
type NoOpPayrollScope struct {
	staffRepo      studio.StaffPaymentRepository
	freelancerRepo studio.FreelancerPaymentRepository
	expenseRepo    studio.ExpenseRepository
}

// NewNoOpPayrollScope creates a NoOpPayrollScope with the given repositories.
func NewNoOpPayrollScope(
	staffRepo studio.StaffPaymentRepository,
	freelancerRepo studio.FreelancerPaymentRepository,
	expenseRepo studio.ExpenseRepository,
) *NoOpPayrollScope {
	return &NoOpPayrollScope{
		staffRepo:      staffRepo,
		freelancerRepo: freelancerRepo,
		expenseRepo:    expenseRepo,
	}
}

// Execute runs the function without a real transaction (for testing/compatibility).
func (s *NoOpPayrollScope) Execute(_ context.Context, fn func(repos PayrollRepositories) error) error {
	return fn(s)
}

// StaffPayments returns the staff payout repository.
func (s *NoOpPayrollScope) StaffPayments() studio.StaffPaymentRepository {
	return s.staffRepo
}

// FreelancerPayments returns the freelancer payout repository.
func (s *NoOpPayrollScope) FreelancerPayments() studio.FreelancerPaymentRepository {
	return s.freelancerRepo
}

// Expenses returns the expense repository.
func (s *NoOpPayrollScope) Expenses() studio.ExpenseRepository {
	return s.expenseRepo
}

var _ PayrollTransactionScope = (*NoOpPayrollScope)(nil)
var _ PayrollRepositories = (*NoOpPayrollScope)(nil)
