package persistence

import (
	"context"

	"gorm.io/gorm"

	appstudio "github.com/studiosnap/backend/internal/application/studio"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// GormPayrollScope implements PayrollTransactionScope using GORM
// transactions. A payout and its expense mirror row commit or roll back
// together.
type GormPayrollScope struct {
	db *gorm.DB
}

// NewGormPayrollScope creates a new GormPayrollScope.
func NewGormPayrollScope(db *gorm.DB) *GormPayrollScope {
	return &GormPayrollScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormPayrollScope) Execute(ctx context.Context, fn func(repos appstudio.PayrollRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPayrollRepositories{tx: tx})
	})
}

// gormPayrollRepositories provides repositories bound to one transaction.
type gormPayrollRepositories struct {
	tx *gorm.DB
}

func (r *gormPayrollRepositories) StaffPayments() studio.StaffPaymentRepository {
	return NewGormStaffPaymentRepository(r.tx)
}

func (r *gormPayrollRepositories) FreelancerPayments() studio.FreelancerPaymentRepository {
	return NewGormFreelancerPaymentRepository(r.tx)
}

func (r *gormPayrollRepositories) Expenses() studio.ExpenseRepository {
	return NewGormExpenseRepository(r.tx)
}

var _ appstudio.PayrollTransactionScope = (*GormPayrollScope)(nil)
var _ appstudio.PayrollRepositories = (*gormPayrollRepositories)(nil)
