package studio

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// staffMirrorCategory is the expense bucket payroll mirror rows land in.
const staffMirrorCategory = "Staff Payments"

// StaffPaymentService handles staff payout operations. Every payout is
// shadowed by an expense mirror row written in the same transaction; the
// payout table itself never enters the outgoing totals.
type StaffPaymentService struct {
	repo      studio.StaffPaymentRepository
	scope     PayrollTransactionScope
	publisher shared.EventPublisher
}

// NewStaffPaymentService creates a new StaffPaymentService
func NewStaffPaymentService(repo studio.StaffPaymentRepository, scope PayrollTransactionScope, publisher shared.EventPublisher) *StaffPaymentService {
	return &StaffPaymentService{
		repo:      repo,
		scope:     scope,
		publisher: publisher,
	}
}

// Create records a staff payout and its expense mirror row
func (s *StaffPaymentService) Create(ctx context.Context, tenantID uuid.UUID, req CreateStaffPaymentRequest) (*StaffPaymentResponse, error) {
	payment, err := studio.NewStaffPayment(tenantID, req.StaffName, req.Role, req.Amount, req.Method, req.PaymentDate)
	if err != nil {
		return nil, err
	}
	payment.Notes = req.Notes

	err = s.scope.Execute(ctx, func(repos PayrollRepositories) error {
		if err := repos.StaffPayments().Save(ctx, payment); err != nil {
			return err
		}
		mirror, err := staffMirror(payment)
		if err != nil {
			return err
		}
		return repos.Expenses().Save(ctx, mirror)
	})
	if err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableStaffPayments, studio.ChangeActionCreated, payment.ID, tenantID)

	response := ToStaffPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a staff payout by ID
func (s *StaffPaymentService) GetByID(ctx context.Context, tenantID, paymentID uuid.UUID) (*StaffPaymentResponse, error) {
	payment, err := s.repo.FindByIDForTenant(ctx, tenantID, paymentID)
	if err != nil {
		return nil, err
	}

	response := ToStaffPaymentResponse(payment)
	return &response, nil
}

// List retrieves staff payouts with filtering and pagination
func (s *StaffPaymentService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]StaffPaymentResponse, int64, error) {
	domainFilter := filter.toDomain()

	payments, err := s.repo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]StaffPaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToStaffPaymentResponse(&payments[i])
	}
	return responses, total, nil
}

// Update modifies a staff payout and rewrites its expense mirror row
func (s *StaffPaymentService) Update(ctx context.Context, tenantID, paymentID uuid.UUID, req UpdateStaffPaymentRequest) (*StaffPaymentResponse, error) {
	var payment *studio.StaffPayment

	err := s.scope.Execute(ctx, func(repos PayrollRepositories) error {
		var err error
		payment, err = repos.StaffPayments().FindByIDForTenant(ctx, tenantID, paymentID)
		if err != nil {
			return err
		}

		if req.StaffName != nil {
			payment.StaffName = *req.StaffName
		}
		if req.Role != nil {
			payment.Role = *req.Role
		}
		if req.Amount != nil {
			if req.Amount.IsNegative() {
				return shared.NewDomainError("INVALID_INPUT", "payment amount cannot be negative")
			}
			payment.Amount = *req.Amount
		}
		if req.Method != nil {
			payment.Method = *req.Method
		}
		if req.PaymentDate != nil {
			payment.PaymentDate = *req.PaymentDate
		}
		if req.Notes != nil {
			payment.Notes = *req.Notes
		}

		payment.Touch()
		if err := repos.StaffPayments().Save(ctx, payment); err != nil {
			return err
		}

		// Rewrite the mirror rather than patching it in place.
		if err := repos.Expenses().DeleteBySource(ctx, tenantID, studio.ExpenseSourceStaff, payment.ID); err != nil {
			return err
		}
		mirror, err := staffMirror(payment)
		if err != nil {
			return err
		}
		return repos.Expenses().Save(ctx, mirror)
	})
	if err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableStaffPayments, studio.ChangeActionUpdated, paymentID, tenantID)

	response := ToStaffPaymentResponse(payment)
	return &response, nil
}

// Delete removes a staff payout together with its expense mirror row
func (s *StaffPaymentService) Delete(ctx context.Context, tenantID, paymentID uuid.UUID) error {
	err := s.scope.Execute(ctx, func(repos PayrollRepositories) error {
		if err := repos.StaffPayments().DeleteForTenant(ctx, tenantID, paymentID); err != nil {
			return err
		}
		return repos.Expenses().DeleteBySource(ctx, tenantID, studio.ExpenseSourceStaff, paymentID)
	})
	if err != nil {
		return err
	}

	notifyChange(ctx, s.publisher, studio.TableStaffPayments, studio.ChangeActionDeleted, paymentID, tenantID)
	return nil
}

// staffMirror builds the expense row that shadows a staff payout.
func staffMirror(p *studio.StaffPayment) (*studio.Expense, error) {
	description := "Payout to " + p.StaffName
	if p.Role != "" {
		description += " (" + p.Role + ")"
	}
	return studio.NewMirroredExpense(p.TenantID, staffMirrorCategory, description, p.Amount, p.Method, p.PaymentDate, studio.ExpenseSourceStaff, p.ID)
}
