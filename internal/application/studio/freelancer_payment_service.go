package studio

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// freelancerMirrorCategory is the expense bucket freelancer mirror rows land in.
const freelancerMirrorCategory = "Freelancer Payments"

// FreelancerPaymentService handles freelancer payout operations with the
// same expense mirroring convention as staff payouts.
type FreelancerPaymentService struct {
	repo      studio.FreelancerPaymentRepository
	scope     PayrollTransactionScope
	publisher shared.EventPublisher
}

// NewFreelancerPaymentService creates a new FreelancerPaymentService
func NewFreelancerPaymentService(repo studio.FreelancerPaymentRepository, scope PayrollTransactionScope, publisher shared.EventPublisher) *FreelancerPaymentService {
	return &FreelancerPaymentService{
		repo:      repo,
		scope:     scope,
		publisher: publisher,
	}
}

// Create records a freelancer payout and its expense mirror row
func (s *FreelancerPaymentService) Create(ctx context.Context, tenantID uuid.UUID, req CreateFreelancerPaymentRequest) (*FreelancerPaymentResponse, error) {
	payment, err := studio.NewFreelancerPayment(tenantID, req.FreelancerName, req.Assignment, req.Amount, req.Method, req.PaymentDate)
	if err != nil {
		return nil, err
	}
	payment.Notes = req.Notes

	err = s.scope.Execute(ctx, func(repos PayrollRepositories) error {
		if err := repos.FreelancerPayments().Save(ctx, payment); err != nil {
			return err
		}
		mirror, err := freelancerMirror(payment)
		if err != nil {
			return err
		}
		return repos.Expenses().Save(ctx, mirror)
	})
	if err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableFreelancerPayments, studio.ChangeActionCreated, payment.ID, tenantID)

	response := ToFreelancerPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a freelancer payout by ID
func (s *FreelancerPaymentService) GetByID(ctx context.Context, tenantID, paymentID uuid.UUID) (*FreelancerPaymentResponse, error) {
	payment, err := s.repo.FindByIDForTenant(ctx, tenantID, paymentID)
	if err != nil {
		return nil, err
	}

	response := ToFreelancerPaymentResponse(payment)
	return &response, nil
}

// List retrieves freelancer payouts with filtering and pagination
func (s *FreelancerPaymentService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]FreelancerPaymentResponse, int64, error) {
	domainFilter := filter.toDomain()

	payments, err := s.repo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]FreelancerPaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToFreelancerPaymentResponse(&payments[i])
	}
	return responses, total, nil
}

// Update modifies a freelancer payout and rewrites its expense mirror row
func (s *FreelancerPaymentService) Update(ctx context.Context, tenantID, paymentID uuid.UUID, req UpdateFreelancerPaymentRequest) (*FreelancerPaymentResponse, error) {
	var payment *studio.FreelancerPayment

	err := s.scope.Execute(ctx, func(repos PayrollRepositories) error {
		var err error
		payment, err = repos.FreelancerPayments().FindByIDForTenant(ctx, tenantID, paymentID)
		if err != nil {
			return err
		}

		if req.FreelancerName != nil {
			payment.FreelancerName = *req.FreelancerName
		}
		if req.Assignment != nil {
			payment.Assignment = *req.Assignment
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
		if err := repos.FreelancerPayments().Save(ctx, payment); err != nil {
			return err
		}

		// Rewrite the mirror rather than patching it in place.
		if err := repos.Expenses().DeleteBySource(ctx, tenantID, studio.ExpenseSourceFreelancer, payment.ID); err != nil {
			return err
		}
		mirror, err := freelancerMirror(payment)
		if err != nil {
			return err
		}
		return repos.Expenses().Save(ctx, mirror)
	})
	if err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableFreelancerPayments, studio.ChangeActionUpdated, paymentID, tenantID)

	response := ToFreelancerPaymentResponse(payment)
	return &response, nil
}

// Delete removes a freelancer payout together with its expense mirror row
func (s *FreelancerPaymentService) Delete(ctx context.Context, tenantID, paymentID uuid.UUID) error {
	err := s.scope.Execute(ctx, func(repos PayrollRepositories) error {
		if err := repos.FreelancerPayments().DeleteForTenant(ctx, tenantID, paymentID); err != nil {
			return err
		}
		return repos.Expenses().DeleteBySource(ctx, tenantID, studio.ExpenseSourceFreelancer, paymentID)
	})
	if err != nil {
		return err
	}

	notifyChange(ctx, s.publisher, studio.TableFreelancerPayments, studio.ChangeActionDeleted, paymentID, tenantID)
	return nil
}

// freelancerMirror builds the expense row that shadows a freelancer payout.
func freelancerMirror(p *studio.FreelancerPayment) (*studio.Expense, error) {
	description := "Payout to " + p.FreelancerName
	if p.Assignment != "" {
		description += " (" + p.Assignment + ")"
	}
	return studio.NewMirroredExpense(p.TenantID, freelancerMirrorCategory, description, p.Amount, p.Method, p.PaymentDate, studio.ExpenseSourceFreelancer, p.ID)
}
