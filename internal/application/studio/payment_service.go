package studio

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// PaymentService handles client payment operations
type PaymentService struct {
	repo      studio.PaymentRepository
	publisher shared.EventPublisher
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(repo studio.PaymentRepository, publisher shared.EventPublisher) *PaymentService {
	return &PaymentService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create records a client payment
func (s *PaymentService) Create(ctx context.Context, tenantID uuid.UUID, req CreatePaymentRequest) (*PaymentResponse, error) {
	payment, err := studio.NewPayment(tenantID, req.ClientName, req.Amount, req.Method, req.PaymentDate)
	if err != nil {
		return nil, err
	}
	payment.EventID = req.EventID
	payment.Notes = req.Notes

	if err := s.repo.Save(ctx, payment); err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TablePayments, studio.ChangeActionCreated, payment.ID, tenantID)

	response := ToPaymentResponse(payment)
	return &response, nil
}

// GetByID retrieves a client payment by ID
func (s *PaymentService) GetByID(ctx context.Context, tenantID, paymentID uuid.UUID) (*PaymentResponse, error) {
	payment, err := s.repo.FindByIDForTenant(ctx, tenantID, paymentID)
	if err != nil {
		return nil, err
	}

	response := ToPaymentResponse(payment)
	return &response, nil
}

// List retrieves client payments with filtering and pagination
func (s *PaymentService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]PaymentResponse, int64, error) {
	domainFilter := filter.toDomain()

	payments, err := s.repo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses, total, nil
}

// Update modifies a client payment
func (s *PaymentService) Update(ctx context.Context, tenantID, paymentID uuid.UUID, req UpdatePaymentRequest) (*PaymentResponse, error) {
	payment, err := s.repo.FindByIDForTenant(ctx, tenantID, paymentID)
	if err != nil {
		return nil, err
	}

	if req.EventID != nil {
		payment.EventID = req.EventID
	}
	if req.ClientName != nil {
		payment.ClientName = *req.ClientName
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "payment amount cannot be negative")
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
	if err := s.repo.Save(ctx, payment); err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TablePayments, studio.ChangeActionUpdated, payment.ID, tenantID)

	response := ToPaymentResponse(payment)
	return &response, nil
}

// Delete removes a client payment
func (s *PaymentService) Delete(ctx context.Context, tenantID, paymentID uuid.UUID) error {
	if err := s.repo.DeleteForTenant(ctx, tenantID, paymentID); err != nil {
		return err
	}

	notifyChange(ctx, s.publisher, studio.TablePayments, studio.ChangeActionDeleted, paymentID, tenantID)
	return nil
}
