package studio

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// ClosingBalanceService handles period-close operations
type ClosingBalanceService struct {
	repo      studio.ClosingBalanceRepository
	publisher shared.EventPublisher
}

// NewClosingBalanceService creates a new ClosingBalanceService
func NewClosingBalanceService(repo studio.ClosingBalanceRepository, publisher shared.EventPublisher) *ClosingBalanceService {
	return &ClosingBalanceService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create records a period close
func (s *ClosingBalanceService) Create(ctx context.Context, tenantID uuid.UUID, req CreateClosingBalanceRequest) (*ClosingBalanceResponse, error) {
	closing, err := studio.NewClosingBalance(tenantID, req.Amount, req.ClosingDate)
	if err != nil {
		return nil, err
	}
	closing.Notes = req.Notes

	if err := s.repo.Save(ctx, closing); err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableClosingBalances, studio.ChangeActionCreated, closing.ID, tenantID)

	response := ToClosingBalanceResponse(closing)
	return &response, nil
}

// GetByID retrieves a period close by ID
func (s *ClosingBalanceService) GetByID(ctx context.Context, tenantID, closingID uuid.UUID) (*ClosingBalanceResponse, error) {
	closing, err := s.repo.FindByIDForTenant(ctx, tenantID, closingID)
	if err != nil {
		return nil, err
	}

	response := ToClosingBalanceResponse(closing)
	return &response, nil
}

// List retrieves period closes with filtering and pagination
func (s *ClosingBalanceService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]ClosingBalanceResponse, int64, error) {
	domainFilter := filter.toDomain()

	closings, err := s.repo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ClosingBalanceResponse, len(closings))
	for i := range closings {
		responses[i] = ToClosingBalanceResponse(&closings[i])
	}
	return responses, total, nil
}

// Update modifies a period close
func (s *ClosingBalanceService) Update(ctx context.Context, tenantID, closingID uuid.UUID, req UpdateClosingBalanceRequest) (*ClosingBalanceResponse, error) {
	closing, err := s.repo.FindByIDForTenant(ctx, tenantID, closingID)
	if err != nil {
		return nil, err
	}

	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "closing amount cannot be negative")
		}
		closing.Amount = *req.Amount
	}
	if req.ClosingDate != nil {
		closing.ClosingDate = *req.ClosingDate
	}
	if req.Notes != nil {
		closing.Notes = *req.Notes
	}

	closing.Touch()
	if err := s.repo.Save(ctx, closing); err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableClosingBalances, studio.ChangeActionUpdated, closing.ID, tenantID)

	response := ToClosingBalanceResponse(closing)
	return &response, nil
}

// Delete removes a period close
func (s *ClosingBalanceService) Delete(ctx context.Context, tenantID, closingID uuid.UUID) error {
	if err := s.repo.DeleteForTenant(ctx, tenantID, closingID); err != nil {
		return err
	}

	notifyChange(ctx, s.publisher, studio.TableClosingBalances, studio.ChangeActionDeleted, closingID, tenantID)
	return nil
}
