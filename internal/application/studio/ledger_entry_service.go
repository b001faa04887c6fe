package studio

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// LedgerEntryService handles free-form book entry operations
type LedgerEntryService struct {
	repo      studio.LedgerEntryRepository
	publisher shared.EventPublisher
}

// NewLedgerEntryService creates a new LedgerEntryService
func NewLedgerEntryService(repo studio.LedgerEntryRepository, publisher shared.EventPublisher) *LedgerEntryService {
	return &LedgerEntryService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create records a book entry
func (s *LedgerEntryService) Create(ctx context.Context, tenantID uuid.UUID, req CreateLedgerEntryRequest) (*LedgerEntryResponse, error) {
	entry, err := studio.NewLedgerEntry(tenantID, req.EntryType, req.Amount, req.Method, req.EntryDate, req.ReflectToCompany)
	if err != nil {
		return nil, err
	}
	entry.Category = req.Category
	entry.Description = req.Description

	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableLedgerEntries, studio.ChangeActionCreated, entry.ID, tenantID)

	response := ToLedgerEntryResponse(entry)
	return &response, nil
}

// GetByID retrieves a book entry by ID
func (s *LedgerEntryService) GetByID(ctx context.Context, tenantID, entryID uuid.UUID) (*LedgerEntryResponse, error) {
	entry, err := s.repo.FindByIDForTenant(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}

	response := ToLedgerEntryResponse(entry)
	return &response, nil
}

// List retrieves book entries with filtering and pagination
func (s *LedgerEntryService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]LedgerEntryResponse, int64, error) {
	domainFilter := filter.toDomain()

	entries, err := s.repo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToLedgerEntryResponse(&entries[i])
	}
	return responses, total, nil
}

// Update modifies a book entry
func (s *LedgerEntryService) Update(ctx context.Context, tenantID, entryID uuid.UUID, req UpdateLedgerEntryRequest) (*LedgerEntryResponse, error) {
	entry, err := s.repo.FindByIDForTenant(ctx, tenantID, entryID)
	if err != nil {
		return nil, err
	}

	if req.EntryType != nil {
		if *req.EntryType != studio.LedgerCredit && *req.EntryType != studio.LedgerDebit {
			return nil, shared.NewDomainError("INVALID_INPUT", "entry type must be Credit or Debit")
		}
		entry.EntryType = *req.EntryType
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "entry amount cannot be negative")
		}
		entry.Amount = *req.Amount
	}
	if req.Method != nil {
		entry.Method = *req.Method
	}
	if req.Category != nil {
		entry.Category = *req.Category
	}
	if req.Description != nil {
		entry.Description = *req.Description
	}
	if req.EntryDate != nil {
		entry.EntryDate = *req.EntryDate
	}
	if req.ReflectToCompany != nil {
		entry.ReflectToCompany = *req.ReflectToCompany
	}

	entry.Touch()
	if err := s.repo.Save(ctx, entry); err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableLedgerEntries, studio.ChangeActionUpdated, entry.ID, tenantID)

	response := ToLedgerEntryResponse(entry)
	return &response, nil
}

// Delete removes a book entry
func (s *LedgerEntryService) Delete(ctx context.Context, tenantID, entryID uuid.UUID) error {
	if err := s.repo.DeleteForTenant(ctx, tenantID, entryID); err != nil {
		return err
	}

	notifyChange(ctx, s.publisher, studio.TableLedgerEntries, studio.ChangeActionDeleted, entryID, tenantID)
	return nil
}
