package studio

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// ExpenseService handles expense operations. Payroll mirror rows are read
// only here; they are created and removed through the payout services so
// the no-double-count convention holds.
type ExpenseService struct {
	repo      studio.ExpenseRepository
	publisher shared.EventPublisher
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(repo studio.ExpenseRepository, publisher shared.EventPublisher) *ExpenseService {
	return &ExpenseService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create records a manually entered expense
func (s *ExpenseService) Create(ctx context.Context, tenantID uuid.UUID, req CreateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := studio.NewExpense(tenantID, req.Category, req.Amount, req.Method, req.ExpenseDate)
	if err != nil {
		return nil, err
	}
	expense.Description = req.Description

	if err := s.repo.Save(ctx, expense); err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableExpenses, studio.ChangeActionCreated, expense.ID, tenantID)

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, tenantID, expenseID uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.repo.FindByIDForTenant(ctx, tenantID, expenseID)
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// List retrieves expenses with filtering and pagination
func (s *ExpenseService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]ExpenseResponse, int64, error) {
	domainFilter := filter.toDomain()

	expenses, err := s.repo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses, total, nil
}

// Update modifies a manually entered expense
func (s *ExpenseService) Update(ctx context.Context, tenantID, expenseID uuid.UUID, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	expense, err := s.repo.FindByIDForTenant(ctx, tenantID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Source != studio.ExpenseSourceManual {
		return nil, shared.NewDomainError("NOT_ALLOWED", "Payroll mirror rows are managed through their payout records")
	}

	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Description != nil {
		expense.Description = *req.Description
	}
	if req.Amount != nil {
		if req.Amount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "expense amount cannot be negative")
		}
		expense.Amount = *req.Amount
	}
	if req.Method != nil {
		expense.Method = *req.Method
	}
	if req.ExpenseDate != nil {
		expense.ExpenseDate = *req.ExpenseDate
	}

	expense.Touch()
	if err := s.repo.Save(ctx, expense); err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableExpenses, studio.ChangeActionUpdated, expense.ID, tenantID)

	response := ToExpenseResponse(expense)
	return &response, nil
}

// Delete removes a manually entered expense
func (s *ExpenseService) Delete(ctx context.Context, tenantID, expenseID uuid.UUID) error {
	expense, err := s.repo.FindByIDForTenant(ctx, tenantID, expenseID)
	if err != nil {
		return err
	}
	if expense.Source != studio.ExpenseSourceManual {
		return shared.NewDomainError("NOT_ALLOWED", "Payroll mirror rows are managed through their payout records")
	}

	if err := s.repo.DeleteForTenant(ctx, tenantID, expenseID); err != nil {
		return err
	}

	notifyChange(ctx, s.publisher, studio.TableExpenses, studio.ChangeActionDeleted, expenseID, tenantID)
	return nil
}
