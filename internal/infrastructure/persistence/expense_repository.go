package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
	"github.com/studiosnap/backend/internal/infrastructure/persistence/models"
)

// GormExpenseRepository implements studio.ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByIDForTenant finds an expense by ID for a specific tenant
func (r *GormExpenseRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*studio.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant finds all expenses for a tenant with filtering
func (r *GormExpenseRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]studio.Expense, error) {
	var expenseModels []models.ExpenseModel
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(category ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if filter.From != nil {
		query = query.Where("expense_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("expense_date <= ?", filter.To)
	}

	sortField := ValidateSortField(filter.OrderBy, ExpenseSortFields, "expense_date")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if offset := (filter.Page - 1) * filter.PageSize; offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	expenses := make([]studio.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, nil
}

// Save creates or updates an expense
func (r *GormExpenseRepository) Save(ctx context.Context, expense *studio.Expense) error {
	model := models.ExpenseModelFromDomain(expense)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes an expense for a tenant
func (r *GormExpenseRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpenseModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// DeleteBySource removes the mirror row that shadows a payroll record.
// Missing rows are not an error; the mirror may already be gone.
func (r *GormExpenseRepository) DeleteBySource(ctx context.Context, tenantID uuid.UUID, source string, sourceID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&models.ExpenseModel{}, "tenant_id = ? AND source = ? AND source_id = ?", tenantID, source, sourceID).
		Error
}

// CountForTenant counts expenses for a tenant with filtering
func (r *GormExpenseRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(category ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if filter.From != nil {
		query = query.Where("expense_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("expense_date <= ?", filter.To)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindInWindow returns all expenses dated inside the bounds
func (r *GormExpenseRepository) FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]studio.Expense, error) {
	var expenseModels []models.ExpenseModel
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{}).
		Where("tenant_id = ?", tenantID)
	if from != nil {
		query = query.Where("expense_date >= ?", from)
	}
	if to != nil {
		query = query.Where("expense_date <= ?", to)
	}
	if err := query.Order("expense_date ASC").Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	expenses := make([]studio.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, nil
}
