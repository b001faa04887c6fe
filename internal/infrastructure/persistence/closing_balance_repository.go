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

// GormClosingBalanceRepository implements studio.ClosingBalanceRepository using GORM
type GormClosingBalanceRepository struct {
	db *gorm.DB
}

// NewGormClosingBalanceRepository creates a new GormClosingBalanceRepository
func NewGormClosingBalanceRepository(db *gorm.DB) *GormClosingBalanceRepository {
	return &GormClosingBalanceRepository{db: db}
}

// FindByIDForTenant finds a closing balance by ID for a specific tenant
func (r *GormClosingBalanceRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*studio.ClosingBalance, error) {
	var model models.ClosingBalanceModel
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

// FindAllForTenant finds all closing balances for a tenant with filtering
func (r *GormClosingBalanceRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]studio.ClosingBalance, error) {
	var balanceModels []models.ClosingBalanceModel
	query := r.db.WithContext(ctx).Model(&models.ClosingBalanceModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		query = query.Where("notes ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.From != nil {
		query = query.Where("closing_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("closing_date <= ?", filter.To)
	}

	sortField := ValidateSortField(filter.OrderBy, ClosingBalanceSortFields, "closing_date")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if offset := (filter.Page - 1) * filter.PageSize; offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&balanceModels).Error; err != nil {
		return nil, err
	}
	balances := make([]studio.ClosingBalance, len(balanceModels))
	for i, model := range balanceModels {
		balances[i] = *model.ToDomain()
	}
	return balances, nil
}

// Save creates or updates a closing balance
func (r *GormClosingBalanceRepository) Save(ctx context.Context, balance *studio.ClosingBalance) error {
	model := models.ClosingBalanceModelFromDomain(balance)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes a closing balance for a tenant
func (r *GormClosingBalanceRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ClosingBalanceModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts closing balances for a tenant with filtering
func (r *GormClosingBalanceRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.ClosingBalanceModel{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("notes ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.From != nil {
		query = query.Where("closing_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("closing_date <= ?", filter.To)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindInWindow returns all closing balances dated inside the bounds
func (r *GormClosingBalanceRepository) FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]studio.ClosingBalance, error) {
	var balanceModels []models.ClosingBalanceModel
	query := r.db.WithContext(ctx).Model(&models.ClosingBalanceModel{}).
		Where("tenant_id = ?", tenantID)
	if from != nil {
		query = query.Where("closing_date >= ?", from)
	}
	if to != nil {
		query = query.Where("closing_date <= ?", to)
	}
	if err := query.Order("closing_date ASC").Find(&balanceModels).Error; err != nil {
		return nil, err
	}
	balances := make([]studio.ClosingBalance, len(balanceModels))
	for i, model := range balanceModels {
		balances[i] = *model.ToDomain()
	}
	return balances, nil
}
