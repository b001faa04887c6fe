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

// GormStaffPaymentRepository implements studio.StaffPaymentRepository using GORM
type GormStaffPaymentRepository struct {
	db *gorm.DB
}

// NewGormStaffPaymentRepository creates a new GormStaffPaymentRepository
func NewGormStaffPaymentRepository(db *gorm.DB) *GormStaffPaymentRepository {
	return &GormStaffPaymentRepository{db: db}
}

// FindByIDForTenant finds a staff payout by ID for a specific tenant
func (r *GormStaffPaymentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*studio.StaffPayment, error) {
	var model models.StaffPaymentModel
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

// FindAllForTenant finds all staff payouts for a tenant with filtering
func (r *GormStaffPaymentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]studio.StaffPayment, error) {
	var paymentModels []models.StaffPaymentModel
	query := r.db.WithContext(ctx).Model(&models.StaffPaymentModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		query = query.Where("staff_name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.From != nil {
		query = query.Where("payment_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("payment_date <= ?", filter.To)
	}

	sortField := ValidateSortField(filter.OrderBy, StaffPaymentSortFields, "payment_date")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if offset := (filter.Page - 1) * filter.PageSize; offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]studio.StaffPayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// Save creates or updates a staff payout
func (r *GormStaffPaymentRepository) Save(ctx context.Context, payment *studio.StaffPayment) error {
	model := models.StaffPaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes a staff payout for a tenant
func (r *GormStaffPaymentRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.StaffPaymentModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts staff payouts for a tenant with filtering
func (r *GormStaffPaymentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.StaffPaymentModel{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		query = query.Where("staff_name ILIKE ?", "%"+filter.Search+"%")
	}
	if filter.From != nil {
		query = query.Where("payment_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("payment_date <= ?", filter.To)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindInWindow returns all staff payouts dated inside the bounds
func (r *GormStaffPaymentRepository) FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]studio.StaffPayment, error) {
	var paymentModels []models.StaffPaymentModel
	query := r.db.WithContext(ctx).Model(&models.StaffPaymentModel{}).
		Where("tenant_id = ?", tenantID)
	if from != nil {
		query = query.Where("payment_date >= ?", from)
	}
	if to != nil {
		query = query.Where("payment_date <= ?", to)
	}
	if err := query.Order("payment_date ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	payments := make([]studio.StaffPayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}
