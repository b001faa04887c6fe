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

// GormFreelancerPaymentRepository implements studio.FreelancerPaymentRepository using GORM
type GormFreelancerPaymentRepository struct {
	db *gorm.DB
}

// NewGormFreelancerPaymentRepository creates a new GormFreelancerPaymentRepository
func NewGormFreelancerPaymentRepository(db *gorm.DB) *GormFreelancerPaymentRepository {
	return &GormFreelancerPaymentRepository{db: db}
}

// FindByIDForTenant finds a freelancer payout by ID for a specific tenant
func (r *GormFreelancerPaymentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*studio.FreelancerPayment, error) {
	var model models.FreelancerPaymentModel
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

// FindAllForTenant finds all freelancer payouts for a tenant with filtering
func (r *GormFreelancerPaymentRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]studio.FreelancerPayment, error) {
	var paymentModels []models.FreelancerPaymentModel
	query := r.db.WithContext(ctx).Model(&models.FreelancerPaymentModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(freelancer_name ILIKE ? OR assignment ILIKE ?)", pattern, pattern)
	}
	if filter.From != nil {
		query = query.Where("payment_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("payment_date <= ?", filter.To)
	}

	sortField := ValidateSortField(filter.OrderBy, FreelancerPaymentSortFields, "payment_date")
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
	payments := make([]studio.FreelancerPayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}

// Save creates or updates a freelancer payout
func (r *GormFreelancerPaymentRepository) Save(ctx context.Context, payment *studio.FreelancerPayment) error {
	model := models.FreelancerPaymentModelFromDomain(payment)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes a freelancer payout for a tenant
func (r *GormFreelancerPaymentRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.FreelancerPaymentModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts freelancer payouts for a tenant with filtering
func (r *GormFreelancerPaymentRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.FreelancerPaymentModel{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(freelancer_name ILIKE ? OR assignment ILIKE ?)", pattern, pattern)
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

// FindInWindow returns all freelancer payouts dated inside the bounds
func (r *GormFreelancerPaymentRepository) FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]studio.FreelancerPayment, error) {
	var paymentModels []models.FreelancerPaymentModel
	query := r.db.WithContext(ctx).Model(&models.FreelancerPaymentModel{}).
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
	payments := make([]studio.FreelancerPayment, len(paymentModels))
	for i, model := range paymentModels {
		payments[i] = *model.ToDomain()
	}
	return payments, nil
}
