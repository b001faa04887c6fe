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

// GormEventRepository implements studio.EventRepository using GORM
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GormEventRepository
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// FindByIDForTenant finds a booking by ID for a specific tenant
func (r *GormEventRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*studio.Event, error) {
	var model models.EventModel
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

// FindAllForTenant finds all bookings for a tenant with filtering
func (r *GormEventRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]studio.Event, error) {
	var eventModels []models.EventModel
	query := r.db.WithContext(ctx).Model(&models.EventModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(client_name ILIKE ? OR venue ILIKE ?)", pattern, pattern)
	}
	if filter.From != nil {
		query = query.Where("event_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("event_date <= ?", filter.To)
	}

	sortField := ValidateSortField(filter.OrderBy, EventSortFields, "event_date")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if offset := (filter.Page - 1) * filter.PageSize; offset > 0 {
			query = query.Offset(offset)
		}
	}

	if err := query.Find(&eventModels).Error; err != nil {
		return nil, err
	}
	events := make([]studio.Event, len(eventModels))
	for i, model := range eventModels {
		events[i] = *model.ToDomain()
	}
	return events, nil
}

// Save creates or updates a booking
func (r *GormEventRepository) Save(ctx context.Context, event *studio.Event) error {
	model := models.EventModelFromDomain(event)
	return r.db.WithContext(ctx).Save(model).Error
}

// DeleteForTenant deletes a booking for a tenant
func (r *GormEventRepository) DeleteForTenant(ctx context.Context, tenantID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EventModel{}, "tenant_id = ? AND id = ?", tenantID, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountForTenant counts bookings for a tenant with filtering
func (r *GormEventRepository) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var count int64
	query := r.db.WithContext(ctx).Model(&models.EventModel{}).
		Where("tenant_id = ?", tenantID)
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(client_name ILIKE ? OR venue ILIKE ?)", pattern, pattern)
	}
	if filter.From != nil {
		query = query.Where("event_date >= ?", filter.From)
	}
	if filter.To != nil {
		query = query.Where("event_date <= ?", filter.To)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindInWindow returns all bookings whose event date falls inside the bounds
func (r *GormEventRepository) FindInWindow(ctx context.Context, tenantID uuid.UUID, from, to *time.Time) ([]studio.Event, error) {
	var eventModels []models.EventModel
	query := r.db.WithContext(ctx).Model(&models.EventModel{}).
		Where("tenant_id = ?", tenantID)
	if from != nil {
		query = query.Where("event_date >= ?", from)
	}
	if to != nil {
		query = query.Where("event_date <= ?", to)
	}
	if err := query.Order("event_date ASC").Find(&eventModels).Error; err != nil {
		return nil, err
	}
	events := make([]studio.Event, len(eventModels))
	for i, model := range eventModels {
		events[i] = *model.ToDomain()
	}
	return events, nil
}
