package studio

import (
	"context"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// EventService handles booking-related business operations
type EventService struct {
	repo      studio.EventRepository
	publisher shared.EventPublisher
}

// NewEventService creates a new EventService
func NewEventService(repo studio.EventRepository, publisher shared.EventPublisher) *EventService {
	return &EventService{
		repo:      repo,
		publisher: publisher,
	}
}

// Create books a new event
func (s *EventService) Create(ctx context.Context, tenantID uuid.UUID, req CreateEventRequest) (*EventResponse, error) {
	event, err := studio.NewEvent(tenantID, req.ClientName, req.EventType, req.EventDate, req.TotalAmount, req.AdvanceAmount)
	if err != nil {
		return nil, err
	}
	event.Venue = req.Venue
	event.AdvancePaymentMethod = req.AdvancePaymentMethod
	event.PhotoEditingDone = req.PhotoEditingDone
	event.VideoEditingDone = req.VideoEditingDone
	event.Notes = req.Notes

	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableEvents, studio.ChangeActionCreated, event.ID, tenantID)

	response := ToEventResponse(event)
	return &response, nil
}

// GetByID retrieves a booked event by ID
func (s *EventService) GetByID(ctx context.Context, tenantID, eventID uuid.UUID) (*EventResponse, error) {
	event, err := s.repo.FindByIDForTenant(ctx, tenantID, eventID)
	if err != nil {
		return nil, err
	}

	response := ToEventResponse(event)
	return &response, nil
}

// List retrieves booked events with filtering and pagination
func (s *EventService) List(ctx context.Context, tenantID uuid.UUID, filter ListFilter) ([]EventResponse, int64, error) {
	domainFilter := filter.toDomain()

	events, err := s.repo.FindAllForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.repo.CountForTenant(ctx, tenantID, domainFilter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]EventResponse, len(events))
	for i := range events {
		responses[i] = ToEventResponse(&events[i])
	}
	return responses, total, nil
}

// Update modifies a booked event
func (s *EventService) Update(ctx context.Context, tenantID, eventID uuid.UUID, req UpdateEventRequest) (*EventResponse, error) {
	event, err := s.repo.FindByIDForTenant(ctx, tenantID, eventID)
	if err != nil {
		return nil, err
	}

	if req.ClientName != nil {
		event.ClientName = *req.ClientName
	}
	if req.EventType != nil {
		event.EventType = *req.EventType
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.EventDate != nil {
		event.EventDate = *req.EventDate
	}
	if req.TotalAmount != nil {
		if req.TotalAmount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "total amount cannot be negative")
		}
		event.TotalAmount = *req.TotalAmount
	}
	if req.AdvanceAmount != nil {
		if req.AdvanceAmount.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "advance amount cannot be negative")
		}
		event.AdvanceAmount = *req.AdvanceAmount
	}
	if req.AdvancePaymentMethod != nil {
		event.AdvancePaymentMethod = *req.AdvancePaymentMethod
	}
	if req.PhotoEditingDone != nil {
		event.PhotoEditingDone = *req.PhotoEditingDone
	}
	if req.VideoEditingDone != nil {
		event.VideoEditingDone = *req.VideoEditingDone
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}

	event.Touch()
	if err := s.repo.Save(ctx, event); err != nil {
		return nil, err
	}

	notifyChange(ctx, s.publisher, studio.TableEvents, studio.ChangeActionUpdated, event.ID, tenantID)

	response := ToEventResponse(event)
	return &response, nil
}

// Delete removes a booked event
func (s *EventService) Delete(ctx context.Context, tenantID, eventID uuid.UUID) error {
	if err := s.repo.DeleteForTenant(ctx, tenantID, eventID); err != nil {
		return err
	}

	notifyChange(ctx, s.publisher, studio.TableEvents, studio.ChangeActionDeleted, eventID, tenantID)
	return nil
}
