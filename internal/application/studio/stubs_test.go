package studio

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// memRepo is an in-memory tenant repository for service tests. Tenant
// scoping is not enforced; the services under test pass a single tenant.
type memRepo[T any, PT interface {
	*T
	shared.Entity
}] struct {
	items      map[uuid.UUID]*T
	saveErr    error
	lastFilter shared.Filter
}

func newMemRepo[T any, PT interface {
	*T
	shared.Entity
}]() *memRepo[T, PT] {
	return &memRepo[T, PT]{items: make(map[uuid.UUID]*T)}
}

func (r *memRepo[T, PT]) FindByIDForTenant(_ context.Context, _, id uuid.UUID) (*T, error) {
	if e, ok := r.items[id]; ok {
		return e, nil
	}
	return nil, shared.ErrNotFound
}

func (r *memRepo[T, PT]) FindAllForTenant(_ context.Context, _ uuid.UUID, filter shared.Filter) ([]T, error) {
	r.lastFilter = filter
	out := make([]T, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, *e)
	}
	return out, nil
}

func (r *memRepo[T, PT]) Save(_ context.Context, e *T) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.items[PT(e).GetID()] = e
	return nil
}

func (r *memRepo[T, PT]) DeleteForTenant(_ context.Context, _, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *memRepo[T, PT]) CountForTenant(_ context.Context, _ uuid.UUID, filter shared.Filter) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *memRepo[T, PT]) FindInWindow(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]T, error) {
	out := make([]T, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, *e)
	}
	return out, nil
}

type memStaffRepo = memRepo[studio.StaffPayment, *studio.StaffPayment]
type memFreelancerRepo = memRepo[studio.FreelancerPayment, *studio.FreelancerPayment]

// memExpenseRepo adds the payroll mirror operations.
type memExpenseRepo struct {
	*memRepo[studio.Expense, *studio.Expense]
	deleteBySourceCalls int
}

func newMemExpenseRepo() *memExpenseRepo {
	return &memExpenseRepo{memRepo: newMemRepo[studio.Expense, *studio.Expense]()}
}

func (r *memExpenseRepo) DeleteBySource(_ context.Context, _ uuid.UUID, source string, sourceID uuid.UUID) error {
	r.deleteBySourceCalls++
	for id, e := range r.items {
		if e.Source == source && e.SourceID != nil && *e.SourceID == sourceID {
			delete(r.items, id)
		}
	}
	return nil
}

// mirrorsOf returns the mirror rows shadowing the given payroll record.
func (r *memExpenseRepo) mirrorsOf(source string, sourceID uuid.UUID) []*studio.Expense {
	var out []*studio.Expense
	for _, e := range r.items {
		if e.Source == source && e.SourceID != nil && *e.SourceID == sourceID {
			out = append(out, e)
		}
	}
	return out
}

// capturingPublisher records every published event.
type capturingPublisher struct {
	events []shared.DomainEvent
}

func (p *capturingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}

func (p *capturingPublisher) lastSourceChange() *studio.SourceChangedEvent {
	if len(p.events) == 0 {
		return nil
	}
	e, _ := p.events[len(p.events)-1].(*studio.SourceChangedEvent)
	return e
}
