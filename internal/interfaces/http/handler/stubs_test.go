package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// testTenantID matches the development fallback tenant resolved by
// getTenantID when neither JWT claims nor headers are present.
var testTenantID = uuid.MustParse("00000000-0000-0000-0000-000000000001")

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// fakeRepo is an in-memory tenant repository for handler tests.
type fakeRepo[T any, PT interface {
	*T
	shared.Entity
}] struct {
	items   map[uuid.UUID]*T
	findErr error
}

func newFakeRepo[T any, PT interface {
	*T
	shared.Entity
}]() *fakeRepo[T, PT] {
	return &fakeRepo[T, PT]{items: make(map[uuid.UUID]*T)}
}

func (r *fakeRepo[T, PT]) FindByIDForTenant(_ context.Context, _, id uuid.UUID) (*T, error) {
	if e, ok := r.items[id]; ok {
		return e, nil
	}
	return nil, shared.ErrNotFound
}

func (r *fakeRepo[T, PT]) FindAllForTenant(_ context.Context, _ uuid.UUID, _ shared.Filter) ([]T, error) {
	out := make([]T, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, *e)
	}
	return out, nil
}

func (r *fakeRepo[T, PT]) Save(_ context.Context, e *T) error {
	r.items[PT(e).GetID()] = e
	return nil
}

func (r *fakeRepo[T, PT]) DeleteForTenant(_ context.Context, _, id uuid.UUID) error {
	if _, ok := r.items[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeRepo[T, PT]) CountForTenant(_ context.Context, _ uuid.UUID, _ shared.Filter) (int64, error) {
	return int64(len(r.items)), nil
}

func (r *fakeRepo[T, PT]) FindInWindow(_ context.Context, _ uuid.UUID, _, _ *time.Time) ([]T, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]T, 0, len(r.items))
	for _, e := range r.items {
		out = append(out, *e)
	}
	return out, nil
}

// fakeExpenseRepo adds the payroll mirror operation.
type fakeExpenseRepo struct {
	*fakeRepo[studio.Expense, *studio.Expense]
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{fakeRepo: newFakeRepo[studio.Expense, *studio.Expense]()}
}

func (r *fakeExpenseRepo) DeleteBySource(_ context.Context, _ uuid.UUID, source string, sourceID uuid.UUID) error {
	for id, e := range r.items {
		if e.Source == source && e.SourceID != nil && *e.SourceID == sourceID {
			delete(r.items, id)
		}
	}
	return nil
}

// nopPublisher discards published events.
type nopPublisher struct{}

func (nopPublisher) Publish(_ context.Context, _ ...shared.DomainEvent) error {
	return nil
}
