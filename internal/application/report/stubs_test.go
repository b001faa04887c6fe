package report

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// stubTenantRepo satisfies the shared repository surface the fetcher never
// touches.
type stubTenantRepo[T any] struct{}

func (stubTenantRepo[T]) FindByIDForTenant(context.Context, uuid.UUID, uuid.UUID) (*T, error) {
	return nil, shared.ErrNotFound
}

func (stubTenantRepo[T]) FindAllForTenant(context.Context, uuid.UUID, shared.Filter) ([]T, error) {
	return nil, nil
}

func (stubTenantRepo[T]) Save(context.Context, *T) error { return nil }

func (stubTenantRepo[T]) DeleteForTenant(context.Context, uuid.UUID, uuid.UUID) error { return nil }

func (stubTenantRepo[T]) CountForTenant(context.Context, uuid.UUID, shared.Filter) (int64, error) {
	return 0, nil
}

// windowRead controls one FindInWindow source: fixed rows, optional error,
// an optional gate that holds the first read open, and a call counter.
type windowRead[T any] struct {
	stubTenantRepo[T]
	rows  []T
	err   error
	gate  chan struct{}
	calls atomic.Int64
}

func (r *windowRead[T]) FindInWindow(ctx context.Context, _ uuid.UUID, _, _ *time.Time) ([]T, error) {
	n := r.calls.Add(1)
	if r.gate != nil && n == 1 {
		select {
		case <-r.gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if r.err != nil {
		return nil, r.err
	}
	return r.rows, nil
}

type stubSources struct {
	events      *windowRead[studio.Event]
	payments    *windowRead[studio.Payment]
	expenses    *windowRead[studio.Expense]
	staff       *windowRead[studio.StaffPayment]
	freelancers *windowRead[studio.FreelancerPayment]
	ledger      *windowRead[studio.LedgerEntry]
	closings    *windowRead[studio.ClosingBalance]
}

func newStubSources() *stubSources {
	return &stubSources{
		events:      &windowRead[studio.Event]{},
		payments:    &windowRead[studio.Payment]{},
		expenses:    &windowRead[studio.Expense]{},
		staff:       &windowRead[studio.StaffPayment]{},
		freelancers: &windowRead[studio.FreelancerPayment]{},
		ledger:      &windowRead[studio.LedgerEntry]{},
		closings:    &windowRead[studio.ClosingBalance]{},
	}
}

type stubExpenseRepo struct {
	*windowRead[studio.Expense]
}

func (stubExpenseRepo) DeleteBySource(context.Context, uuid.UUID, string, uuid.UUID) error {
	return nil
}

func (s *stubSources) repositories() SourceRepositories {
	return SourceRepositories{
		Events:             s.events,
		Payments:           s.payments,
		Expenses:           stubExpenseRepo{s.expenses},
		StaffPayments:      s.staff,
		FreelancerPayments: s.freelancers,
		LedgerEntries:      s.ledger,
		ClosingBalances:    s.closings,
	}
}

// capturingPublisher records published events.
type capturingPublisher struct {
	events []shared.DomainEvent
}

func (p *capturingPublisher) Publish(_ context.Context, events ...shared.DomainEvent) error {
	p.events = append(p.events, events...)
	return nil
}
