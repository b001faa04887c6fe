package report

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/studiosnap/backend/internal/domain/report"
	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// Snapshot is a point-in-time read of every finance source for one tenant
// and window. ReflectedLedger holds only entries flagged reflect-to-company;
// the aggregator never sees the rest.
type Snapshot struct {
	Events             []studio.Event
	Payments           []studio.Payment
	Expenses           []studio.Expense
	StaffPayments      []studio.StaffPayment
	FreelancerPayments []studio.FreelancerPayment
	ReflectedLedger    []studio.LedgerEntry
	ClosingBalances    []studio.ClosingBalance
}

// SourceRepositories groups the seven reads a snapshot needs.
type SourceRepositories struct {
	Events             studio.EventRepository
	Payments           studio.PaymentRepository
	Expenses           studio.ExpenseRepository
	StaffPayments      studio.StaffPaymentRepository
	FreelancerPayments studio.FreelancerPaymentRepository
	LedgerEntries      studio.LedgerEntryRepository
	ClosingBalances    studio.ClosingBalanceRepository
}

// SnapshotFetcher reads all finance sources concurrently. Any failed read
// fails the whole snapshot; there is no partial aggregation.
type SnapshotFetcher struct {
	repos  SourceRepositories
	ledger *reflectedLedgerCache
	logger *zap.Logger
}

// FetcherOption configures a SnapshotFetcher.
type FetcherOption func(*SnapshotFetcher)

// WithFetcherLogger sets the logger.
func WithFetcherLogger(logger *zap.Logger) FetcherOption {
	return func(f *SnapshotFetcher) {
		f.logger = logger
	}
}

// NewSnapshotFetcher creates a fetcher over the given repositories.
func NewSnapshotFetcher(repos SourceRepositories, opts ...FetcherOption) *SnapshotFetcher {
	f := &SnapshotFetcher{
		repos:  repos,
		ledger: newReflectedLedgerCache(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch reads the seven sources for the tenant inside the window. Reads run
// concurrently and the first error cancels the rest.
func (f *SnapshotFetcher) Fetch(ctx context.Context, tenantID uuid.UUID, sel report.TimeRange, window report.Window) (*Snapshot, error) {
	from, to := window.Bounds()
	snap := &Snapshot{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rows, err := f.repos.Events.FindInWindow(ctx, tenantID, from, to)
		if err != nil {
			return fmt.Errorf("fetch events: %w", err)
		}
		snap.Events = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.repos.Payments.FindInWindow(ctx, tenantID, from, to)
		if err != nil {
			return fmt.Errorf("fetch payments: %w", err)
		}
		snap.Payments = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.repos.Expenses.FindInWindow(ctx, tenantID, from, to)
		if err != nil {
			return fmt.Errorf("fetch expenses: %w", err)
		}
		snap.Expenses = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.repos.StaffPayments.FindInWindow(ctx, tenantID, from, to)
		if err != nil {
			return fmt.Errorf("fetch staff payments: %w", err)
		}
		snap.StaffPayments = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.repos.FreelancerPayments.FindInWindow(ctx, tenantID, from, to)
		if err != nil {
			return fmt.Errorf("fetch freelancer payments: %w", err)
		}
		snap.FreelancerPayments = rows
		return nil
	})

	var rawLedger []studio.LedgerEntry
	g.Go(func() error {
		rows, err := f.repos.LedgerEntries.FindInWindow(ctx, tenantID, from, to)
		if err != nil {
			return fmt.Errorf("fetch ledger entries: %w", err)
		}
		rawLedger = rows
		return nil
	})

	g.Go(func() error {
		rows, err := f.repos.ClosingBalances.FindInWindow(ctx, tenantID, from, to)
		if err != nil {
			return fmt.Errorf("fetch closing balances: %w", err)
		}
		snap.ClosingBalances = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		f.logger.Warn("snapshot fetch failed",
			zap.String("tenant_id", tenantID.String()),
			zap.String("range", string(sel)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", shared.ErrSourceUnavailable, err)
	}

	snap.ReflectedLedger = f.ledger.Filter(tenantID, sel, window, rawLedger)

	f.logger.Debug("snapshot fetched",
		zap.String("tenant_id", tenantID.String()),
		zap.String("range", string(sel)),
		zap.Int("events", len(snap.Events)),
		zap.Int("payments", len(snap.Payments)),
		zap.Int("expenses", len(snap.Expenses)),
		zap.Int("reflected_ledger", len(snap.ReflectedLedger)))

	return snap, nil
}
