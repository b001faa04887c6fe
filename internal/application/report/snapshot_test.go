package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domreport "github.com/studiosnap/backend/internal/domain/report"
	"github.com/studiosnap/backend/internal/domain/shared"
	"github.com/studiosnap/backend/internal/domain/studio"
)

func TestSnapshotFetcher_Fetch(t *testing.T) {
	tenantID := uuid.New()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	reflected, err := studio.NewLedgerEntry(tenantID, studio.LedgerCredit, decimal.NewFromInt(500), "Cash", date, true)
	require.NoError(t, err)
	personal, err := studio.NewLedgerEntry(tenantID, studio.LedgerDebit, decimal.NewFromInt(900), "Cash", date, false)
	require.NoError(t, err)

	sources := newStubSources()
	sources.ledger.rows = []studio.LedgerEntry{*reflected, *personal}

	ev, err := studio.NewEvent(tenantID, "Client", "Portrait", date, decimal.NewFromInt(12000), decimal.Zero)
	require.NoError(t, err)
	sources.events.rows = []studio.Event{*ev}

	fetcher := NewSnapshotFetcher(sources.repositories())
	window, err := domreport.ResolveWindow(domreport.RangeMonth, date, nil, nil)
	require.NoError(t, err)

	snap, err := fetcher.Fetch(context.Background(), tenantID, domreport.RangeMonth, window)
	require.NoError(t, err)

	assert.Len(t, snap.Events, 1)
	// Only reflect-to-company entries reach the aggregator.
	require.Len(t, snap.ReflectedLedger, 1)
	assert.Equal(t, reflected.ID, snap.ReflectedLedger[0].ID)
}

func TestSnapshotFetcher_FailFast(t *testing.T) {
	sources := newStubSources()
	sources.payments.err = errors.New("connection reset")

	fetcher := NewSnapshotFetcher(sources.repositories())
	window := domreport.Window{Global: true}

	snap, err := fetcher.Fetch(context.Background(), uuid.New(), domreport.RangeGlobal, window)
	require.Error(t, err)
	assert.Nil(t, snap)
	assert.ErrorIs(t, err, shared.ErrSourceUnavailable)
	assert.Contains(t, err.Error(), "fetch payments")
}

func TestReflectedLedgerCache_Memoizes(t *testing.T) {
	tenantID := uuid.New()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	window, err := domreport.ResolveWindow(domreport.RangeMonth, date, nil, nil)
	require.NoError(t, err)

	entry, err := studio.NewLedgerEntry(tenantID, studio.LedgerCredit, decimal.NewFromInt(500), "Cash", date, true)
	require.NoError(t, err)
	rows := []studio.LedgerEntry{*entry}

	cache := newReflectedLedgerCache()
	first := cache.Filter(tenantID, domreport.RangeMonth, window, rows)
	second := cache.Filter(tenantID, domreport.RangeMonth, window, rows)

	require.Len(t, first, 1)
	// Unchanged input returns the cached slice itself.
	assert.Equal(t, &first[0], &second[0])
}

func TestReflectedLedgerCache_RecomputesOnChange(t *testing.T) {
	tenantID := uuid.New()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	window, err := domreport.ResolveWindow(domreport.RangeMonth, date, nil, nil)
	require.NoError(t, err)

	entry, err := studio.NewLedgerEntry(tenantID, studio.LedgerCredit, decimal.NewFromInt(500), "Cash", date, true)
	require.NoError(t, err)

	cache := newReflectedLedgerCache()
	first := cache.Filter(tenantID, domreport.RangeMonth, window, []studio.LedgerEntry{*entry})
	require.Len(t, first, 1)

	// An edit bumps UpdatedAt and flips the flag; the cache must notice.
	changed := *entry
	changed.ReflectToCompany = false
	changed.UpdatedAt = changed.UpdatedAt.Add(time.Minute)

	second := cache.Filter(tenantID, domreport.RangeMonth, window, []studio.LedgerEntry{changed})
	assert.Empty(t, second)
}
