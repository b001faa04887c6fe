package report

import (
	"sync"
	"time"

	"github.com/google/uuid"

	domreport "github.com/studiosnap/backend/internal/domain/report"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// ledgerCacheKey identifies one tenant-and-window combination.
type ledgerCacheKey struct {
	tenantID uuid.UUID
	sel      domreport.TimeRange
	start    int64
	end      int64
}

// ledgerFingerprint is a cheap identity for an input slice: row count plus
// the newest update stamp. A changed row bumps UpdatedAt, a added or removed
// row changes the count.
type ledgerFingerprint struct {
	count  int
	latest time.Time
}

type ledgerCacheEntry struct {
	fingerprint ledgerFingerprint
	reflected   []studio.LedgerEntry
}

// reflectedLedgerCache memoizes the reflect-to-company filter per tenant and
// window so repeated renders of the same data skip the scan.
type reflectedLedgerCache struct {
	mu      sync.Mutex
	entries map[ledgerCacheKey]ledgerCacheEntry
}

func newReflectedLedgerCache() *reflectedLedgerCache {
	return &reflectedLedgerCache{
		entries: make(map[ledgerCacheKey]ledgerCacheEntry),
	}
}

// Filter returns the reflect-to-company subset of raw, reusing the cached
// result when the input has not changed since the last call for this key.
func (c *reflectedLedgerCache) Filter(tenantID uuid.UUID, sel domreport.TimeRange, window domreport.Window, raw []studio.LedgerEntry) []studio.LedgerEntry {
	key := ledgerCacheKey{tenantID: tenantID, sel: sel}
	if !window.Global {
		key.start = window.Start.Unix()
		key.end = window.End.Unix()
	}
	fp := fingerprintLedger(raw)

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.entries[key]; ok && cached.fingerprint == fp {
		return cached.reflected
	}

	reflected := make([]studio.LedgerEntry, 0, len(raw))
	for _, entry := range raw {
		if entry.ReflectToCompany {
			reflected = append(reflected, entry)
		}
	}

	c.entries[key] = ledgerCacheEntry{fingerprint: fp, reflected: reflected}
	return reflected
}

func fingerprintLedger(rows []studio.LedgerEntry) ledgerFingerprint {
	fp := ledgerFingerprint{count: len(rows)}
	for _, row := range rows {
		if row.UpdatedAt.After(fp.latest) {
			fp.latest = row.UpdatedAt
		}
	}
	return fp
}
