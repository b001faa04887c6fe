package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryExpense is one slice of the expense breakdown.
type CategoryExpense struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MethodTotals splits an amount into the cash/digital partition.
type MethodTotals struct {
	Cash    decimal.Decimal `json:"cash"`
	Digital decimal.Decimal `json:"digital"`
}

// Total returns cash plus digital.
func (m MethodTotals) Total() decimal.Decimal {
	return m.Cash.Add(m.Digital)
}

// MethodBreakdown partitions incoming and outgoing money by payment method.
type MethodBreakdown struct {
	In  MethodTotals `json:"in"`
	Out MethodTotals `json:"out"`
}

// DerivedStats is the full derived financial picture for one tenant and one
// reporting window. PaymentOut doubles as the total-expenses figure; the two
// are the same number everywhere.
type DerivedStats struct {
	TenantID    uuid.UUID `json:"tenant_id"`
	Range       TimeRange `json:"range"`
	Window      Window    `json:"-"`
	GeneratedAt time.Time `json:"generated_at"`

	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	PaymentIn     decimal.Decimal `json:"payment_in"`
	PaymentOut    decimal.Decimal `json:"payment_out"`
	PendingAmount decimal.Decimal `json:"pending_amount"`
	NetProfit     decimal.Decimal `json:"net_profit"`

	Methods            MethodBreakdown   `json:"methods"`
	ExpensesByCategory []CategoryExpense `json:"expenses_by_category"`
	Trend              []PeriodStat      `json:"trend"`
}

// TotalExpenses is an alias for PaymentOut.
func (s *DerivedStats) TotalExpenses() decimal.Decimal {
	return s.PaymentOut
}

// EmptyStats returns an all-zero picture with the trend buckets for the
// selector already laid out, so a tenant with no data still renders a full
// chart skeleton.
func EmptyStats(tenantID uuid.UUID, sel TimeRange, window Window, now time.Time) *DerivedStats {
	return &DerivedStats{
		TenantID:           tenantID,
		Range:              sel,
		Window:             window,
		GeneratedAt:        now,
		ExpensesByCategory: []CategoryExpense{},
		Trend:              NewTrendBuckets(sel, window, now, nil).Stats(),
	}
}
