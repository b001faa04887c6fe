package report

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	domreport "github.com/studiosnap/backend/internal/domain/report"
	"github.com/studiosnap/backend/internal/domain/studio"
)

// Aggregate derives the full stats picture from a snapshot. It is a pure
// function of its inputs and recomputes everything from scratch on every
// call.
//
// Money flows exactly once:
//   - incoming = payments + event advances + reflected ledger credits
//   - outgoing = expenses + reflected ledger debits
//
// Staff and freelancer payouts are fetched for per-person reporting but do
// not enter the outgoing total; their money surfaces through the mirrored
// expense rows instead.
func Aggregate(tenantID uuid.UUID, sel domreport.TimeRange, window domreport.Window, now time.Time, snap *Snapshot) *domreport.DerivedStats {
	var in, out domreport.MethodTotals
	in.Cash, in.Digital = decimal.Zero, decimal.Zero
	out.Cash, out.Digital = decimal.Zero, decimal.Zero

	addIn := func(method string, amount decimal.Decimal) {
		if studio.IsDigital(method) {
			in.Digital = in.Digital.Add(amount)
		} else {
			in.Cash = in.Cash.Add(amount)
		}
	}
	addOut := func(method string, amount decimal.Decimal) {
		if studio.IsDigital(method) {
			out.Digital = out.Digital.Add(amount)
		} else {
			out.Cash = out.Cash.Add(amount)
		}
	}

	categories := newCategoryTotals()
	trend := domreport.NewTrendBuckets(sel, window, now, dataYears(sel, snap))

	totalRevenue := decimal.Zero
	for _, ev := range snap.Events {
		totalRevenue = totalRevenue.Add(ev.TotalAmount)
		addIn(ev.AdvancePaymentMethod, ev.AdvanceAmount)
		trend.AddRevenue(ev.EventDate, ev.AdvanceAmount)
	}

	for _, p := range snap.Payments {
		addIn(p.Method, p.Amount)
		trend.AddRevenue(p.PaymentDate, p.Amount)
	}

	for _, exp := range snap.Expenses {
		addOut(exp.Method, exp.Amount)
		categories.add(exp.Category, exp.Amount)
		trend.AddExpenses(exp.ExpenseDate, exp.Amount)
	}

	for _, entry := range snap.ReflectedLedger {
		switch {
		case entry.IsCredit():
			addIn(entry.Method, entry.Amount)
			trend.AddRevenue(entry.EntryDate, entry.Amount)
		case entry.IsDebit():
			addOut(entry.Method, entry.Amount)
			categories.add(entry.ExpenseCategory(), entry.Amount)
			trend.AddExpenses(entry.EntryDate, entry.Amount)
		}
	}

	closed := decimal.Zero
	for _, cb := range snap.ClosingBalances {
		closed = closed.Add(cb.Amount)
	}

	paymentIn := in.Total()
	paymentOut := out.Total()

	pending := totalRevenue.Sub(paymentIn).Sub(closed)
	if pending.IsNegative() {
		pending = decimal.Zero
	}

	return &domreport.DerivedStats{
		TenantID:           tenantID,
		Range:              sel,
		Window:             window,
		GeneratedAt:        now,
		TotalRevenue:       totalRevenue,
		PaymentIn:          paymentIn,
		PaymentOut:         paymentOut,
		PendingAmount:      pending,
		NetProfit:          paymentIn.Sub(paymentOut),
		Methods:            domreport.MethodBreakdown{In: in, Out: out},
		ExpensesByCategory: categories.sorted(),
		Trend:              trend.Stats(),
	}
}

// dataYears collects the years observed in contributing rows. Only the
// global range needs them; its year grid grows with the data.
func dataYears(sel domreport.TimeRange, snap *Snapshot) []int {
	if sel != domreport.RangeGlobal {
		return nil
	}
	seen := make(map[int]bool)
	for _, ev := range snap.Events {
		seen[ev.EventDate.Year()] = true
	}
	for _, p := range snap.Payments {
		seen[p.PaymentDate.Year()] = true
	}
	for _, exp := range snap.Expenses {
		seen[exp.ExpenseDate.Year()] = true
	}
	for _, entry := range snap.ReflectedLedger {
		seen[entry.EntryDate.Year()] = true
	}
	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	return years
}

// categoryTotals groups expense amounts case-insensitively while keeping the
// first verbatim label seen for display.
type categoryTotals struct {
	buckets map[string]*domreport.CategoryExpense
}

func newCategoryTotals() *categoryTotals {
	return &categoryTotals{buckets: make(map[string]*domreport.CategoryExpense)}
}

func (c *categoryTotals) add(label string, amount decimal.Decimal) {
	key := strings.ToLower(strings.TrimSpace(label))
	if bucket, ok := c.buckets[key]; ok {
		bucket.Amount = bucket.Amount.Add(amount)
		return
	}
	c.buckets[key] = &domreport.CategoryExpense{Category: label, Amount: amount}
}

// sorted returns categories largest first, ties broken alphabetically.
func (c *categoryTotals) sorted() []domreport.CategoryExpense {
	result := make([]domreport.CategoryExpense, 0, len(c.buckets))
	for _, bucket := range c.buckets {
		result = append(result, *bucket)
	}
	sort.Slice(result, func(i, j int) bool {
		if !result[i].Amount.Equal(result[j].Amount) {
			return result[i].Amount.GreaterThan(result[j].Amount)
		}
		return result[i].Category < result[j].Category
	})
	return result
}
