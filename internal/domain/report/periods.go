package report

import (
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodStat is one bucket of the revenue/expense trend.
type PeriodStat struct {
	Label    string          `json:"label"`
	Revenue  decimal.Decimal `json:"revenue"`
	Expenses decimal.Decimal `json:"expenses"`
}

var weekdayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

var monthLabels = [12]string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// globalMinYears is the minimum span of year buckets on the global range:
// the current year plus two prior, even with no data in them.
const globalMinYears = 3

// TrendBuckets accumulates revenue and expenses into the fixed period grid
// of a range selector. All buckets exist up front, so periods with no rows
// still appear as zeros.
type TrendBuckets struct {
	stats []PeriodStat
	index func(t time.Time) int
}

// NewTrendBuckets lays out the bucket grid for a selector. dataYears is only
// consulted for the global range, where the grid covers every year seen in
// the data plus the trailing three calendar years.
func NewTrendBuckets(sel TimeRange, w Window, now time.Time, dataYears []int) *TrendBuckets {
	switch sel {
	case RangeWeek:
		return newFixedBuckets(weekdayLabels[:], w, func(t time.Time) int {
			return int(t.Weekday())
		})

	case RangeMonth:
		labels := []string{"Week 1", "Week 2", "Week 3", "Week 4"}
		return newFixedBuckets(labels, w, func(t time.Time) int {
			idx := (t.Day() - 1) / 7
			if idx > 3 {
				idx = 3
			}
			return idx
		})

	case RangeQuarter:
		startMonth := int(w.Start.Month())
		labels := make([]string, 3)
		for i := range labels {
			labels[i] = monthLabels[(startMonth-1+i)%12]
		}
		return newFixedBuckets(labels, w, func(t time.Time) int {
			return int(t.Month()) - startMonth
		})

	case RangeYear:
		return newFixedBuckets(monthLabels[:], w, func(t time.Time) int {
			return int(t.Month()) - 1
		})

	case RangeGlobal:
		return newYearBuckets(now, dataYears)

	case RangeCustom:
		return newMonthSpanBuckets(w)

	default:
		return &TrendBuckets{stats: []PeriodStat{}, index: func(time.Time) int { return -1 }}
	}
}

func newFixedBuckets(labels []string, w Window, index func(time.Time) int) *TrendBuckets {
	stats := make([]PeriodStat, len(labels))
	for i, label := range labels {
		stats[i] = PeriodStat{Label: label, Revenue: decimal.Zero, Expenses: decimal.Zero}
	}
	return &TrendBuckets{
		stats: stats,
		index: func(t time.Time) int {
			if !w.Contains(t) {
				return -1
			}
			return index(t)
		},
	}
}

func newYearBuckets(now time.Time, dataYears []int) *TrendBuckets {
	seen := make(map[int]bool, len(dataYears)+globalMinYears)
	for _, y := range dataYears {
		seen[y] = true
	}
	for y := now.Year() - globalMinYears + 1; y <= now.Year(); y++ {
		seen[y] = true
	}

	years := make([]int, 0, len(seen))
	for y := range seen {
		years = append(years, y)
	}
	sort.Ints(years)

	stats := make([]PeriodStat, len(years))
	slot := make(map[int]int, len(years))
	for i, y := range years {
		stats[i] = PeriodStat{Label: strconv.Itoa(y), Revenue: decimal.Zero, Expenses: decimal.Zero}
		slot[y] = i
	}

	return &TrendBuckets{
		stats: stats,
		index: func(t time.Time) int {
			if i, ok := slot[t.Year()]; ok {
				return i
			}
			return -1
		},
	}
}

// newMonthSpanBuckets lays out one bucket per calendar month between the
// custom bounds, labelled "Jan 2025" style.
func newMonthSpanBuckets(w Window) *TrendBuckets {
	startYear, startMonth := w.Start.Year(), int(w.Start.Month())
	endYear, endMonth := w.End.Year(), int(w.End.Month())
	count := (endYear-startYear)*12 + endMonth - startMonth + 1
	if count < 1 {
		count = 1
	}

	stats := make([]PeriodStat, count)
	for i := range stats {
		m := (startMonth - 1 + i) % 12
		y := startYear + (startMonth-1+i)/12
		stats[i] = PeriodStat{
			Label:    monthLabels[m] + " " + strconv.Itoa(y),
			Revenue:  decimal.Zero,
			Expenses: decimal.Zero,
		}
	}

	return &TrendBuckets{
		stats: stats,
		index: func(t time.Time) int {
			if !w.Contains(t) {
				return -1
			}
			return (t.Year()-startYear)*12 + int(t.Month()) - startMonth
		},
	}
}

// AddRevenue adds amount to the revenue of the bucket containing t.
// Dates outside the grid are dropped.
func (b *TrendBuckets) AddRevenue(t time.Time, amount decimal.Decimal) {
	if i := b.index(t); i >= 0 && i < len(b.stats) {
		b.stats[i].Revenue = b.stats[i].Revenue.Add(amount)
	}
}

// AddExpenses adds amount to the expenses of the bucket containing t.
func (b *TrendBuckets) AddExpenses(t time.Time, amount decimal.Decimal) {
	if i := b.index(t); i >= 0 && i < len(b.stats) {
		b.stats[i].Expenses = b.stats[i].Expenses.Add(amount)
	}
}

// Stats returns the accumulated buckets in grid order.
func (b *TrendBuckets) Stats() []PeriodStat {
	return b.stats
}
