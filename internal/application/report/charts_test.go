package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domreport "github.com/studiosnap/backend/internal/domain/report"
)

func chartFixture(t *testing.T) *domreport.DerivedStats {
	t.Helper()
	w := monthWindow(t)
	snap := baselineSnapshot(t)
	return Aggregate(aggTenant, domreport.RangeMonth, w, aggNow, snap)
}

func TestBuildChartSeries(t *testing.T) {
	stats := chartFixture(t)
	series := BuildChartSeries(stats)

	require.Len(t, series.Pie, 1)
	assert.Equal(t, "Travel", series.Pie[0].Label)
	assert.Equal(t, "travel", series.Pie[0].ColorKey)
	assert.InDelta(t, 8000, series.Pie[0].Value, 0.001)

	require.Len(t, series.Bars, len(stats.Trend))
	for i, bar := range series.Bars {
		assert.Equal(t, stats.Trend[i].Label, bar.Period)
		assert.InDelta(t, toFloat64(stats.Trend[i].Revenue), bar.Revenue, 0.001)
		assert.InDelta(t, toFloat64(stats.Trend[i].Expenses), bar.Expenses, 0.001)
	}
}

func TestBuildReportPayload_Summary(t *testing.T) {
	stats := chartFixture(t)
	payload := BuildReportPayload(stats, "Northlight Studio")

	assert.Equal(t, "Northlight Studio", payload.StudioName)
	assert.InDelta(t, 50000, payload.Summary.TotalRevenue, 0.001)
	assert.InDelta(t, 25000, payload.Summary.PaymentIn, 0.001)
	assert.InDelta(t, 8000, payload.Summary.PaymentOut, 0.001)
	assert.InDelta(t, 17000, payload.Summary.NetProfit, 0.001)
	assert.InDelta(t, 25000, payload.Summary.PendingAmount, 0.001)
	assert.Contains(t, payload.RangeLabel, "Jun 1, 2025")
}

func TestBuildReportPayload_Pagination(t *testing.T) {
	w := monthWindow(t)
	snap := &Snapshot{}
	date := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 35; i++ {
		snap.Expenses = append(snap.Expenses,
			mustExpense(t, int64(100+i), categoryName(i), "Cash", date))
	}

	stats := Aggregate(aggTenant, domreport.RangeMonth, w, aggNow, snap)
	payload := BuildReportPayload(stats, "Northlight Studio")

	require.Len(t, payload.CategoryPages, 3)
	assert.Len(t, payload.CategoryPages[0], 15)
	assert.Len(t, payload.CategoryPages[1], 15)
	assert.Len(t, payload.CategoryPages[2], 5)
}

func TestBuildReportPayload_GlobalRangeLabel(t *testing.T) {
	stats := Aggregate(aggTenant, domreport.RangeGlobal, domreport.Window{Global: true}, aggNow, &Snapshot{})
	payload := BuildReportPayload(stats, "Northlight Studio")
	assert.Equal(t, "All time", payload.RangeLabel)
}

func categoryName(i int) string {
	return "Category " + string(rune('A'+i%26)) + string(rune('0'+i/26))
}
