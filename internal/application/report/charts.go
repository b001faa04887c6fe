package report

import (
	"strings"

	"github.com/shopspring/decimal"

	domreport "github.com/studiosnap/backend/internal/domain/report"
)

// PieSlice is one slice of the expense breakdown chart. ColorKey is the
// case-normalized category used for stable slice coloring; Label keeps the
// category exactly as entered.
type PieSlice struct {
	Label    string  `json:"label"`
	Value    float64 `json:"value"`
	ColorKey string  `json:"color_key"`
}

// BarPoint is one bucket of the revenue/expense trend chart.
type BarPoint struct {
	Period   string  `json:"period"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// ChartSeries is the chart-ready reshaping of derived stats.
type ChartSeries struct {
	Pie  []PieSlice `json:"pie_data"`
	Bars []BarPoint `json:"bar_data"`
}

// BuildChartSeries reshapes derived stats for chart rendering. Values pass
// through unchanged; only labels and color keys are added.
func BuildChartSeries(stats *domreport.DerivedStats) *ChartSeries {
	series := &ChartSeries{
		Pie:  make([]PieSlice, 0, len(stats.ExpensesByCategory)),
		Bars: make([]BarPoint, 0, len(stats.Trend)),
	}

	for _, cat := range stats.ExpensesByCategory {
		series.Pie = append(series.Pie, PieSlice{
			Label:    cat.Category,
			Value:    toFloat64(cat.Amount),
			ColorKey: strings.ToLower(strings.TrimSpace(cat.Category)),
		})
	}

	for _, period := range stats.Trend {
		series.Bars = append(series.Bars, BarPoint{
			Period:   period.Label,
			Revenue:  toFloat64(period.Revenue),
			Expenses: toFloat64(period.Expenses),
		})
	}

	return series
}

// toFloat64 converts a decimal to float64 at the presentation boundary.
// All arithmetic stays in decimal; floats appear only in outbound payloads.
func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
