package report

import (
	domreport "github.com/studiosnap/backend/internal/domain/report"
)

// reportPageSize is the fixed number of table rows per printed page.
const reportPageSize = 15

// ReportSummary carries the headline figures of a finance report.
type ReportSummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	PaymentIn     float64 `json:"payment_in"`
	PaymentOut    float64 `json:"payment_out"`
	NetProfit     float64 `json:"net_profit"`
	PendingAmount float64 `json:"pending_amount"`
	CashIn        float64 `json:"cash_in"`
	DigitalIn     float64 `json:"digital_in"`
	CashOut       float64 `json:"cash_out"`
	DigitalOut    float64 `json:"digital_out"`
}

// ReportRow is one table line in the printed report.
type ReportRow struct {
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue,omitempty"`
	Expenses float64 `json:"expenses,omitempty"`
	Amount   float64 `json:"amount,omitempty"`
}

// ReportPayload is the document model handed to the PDF renderer. It is a
// pure reshaping of derived stats: every number is copied, never recomputed.
type ReportPayload struct {
	StudioName    string        `json:"studio_name"`
	RangeLabel    string        `json:"range_label"`
	GeneratedAt   string        `json:"generated_at"`
	Summary       ReportSummary `json:"summary"`
	CategoryPages [][]ReportRow `json:"category_pages"`
	TrendPages    [][]ReportRow `json:"trend_pages"`
	PageCount     int           `json:"page_count"`
}

// BuildReportPayload reshapes derived stats into the printable document
// model. Tables are split into fixed pages of fifteen rows.
func BuildReportPayload(stats *domreport.DerivedStats, studioName string) *ReportPayload {
	categoryRows := make([]ReportRow, 0, len(stats.ExpensesByCategory))
	for _, cat := range stats.ExpensesByCategory {
		categoryRows = append(categoryRows, ReportRow{
			Label:  cat.Category,
			Amount: toFloat64(cat.Amount),
		})
	}

	trendRows := make([]ReportRow, 0, len(stats.Trend))
	for _, period := range stats.Trend {
		trendRows = append(trendRows, ReportRow{
			Label:    period.Label,
			Revenue:  toFloat64(period.Revenue),
			Expenses: toFloat64(period.Expenses),
		})
	}

	categoryPages := paginateRows(categoryRows, reportPageSize)
	trendPages := paginateRows(trendRows, reportPageSize)

	return &ReportPayload{
		StudioName:  studioName,
		RangeLabel:  rangeLabel(stats),
		GeneratedAt: stats.GeneratedAt.Format("Jan 2, 2006 15:04"),
		Summary: ReportSummary{
			TotalRevenue:  toFloat64(stats.TotalRevenue),
			PaymentIn:     toFloat64(stats.PaymentIn),
			PaymentOut:    toFloat64(stats.PaymentOut),
			NetProfit:     toFloat64(stats.NetProfit),
			PendingAmount: toFloat64(stats.PendingAmount),
			CashIn:        toFloat64(stats.Methods.In.Cash),
			DigitalIn:     toFloat64(stats.Methods.In.Digital),
			CashOut:       toFloat64(stats.Methods.Out.Cash),
			DigitalOut:    toFloat64(stats.Methods.Out.Digital),
		},
		CategoryPages: categoryPages,
		TrendPages:    trendPages,
		PageCount:     len(categoryPages) + len(trendPages),
	}
}

func paginateRows(rows []ReportRow, pageSize int) [][]ReportRow {
	if len(rows) == 0 {
		return [][]ReportRow{}
	}
	pages := make([][]ReportRow, 0, (len(rows)+pageSize-1)/pageSize)
	for start := 0; start < len(rows); start += pageSize {
		end := start + pageSize
		if end > len(rows) {
			end = len(rows)
		}
		pages = append(pages, rows[start:end])
	}
	return pages
}

func rangeLabel(stats *domreport.DerivedStats) string {
	if stats.Window.Global {
		return "All time"
	}
	const layout = "Jan 2, 2006"
	return stats.Window.Start.Format(layout) + " to " + stats.Window.End.Format(layout)
}
