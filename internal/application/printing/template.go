package printing

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/studiosnap/backend/internal/application/report"
)

// reportFuncs are the helper functions available to the report template.
var reportFuncs = template.FuncMap{
	"money": formatMoney,
	"add1":  func(i int) int { return i + 1 },
}

var reportTemplate = template.Must(
	template.New("finance_report").Funcs(reportFuncs).Parse(reportTemplateHTML))

// RenderReportHTML renders the finance report payload into a complete HTML
// document ready for PDF conversion.
func RenderReportHTML(payload *report.ReportPayload) (string, error) {
	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, payload); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatMoney formats an amount with thousand separators and two decimals.
// Example: 1234.5 -> "1,234.50"
func formatMoney(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}

	whole := int64(v)
	cents := int64(v*100+0.5) - whole*100
	if cents >= 100 {
		whole++
		cents -= 100
	}

	intPart := formatGrouped(whole)

	var buf strings.Builder
	buf.WriteString(sign)
	buf.WriteString(intPart)
	buf.WriteByte('.')
	if cents < 10 {
		buf.WriteByte('0')
	}
	buf.WriteString(itoa(cents))
	return buf.String()
}

func formatGrouped(n int64) string {
	digits := itoa(n)
	var buf strings.Builder
	for i, c := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			buf.WriteByte(',')
		}
		buf.WriteRune(c)
	}
	return buf.String()
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	var b [20]byte
	i := len(b)
	for n > 0 {
		i--
		b[i] = byte('0' + n%10)
		n /= 10
	}
	return string(b[i:])
}

const reportTemplateHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<title>{{.StudioName}} Finance Report</title>
<style>
  body { font-family: "Helvetica Neue", Helvetica, Arial, sans-serif; color: #1a1a2e; margin: 0; }
  .page { page-break-after: always; padding: 8px 4px; }
  .page:last-child { page-break-after: auto; }
  h1 { font-size: 22px; margin: 0 0 2px 0; }
  h2 { font-size: 15px; margin: 18px 0 8px 0; border-bottom: 2px solid #1a1a2e; padding-bottom: 4px; }
  .meta { font-size: 11px; color: #666; margin-bottom: 16px; }
  .summary { display: flex; flex-wrap: wrap; gap: 10px; }
  .card { flex: 1 1 30%; border: 1px solid #ddd; border-radius: 6px; padding: 10px 12px; }
  .card .label { font-size: 10px; text-transform: uppercase; letter-spacing: 0.5px; color: #888; }
  .card .value { font-size: 18px; font-weight: 600; margin-top: 4px; }
  .negative { color: #c0392b; }
  table { width: 100%; border-collapse: collapse; font-size: 12px; }
  th { text-align: left; background: #f2f2f7; padding: 6px 8px; border-bottom: 2px solid #ccc; }
  th.num, td.num { text-align: right; }
  td { padding: 6px 8px; border-bottom: 1px solid #eee; }
  .footer { font-size: 10px; color: #999; margin-top: 12px; }
</style>
</head>
<body>
<div class="page">
  <h1>{{.StudioName}}</h1>
  <div class="meta">Finance report for {{.RangeLabel}} &middot; generated {{.GeneratedAt}}</div>

  <h2>Summary</h2>
  <div class="summary">
    <div class="card"><div class="label">Total Revenue</div><div class="value">{{money .Summary.TotalRevenue}}</div></div>
    <div class="card"><div class="label">Payment In</div><div class="value">{{money .Summary.PaymentIn}}</div></div>
    <div class="card"><div class="label">Payment Out</div><div class="value">{{money .Summary.PaymentOut}}</div></div>
    <div class="card"><div class="label">Net Profit</div><div class="value{{if lt .Summary.NetProfit 0.0}} negative{{end}}">{{money .Summary.NetProfit}}</div></div>
    <div class="card"><div class="label">Pending Amount</div><div class="value">{{money .Summary.PendingAmount}}</div></div>
  </div>

  <h2>Payment Methods</h2>
  <table>
    <thead><tr><th>Direction</th><th class="num">Cash</th><th class="num">Digital</th></tr></thead>
    <tbody>
      <tr><td>Incoming</td><td class="num">{{money .Summary.CashIn}}</td><td class="num">{{money .Summary.DigitalIn}}</td></tr>
      <tr><td>Outgoing</td><td class="num">{{money .Summary.CashOut}}</td><td class="num">{{money .Summary.DigitalOut}}</td></tr>
    </tbody>
  </table>
</div>

{{range $i, $rows := .CategoryPages}}
<div class="page">
  <h2>Expenses by Category{{if gt (len $.CategoryPages) 1}} (page {{add1 $i}}){{end}}</h2>
  <table>
    <thead><tr><th>Category</th><th class="num">Amount</th></tr></thead>
    <tbody>
    {{range $rows}}
      <tr><td>{{.Label}}</td><td class="num">{{money .Amount}}</td></tr>
    {{end}}
    </tbody>
  </table>
</div>
{{end}}

{{range $i, $rows := .TrendPages}}
<div class="page">
  <h2>Revenue and Expense Trend{{if gt (len $.TrendPages) 1}} (page {{add1 $i}}){{end}}</h2>
  <table>
    <thead><tr><th>Period</th><th class="num">Revenue</th><th class="num">Expenses</th></tr></thead>
    <tbody>
    {{range $rows}}
      <tr><td>{{.Label}}</td><td class="num">{{money .Revenue}}</td><td class="num">{{money .Expenses}}</td></tr>
    {{end}}
    </tbody>
  </table>
</div>
{{end}}
</body>
</html>`
