package export

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/bibbank/cdbsim/internal/application/dto"
)

const (
	chartWidth  = 840.0
	chartHeight = 360.0
	chartPad    = 40.0
)

var reportTemplate = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>CDB IPCA+ simulation {{.RunID}}</title>
<style>
body { font-family: sans-serif; margin: 2em; color: #222; }
h1 { color: #003366; }
table { border-collapse: collapse; margin-top: 1em; }
th, td { border: 1px solid #ccc; padding: 4px 10px; text-align: right; }
th { background: #f5f7fa; }
.summary { background: #f5f7fa; border: 1px solid #ccc; padding: 1em; width: 28em; }
.legend-gross { color: #1f77b4; }
.legend-net { color: #2ca02c; }
</style>
</head>
<body>
<h1>CDB IPCA+ simulation</h1>
<p>Run {{.RunID}} &mdash; {{.Amount}} per month, {{.AnnualRatePct}}% a.a., {{.Periods}} months, {{.Timing}}, starting {{.StartDate}}</p>

<h2>Balance if withdrawing each month</h2>
<svg width="{{.Width}}" height="{{.Height}}" viewBox="0 0 {{.Width}} {{.Height}}" role="img">
  <rect width="{{.Width}}" height="{{.Height}}" fill="#fcfcfc" stroke="#ccc"/>
  <polyline points="{{.GrossPoints}}" fill="none" stroke="#1f77b4" stroke-width="2"/>
  <polyline points="{{.NetPoints}}" fill="none" stroke="#2ca02c" stroke-width="2"/>
</svg>
<p><span class="legend-gross">&#9632; gross balance</span> &nbsp; <span class="legend-net">&#9632; net balance</span></p>

<h2>Final summary</h2>
<div class="summary">
<p>Total invested: {{.Summary.TotalInvested}}</p>
<p>Gross balance: {{.Summary.GrossBalance}}</p>
<p>Withholding tax: {{.Summary.TaxAmount}}</p>
<p>Net balance: {{.Summary.NetBalance}}</p>
</div>

<h2>Month by month</h2>
<table>
<tr><th>Month</th><th>Withdrawal</th><th>Invested</th><th>Gross</th><th>Profit</th><th>Tax</th><th>Net</th></tr>
{{range .Rows}}<tr>
<td>{{.Month}}</td>
<td>{{.Date}}</td>
<td>{{.Invested}}</td>
<td>{{.Gross}}</td>
<td>{{.Profit}}</td>
<td>{{.Tax}}</td>
<td>{{.Net}}</td>
</tr>
{{end}}</table>
</body>
</html>
`))

type reportRow struct {
	Month    int
	Date     string
	Invested string
	Gross    string
	Profit   string
	Tax      string
	Net      string
}

type reportSummary struct {
	TotalInvested, GrossBalance, TaxAmount, NetBalance string
}

type reportData struct {
	RunID         string
	Amount        string
	AnnualRatePct string
	Periods       int
	Timing        string
	StartDate     string
	Width         float64
	Height        float64
	GrossPoints   string
	NetPoints     string
	Summary       reportSummary
	Rows          []reportRow
}

// WriteHTML renders a self-contained HTML report with an inline SVG chart of
// gross versus net balance by withdrawal month.
func WriteHTML(w io.Writer, result dto.SimulationResult) error {
	rows := make([]reportRow, 0, len(result.Snapshots))
	for _, s := range result.Snapshots {
		rows = append(rows, reportRow{
			Month:    s.Month,
			Date:     s.WithdrawalDate.Format("2006-01-02"),
			Invested: s.TotalInvested.StringFixed(2),
			Gross:    s.GrossBalance.StringFixed(2),
			Profit:   s.GrossProfit.StringFixed(2),
			Tax:      s.TaxAmount.StringFixed(2),
			Net:      s.NetBalance.StringFixed(2),
		})
	}

	data := reportData{
		RunID:         result.RunID.String(),
		Amount:        result.Request.MonthlyContribution.StringFixed(2),
		AnnualRatePct: result.Request.AnnualRate.Mul(hundred).Round(2).String(),
		Periods:       result.Request.Periods,
		Timing:        result.Request.Timing,
		StartDate:     result.Request.StartDate.Format("2006-01-02"),
		Width:         chartWidth,
		Height:        chartHeight,
		GrossPoints:   chartPoints(result.Snapshots, func(s dto.SnapshotDTO) float64 { return s.GrossBalance.InexactFloat64() }),
		NetPoints:     chartPoints(result.Snapshots, func(s dto.SnapshotDTO) float64 { return s.NetBalance.InexactFloat64() }),
		Summary: reportSummary{
			TotalInvested: result.Summary.TotalInvested.StringFixed(2),
			GrossBalance:  result.Summary.GrossBalance.StringFixed(2),
			TaxAmount:     result.Summary.TaxAmount.StringFixed(2),
			NetBalance:    result.Summary.NetBalance.StringFixed(2),
		},
		Rows: rows,
	}
	return reportTemplate.Execute(w, data)
}

// chartPoints maps snapshot values onto SVG coordinates. The y axis is scaled
// to the largest gross balance so both series share one scale.
func chartPoints(snapshots []dto.SnapshotDTO, value func(dto.SnapshotDTO) float64) string {
	if len(snapshots) == 0 {
		return ""
	}

	maxY := 0.0
	for _, s := range snapshots {
		if v := s.GrossBalance.InexactFloat64(); v > maxY {
			maxY = v
		}
	}
	if maxY == 0 {
		maxY = 1
	}

	spanX := chartWidth - 2*chartPad
	spanY := chartHeight - 2*chartPad
	stepX := spanX
	if len(snapshots) > 1 {
		stepX = spanX / float64(len(snapshots)-1)
	}

	var b strings.Builder
	for i, s := range snapshots {
		x := chartPad + float64(i)*stepX
		y := chartHeight - chartPad - value(s)/maxY*spanY
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%.1f,%.1f", x, y)
	}
	return b.String()
}
