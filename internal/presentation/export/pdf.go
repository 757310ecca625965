package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/bibbank/cdbsim/internal/application/dto"
)

const (
	pageWidth    = 210.0
	marginLeft   = 15.0
	marginRight  = 15.0
	marginTop    = 15.0
	marginBottom = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
	rowHeight    = 6.0
)

// pdfReport builds the printable simulation report.
type pdfReport struct {
	pdf    *fpdf.Fpdf
	result dto.SimulationResult
}

// BuildPDF generates a PDF report: parameters, final summary and the full
// month-by-month table.
func BuildPDF(result dto.SimulationResult) ([]byte, error) {
	report := &pdfReport{
		pdf:    fpdf.New("P", "mm", "A4", ""),
		result: result,
	}

	report.pdf.SetMargins(marginLeft, marginTop, marginRight)
	report.pdf.SetAutoPageBreak(true, marginBottom)

	report.addHeader()
	report.addSummary()
	report.addTable()

	var buf bytes.Buffer
	if err := report.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *pdfReport) addHeader() {
	r.pdf.AddPage()

	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 12, "CDB IPCA+ Simulation", "", 1, "C", false, 0, "")

	req := r.result.Request
	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(80, 80, 80)
	params := fmt.Sprintf("%s per month at %s%% a.a. for %d months (%s), starting %s",
		req.MonthlyContribution.StringFixed(2),
		req.AnnualRate.Mul(hundred).Round(2).String(),
		req.Periods,
		req.Timing,
		req.StartDate.Format("2006-01-02"),
	)
	r.pdf.CellFormat(contentWidth, 8, params, "", 1, "C", false, 0, "")

	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.CellFormat(contentWidth, 6,
		fmt.Sprintf("Run %s, generated %s", r.result.RunID, time.Now().UTC().Format("2 January 2006")),
		"", 1, "C", false, 0, "")
	r.pdf.Ln(4)
}

func (r *pdfReport) addSummary() {
	sum := r.result.Summary

	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetDrawColor(200, 200, 200)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.CellFormat(contentWidth, 8, "Final Summary", "1", 1, "C", true, 0, "")

	r.pdf.SetFont("Arial", "", 11)
	r.pdf.SetTextColor(50, 50, 50)
	lines := []string{
		fmt.Sprintf("Total invested: %s", sum.TotalInvested.StringFixed(2)),
		fmt.Sprintf("Gross balance: %s", sum.GrossBalance.StringFixed(2)),
		fmt.Sprintf("Gross profit: %s", sum.GrossProfit.StringFixed(2)),
		fmt.Sprintf("Withholding tax: %s", sum.TaxAmount.StringFixed(2)),
		fmt.Sprintf("Net balance: %s", sum.NetBalance.StringFixed(2)),
	}
	for _, line := range lines {
		r.pdf.CellFormat(contentWidth, 7, line, "LR", 1, "C", true, 0, "")
	}
	r.pdf.CellFormat(contentWidth, 1, "", "LRB", 1, "C", true, 0, "")
	r.pdf.Ln(6)
}

func (r *pdfReport) addTable() {
	widths := []float64{14, 28, 28, 28, 26, 26, 30}
	headers := []string{"Month", "Withdrawal", "Invested", "Gross", "Profit", "Tax", "Net"}

	r.writeTableHeader(widths, headers)

	r.pdf.SetFont("Arial", "", 9)
	r.pdf.SetTextColor(50, 50, 50)
	for i, s := range r.result.Snapshots {
		if r.pdf.GetY() > 270 {
			r.pdf.AddPage()
			r.writeTableHeader(widths, headers)
			r.pdf.SetFont("Arial", "", 9)
			r.pdf.SetTextColor(50, 50, 50)
		}

		fill := i%2 == 1
		r.pdf.SetFillColor(248, 249, 251)
		cells := []string{
			fmt.Sprintf("%d", s.Month),
			s.WithdrawalDate.Format("2006-01-02"),
			s.TotalInvested.StringFixed(2),
			s.GrossBalance.StringFixed(2),
			s.GrossProfit.StringFixed(2),
			s.TaxAmount.StringFixed(2),
			s.NetBalance.StringFixed(2),
		}
		for j, cell := range cells {
			r.pdf.CellFormat(widths[j], rowHeight, cell, "1", 0, "R", fill, 0, "")
		}
		r.pdf.Ln(rowHeight)
	}
}

func (r *pdfReport) writeTableHeader(widths []float64, headers []string) {
	r.pdf.SetFont("Arial", "B", 9)
	r.pdf.SetTextColor(0, 51, 102)
	r.pdf.SetFillColor(235, 239, 245)
	for j, h := range headers {
		r.pdf.CellFormat(widths[j], rowHeight+1, h, "1", 0, "C", true, 0, "")
	}
	r.pdf.Ln(rowHeight + 1)
}
