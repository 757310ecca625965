// Package export renders simulation results for the supported output
// surfaces: CSV, terminal table, HTML report with chart, and PDF report.
package export

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)
