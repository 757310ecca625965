package valueobject

import (
	"github.com/shopspring/decimal"
)

// TaxBracket is an immutable value object pairing a holding-period upper bound
// (in whole months, inclusive) with the withholding rate charged on profit.
// A zero maxMonths marks the open-ended final bracket.
type TaxBracket struct {
	maxMonths int
	rate      decimal.Decimal
}

// regressiveSchedule is the IR regressive table for fixed-income profit.
// Brackets are evaluated in order; the rate never increases with holding time.
var regressiveSchedule = []TaxBracket{
	{maxMonths: 6, rate: decimal.RequireFromString("0.225")},
	{maxMonths: 12, rate: decimal.RequireFromString("0.200")},
	{maxMonths: 24, rate: decimal.RequireFromString("0.175")},
	{maxMonths: 0, rate: decimal.RequireFromString("0.150")},
}

// MaxMonths returns the inclusive upper bound of the bracket, or 0 for the
// open-ended bracket.
func (b TaxBracket) MaxMonths() int {
	return b.maxMonths
}

// Rate returns the withholding rate as a decimal fraction (e.g. 0.225 = 22.5%).
func (b TaxBracket) Rate() decimal.Decimal {
	return b.rate
}

// Applies returns true if the given holding period falls within this bracket.
func (b TaxBracket) Applies(monthsHeld int) bool {
	return b.maxMonths == 0 || monthsHeld <= b.maxMonths
}

// RegressiveSchedule returns the full bracket table, shortest holding first.
func RegressiveSchedule() []TaxBracket {
	out := make([]TaxBracket, len(regressiveSchedule))
	copy(out, regressiveSchedule)
	return out
}

// RateForHoldingMonths resolves the withholding rate for a contribution that
// has been invested for the given number of whole months. The caller must
// guarantee monthsHeld >= 1; every contribution has held for at least one
// month by its own withdrawal month.
func RateForHoldingMonths(monthsHeld int) decimal.Decimal {
	for _, bracket := range regressiveSchedule {
		if bracket.Applies(monthsHeld) {
			return bracket.Rate()
		}
	}
	// Unreachable: the final bracket is open-ended.
	return regressiveSchedule[len(regressiveSchedule)-1].Rate()
}
