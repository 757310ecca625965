package service

import (
	"github.com/shopspring/decimal"

	"github.com/bibbank/cdbsim/internal/domain/model"
	"github.com/bibbank/cdbsim/internal/domain/valueobject"
)

// factorPrecision bounds the decimal growth factors so coefficients stay
// small over a 360-month horizon. The precision is far beyond anything the
// 2-decimal emission rounding can observe.
const factorPrecision = 16

var one = decimal.NewFromInt(1)

// ValuationEngine is a domain service that projects the month-by-month
// outcome of withdrawing a stream of monthly contributions. Each candidate
// withdrawal month is an independent fold over the contributions made so
// far: a contribution's future value, profit and withholding tax depend only
// on its own holding period, so the engine is a pure function of the
// simulation parameters.
type ValuationEngine struct{}

// NewValuationEngine creates a new ValuationEngine.
func NewValuationEngine() *ValuationEngine {
	return &ValuationEngine{}
}

// Simulate returns one WithdrawalSnapshot per candidate withdrawal month
// t in [1, periods], in ascending month order. For each t it compounds every
// contribution made at or before t over its own holding period, taxes each
// contribution's profit at the regressive rate for that holding period, and
// aggregates the results.
func (e *ValuationEngine) Simulate(params model.SimulationParameters) []model.WithdrawalSnapshot {
	periods := params.Periods()
	amount := params.MonthlyContribution()
	onePlusRm := one.Add(params.MonthlyRate())

	// growth[h] is (1+rm)^h, precomputed for every holding period.
	growth := make([]decimal.Decimal, periods+1)
	growth[0] = one
	for h := 1; h <= periods; h++ {
		growth[h] = growth[h-1].Mul(onePlusRm).Round(factorPrecision)
	}

	snapshots := make([]model.WithdrawalSnapshot, 0, periods)
	for t := 1; t <= periods; t++ {
		invested := decimal.Zero
		gross := decimal.Zero
		profit := decimal.Zero
		tax := decimal.Zero

		for m := 0; m < t; m++ {
			holding := t - m // whole months invested; always >= 1

			futureValue := amount.Mul(growth[holding])
			contributionProfit := futureValue.Sub(amount)
			contributionTax := contributionProfit.Mul(valueobject.RateForHoldingMonths(holding))

			invested = invested.Add(amount)
			gross = gross.Add(futureValue)
			profit = profit.Add(contributionProfit)
			tax = tax.Add(contributionTax)
		}

		snapshots = append(snapshots, model.NewWithdrawalSnapshot(
			t,
			params.WithdrawalDate(t),
			invested,
			gross,
			profit,
			tax,
			gross.Sub(tax),
		))
	}

	return snapshots
}
