package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// WithdrawalSnapshot aggregates the hypothetical outcome of withdrawing every
// contribution made up to a given month: total principal paid in, the gross
// balance after compounding, the profit, the withholding tax owed on that
// profit, and the resulting net balance. Snapshots are immutable and ordered
// by month; the order is simulation time.
type WithdrawalSnapshot struct {
	month          int
	withdrawalDate time.Time
	totalInvested  decimal.Decimal
	grossBalance   decimal.Decimal
	grossProfit    decimal.Decimal
	taxAmount      decimal.Decimal
	netBalance     decimal.Decimal
}

// NewWithdrawalSnapshot creates a snapshot for withdrawal month t (1-based).
// Monetary values are rounded to 2 decimal places here, at emission; callers
// accumulate at full working precision.
func NewWithdrawalSnapshot(
	month int,
	withdrawalDate time.Time,
	totalInvested, grossBalance, grossProfit, taxAmount, netBalance decimal.Decimal,
) WithdrawalSnapshot {
	return WithdrawalSnapshot{
		month:          month,
		withdrawalDate: withdrawalDate,
		totalInvested:  totalInvested.Round(2),
		grossBalance:   grossBalance.Round(2),
		grossProfit:    grossProfit.Round(2),
		taxAmount:      taxAmount.Round(2),
		netBalance:     netBalance.Round(2),
	}
}

// Month returns the 1-based withdrawal month index.
func (s WithdrawalSnapshot) Month() int {
	return s.month
}

// WithdrawalDate returns the calendar date of the hypothetical withdrawal.
func (s WithdrawalSnapshot) WithdrawalDate() time.Time {
	return s.withdrawalDate
}

// TotalInvested returns the sum of all contributions made up to this month.
func (s WithdrawalSnapshot) TotalInvested() decimal.Decimal {
	return s.totalInvested
}

// GrossBalance returns the compounded value of all contributions before tax.
func (s WithdrawalSnapshot) GrossBalance() decimal.Decimal {
	return s.grossBalance
}

// GrossProfit returns the gross balance minus the total invested.
func (s WithdrawalSnapshot) GrossProfit() decimal.Decimal {
	return s.grossProfit
}

// TaxAmount returns the withholding tax owed if withdrawing this month.
func (s WithdrawalSnapshot) TaxAmount() decimal.Decimal {
	return s.taxAmount
}

// NetBalance returns the gross balance minus the withholding tax.
func (s WithdrawalSnapshot) NetBalance() decimal.Decimal {
	return s.netBalance
}
