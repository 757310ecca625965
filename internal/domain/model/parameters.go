package model

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// ContributionTiming selects when in the calendar month each contribution lands.
type ContributionTiming string

const (
	TimingBeginningOfMonth ContributionTiming = "BEGINNING_OF_MONTH"
	TimingEndOfMonth       ContributionTiming = "END_OF_MONTH"
)

// ParseContributionTiming converts a wire-level string into a ContributionTiming.
func ParseContributionTiming(s string) (ContributionTiming, error) {
	switch ContributionTiming(s) {
	case TimingBeginningOfMonth:
		return TimingBeginningOfMonth, nil
	case TimingEndOfMonth:
		return TimingEndOfMonth, nil
	default:
		return "", &ValidationError{Parameter: "contribution_timing", Reason: fmt.Sprintf("unrecognized timing %q", s)}
	}
}

// ValidationError reports a simulation parameter that violated its constraint.
// The simulator rejects parameters before any computation rather than
// substituting defaults.
type ValidationError struct {
	Parameter string
	Reason    string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Parameter, e.Reason)
}

// SimulationParameters is the immutable input to a simulation run: a fixed
// monthly contribution invested at an annual rate (inflation index + spread,
// as a decimal fraction) over a number of months.
type SimulationParameters struct {
	monthlyContribution decimal.Decimal
	annualRate          decimal.Decimal
	periods             int
	timing              ContributionTiming
	startDate           time.Time
}

// NewSimulationParameters creates validated SimulationParameters.
// The start date is normalized to a UTC calendar date.
func NewSimulationParameters(
	monthlyContribution decimal.Decimal,
	annualRate decimal.Decimal,
	periods int,
	timing ContributionTiming,
	startDate time.Time,
) (SimulationParameters, error) {
	if !monthlyContribution.IsPositive() {
		return SimulationParameters{}, &ValidationError{
			Parameter: "monthly_contribution",
			Reason:    "must be positive",
		}
	}
	if annualRate.IsNegative() {
		return SimulationParameters{}, &ValidationError{
			Parameter: "annual_rate",
			Reason:    "must not be negative",
		}
	}
	if periods < 1 {
		return SimulationParameters{}, &ValidationError{
			Parameter: "periods",
			Reason:    "must be at least 1 month",
		}
	}
	if timing != TimingBeginningOfMonth && timing != TimingEndOfMonth {
		return SimulationParameters{}, &ValidationError{
			Parameter: "contribution_timing",
			Reason:    fmt.Sprintf("unrecognized timing %q", timing),
		}
	}
	if startDate.IsZero() {
		return SimulationParameters{}, &ValidationError{
			Parameter: "start_date",
			Reason:    "must be a valid calendar date",
		}
	}

	year, month, day := startDate.Date()

	return SimulationParameters{
		monthlyContribution: monthlyContribution,
		annualRate:          annualRate,
		periods:             periods,
		timing:              timing,
		startDate:           time.Date(year, month, day, 0, 0, 0, 0, time.UTC),
	}, nil
}

// MonthlyContribution returns the fixed contribution made each month.
func (p SimulationParameters) MonthlyContribution() decimal.Decimal {
	return p.monthlyContribution
}

// AnnualRate returns the annual nominal rate as a decimal fraction.
func (p SimulationParameters) AnnualRate() decimal.Decimal {
	return p.annualRate
}

// Periods returns the investment horizon in months.
func (p SimulationParameters) Periods() int {
	return p.periods
}

// Timing returns the contribution-timing policy.
func (p SimulationParameters) Timing() ContributionTiming {
	return p.timing
}

// StartDate returns the calendar date of the first contribution's month.
func (p SimulationParameters) StartDate() time.Time {
	return p.startDate
}

// MonthlyRate returns the monthly rate equivalent, under compound interest,
// to the annual rate: (1 + annual)^(1/12) - 1.
func (p SimulationParameters) MonthlyRate() decimal.Decimal {
	if p.annualRate.IsZero() {
		return decimal.Zero
	}
	rm := math.Pow(1+p.annualRate.InexactFloat64(), 1.0/12.0) - 1
	return decimal.NewFromFloat(rm)
}
