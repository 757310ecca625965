package valueobject_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/cdbsim/internal/domain/valueobject"
)

func TestRateForHoldingMonths_BracketBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		monthsHeld int
		wantRate   string
	}{
		{name: "one month", monthsHeld: 1, wantRate: "0.225"},
		{name: "six months stays in first bracket", monthsHeld: 6, wantRate: "0.225"},
		{name: "seven months enters second bracket", monthsHeld: 7, wantRate: "0.200"},
		{name: "twelve months stays in second bracket", monthsHeld: 12, wantRate: "0.200"},
		{name: "thirteen months enters third bracket", monthsHeld: 13, wantRate: "0.175"},
		{name: "twenty-four months stays in third bracket", monthsHeld: 24, wantRate: "0.175"},
		{name: "twenty-five months enters final bracket", monthsHeld: 25, wantRate: "0.150"},
		{name: "thirty years stays in final bracket", monthsHeld: 360, wantRate: "0.150"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := valueobject.RateForHoldingMonths(tt.monthsHeld)
			assert.True(t, rate.Equal(decimal.RequireFromString(tt.wantRate)),
				"RateForHoldingMonths(%d) = %s, want %s", tt.monthsHeld, rate, tt.wantRate)
		})
	}
}

func TestRateForHoldingMonths_MonotonicallyNonIncreasing(t *testing.T) {
	prev := valueobject.RateForHoldingMonths(1)
	for months := 2; months <= 60; months++ {
		rate := valueobject.RateForHoldingMonths(months)
		assert.True(t, rate.LessThanOrEqual(prev),
			"rate increased from %s to %s at %d months", prev, rate, months)
		prev = rate
	}
}

func TestRateForHoldingMonths_OnlyScheduledRates(t *testing.T) {
	allowed := map[string]bool{
		"0.225": true,
		"0.2":   true,
		"0.175": true,
		"0.15":  true,
	}
	for months := 1; months <= 120; months++ {
		rate := valueobject.RateForHoldingMonths(months)
		assert.True(t, allowed[rate.String()], "unexpected rate %s at %d months", rate, months)
	}
}

func TestRegressiveSchedule_Shape(t *testing.T) {
	schedule := valueobject.RegressiveSchedule()
	require.Len(t, schedule, 4)

	assert.Equal(t, 6, schedule[0].MaxMonths())
	assert.Equal(t, 12, schedule[1].MaxMonths())
	assert.Equal(t, 24, schedule[2].MaxMonths())
	assert.Equal(t, 0, schedule[3].MaxMonths(), "final bracket is open-ended")

	assert.True(t, schedule[3].Applies(1000))
	assert.True(t, schedule[0].Applies(6))
	assert.False(t, schedule[0].Applies(7))
}
