package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/cdbsim/internal/domain/model"
)

func paramsWithTiming(t *testing.T, timing model.ContributionTiming, start time.Time, periods int) model.SimulationParameters {
	t.Helper()
	params, err := model.NewSimulationParameters(
		decimal.NewFromInt(100),
		decimal.RequireFromString("0.10"),
		periods,
		timing,
		start,
	)
	require.NoError(t, err)
	return params
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestContributionDate_BeginningOfMonth(t *testing.T) {
	// Mid-month start dates anchor to the first day of the start month.
	params := paramsWithTiming(t, model.TimingBeginningOfMonth, date(2024, time.January, 15), 14)

	tests := []struct {
		m    int
		want time.Time
	}{
		{m: 0, want: date(2024, time.January, 1)},
		{m: 1, want: date(2024, time.February, 1)},
		{m: 11, want: date(2024, time.December, 1)},
		{m: 12, want: date(2025, time.January, 1)},
	}
	for _, tt := range tests {
		got := params.ContributionDate(tt.m)
		require.True(t, got.Equal(tt.want), "m=%d: got %s, want %s", tt.m, got, tt.want)
	}
}

func TestContributionDate_EndOfMonth(t *testing.T) {
	params := paramsWithTiming(t, model.TimingEndOfMonth, date(2024, time.January, 15), 26)

	tests := []struct {
		m    int
		want time.Time
	}{
		{m: 0, want: date(2024, time.January, 31)},
		{m: 1, want: date(2024, time.February, 29)}, // leap year
		{m: 2, want: date(2024, time.March, 31)},
		{m: 3, want: date(2024, time.April, 30)},
		{m: 13, want: date(2025, time.February, 28)},
		{m: 25, want: date(2026, time.February, 28)},
	}
	for _, tt := range tests {
		got := params.ContributionDate(tt.m)
		require.True(t, got.Equal(tt.want), "m=%d: got %s, want %s", tt.m, got, tt.want)
	}
}

func TestContributionDate_NoDriftAcrossShortMonths(t *testing.T) {
	// Advancing month-by-month must match advancing in one jump; day-counting
	// schemes drift across February.
	params := paramsWithTiming(t, model.TimingEndOfMonth, date(2023, time.December, 31), 24)

	for m := 0; m < 24; m++ {
		got := params.ContributionDate(m)

		// Every contribution is the last day of its month.
		next := got.AddDate(0, 0, 1)
		require.Equal(t, 1, next.Day(), "m=%d: %s is not a month end", m, got)
	}
}

func TestWithdrawalDate(t *testing.T) {
	params := paramsWithTiming(t, model.TimingBeginningOfMonth, date(2024, time.January, 1), 12)

	require.True(t, params.WithdrawalDate(1).Equal(date(2024, time.January, 1)))
	require.True(t, params.WithdrawalDate(2).Equal(date(2024, time.February, 1)))
	require.True(t, params.WithdrawalDate(12).Equal(date(2024, time.December, 1)))
}
