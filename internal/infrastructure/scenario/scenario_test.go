package scenario_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/cdbsim/internal/domain/model"
	"github.com/bibbank/cdbsim/internal/infrastructure/scenario"
)

func writeScenario(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeScenario(t, `
monthly_contribution: "250.00"
annual_rate_percent: "11.5"
years: 3
contribution_timing: END_OF_MONTH
start_date: "2025-03-15"
`)

	req, err := scenario.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "250", req.MonthlyContribution.String())
	assert.Equal(t, "0.115", req.AnnualRate.String())
	assert.Equal(t, 36, req.Periods)
	assert.Equal(t, string(model.TimingEndOfMonth), req.Timing)
	assert.Equal(t, time.Date(2025, time.March, 15, 0, 0, 0, 0, time.UTC), req.StartDate)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read scenario file")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeScenario(t, "monthly_contribution: [")
	_, err := scenario.Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse scenario file")
}

func TestToRequest(t *testing.T) {
	base := scenario.File{
		MonthlyContribution: "100",
		AnnualRatePercent:   "12",
		Years:               1,
	}

	t.Run("months override years", func(t *testing.T) {
		f := base
		f.Months = 18
		req, err := f.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, 18, req.Periods)
	})

	t.Run("timing defaults to beginning of month", func(t *testing.T) {
		req, err := base.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, string(model.TimingBeginningOfMonth), req.Timing)
	})

	t.Run("start date defaults to now", func(t *testing.T) {
		before := time.Now().UTC()
		req, err := base.ToRequest()
		require.NoError(t, err)
		assert.False(t, req.StartDate.Before(before))
	})

	t.Run("rate is converted from percent", func(t *testing.T) {
		req, err := base.ToRequest()
		require.NoError(t, err)
		assert.Equal(t, "0.12", req.AnnualRate.String())
	})

	t.Run("rejects a non-numeric contribution", func(t *testing.T) {
		f := base
		f.MonthlyContribution = "abc"
		_, err := f.ToRequest()
		assert.Error(t, err)
	})

	t.Run("rejects an unparseable start date", func(t *testing.T) {
		f := base
		f.StartDate = "15/03/2025"
		_, err := f.ToRequest()
		assert.Error(t, err)
	})
}
