// Package scenario loads simulation parameters from a YAML scenario file,
// the batch-friendly counterpart of the CLI flags.
package scenario

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/bibbank/cdbsim/internal/application/dto"
	"github.com/bibbank/cdbsim/internal/domain/model"
)

var hundred = decimal.NewFromInt(100)

// File is the on-disk scenario format. The annual rate is given in percent,
// matching how fixed-income products are quoted. Either months or years
// selects the horizon; months wins when both are present.
type File struct {
	MonthlyContribution string `yaml:"monthly_contribution"`
	AnnualRatePercent   string `yaml:"annual_rate_percent"`
	Years               int    `yaml:"years"`
	Months              int    `yaml:"months"`
	ContributionTiming  string `yaml:"contribution_timing"`
	StartDate           string `yaml:"start_date"`
}

// Load reads and parses a scenario file into a simulation request.
func Load(path string) (dto.SimulationRequest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return dto.SimulationRequest{}, fmt.Errorf("read scenario file %q: %w", path, err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return dto.SimulationRequest{}, fmt.Errorf("parse scenario file %q: %w", path, err)
	}

	return f.ToRequest()
}

// ToRequest converts the scenario into a simulation request, applying the
// same defaults the CLI flags use.
func (f File) ToRequest() (dto.SimulationRequest, error) {
	contribution, err := decimal.NewFromString(f.MonthlyContribution)
	if err != nil {
		return dto.SimulationRequest{}, fmt.Errorf("invalid monthly_contribution: %w", err)
	}

	ratePercent, err := decimal.NewFromString(f.AnnualRatePercent)
	if err != nil {
		return dto.SimulationRequest{}, fmt.Errorf("invalid annual_rate_percent: %w", err)
	}

	months := f.Months
	if months == 0 {
		months = f.Years * 12
	}

	timing := f.ContributionTiming
	if timing == "" {
		timing = string(model.TimingBeginningOfMonth)
	}

	startDate := time.Now().UTC()
	if f.StartDate != "" {
		startDate, err = time.Parse("2006-01-02", f.StartDate)
		if err != nil {
			return dto.SimulationRequest{}, fmt.Errorf("invalid start_date (want YYYY-MM-DD): %w", err)
		}
	}

	return dto.SimulationRequest{
		MonthlyContribution: contribution,
		AnnualRate:          ratePercent.Div(hundred),
		Periods:             months,
		Timing:              timing,
		StartDate:           startDate,
	}, nil
}
