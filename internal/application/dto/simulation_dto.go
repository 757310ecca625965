package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SimulationRequest is the input DTO for running a simulation. Timing is the
// wire-level policy name ("BEGINNING_OF_MONTH" or "END_OF_MONTH").
type SimulationRequest struct {
	MonthlyContribution decimal.Decimal
	AnnualRate          decimal.Decimal
	Periods             int
	Timing              string
	StartDate           time.Time
}

// SnapshotDTO transfers one withdrawal-month projection between layers.
// Monetary fields carry the engine's 2-decimal emission rounding.
type SnapshotDTO struct {
	Month          int
	WithdrawalDate time.Time
	TotalInvested  decimal.Decimal
	GrossBalance   decimal.Decimal
	GrossProfit    decimal.Decimal
	TaxAmount      decimal.Decimal
	NetBalance     decimal.Decimal
}

// SimulationSummary is the final-month roll-up shown after the full table.
type SimulationSummary struct {
	TotalInvested decimal.Decimal
	GrossBalance  decimal.Decimal
	GrossProfit   decimal.Decimal
	TaxAmount     decimal.Decimal
	NetBalance    decimal.Decimal
	MonthlyRate   decimal.Decimal
}

// SimulationResult is the output DTO for a simulation run. Request echoes
// the accepted input so renderers can show the run's parameters.
type SimulationResult struct {
	RunID     uuid.UUID
	Request   SimulationRequest
	Snapshots []SnapshotDTO
	Summary   SimulationSummary
}
