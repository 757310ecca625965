package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/bibbank/cdbsim/internal/application/dto"
	"github.com/bibbank/cdbsim/internal/domain/model"
	"github.com/bibbank/cdbsim/internal/domain/service"
	"github.com/bibbank/cdbsim/internal/infrastructure/metrics"
)

// RunSimulation handles a complete simulation run: parameter validation,
// engine execution and result assembly.
type RunSimulation struct {
	engine *service.ValuationEngine
	tracer trace.Tracer
}

// NewRunSimulation creates a new RunSimulation use case.
func NewRunSimulation(engine *service.ValuationEngine) *RunSimulation {
	return &RunSimulation{
		engine: engine,
		tracer: otel.Tracer("cdbsim.simulation"),
	}
}

// Execute validates the request, runs the valuation engine and returns the
// ordered snapshots with a final-month summary. Invalid parameters are
// rejected before any computation; the returned error wraps a
// model.ValidationError naming the offending parameter.
func (uc *RunSimulation) Execute(ctx context.Context, req dto.SimulationRequest) (dto.SimulationResult, error) {
	_, span := uc.tracer.Start(ctx, "RunSimulation",
		trace.WithAttributes(
			attribute.Int("simulation.periods", req.Periods),
			attribute.String("simulation.timing", req.Timing),
		),
	)
	defer span.End()

	params, err := uc.buildParameters(req)
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			metrics.ValidationFailures.WithLabelValues(verr.Parameter).Inc()
		}
		metrics.SimulationRuns.WithLabelValues("rejected").Inc()
		span.RecordError(err)
		return dto.SimulationResult{}, err
	}

	snapshots := uc.engine.Simulate(params)

	result := dto.SimulationResult{
		RunID:     uuid.New(),
		Request:   req,
		Snapshots: make([]dto.SnapshotDTO, 0, len(snapshots)),
	}
	for _, s := range snapshots {
		result.Snapshots = append(result.Snapshots, dto.SnapshotDTO{
			Month:          s.Month(),
			WithdrawalDate: s.WithdrawalDate(),
			TotalInvested:  s.TotalInvested(),
			GrossBalance:   s.GrossBalance(),
			GrossProfit:    s.GrossProfit(),
			TaxAmount:      s.TaxAmount(),
			NetBalance:     s.NetBalance(),
		})
	}

	final := snapshots[len(snapshots)-1]
	result.Summary = dto.SimulationSummary{
		TotalInvested: final.TotalInvested(),
		GrossBalance:  final.GrossBalance(),
		GrossProfit:   final.GrossProfit(),
		TaxAmount:     final.TaxAmount(),
		NetBalance:    final.NetBalance(),
		MonthlyRate:   params.MonthlyRate(),
	}

	metrics.SimulationRuns.WithLabelValues("ok").Inc()
	metrics.SimulationHorizon.Observe(float64(params.Periods()))

	return result, nil
}

func (uc *RunSimulation) buildParameters(req dto.SimulationRequest) (model.SimulationParameters, error) {
	timing, err := model.ParseContributionTiming(req.Timing)
	if err != nil {
		return model.SimulationParameters{}, fmt.Errorf("parse contribution timing: %w", err)
	}

	params, err := model.NewSimulationParameters(
		req.MonthlyContribution,
		req.AnnualRate,
		req.Periods,
		timing,
		req.StartDate,
	)
	if err != nil {
		return model.SimulationParameters{}, fmt.Errorf("validate simulation parameters: %w", err)
	}

	return params, nil
}
