package grpc

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/bibbank/cdbsim/internal/application/dto"
	"github.com/bibbank/cdbsim/internal/application/usecase"
	"github.com/bibbank/cdbsim/internal/domain/model"
	"github.com/bibbank/cdbsim/pkg/auth"
)

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) error {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return nil
		}
	}
	return status.Error(codes.PermissionDenied, "insufficient permissions")
}

// Compile-time assertion that SimulationHandler implements SimulationServiceServer.
var _ SimulationServiceServer = (*SimulationHandler)(nil)

// SimulationHandler implements the gRPC SimulationServiceServer interface.
type SimulationHandler struct {
	UnimplementedSimulationServiceServer
	runSimulation *usecase.RunSimulation
}

func NewSimulationHandler(runSimulation *usecase.RunSimulation) *SimulationHandler {
	return &SimulationHandler{runSimulation: runSimulation}
}

// Proto-aligned request/response message types.

type RunSimulationRequest struct {
	MonthlyContribution string
	AnnualRate          string
	Periods             int32
	ContributionTiming  string
	StartDate           *timestamppb.Timestamp
}

type WithdrawalSnapshotMsg struct {
	Month          int32
	WithdrawalDate *timestamppb.Timestamp
	TotalInvested  string
	GrossBalance   string
	GrossProfit    string
	TaxAmount      string
	NetBalance     string
}

type SimulationSummaryMsg struct {
	TotalInvested string
	GrossBalance  string
	GrossProfit   string
	TaxAmount     string
	NetBalance    string
	MonthlyRate   string
}

type RunSimulationResponse struct {
	RunID     string
	Snapshots []*WithdrawalSnapshotMsg
	Summary   *SimulationSummaryMsg
}

// RunSimulation processes a simulation request and returns the full
// month-by-month projection.
func (h *SimulationHandler) RunSimulation(ctx context.Context, req *RunSimulationRequest) (*RunSimulationResponse, error) {
	if err := requireRole(ctx, auth.RoleAdmin, auth.RoleAnalyst, auth.RoleAPIClient); err != nil {
		return nil, err
	}

	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	contribution, err := decimal.NewFromString(req.MonthlyContribution)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid monthly_contribution: %v", err)
	}
	annualRate, err := decimal.NewFromString(req.AnnualRate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid annual_rate: %v", err)
	}
	if req.StartDate == nil {
		return nil, status.Error(codes.InvalidArgument, "start_date is required")
	}

	result, err := h.runSimulation.Execute(ctx, dto.SimulationRequest{
		MonthlyContribution: contribution,
		AnnualRate:          annualRate,
		Periods:             int(req.Periods),
		Timing:              req.ContributionTiming,
		StartDate:           req.StartDate.AsTime(),
	})
	if err != nil {
		var verr *model.ValidationError
		if errors.As(err, &verr) {
			return nil, status.Errorf(codes.InvalidArgument, "invalid %s: %s", verr.Parameter, verr.Reason)
		}
		return nil, status.Error(codes.Internal, "internal error")
	}

	resp := &RunSimulationResponse{
		RunID: result.RunID.String(),
		Summary: &SimulationSummaryMsg{
			TotalInvested: result.Summary.TotalInvested.StringFixed(2),
			GrossBalance:  result.Summary.GrossBalance.StringFixed(2),
			GrossProfit:   result.Summary.GrossProfit.StringFixed(2),
			TaxAmount:     result.Summary.TaxAmount.StringFixed(2),
			NetBalance:    result.Summary.NetBalance.StringFixed(2),
			MonthlyRate:   result.Summary.MonthlyRate.String(),
		},
	}
	for _, s := range result.Snapshots {
		resp.Snapshots = append(resp.Snapshots, &WithdrawalSnapshotMsg{
			Month:          int32(s.Month),
			WithdrawalDate: timestamppb.New(s.WithdrawalDate),
			TotalInvested:  s.TotalInvested.StringFixed(2),
			GrossBalance:   s.GrossBalance.StringFixed(2),
			GrossProfit:    s.GrossProfit.StringFixed(2),
			TaxAmount:      s.TaxAmount.StringFixed(2),
			NetBalance:     s.NetBalance.StringFixed(2),
		})
	}

	return resp, nil
}
