package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bibbank/cdbsim/internal/application/dto"
	"github.com/bibbank/cdbsim/internal/application/usecase"
	"github.com/bibbank/cdbsim/internal/domain/model"
	"github.com/bibbank/cdbsim/internal/presentation/export"
)

// SimulationHandler exposes the simulation over HTTP: JSON for programmatic
// consumers and CSV for spreadsheet download.
type SimulationHandler struct {
	runSimulation *usecase.RunSimulation
	logger        *slog.Logger
}

// NewSimulationHandler creates a new SimulationHandler.
func NewSimulationHandler(runSimulation *usecase.RunSimulation, logger *slog.Logger) *SimulationHandler {
	return &SimulationHandler{runSimulation: runSimulation, logger: logger}
}

// RegisterRoutes registers the simulation routes on the provided mux.
func (h *SimulationHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/simulations", h.SimulateHandler())
	mux.HandleFunc("GET /v1/simulations.csv", h.SimulateCSVHandler())
}

type simulationRequestBody struct {
	MonthlyContribution string `json:"monthly_contribution"`
	AnnualRate          string `json:"annual_rate"`
	Periods             int    `json:"periods"`
	ContributionTiming  string `json:"contribution_timing"`
	StartDate           string `json:"start_date"`
}

type snapshotBody struct {
	Month          int    `json:"month"`
	WithdrawalDate string `json:"withdrawal_date"`
	TotalInvested  string `json:"total_invested"`
	GrossBalance   string `json:"gross_balance"`
	GrossProfit    string `json:"gross_profit"`
	TaxAmount      string `json:"tax_amount"`
	NetBalance     string `json:"net_balance"`
}

type summaryBody struct {
	TotalInvested string `json:"total_invested"`
	GrossBalance  string `json:"gross_balance"`
	GrossProfit   string `json:"gross_profit"`
	TaxAmount     string `json:"tax_amount"`
	NetBalance    string `json:"net_balance"`
	MonthlyRate   string `json:"monthly_rate"`
}

type simulationResponseBody struct {
	RunID     string         `json:"run_id"`
	Snapshots []snapshotBody `json:"snapshots"`
	Summary   summaryBody    `json:"summary"`
}

type errorBody struct {
	Error string `json:"error"`
}

// SimulateHandler runs a simulation from a JSON body and returns the full
// projection as JSON.
func (h *SimulationHandler) SimulateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var body simulationRequestBody
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: fmt.Sprintf("invalid JSON body: %v", err)})
			return
		}

		req, err := toSimulationRequest(body)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}

		result, err := h.runSimulation.Execute(r.Context(), req)
		if err != nil {
			h.writeSimulationError(w, err)
			return
		}

		resp := simulationResponseBody{
			RunID: result.RunID.String(),
			Summary: summaryBody{
				TotalInvested: result.Summary.TotalInvested.StringFixed(2),
				GrossBalance:  result.Summary.GrossBalance.StringFixed(2),
				GrossProfit:   result.Summary.GrossProfit.StringFixed(2),
				TaxAmount:     result.Summary.TaxAmount.StringFixed(2),
				NetBalance:    result.Summary.NetBalance.StringFixed(2),
				MonthlyRate:   result.Summary.MonthlyRate.String(),
			},
		}
		for _, s := range result.Snapshots {
			resp.Snapshots = append(resp.Snapshots, snapshotBody{
				Month:          s.Month,
				WithdrawalDate: s.WithdrawalDate.Format("2006-01-02"),
				TotalInvested:  s.TotalInvested.StringFixed(2),
				GrossBalance:   s.GrossBalance.StringFixed(2),
				GrossProfit:    s.GrossProfit.StringFixed(2),
				TaxAmount:      s.TaxAmount.StringFixed(2),
				NetBalance:     s.NetBalance.StringFixed(2),
			})
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

// SimulateCSVHandler runs a simulation from query parameters and returns the
// projection as a CSV download.
func (h *SimulationHandler) SimulateCSVHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := toSimulationRequest(requestBodyFromQuery(r.URL.Query()))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
			return
		}

		result, err := h.runSimulation.Execute(r.Context(), req)
		if err != nil {
			h.writeSimulationError(w, err)
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", `attachment; filename="simulation.csv"`)
		if err := export.WriteCSV(w, result.Snapshots); err != nil {
			h.logger.Error("failed to write CSV response", "error", err)
		}
	}
}

func (h *SimulationHandler) writeSimulationError(w http.ResponseWriter, err error) {
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorBody{Error: verr.Error()})
		return
	}
	h.logger.Error("simulation failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
}

func requestBodyFromQuery(q url.Values) simulationRequestBody {
	periods, _ := strconv.Atoi(q.Get("periods"))
	return simulationRequestBody{
		MonthlyContribution: q.Get("monthly_contribution"),
		AnnualRate:          q.Get("annual_rate"),
		Periods:             periods,
		ContributionTiming:  q.Get("contribution_timing"),
		StartDate:           q.Get("start_date"),
	}
}

func toSimulationRequest(body simulationRequestBody) (dto.SimulationRequest, error) {
	contribution, err := decimal.NewFromString(body.MonthlyContribution)
	if err != nil {
		return dto.SimulationRequest{}, fmt.Errorf("invalid monthly_contribution: %w", err)
	}
	annualRate, err := decimal.NewFromString(body.AnnualRate)
	if err != nil {
		return dto.SimulationRequest{}, fmt.Errorf("invalid annual_rate: %w", err)
	}
	startDate, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		return dto.SimulationRequest{}, fmt.Errorf("invalid start_date (want YYYY-MM-DD): %w", err)
	}

	return dto.SimulationRequest{
		MonthlyContribution: contribution,
		AnnualRate:          annualRate,
		Periods:             body.Periods,
		Timing:              body.ContributionTiming,
		StartDate:           startDate,
	}, nil
}
