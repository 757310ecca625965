package rest_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bibbank/cdbsim/internal/application/usecase"
	"github.com/bibbank/cdbsim/internal/domain/service"
	"github.com/bibbank/cdbsim/internal/presentation/rest"
)

func newTestMux(t *testing.T) *http.ServeMux {
	t.Helper()
	uc := usecase.NewRunSimulation(service.NewValuationEngine())
	mux := http.NewServeMux()
	rest.NewHealthHandler().RegisterRoutes(mux)
	rest.NewSimulationHandler(uc, slog.Default()).RegisterRoutes(mux)
	return mux
}

func TestHealthEndpoints(t *testing.T) {
	mux := newTestMux(t)

	for _, path := range []string{"/healthz", "/readyz"} {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

		require.Equal(t, http.StatusOK, rec.Code, path)
		var body map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "UP", body["status"])
		assert.Equal(t, "cdbsim", body["service"])
	}
}

func TestSimulateEndpoint(t *testing.T) {
	mux := newTestMux(t)

	t.Run("returns full projection for a valid request", func(t *testing.T) {
		body := `{
			"monthly_contribution": "100",
			"annual_rate": "0.12",
			"periods": 2,
			"contribution_timing": "BEGINNING_OF_MONTH",
			"start_date": "2024-01-01"
		}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/simulations", strings.NewReader(body)))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var resp struct {
			RunID     string `json:"run_id"`
			Snapshots []struct {
				Month          int    `json:"month"`
				WithdrawalDate string `json:"withdrawal_date"`
				GrossBalance   string `json:"gross_balance"`
				NetBalance     string `json:"net_balance"`
			} `json:"snapshots"`
			Summary struct {
				NetBalance string `json:"net_balance"`
			} `json:"summary"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

		assert.NotEmpty(t, resp.RunID)
		require.Len(t, resp.Snapshots, 2)
		assert.Equal(t, 1, resp.Snapshots[0].Month)
		assert.Equal(t, "2024-01-01", resp.Snapshots[0].WithdrawalDate)
		assert.Equal(t, "100.95", resp.Snapshots[0].GrossBalance)
		assert.Equal(t, "202.21", resp.Snapshots[1].NetBalance)
		assert.Equal(t, "202.21", resp.Summary.NetBalance)
	})

	t.Run("rejects malformed JSON", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/simulations", strings.NewReader("{")))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("rejects invalid parameters with a named violation", func(t *testing.T) {
		body := `{
			"monthly_contribution": "0",
			"annual_rate": "0.12",
			"periods": 12,
			"contribution_timing": "BEGINNING_OF_MONTH",
			"start_date": "2024-01-01"
		}`
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/v1/simulations", strings.NewReader(body)))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "monthly_contribution")
	})
}

func TestSimulateCSVEndpoint(t *testing.T) {
	mux := newTestMux(t)

	t.Run("returns a CSV download", func(t *testing.T) {
		url := "/v1/simulations.csv?monthly_contribution=100&annual_rate=0.12&periods=2" +
			"&contribution_timing=BEGINNING_OF_MONTH&start_date=2024-01-01"
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, url, nil))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))

		lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
		require.Len(t, lines, 3)
		assert.Equal(t, "month,withdrawal_date,total_invested,gross_balance,gross_profit,tax_amount,net_balance", lines[0])
		assert.True(t, strings.HasPrefix(lines[1], "1,2024-01-01,100.00,"), lines[1])
	})

	t.Run("rejects missing parameters", func(t *testing.T) {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/simulations.csv", nil))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
