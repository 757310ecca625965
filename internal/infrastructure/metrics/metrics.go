package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SimulationRuns counts simulation executions by outcome.
	SimulationRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdbsim_simulations_total",
			Help: "Total number of simulation runs by status.",
		},
		[]string{"status"},
	)

	// ValidationFailures counts rejected parameter sets by parameter name.
	ValidationFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cdbsim_validation_failures_total",
			Help: "Simulation requests rejected during parameter validation.",
		},
		[]string{"parameter"},
	)

	// SimulationHorizon observes the requested horizon in months.
	SimulationHorizon = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "cdbsim_simulation_horizon_months",
			Help:    "Requested simulation horizon in months.",
			Buckets: []float64{12, 24, 60, 120, 240, 360},
		},
	)
)
