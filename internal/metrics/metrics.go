package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// FlowsTotal counts user flows by name and status
	FlowsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jackpot_flows_total",
			Help: "Total number of game flows",
		},
		[]string{"flow", "status"},
	)

	// FlowDuration tracks flow processing time
	FlowDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jackpot_flow_duration_seconds",
			Help:    "Flow duration in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"flow"},
	)

	// TransactionsSent counts transactions sent by operation and outcome
	TransactionsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jackpot_transactions_sent_total",
			Help: "Total number of transactions sent",
		},
		[]string{"operation", "status"},
	)

	// GasUsed tracks gas used by mined transactions
	GasUsed = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "jackpot_gas_used",
			Help:    "Gas used by mined transactions",
			Buckets: []float64{21000, 50000, 100000, 200000, 300000, 500000},
		},
		[]string{"operation"},
	)

	// SnapshotRefreshFailures counts failed refreshes by the field that failed
	SnapshotRefreshFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jackpot_snapshot_refresh_failures_total",
			Help: "Total number of failed snapshot refreshes",
		},
		[]string{"field"},
	)

	// JackpotAmount tracks the last observed jackpot in native display units
	JackpotAmount = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "jackpot_amount",
			Help: "Current jackpot in native units",
		},
		[]string{"kind"},
	)

	// TotalGuesses tracks the last observed global guess counter
	TotalGuesses = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "jackpot_total_guesses",
			Help: "Total guesses reported by the game contract",
		},
	)

	// ErrorsTotal counts errors by component and kind
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "jackpot_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)
