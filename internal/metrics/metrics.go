package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ToolCalls счетчик вызовов инструментов
	ToolCalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tool_calls_total",
			Help: "Общее количество вызовов инструментов",
		},
		[]string{"tool_name", "status"},
	)

	// CalculationErrors счетчик ошибок расчетов
	CalculationErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "calculation_errors_total",
			Help: "Количество ошибок расчетов",
		},
		[]string{"tool_name", "error_type"},
	)

	// APICalls счетчик HTTP-запросов к API
	APICalls = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_calls_total",
			Help: "Вызовы HTTP API",
		},
		[]string{"service", "endpoint", "status"},
	)

	// ProjectionRuns счетчик расчетов модели по режимам: base, simulation, sensitivity
	ProjectionRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "projection_runs_total",
			Help: "Количество расчетов финансовой модели",
		},
		[]string{"mode"},
	)

	// IRRNonConvergence счетчик расчетов IRR без сходимости (project или equity)
	IRRNonConvergence = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "irr_non_convergence_total",
			Help: "Расчеты IRR, не сошедшиеся за 1000 итераций",
		},
		[]string{"cash_flow"},
	)
)
