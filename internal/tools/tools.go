package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/cloud-ru/feasibility-go/internal/calculations"
	"github.com/cloud-ru/feasibility-go/internal/config"
	"github.com/cloud-ru/feasibility-go/internal/metrics"
	"github.com/cloud-ru/feasibility-go/internal/model"
	"github.com/cloud-ru/feasibility-go/internal/projection"
	"github.com/cloud-ru/feasibility-go/internal/validators"
	"github.com/cloud-ru/feasibility-go/pkg/utils"
)

// ToolHandler представляет обработчик инструмента
type ToolHandler func(ctx context.Context, params map[string]interface{}) (interface{}, error)

// ErrInvalidParams оборачивает ошибки разбора и проверки параметров
var ErrInvalidParams = errors.New("неверные параметры")

// Имена инструментов
const (
	ToolCalculate   = "feasibility_calculate"
	ToolSensitivity = "feasibility_sensitivity"
	ToolSimulate    = "feasibility_simulate"
	ToolNPV         = "finance_npv"
	ToolIRR         = "finance_irr"
	ToolAnnuity     = "loan_schedule_annuity"
)

// Registry возвращает все инструменты по именам
func Registry(cfg *config.Config, tracer trace.Tracer, session *projection.Session) map[string]ToolHandler {
	return map[string]ToolHandler{
		ToolCalculate:   CalculateHandler(cfg, tracer, session),
		ToolSensitivity: SensitivityHandler(cfg, tracer, session),
		ToolSimulate:    SimulateHandler(cfg, tracer, session),
		ToolNPV:         NPVHandler(cfg, tracer),
		ToolIRR:         IRRHandler(cfg, tracer),
		ToolAnnuity:     LoanScheduleAnnuityHandler(cfg, tracer),
	}
}

// call - учёт одного вызова инструмента в метриках и трейсе
type call struct {
	name string
	span trace.Span
}

func begin(ctx context.Context, tracer trace.Tracer, name string) (context.Context, *call) {
	ctx, span := tracer.Start(ctx, name)
	metrics.APICalls.WithLabelValues("mcp", name, "started").Inc()
	return ctx, &call{name: name, span: span}
}

func (c *call) invalid(err error) error {
	c.span.SetAttributes(attribute.String("error", "validation_error"))
	metrics.ToolCalls.WithLabelValues(c.name, "validation_error").Inc()
	metrics.CalculationErrors.WithLabelValues(c.name, "validation").Inc()
	metrics.APICalls.WithLabelValues("mcp", c.name, "error").Inc()
	return fmt.Errorf("%w: %w", ErrInvalidParams, err)
}

func (c *call) failed(err error) error {
	c.span.SetAttributes(attribute.String("error", "calculation_error"))
	metrics.ToolCalls.WithLabelValues(c.name, "error").Inc()
	metrics.CalculationErrors.WithLabelValues(c.name, "calculation").Inc()
	metrics.APICalls.WithLabelValues("mcp", c.name, "error").Inc()
	return fmt.Errorf("ошибка при выполнении расчета: %w", err)
}

func (c *call) succeeded(attrs ...attribute.KeyValue) {
	c.span.SetAttributes(append(attrs, attribute.Bool("success", true))...)
	metrics.ToolCalls.WithLabelValues(c.name, "success").Inc()
	metrics.APICalls.WithLabelValues("mcp", c.name, "success").Inc()
}

func (c *call) end() {
	c.span.End()
}

// CalculateHandler рассчитывает проект и запоминает результат как базовый
func CalculateHandler(cfg *config.Config, tracer trace.Tracer, session *projection.Session) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, ToolCalculate)
		defer c.end()

		in, err := inputsParam(params, true)
		if err != nil {
			return nil, c.invalid(err)
		}
		if err := validators.ValidateInputs(cfg, in); err != nil {
			return nil, c.invalid(err)
		}
		c.span.SetAttributes(
			attribute.String("model_type", string(in.ModelType)),
			attribute.Int("project_years", in.ProjectYears.Int()),
		)

		res := session.Calculate(in)
		c.succeeded(
			attribute.Float64("npv", res.NPV),
			attribute.Float64("irr", res.IRR),
			attribute.Float64("irr_equity", res.IRREquity),
		)
		return res, nil
	}
}

// SensitivityHandler выполняет анализ чувствительности; без inputs берутся
// параметры последнего расчёта
func SensitivityHandler(cfg *config.Config, tracer trace.Tracer, session *projection.Session) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, ToolSensitivity)
		defer c.end()

		in, err := inputsParam(params, false)
		if err != nil {
			return nil, c.invalid(err)
		}
		if in == nil && session.Last() == nil {
			return nil, c.invalid(fmt.Errorf("inputs: нет параметров и базового расчёта"))
		}
		if in != nil {
			if err := validators.ValidateInputs(cfg, in); err != nil {
				return nil, c.invalid(err)
			}
		}

		res := session.Sensitivity(in)
		c.succeeded(attribute.Int("points", len(res.PriceSensitivity)+len(res.CapexSensitivity)))
		return res, nil
	}
}

// SimulateHandler рассчитывает сценарий относительно последнего базового расчёта
func SimulateHandler(cfg *config.Config, tracer trace.Tracer, session *projection.Session) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, ToolSimulate)
		defer c.end()

		in, err := inputsParam(params, false)
		if err != nil {
			return nil, c.invalid(err)
		}
		if in != nil {
			if err := validators.ValidateInputs(cfg, in); err != nil {
				return nil, c.invalid(err)
			}
		}
		var events []model.SimulationEvent
		if _, err := decodeParam(params, "events", &events); err != nil {
			return nil, c.invalid(err)
		}

		horizonInputs := in
		if horizonInputs == nil {
			if last := session.Last(); last != nil {
				horizonInputs = last.Inputs
			}
		}
		if err := validators.ValidateEvents(cfg, events, horizon(cfg, horizonInputs)); err != nil {
			return nil, c.invalid(err)
		}
		c.span.SetAttributes(attribute.Int("events", len(events)))

		sim := session.Simulate(in, events)
		c.succeeded(
			attribute.Float64("irr_equity_diff", sim.Equity.IRR.Diff),
			attribute.Float64("npv_diff", sim.Project.NPV.Diff),
		)
		return sim, nil
	}
}

// NPVResult - результат finance_npv
type NPVResult struct {
	RatePercent float64 `json:"rate_percent"`
	NPV         float64 `json:"npv"`
}

// NPVHandler дисконтирует ряд cash_flows по ставке rate_percent
func NPVHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, ToolNPV)
		defer c.end()

		rate, err := numberParam(params, "rate_percent")
		if err != nil {
			return nil, c.invalid(err)
		}
		flows, err := flowsParam(params)
		if err != nil {
			return nil, c.invalid(err)
		}
		if err := validators.CheckRate(cfg, "rate_percent", rate); err != nil {
			return nil, c.invalid(err)
		}
		if err := validators.CheckCashFlows(cfg, flows); err != nil {
			return nil, c.invalid(err)
		}

		npv := calculations.NPV(rate/100, flows)
		c.succeeded(attribute.Float64("npv", npv))
		return NPVResult{RatePercent: rate, NPV: utils.Round2(npv)}, nil
	}
}

// IRRResult - результат finance_irr
type IRRResult struct {
	IRRPercent float64 `json:"irr_percent"`
	Converged  bool    `json:"converged"`
}

// IRRHandler ищет внутреннюю норму доходности ряда cash_flows
func IRRHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, ToolIRR)
		defer c.end()

		flows, err := flowsParam(params)
		if err != nil {
			return nil, c.invalid(err)
		}
		if err := validators.CheckCashFlows(cfg, flows); err != nil {
			return nil, c.invalid(err)
		}
		guess := 10.0
		if _, ok := params["guess_percent"]; ok {
			if guess, err = numberParam(params, "guess_percent"); err != nil {
				return nil, c.invalid(err)
			}
		}

		irr := calculations.IRR(flows, guess/100)
		if math.IsNaN(irr) {
			metrics.IRRNonConvergence.WithLabelValues("tool").Inc()
			c.succeeded(attribute.Bool("converged", false))
			return IRRResult{}, nil
		}
		c.succeeded(attribute.Float64("irr", irr*100))
		return IRRResult{IRRPercent: utils.Round2(irr * 100), Converged: true}, nil
	}
}

// LoanScheduleAnnuityHandler обрабатывает запрос на расчет аннуитетного кредита
func LoanScheduleAnnuityHandler(cfg *config.Config, tracer trace.Tracer) ToolHandler {
	return func(ctx context.Context, params map[string]interface{}) (interface{}, error) {
		_, c := begin(ctx, tracer, ToolAnnuity)
		defer c.end()

		principal, err := numberParam(params, "principal")
		if err != nil {
			return nil, c.invalid(err)
		}
		annualRatePercent, err := numberParam(params, "annual_rate_percent")
		if err != nil {
			return nil, c.invalid(err)
		}
		yearsFloat, err := numberParam(params, "years")
		if err != nil {
			return nil, c.invalid(err)
		}
		years := int(yearsFloat)

		c.span.SetAttributes(
			attribute.Float64("principal", principal),
			attribute.Float64("annual_rate_percent", annualRatePercent),
			attribute.Int("years", years),
		)

		if err := validators.CheckPrincipal(cfg, principal); err != nil {
			return nil, c.invalid(err)
		}
		if err := validators.CheckRate(cfg, "annual_rate_percent", annualRatePercent); err != nil {
			return nil, c.invalid(err)
		}
		if err := validators.CheckLoanYears(cfg, years); err != nil {
			return nil, c.invalid(err)
		}

		result, err := calculations.AnnuitySchedule(principal, annualRatePercent, years)
		if err != nil {
			return nil, c.failed(err)
		}

		c.succeeded(
			attribute.Float64("annual_payment", result.Summary.AnnualPayment),
			attribute.Float64("total_paid", result.Summary.TotalPaid),
		)
		return result, nil
	}
}

func horizon(cfg *config.Config, in *model.ProjectInputs) int {
	if in != nil && in.ProjectYears.Int() > 0 {
		return in.ProjectYears.Int()
	}
	return cfg.DefaultProjectYears
}

// decodeParam перекодирует params[key] в dst через JSON, чтобы числовые поля
// разбирались так же, как во входных файлах. Отсутствующий ключ не ошибка.
func decodeParam(params map[string]interface{}, key string, dst interface{}) (bool, error) {
	raw, ok := params[key]
	if !ok || raw == nil {
		return false, nil
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return true, fmt.Errorf("invalid parameter: %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return true, fmt.Errorf("invalid parameter: %s: %w", key, err)
	}
	return true, nil
}

func inputsParam(params map[string]interface{}, required bool) (*model.ProjectInputs, error) {
	var in model.ProjectInputs
	found, err := decodeParam(params, "inputs", &in)
	if err != nil {
		return nil, err
	}
	if !found {
		if required {
			return nil, fmt.Errorf("invalid parameter: inputs")
		}
		return nil, nil
	}
	return &in, nil
}

func numberParam(params map[string]interface{}, key string) (float64, error) {
	v, ok := params[key]
	if !ok || v == nil {
		return 0, fmt.Errorf("invalid parameter: %s", key)
	}
	switch v.(type) {
	case bool, map[string]interface{}, []interface{}:
		return 0, fmt.Errorf("invalid parameter: %s", key)
	}
	return utils.Float(v), nil
}

func flowsParam(params map[string]interface{}) ([]float64, error) {
	var flows []utils.Number
	found, err := decodeParam(params, "cash_flows", &flows)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, fmt.Errorf("invalid parameter: cash_flows")
	}
	out := make([]float64, len(flows))
	for i, f := range flows {
		out[i] = f.Float()
	}
	return out, nil
}
