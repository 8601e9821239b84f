package tools

import (
	"context"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace/noop"

	"github.com/cloud-ru/feasibility-go/internal/calculations"
	"github.com/cloud-ru/feasibility-go/internal/config"
	"github.com/cloud-ru/feasibility-go/internal/model"
	"github.com/cloud-ru/feasibility-go/internal/projection"
)

const powerInputs = `{
	"modelType": "POWER",
	"capacity": "10",
	"projectYears": 20,
	"powerFactor": 0.9,
	"hoursPerDay": 24,
	"daysPerYear": 365,
	"initialEfficiency": 100,
	"degradation": 0.5,
	"revenue": {"peakRate": 4.5, "peakHours": 13, "offPeakRate": 2.6, "escalation": 1},
	"capex": {"construction": 600000000, "machinery": "900,000,000", "land": 100000000},
	"finance": {"debtRatio": 70, "interestRate": 5, "loanTerm": 10, "taxRate": 20,
		"opexInflation": 2, "ke": 12, "kd": 5, "taxHoliday": 8},
	"opex": [{"name": "O&M", "type": "fixed", "value": 30000000, "freqType": "yearly"}]
}`

func parseParams(t *testing.T, s string) map[string]interface{} {
	t.Helper()
	var params map[string]interface{}
	if err := json.Unmarshal([]byte(s), &params); err != nil {
		t.Fatalf("bad test params: %v", err)
	}
	return params
}

func newRegistry(t *testing.T) (map[string]ToolHandler, *projection.Session) {
	t.Helper()
	cfg, _ := config.LoadConfig()
	session := projection.NewSession(projection.New(cfg.EngineOptions()))
	return Registry(cfg, noop.NewTracerProvider().Tracer("test"), session), session
}

func TestRegistryNames(t *testing.T) {
	reg, _ := newRegistry(t)
	for _, name := range []string{ToolCalculate, ToolSensitivity, ToolSimulate, ToolNPV, ToolIRR, ToolAnnuity} {
		if reg[name] == nil {
			t.Errorf("tool %s not registered", name)
		}
	}
}

func TestCalculateHandler(t *testing.T) {
	reg, session := newRegistry(t)
	out, err := reg[ToolCalculate](context.Background(), parseParams(t, `{"inputs": `+powerInputs+`}`))
	if err != nil {
		t.Fatalf("calculate error = %v", err)
	}
	res := out.(*model.ProjectionResult)
	if res.Years() != 20 {
		t.Errorf("Years() = %d, want 20", res.Years())
	}
	if res.Inputs.Capex.Machinery.Float() != 900e6 {
		t.Errorf("lax machinery decoding = %v", res.Inputs.Capex.Machinery)
	}
	if session.Last() != res {
		t.Error("calculate should store the base result in the session")
	}
}

func TestCalculateHandlerValidation(t *testing.T) {
	reg, session := newRegistry(t)

	tests := []struct {
		name   string
		params string
	}{
		{"missing inputs", `{}`},
		{"debt ratio over 100", `{"inputs": {"modelType": "POWER", "finance": {"debtRatio": 150}}}`},
		{"unknown model", `{"inputs": {"modelType": "NUCLEAR"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := reg[ToolCalculate](context.Background(), parseParams(t, tt.params))
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), "неверные параметры") {
				t.Errorf("error = %v", err)
			}
		})
	}
	if session.Last() != nil {
		t.Error("invalid calls must not store a result")
	}
}

func TestSensitivityHandler(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	if _, err := reg[ToolSensitivity](ctx, map[string]interface{}{}); err == nil {
		t.Error("sensitivity without inputs and base should fail")
	}

	if _, err := reg[ToolCalculate](ctx, parseParams(t, `{"inputs": `+powerInputs+`}`)); err != nil {
		t.Fatal(err)
	}
	out, err := reg[ToolSensitivity](ctx, map[string]interface{}{})
	if err != nil {
		t.Fatalf("sensitivity error = %v", err)
	}
	res := out.(*projection.SensitivityResult)
	if len(res.PriceSensitivity) != 5 || len(res.CapexSensitivity) != 5 {
		t.Fatalf("points = %d/%d, want 5/5", len(res.PriceSensitivity), len(res.CapexSensitivity))
	}
	if res.PriceSensitivity[0].IRR >= res.PriceSensitivity[4].IRR {
		t.Error("equity IRR should grow with price")
	}
}

func TestSimulateHandler(t *testing.T) {
	reg, _ := newRegistry(t)
	ctx := context.Background()

	if _, err := reg[ToolCalculate](ctx, parseParams(t, `{"inputs": `+powerInputs+`}`)); err != nil {
		t.Fatal(err)
	}

	out, err := reg[ToolSimulate](ctx, parseParams(t,
		`{"events": [{"type": "price_peak", "mode": "percent", "startYear": 1, "value": -20}]}`))
	if err != nil {
		t.Fatalf("simulate error = %v", err)
	}
	sim := out.(*projection.Simulation)
	if sim.Equity.View != calculations.ViewEquity || sim.Project.View != calculations.ViewProject {
		t.Errorf("views = %s/%s", sim.Equity.View, sim.Project.View)
	}
	if sim.Project.NPV.Diff >= 0 {
		t.Errorf("lower price should reduce NPV, diff = %v", sim.Project.NPV.Diff)
	}

	_, err = reg[ToolSimulate](ctx, parseParams(t,
		`{"events": [{"type": "capacity", "mode": "percent", "startYear": 50}]}`))
	if err == nil {
		t.Error("event beyond horizon should fail validation")
	}
}

func TestNPVHandler(t *testing.T) {
	reg, _ := newRegistry(t)
	out, err := reg[ToolNPV](context.Background(), parseParams(t,
		`{"rate_percent": 10, "cash_flows": [-1000, 500, 500, 500]}`))
	if err != nil {
		t.Fatalf("npv error = %v", err)
	}
	got := out.(NPVResult).NPV
	if math.Abs(got-243.43) > 0.01 {
		t.Errorf("NPV = %v, want 243.43", got)
	}

	if _, err := reg[ToolNPV](context.Background(), parseParams(t, `{"cash_flows": [-1, 2]}`)); err == nil {
		t.Error("missing rate should fail")
	}
}

func TestIRRHandler(t *testing.T) {
	reg, _ := newRegistry(t)
	out, err := reg[ToolIRR](context.Background(), parseParams(t, `{"cash_flows": [-100, 110]}`))
	if err != nil {
		t.Fatalf("irr error = %v", err)
	}
	res := out.(IRRResult)
	if !res.Converged || math.Abs(res.IRRPercent-10) > 0.01 {
		t.Errorf("IRR = %+v, want 10%%", res)
	}

	if _, err := reg[ToolIRR](context.Background(), parseParams(t, `{"cash_flows": [-100]}`)); err == nil {
		t.Error("single cash flow should fail")
	}
}

func TestLoanScheduleAnnuityHandler(t *testing.T) {
	reg, _ := newRegistry(t)
	out, err := reg[ToolAnnuity](context.Background(), parseParams(t,
		`{"principal": 1000000, "annual_rate_percent": 10, "years": 5}`))
	if err != nil {
		t.Fatalf("annuity error = %v", err)
	}
	res := out.(*calculations.CalculationResult)
	if len(res.Schedule) != 5 {
		t.Fatalf("schedule len = %d, want 5", len(res.Schedule))
	}
	if math.Abs(res.Summary.AnnualPayment-263797.48) > 0.01 {
		t.Errorf("AnnualPayment = %v, want 263797.48", res.Summary.AnnualPayment)
	}
	if res.Schedule[4].RemainingPrincipal != 0 {
		t.Errorf("final balance = %v", res.Schedule[4].RemainingPrincipal)
	}

	if _, err := reg[ToolAnnuity](context.Background(), parseParams(t,
		`{"principal": 0, "annual_rate_percent": 10, "years": 5}`)); err == nil {
		t.Error("zero principal should fail")
	}
	if _, err := reg[ToolAnnuity](context.Background(), parseParams(t,
		`{"principal": true, "annual_rate_percent": 10, "years": 5}`)); err == nil {
		t.Error("boolean principal should fail")
	}
}
