package projection

import (
	"github.com/cloud-ru/feasibility-go/internal/calculations"
	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Simulation - сценарный расчёт и его сравнение с базовым
type Simulation struct {
	Base    *model.ProjectionResult        `json:"base"`
	Result  *model.ProjectionResult        `json:"result"`
	Equity  *calculations.ComparisonResult `json:"equity"`
	Project *calculations.ComparisonResult `json:"project"`
}

// Simulate рассчитывает сценарий events. base - ранее полученный базовый расчёт;
// если он не передан, базовый расчёт выполняется по in без событий.
// Если in не задан, сценарий строится на параметрах base.
func (e *Engine) Simulate(base *model.ProjectionResult, in *model.ProjectInputs, events []model.SimulationEvent) *Simulation {
	if in == nil && base != nil {
		in = base.Inputs
	}
	if base == nil {
		base = e.Calculate(in, nil)
	}

	sim := e.Calculate(in, events)
	return &Simulation{
		Base:    base,
		Result:  sim,
		Equity:  Compare(base, sim, calculations.ViewEquity),
		Project: Compare(base, sim, calculations.ViewProject),
	}
}
