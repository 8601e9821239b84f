package revenue

import (
	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Waste - переработка отходов: мощность в т/сут, выручка от платы за приём
type Waste struct{}

// Name реализует Strategy
func (Waste) Name() string { return "Waste Disposal Model" }

// Revenue реализует Strategy. Сценарная цена price_peak заменяет плату за тонну.
func (Waste) Revenue(in *model.ProjectInputs, year int, p Params) Output {
	intake := p.capacity(in) * p.Days * p.DegradationFactor
	fee := p.pricePeak(in.Revenue.TippingFee.Float()) * p.EscalationFactor

	return Output{Revenue: intake * fee, TotalEnergy: intake}
}
