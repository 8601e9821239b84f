package revenue

import (
	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Water - водоснабжение: мощность в м³/сут, потери LossRate в процентах
type Water struct{}

// Name реализует Strategy
func (Water) Name() string { return "Water Supply Model" }

// Revenue реализует Strategy. Сценарная цена price_peak заменяет тариф за м³.
func (Water) Revenue(in *model.ProjectInputs, year int, p Params) Output {
	annual := p.capacity(in) * p.Days
	loss := in.Revenue.LossRate.Float() / 100

	effective := annual * p.DegradationFactor * (1 - loss)
	price := p.pricePeak(in.Revenue.UnitPrice.Float()) * p.EscalationFactor

	return Output{Revenue: effective * price, TotalEnergy: effective}
}
