package revenue

import (
	"math"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Solar - солнечная станция с единым тарифом; HoursPerDay означает часы инсоляции
type Solar struct{}

// Name реализует Strategy
func (Solar) Name() string { return "Solar Power Model" }

// Revenue реализует Strategy
func (Solar) Revenue(in *model.ProjectInputs, year int, p Params) Output {
	capKW := p.capacity(in) * 1000
	sunHours := math.Max(0, in.HoursPerDay.Float())

	powerFactor := 1.0
	if in.PowerFactor != nil && in.PowerFactor.Float() != 0 {
		powerFactor = in.PowerFactor.Float()
	}

	energy := capKW * sunHours * powerFactor * p.Days * p.DegradationFactor
	rate := p.pricePeak(in.Revenue.PeakRate.Float())

	revenue := energy * rate * p.EscalationFactor
	revenue += adder(in, year, energy)

	return Output{Revenue: revenue, TotalEnergy: energy}
}
