package revenue

import (
	"github.com/cloud-ru/feasibility-go/internal/model"
)

const defaultPowerFactor = 0.9

// Power - электростанция с пиковым и внепиковым тарифом. Мощность задаётся в МВт.
type Power struct{}

// Name реализует Strategy
func (Power) Name() string { return "Power Plant Model" }

// Revenue реализует Strategy
func (Power) Revenue(in *model.ProjectInputs, year int, p Params) Output {
	capKW := p.capacity(in) * 1000
	peakHours := in.Revenue.PeakHours.Float()
	offPeakHours := in.HoursPerDay.Or(24) - peakHours

	powerFactor := defaultPowerFactor
	if in.PowerFactor != nil {
		powerFactor = in.PowerFactor.Float()
	}

	genPeak := capKW * peakHours * powerFactor
	genOffPeak := capKW * offPeakHours * powerFactor
	volume := p.Days * p.DegradationFactor

	energy := (genPeak + genOffPeak) * volume

	pricePeak := p.pricePeak(in.Revenue.PeakRate.Float()) * p.EscalationFactor
	priceOffPeak := p.priceOffPeak(in.Revenue.OffPeakRate.Float()) * p.EscalationFactor

	revenue := genPeak*volume*pricePeak + genOffPeak*volume*priceOffPeak
	revenue += adder(in, year, energy)

	return Output{Revenue: revenue, TotalEnergy: energy}
}
