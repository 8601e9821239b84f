package projection

import (
	"github.com/cloud-ru/feasibility-go/internal/model"
	"github.com/cloud-ru/feasibility-go/pkg/utils"
)

// Variations - относительные отклонения анализа чувствительности
var Variations = []float64{-0.2, -0.1, 0, 0.1, 0.2}

// SensitivityPoint - IRR собственного капитала при отклонении Variation
type SensitivityPoint struct {
	Variation float64 `json:"variation"`
	IRR       float64 `json:"irr"`
}

// SensitivityResult - чувствительность IRR собственного капитала к цене и CAPEX
type SensitivityResult struct {
	PriceSensitivity []SensitivityPoint `json:"priceSensitivity"`
	CapexSensitivity []SensitivityPoint `json:"capexSensitivity"`
}

// Sensitivity пересчитывает проект при отклонениях всех тарифов
// и CAPEX (строительство, оборудование, земля) на Variations
func (e *Engine) Sensitivity(in *model.ProjectInputs) *SensitivityResult {
	if in == nil {
		in = &model.ProjectInputs{}
	}
	res := &SensitivityResult{
		PriceSensitivity: make([]SensitivityPoint, 0, len(Variations)),
		CapexSensitivity: make([]SensitivityPoint, 0, len(Variations)),
	}

	for _, v := range Variations {
		sim := in.Clone()
		k := 1 + v
		r := &sim.Revenue
		r.PeakRate = scale(r.PeakRate, k)
		r.OffPeakRate = scale(r.OffPeakRate, k)
		r.UnitPrice = scale(r.UnitPrice, k)
		r.TippingFee = scale(r.TippingFee, k)

		res.PriceSensitivity = append(res.PriceSensitivity, SensitivityPoint{
			Variation: v,
			IRR:       e.Calculate(sim, nil).IRREquity,
		})
	}

	for _, v := range Variations {
		sim := in.Clone()
		k := 1 + v
		c := &sim.Capex
		c.Construction = scale(c.Construction, k)
		c.Machinery = scale(c.Machinery, k)
		c.Land = scale(c.Land, k)

		res.CapexSensitivity = append(res.CapexSensitivity, SensitivityPoint{
			Variation: v,
			IRR:       e.Calculate(sim, nil).IRREquity,
		})
	}
	return res
}

func scale(n utils.Number, k float64) utils.Number {
	return utils.Number(n.Float() * k)
}
