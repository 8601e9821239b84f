package calculations

import (
	"github.com/cloud-ru/feasibility-go/pkg/utils"
)

// Outcome - показатели одного расчёта с выбранной точки зрения
type Outcome struct {
	IRR       float64
	NPV       float64
	Payback   float64
	CashFlows []float64
}

// CompareOutcomes сравнивает базовый и сценарный расчёты
func CompareOutcomes(view ComparisonView, base, sim Outcome) *ComparisonResult {
	n := len(base.CashFlows)
	if len(sim.CashFlows) > n {
		n = len(sim.CashFlows)
	}

	diff := make([]float64, n)
	for i := 0; i < n; i++ {
		diff[i] = at(sim.CashFlows, i) - at(base.CashFlows, i)
	}

	irrDiff := utils.Round2(sim.IRR - base.IRR)
	npvDiff := sim.NPV - base.NPV

	var verdict string
	switch {
	case npvDiff > 0 && irrDiff >= 0:
		verdict = "сценарий улучшает показатели проекта"
	case npvDiff < 0 && irrDiff <= 0:
		verdict = "сценарий ухудшает показатели проекта"
	case npvDiff == 0 && irrDiff == 0:
		verdict = "сценарий не меняет показатели проекта"
	default:
		verdict = "сценарий даёт разнонаправленное изменение NPV и IRR"
	}

	return &ComparisonResult{
		View: view,
		IRR: MetricDelta{
			Base:       base.IRR,
			Simulation: sim.IRR,
			Diff:       irrDiff,
		},
		NPV: MetricDelta{
			Base:       base.NPV,
			Simulation: sim.NPV,
			Diff:       npvDiff,
		},
		Payback: MetricDelta{
			Base:       base.Payback,
			Simulation: sim.Payback,
			Diff:       sim.Payback - base.Payback,
		},
		CashFlowDiff:  diff,
		CumulativeGap: Cumulative(diff),
		Verdict:       verdict,
	}
}

func at(values []float64, i int) float64 {
	if i < len(values) {
		return values[i]
	}
	return 0
}
