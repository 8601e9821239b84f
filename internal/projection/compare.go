package projection

import (
	"github.com/cloud-ru/feasibility-go/internal/calculations"
	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Compare сопоставляет базовый и сценарный расчёты с точки зрения
// собственного капитала или проекта. Срок окупаемости в обоих случаях проектный.
func Compare(base, sim *model.ProjectionResult, view calculations.ComparisonView) *calculations.ComparisonResult {
	return calculations.CompareOutcomes(view, outcome(base, view), outcome(sim, view))
}

func outcome(r *model.ProjectionResult, view calculations.ComparisonView) calculations.Outcome {
	if view == calculations.ViewProject {
		return calculations.Outcome{
			IRR:       r.IRR,
			NPV:       r.NPV,
			Payback:   r.Payback,
			CashFlows: r.CashFlows,
		}
	}
	return calculations.Outcome{
		IRR:       r.IRREquity,
		NPV:       r.NPVEquity,
		Payback:   r.Payback,
		CashFlows: r.EquityCashFlows,
	}
}
