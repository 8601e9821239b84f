package projection

import "github.com/cloud-ru/feasibility-go/internal/model"

// series - годовые ряды одного расчёта, индекс 0 - год инвестиций
type series struct {
	revenue, opex, fixed, variable, finance []float64
	ebitda, depreciation, ebit              []float64
	interest, principal, tax, netIncome     []float64
	balance, dscr                           []float64
	projectCF, equityCF                     []float64
	costs, energy                           []float64
	itemized                                []map[string]float64
}

func newSeries(years int) *series {
	n := years + 1
	mk := func() []float64 { return make([]float64, n) }

	s := &series{
		revenue: mk(), opex: mk(), fixed: mk(), variable: mk(), finance: mk(),
		ebitda: mk(), depreciation: mk(), ebit: mk(),
		interest: mk(), principal: mk(), tax: mk(), netIncome: mk(),
		balance: mk(), dscr: mk(),
		projectCF: mk(), equityCF: mk(),
		costs: mk(), energy: mk(),
		itemized: make([]map[string]float64, n),
	}
	s.itemized[0] = map[string]float64{}
	return s
}

func (s *series) details() model.Details {
	return model.Details{
		AnnualRevenue:      s.revenue,
		AnnualOpex:         s.opex,
		AnnualItemizedOpex: s.itemized,
		AnnualEbitda:       s.ebitda,
		AnnualDepreciation: s.depreciation,
		AnnualEbit:         s.ebit,
		AnnualInterest:     s.interest,
		AnnualPrincipal:    s.principal,
		AnnualTax:          s.tax,
		AnnualNetIncome:    s.netIncome,
		AnnualLoanBalance:  s.balance,
		AnnualDSCR:         s.dscr,
		AnnualFixedCost:    s.fixed,
		AnnualVariableCost: s.variable,
		AnnualFinanceCost:  s.finance,
		AnnualEnergy:       s.energy,
		AnnualCosts:        s.costs,
	}
}
