package model

import "time"

// Названия служебных строк детализации OPEX
const (
	ItemPersonnel     = "Personnel Expenses"
	ItemAdmin         = "Admin Expenses"
	ItemSimulation    = "Simulation Adjustment"
	ItemVariableOther = "Variable Expenses"
)

// ProjectionResult - результат одного расчёта. Индекс 0 всех рядов - год инвестиций.
// IRR, Ke, Kd и WACC выражены в процентах.
type ProjectionResult struct {
	NPV        float64 `json:"npv"`
	IRR        float64 `json:"irr"`
	NPVEquity  float64 `json:"npvEquity"`
	IRREquity  float64 `json:"irrEquity"`
	LCOE       float64 `json:"lcoe"`
	Payback    float64 `json:"payback"`
	Ke         float64 `json:"ke"`
	Kd         float64 `json:"kd"`
	KdAfterTax float64 `json:"kdAfterTax"`
	WACC       float64 `json:"wacc"`

	CashFlows                 []float64 `json:"cashFlows"`
	EquityCashFlows           []float64 `json:"equityCashFlows"`
	CumulativeCashFlows       []float64 `json:"cumulativeCashFlows"`
	CumulativeEquityCashFlows []float64 `json:"cumulativeEquityCashFlows"`

	Inputs *ProjectInputs     `json:"inputs"`
	Events []SimulationEvent `json:"events,omitempty"`

	Details Details `json:"details"`
}

// Details - годовые ряды отчёта о прибылях и денежных потоках
type Details struct {
	AnnualRevenue      []float64            `json:"annualRevenue"`
	AnnualOpex         []float64            `json:"annualOpex"`
	AnnualItemizedOpex []map[string]float64 `json:"annualItemizedOpex"`
	AnnualEbitda       []float64            `json:"annualEbitda"`
	AnnualDepreciation []float64            `json:"annualDepreciation"`
	AnnualEbit         []float64            `json:"annualEbit"`
	AnnualInterest     []float64            `json:"annualInterest"`
	AnnualPrincipal    []float64            `json:"annualPrincipal"`
	AnnualTax          []float64            `json:"annualTax"`
	AnnualNetIncome    []float64            `json:"annualNetIncome"`
	AnnualLoanBalance  []float64            `json:"annualLoanBalance"`
	AnnualDSCR         []float64            `json:"annualDSCR"`
	AnnualFixedCost    []float64            `json:"annualFixedCost"`
	AnnualVariableCost []float64            `json:"annualVariableCost"`
	AnnualFinanceCost  []float64            `json:"annualFinanceCost"`
	AnnualEnergy       []float64            `json:"annualEnergy"`
	AnnualCosts        []float64            `json:"annualCosts"`
}

// Years возвращает длину горизонта эксплуатации
func (r *ProjectionResult) Years() int {
	if len(r.CashFlows) == 0 {
		return 0
	}
	return len(r.CashFlows) - 1
}

// ProjectState - сохраняемое состояние проекта
type ProjectState struct {
	ID           string         `json:"id,omitempty"`
	View         string         `json:"view"`
	LastModified time.Time      `json:"lastModified"`
	Inputs       *ProjectInputs `json:"inputs"`
}
