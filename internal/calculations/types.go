package calculations

// ScheduleEntry - одна строка годового графика платежей
type ScheduleEntry struct {
	Year                int     `json:"year"`
	StartingBalance     float64 `json:"starting_balance"`
	Payment             float64 `json:"payment"`
	Interest            float64 `json:"interest"`
	PrincipalComponent  float64 `json:"principal_component"`
	RemainingPrincipal  float64 `json:"remaining_principal"`
	CumulativeInterest  float64 `json:"cumulative_interest"`
	CumulativePrincipal float64 `json:"cumulative_principal"`
}

// LoanSummary - сводка по кредиту
type LoanSummary struct {
	Principal         float64 `json:"principal"`
	AnnualRatePercent float64 `json:"annual_rate_percent"`
	Years             int     `json:"years"`
	AnnualPayment     float64 `json:"annual_payment"`
	TotalPaid         float64 `json:"total_paid"`
	TotalInterest     float64 `json:"total_interest"`
}

// CalculationResult - результат расчёта графика кредита
type CalculationResult struct {
	Summary  LoanSummary     `json:"summary"`
	Schedule []ScheduleEntry `json:"schedule"`
}

// ComparisonView - точка зрения сравнения: собственный капитал или проект
type ComparisonView string

const (
	ViewEquity  ComparisonView = "equity"
	ViewProject ComparisonView = "project"
)

// MetricDelta - значение показателя в базовом и сценарном расчётах
type MetricDelta struct {
	Base       float64 `json:"base"`
	Simulation float64 `json:"simulation"`
	Diff       float64 `json:"diff"`
}

// ComparisonResult - сравнение базового и сценарного расчётов
type ComparisonResult struct {
	View          ComparisonView `json:"view"`
	IRR           MetricDelta    `json:"irr"`
	NPV           MetricDelta    `json:"npv"`
	Payback       MetricDelta    `json:"payback"`
	CashFlowDiff  []float64      `json:"cash_flow_diff"`
	CumulativeGap []float64      `json:"cumulative_gap"`
	Verdict       string         `json:"verdict"`
}
