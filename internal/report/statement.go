// Package report строит финансовую отчётность по результату расчёта:
// отчёт о прибылях, график обслуживания долга и печатный отчёт.
package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

var million = decimal.NewFromInt(model.Million)

// Row - строка отчёта, значения за годы 1..N в миллионах с 2 знаками
type Row struct {
	Label  string            `json:"label"`
	Values []decimal.Decimal `json:"values"`
	Bold   bool              `json:"bold,omitempty"`
	// Expense - строка расходов, положительные значения печатаются в скобках
	Expense bool `json:"expense,omitempty"`
}

// Statement - отчёт о прибылях и денежном потоке собственного капитала
type Statement struct {
	Years int   `json:"years"`
	Rows  []Row `json:"rows"`
}

// Millions переводит сумму в миллионы с округлением до 2 знаков
func Millions(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Div(million).Round(2)
}

// NewStatement строит отчёт по годам эксплуатации
func NewStatement(r *model.ProjectionResult) *Statement {
	d := r.Details
	years := r.Years()
	st := &Statement{Years: years}

	add := func(label string, series []float64, bold, expense bool) {
		st.Rows = append(st.Rows, Row{
			Label:   label,
			Values:  operatingYears(series, years),
			Bold:    bold,
			Expense: expense,
		})
	}

	ebt := make([]float64, years+1)
	for y := 1; y <= years; y++ {
		ebt[y] = at(d.AnnualEbit, y) - at(d.AnnualInterest, y)
	}

	add("Revenue", d.AnnualRevenue, true, false)
	add("(-) OPEX", d.AnnualOpex, false, true)
	for _, name := range ItemNames(d.AnnualItemizedOpex) {
		add("  - "+name, itemSeries(d.AnnualItemizedOpex, name, years), false, true)
	}
	add("EBITDA", d.AnnualEbitda, true, false)
	add("(-) Depreciation", d.AnnualDepreciation, false, true)
	add("EBIT", d.AnnualEbit, true, false)
	add("(-) Interest Expense", d.AnnualInterest, false, true)
	add("EBT", ebt, true, false)
	add("(-) Corporate Tax", d.AnnualTax, false, true)
	add("Net Income", d.AnnualNetIncome, true, false)
	add("(+) Depreciation", d.AnnualDepreciation, false, false)
	add("(-) Principal Repayment", d.AnnualPrincipal, false, true)
	add("Equity Cash Flow", r.EquityCashFlows, true, false)

	return st
}

// Row возвращает строку по подписи
func (s *Statement) Row(label string) (Row, bool) {
	for _, row := range s.Rows {
		if row.Label == label {
			return row, true
		}
	}
	return Row{}, false
}

// ItemNames возвращает статьи детализации OPEX в порядке первого появления;
// внутри одного года - по алфавиту
func ItemNames(itemized []map[string]float64) []string {
	seen := make(map[string]bool)
	var names []string
	for _, year := range itemized {
		keys := make([]string, 0, len(year))
		for k := range year {
			if !seen[k] {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			seen[k] = true
			names = append(names, k)
		}
	}
	return names
}

func itemSeries(itemized []map[string]float64, name string, years int) []float64 {
	out := make([]float64, years+1)
	for y := 1; y <= years && y < len(itemized); y++ {
		out[y] = itemized[y][name]
	}
	return out
}

func operatingYears(series []float64, years int) []decimal.Decimal {
	out := make([]decimal.Decimal, years)
	for y := 1; y <= years; y++ {
		out[y-1] = Millions(at(series, y))
	}
	return out
}

func at(series []float64, i int) float64 {
	if i < len(series) {
		return series[i]
	}
	return 0
}
