package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cloud-ru/feasibility-go/internal/model"
	"github.com/cloud-ru/feasibility-go/internal/projection"
	"github.com/cloud-ru/feasibility-go/pkg/utils"
)

func sampleResult() *model.ProjectionResult {
	in := &model.ProjectInputs{
		ModelType:    model.ModelWater,
		Capacity:     20000,
		ProjectYears: 5,
		DaysPerYear:  365,
		Revenue:      model.RevenueInputs{UnitPrice: 15, LossRate: 5},
		Capex:        model.CapexInputs{Construction: 150e6, Machinery: 50e6},
		Finance: model.FinanceInputs{
			DebtRatio:    50,
			InterestRate: 6,
			LoanTerm:     3,
			TaxRate:      20,
			DiscountRate: utils.Ptr(8),
			DiscountMode: model.DiscountManual,
		},
		Opex: []model.FixedOpexItem{
			{Name: "Chemicals", Type: model.CostFixed, Value: 5e6, FreqType: model.FreqYearly},
		},
		Personnel: []model.PersonnelItem{{Count: 5, Salary: 25000}},
	}
	return projection.New(projection.DefaultOptions()).Calculate(in, nil)
}

func TestMillions(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{in: 1234567, want: "1.23"},
		{in: 1235000, want: "1.24"},
		{in: -2500000, want: "-2.5"},
		{in: 0, want: "0"},
	}
	for _, tt := range tests {
		if got := Millions(tt.in).String(); got != tt.want {
			t.Errorf("Millions(%v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestFormatMillions(t *testing.T) {
	tests := []struct {
		in   decimal.Decimal
		want string
	}{
		{in: decimal.RequireFromString("1234567.891"), want: "1,234,567.89"},
		{in: decimal.RequireFromString("-1000"), want: "-1,000.00"},
		{in: decimal.RequireFromString("999.5"), want: "999.50"},
		{in: decimal.Zero, want: "0.00"},
	}
	for _, tt := range tests {
		if got := FormatMillions(tt.in); got != tt.want {
			t.Errorf("FormatMillions(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
	if got := formatCell(decimal.NewFromInt(5), true); got != "(5.00)" {
		t.Errorf("expense cell = %s, want (5.00)", got)
	}
}

func TestNewStatement(t *testing.T) {
	res := sampleResult()
	st := NewStatement(res)

	if st.Years != 5 {
		t.Fatalf("Years = %d, want 5", st.Years)
	}
	for _, row := range st.Rows {
		if len(row.Values) != 5 {
			t.Errorf("row %q has %d values, want 5", row.Label, len(row.Values))
		}
	}

	revenue, ok := st.Row("Revenue")
	if !ok {
		t.Fatal("Revenue row missing")
	}
	if !revenue.Values[0].Equal(Millions(res.Details.AnnualRevenue[1])) {
		t.Errorf("revenue year 1 = %s", revenue.Values[0])
	}

	if _, ok := st.Row("  - Chemicals"); !ok {
		t.Error("itemized OPEX row missing")
	}
	if _, ok := st.Row("  - " + model.ItemPersonnel); !ok {
		t.Error("personnel row missing")
	}

	ebt, _ := st.Row("EBT")
	want := Millions(res.Details.AnnualEbit[1] - res.Details.AnnualInterest[1])
	if !ebt.Values[0].Equal(want) {
		t.Errorf("EBT year 1 = %s, want %s", ebt.Values[0], want)
	}

	last := st.Rows[len(st.Rows)-1]
	if last.Label != "Equity Cash Flow" {
		t.Errorf("last row = %q, want Equity Cash Flow", last.Label)
	}
}

func TestItemNames(t *testing.T) {
	names := ItemNames([]map[string]float64{
		{},
		{"b": 1, "a": 2},
		{"a": 1, "c": 3},
	})
	want := []string{"a", "b", "c"}
	if strings.Join(names, ",") != strings.Join(want, ",") {
		t.Errorf("ItemNames() = %v, want %v", names, want)
	}
}

func TestDebtSchedule(t *testing.T) {
	res := sampleResult()
	rows := DebtSchedule(res)
	if len(rows) != 3 {
		t.Fatalf("len = %d, want 3 years of debt service", len(rows))
	}
	if diff := rows[0].BeginningBalance - 100e6; diff > 1e-3 || diff < -1e-3 {
		t.Errorf("beginning balance = %v, want 100e6", rows[0].BeginningBalance)
	}
	if rows[2].EndingBalance > 1e-3 {
		t.Errorf("ending balance = %v, want 0", rows[2].EndingBalance)
	}
	if MinDSCR(res) <= 0 {
		t.Errorf("MinDSCR() = %v, want positive", MinDSCR(res))
	}
}

func TestMarkdownAndHTML(t *testing.T) {
	res := sampleResult()
	sens := projection.New(projection.DefaultOptions()).Sensitivity(res.Inputs)

	md := Markdown(res, sens)
	for _, want := range []string{
		"# Feasibility Study Report",
		"## 1. Project Parameters",
		"| Model | WATER |",
		"## 3. Sensitivity Analysis (Equity IRR)",
		"| -20% |",
		"**EBITDA**",
		"Debt Repayment",
		"Cash Flow Projection",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown is missing %q", want)
		}
	}

	withoutSens := Markdown(res, nil)
	if strings.Contains(withoutSens, "Sensitivity") {
		t.Error("sensitivity section must be omitted without data")
	}

	html, err := HTML(res, sens)
	if err != nil {
		t.Fatalf("HTML() error = %v", err)
	}
	page := string(html)
	if !strings.Contains(page, "<table>") || !strings.Contains(page, "<h1>Feasibility Study Report</h1>") {
		t.Error("HTML report must contain rendered headings and tables")
	}
}
