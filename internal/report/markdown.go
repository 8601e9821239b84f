package report

import (
	"fmt"
	"strings"

	"github.com/cloud-ru/feasibility-go/internal/model"
	"github.com/cloud-ru/feasibility-go/internal/projection"
	"github.com/cloud-ru/feasibility-go/pkg/utils"
)

// Markdown формирует печатный отчёт. sens может быть nil - тогда раздел
// чувствительности пропускается.
func Markdown(r *model.ProjectionResult, sens *projection.SensitivityResult) string {
	var b strings.Builder
	in := r.Inputs
	if in == nil {
		in = &model.ProjectInputs{}
	}

	b.WriteString("# Feasibility Study Report\n\n")

	section := 1
	heading := func(title string) {
		fmt.Fprintf(&b, "## %d. %s\n\n", section, title)
		section++
	}

	heading("Project Parameters")
	modelType := in.ModelType
	if modelType == "" {
		modelType = model.ModelPower
	}
	fmt.Fprintf(&b, "| Parameter | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Model | %s |\n", modelType)
	fmt.Fprintf(&b, "| Capacity | %s |\n", num(in.Capacity.Float()))
	fmt.Fprintf(&b, "| Project Duration | %d Years |\n", r.Years())
	fmt.Fprintf(&b, "| Operating Hours | %s hrs/day |\n", num(in.HoursPerDay.Float()))
	fmt.Fprintf(&b, "| Total CAPEX | %s M |\n", FormatMillions(Millions(in.TotalCapex())))
	capex := in.Capex.ToMillions()
	fmt.Fprintf(&b, "| CAPEX Breakdown | construction %s, machinery %s, land %s, other %s M |\n",
		num(capex.Construction.Float()), num(capex.Machinery.Float()), num(capex.Land.Float()),
		num(capex.SharePremium.Float()+capex.Others.Float()))
	fmt.Fprintf(&b, "| Debt Ratio | %s%% |\n", num(in.Finance.DebtRatio.Float()))
	fmt.Fprintf(&b, "| Interest Rate | %s%% |\n", num(in.Finance.InterestRate.Float()))
	fmt.Fprintf(&b, "| Loan Term | %d Years |\n", in.Finance.LoanTerm.Int())
	fmt.Fprintf(&b, "| Revenue Escalation | %s%% / year |\n", num(in.Revenue.Escalation.Float()))
	fmt.Fprintf(&b, "| Cost Inflation | %s%% / year |\n", num(in.Finance.OpexInflation.Float()))
	fmt.Fprintf(&b, "| Corporate Tax | %s%% |\n", num(in.Finance.TaxRate.Float()))
	fmt.Fprintf(&b, "| Tax Holiday | %d Years |\n\n", in.Finance.TaxHoliday.Int())

	heading("Financial Summary")
	fmt.Fprintf(&b, "| Metric | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Project NPV | %s M |\n", FormatMillions(Millions(r.NPV)))
	fmt.Fprintf(&b, "| Equity NPV | %s M |\n", FormatMillions(Millions(r.NPVEquity)))
	fmt.Fprintf(&b, "| Project IRR | %.2f%% |\n", r.IRR)
	fmt.Fprintf(&b, "| Equity IRR | %.2f%% |\n", r.IRREquity)
	fmt.Fprintf(&b, "| WACC | %.2f%% |\n", r.WACC)
	fmt.Fprintf(&b, "| LCOE | %.2f per unit |\n", r.LCOE)
	if r.Payback < 0 {
		b.WriteString("| Payback | not recovered |\n")
	} else {
		fmt.Fprintf(&b, "| Payback | %.2f Years |\n", r.Payback)
	}
	fmt.Fprintf(&b, "| Minimum DSCR | %.2f |\n\n", MinDSCR(r))

	if sens != nil {
		heading("Sensitivity Analysis (Equity IRR)")
		b.WriteString("| Variation | Price | CAPEX |\n|---|---|---|\n")
		for i, p := range sens.PriceSensitivity {
			capex := ""
			if i < len(sens.CapexSensitivity) {
				capex = fmt.Sprintf("%.2f%%", sens.CapexSensitivity[i].IRR)
			}
			fmt.Fprintf(&b, "| %+.0f%% | %.2f%% | %s |\n", p.Variation*100, p.IRR, capex)
		}
		b.WriteString("\n")
	}

	heading("Statement of Comprehensive Income (Million)")
	writeStatement(&b, NewStatement(r))

	if schedule := DebtSchedule(r); len(schedule) > 0 {
		heading("Debt Repayment")
		b.WriteString("| Year | Beg. Balance | Principal | Interest | Total Service | Ending Balance | DSCR |\n")
		b.WriteString("|---|---|---|---|---|---|---|\n")
		for _, row := range schedule {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %.2f |\n",
				row.Year,
				FormatMillions(Millions(row.BeginningBalance)),
				FormatMillions(Millions(row.Principal)),
				FormatMillions(Millions(row.Interest)),
				FormatMillions(Millions(row.Service)),
				FormatMillions(Millions(row.EndingBalance)),
				row.DSCR,
			)
		}
		b.WriteString("\n")
	}

	heading("Cash Flow Projection (Million)")
	b.WriteString("| Year | Project Cash Flow | Cumulative | Equity Cash Flow | Cumulative Equity |\n")
	b.WriteString("|---|---|---|---|---|\n")
	for y := range r.CashFlows {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n", y,
			FormatMillions(Millions(r.CashFlows[y])),
			FormatMillions(Millions(at(r.CumulativeCashFlows, y))),
			FormatMillions(Millions(at(r.EquityCashFlows, y))),
			FormatMillions(Millions(at(r.CumulativeEquityCashFlows, y))),
		)
	}

	return b.String()
}

func writeStatement(b *strings.Builder, st *Statement) {
	b.WriteString("| Item |")
	for y := 1; y <= st.Years; y++ {
		fmt.Fprintf(b, " Year %d |", y)
	}
	b.WriteString("\n|---|")
	for y := 1; y <= st.Years; y++ {
		b.WriteString("---|")
	}
	b.WriteString("\n")

	for _, row := range st.Rows {
		label := row.Label
		if row.Bold {
			label = "**" + strings.TrimSpace(label) + "**"
		}
		fmt.Fprintf(b, "| %s |", label)
		for _, v := range row.Values {
			fmt.Fprintf(b, " %s |", formatCell(v, row.Expense))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func num(v float64) string {
	return strings.TrimSuffix(strings.TrimRight(fmt.Sprintf("%.2f", utils.Round2(v)), "0"), ".")
}
