package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/cloud-ru/feasibility-go/internal/calculations"
	"github.com/cloud-ru/feasibility-go/internal/model"
	"github.com/cloud-ru/feasibility-go/internal/projection"
	"github.com/cloud-ru/feasibility-go/internal/report"
)

// output - всё, что рассчитано по сценарию
type output struct {
	Base        *model.ProjectionResult       `json:"base"`
	Simulation  *projection.Simulation        `json:"simulation,omitempty"`
	Sensitivity *projection.SensitivityResult `json:"sensitivity,omitempty"`
}

func writeOutput(w io.Writer, out output, format string) error {
	switch format {
	case "text":
		_, err := io.WriteString(w, textOutput(out))
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func textOutput(out output) string {
	var b strings.Builder
	line := strings.Repeat("─", 60) + "\n"

	b.WriteString("FEASIBILITY RESULTS\n")
	b.WriteString(line)
	writeMetrics(&b, out.Base)

	if out.Simulation != nil {
		b.WriteString("\nSCENARIO\n")
		b.WriteString(line)
		writeMetrics(&b, out.Simulation.Result)
		writeComparison(&b, out.Simulation.Project)
		writeComparison(&b, out.Simulation.Equity)
	}

	if out.Sensitivity != nil {
		b.WriteString("\nSENSITIVITY (equity IRR, %)\n")
		b.WriteString(line)
		fmt.Fprintf(&b, "  %-10s %10s %10s\n", "Variation", "Price", "CAPEX")
		for i, p := range out.Sensitivity.PriceSensitivity {
			fmt.Fprintf(&b, "  %+9.0f%% %10.2f %10.2f\n",
				p.Variation*100, p.IRR, out.Sensitivity.CapexSensitivity[i].IRR)
		}
	}
	return b.String()
}

func writeMetrics(b *strings.Builder, r *model.ProjectionResult) {
	fmt.Fprintf(b, "  Model:          %s (%d years)\n", r.Inputs.ModelType, r.Years())
	fmt.Fprintf(b, "  Total CAPEX:    %s M\n", report.FormatMillions(report.Millions(r.Inputs.TotalCapex())))
	fmt.Fprintf(b, "  Project NPV:    %s M\n", report.FormatMillions(report.Millions(r.NPV)))
	fmt.Fprintf(b, "  Project IRR:    %.2f%%\n", r.IRR)
	fmt.Fprintf(b, "  Equity NPV:     %s M\n", report.FormatMillions(report.Millions(r.NPVEquity)))
	fmt.Fprintf(b, "  Equity IRR:     %.2f%%\n", r.IRREquity)
	fmt.Fprintf(b, "  WACC:           %.2f%%\n", r.WACC)
	fmt.Fprintf(b, "  LCOE:           %.4f\n", r.LCOE)
	if r.Payback < 0 {
		b.WriteString("  Payback:        not recovered\n")
	} else {
		fmt.Fprintf(b, "  Payback:        %.2f years\n", r.Payback)
	}
	if dscr := report.MinDSCR(r); dscr > 0 {
		fmt.Fprintf(b, "  Min DSCR:       %.2f\n", dscr)
	}
}

func writeComparison(b *strings.Builder, c *calculations.ComparisonResult) {
	fmt.Fprintf(b, "  [%s] IRR %+.2f pp, NPV %s M: %s\n",
		c.View, c.IRR.Diff, report.FormatMillions(report.Millions(c.NPV.Diff)), c.Verdict)
}
