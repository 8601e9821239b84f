package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cloud-ru/feasibility-go/internal/config"
	"github.com/cloud-ru/feasibility-go/internal/scenario"
)

const scenarioYAML = `
inputs:
  modelType: POWER
  capacity: 10
  projectYears: 20
  powerFactor: 0.9
  hoursPerDay: 24
  daysPerYear: 365
  initialEfficiency: 100
  degradation: 0.5
  revenue: {peakRate: 4.5, peakHours: 13, offPeakRate: 2.6, escalation: 1}
  capex: {construction: 600000000, machinery: 900000000, land: 100000000}
  finance: {debtRatio: 70, interestRate: 5, loanTerm: 10, taxRate: 20, ke: 12, kd: 5}
events:
  - {type: price_peak, mode: percent, startYear: 1, value: -10}
`

func writeScenario(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	if err := os.WriteFile(path, []byte(scenarioYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunWritesReport(t *testing.T) {
	path := writeScenario(t)
	reportPath := filepath.Join(t.TempDir(), "report.html")

	err := run(options{ScenarioFile: path, Format: "json", Sensitivity: true, ReportFile: reportPath})
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	data, err := os.ReadFile(reportPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<table>") {
		t.Error("HTML report should contain tables")
	}
}

func TestRunRequiresScenario(t *testing.T) {
	if err := run(options{Format: "text"}); err == nil {
		t.Error("run() without scenario should fail")
	}
}

func mustOutput(t *testing.T, path string) output {
	t.Helper()
	cfg, _ := config.LoadConfig()
	sc, err := scenario.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	out, err := compute(cfg, sc, true)
	if err != nil {
		t.Fatalf("compute() error = %v", err)
	}
	return out
}

func TestUnknownFormat(t *testing.T) {
	if err := writeOutput(&bytes.Buffer{}, output{}, "xml"); err == nil {
		t.Error("unknown format should fail")
	}
}

func TestComputeRejectsInvalidEvents(t *testing.T) {
	cfg, _ := config.LoadConfig()
	sc, err := scenario.ParseYAML([]byte(scenarioYAML))
	if err != nil {
		t.Fatal(err)
	}
	sc.Events[0].Mode = "double"
	if _, err := compute(cfg, sc, false); err == nil {
		t.Error("compute() with unknown event mode should fail")
	}
}

func TestTextOutputSections(t *testing.T) {
	path := writeScenario(t)
	var buf bytes.Buffer
	out := mustOutput(t, path)
	if err := writeOutput(&buf, out, "text"); err != nil {
		t.Fatal(err)
	}
	text := buf.String()
	for _, want := range []string{"FEASIBILITY RESULTS", "SCENARIO", "SENSITIVITY", "Equity IRR"} {
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q", want)
		}
	}

	buf.Reset()
	if err := writeOutput(&buf, out, "json"); err != nil {
		t.Fatal(err)
	}
	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("json output invalid: %v", err)
	}
	if _, ok := decoded["simulation"]; !ok {
		t.Error("json output missing simulation")
	}
}
