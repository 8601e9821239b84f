package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/cloud-ru/feasibility-go/internal/config"
	"github.com/cloud-ru/feasibility-go/internal/logging"
	"github.com/cloud-ru/feasibility-go/internal/projection"
	"github.com/cloud-ru/feasibility-go/internal/report"
	"github.com/cloud-ru/feasibility-go/internal/scenario"
	"github.com/cloud-ru/feasibility-go/internal/validators"
)

func main() {
	var (
		scenarioFile = flag.String("scenario", "", "Path to scenario file (YAML or JSON) with inputs and events")
		format       = flag.String("format", "text", "Output format: text, json")
		sensitivity  = flag.Bool("sensitivity", false, "Run price and CAPEX sensitivity analysis")
		reportFile   = flag.String("report", "", "Write report to file (.html or .md)")
		verbose      = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Parse()

	if err := run(options{
		ScenarioFile: *scenarioFile,
		Format:       *format,
		Sensitivity:  *sensitivity,
		ReportFile:   *reportFile,
		Verbose:      *verbose,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type options struct {
	ScenarioFile string
	Format       string
	Sensitivity  bool
	ReportFile   string
	Verbose      bool
}

func run(opts options) error {
	if opts.ScenarioFile == "" {
		flag.Usage()
		return fmt.Errorf("-scenario is required")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	level := cfg.LogLevel
	if opts.Verbose {
		level = "debug"
	}
	if _, err := logging.Setup(level, ""); err != nil {
		return err
	}

	sc, err := scenario.Load(opts.ScenarioFile)
	if err != nil {
		return err
	}
	out, err := compute(cfg, sc, opts.Sensitivity)
	if err != nil {
		return err
	}

	if err := writeOutput(os.Stdout, out, opts.Format); err != nil {
		return err
	}
	if opts.ReportFile != "" {
		return writeReport(opts.ReportFile, out)
	}
	return nil
}

// compute проверяет сценарий и выполняет базовый расчёт, сценарный при наличии
// событий и, по запросу, анализ чувствительности
func compute(cfg *config.Config, sc *scenario.Scenario, sensitivity bool) (output, error) {
	if err := validators.ValidateInputs(cfg, sc.Inputs); err != nil {
		return output{}, fmt.Errorf("invalid inputs: %w", err)
	}
	horizon := sc.Inputs.ProjectYears.Int()
	if horizon <= 0 {
		horizon = cfg.DefaultProjectYears
	}
	if err := validators.ValidateEvents(cfg, sc.Events, horizon); err != nil {
		return output{}, fmt.Errorf("invalid events: %w", err)
	}

	engine := projection.New(cfg.EngineOptions())
	out := output{Base: engine.Calculate(sc.Inputs, nil)}
	log.WithField("model", sc.Inputs.ModelType).Debug("Базовый расчёт выполнен")

	if len(sc.Events) > 0 {
		out.Simulation = engine.Simulate(out.Base, sc.Inputs, sc.Events)
	}
	if sensitivity {
		out.Sensitivity = engine.Sensitivity(sc.Inputs)
	}
	return out, nil
}

// writeReport пишет отчёт по сценарному расчёту, если он есть, иначе по базовому
func writeReport(path string, out output) error {
	res := out.Base
	if out.Simulation != nil {
		res = out.Simulation.Result
	}

	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".md") {
		data = []byte(report.Markdown(res, out.Sensitivity))
	} else {
		page, err := report.HTML(res, out.Sensitivity)
		if err != nil {
			return err
		}
		data = page
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	log.WithField("path", path).Info("Отчёт сохранён")
	return nil
}
