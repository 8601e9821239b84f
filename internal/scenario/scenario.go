// Package scenario читает файлы сценариев {inputs, events} в YAML или JSON.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

// Scenario - параметры проекта и сценарные события одного расчёта
type Scenario struct {
	Inputs *model.ProjectInputs     `json:"inputs" yaml:"inputs"`
	Events []model.SimulationEvent `json:"events,omitempty" yaml:"events,omitempty"`
	// CapexInMillions - суммы CAPEX в файле заданы в миллионах
	CapexInMillions bool `json:"capexInMillions,omitempty" yaml:"capexInMillions,omitempty"`
}

// Load читает сценарий; формат определяется расширением (.yaml, .yml, иначе JSON)
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

// ParseYAML разбирает сценарий в YAML
func ParseYAML(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario yaml: %w", err)
	}
	return s.normalize()
}

// ParseJSON разбирает сценарий в JSON
func ParseJSON(data []byte) (*Scenario, error) {
	var s Scenario
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario json: %w", err)
	}
	return s.normalize()
}

func (s *Scenario) normalize() (*Scenario, error) {
	if s.Inputs == nil {
		return nil, fmt.Errorf("scenario has no inputs")
	}
	if s.CapexInMillions {
		s.Inputs.Capex = s.Inputs.Capex.FromMillions()
		s.CapexInMillions = false
	}
	return s, nil
}
