package scenario

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cloud-ru/feasibility-go/internal/model"
)

const yamlScenario = `
capexInMillions: true
inputs:
  modelType: WASTE
  capacity: 500
  projectYears: 25
  daysPerYear: 330
  revenue:
    tippingFee: "1,200"
  capex:
    construction: 300
    machinery: 150.5
  finance:
    debtRatio: 60
    interestRate: 7
events:
  - type: price_peak
    mode: percent
    startYear: 3
    endYear: 10
    value: -15
  - type: new_loan
    startYear: 5
    amount: 20000000
    term: 5
    rate: 8
`

func TestParseYAML(t *testing.T) {
	s, err := ParseYAML([]byte(yamlScenario))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if s.Inputs.ModelType != model.ModelWaste {
		t.Errorf("ModelType = %q", s.Inputs.ModelType)
	}
	if got := s.Inputs.Revenue.TippingFee.Float(); got != 1200 {
		t.Errorf("TippingFee = %v, want 1200", got)
	}
	if got := s.Inputs.Capex.Machinery.Float(); got != 150.5e6 {
		t.Errorf("Machinery = %v, want 150.5e6", got)
	}
	if len(s.Events) != 2 || s.Events[1].Type != model.EventNewLoan || s.Events[1].Term.Int() != 5 {
		t.Errorf("Events = %+v", s.Events)
	}
}

func TestParseJSON(t *testing.T) {
	s, err := ParseJSON([]byte(`{"inputs": {"modelType": "WATER", "capacity": "10,000"}}`))
	if err != nil {
		t.Fatalf("ParseJSON() error = %v", err)
	}
	if s.Inputs.Capacity.Float() != 10000 {
		t.Errorf("Capacity = %v", s.Inputs.Capacity)
	}

	if _, err := ParseJSON([]byte(`{"events": []}`)); err == nil {
		t.Error("scenario without inputs should fail")
	}
}

func TestLoadByExtension(t *testing.T) {
	dir := t.TempDir()
	yml := filepath.Join(dir, "s.yml")
	if err := os.WriteFile(yml, []byte(yamlScenario), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(yml); err != nil {
		t.Errorf("Load(yml) error = %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load(missing) should fail")
	}
}
