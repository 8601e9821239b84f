package projection

import (
	"math"
	"testing"
)

func TestSensitivity(t *testing.T) {
	engine := newEngine()
	in := powerProject()
	base := engine.Calculate(in, nil)

	res := engine.Sensitivity(in)
	if len(res.PriceSensitivity) != 5 || len(res.CapexSensitivity) != 5 {
		t.Fatalf("expected 5 points per sweep, got %d and %d", len(res.PriceSensitivity), len(res.CapexSensitivity))
	}

	for i, p := range res.PriceSensitivity {
		if p.Variation != Variations[i] {
			t.Errorf("point %d: variation %v, want %v", i, p.Variation, Variations[i])
		}
		if i > 0 && p.IRR <= res.PriceSensitivity[i-1].IRR {
			t.Errorf("equity IRR must grow with price: %v", res.PriceSensitivity)
		}
	}
	for i, p := range res.CapexSensitivity {
		if i > 0 && p.IRR >= res.CapexSensitivity[i-1].IRR {
			t.Errorf("equity IRR must fall with CAPEX: %v", res.CapexSensitivity)
		}
	}

	if math.Abs(res.PriceSensitivity[2].IRR-base.IRREquity) > 1e-9 {
		t.Errorf("zero variation IRR = %v, want base %v", res.PriceSensitivity[2].IRR, base.IRREquity)
	}
	if in.Revenue.PeakRate != 4.5 {
		t.Error("Sensitivity mutated its inputs")
	}
}

func TestSession(t *testing.T) {
	s := NewSession(newEngine())
	if s.Last() != nil {
		t.Fatal("new session must be empty")
	}

	base := s.Calculate(powerProject())
	if s.Last() != base {
		t.Error("Calculate must store the base result")
	}

	sim := s.Simulate(nil, nil)
	if sim.Base != base {
		t.Error("Simulate must compare against the stored result")
	}
	if s.Last() != base {
		t.Error("Simulate must not replace the stored result")
	}
	if sim.Equity.IRR.Diff != 0 {
		t.Errorf("no events must give zero IRR diff, got %v", sim.Equity.IRR.Diff)
	}

	if got := s.Sensitivity(nil); len(got.PriceSensitivity) != 5 {
		t.Error("Sensitivity must fall back to the stored inputs")
	}
}
