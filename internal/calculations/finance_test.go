package calculations

import (
	"math"
	"testing"
)

func TestNPV(t *testing.T) {
	tests := []struct {
		name      string
		rate      float64
		cashFlows []float64
		want      float64
	}{
		{name: "zero rate is a plain sum", rate: 0, cashFlows: []float64{-100, 60, 60}, want: 20},
		{name: "single period", rate: 0.1, cashFlows: []float64{-100, 110}, want: 0},
		{name: "empty", rate: 0.1, cashFlows: nil, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NPV(tt.rate, tt.cashFlows)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("NPV() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNPVDecreasesWithRate(t *testing.T) {
	cashFlows := []float64{-1000, 200, 300, 400, 500, 0, 100}
	prev := NPV(0, cashFlows)
	for rate := 0.01; rate < 0.5; rate += 0.01 {
		cur := NPV(rate, cashFlows)
		if cur > prev {
			t.Fatalf("NPV increased at rate %.2f: %v > %v", rate, cur, prev)
		}
		prev = cur
	}
}

func TestIRR(t *testing.T) {
	got := DefaultIRR([]float64{-100, 110})
	if math.Abs(got-0.10) > 1e-6 {
		t.Errorf("IRR([-100, 110]) = %v, want 0.10", got)
	}

	got = DefaultIRR([]float64{-1000, 300, 300, 300, 300, 300})
	if math.Abs(NPV(got, []float64{-1000, 300, 300, 300, 300, 300})) > 1e-4 {
		t.Errorf("NPV at IRR %v is not zero", got)
	}
}

func TestIRRFlatSlope(t *testing.T) {
	// производная равна нулю: возвращается начальное приближение
	got := IRR([]float64{-100}, 0.1)
	if got != 0.1 {
		t.Errorf("IRR() = %v, want initial guess 0.1", got)
	}
}

func TestIRRAllPositiveIsNotARoot(t *testing.T) {
	flows := []float64{100, 100, 100}
	got := DefaultIRR(flows)
	if !math.IsNaN(got) && math.Abs(NPV(got, flows)) < 1e-6 {
		t.Errorf("IRR() = %v must not be a root for all-positive flows", got)
	}
}

func TestLCOE(t *testing.T) {
	got := LCOE(0, []float64{100, 50, 50}, []float64{0, 100, 100})
	if math.Abs(got-1) > 1e-9 {
		t.Errorf("LCOE() = %v, want 1", got)
	}
	if got := LCOE(0.07, []float64{100, 50}, []float64{0, 0}); got != 0 {
		t.Errorf("LCOE() with zero output = %v, want 0", got)
	}
}

func TestPaybackPeriod(t *testing.T) {
	tests := []struct {
		name      string
		cashFlows []float64
		min, max  float64
	}{
		{name: "interpolated in period 2", cashFlows: []float64{-100, 50, 60}, min: 1, max: 2},
		{name: "exact end of year", cashFlows: []float64{-100, 50, 50}, min: 2, max: 2.0000001},
		{name: "never recovers", cashFlows: []float64{-100, 10, 10}, min: -1, max: -0.9999999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PaybackPeriod(tt.cashFlows)
			if got < tt.min || got >= tt.max {
				t.Errorf("PaybackPeriod() = %v, want in [%v, %v)", got, tt.min, tt.max)
			}
		})
	}
}

func TestPMT(t *testing.T) {
	if got := PMT(0, 10, 1000); got != 100 {
		t.Errorf("PMT() at zero rate = %v, want 100", got)
	}
	got := PMT(0.05, 10, 1000000)
	if math.Abs(got-129504.5749) > 0.01 {
		t.Errorf("PMT() = %v, want 129504.57", got)
	}
}

func TestDepreciationSchedule(t *testing.T) {
	s := DepreciationSchedule(1000, 4, 200)
	if len(s) != 4 {
		t.Fatalf("len = %d, want 4", len(s))
	}
	for _, v := range s {
		if v != 200 {
			t.Errorf("entry = %v, want 200", v)
		}
	}
	if DepreciationSchedule(1000, 0, 0) != nil {
		t.Error("zero years must give an empty schedule")
	}
}
