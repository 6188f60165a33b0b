package numeric

import (
	"math"
	"strings"
	"testing"
)

func TestEpsilon(t *testing.T) {
	if Epsilon <= 0 {
		t.Error("epsilon should be positive")
	}

	one := 1.0
	if one+Epsilon == one {
		t.Error("1 + epsilon should be distinguishable from 1")
	}
	if one+Epsilon/2 != one {
		t.Error("epsilon should be the smallest such value")
	}
}

func TestConstants(t *testing.T) {
	if Pi != math.Pi {
		t.Errorf("expected pi %v, got %v", math.Pi, Pi)
	}
	if Euler != math.E {
		t.Errorf("expected e %v, got %v", math.E, Euler)
	}

	// phi^2 = phi + 1
	if math.Abs(Phi*Phi-(Phi+1)) > 1e-15 {
		t.Errorf("golden ratio identity violated: phi^2 = %v, phi+1 = %v", Phi*Phi, Phi+1)
	}
}

func TestDomainError(t *testing.T) {
	err := &DomainError{Func: "gamma", Arg: -1, Msg: "undefined for non-positive values"}
	msg := err.Error()
	if !strings.Contains(msg, "gamma") || !strings.Contains(msg, "-1") {
		t.Errorf("error message missing context: %q", msg)
	}
}

func TestSeriesSummary(t *testing.T) {
	var s Series
	for _, v := range []float64{1.0, 3.0, 2.0} {
		s.Append(v, v)
	}

	if s.Len() != 3 {
		t.Errorf("expected 3 samples, got %d", s.Len())
	}
	if s.Min() != 1.0 {
		t.Errorf("expected min 1, got %f", s.Min())
	}
	if s.Max() != 3.0 {
		t.Errorf("expected max 3, got %f", s.Max())
	}
	if s.Mean() != 2.0 {
		t.Errorf("expected mean 2, got %f", s.Mean())
	}

	summary := s.Summary()
	if summary["min"] != 1.0 || summary["max"] != 3.0 || summary["mean"] != 2.0 {
		t.Errorf("unexpected summary: %v", summary)
	}
}

func TestSeriesEmpty(t *testing.T) {
	var s Series
	if s.Min() != 0 || s.Max() != 0 || s.Mean() != 0 {
		t.Error("empty series should summarize to zeros")
	}
	if !s.IsValid() {
		t.Error("empty series should be valid")
	}
}

func TestSeriesValidity(t *testing.T) {
	var s Series
	s.Append(0, 1.0)
	if !s.IsValid() {
		t.Error("finite series should be valid")
	}
	s.Append(1, math.NaN())
	if s.IsValid() {
		t.Error("series containing NaN should be invalid")
	}
}

func TestSeriesMonotonicity(t *testing.T) {
	tests := []struct {
		name       string
		ys         []float64
		increasing bool
		decreasing bool
	}{
		{"rising", []float64{1, 2, 3}, true, false},
		{"falling", []float64{3, 2, 1}, false, true},
		{"flat", []float64{2, 2, 2}, true, true},
		{"mixed", []float64{1, 3, 2}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s Series
			for i, y := range tt.ys {
				s.Append(float64(i), y)
			}
			if s.Increasing() != tt.increasing {
				t.Errorf("Increasing() = %v, want %v", s.Increasing(), tt.increasing)
			}
			if s.Decreasing() != tt.decreasing {
				t.Errorf("Decreasing() = %v, want %v", s.Decreasing(), tt.decreasing)
			}
		})
	}
}
