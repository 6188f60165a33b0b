package special

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/mathkit/internal/numeric"
)

func TestZetaKnownValues(t *testing.T) {
	got, err := Zeta(2)
	if err != nil {
		t.Fatalf("zeta(2) returned error: %v", err)
	}
	if math.Abs(got-math.Pi*math.Pi/6) > 1e-10 {
		t.Errorf("zeta(2) = %v, want pi^2/6 = %v", got, math.Pi*math.Pi/6)
	}

	got, err = Zeta(4)
	if err != nil {
		t.Fatalf("zeta(4) returned error: %v", err)
	}
	if math.Abs(got-math.Pow(math.Pi, 4)/90) > 1e-8 {
		t.Errorf("zeta(4) = %v, want pi^4/90 = %v", got, math.Pow(math.Pi, 4)/90)
	}
}

func TestZetaApery(t *testing.T) {
	// zeta(3) is Apery's constant, roughly 1.2020569
	got, err := Zeta(3)
	if err != nil {
		t.Fatalf("zeta(3) returned error: %v", err)
	}
	if math.Abs(got-1.2020569) > 1e-4 {
		t.Errorf("zeta(3) = %v, want ~1.2020569", got)
	}
}

func TestZetaMonotonicDecrease(t *testing.T) {
	var series numeric.Series
	for _, s := range []float64{1.5, 2, 3, 4, 6, 10, 20} {
		v, err := Zeta(s)
		if err != nil {
			t.Fatalf("zeta(%v) returned error: %v", s, err)
		}
		series.Append(s, v)
	}

	if !series.Decreasing() {
		t.Errorf("zeta should decrease toward 1 for growing s: %v", series.Ys)
	}
	if series.Min() < 1 {
		t.Errorf("zeta(s) should stay above 1 for s > 1, got min %v", series.Min())
	}
}

func TestZetaDomain(t *testing.T) {
	for _, s := range []float64{1, 0.5, 0, -2} {
		_, err := Zeta(s)
		if err == nil {
			t.Errorf("expected domain error for zeta(%v)", s)
		}
		var de *numeric.DomainError
		if !errors.As(err, &de) {
			t.Errorf("expected DomainError for zeta(%v), got %T", s, err)
		}
	}
}
