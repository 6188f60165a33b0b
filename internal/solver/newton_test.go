package solver

import (
	"errors"
	"math"
	"testing"
)

func TestNewtonSqrt2(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	root, err := Newton(1.0, f, df, 1e-10, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if math.Abs(root-math.Sqrt2) > 1e-10 {
		t.Errorf("root = %v, want sqrt(2) = %v", root, math.Sqrt2)
	}
}

func TestNewtonCubeRoot(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - 27 }
	df := func(x float64) float64 { return 3 * x * x }

	root, err := Newton(3.5, f, df, 1e-12, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if math.Abs(root-3.0) > 1e-12 {
		t.Errorf("root = %v, want 3", root)
	}
}

func TestNewtonDerivativeTooSmall(t *testing.T) {
	// f = x^2 with a vanishing derivative at the starting point.
	f := func(x float64) float64 { return x * x }
	df := func(x float64) float64 { return 0 }

	_, err := Newton(0.0, f, df, 1e-10, 100)
	if err == nil {
		t.Fatal("expected derivative error")
	}
	var de *DerivativeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DerivativeError, got %T", err)
	}
	if de.Iter != 0 {
		t.Errorf("guard should trip on the first iteration, got %d", de.Iter)
	}
}

func TestNewtonGuardEveryIteration(t *testing.T) {
	// The derivative flattens out after a few steps; the guard must trip
	// mid-iteration, not only at the start.
	calls := 0
	f := func(x float64) float64 { return x * x }
	df := func(x float64) float64 {
		calls++
		if calls > 3 {
			return 0
		}
		return 2 * x
	}

	_, err := Newton(8.0, f, df, 1e-10, 100)
	var de *DerivativeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DerivativeError, got %v", err)
	}
	if de.Iter == 0 {
		t.Error("guard should trip after the initial iterations")
	}
}

func TestNewtonZeroIterations(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	root, err := Newton(7.5, f, df, 1e-10, 0)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if root != 7.5 {
		t.Errorf("maxIter=0 should return the initial guess, got %v", root)
	}
}

func TestNewtonExhaustionReturnsBestEffort(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	// Two iterations cannot reach 1e-12 from this guess; the last iterate
	// comes back without an error.
	root, err := Newton(100.0, f, df, 1e-12, 2)
	if err != nil {
		t.Fatalf("exhaustion should not be an error: %v", err)
	}
	if math.Abs(root-math.Sqrt2) < 1e-12 {
		t.Error("two iterations from x=100 should not have converged")
	}
}

func TestNewtonNonPositiveTolerance(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	// tol <= 0 can never satisfy the convergence test; the iteration
	// exhausts maxIter and returns the final iterate.
	root, err := Newton(1.0, f, df, -1.0, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(root-math.Sqrt2) > 1e-9 {
		t.Errorf("iterates should still approach the root, got %v", root)
	}
}

func TestNewtonTraceRecordsSteps(t *testing.T) {
	f := func(x float64) float64 { return x*x - 2 }
	df := func(x float64) float64 { return 2 * x }

	root, trace, err := NewtonTrace(1.0, f, df, 1e-10, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if len(trace) == 0 {
		t.Fatal("expected a non-empty trace")
	}

	last := trace[len(trace)-1]
	if last.Delta >= 1e-10 {
		t.Errorf("final step should satisfy the tolerance, delta = %v", last.Delta)
	}
	for i, step := range trace {
		if step.Iter != i {
			t.Errorf("trace[%d].Iter = %d", i, step.Iter)
		}
	}

	plain, err := Newton(1.0, f, df, 1e-10, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if plain != root {
		t.Errorf("Newton and NewtonTrace disagree: %v vs %v", plain, root)
	}
}

func TestNewtonEvaluationCount(t *testing.T) {
	fCalls, dfCalls := 0, 0
	f := func(x float64) float64 { fCalls++; return x*x - 2 }
	df := func(x float64) float64 { dfCalls++; return 2 * x }

	_, trace, err := NewtonTrace(1.0, f, df, 1e-10, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if fCalls != len(trace) || dfCalls != len(trace) {
		t.Errorf("expected one f and one df call per iteration, got f=%d df=%d iters=%d", fCalls, dfCalls, len(trace))
	}
}

func TestNewtonDeterministic(t *testing.T) {
	f := func(x float64) float64 { return x*x*x - x - 1 }
	df := func(x float64) float64 { return 3*x*x - 1 }

	a, err := Newton(1.5, f, df, 1e-12, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	b, err := Newton(1.5, f, df, 1e-12, 100)
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	if a != b {
		t.Error("identical inputs should give bit-identical roots")
	}
	if math.Abs(f(a)) > 1e-12 {
		t.Errorf("f(root) = %v, want ~0", f(a))
	}
}
