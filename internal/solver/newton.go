package solver

import (
	"fmt"
	"math"

	"github.com/san-kum/mathkit/internal/numeric"
)

// DerivativeError reports a derivative magnitude below the convergence
// tolerance during iteration. The update x - f(x)/f'(x) cannot proceed
// safely near a stationary point, so the solve aborts.
type DerivativeError struct {
	Iter  int
	X     float64
	Deriv float64
	Tol   float64
}

func (e *DerivativeError) Error() string {
	return fmt.Sprintf("derivative too small at iteration %d: |f'(%g)| = %g < %g", e.Iter, e.X, math.Abs(e.Deriv), e.Tol)
}

// Step records one accepted Newton-Raphson iteration.
type Step struct {
	Iter  int
	X     float64
	Y     float64
	Deriv float64
	Delta float64
}

// Newton finds a root of f near x0 using the update x - f(x)/f'(x).
// It converges when successive iterates differ by less than tol; if
// maxIter runs out first, the last iterate is returned without error.
// The derivative magnitude is checked against tol on every iteration
// and a near-zero value aborts with a [DerivativeError]. f and df are
// each invoked exactly once per iteration performed.
func Newton(x0 float64, f, df numeric.RealFn, tol float64, maxIter int) (float64, error) {
	root, _, err := NewtonTrace(x0, f, df, tol, maxIter)
	return root, err
}

// NewtonTrace runs the same iteration as [Newton] while recording every
// step taken, including the converging one. The trace lets callers
// inspect convergence behavior that Newton's best-effort contract does
// not signal.
func NewtonTrace(x0 float64, f, df numeric.RealFn, tol float64, maxIter int) (float64, []Step, error) {
	x := x0
	trace := make([]Step, 0, 16)

	for i := 0; i < maxIter; i++ {
		y := f(x)
		deriv := df(x)

		if math.Abs(deriv) < tol {
			return 0, trace, &DerivativeError{Iter: i, X: x, Deriv: deriv, Tol: tol}
		}

		xNew := x - y/deriv
		delta := math.Abs(xNew - x)
		trace = append(trace, Step{Iter: i, X: x, Y: y, Deriv: deriv, Delta: delta})

		if delta < tol {
			return xNew, trace, nil
		}

		x = xNew
	}

	return x, trace, nil
}
