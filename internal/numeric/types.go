package numeric

import (
	"fmt"
	"math"
)

// Named constants exposed to consumers.
const (
	// Epsilon is the float64 machine epsilon, the smallest positive value
	// such that 1.0+Epsilon != 1.0.
	Epsilon = 0x1p-52

	Pi    = math.Pi
	Euler = math.E
	Phi   = 1.618033988749895
)

// RealFn is a real-valued function of one real variable. Solvers invoke
// it repeatedly; implementations must be deterministic and side-effect
// free.
type RealFn func(float64) float64

// DomainError reports an argument outside a function's domain.
type DomainError struct {
	Func string
	Arg  float64
	Msg  string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s(%g): %s", e.Func, e.Arg, e.Msg)
}

// Series holds sampled (x, y) pairs from a function evaluation sweep.
type Series struct {
	Xs []float64
	Ys []float64
}

func (s *Series) Append(x, y float64) {
	s.Xs = append(s.Xs, x)
	s.Ys = append(s.Ys, y)
}

func (s Series) Len() int {
	return len(s.Ys)
}

func (s Series) IsValid() bool {
	for _, v := range s.Ys {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (s Series) Min() float64 {
	if len(s.Ys) == 0 {
		return 0
	}
	min := s.Ys[0]
	for _, v := range s.Ys[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

func (s Series) Max() float64 {
	if len(s.Ys) == 0 {
		return 0
	}
	max := s.Ys[0]
	for _, v := range s.Ys[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

func (s Series) Mean() float64 {
	if len(s.Ys) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Ys {
		sum += v
	}
	return sum / float64(len(s.Ys))
}

// Increasing reports whether the sampled values never decrease.
func (s Series) Increasing() bool {
	for i := 1; i < len(s.Ys); i++ {
		if s.Ys[i] < s.Ys[i-1] {
			return false
		}
	}
	return true
}

// Decreasing reports whether the sampled values never increase.
func (s Series) Decreasing() bool {
	for i := 1; i < len(s.Ys); i++ {
		if s.Ys[i] > s.Ys[i-1] {
			return false
		}
	}
	return true
}

// Summary produces the aggregate values reported alongside a saved run.
func (s Series) Summary() map[string]float64 {
	return map[string]float64{
		"min":  s.Min(),
		"max":  s.Max(),
		"mean": s.Mean(),
	}
}
