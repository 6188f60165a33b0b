package catalog

import (
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/mathkit/internal/numeric"
	"github.com/san-kum/mathkit/internal/special"
)

// Function is a named scalar evaluator exposed to the CLI.
type Function struct {
	Name   string
	Domain string
	Eval   func(float64) (float64, error)
}

// Problem bundles a function, its derivative, and a default starting
// guess for the root finder. Root carries the analytically known root
// where one exists, NaN otherwise.
type Problem struct {
	Name  string
	Desc  string
	F     numeric.RealFn
	DF    numeric.RealFn
	Guess float64
	Root  float64
}

type Registry struct {
	functions map[string]Function
	problems  map[string]Problem
}

func NewRegistry() *Registry {
	r := &Registry{
		functions: make(map[string]Function),
		problems:  make(map[string]Problem),
	}

	r.functions["exp"] = Function{
		Name:   "exp",
		Domain: "all reals",
		Eval:   func(x float64) (float64, error) { return special.Exp(x), nil },
	}
	r.functions["erf"] = Function{
		Name:   "erf",
		Domain: "all reals",
		Eval:   func(x float64) (float64, error) { return special.Erf(x), nil },
	}
	r.functions["gamma"] = Function{
		Name:   "gamma",
		Domain: "x > 0",
		Eval:   special.Gamma,
	}
	r.functions["zeta"] = Function{
		Name:   "zeta",
		Domain: "s > 1",
		Eval:   special.Zeta,
	}
	r.functions["eta"] = Function{
		Name:   "eta",
		Domain: "s > 0",
		Eval:   special.Eta,
	}

	r.problems["sqrt2"] = Problem{
		Name:  "sqrt2",
		Desc:  "x^2 - 2 = 0",
		F:     func(x float64) float64 { return x*x - 2 },
		DF:    func(x float64) float64 { return 2 * x },
		Guess: 1.0,
		Root:  math.Sqrt2,
	}
	r.problems["cbrt27"] = Problem{
		Name:  "cbrt27",
		Desc:  "x^3 - 27 = 0",
		F:     func(x float64) float64 { return x*x*x - 27 },
		DF:    func(x float64) float64 { return 3 * x * x },
		Guess: 3.5,
		Root:  3.0,
	}
	r.problems["golden"] = Problem{
		Name:  "golden",
		Desc:  "x^2 - x - 1 = 0",
		F:     func(x float64) float64 { return x*x - x - 1 },
		DF:    func(x float64) float64 { return 2*x - 1 },
		Guess: 1.5,
		Root:  numeric.Phi,
	}
	r.problems["plastic"] = Problem{
		Name:  "plastic",
		Desc:  "x^3 - x - 1 = 0",
		F:     func(x float64) float64 { return x*x*x - x - 1 },
		DF:    func(x float64) float64 { return 3*x*x - 1 },
		Guess: 1.5,
		Root:  math.NaN(),
	}

	return r
}

func (r *Registry) GetFunction(name string) (Function, error) {
	fn, ok := r.functions[name]
	if !ok {
		return Function{}, fmt.Errorf("unknown function: %s", name)
	}
	return fn, nil
}

func (r *Registry) GetProblem(name string) (Problem, error) {
	p, ok := r.problems[name]
	if !ok {
		return Problem{}, fmt.Errorf("unknown problem: %s", name)
	}
	return p, nil
}

func (r *Registry) ListFunctions() []string {
	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) ListProblems() []string {
	names := make([]string, 0, len(r.problems))
	for name := range r.problems {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
