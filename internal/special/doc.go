// Package special provides closed and series form evaluators for a
// handful of special mathematical functions.
//
//   - [Exp]: e^x by direct Taylor summation
//   - [Gamma]: Lanczos approximation with recurrence domain reduction
//   - [Zeta]: Riemann zeta by series summation with exact checkpoints
//   - [Eta]: Dirichlet eta via the zeta identity and alternating series
//   - [Erf]: error function via the Abramowitz-Stegun approximation
//   - [Sigma], [IsPerfect]: divisor sums and perfect number checks
//
// All real-argument evaluators operate on finite float64 inputs.
// Functions with restricted domains (gamma, zeta, eta, sigma) return a
// [numeric.DomainError] for out-of-domain arguments; the rest are total.
// Every evaluator is a pure computation, safe to call concurrently.
package special
