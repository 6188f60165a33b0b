// Package numeric provides the shared scalar vocabulary for the library:
// named mathematical constants, the [RealFn] callable type taken by
// solvers, [Series] sample buffers, and the [DomainError] returned by
// functions with restricted domains.
package numeric
