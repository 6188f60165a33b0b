// Package solver implements scalar root finding by the Newton-Raphson
// method. [Newton] returns just the root; [NewtonTrace] additionally
// records every iteration for convergence inspection.
package solver
