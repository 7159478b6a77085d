package tc

import (
	"errors"
	"fmt"
	"math/cmplx"
)

// ============================================================
// Newton root finding
// ============================================================

var (
	// ErrZeroDerivative is returned when f'(z) vanishes during iteration.
	ErrZeroDerivative = errors.New("tc: zero derivative")
	// ErrNonFinite is returned when f(z) or f'(z) is Inf or NaN.
	ErrNonFinite = errors.New("tc: non-finite value")
	// ErrNoConvergence is returned when MaxIter steps do not reach Tol.
	ErrNoConvergence = errors.New("tc: no convergence")
)

// NewtonOptions controls FindRoot. Zero fields take defaults.
type NewtonOptions struct {
	Tol     float64 // stop once |f(z)| < Tol; default 1e-12
	MaxIter int     // default 100
}

// NewtonResult is the outcome of FindRoot.
type NewtonResult struct {
	Root       complex128
	Residual   complex128
	Iterations int
}

func (o NewtonOptions) withDefaults() NewtonOptions {
	if o.Tol <= 0 {
		o.Tol = 1e-12
	}
	if o.MaxIter <= 0 {
		o.MaxIter = 100
	}
	return o
}

// FindRoot runs Newton's method z ← z - f(z)/f'(z) from start, taking f'
// from the Der of f(Var(z)). f must be holomorphic.
//
// On failure the returned result holds the last iterate.
func FindRoot(f func(Jet) Jet, start complex128, opts NewtonOptions) (NewtonResult, error) {
	opts = opts.withDefaults()
	z := start
	for iter := 0; ; iter++ {
		y := f(Var(z))
		res := NewtonResult{Root: z, Residual: y.Val, Iterations: iter}
		if !IsFinite(y) {
			return res, fmt.Errorf("at z=%v after %d steps: %w", z, iter, ErrNonFinite)
		}
		if cmplx.Abs(y.Val) < opts.Tol {
			return res, nil
		}
		if iter == opts.MaxIter {
			return res, fmt.Errorf("|f(z)|=%g after %d steps: %w", cmplx.Abs(y.Val), iter, ErrNoConvergence)
		}
		if y.Der == 0 {
			return res, fmt.Errorf("at z=%v: %w", z, ErrZeroDerivative)
		}
		z -= y.Val / y.Der
	}
}
