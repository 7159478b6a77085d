// Package tc provides complex 1-jets for forward-mode differentiation.
//
// A Jet is a complex number z together with its variation dz, a point of the
// tangent bundle TC. Pushing jets through arithmetic and elementary functions
// yields the value of an expression and its exact derivative with respect to
// an implicit input in a single pass.
//
// Design goals:
//   - Plain value type, no allocation, no hidden state
//   - Every rule is the chain rule; sin, cos, tan and sqrt are built from
//     exp and log so branch choices stay consistent
//   - Singular points (division by zero, log 0, poles of tan) propagate
//     IEEE Inf/NaN instead of returning errors
//   - JSON and MCP-ready tool surface for agent backends
package tc

// ============================================================
// Jet
// ============================================================

// Jet is a complex value Val together with its derivative Der.
//
// The zero value is the constant 0.
type Jet struct {
	Val complex128
	Der complex128
}

// I is the constant imaginary unit (i, 0), for callers. Nothing in the
// package reads it.
var I = Jet{Val: 1i}

// New returns the jet (val, der).
func New(val, der complex128) Jet { return Jet{Val: val, Der: der} }

// Const returns c as a jet with zero derivative.
func Const(c complex128) Jet { return Jet{Val: c} }

// Real returns r as a jet with zero derivative.
func Real(r float64) Jet { return Jet{Val: complex(r, 0)} }

// Var returns the identity jet (z, 1), used to differentiate with respect
// to z itself.
func Var(z complex128) Jet { return Jet{Val: z, Der: 1} }

// ============================================================
// Assignment
// ============================================================

// Set copies b into a.
func (a *Jet) Set(b Jet) *Jet {
	a.Val = b.Val
	a.Der = b.Der
	return a
}

// SetReal sets a to the constant r. The derivative is reset to zero.
func (a *Jet) SetReal(r float64) *Jet {
	a.Val = complex(r, 0)
	a.Der = 0
	return a
}

// SetComplex sets a to the constant c. The derivative is reset to zero.
func (a *Jet) SetComplex(c complex128) *Jet {
	a.Val = c
	a.Der = 0
	return a
}

// ============================================================
// Compound arithmetic
// ============================================================

// AddAssign sets a to a+b and returns a.
func (a *Jet) AddAssign(b Jet) *Jet {
	a.Val += b.Val
	a.Der += b.Der
	return a
}

// SubAssign sets a to a-b and returns a.
func (a *Jet) SubAssign(b Jet) *Jet {
	a.Val -= b.Val
	a.Der -= b.Der
	return a
}

// MulAssign sets a to a*b and returns a.
func (a *Jet) MulAssign(b Jet) *Jet {
	a.Der = a.Val*b.Der + a.Der*b.Val
	a.Val *= b.Val // after Der: the product rule reads the old value
	return a
}

// DivAssign sets a to a/b and returns a.
//
// b.Val is inverted once; a zero divisor gives non-finite components.
func (a *Jet) DivAssign(b Jet) *Jet {
	nr := 1 / norm(b.Val)
	inv := complex(nr*real(b.Val), -nr*imag(b.Val))
	a.Val *= inv
	// a.Val already holds the quotient here.
	a.Der = (a.Der - b.Der*a.Val) * inv
	return a
}

// norm is the squared modulus |z|².
func norm(z complex128) float64 {
	re, im := real(z), imag(z)
	return re*re + im*im
}
