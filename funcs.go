package tc

import (
	"math"
	"math/cmplx"
)

// ============================================================
// Elementary functions
// ============================================================

// iunit and negIunit are ±i for the trig functions. Writes to I do not
// reach them.
var (
	iunit    = Jet{Val: 1i}
	negIunit = Jet{Val: -1i}
)

// Exp returns e**a.
func Exp(a Jet) Jet {
	e := cmplx.Exp(a.Val)
	return Jet{Val: e, Der: e * a.Der}
}

// Sin returns the sine of a, computed from exp(±ia).
func Sin(a Jet) Jet {
	u := Exp(Mul(a, iunit))
	v := Exp(Mul(a, negIunit))
	return Mul(Sub(u, v), Const(complex(0, -0.5)))
}

// Cos returns the cosine of a, computed from exp(±ia).
func Cos(a Jet) Jet {
	u := Exp(Mul(a, iunit))
	v := Exp(Mul(a, negIunit))
	return MulReal(Add(u, v), 0.5)
}

// Tan returns the tangent of a.
//
// Special cases are:
//
//	Tan(a) = non-finite components where cos(a.Val) == 0
func Tan(a Jet) Jet {
	u := Exp(Mul(a, iunit))
	v := Exp(Mul(a, negIunit))
	return Div(Sub(u, v), Mul(iunit, Add(u, v)))
}

// Log returns the principal natural logarithm of a, with the branch cut
// along the negative real axis as in cmplx.Log.
//
// Special cases are:
//
//	Log(0+dϵ) = (-Inf + non-finite ϵ)
func Log(a Jet) Jet {
	return Jet{Val: cmplx.Log(a.Val), Der: a.Der / a.Val}
}

// Sqrt returns the principal square root of a as exp(log(a)/2), so it
// shares the branch cut of Log.
func Sqrt(a Jet) Jet {
	return Exp(RealMul(0.5, Log(a)))
}

// Conj returns the complex conjugate of both parts of a.
//
// Conjugation is not holomorphic. The Der of the result is the conjugated
// variation, which is right for forming expressions such as f·conj(f), but
// it is NOT a derivative that further chain-rule operations can consume.
func Conj(a Jet) Jet {
	return Jet{Val: cmplx.Conj(a.Val), Der: cmplx.Conj(a.Der)}
}

// Inv returns 1/a.
func Inv(a Jet) Jet { return RealDiv(1, a) }

// Pow returns a**p on the principal branch of Log.
func Pow(a, p Jet) Jet { return Exp(Mul(p, Log(a))) }

// PowReal returns a**p on the principal branch of Log.
func PowReal(a Jet, p float64) Jet { return Exp(RealMul(p, Log(a))) }

// Sinh returns the hyperbolic sine of a.
func Sinh(a Jet) Jet { return MulReal(Sub(Exp(a), Exp(Neg(a))), 0.5) }

// Cosh returns the hyperbolic cosine of a.
func Cosh(a Jet) Jet { return MulReal(Add(Exp(a), Exp(Neg(a))), 0.5) }

// Tanh returns the hyperbolic tangent of a.
func Tanh(a Jet) Jet {
	u, v := Exp(a), Exp(Neg(a))
	return Div(Sub(u, v), Add(u, v))
}

// IsFinite reports whether every component of a is finite.
func IsFinite(a Jet) bool {
	return finite(real(a.Val)) && finite(imag(a.Val)) &&
		finite(real(a.Der)) && finite(imag(a.Der))
}

func finite(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
