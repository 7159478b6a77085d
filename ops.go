package tc

// ============================================================
// Binary operators
// ============================================================

// Add returns a+b.
func Add(a, b Jet) Jet { return Jet{Val: a.Val + b.Val, Der: a.Der + b.Der} }

// RealAdd returns r+b.
func RealAdd(r float64, b Jet) Jet { return Jet{Val: complex(r, 0) + b.Val, Der: b.Der} }

// AddReal returns a+r.
func AddReal(a Jet, r float64) Jet { return Jet{Val: a.Val + complex(r, 0), Der: a.Der} }

// Sub returns a-b.
func Sub(a, b Jet) Jet { return Jet{Val: a.Val - b.Val, Der: a.Der - b.Der} }

// RealSub returns r-b.
func RealSub(r float64, b Jet) Jet { return Jet{Val: complex(r, 0) - b.Val, Der: -b.Der} }

// SubReal returns a-r.
func SubReal(a Jet, r float64) Jet { return Jet{Val: a.Val - complex(r, 0), Der: a.Der} }

// Mul returns a*b by the product rule.
func Mul(a, b Jet) Jet {
	return Jet{Val: a.Val * b.Val, Der: a.Val*b.Der + a.Der*b.Val}
}

// RealMul returns r*b.
func RealMul(r float64, b Jet) Jet {
	c := complex(r, 0)
	return Jet{Val: c * b.Val, Der: c * b.Der}
}

// MulReal returns a*r.
func MulReal(a Jet, r float64) Jet {
	c := complex(r, 0)
	return Jet{Val: a.Val * c, Der: a.Der * c}
}

// Div returns a/b by the quotient rule.
//
// Special cases are:
//
//	Div(a, b) = NaN or Inf components if b.Val == 0
func Div(a, b Jet) Jet {
	t := a
	t.DivAssign(b)
	return t
}

// RealDiv returns r/b.
func RealDiv(r float64, b Jet) Jet {
	u := complex(r, 0) / b.Val
	return Jet{Val: u, Der: -u * b.Der / b.Val}
}

// DivReal returns a/r.
func DivReal(a Jet, r float64) Jet {
	c := complex(r, 0)
	return Jet{Val: a.Val / c, Der: a.Der / c}
}

// Neg returns -a.
func Neg(a Jet) Jet { return Jet{Val: -a.Val, Der: -a.Der} }
