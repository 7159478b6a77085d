package tc

import (
	"fmt"
	"strings"
)

// ============================================================
// Expression trees
// ============================================================

// Expr is a single-variable expression that can be evaluated over jets.
type Expr interface {
	// Eval evaluates the expression with the variable bound to x.
	Eval(x Jet) Jet
	// Holomorphic is false if the expression applies Conj anywhere, in which
	// case the Der of Eval is not a derivative.
	Holomorphic() bool
	String() string
}

type numExpr struct{ c complex128 }
type varExpr struct{}
type addExpr struct{ terms []Expr }
type mulExpr struct{ factors []Expr }
type subExpr struct{ left, right Expr }
type divExpr struct{ num, denom Expr }
type negExpr struct{ arg Expr }
type powExpr struct{ base, exp Expr }
type funcExpr struct {
	name string
	fn   func(Jet) Jet
	arg  Expr
}

// funcs lists the functions a "func" node may name.
var funcs = map[string]func(Jet) Jet{
	"exp":  Exp,
	"sin":  Sin,
	"cos":  Cos,
	"tan":  Tan,
	"log":  Log,
	"sqrt": Sqrt,
	"conj": Conj,
	"sinh": Sinh,
	"cosh": Cosh,
	"tanh": Tanh,
	"inv":  Inv,
}

func (e numExpr) Eval(Jet) Jet      { return Const(e.c) }
func (e numExpr) Holomorphic() bool { return true }
func (e numExpr) String() string {
	if imag(e.c) == 0 {
		return fmt.Sprintf("%g", real(e.c))
	}
	return fmt.Sprintf("%g", e.c)
}

func (varExpr) Eval(x Jet) Jet    { return x }
func (varExpr) Holomorphic() bool { return true }
func (varExpr) String() string    { return "z" }

func (e addExpr) Eval(x Jet) Jet {
	var sum Jet
	for _, t := range e.terms {
		sum.AddAssign(t.Eval(x))
	}
	return sum
}
func (e addExpr) Holomorphic() bool { return allHolomorphic(e.terms) }
func (e addExpr) String() string    { return joinExprs(e.terms, " + ") }

func (e mulExpr) Eval(x Jet) Jet {
	prod := Real(1)
	for _, f := range e.factors {
		prod.MulAssign(f.Eval(x))
	}
	return prod
}
func (e mulExpr) Holomorphic() bool { return allHolomorphic(e.factors) }
func (e mulExpr) String() string    { return joinExprs(e.factors, "*") }

func (e subExpr) Eval(x Jet) Jet { return Sub(e.left.Eval(x), e.right.Eval(x)) }
func (e subExpr) Holomorphic() bool {
	return e.left.Holomorphic() && e.right.Holomorphic()
}
func (e subExpr) String() string { return "(" + e.left.String() + " - " + e.right.String() + ")" }

func (e divExpr) Eval(x Jet) Jet { return Div(e.num.Eval(x), e.denom.Eval(x)) }
func (e divExpr) Holomorphic() bool {
	return e.num.Holomorphic() && e.denom.Holomorphic()
}
func (e divExpr) String() string { return "(" + e.num.String() + ")/(" + e.denom.String() + ")" }

func (e negExpr) Eval(x Jet) Jet    { return Neg(e.arg.Eval(x)) }
func (e negExpr) Holomorphic() bool { return e.arg.Holomorphic() }
func (e negExpr) String() string    { return "-(" + e.arg.String() + ")" }

func (e powExpr) Eval(x Jet) Jet { return Pow(e.base.Eval(x), e.exp.Eval(x)) }
func (e powExpr) Holomorphic() bool {
	return e.base.Holomorphic() && e.exp.Holomorphic()
}
func (e powExpr) String() string { return "(" + e.base.String() + ")^(" + e.exp.String() + ")" }

func (e funcExpr) Eval(x Jet) Jet { return e.fn(e.arg.Eval(x)) }
func (e funcExpr) Holomorphic() bool {
	return e.name != "conj" && e.arg.Holomorphic()
}
func (e funcExpr) String() string { return e.name + "(" + e.arg.String() + ")" }

func allHolomorphic(es []Expr) bool {
	for _, e := range es {
		if !e.Holomorphic() {
			return false
		}
	}
	return true
}

func joinExprs(es []Expr, sep string) string {
	parts := make([]string, len(es))
	for i, e := range es {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, sep) + ")"
}

// ============================================================
// JSON decoding
// ============================================================

// ParseExpr decodes an expression tree from its JSON object form, as
// produced by encoding/json into a map[string]interface{}.
func ParseExpr(data map[string]interface{}) (Expr, error) {
	if data == nil {
		return nil, fmt.Errorf("expression must be an object")
	}
	typAny, ok := data["type"]
	if !ok {
		return nil, fmt.Errorf("missing 'type' field")
	}
	typ, ok := typAny.(string)
	if !ok || typ == "" {
		return nil, fmt.Errorf("field 'type' must be a non-empty string")
	}

	sub := func(field string) (Expr, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		m, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an object", typ, field)
		}
		e, err := ParseExpr(m)
		if err != nil {
			return nil, fmt.Errorf("%s: %s: %w", typ, field, err)
		}
		return e, nil
	}

	subArray := func(field string) ([]Expr, error) {
		v, ok := data[field]
		if !ok {
			return nil, fmt.Errorf("%s: missing %q", typ, field)
		}
		raw, ok := v.([]interface{})
		if !ok {
			return nil, fmt.Errorf("%s: %q must be an array", typ, field)
		}
		if len(raw) == 0 {
			return nil, fmt.Errorf("%s: %q must not be empty", typ, field)
		}
		out := make([]Expr, len(raw))
		for i, it := range raw {
			m, ok := it.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("%s: %q[%d] must be an object", typ, field, i)
			}
			e, err := ParseExpr(m)
			if err != nil {
				return nil, fmt.Errorf("%s: %s[%d]: %w", typ, field, i, err)
			}
			out[i] = e
		}
		return out, nil
	}

	switch typ {
	case "num":
		c, err := ParseComplex(data)
		if err != nil {
			return nil, fmt.Errorf("num: %w", err)
		}
		return numExpr{c: c}, nil

	case "var":
		return varExpr{}, nil

	case "add":
		terms, err := subArray("terms")
		if err != nil {
			return nil, err
		}
		return addExpr{terms: terms}, nil

	case "mul":
		factors, err := subArray("factors")
		if err != nil {
			return nil, err
		}
		return mulExpr{factors: factors}, nil

	case "sub":
		left, err := sub("left")
		if err != nil {
			return nil, err
		}
		right, err := sub("right")
		if err != nil {
			return nil, err
		}
		return subExpr{left: left, right: right}, nil

	case "div":
		num, err := sub("num")
		if err != nil {
			return nil, err
		}
		denom, err := sub("denom")
		if err != nil {
			return nil, err
		}
		return divExpr{num: num, denom: denom}, nil

	case "neg":
		arg, err := sub("arg")
		if err != nil {
			return nil, err
		}
		return negExpr{arg: arg}, nil

	case "pow":
		base, err := sub("base")
		if err != nil {
			return nil, err
		}
		exp, err := sub("exp")
		if err != nil {
			return nil, err
		}
		return powExpr{base: base, exp: exp}, nil

	case "func":
		nameAny, ok := data["name"]
		if !ok {
			return nil, fmt.Errorf("func: missing \"name\"")
		}
		name, ok := nameAny.(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("func: \"name\" must be a non-empty string")
		}
		fn, ok := funcs[name]
		if !ok {
			return nil, fmt.Errorf("func: unknown function %q", name)
		}
		arg, err := sub("arg")
		if err != nil {
			return nil, err
		}
		return funcExpr{name: name, fn: fn, arg: arg}, nil
	}
	return nil, fmt.Errorf("unknown expression type: %s", typ)
}

// ParseComplex reads a complex number from an object with a required "re"
// and an optional "im" field.
func ParseComplex(data map[string]interface{}) (complex128, error) {
	reAny, ok := data["re"]
	if !ok {
		return 0, fmt.Errorf("missing 're'")
	}
	re, ok := reAny.(float64)
	if !ok {
		return 0, fmt.Errorf("'re' must be a number")
	}
	var im float64
	if imAny, ok := data["im"]; ok {
		im, ok = imAny.(float64)
		if !ok {
			return 0, fmt.Errorf("'im' must be a number")
		}
	}
	return complex(re, im), nil
}
