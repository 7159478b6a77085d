package tc_test

import (
	"encoding/json"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Arnache/tc"
)

func parse(t *testing.T, src string) tc.Expr {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(src), &m))
	e, err := tc.ParseExpr(m)
	require.NoError(t, err)
	return e
}

func parseErr(t *testing.T, src string) error {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(src), &m))
	_, err := tc.ParseExpr(m)
	require.Error(t, err)
	return err
}

const zSquaredPlusSinZ = `{"type":"add","terms":[
	{"type":"mul","factors":[{"type":"var"},{"type":"var"}]},
	{"type":"func","name":"sin","arg":{"type":"var"}}
]}`

// ============================================================
// Evaluation
// ============================================================

func TestExpr_Eval(t *testing.T) {
	e := parse(t, zSquaredPlusSinZ)
	z := 0.7 - 0.2i
	got := e.Eval(tc.Var(z))
	near(t, z*z+cmplx.Sin(z), got.Val, "value")
	near(t, 2*z+cmplx.Cos(z), got.Der, "derivative")
	assert.True(t, e.Holomorphic())
	assert.Equal(t, "((z*z) + sin(z))", e.String())
}

func TestExpr_ConcreteScenario(t *testing.T) {
	got := parse(t, `{"type":"func","name":"exp","arg":{"type":"var"}}`).Eval(tc.Var(2))
	near(t, cmplx.Exp(2), got.Val, "value")
	near(t, cmplx.Exp(2), got.Der, "derivative")
}

func TestExpr_AllNodeTypes(t *testing.T) {
	// (z - 1)/(-(z)) + z^(2+1i)
	src := `{"type":"add","terms":[
		{"type":"div",
		 "num":{"type":"sub","left":{"type":"var"},"right":{"type":"num","re":1}},
		 "denom":{"type":"neg","arg":{"type":"var"}}},
		{"type":"pow","base":{"type":"var"},"exp":{"type":"num","re":2,"im":1}}
	]}`
	e := parse(t, src)
	z := 1.3 + 0.4i
	p := 2 + 1i
	got := e.Eval(tc.Var(z))
	near(t, (z-1)/(-z)+cmplx.Pow(z, p), got.Val, "value")
	// d/dz (z-1)/(-z) = -1/z², d/dz z^p = p z^(p-1)
	near(t, -1/(z*z)+p*cmplx.Pow(z, p-1), got.Der, "derivative")
}

func TestExpr_Functions(t *testing.T) {
	z := 0.4 + 0.3i
	cases := map[string]func(complex128) complex128{
		"exp":  cmplx.Exp,
		"sin":  cmplx.Sin,
		"cos":  cmplx.Cos,
		"tan":  cmplx.Tan,
		"log":  cmplx.Log,
		"sqrt": cmplx.Sqrt,
		"conj": cmplx.Conj,
		"sinh": cmplx.Sinh,
		"cosh": cmplx.Cosh,
		"tanh": cmplx.Tanh,
		"inv":  func(z complex128) complex128 { return 1 / z },
	}
	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			e := parse(t, `{"type":"func","name":"`+name+`","arg":{"type":"var"}}`)
			near(t, want(z), e.Eval(tc.Var(z)).Val, name)
			assert.Equal(t, name != "conj", e.Holomorphic())
		})
	}
}

func TestExpr_ConjTaintsWholeTree(t *testing.T) {
	e := parse(t, `{"type":"mul","factors":[
		{"type":"var"},
		{"type":"func","name":"exp","arg":{"type":"func","name":"conj","arg":{"type":"var"}}}
	]}`)
	assert.False(t, e.Holomorphic())
}

// ============================================================
// Decoding errors
// ============================================================

func TestParseExpr_Errors(t *testing.T) {
	cases := map[string]struct {
		src  string
		want string
	}{
		"missing type":  {`{}`, "missing 'type' field"},
		"bad type":      {`{"type":7}`, "field 'type' must be a non-empty string"},
		"unknown type":  {`{"type":"matrix"}`, "unknown expression type: matrix"},
		"num no re":     {`{"type":"num"}`, "num: missing 're'"},
		"num string re": {`{"type":"num","re":"1"}`, "num: 're' must be a number"},
		"num bad im":    {`{"type":"num","re":1,"im":true}`, "num: 'im' must be a number"},
		"empty add":     {`{"type":"add","terms":[]}`, `add: "terms" must not be empty`},
		"add not array": {`{"type":"add","terms":{}}`, `add: "terms" must be an array`},
		"nested":        {`{"type":"add","terms":[{"type":"var"},{"type":"num"}]}`, "add: terms[1]: num: missing 're'"},
		"unknown func":  {`{"type":"func","name":"gamma","arg":{"type":"var"}}`, `func: unknown function "gamma"`},
		"func no arg":   {`{"type":"func","name":"exp"}`, `func: missing "arg"`},
		"div no denom":  {`{"type":"div","num":{"type":"var"}}`, `div: missing "denom"`},
		"pow bad base":  {`{"type":"pow","base":1,"exp":{"type":"var"}}`, `pow: "base" must be an object`},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.EqualError(t, parseErr(t, c.src), c.want)
		})
	}
}

func TestParseExpr_Nil(t *testing.T) {
	_, err := tc.ParseExpr(nil)
	assert.EqualError(t, err, "expression must be an object")
}
