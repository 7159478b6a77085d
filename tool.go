package tc

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ============================================================
// MCP Tool Interface
// ============================================================

type ToolRequest struct {
	Tool   string                 `json:"tool"`
	Params map[string]interface{} `json:"params"`
}

type ToolResponse struct {
	Result interface{} `json:"result,omitempty"`
	String string      `json:"string,omitempty"`
	Error  string      `json:"error,omitempty"`
}

// ComplexJSON is the wire form of a complex number.
type ComplexJSON struct {
	Re float64 `json:"re"`
	Im float64 `json:"im"`
}

func toComplexJSON(c complex128) ComplexJSON { return ComplexJSON{Re: real(c), Im: imag(c)} }

// MarshalJSON writes non-finite parts as the strings "NaN", "+Inf" and
// "-Inf", which JSON numbers cannot carry.
func (c ComplexJSON) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Re interface{} `json:"re"`
		Im interface{} `json:"im"`
	}{jsonFloat(c.Re), jsonFloat(c.Im)})
}

func jsonFloat(f float64) interface{} {
	if finite(f) {
		return f
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// EvalResult is the result of the jet_eval tool.
type EvalResult struct {
	Value       ComplexJSON `json:"value"`
	Derivative  ComplexJSON `json:"derivative"`
	Finite      bool        `json:"finite"`
	Holomorphic bool        `json:"holomorphic"`
}

// RootResult is the result of the jet_newton tool.
type RootResult struct {
	Root       ComplexJSON `json:"root"`
	Residual   ComplexJSON `json:"residual"`
	Iterations int         `json:"iterations"`
	Converged  bool        `json:"converged"`
	Reason     string      `json:"reason,omitempty"`
}

// MaxNewtonIter bounds the max_iter parameter of jet_newton.
const MaxNewtonIter = 10000

// HandleToolCall dispatches req to the named tool. Failures are reported in
// ToolResponse.Error.
func HandleToolCall(req ToolRequest) ToolResponse {
	getExpr := func(key string) (Expr, error) {
		v, ok := req.Params[key]
		if !ok {
			return nil, fmt.Errorf("missing param: %s", key)
		}
		val, ok := v.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("invalid type for param %s", key)
		}
		return ParseExpr(val)
	}
	getComplex := func(key string, def complex128, required bool) (complex128, error) {
		v, ok := req.Params[key]
		if !ok {
			if required {
				return 0, fmt.Errorf("missing param: %s", key)
			}
			return def, nil
		}
		val, ok := v.(map[string]interface{})
		if !ok {
			return 0, fmt.Errorf("param %s must be {re, im}", key)
		}
		c, err := ParseComplex(val)
		if err != nil {
			return 0, fmt.Errorf("param %s: %w", key, err)
		}
		return c, nil
	}
	getNumber := func(key string, def float64) (float64, error) {
		v, ok := req.Params[key]
		if !ok {
			return def, nil
		}
		n, ok := v.(float64)
		if !ok {
			return 0, fmt.Errorf("param %s must be a number", key)
		}
		return n, nil
	}
	fail := func(err error) ToolResponse { return ToolResponse{Error: err.Error()} }

	switch req.Tool {
	case "jet_eval":
		expr, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		at, err := getComplex("at", 0, true)
		if err != nil {
			return fail(err)
		}
		der, err := getComplex("der", 1, false)
		if err != nil {
			return fail(err)
		}
		y := expr.Eval(New(at, der))
		return ToolResponse{
			Result: EvalResult{
				Value:       toComplexJSON(y.Val),
				Derivative:  toComplexJSON(y.Der),
				Finite:      IsFinite(y),
				Holomorphic: expr.Holomorphic(),
			},
			String: y.String(),
		}

	case "jet_newton":
		expr, err := getExpr("expr")
		if err != nil {
			return fail(err)
		}
		if !expr.Holomorphic() {
			return fail(fmt.Errorf("jet_newton: expression uses conj and has no complex derivative"))
		}
		start, err := getComplex("start", 0, true)
		if err != nil {
			return fail(err)
		}
		tol, err := getNumber("tol", 0)
		if err != nil {
			return fail(err)
		}
		maxIter, err := getNumber("max_iter", 100)
		if err != nil {
			return fail(err)
		}
		if maxIter != math.Trunc(maxIter) || maxIter < 1 || maxIter > MaxNewtonIter {
			return fail(fmt.Errorf("param max_iter must be an integer in [1, %d]", MaxNewtonIter))
		}
		res, err := FindRoot(expr.Eval, start, NewtonOptions{Tol: tol, MaxIter: int(maxIter)})
		out := RootResult{
			Root:       toComplexJSON(res.Root),
			Residual:   toComplexJSON(res.Residual),
			Iterations: res.Iterations,
			Converged:  err == nil,
		}
		if err != nil {
			out.Reason = err.Error()
		}
		return ToolResponse{Result: out, String: fmt.Sprintf("%g", res.Root)}

	case "jet_spec":
		return ToolResponse{Result: json.RawMessage(MCPToolSpec())}
	}
	return ToolResponse{Error: fmt.Sprintf("unknown tool: %s", req.Tool)}
}

// ============================================================
// MCP spec
// ============================================================

func MCPToolSpec() string {
	tools := []map[string]interface{}{
		ts("jet_eval", "Evaluate an expression and its derivative at a complex point. Optional der (seed, default 1)", []string{"expr", "at"}, map[string]string{"expr": "object", "at": "object", "der": "object"}),
		ts("jet_newton", "Newton root finding from start. Optional: tol, max_iter (integer in [1, 10000], default 100)", []string{"expr", "start"}, map[string]string{"expr": "object", "start": "object", "tol": "number", "max_iter": "integer"}),
		ts("jet_spec", "Return this tool schema", []string{}, map[string]string{}),
	}
	spec := map[string]interface{}{"tools": tools}
	b, _ := json.MarshalIndent(spec, "", "  ")
	return string(b)
}

func ts(name, description string, required []string, props map[string]string) map[string]interface{} {
	properties := map[string]interface{}{}
	for k, typ := range props {
		properties[k] = map[string]interface{}{"type": typ}
	}
	return map[string]interface{}{
		"name":        name,
		"description": description,
		"inputSchema": map[string]interface{}{
			"type":       "object",
			"properties": properties,
			"required":   required,
		},
	}
}
