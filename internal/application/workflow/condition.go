package workflow

import (
	"errors"
	"strings"

	"github.com/Knetic/govaluate"
)

// compileCondition parses a guard expression. Empty and literal conditions
// compile to nil and are handled by evaluateCondition.
func compileCondition(condition string) (*govaluate.EvaluableExpression, error) {
	cond := strings.TrimSpace(condition)
	switch strings.ToLower(cond) {
	case "", "true", "false":
		return nil, nil
	}
	return govaluate.NewEvaluableExpression(cond)
}

// evaluateCondition evaluates a guard against invocation parameters.
// Empty condition returns true. Supports "true"/"false" literals.
func evaluateCondition(condition string, expr *govaluate.EvaluableExpression, params map[string]interface{}) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(condition)) {
	case "", "true":
		return true, nil
	case "false":
		return false, nil
	}
	if expr == nil {
		var err error
		if expr, err = compileCondition(condition); err != nil {
			return false, err
		}
	}
	result, err := expr.Evaluate(params)
	if err != nil {
		return false, err
	}
	switch v := result.(type) {
	case bool:
		return v, nil
	default:
		return false, errors.New("condition did not evaluate to boolean")
	}
}

func invocationParams(inv *Invocation) map[string]interface{} {
	p := inv.Presentation
	return map[string]interface{}{
		"hasNominatedBank": p.HasNominatedBank(),
		"status":           string(inv.Status),
		"role":             string(inv.Role),
	}
}
