// Package cel wraps a CEL environment for queries that go beyond plain path
// lookup: filters, comparisons, and transformations over nested structures.
package cel

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	celext "github.com/google/cel-go/ext"
)

// Evaluator compiles and evaluates CEL expressions.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates a new CEL evaluator with standard library functions.
func NewEvaluator() (*Evaluator, error) {
	env, err := newStandardCELEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// GetEnvironment returns the CEL environment for introspection.
func (e *Evaluator) GetEnvironment() *cel.Env {
	return e.env
}

// newStandardCELEnv creates a CEL environment with common extensions. The
// data under query is bound to the variable "_".
func newStandardCELEnv(opts ...cel.EnvOption) (*cel.Env, error) {
	allOpts := make([]cel.EnvOption, 0, 5+len(opts))
	allOpts = append(allOpts,
		cel.Variable("_", cel.DynType),
		celext.Strings(),
		celext.Encoders(),
		celext.Lists(),
		celext.Math(),
	)
	allOpts = append(allOpts, opts...)
	return cel.NewEnv(allOpts...)
}

// Evaluate evaluates a CEL expression against data. The expression references
// the data through the variable "_".
// Example: "_.items[0]" or "_.items.filter(x, x.available == true)"
func (e *Evaluator) Evaluate(expr string, data any) (any, error) {
	ast, issues := e.env.Compile(expr)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("compilation error: %w", issues.Err())
	}

	prg, err := e.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("program error: %w", err)
	}

	result, _, err := prg.Eval(map[string]any{
		"_": data,
	})
	if err != nil {
		return nil, fmt.Errorf("eval error: %w", err)
	}

	converted := ToGo(result)
	if refVal, ok := converted.(ref.Val); ok {
		if valFunc, ok := refVal.(interface{ Value() any }); ok {
			converted = valFunc.Value()
		}
	}
	return converted, nil
}

// ToGo converts CEL types to Go native types recursively, covering both
// primitives and collection types (List, Map).
func ToGo(val ref.Val) any {
	if val == nil {
		return nil
	}

	switch v := val.(type) {
	case types.Bool:
		return bool(v)
	case types.Int:
		return int64(v)
	case types.Uint:
		return uint64(v)
	case types.Double:
		return float64(v)
	case types.String:
		return string(v)
	case types.Bytes:
		return []byte(v)
	}

	if valuer, ok := val.(interface{ Value() any }); ok {
		innerVal := valuer.Value()

		if refSlice, ok := innerVal.([]ref.Val); ok {
			result := make([]any, len(refSlice))
			for i, elem := range refSlice {
				result[i] = ToGo(elem)
			}
			return result
		}

		if slice, ok := innerVal.([]any); ok {
			result := make([]any, len(slice))
			for i, elem := range slice {
				if refVal, ok := elem.(ref.Val); ok {
					result[i] = ToGo(refVal)
				} else if elemMap, ok := elem.(map[string]any); ok {
					result[i] = convertMapValues(elemMap)
				} else {
					result[i] = elem
				}
			}
			return result
		}

		if m, ok := innerVal.(map[string]any); ok {
			return convertMapValues(m)
		}

		if m, ok := innerVal.(map[ref.Val]ref.Val); ok {
			result := make(map[string]any)
			for k, v := range m {
				keyStr := ""
				if keyVal, ok := k.(interface{ Value() any }); ok {
					keyStr = fmt.Sprintf("%v", keyVal.Value())
				} else {
					keyStr = fmt.Sprintf("%v", k)
				}
				result[keyStr] = ToGo(v)
			}
			return result
		}

		return innerVal
	}

	return val
}

// convertMapValues recursively converts map values from CEL types.
func convertMapValues(m map[string]any) map[string]any {
	result := make(map[string]any)
	for k, v := range m {
		if refVal, ok := v.(ref.Val); ok {
			result[k] = ToGo(refVal)
		} else if innerMap, ok := v.(map[string]any); ok {
			result[k] = convertMapValues(innerMap)
		} else if slice, ok := v.([]any); ok {
			converted := make([]any, len(slice))
			for i, elem := range slice {
				if refVal, ok := elem.(ref.Val); ok {
					converted[i] = ToGo(refVal)
				} else {
					converted[i] = elem
				}
			}
			result[k] = converted
		} else {
			result[k] = v
		}
	}
	return result
}
