// Package dispatch invokes two-argument numeric operations supplied by the
// caller, either directly as function values or by registered name.
package dispatch

import (
	"fmt"
	"sort"

	"github.com/samber/lo"
	"github.com/shandysiswandi/cartcheck/internal/pkg/goerror"
)

// Operation is a two-argument numeric function dispatched by Calculate.
//
// Operations are opaque to the dispatcher: it never inspects or constrains
// what they compute beyond confirming they can be invoked.
type Operation func(a, b float64) float64

// registry holds the operations callers can dispatch by name.
var registry = map[string]Operation{
	"add":      func(a, b float64) float64 { return a + b },
	"subtract": func(a, b float64) float64 { return a - b },
	"multiply": func(a, b float64) float64 { return a * b },
	"divide":   func(a, b float64) float64 { return a / b },
}

// Names returns the registered operation names in sorted order.
func Names() []string {
	names := lo.Keys(registry)
	sort.Strings(names)
	return names
}

// Lookup resolves a registered operation by name, failing with an
// invalid-argument error naming the known operations when none matches.
func Lookup(name string) (Operation, error) {
	op, ok := registry[name]
	if !ok {
		return nil, goerror.NewInvalidArgument(
			fmt.Sprintf("unknown operation %q, want one of %v", name, Names()),
		)
	}
	return op, nil
}

// Calculate invokes op with operands a and b and returns the result
// unchanged; it applies no transformation, clamping, or operand validation.
// Callers pre-validate operands (for example via package check) when needed.
//
// op may be an Operation or a plain func(float64, float64) float64. Any
// other value (a string, a number, nil) is not invocable, violates the
// precondition, and fails with an invalid-argument error, never a silent
// no-op. Dispatching by name is a separate step; see Lookup.
func Calculate(op any, a, b float64) (float64, error) {
	fn, err := resolve(op)
	if err != nil {
		return 0, err
	}
	return fn(a, b), nil
}

func resolve(op any) (Operation, error) {
	switch v := op.(type) {
	case Operation:
		if v == nil {
			return nil, errNotInvocable(op)
		}
		return v, nil
	case func(a, b float64) float64:
		if v == nil {
			return nil, errNotInvocable(op)
		}
		return v, nil
	default:
		return nil, errNotInvocable(op)
	}
}

func errNotInvocable(op any) error {
	return goerror.NewInvalidArgument(
		fmt.Sprintf("operation must be invocable with two numeric arguments, got %T", op),
	)
}
