package check

import (
	"fmt"

	"github.com/shandysiswandi/cartcheck/internal/pkg/numeric"
)

const (
	reasonQuantity = "Quantity must be a non-negative integer"
	reasonPrice    = "Price must be a non-negative number"
)

// Result is the outcome of validating a single loose input value.
//
// It is a value, not an error: rejection is an expected condition carrying a
// message for an end user. Fields are unexported so a result is either fully
// valid with its coerced number or invalid with its reason; no mixed state is
// representable. Construct results with Valid or Invalid only.
type Result struct {
	ok     bool
	value  float64
	reason string
}

// Valid returns a successful result carrying the coerced number.
func Valid(value float64) Result {
	return Result{ok: true, value: value}
}

// Invalid returns a failed result carrying a human-readable reason.
func Invalid(reason string) Result {
	return Result{reason: reason}
}

// OK reports whether the input passed validation.
func (r Result) OK() bool {
	return r.ok
}

// Value returns the coerced number. It is meaningful only when OK is true.
func (r Result) Value() float64 {
	return r.value
}

// Reason returns the rejection message. It is empty when OK is true.
func (r Result) Reason() string {
	return r.reason
}

// String renders the result for logs and CLI output.
func (r Result) String() string {
	if r.ok {
		return fmt.Sprintf("valid: %v", r.value)
	}
	return "invalid: " + r.reason
}

// Quantity validates input as an item quantity.
//
// The input is coerced by numeric.Coerce and accepted iff the coerced value
// is a finite, non-negative mathematical integer. Malformed input is reported
// through the invalid result, never as a panic or error.
func Quantity(input any) Result {
	return coerceAndCheck(input, func(f float64) bool {
		return numeric.IsInteger(f) && f >= 0
	}, reasonQuantity)
}

// Price validates input as an item price.
//
// The input is coerced by numeric.Coerce and accepted iff the coerced value
// is finite and non-negative; fractional values are permitted.
func Price(input any) Result {
	return coerceAndCheck(input, func(f float64) bool {
		return f >= 0
	}, reasonPrice)
}

// coerceAndCheck is the shared coerce-then-predicate-then-wrap shape behind
// both validators.
func coerceAndCheck(input any, predicate func(float64) bool, reason string) Result {
	f, ok := numeric.Coerce(input)
	if !ok || !predicate(f) {
		return Invalid(reason)
	}
	return Valid(f)
}
