package numeric

import (
	"math"
	"testing"
)

func TestCoerce(t *testing.T) {

	t.Run("NumericKindsPassThrough", func(t *testing.T) {

		// Arrange
		inputs := []any{int(7), int8(7), int16(7), int32(7), int64(7), uint(7), uint8(7), uint16(7), uint32(7), uint64(7), float32(7), float64(7)}

		// Act / Assert
		for _, in := range inputs {
			got, ok := Coerce(in)
			if !ok || got != 7 {
				t.Fatalf("Coerce(%T(%v)) = (%v, %v), want (7, true)", in, in, got, ok)
			}
		}
	})

	t.Run("BooleanBecomesOneOrZero", func(t *testing.T) {

		// Act
		gotTrue, okTrue := Coerce(true)
		gotFalse, okFalse := Coerce(false)

		// Assert: true coerces to 1 and false to 0; both are numbers.
		if !okTrue || gotTrue != 1 {
			t.Fatalf("Coerce(true) = (%v, %v), want (1, true)", gotTrue, okTrue)
		}
		if !okFalse || gotFalse != 0 {
			t.Fatalf("Coerce(false) = (%v, %v), want (0, true)", gotFalse, okFalse)
		}
	})

	t.Run("NilIsNotANumber", func(t *testing.T) {

		// Act
		got, ok := Coerce(nil)

		// Assert: absence of a value never coerces.
		if ok {
			t.Fatalf("Coerce(nil) = (%v, %v), want not a number", got, ok)
		}
	})

	t.Run("StringsAreTrimmedAndParsed", func(t *testing.T) {

		// Act
		got, ok := Coerce("  19.99 ")

		// Assert
		if !ok || got != 19.99 {
			t.Fatalf("Coerce(\"  19.99 \") = (%v, %v), want (19.99, true)", got, ok)
		}
	})

	t.Run("EmptyAndWhitespaceStringsAreNotNumbers", func(t *testing.T) {

		for _, in := range []string{"", "   ", "\t\n"} {
			if _, ok := Coerce(in); ok {
				t.Fatalf("Coerce(%q) coerced, want not a number", in)
			}
		}
	})

	t.Run("MalformedStringsAreNotNumbers", func(t *testing.T) {

		for _, in := range []string{"abc", "1.2.3", "12px"} {
			if _, ok := Coerce(in); ok {
				t.Fatalf("Coerce(%q) coerced, want not a number", in)
			}
		}
	})

	t.Run("NonFiniteValuesAreNotNumbers", func(t *testing.T) {

		for _, in := range []any{math.NaN(), math.Inf(1), math.Inf(-1), "NaN", "Inf"} {
			if _, ok := Coerce(in); ok {
				t.Fatalf("Coerce(%v) coerced, want not a number", in)
			}
		}
	})

	t.Run("UnsupportedTypesAreNotNumbers", func(t *testing.T) {

		for _, in := range []any{[]int{1}, map[string]int{}, struct{}{}} {
			if _, ok := Coerce(in); ok {
				t.Fatalf("Coerce(%T) coerced, want not a number", in)
			}
		}
	})
}

func TestIsInteger(t *testing.T) {

	t.Run("Integers", func(t *testing.T) {
		for _, f := range []float64{0, 1, -3, 1e10, math.Copysign(0, -1)} {
			if !IsInteger(f) {
				t.Fatalf("IsInteger(%v) = false, want true", f)
			}
		}
	})

	t.Run("NonIntegers", func(t *testing.T) {
		for _, f := range []float64{2.5, -0.1, math.NaN(), math.Inf(1)} {
			if IsInteger(f) {
				t.Fatalf("IsInteger(%v) = true, want false", f)
			}
		}
	})
}
