package check

import (
	"math"
	"testing"
)

func TestQuantity(t *testing.T) {

	t.Run("NumericStringIsValid", func(t *testing.T) {

		// Act
		res := Quantity("2")

		// Assert
		if !res.OK() || res.Value() != 2 {
			t.Fatalf("Quantity(\"2\") = %v, want valid 2", res)
		}
	})

	t.Run("FractionalIsInvalid", func(t *testing.T) {

		// Act
		res := Quantity("2.5")

		// Assert
		if res.OK() || res.Reason() != "Quantity must be a non-negative integer" {
			t.Fatalf("Quantity(\"2.5\") = %v, want invalid with quantity reason", res)
		}
	})

	t.Run("NegativeIsInvalid", func(t *testing.T) {

		// Act
		res := Quantity("-1")

		// Assert
		if res.OK() || res.Reason() != "Quantity must be a non-negative integer" {
			t.Fatalf("Quantity(\"-1\") = %v, want invalid with quantity reason", res)
		}
	})

	t.Run("NonNegativeIntegersAreValid", func(t *testing.T) {

		for _, in := range []any{0, 1, 42, "0", "100", uint8(3), int64(9000)} {
			res := Quantity(in)
			if !res.OK() {
				t.Fatalf("Quantity(%v) = %v, want valid", in, res)
			}
		}
	})

	t.Run("NegativeZeroIsValid", func(t *testing.T) {

		// Arrange
		negZero := math.Copysign(0, -1)

		// Act
		res := Quantity(negZero)

		// Assert: -0 satisfies >= 0.
		if !res.OK() || res.Value() != 0 {
			t.Fatalf("Quantity(-0) = %v, want valid 0", res)
		}
	})

	t.Run("CoercionEdges", func(t *testing.T) {

		// true coerces to 1 and false to 0, so both are valid quantities;
		// nil does not coerce and is invalid.
		if res := Quantity(true); !res.OK() || res.Value() != 1 {
			t.Fatalf("Quantity(true) = %v, want valid 1", res)
		}
		if res := Quantity(false); !res.OK() || res.Value() != 0 {
			t.Fatalf("Quantity(false) = %v, want valid 0", res)
		}
		if res := Quantity(nil); res.OK() {
			t.Fatalf("Quantity(nil) = %v, want invalid", res)
		}
	})

	t.Run("EmptyAndWhitespaceAreInvalid", func(t *testing.T) {

		for _, in := range []string{"", "   "} {
			if res := Quantity(in); res.OK() {
				t.Fatalf("Quantity(%q) = %v, want invalid", in, res)
			}
		}
	})
}

func TestPrice(t *testing.T) {

	t.Run("FractionalStringIsValid", func(t *testing.T) {

		// Act
		res := Price("19.99")

		// Assert
		if !res.OK() || res.Value() != 19.99 {
			t.Fatalf("Price(\"19.99\") = %v, want valid 19.99", res)
		}
	})

	t.Run("NegativeIsInvalid", func(t *testing.T) {

		// Act
		res := Price("-5")

		// Assert
		if res.OK() || res.Reason() != "Price must be a non-negative number" {
			t.Fatalf("Price(\"-5\") = %v, want invalid with price reason", res)
		}
	})

	t.Run("NonNegativeNumbersAreValid", func(t *testing.T) {

		for _, in := range []any{0, 0.01, 19.99, "0.5", 100} {
			if res := Price(in); !res.OK() {
				t.Fatalf("Price(%v) = %v, want valid", in, res)
			}
		}
	})

	t.Run("NonFiniteIsInvalid", func(t *testing.T) {

		for _, in := range []any{math.NaN(), math.Inf(1)} {
			if res := Price(in); res.OK() {
				t.Fatalf("Price(%v) = %v, want invalid", in, res)
			}
		}
	})

	t.Run("NegativeZeroIsValid", func(t *testing.T) {

		if res := Price(math.Copysign(0, -1)); !res.OK() {
			t.Fatalf("Price(-0) = %v, want valid", res)
		}
	})
}

func TestResult(t *testing.T) {

	t.Run("ValidCarriesValueOnly", func(t *testing.T) {

		// Act
		res := Valid(7)

		// Assert
		if !res.OK() || res.Value() != 7 || res.Reason() != "" {
			t.Fatalf("Valid(7) = %v, want ok with empty reason", res)
		}
	})

	t.Run("InvalidCarriesReasonOnly", func(t *testing.T) {

		// Act
		res := Invalid("nope")

		// Assert
		if res.OK() || res.Reason() != "nope" || res.Value() != 0 {
			t.Fatalf("Invalid(\"nope\") = %v, want not ok with reason", res)
		}
	})

	t.Run("String", func(t *testing.T) {

		if got := Valid(2).String(); got != "valid: 2" {
			t.Fatalf("Valid(2).String() = %q", got)
		}
		if got := Invalid("bad").String(); got != "invalid: bad" {
			t.Fatalf("Invalid(\"bad\").String() = %q", got)
		}
	})
}
