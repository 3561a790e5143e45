package dispatch

import (
	"testing"

	"github.com/shandysiswandi/cartcheck/internal/pkg/goerror"
)

func TestCalculate(t *testing.T) {

	t.Run("InvokesOperationUnchanged", func(t *testing.T) {

		// Arrange
		add := func(x, y float64) float64 { return x + y }
		mul := func(x, y float64) float64 { return x * y }
		sub := func(x, y float64) float64 { return x - y }

		// Act / Assert
		if got, err := Calculate(add, 7, 8); err != nil || got != 15 {
			t.Fatalf("Calculate(add, 7, 8) = (%v, %v), want (15, nil)", got, err)
		}
		if got, err := Calculate(mul, 7, 8); err != nil || got != 56 {
			t.Fatalf("Calculate(mul, 7, 8) = (%v, %v), want (56, nil)", got, err)
		}
		if got, err := Calculate(sub, 10, 3); err != nil || got != 7 {
			t.Fatalf("Calculate(sub, 10, 3) = (%v, %v), want (7, nil)", got, err)
		}
	})

	t.Run("AcceptsOperationType", func(t *testing.T) {

		// Arrange
		var op Operation = func(x, y float64) float64 { return x - y }

		// Act
		got, err := Calculate(op, 10, 3)

		// Assert
		if err != nil || got != 7 {
			t.Fatalf("Calculate(Operation, 10, 3) = (%v, %v), want (7, nil)", got, err)
		}
	})

	t.Run("NonInvocableValuesAreFatal", func(t *testing.T) {

		// Arrange: strings, numbers and nil cannot be invoked.
		for _, op := range []any{"add", 42, nil, []float64{1, 2}} {

			// Act
			_, err := Calculate(op, 1, 2)

			// Assert
			if !goerror.IsInvalidArgument(err) {
				t.Fatalf("Calculate(%T, 1, 2) err = %v, want invalid argument", op, err)
			}
		}
	})

	t.Run("NilFunctionIsFatal", func(t *testing.T) {

		// Arrange
		var op Operation

		// Act
		_, err := Calculate(op, 1, 2)

		// Assert
		if !goerror.IsInvalidArgument(err) {
			t.Fatalf("Calculate(nil Operation) err = %v, want invalid argument", err)
		}
	})
}

func TestLookup(t *testing.T) {

	t.Run("ResolvesRegisteredOperations", func(t *testing.T) {

		// Arrange
		cases := map[string]struct{ a, b, want float64 }{
			"add":      {7, 8, 15},
			"subtract": {10, 3, 7},
			"multiply": {7, 8, 56},
			"divide":   {9, 3, 3},
		}

		for name, c := range cases {
			// Act
			op, err := Lookup(name)
			if err != nil {
				t.Fatalf("Lookup(%q) err = %v", name, err)
			}

			// Assert
			if got := op(c.a, c.b); got != c.want {
				t.Fatalf("%s(%v, %v) = %v, want %v", name, c.a, c.b, got, c.want)
			}
		}
	})

	t.Run("UnknownNameIsInvalidArgument", func(t *testing.T) {

		// Act
		_, err := Lookup("modulo")

		// Assert
		if !goerror.IsInvalidArgument(err) {
			t.Fatalf("Lookup(\"modulo\") err = %v, want invalid argument", err)
		}
	})
}

func TestNames(t *testing.T) {

	// Act
	names := Names()

	// Assert: sorted and complete.
	want := []string{"add", "divide", "multiply", "subtract"}
	if len(names) != len(want) {
		t.Fatalf("Names() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names() = %v, want %v", names, want)
		}
	}
}
