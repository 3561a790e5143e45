package config

import "testing"

func TestNewViperFromBytes(t *testing.T) {

	t.Run("ReadsValues", func(t *testing.T) {

		// Arrange
		raw := []byte(`
app:
  name: cartcheck
  node_id: 3
cart:
  max_concurrent_check: 4
instrument:
  enabled: true
  trace_sample_ratio: 0.5
`)

		// Act
		cfg, err := NewViperFromBytes("yaml", raw)

		// Assert
		if err != nil {
			t.Fatalf("NewViperFromBytes() err = %v", err)
		}
		if got := cfg.GetString("app.name"); got != "cartcheck" {
			t.Fatalf("GetString = %q", got)
		}
		if got := cfg.GetInt64("app.node_id"); got != 3 {
			t.Fatalf("GetInt64 = %d", got)
		}
		if got := cfg.GetInt("cart.max_concurrent_check"); got != 4 {
			t.Fatalf("GetInt = %d", got)
		}
		if !cfg.GetBool("instrument.enabled") {
			t.Fatal("GetBool = false, want true")
		}
		if got := cfg.GetFloat64("instrument.trace_sample_ratio"); got != 0.5 {
			t.Fatalf("GetFloat64 = %v", got)
		}
		if err := cfg.Close(); err != nil {
			t.Fatalf("Close() err = %v", err)
		}
	})

	t.Run("MissingKeysReturnZeroValues", func(t *testing.T) {

		// Arrange
		cfg, err := NewViperFromBytes("yaml", []byte("a: 1"))
		if err != nil {
			t.Fatalf("NewViperFromBytes() err = %v", err)
		}

		// Assert
		if cfg.GetString("missing") != "" || cfg.GetInt("missing") != 0 || cfg.GetFloat64("missing") != 0 {
			t.Fatal("missing keys should return zero values")
		}
	})

	t.Run("EmptyConfigTypeIsRejected", func(t *testing.T) {

		// Act
		_, err := NewViperFromBytes("  ", []byte("a: 1"))

		// Assert
		if err == nil {
			t.Fatal("expected error for empty config type")
		}
	})
}
