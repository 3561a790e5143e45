package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/shandysiswandi/cartcheck/internal/cart"
	"github.com/shandysiswandi/cartcheck/internal/pkg/clock"
	"github.com/shandysiswandi/cartcheck/internal/pkg/config"
	"github.com/shandysiswandi/cartcheck/internal/pkg/goerror"
	"github.com/shandysiswandi/cartcheck/internal/pkg/instrument"
	"github.com/shandysiswandi/cartcheck/internal/pkg/uid"
	"github.com/shandysiswandi/cartcheck/internal/pkg/validator"
	"github.com/spf13/cobra"
)

// defaultConfig backs the CLI when no config file is present; every key can
// be overridden by a real file pointed at by CONFIG_PATH.
const defaultConfig = `
app:
  name: cartcheck
  version: 0.1.0
cart:
  max_concurrent_check: 4
instrument:
  enabled: false
  otlp_endpoint: localhost:4317
  otlp_secure: false
  trace_sample_ratio: 0
  metric_interval_seconds: 30
  log_level: info
`

// App wires dependencies and manages the CLI lifecycle.
type App struct {
	// configuration
	config config.Config
	ins    instrument.Instrumentation

	// libraries
	validator validator.Validator
	clock     clock.Clocker
	uid       uid.NumberID
	uuid      uid.StringID

	// command tree
	root *cobra.Command
}

// New initializes the application with default wiring and returns an App instance.
func New() *App {
	app := &App{}

	app.initConfig()
	app.initInstrument()
	app.initLibraries()
	app.initRoot()
	app.initModules()

	return app
}

// Run executes the CLI with the given arguments and returns the process exit
// code. Validation failures and contract violations map to distinct codes.
func (a *App) Run(ctx context.Context, args []string) int {
	ctx = instrument.WithCorrelationID(ctx, a.uuid.Generate())

	a.root.SetArgs(args)

	if err := a.root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(a.root.ErrOrStderr(), "Error:", err.Error())

		var gerr *goerror.Error
		if errors.As(err, &gerr) {
			for field, reason := range gerr.Fields() {
				fmt.Fprintf(a.root.ErrOrStderr(), "  %s: %s\n", field, reason)
			}
			return gerr.ExitCode()
		}
		return 1
	}

	return 0
}

// Stop flushes instrumentation and releases resources.
func (a *App) Stop(ctx context.Context) {
	if err := a.ins.Shutdown(ctx); err != nil {
		slog.ErrorContext(ctx, "failed to shutdown instrumentation", "error", err)
	}

	if err := a.config.Close(); err != nil {
		slog.ErrorContext(ctx, "failed to close config", "error", err)
	}
}

func (a *App) initConfig() {
	path := os.Getenv("CONFIG_PATH")

	if path != "" {
		cfg, err := config.NewViper(path)
		if err != nil {
			slog.Error("failed to init config", "path", path, "error", err)
			os.Exit(1)
		}
		a.config = cfg
		return
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte(defaultConfig))
	if err != nil {
		slog.Error("failed to init default config", "error", err)
		os.Exit(1)
	}
	a.config = cfg
}

func (a *App) initInstrument() {
	ins, err := instrument.New(context.Background(), &instrument.Config{
		Enabled:          a.config.GetBool("instrument.enabled"),
		ServiceName:      a.config.GetString("app.name"),
		ServiceVersion:   a.config.GetString("app.version"),
		OTLPEndpoint:     a.config.GetString("instrument.otlp_endpoint"),
		OTLPSecure:       a.config.GetBool("instrument.otlp_secure"),
		TraceSampleRatio: a.config.GetFloat64("instrument.trace_sample_ratio"),
		MetricsInterval:  secondsOf(a.config.GetInt64("instrument.metric_interval_seconds")),
		LogLevel:         a.config.GetString("instrument.log_level"),
	})
	if err != nil {
		slog.Error("failed to init instrumentation", "error", err)
		os.Exit(1)
	}
	a.ins = ins
}

func (a *App) initLibraries() {
	a.clock = clock.New()
	a.uuid = uid.NewUUID()

	v10, err := validator.NewV10Validator()
	if err != nil {
		slog.Error("failed to init validation v10 validator", "error", err)
		os.Exit(1)
	}
	a.validator = v10

	snow, err := uid.NewSnowflake(a.config.GetInt64("app.node_id"))
	if err != nil {
		slog.Error("failed to init uid number snowflake", "error", err)
		os.Exit(1)
	}
	a.uid = snow
}

func (a *App) initRoot() {
	a.root = &cobra.Command{
		Use:   "cartcheck",
		Short: "Validate shopping-cart quantities and prices and run calculations",
		Long: `cartcheck validates loose quantity and price input the way a checkout
form would, and applies named operations to pairs of numbers. Validation
failures are reported as messages with exit code 2; misusing a command is a
contract violation with exit code 3.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}
}

func secondsOf(n int64) time.Duration {
	return time.Duration(n) * time.Second
}

func (a *App) initModules() {
	err := cart.New(cart.Dependency{
		Root:       a.root,
		Config:     a.config,
		Instrument: a.ins,
		UID:        a.uid,
		Clock:      a.clock,
		Validator:  a.validator,
	})
	if err != nil {
		slog.Error("failed to init module cart", "error", err)
		os.Exit(1)
	}
}
