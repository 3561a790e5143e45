package usecase

import (
	"context"

	"github.com/shandysiswandi/cartcheck/internal/pkg/clock"
	"github.com/shandysiswandi/cartcheck/internal/pkg/config"
	"github.com/shandysiswandi/cartcheck/internal/pkg/instrument"
	"github.com/shandysiswandi/cartcheck/internal/pkg/uid"
	"github.com/shandysiswandi/cartcheck/internal/pkg/validator"
	"go.opentelemetry.io/otel/trace"
)

type Usecase struct {
	validator validator.Validator
	cfg       config.Config
	uid       uid.NumberID
	clock     clock.Clocker
	ins       instrument.Instrumentation
}

type Dependency struct {
	Validator  validator.Validator
	Config     config.Config
	UID        uid.NumberID
	Clock      clock.Clocker
	Instrument instrument.Instrumentation
}

func New(dep Dependency) *Usecase {
	return &Usecase{
		validator: dep.Validator,
		cfg:       dep.Config,
		uid:       dep.UID,
		clock:     dep.Clock,
		ins:       dep.Instrument,
	}
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("cart.usecase").Start(ctx, name)
}

// maxConcurrent is the concurrency limit for whole-cart checks.
func (s *Usecase) maxConcurrent() int {
	if s.cfg == nil {
		return 0
	}
	return s.cfg.GetInt("cart.max_concurrent_check")
}
