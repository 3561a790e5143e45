package cart

import (
	"github.com/shandysiswandi/cartcheck/internal/cart/inbound"
	"github.com/shandysiswandi/cartcheck/internal/cart/usecase"
	"github.com/shandysiswandi/cartcheck/internal/pkg/clock"
	"github.com/shandysiswandi/cartcheck/internal/pkg/config"
	"github.com/shandysiswandi/cartcheck/internal/pkg/instrument"
	"github.com/shandysiswandi/cartcheck/internal/pkg/uid"
	"github.com/shandysiswandi/cartcheck/internal/pkg/validator"
	"github.com/spf13/cobra"
)

type Dependency struct {
	Root       *cobra.Command             `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	UID        uid.NumberID               `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	uc := usecase.New(usecase.Dependency{
		Validator:  dep.Validator,
		Config:     dep.Config,
		UID:        dep.UID,
		Clock:      dep.Clock,
		Instrument: dep.Instrument,
	})

	inbound.RegisterCLICommands(dep.Root, uc)

	return nil
}
