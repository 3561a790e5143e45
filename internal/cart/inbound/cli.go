package inbound

import (
	"context"

	"github.com/shandysiswandi/cartcheck/internal/cart/usecase"
	"github.com/spf13/cobra"
)

type uc interface {
	CheckItem(ctx context.Context, in usecase.CheckItemInput) (*usecase.CheckItemOutput, error)
	CheckCart(ctx context.Context, in usecase.CheckCartInput) (*usecase.CheckCartOutput, error)
	Compute(ctx context.Context, in usecase.ComputeInput) (float64, error)
}

// RegisterCLICommands attaches the cart commands to the root command.
func RegisterCLICommands(root *cobra.Command, uc uc) {
	end := &CLIEndpoint{uc: uc}

	root.AddCommand(
		end.validateCommand(),
		end.itemCommand(),
		end.calcCommand(),
		end.cartCommand(),
	)
}
