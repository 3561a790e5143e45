package inbound

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shandysiswandi/cartcheck/internal/cart/usecase"
	"github.com/shandysiswandi/cartcheck/internal/pkg/check"
	"github.com/shandysiswandi/cartcheck/internal/pkg/dispatch"
	"github.com/shandysiswandi/cartcheck/internal/pkg/goerror"
	"github.com/shandysiswandi/cartcheck/internal/pkg/numeric"
	"github.com/spf13/cobra"
)

// CLIEndpoint adapts the cart usecase to cobra commands.
//
// Its sole responsibility is marshaling argv strings into the loose input
// types the validators accept and relaying results or errors back to the
// terminal; every decision lives in the usecase and the check/dispatch
// packages.
type CLIEndpoint struct {
	uc uc
}

func (e *CLIEndpoint) validateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <quantity|price> <value>",
		Short: "Validate a single quantity or price value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var res check.Result
			switch args[0] {
			case "quantity":
				res = check.Quantity(args[1])
			case "price":
				res = check.Price(args[1])
			default:
				return goerror.NewInvalidFormat(fmt.Sprintf("unknown field %q, want quantity or price", args[0]))
			}

			fmt.Fprintln(cmd.OutOrStdout(), res.String())

			if !res.OK() {
				return goerror.NewInvalidInput(nil, args[0], res.Reason())
			}
			return nil
		},
	}
}

func (e *CLIEndpoint) itemCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "item <name> <quantity> <price>",
		Short: "Validate a single cart line and print its line total",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := e.uc.CheckItem(cmd.Context(), usecase.CheckItemInput{
				Name:     args[0],
				Quantity: args[1],
				Price:    args[2],
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s x %s = %s\n",
				out.Item.Name,
				formatNumber(out.Item.Quantity),
				formatNumber(out.Item.Price),
				formatNumber(out.Item.LineTotal()))
			return nil
		},
	}
}

func (e *CLIEndpoint) calcCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "calc <operation> <a> <b>",
		Short: "Apply a named operation to two numbers",
		Long: "Apply a named operation to two numeric operands.\n\nKnown operations: " +
			strings.Join(dispatch.Names(), ", ") + ".",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := dispatch.Lookup(args[0])
			if err != nil {
				return err
			}

			a, ok := numeric.Coerce(args[1])
			if !ok {
				return goerror.NewInvalidFormat(fmt.Sprintf("operand %q is not a number", args[1]))
			}
			b, ok := numeric.Coerce(args[2])
			if !ok {
				return goerror.NewInvalidFormat(fmt.Sprintf("operand %q is not a number", args[2]))
			}

			result, err := e.uc.Compute(cmd.Context(), usecase.ComputeInput{Operation: op, A: a, B: b})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatNumber(result))
			return nil
		},
	}
}

func (e *CLIEndpoint) cartCommand() *cobra.Command {
	var rawItems []string

	cmd := &cobra.Command{
		Use:   "cart",
		Short: "Validate a whole cart and print its priced quote",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var in usecase.CheckCartInput
			for _, raw := range rawItems {
				parts := strings.SplitN(raw, ":", 3)
				if len(parts) != 3 {
					return goerror.NewInvalidFormat(fmt.Sprintf("item %q must be name:quantity:price", raw))
				}

				in.Items = append(in.Items, usecase.CheckItemInput{
					Name:     parts[0],
					Quantity: parts[1],
					Price:    parts[2],
				})
			}

			out, err := e.uc.CheckCart(cmd.Context(), in)
			if err != nil {
				return err
			}

			q := out.Quote
			fmt.Fprintf(cmd.OutOrStdout(), "quote %d: %d item(s), total %s, checked at %s\n",
				q.ID, len(q.Items), formatNumber(q.Total), q.CheckedAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&rawItems, "item", nil, "cart line as name:quantity:price (repeatable)")

	return cmd
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
