package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/internal/config"
	"github.com/katalvlaran/lvalg/internal/session"
	"github.com/katalvlaran/lvalg/scalar"
)

func newReplCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive menu over one working matrix",
		Long: `Prompts for the dimensions and entries of a matrix, then offers
S (sum), P (product), E (power), T (transpose), TR (trace),
D (determinant), I (inverse), R (row-echelon form) and Q (quit).
Entries are real unless --complex or general.scalar = "complex".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			opts := []session.Option{session.WithConfig(a.cfg)}
			if a.cfg.General.Scalar == config.ScalarComplex {
				return runSession(ctx, cmd, scalar.ParseComplex, opts)
			}
			return runSession(ctx, cmd, scalar.ParseReal, opts)
		},
	}
}

func runSession[T scalar.Scalar[T]](ctx context.Context, cmd *cobra.Command, parse func(string) (T, error), opts []session.Option) error {
	return session.New(cmd.InOrStdin(), cmd.OutOrStdout(), parse, opts...).Run(ctx)
}
