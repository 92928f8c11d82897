package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/echelon"
	"github.com/katalvlaran/lvalg/internal/config"
	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
)

func newRrefCmd(a *app) *cobra.Command {
	var rank bool
	cmd := &cobra.Command{
		Use:     "rref <a.yaml>",
		Aliases: []string{"echelon"},
		Short:   "Reduced row-echelon form",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, rrefOp[scalar.Real](rank), rrefOp[scalar.Complex](rank))
		},
	}
	cmd.Flags().BoolVar(&rank, "rank", false, "print the rank instead of the reduced matrix")

	return cmd
}

func rrefOp[T scalar.Scalar[T]](rank bool) operation[T] {
	return func(_ *config.Config, ms []*matrix.Dense[T]) (result, error) {
		if rank {
			r, err := echelon.Rank(ms[0])
			if err != nil {
				return nil, err
			}
			return valueResult{intString(r)}, nil
		}
		m, err := echelon.Reduce(ms[0])
		if err != nil {
			return nil, err
		}

		return matrixResult[T]{m}, nil
	}
}
