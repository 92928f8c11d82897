package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/internal/config"
	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
)

func newDetCmd(a *app) *cobra.Command {
	var elimination bool
	cmd := &cobra.Command{
		Use:   "det <a.yaml>",
		Short: "Determinant (cofactor expansion, or elimination with --elimination)",
		Long: `Computes the determinant by Laplace expansion along the first row.
The expansion costs O(n!); orders above engine.max_det_order are refused.
--elimination switches to Gaussian elimination with partial pivoting,
O(n³) and not subject to the order limit. Its rounding differs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, detOp[scalar.Real](elimination), detOp[scalar.Complex](elimination))
		},
	}
	cmd.Flags().BoolVar(&elimination, "elimination", false, "use O(n³) Gaussian elimination")

	return cmd
}

func detOp[T scalar.Scalar[T]](elimination bool) operation[T] {
	return func(cfg *config.Config, ms []*matrix.Dense[T]) (result, error) {
		if elimination {
			d, err := matrix.DetElimination(ms[0])
			if err != nil {
				return nil, err
			}
			return valueResult{d}, nil
		}
		if err := guardDet(cfg, ms[0]); err != nil {
			return nil, err
		}
		d, err := matrix.Det(ms[0])
		if err != nil {
			return nil, err
		}

		return valueResult{d}, nil
	}
}

func newInverseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "inverse <a.yaml>",
		Short: "Inverse by Gauss–Jordan elimination",
		Long: `Inverts a square matrix. The matrix must pass |det| ≥ engine.invertible_epsilon
(default 0.001). Elimination does not swap rows, so a zero on the diagonal
during elimination is reported as not invertible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, inverseOp[scalar.Real], inverseOp[scalar.Complex])
		},
	}
}

func inverseOp[T scalar.Scalar[T]](cfg *config.Config, ms []*matrix.Dense[T]) (result, error) {
	if err := guardDet(cfg, ms[0]); err != nil {
		return nil, err
	}
	m, err := matrix.Inverse(ms[0], cfg.MatrixOptions()...)
	if err != nil {
		return nil, err
	}

	return matrixResult[T]{m}, nil
}
