package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/internal/config"
	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
)

func newSumCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "sum <a.yaml> <b.yaml>",
		Short: "Element-wise sum A + B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, sumOp[scalar.Real], sumOp[scalar.Complex])
		},
	}
}

func sumOp[T scalar.Scalar[T]](_ *config.Config, ms []*matrix.Dense[T]) (result, error) {
	m, err := matrix.Add(ms[0], ms[1])
	if err != nil {
		return nil, err
	}

	return matrixResult[T]{m}, nil
}

func newProductCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "product <a.yaml> <b.yaml>",
		Short: "Matrix product A × B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, productOp[scalar.Real], productOp[scalar.Complex])
		},
	}
}

func productOp[T scalar.Scalar[T]](_ *config.Config, ms []*matrix.Dense[T]) (result, error) {
	m, err := matrix.Mul(ms[0], ms[1])
	if err != nil {
		return nil, err
	}

	return matrixResult[T]{m}, nil
}

func newPowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "pow <a.yaml> <n>",
		Short: "Integer power A^n (negative n goes through the inverse)",
		Long: `Raises a square matrix to an integer power by repeated squaring.
n = 0 gives the identity; negative n inverts first.

Use "--" before a negative exponent:
  lvalg pow a.yaml -- -2`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("exponent %q: %w", args[1], err)
			}
			return a.run(cmd, args[:1], powOp[scalar.Real](n), powOp[scalar.Complex](n))
		},
	}
}

func powOp[T scalar.Scalar[T]](n int) operation[T] {
	return func(cfg *config.Config, ms []*matrix.Dense[T]) (result, error) {
		if n < 0 {
			if err := guardDet(cfg, ms[0]); err != nil {
				return nil, err
			}
		}
		m, err := matrix.Pow(ms[0], n, cfg.MatrixOptions()...)
		if err != nil {
			return nil, err
		}

		return matrixResult[T]{m}, nil
	}
}
