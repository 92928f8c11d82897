package cmd

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/internal/config"
	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
)

func newTransposeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "transpose <a.yaml>",
		Short: "Transpose Aᵀ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, transposeOp[scalar.Real], transposeOp[scalar.Complex])
		},
	}
}

func transposeOp[T scalar.Scalar[T]](_ *config.Config, ms []*matrix.Dense[T]) (result, error) {
	m, err := matrix.Transpose(ms[0])
	if err != nil {
		return nil, err
	}

	return matrixResult[T]{m}, nil
}

func newTraceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace <a.yaml>",
		Short: "Sum of the main diagonal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, traceOp[scalar.Real], traceOp[scalar.Complex])
		},
	}
}

func traceOp[T scalar.Scalar[T]](_ *config.Config, ms []*matrix.Dense[T]) (result, error) {
	tr, err := matrix.Trace(ms[0])
	if err != nil {
		return nil, err
	}

	return valueResult{tr}, nil
}
