package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/internal/config"
	"github.com/katalvlaran/lvalg/internal/matfile"
	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
)

func newLUCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lu <a.yaml>",
		Short: "Doolittle LU factorization A = L·U (no pivoting)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, args, luOp[scalar.Real], luOp[scalar.Complex])
		},
	}
}

func luOp[T scalar.Scalar[T]](_ *config.Config, ms []*matrix.Dense[T]) (result, error) {
	L, U, err := matrix.LU(ms[0])
	if err != nil {
		return nil, err
	}

	return luResult[T]{L, U}, nil
}

// luResult prints both factors; in YAML as two documents, L first.
type luResult[T scalar.Scalar[T]] struct {
	L, U *matrix.Dense[T]
}

func (r luResult[T]) write(w io.Writer, format string) error {
	if format == formatYAML {
		for _, m := range []*matrix.Dense[T]{r.L, r.U} {
			if _, err := io.WriteString(w, "---\n"); err != nil {
				return err
			}
			if err := matfile.Encode(w, m, kindOf[T]()); err != nil {
				return err
			}
		}
		return nil
	}
	_, err := fmt.Fprintf(w, "L:\n%s\nU:\n%s\n", r.L, r.U)

	return err
}
