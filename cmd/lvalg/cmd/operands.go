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

// result is what an operation hands back for printing.
type result interface {
	write(w io.Writer, format string) error
}

// matrixResult prints as the aligned grid or as a YAML document.
type matrixResult[T scalar.Scalar[T]] struct {
	m *matrix.Dense[T]
}

func (r matrixResult[T]) write(w io.Writer, format string) error {
	if format == formatYAML {
		return matfile.Encode(w, r.m, kindOf[T]())
	}
	_, err := fmt.Fprintln(w, r.m)

	return err
}

// valueResult prints a single scalar or count.
type valueResult struct {
	v fmt.Stringer
}

func (r valueResult) write(w io.Writer, format string) error {
	if format == formatYAML {
		_, err := fmt.Fprintf(w, "value: %q\n", r.v.String())
		return err
	}
	_, err := fmt.Fprintln(w, r.v)

	return err
}

type intString int

func (n intString) String() string { return fmt.Sprint(int(n)) }

// operation is one command body instantiated for a scalar kind.
type operation[T scalar.Scalar[T]] func(cfg *config.Config, ms []*matrix.Dense[T]) (result, error)

func kindOf[T scalar.Scalar[T]]() string {
	var zero T
	if _, ok := any(zero).(scalar.Complex); ok {
		return matfile.KindComplex
	}

	return matfile.KindReal
}

// run loads the documents at paths, picks the scalar kind (complex when the
// configuration asks for it or any document is complex), builds the
// operands and prints the result of the matching instantiation.
func (a *app) run(cmd *cobra.Command, paths []string, realOp operation[scalar.Real], complexOp operation[scalar.Complex]) error {
	docs := make([]*matfile.Document, len(paths))
	useComplex := a.cfg.General.Scalar == config.ScalarComplex
	for i, path := range paths {
		doc, err := matfile.Load(path)
		if err != nil {
			return err
		}
		docs[i] = doc
		useComplex = useComplex || doc.IsComplex()
	}
	log.Debugw("operands loaded", "cmd", cmd.Name(), "count", len(docs), "complex", useComplex)

	var (
		res result
		err error
	)
	if useComplex {
		res, err = apply(a.cfg, docs, scalar.ParseComplex, complexOp)
	} else {
		res, err = apply(a.cfg, docs, scalar.ParseReal, realOp)
	}
	if err != nil {
		return err
	}

	return res.write(cmd.OutOrStdout(), a.format)
}

func apply[T scalar.Scalar[T]](cfg *config.Config, docs []*matfile.Document, parse func(string) (T, error), op operation[T]) (result, error) {
	ms := make([]*matrix.Dense[T], len(docs))
	for i, doc := range docs {
		m, err := matfile.Build(doc, parse)
		if err != nil {
			return nil, err
		}
		ms[i] = m
	}

	return op(cfg, ms)
}

// guardDet applies engine.max_det_order to square operands.
func guardDet[T scalar.Scalar[T]](cfg *config.Config, m *matrix.Dense[T]) error {
	if !m.IsSquare() {
		return nil
	}

	return cfg.CheckDetOrder(m.Rows())
}
