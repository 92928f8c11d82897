// Package matfile reads and writes matrices as YAML documents:
//
//	kind: complex          # real | complex (default real)
//	rows:
//	  - ["1", "2 + i"]
//	  - ["0", "-i"]
//
// Cells are scalar literals in the syntax of scalar.ParseReal and
// scalar.ParseComplex. Shape checking is left to matrix.New so a ragged
// document fails with matrix.ErrInvalidShape.
package matfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
)

// Document kinds.
const (
	KindReal    = "real"
	KindComplex = "complex"
)

// ErrInvalidDocument marks malformed YAML, an unknown kind or a bad cell.
var ErrInvalidDocument = errors.New("matfile: invalid document")

// Row is one matrix row of cell literals. It encodes in flow style.
type Row []string

// MarshalYAML renders the row as a flow sequence of quoted strings.
func (r Row) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, cell := range r {
		n.Content = append(n.Content, &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Style: yaml.DoubleQuotedStyle,
			Value: cell,
		})
	}

	return n, nil
}

// Document is the on-disk form of one matrix.
type Document struct {
	Kind string `yaml:"kind,omitempty"`
	Rows []Row  `yaml:"rows"`
}

// IsComplex reports whether cells should be parsed as complex literals.
func (d *Document) IsComplex() bool { return d.Kind == KindComplex }

// Load reads and decodes the document at path.
func Load(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matfile: %w", err)
	}
	defer f.Close()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Decode reads one document from r. Unknown fields are rejected and an
// absent kind means real.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	switch doc.Kind {
	case "":
		doc.Kind = KindReal
	case KindReal, KindComplex:
	default:
		return nil, fmt.Errorf("%w: unknown kind %q", ErrInvalidDocument, doc.Kind)
	}

	return &doc, nil
}

// Build parses every cell of doc with parse and assembles the matrix.
//
// Errors:
//   - ErrInvalidDocument wrapping the parser error, with the cell position.
//   - matrix.ErrInvalidShape for empty or ragged rows.
func Build[T scalar.Scalar[T]](doc *Document, parse func(string) (T, error)) (*matrix.Dense[T], error) {
	vals := make([][]T, len(doc.Rows))
	var err error
	for i, row := range doc.Rows {
		vals[i] = make([]T, len(row))
		for j, cell := range row {
			if vals[i][j], err = parse(cell); err != nil {
				return nil, fmt.Errorf("%w: row %d col %d: %w", ErrInvalidDocument, i, j, err)
			}
		}
	}

	return matrix.New(vals)
}

// FromMatrix renders m into a document of the given kind.
func FromMatrix[T scalar.Scalar[T]](m *matrix.Dense[T], kind string) *Document {
	data := m.Data()
	doc := &Document{Kind: kind, Rows: make([]Row, len(data))}
	for i, row := range data {
		doc.Rows[i] = make(Row, len(row))
		for j, v := range row {
			doc.Rows[i][j] = v.String()
		}
	}

	return doc
}

// Encode writes m to w as a YAML document.
func Encode[T scalar.Scalar[T]](w io.Writer, m *matrix.Dense[T], kind string) error {
	if err := matrix.ValidateNotNil(m); err != nil {
		return fmt.Errorf("matfile: %w", err)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(FromMatrix(m, kind)); err != nil {
		return fmt.Errorf("matfile: encode: %w", err)
	}

	return enc.Close()
}
