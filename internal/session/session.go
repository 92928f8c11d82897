package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lvalg/echelon"
	"github.com/katalvlaran/lvalg/internal/config"
	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
)

var log = logging.Logger("session")

// Menu choices.
const (
	ChoiceSum       = "S"
	ChoiceProduct   = "P"
	ChoicePower     = "E"
	ChoiceTranspose = "T"
	ChoiceTrace     = "TR"
	ChoiceDet       = "D"
	ChoiceInverse   = "I"
	ChoiceReduce    = "R"
	ChoiceQuit      = "Q"
)

var menuItems = [][2]string{
	{ChoiceSum, "Sum"},
	{ChoiceProduct, "Product"},
	{ChoicePower, "Exponentiation"},
	{ChoiceTranspose, "Transpose"},
	{ChoiceTrace, "Trace"},
	{ChoiceDet, "Determinant"},
	{ChoiceInverse, "Inverse"},
	{ChoiceReduce, "Row Echelon Form"},
	{ChoiceQuit, "Quit"},
}

// Session is one interactive run over a matrix of scalar kind T.
// It is not safe for concurrent use.
type Session[T scalar.Scalar[T]] struct {
	in     *bufio.Scanner
	out    io.Writer
	parse  func(string) (T, error)
	cfg    *config.Config
	styles Styles
	cur    *matrix.Dense[T]
}

// New prepares a session reading from in and writing to out.
func New[T scalar.Scalar[T]](in io.Reader, out io.Writer, parse func(string) (T, error), opts ...Option) *Session[T] {
	st := settings{cfg: config.Default()}
	for _, set := range opts {
		if set != nil {
			set(&st)
		}
	}
	styles := NewStyles(lipgloss.NewRenderer(out))
	if st.styles != nil {
		styles = *st.styles
	}

	return &Session[T]{
		in:     bufio.NewScanner(in),
		out:    out,
		parse:  parse,
		cfg:    st.cfg,
		styles: styles,
	}
}

// Current returns the matrix the next operation applies to, or nil before
// the starting matrix has been entered.
func (s *Session[T]) Current() *matrix.Dense[T] { return s.cur }

// Run reads the starting matrix and serves the menu until Q, end of input
// or cancellation of ctx. End of input is a normal exit (nil error).
func (s *Session[T]) Run(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p, err := s.readInt("How many rows ? ", 1)
	if err != nil {
		return quitOnEOF(err)
	}
	q, err := s.readInt("How many columns ? ", 1)
	if err != nil {
		return quitOnEOF(err)
	}
	if s.cur, err = s.readMatrix(p, q); err != nil {
		return quitOnEOF(err)
	}
	s.println(s.styles.Result.Render(s.cur.String()))

	for {
		if err = ctx.Err(); err != nil {
			return err
		}
		s.printMenu()
		choice, err := s.prompt("Choose an operation: ")
		if err != nil {
			return quitOnEOF(err)
		}
		choice = strings.ToUpper(strings.TrimSpace(choice))
		log.Debugw("menu choice", "choice", choice)

		quit, err := s.dispatch(choice)
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			log.Debugw("operation failed", "choice", choice, "err", err)
			s.println(s.styles.Error.Render("Error: " + err.Error()))
		case quit:
			return nil
		}
	}
}

// dispatch runs one menu operation. The current matrix is replaced only
// when the operation succeeds.
func (s *Session[T]) dispatch(choice string) (quit bool, err error) {
	var res *matrix.Dense[T]
	switch choice {
	case ChoiceSum:
		other, err := s.readMatrix(s.cur.Rows(), s.cur.Cols())
		if err != nil {
			return false, err
		}
		if res, err = matrix.Add(s.cur, other); err != nil {
			return false, err
		}
		s.replace("Sum:", res)

	case ChoiceProduct:
		cols, err := s.readInt("How many columns ? ", 1)
		if err != nil {
			return false, err
		}
		other, err := s.readMatrix(s.cur.Cols(), cols)
		if err != nil {
			return false, err
		}
		if res, err = matrix.Mul(s.cur, other); err != nil {
			return false, err
		}
		s.replace("Product:", res)

	case ChoicePower:
		n, err := s.readInt("Enter the power to raise this matrix to: ", math.MinInt)
		if err != nil {
			return false, err
		}
		if n < 0 && s.cur.IsSquare() {
			if err = s.cfg.CheckDetOrder(s.cur.Rows()); err != nil {
				return false, err
			}
		}
		if res, err = matrix.Pow(s.cur, n, s.cfg.MatrixOptions()...); err != nil {
			return false, err
		}
		s.replace("Result:", res)

	case ChoiceTranspose:
		if res, err = matrix.Transpose(s.cur); err != nil {
			return false, err
		}
		s.show("Transpose:", res.String())

	case ChoiceTrace:
		tr, err := matrix.Trace(s.cur)
		if err != nil {
			return false, err
		}
		s.show("Trace:", tr.String())

	case ChoiceDet:
		if err = s.checkDet(); err != nil {
			return false, err
		}
		det, err := matrix.Det(s.cur)
		if err != nil {
			return false, err
		}
		s.show("Determinant:", det.String())

	case ChoiceInverse:
		if err = s.checkDet(); err != nil {
			return false, err
		}
		if res, err = matrix.Inverse(s.cur, s.cfg.MatrixOptions()...); err != nil {
			return false, err
		}
		s.replace("Inverse:", res)

	case ChoiceReduce:
		if res, err = echelon.Reduce(s.cur); err != nil {
			return false, err
		}
		s.replace("REF Form:", res)

	case ChoiceQuit:
		return true, nil

	default:
		s.println(s.styles.Error.Render("Invalid operation selected."))
	}

	return false, nil
}

func (s *Session[T]) checkDet() error {
	if !s.cur.IsSquare() {
		return nil
	}

	return s.cfg.CheckDetOrder(s.cur.Rows())
}

func (s *Session[T]) replace(title string, m *matrix.Dense[T]) {
	s.cur = m
	s.show(title, m.String())
}

func (s *Session[T]) show(title, body string) {
	s.println(s.styles.Title.Render(title))
	s.println(s.styles.Result.Render(body))
}

func (s *Session[T]) printMenu() {
	var b strings.Builder
	for i, item := range menuItems {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(s.styles.Key.Render(item[0]))
		b.WriteString(s.styles.Menu.Render(": " + item[1]))
	}
	s.println("")
	s.println(b.String())
}

// readMatrix reads p*q cells row by row, re-prompting on a bad literal.
func (s *Session[T]) readMatrix(p, q int) (*matrix.Dense[T], error) {
	s.println(s.styles.Title.Render(fmt.Sprintf("Enter your %dx%d matrix:", p, q)))
	vals := make([][]T, p)
	for i := range vals {
		vals[i] = make([]T, q)
		for j := range vals[i] {
			for {
				line, err := s.prompt(fmt.Sprintf("[%d,%d] ", i+1, j+1))
				if err != nil {
					return nil, err
				}
				v, err := s.parse(strings.TrimSpace(line))
				if err == nil {
					vals[i][j] = v
					break
				}
				s.println(s.styles.Error.Render(err.Error()))
			}
		}
	}

	return matrix.New(vals)
}

// readInt prompts until it gets an integer ≥ least.
func (s *Session[T]) readInt(label string, least int) (int, error) {
	for {
		line, err := s.prompt(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		switch {
		case err != nil:
			s.println(s.styles.Error.Render(fmt.Sprintf("%q is not an integer", strings.TrimSpace(line))))
		case n < least:
			s.println(s.styles.Error.Render(fmt.Sprintf("need at least %d", least)))
		default:
			return n, nil
		}
	}
}

// prompt writes label and returns the next input line, or io.EOF.
func (s *Session[T]) prompt(label string) (string, error) {
	fmt.Fprint(s.out, s.styles.Prompt.Render(label))
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}

	return s.in.Text(), nil
}

func (s *Session[T]) println(str string) {
	fmt.Fprintln(s.out, str)
}

func quitOnEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}

	return err
}
