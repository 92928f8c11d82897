package echelon

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
)

var log = logging.Logger("echelon")

const (
	opReduce = "Reduce"
	opRank   = "Rank"
)

func echelonErrorf(tag string, err error) error {
	return fmt.Errorf("echelon.%s: %w", tag, err)
}

// Reduce returns the reduced row-echelon form of m.
// Implementation:
//   - lead starts at column 0; for each row r:
//     stop when lead ≥ q;
//     scan rows r.. for a non-zero entry in column lead, moving to the next
//     column (and restarting the scan at r) when none is found, and return
//     as soon as the columns run out;
//     swap the found row into position r, divide it by its pivot, subtract
//     the pivot row from every other row to clear column lead;
//     advance lead.
//
// Behavior highlights:
//   - m is not modified; the result shares no storage with it.
//   - Elimination runs above and below each pivot (Gauss–Jordan).
//   - Applying Reduce to its own result returns an equal matrix.
//
// Errors:
//   - matrix.ErrNilMatrix.
//
// Complexity:
//   - Time O(p·q·min(p,q)), Space O(p·q).
func Reduce[T scalar.Scalar[T]](m *matrix.Dense[T]) (*matrix.Dense[T], error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, echelonErrorf(opReduce, err)
	}

	rows := m.Data()
	p, q := m.Shape()
	lead := 0
	var (
		r, i, j int
		err     error
	)
	for r = 0; r < p; r++ {
		if lead >= q {
			break
		}

		i = r
		for rows[i][lead].IsZero() {
			i++
			if i == p {
				i = r
				lead++
				if lead == q {
					return matrix.New(rows)
				}
			}
		}
		log.Debugw("pivot", "row", r, "col", lead, "from", i)

		rows[i], rows[r] = rows[r], rows[i]

		pivot := rows[r][lead]
		for j = 0; j < q; j++ {
			if rows[r][j], err = rows[r][j].Div(pivot); err != nil {
				return nil, echelonErrorf(opReduce, err)
			}
		}

		for i = 0; i < p; i++ {
			if i == r {
				continue
			}
			lv := rows[i][lead]
			for j = 0; j < q; j++ {
				rows[i][j] = rows[i][j].Sub(lv.Mul(rows[r][j]))
			}
		}
		lead++
	}

	return matrix.New(rows)
}

// IsReduced reports whether m is in reduced row-echelon form:
// every non-zero row starts with a one, each such leading one lies strictly
// right of the one above it, it is the only non-zero entry of its column,
// and all zero rows come last. A nil matrix is not reduced.
func IsReduced[T scalar.Scalar[T]](m *matrix.Dense[T]) bool {
	if m == nil {
		return false
	}
	rows := m.Data()
	p, q := m.Shape()
	one := scalar.One[T]()

	prev := -1
	seenZeroRow := false
	for r := 0; r < p; r++ {
		c := leadingColumn(rows[r])
		if c == q {
			seenZeroRow = true
			continue
		}
		if seenZeroRow || c <= prev || !rows[r][c].Equal(one) {
			return false
		}
		for i := 0; i < p; i++ {
			if i != r && !rows[i][c].IsZero() {
				return false
			}
		}
		prev = c
	}

	return true
}

// Rank returns the number of non-zero rows in the reduced form of m.
// Zero tests are exact, so rounding residue in nearly dependent rows counts
// towards the rank.
//
// Errors:
//   - matrix.ErrNilMatrix.
func Rank[T scalar.Scalar[T]](m *matrix.Dense[T]) (int, error) {
	red, err := Reduce(m)
	if err != nil {
		return 0, echelonErrorf(opRank, err)
	}
	rank := 0
	for _, row := range red.Data() {
		if leadingColumn(row) < len(row) {
			rank++
		}
	}

	return rank, nil
}

// leadingColumn returns the index of the first non-zero entry, or len(row).
func leadingColumn[T scalar.Scalar[T]](row []T) int {
	for j, v := range row {
		if !v.IsZero() {
			return j
		}
	}

	return len(row)
}
