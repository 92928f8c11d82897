package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvalg/cmd/lvalg/cmd"
	"github.com/katalvlaran/lvalg/internal/config"
	"github.com/katalvlaran/lvalg/internal/matfile"
	"github.com/katalvlaran/lvalg/matrix"
	"github.com/katalvlaran/lvalg/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDoc stores a YAML matrix document in dir and returns its path.
func writeDoc(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// execute runs the command tree with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := cmd.NewRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--log-level", "error"}, args...))
	err := root.Execute()

	return out.String(), err
}

func fixtures(t *testing.T) (a, b, singular, z string) {
	t.Helper()
	dir := t.TempDir()
	a = writeDoc(t, dir, "a.yaml", "rows:\n  - [\"4\", \"7\"]\n  - [\"2\", \"6\"]\n")
	b = writeDoc(t, dir, "b.yaml", "rows:\n  - [\"1\", \"1\"]\n  - [\"1\", \"1\"]\n")
	singular = writeDoc(t, dir, "s.yaml", "rows:\n  - [\"1\", \"2\"]\n  - [\"2\", \"4\"]\n")
	z = writeDoc(t, dir, "z.yaml", "kind: complex\nrows:\n  - [\"i\", \"0\"]\n  - [\"0\", \"i\"]\n")

	return a, b, singular, z
}

func TestCommands_Text(t *testing.T) {
	a, b, singular, z := fixtures(t)

	for _, tc := range []struct {
		name string
		args []string
		want string
	}{
		{"sum", []string{"sum", a, b}, "[ 5 8 ]\n[ 3 7 ]\n"},
		{"product", []string{"product", a, b}, "[ 11 11 ]\n[  8  8 ]\n"},
		{"pow", []string{"pow", b, "3"}, "[ 4 4 ]\n[ 4 4 ]\n"},
		{"pow zero", []string{"pow", singular, "0"}, "[ 1 0 ]\n[ 0 1 ]\n"},
		{"transpose", []string{"transpose", a}, "[ 4 2 ]\n[ 7 6 ]\n"},
		{"trace", []string{"trace", a}, "10\n"},
		{"det", []string{"det", a}, "10\n"},
		{"det elimination", []string{"det", "--elimination", singular}, "0\n"},
		{"rref", []string{"rref", singular}, "[ 1 2 ]\n[ 0 0 ]\n"},
		{"rank", []string{"rref", "--rank", singular}, "1\n"},
		{"lu", []string{"lu", a}, "L:\n[   1 0 ]\n[ 0.5 1 ]\nU:\n[ 4   7 ]\n[ 0 2.5 ]\n"},
		{"complex pow", []string{"pow", z, "2"}, "[ -1  0 ]\n[  0 -1 ]\n"},
		{"complex det", []string{"det", z}, "-1\n"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			out, err := execute(t, "", tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestCommands_Errors(t *testing.T) {
	a, _, singular, _ := fixtures(t)
	dir := t.TempDir()
	wide := writeDoc(t, dir, "w.yaml", "rows:\n  - [\"1\", \"2\", \"3\"]\n")
	ragged := writeDoc(t, dir, "r.yaml", "rows:\n  - [\"1\", \"2\"]\n  - [\"3\"]\n")
	bad := writeDoc(t, dir, "bad.yaml", "rows:\n  - [\"1\", \"two\"]\n")

	for _, tc := range []struct {
		name string
		args []string
		want error
	}{
		{"sum mismatch", []string{"sum", a, wide}, matrix.ErrDimensionMismatch},
		{"product mismatch", []string{"product", wide, a}, matrix.ErrDimensionMismatch},
		{"trace non-square", []string{"trace", wide}, matrix.ErrNonSquare},
		{"det non-square", []string{"det", wide}, matrix.ErrNonSquare},
		{"inverse singular", []string{"inverse", singular}, matrix.ErrNotInvertible},
		{"negative pow singular", []string{"pow", singular, "--", "-1"}, matrix.ErrNotInvertible},
		{"ragged", []string{"transpose", ragged}, matrix.ErrInvalidShape},
		{"bad cell", []string{"transpose", bad}, scalar.ErrSyntax},
		{"missing file", []string{"det", filepath.Join(dir, "nope.yaml")}, os.ErrNotExist},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, "", tc.args...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestCommands_ArgValidation(t *testing.T) {
	a, _, _, _ := fixtures(t)

	_, err := execute(t, "", "sum", a)
	assert.Error(t, err)
	_, err = execute(t, "", "pow", a, "two")
	assert.ErrorContains(t, err, "exponent")
	_, err = execute(t, "", "--format", "xml", "trace", a)
	assert.ErrorContains(t, err, "--format")
}

func TestInverse_YAMLOutputRoundTrips(t *testing.T) {
	a, _, _, _ := fixtures(t)

	out, err := execute(t, "", "--format", "yaml", "inverse", a)
	require.NoError(t, err)

	doc, err := matfile.Decode(strings.NewReader(out))
	require.NoError(t, err)
	inv, err := matfile.Build(doc, scalar.ParseReal)
	require.NoError(t, err)
	m, err := matrix.New([][]scalar.Real{{4, 7}, {2, 6}})
	require.NoError(t, err)
	prod, err := matrix.Mul(m, inv)
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			v, err := prod.At(i, j)
			require.NoError(t, err)
			want := 0.0
			if i == j {
				want = 1
			}
			assert.InDelta(t, want, float64(v), 1e-9)
		}
	}
}

func TestComplexFlag(t *testing.T) {
	a, _, _, _ := fixtures(t)

	out, err := execute(t, "", "--complex", "--format", "yaml", "transpose", a)
	require.NoError(t, err)
	assert.Contains(t, out, "kind: complex")
}

func TestConfigFile(t *testing.T) {
	a, _, _, _ := fixtures(t)
	dir := t.TempDir()
	strict := writeDoc(t, dir, "lvalg.toml", "[engine]\ninvertible_epsilon = 20.0\nmax_det_order = 1\n")

	_, err := execute(t, "", "--config", strict, "det", a)
	assert.ErrorIs(t, err, config.ErrDetOrderTooLarge)

	out, err := execute(t, "", "--config", strict, "det", "--elimination", a)
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	loose := writeDoc(t, dir, "loose.toml", "[engine]\ninvertible_epsilon = 20.0\n")
	_, err = execute(t, "", "--config", loose, "inverse", a)
	assert.ErrorIs(t, err, matrix.ErrNotInvertible)

	out, err = execute(t, "", "--config", loose, "config")
	require.NoError(t, err)
	cfg, err := config.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 20.0, cfg.Engine.InvertibleEpsilon)
	assert.Equal(t, "error", cfg.General.LogLevel)
}

func TestRepl(t *testing.T) {
	out, err := execute(t, "1\n1\n3\nE\n2\nQ\n", "repl")
	require.NoError(t, err)
	assert.Contains(t, out, "Result:")
	assert.Contains(t, out, "[ 9 ]")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "lvalg v"+cmd.Version)
}
