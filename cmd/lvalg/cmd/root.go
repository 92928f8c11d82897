// Package cmd wires the lvalg command tree: one sub-command per matrix
// operation, each reading its operands from YAML matrix documents.
package cmd

import (
	"fmt"

	logging "github.com/ipfs/go-log/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvalg/internal/config"
)

var log = logging.Logger("lvalg")

// Output formats for --format.
const (
	formatText = "text"
	formatYAML = "yaml"
)

// app carries the persistent flags and the resolved configuration to the
// sub-commands of one command tree.
type app struct {
	cfgFile  string
	logLevel string
	complex  bool
	format   string

	cfg *config.Config
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "lvalg",
		Short: "Real and complex matrix calculator",
		Long: `lvalg evaluates matrix operations over real or complex numbers.

Operands are YAML documents:

  kind: complex        # real | complex (default real)
  rows:
    - ["1", "2 + i"]
    - ["0", "-i"]

Examples:
  lvalg product a.yaml b.yaml
  lvalg pow a.yaml -- -2
  lvalg --format yaml inverse a.yaml > inv.yaml
  lvalg repl --complex`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "TOML config file (default: built-in defaults)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (overrides general.log_level)")
	root.PersistentFlags().BoolVar(&a.complex, "complex", false, "treat every operand as complex")
	root.PersistentFlags().StringVar(&a.format, "format", formatText, "output format: text or yaml")

	root.AddCommand(
		newSumCmd(a),
		newProductCmd(a),
		newPowCmd(a),
		newTransposeCmd(a),
		newTraceCmd(a),
		newDetCmd(a),
		newInverseCmd(a),
		newRrefCmd(a),
		newLUCmd(a),
		newReplCmd(a),
		newConfigCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// setup resolves the configuration and applies the log level. Flags win
// over the config file.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.General.LogLevel = a.logLevel
	}
	if a.complex {
		cfg.General.Scalar = config.ScalarComplex
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	switch a.format {
	case formatText, formatYAML:
	default:
		return fmt.Errorf("unknown --format %q (want %s or %s)", a.format, formatText, formatYAML)
	}

	level, err := logging.LevelFromString(cfg.General.LogLevel)
	if err != nil {
		return err
	}
	logging.SetAllLoggers(level)
	log.Debugw("configuration", "file", a.cfgFile, "scalar", cfg.General.Scalar,
		"invertible_epsilon", cfg.Engine.InvertibleEpsilon, "max_det_order", cfg.Engine.MaxDetOrder)

	a.cfg = cfg
	return nil
}
