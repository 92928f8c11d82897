// Package config loads the lvalg TOML configuration.
//
// Purpose:
//   - Hold the CLI-level policy: log level, default scalar kind, the
//     invertibility threshold and the largest order the Laplace determinant
//     is allowed to run on.
//   - Start from documented defaults and overlay whatever the file sets;
//     unknown keys are rejected so typos do not silently fall back.
package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/lvalg/matrix"
)

// Scalar kinds accepted in [general].scalar.
const (
	ScalarReal    = "real"
	ScalarComplex = "complex"
)

// Defaults (single source of truth).
const (
	DefaultLogLevel    = "info"
	DefaultScalar      = ScalarReal
	DefaultMaxDetOrder = 9
)

var (
	// ErrInvalidConfig is returned by Load and Validate for unusable settings.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrDetOrderTooLarge is returned by CheckDetOrder.
	ErrDetOrderTooLarge = errors.New("config: determinant order exceeds engine.max_det_order")
)

// Config is the complete application configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Engine  EngineConfig  `toml:"engine"`
}

// GeneralConfig holds process-wide settings.
type GeneralConfig struct {
	LogLevel string `toml:"log_level"`
	Scalar   string `toml:"scalar"`
}

// EngineConfig holds the numeric policy handed to the matrix package.
type EngineConfig struct {
	InvertibleEpsilon float64 `toml:"invertible_epsilon"`
	MaxDetOrder       int     `toml:"max_det_order"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			LogLevel: DefaultLogLevel,
			Scalar:   DefaultScalar,
		},
		Engine: EngineConfig{
			InvertibleEpsilon: matrix.DefaultInvertibleEpsilon,
			MaxDetOrder:       DefaultMaxDetOrder,
		},
	}
}

// Load reads the TOML file at path on top of Default.
// An empty path yields the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err = checkUndecoded(md); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Decode reads a TOML document from r on top of Default.
func Decode(r io.Reader) (*Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err = checkUndecoded(md); err != nil {
		return nil, err
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	keys := md.Undecoded()
	if len(keys) == 0 {
		return nil
	}
	names := make([]string, len(keys))
	for i, k := range keys {
		names[i] = k.String()
	}

	return fmt.Errorf("%w: unknown keys %s", ErrInvalidConfig, strings.Join(names, ", "))
}

// Validate checks every field; the first violation is returned.
func (c *Config) Validate() error {
	if _, err := logging.LevelFromString(c.General.LogLevel); err != nil {
		return fmt.Errorf("%w: general.log_level %q: %v", ErrInvalidConfig, c.General.LogLevel, err)
	}
	switch c.General.Scalar {
	case ScalarReal, ScalarComplex:
	default:
		return fmt.Errorf("%w: general.scalar %q (want %s or %s)",
			ErrInvalidConfig, c.General.Scalar, ScalarReal, ScalarComplex)
	}
	eps := c.Engine.InvertibleEpsilon
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return fmt.Errorf("%w: engine.invertible_epsilon %v must be finite, non-negative", ErrInvalidConfig, eps)
	}
	if c.Engine.MaxDetOrder < 1 {
		return fmt.Errorf("%w: engine.max_det_order %d must be at least 1", ErrInvalidConfig, c.Engine.MaxDetOrder)
	}

	return nil
}

// MatrixOptions translates the engine section into matrix options.
// Call only on a validated Config.
func (c *Config) MatrixOptions() []matrix.Option {
	return []matrix.Option{matrix.WithInvertibleEpsilon(c.Engine.InvertibleEpsilon)}
}

// CheckDetOrder refuses square orders above engine.max_det_order. Callers
// run it before anything that evaluates the O(n!) Laplace determinant:
// Det, Inverse and negative powers.
func (c *Config) CheckDetOrder(n int) error {
	if n > c.Engine.MaxDetOrder {
		return fmt.Errorf("%w: %d > %d", ErrDetOrderTooLarge, n, c.Engine.MaxDetOrder)
	}

	return nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
