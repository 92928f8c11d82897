package session

import "github.com/katalvlaran/lvalg/internal/config"

// Option configures a Session.
type Option func(*settings)

type settings struct {
	cfg    *config.Config
	styles *Styles
}

// WithConfig sets the engine policy (invertibility threshold and
// determinant order limit). Defaults to config.Default().
func WithConfig(cfg *config.Config) Option {
	return func(s *settings) {
		if cfg != nil {
			s.cfg = cfg
		}
	}
}

// WithStyles overrides the styles derived from the output writer.
func WithStyles(st Styles) Option {
	return func(s *settings) { s.styles = &st }
}
