package engine

import (
	"io"
	"log/slog"

	"github.com/spf13/afero"
	"github.com/tsatke/sentinel/internal/clock"
	"github.com/tsatke/sentinel/internal/methods"
)

type Option func(*Engine)

func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fs
	}
}

func WithStdout(stdout io.Writer) Option {
	return func(e *Engine) {
		e.stdout = stdout
	}
}

func WithStderr(stderr io.Writer) Option {
	return func(e *Engine) {
		e.stderr = stderr
	}
}

func WithClock(clock clock.Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithLogger replaces the default logger, which logs warnings and errors to
// stderr.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the registry of check methods.
func WithRegistry(registry *methods.Registry) Option {
	return func(e *Engine) {
		e.registry = registry
	}
}
