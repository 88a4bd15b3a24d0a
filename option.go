package sentinel

import (
	"io"
	"log/slog"
	"time"

	"github.com/spf13/afero"
	"github.com/tsatke/sentinel/internal/config"
)

type Option func(*Engine)

// Clock is the time source used to timestamp check results.
type Clock interface {
	Now() time.Time
}

// Format is the format of a definition file.
type Format uint8

const (
	FormatYAML Format = iota + 1
	FormatTOML
	FormatHCL
)

func (f Format) internal() config.Format {
	switch f {
	case FormatYAML:
		return config.FormatYAML
	case FormatTOML:
		return config.FormatTOML
	case FormatHCL:
		return config.FormatHCL
	}
	return config.FormatUnknown
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

// WithWorkingDirectory makes EvalFile resolve paths relative to dir.
func WithWorkingDirectory(dir string) Option {
	return func(e *Engine) {
		e.fs = afero.NewBasePathFs(e.fs, dir)
	}
}

func WithFs(fs afero.Fs) Option {
	return func(e *Engine) {
		e.fs = fs
	}
}

func WithClock(clock Clock) Option {
	return func(e *Engine) {
		e.clock = clock
	}
}

// WithLogger sets the logger of the engine. By default, warnings and
// errors are logged as text to stderr.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}
