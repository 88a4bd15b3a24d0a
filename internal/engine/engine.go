// Package engine builds monitoring objects from definition files and runs
// their checks.
package engine

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/check"
	"github.com/tsatke/sentinel/internal/clock"
	"github.com/tsatke/sentinel/internal/config"
	"github.com/tsatke/sentinel/internal/ctxlog"
	"github.com/tsatke/sentinel/internal/methods"
)

type Namer interface {
	Name() string
}

// Engine is an engine that is capable of loading object definitions from an
// io.Reader and executing the checks of the loaded hosts and services.
// The engine keeps track of state, so that multiple calls to Eval will build
// on the objects that the previous Eval calls defined.
//
//	engine.Eval(ctx, strings.NewReader(commands), config.FormatYAML)
//	engine.Eval(ctx, strings.NewReader(hosts), config.FormatYAML) // hosts may use the commands
//
// If an error occurs while decoding or building objects, that error will be
// returned and the state of the engine will remain unaffected.
type Engine struct {
	fs afero.Fs

	// stdout is where the engine writes one line per executed check.
	stdout io.Writer
	// stderr is where the default logger writes to.
	stderr io.Writer

	// clock is the clock that the engine will use if it requires a timestamp.
	clock  clock.Clock
	logger *slog.Logger

	registry *methods.Registry

	commands map[base.String]*check.CheckCommand
	hosts    map[base.String]*check.Host
	services map[base.String]*check.Service
}

// Report is the outcome of one check executed by the engine.
type Report struct {
	Checkable check.Checkable
	Result    *check.Result
	// Err is set if the check method failed. The result then is an UNKNOWN
	// result carrying the error message as output.
	Err error
}

// New creates a new, ready to use Engine, already applying all given options.
// By default, the engine uses the OS filesystem, os.Stdout as stdout and
// os.Stderr as stderr, and logs warnings and errors as text to stderr.
func New(opts ...Option) *Engine {
	e := &Engine{
		fs: afero.NewOsFs(),

		stdout: os.Stdout,
		stderr: os.Stderr,
		clock:  clock.System,

		registry: methods.NewRegistry(),

		commands: make(map[base.String]*check.CheckCommand),
		hosts:    make(map[base.String]*check.Host),
		services: make(map[base.String]*check.Service),
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = ctxlog.New("warn", "text", e.stderr)
	}
	return e
}

// Eval decodes the definitions in source, adds the defined objects to the
// engine and executes the check of every object defined by source, hosts
// first.
func (e *Engine) Eval(ctx context.Context, source io.Reader, format config.Format) ([]Report, error) {
	ctx = e.prepare(ctx)

	name := "<input>"
	if namer, ok := source.(Namer); ok {
		name = namer.Name()
	}

	defs, err := config.Decode(source, name, format)
	if err != nil {
		return nil, fmt.Errorf("errors occurred while decoding %s: %w", name, err)
	}
	return e.run(ctx, defs)
}

// EvalFile is like Eval, but reads the definitions from the files at the
// given paths in the engine's filesystem. The format of each file is derived
// from its extension. All files are applied at once, so objects may refer to
// objects declared in any of the files.
func (e *Engine) EvalFile(ctx context.Context, paths ...string) ([]Report, error) {
	ctx = e.prepare(ctx)

	defs, err := config.LoadAll(ctx, e.fs, paths...)
	if err != nil {
		return nil, err
	}
	return e.run(ctx, defs)
}

// run adds the objects in defs to the engine and executes their checks.
func (e *Engine) run(ctx context.Context, defs *config.Definitions) ([]Report, error) {
	checkables, err := e.apply(ctx, defs)
	if err != nil {
		return nil, err
	}

	reports := make([]Report, 0, len(checkables))
	for _, c := range checkables {
		report := e.execute(ctx, c)
		if err := e.print(report); err != nil {
			return nil, fmt.Errorf("print result: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// prepare equips ctx with the engine's clock and a logger that is
// annotated with a fresh run ID.
func (e *Engine) prepare(ctx context.Context) context.Context {
	logger := e.logger.With("run_id", uuid.NewString())
	ctx = ctxlog.WithLogger(ctx, logger)
	return clock.WithClock(ctx, e.clock)
}

// Host returns the host with the given name.
func (e *Engine) Host(name base.String) (*check.Host, bool) {
	h, ok := e.hosts[name]
	return h, ok
}

// Service returns the service with the given full name ("host!service").
func (e *Engine) Service(name base.String) (*check.Service, bool) {
	s, ok := e.services[name]
	return s, ok
}

// Checkable returns the host or service with the given name.
func (e *Engine) Checkable(name base.String) (check.Checkable, bool) {
	if h, ok := e.hosts[name]; ok {
		return h, true
	}
	if s, ok := e.services[name]; ok {
		return s, true
	}
	return nil, false
}

func (e *Engine) print(report Report) error {
	cr := report.Result

	parts := []base.String{"\t", base.New(cr.State.String()), "\t", cr.Output}
	if len(cr.PerformanceData) > 0 {
		parts = append(parts, " |")
		for _, pd := range cr.PerformanceData {
			parts = append(parts, " ", pd)
		}
	}
	parts = append(parts, "\n")
	line := report.Checkable.Name().Concat(parts...)

	_, err := line.WriteTo(e.stdout)
	return err
}
