// Package sentinel runs the checks of hosts and services that are declared
// in YAML, TOML or HCL definition files.
package sentinel

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/engine"
	"github.com/tsatke/sentinel/internal/macro"
)

type Engine struct {
	engine *engine.Engine

	fs     afero.Fs
	stdout io.Writer
	stderr io.Writer
	clock  Clock
	logger *slog.Logger
}

func NewEngine(opts ...Option) Engine {
	e := Engine{
		fs:     afero.NewOsFs(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}

	for _, opt := range opts {
		opt(&e)
	}

	engineOpts := []engine.Option{
		engine.WithFs(e.fs),
		engine.WithStdout(e.stdout),
		engine.WithStderr(e.stderr),
	}
	if e.clock != nil {
		engineOpts = append(engineOpts, engine.WithClock(e.clock))
	}
	if e.logger != nil {
		engineOpts = append(engineOpts, engine.WithLogger(e.logger))
	}
	e.engine = engine.New(engineOpts...)

	return e
}

func (e Engine) EvalString(source string, format Format) (Results, error) {
	return e.Eval(strings.NewReader(source), format)
}

// Eval reads object definitions in the given format from source and
// executes the check of every host and service defined there. Objects
// defined by earlier calls stay known to the engine, so later definitions
// can refer to them.
//
// If the definitions can't be read, an error is returned. A check that
// fails doesn't abort the evaluation, instead its Result has the state
// StateUnknown and carries the error in Result.Err.
func (e Engine) Eval(source io.Reader, format Format) (Results, error) {
	reports, err := e.engine.Eval(context.Background(), source, format.internal())
	if err != nil {
		return nil, err
	}
	return resultsFromInternal(reports...), nil
}

// EvalFile is like Eval, but reads the definitions from the files at the
// given paths. The format of each file is determined by its extension.
// Objects in one file may refer to objects in any other of the files.
func (e Engine) EvalFile(paths ...string) (Results, error) {
	reports, err := e.engine.EvalFile(context.Background(), paths...)
	if err != nil {
		return nil, err
	}
	return resultsFromInternal(reports...), nil
}

// Macros returns the macros that the check of the host or service with the
// given name uses, mapped to their resolved value.
func (e Engine) Macros(name string) (map[string]string, error) {
	resolved, err := e.engine.ResolveMacros(context.Background(), base.New(name))
	if err != nil {
		return nil, convertError(err)
	}

	macros := make(map[string]string, resolved.Len())
	for _, k := range resolved.Keys() {
		v, _ := resolved.Get(k)
		macros[k] = v.String()
	}
	return macros, nil
}

func convertError(err error) error {
	var recursionErr macro.RecursionError
	if errors.As(err, &recursionErr) {
		return errorFromInternal(recursionErr)
	}
	return err
}
