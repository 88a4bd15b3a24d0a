package engine

import (
	"context"
	"fmt"

	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/check"
	"github.com/tsatke/sentinel/internal/ctxlog"
	"github.com/tsatke/sentinel/internal/value"
)

// execute runs the check method of c. A failing method does not abort the
// run, but results in an UNKNOWN result.
func (e *Engine) execute(ctx context.Context, c check.Checkable) Report {
	logger := ctxlog.FromContext(ctx).With("checkable", c.Name().String())

	cr := check.NewResult()
	err := e.executeMethod(ctx, c, cr, nil, false)
	if err != nil {
		logger.Error("Check failed.", "error", err)

		cr.Command = c.CheckCommand().Name
		cr.ExitStatus = 3
		cr.State = check.StateUnknown
		cr.Output = base.New(err.Error())
		c.ProcessCheckResult(ctx, cr)
	}

	return Report{
		Checkable: c,
		Result:    cr,
		Err:       err,
	}
}

// ResolveMacros returns the macros that the check of the host or service
// with the given name would use, without executing the check.
func (e *Engine) ResolveMacros(ctx context.Context, name base.String) (*value.Dictionary, error) {
	ctx = e.prepare(ctx)

	c, ok := e.Checkable(name)
	if !ok {
		return nil, fmt.Errorf("checkable '%s' does not exist", name)
	}

	resolved := value.NewDictionary()
	if err := e.executeMethod(ctx, c, check.NewResult(), resolved, false); err != nil {
		return nil, err
	}
	return resolved, nil
}

// Replay executes the check of the host or service with the given name, but
// takes all macros from resolvedMacros instead of resolving them.
func (e *Engine) Replay(ctx context.Context, name base.String, resolvedMacros *value.Dictionary) (Report, error) {
	ctx = e.prepare(ctx)

	c, ok := e.Checkable(name)
	if !ok {
		return Report{}, fmt.Errorf("checkable '%s' does not exist", name)
	}

	cr := check.NewResult()
	if err := e.executeMethod(ctx, c, cr, resolvedMacros, true); err != nil {
		return Report{}, err
	}
	return Report{Checkable: c, Result: cr}, nil
}

func (e *Engine) executeMethod(ctx context.Context, c check.Checkable, cr *check.Result, resolvedMacros *value.Dictionary, useResolvedMacros bool) error {
	command := c.CheckCommand()
	fn, err := e.registry.Lookup(command.Method.String())
	if err != nil {
		return CheckError{Checkable: c.Name(), Err: err}
	}
	if err := fn(ctx, c, cr, resolvedMacros, useResolvedMacros); err != nil {
		return CheckError{Checkable: c.Name(), Err: err}
	}
	return nil
}
