// Package check contains the monitored objects and the results of checking
// them.
package check

import (
	"context"
	"time"

	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/clock"
	"github.com/tsatke/sentinel/internal/ctxlog"
	"github.com/tsatke/sentinel/internal/macro"
	"github.com/tsatke/sentinel/internal/value"
)

// Checkable is an object that can be checked, i.e. a Host or a Service.
type Checkable interface {
	macro.Resolver

	// Name is the unique name of the checkable.
	Name() base.String
	CheckCommand() *CheckCommand
	LastCheckResult() *Result
	State() State
	LastStateChange() time.Time
	// ProcessCheckResult records cr as the latest result.
	ProcessCheckResult(ctx context.Context, cr *Result)
	// Resolvers returns the macro resolvers for checks of this checkable,
	// most specific first.
	Resolvers() macro.ResolverList
}

// checkable holds what hosts and services have in common.
type checkable struct {
	displayName     base.String
	command         *CheckCommand
	vars            *value.Dictionary
	lastCheckResult *Result
	state           State
	lastStateChange time.Time
}

func newCheckable(displayName base.String, command *CheckCommand, vars *value.Dictionary) checkable {
	if vars == nil {
		vars = value.NewDictionary()
	}
	return checkable{
		displayName: displayName,
		command:     command,
		vars:        vars,
		state:       StateUnknown,
	}
}

func (c *checkable) CheckCommand() *CheckCommand { return c.command }
func (c *checkable) LastCheckResult() *Result { return c.lastCheckResult }
func (c *checkable) State() State { return c.state }
func (c *checkable) LastStateChange() time.Time { return c.lastStateChange }
func (c *checkable) Vars() *value.Dictionary { return c.vars }
func (c *checkable) DisplayName() base.String { return c.displayName }

func (c *checkable) processCheckResult(ctx context.Context, name base.String, cr *Result) {
	logger := ctxlog.FromContext(ctx)

	if cr.ExecutionEnd.IsZero() {
		now := clock.FromContext(ctx).Now()
		cr.ExecutionStart = now
		cr.ExecutionEnd = now
	}

	old := c.state
	c.lastCheckResult = cr
	c.state = cr.State
	if old != cr.State || c.lastStateChange.IsZero() {
		c.lastStateChange = cr.ExecutionEnd
		logger.Info("State changed.", "checkable", name.String(), "old_state", old.String(), "new_state", cr.State.String())
	}

	logger.Debug("Processed check result.", "checkable", name.String(), "state", cr.State.String(), "output", cr.Output.String())
}

// resolveMacro resolves the attributes shared by hosts and services.
func (c *checkable) resolveMacro(name, attr base.String) (value.Value, bool) {
	switch attr {
	case "name":
		return value.NewString(name.String()), true
	case "display_name":
		return value.NewString(c.displayName.String()), true
	case "check_command":
		if c.command == nil {
			return value.Nil, true
		}
		return value.NewString(c.command.Name.String()), true
	case "state":
		return value.NewString(c.state.String()), true
	case "state_id":
		return value.NewNumber(float64(c.state)), true
	case "output":
		if c.lastCheckResult == nil {
			return value.NewString(""), true
		}
		return value.NewString(c.lastCheckResult.Output.String()), true
	}
	return macro.ResolveVars(c.vars, attr)
}
