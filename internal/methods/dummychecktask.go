package methods

import (
	"context"
	"fmt"

	"github.com/tsatke/sentinel/internal/check"
	"github.com/tsatke/sentinel/internal/clock"
	"github.com/tsatke/sentinel/internal/ctxlog"
	"github.com/tsatke/sentinel/internal/macro"
	"github.com/tsatke/sentinel/internal/value"
)

var _ Func = DummyCheckTask

// DummyCheckTask implements the "dummy" check method. It does not check
// anything, but reports the state from $dummy_state$ and the output from
// $dummy_text$.
func DummyCheckTask(ctx context.Context, checkable check.Checkable, cr *check.Result, resolvedMacros *value.Dictionary, useResolvedMacros bool) error {
	resolvers := checkable.Resolvers()

	stateValue, err := macro.Resolve(ctx, "$dummy_state$", resolvers, resolvedMacros, useResolvedMacros)
	if err != nil {
		return fmt.Errorf("resolve dummy_state: %w", err)
	}
	dummyState, err := value.ToNumber(stateValue)
	if err != nil {
		return fmt.Errorf("dummy_state: %w", err)
	}

	dummyText, err := macro.ResolveString(ctx, "$dummy_text$", resolvers, resolvedMacros, useResolvedMacros)
	if err != nil {
		return fmt.Errorf("resolve dummy_text: %w", err)
	}

	if resolvedMacros != nil && !useResolvedMacros {
		return nil
	}

	output, perfdata := check.ParseCheckOutput(dummyText)

	exitStatus := int(dummyState)
	cr.Command = "dummy"
	if command := checkable.CheckCommand(); command != nil {
		cr.Command = command.Name
	}
	cr.ExitStatus = exitStatus
	cr.State = check.ExitStatusToState(exitStatus)
	cr.Output = output
	cr.PerformanceData = check.SplitPerfdata(perfdata)

	now := clock.FromContext(ctx).Now()
	cr.ExecutionStart = now
	cr.ExecutionEnd = now

	ctxlog.FromContext(ctx).Debug("Executed dummy check.", "checkable", checkable.Name().String(), "exit_status", exitStatus)

	checkable.ProcessCheckResult(ctx, cr)
	return nil
}
