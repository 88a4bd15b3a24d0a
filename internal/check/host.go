package check

import (
	"context"

	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/macro"
	"github.com/tsatke/sentinel/internal/value"
)

var _ Checkable = (*Host)(nil)

type Host struct {
	checkable

	name    base.String
	Address base.String
}

// NewHost creates a host. If displayName is empty, name is used.
func NewHost(name, displayName, address base.String, command *CheckCommand, vars *value.Dictionary) *Host {
	if displayName.IsEmpty() {
		displayName = name
	}
	return &Host{
		checkable: newCheckable(displayName, command, vars),
		name:      name,
		Address:   address,
	}
}

func (h *Host) Name() base.String { return h.name }

func (h *Host) ProcessCheckResult(ctx context.Context, cr *Result) {
	h.processCheckResult(ctx, h.name, cr)
}

func (h *Host) ResolveMacro(attr base.String) (value.Value, bool) {
	if attr == "address" {
		return value.NewString(h.Address.String()), true
	}
	return h.resolveMacro(h.name, attr)
}

func (h *Host) Resolvers() macro.ResolverList {
	resolvers := macro.ResolverList{
		{Name: "host", Resolver: h},
	}
	if h.command != nil {
		resolvers = append(resolvers, macro.Entry{Name: "command", Resolver: h.command})
	}
	return resolvers
}
