package check

import (
	"context"

	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/macro"
	"github.com/tsatke/sentinel/internal/value"
)

var _ Checkable = (*Service)(nil)

// Service is a checkable that belongs to a host. Its unique name is
// "<host>!<short name>".
type Service struct {
	checkable

	Host      *Host
	shortName base.String
}

// NewService creates a service on host. If displayName is empty, the short
// name is used.
func NewService(host *Host, shortName, displayName base.String, command *CheckCommand, vars *value.Dictionary) *Service {
	if displayName.IsEmpty() {
		displayName = shortName
	}
	return &Service{
		checkable: newCheckable(displayName, command, vars),
		Host:      host,
		shortName: shortName,
	}
}

func (s *Service) Name() base.String {
	return s.Host.Name() + "!" + s.shortName
}

func (s *Service) ShortName() base.String { return s.shortName }

func (s *Service) ProcessCheckResult(ctx context.Context, cr *Result) {
	s.processCheckResult(ctx, s.Name(), cr)
}

func (s *Service) ResolveMacro(attr base.String) (value.Value, bool) {
	return s.resolveMacro(s.shortName, attr)
}

func (s *Service) Resolvers() macro.ResolverList {
	resolvers := macro.ResolverList{
		{Name: "service", Resolver: s},
		{Name: "host", Resolver: s.Host},
	}
	if s.command != nil {
		resolvers = append(resolvers, macro.Entry{Name: "command", Resolver: s.command})
	}
	return resolvers
}
