// Package methods implements check methods, the Go functions that execute
// the check of a check command.
package methods

import (
	"context"
	"fmt"
	"sort"

	"github.com/tsatke/sentinel/internal/check"
	"github.com/tsatke/sentinel/internal/value"
)

// Func executes a check for checkable and stores the outcome in cr.
//
// If resolvedMacros is not nil and useResolvedMacros is false, the method
// only records the macros it would use into resolvedMacros and leaves cr
// untouched. If useResolvedMacros is true, macros are taken from
// resolvedMacros instead of being resolved against the checkable.
type Func func(ctx context.Context, checkable check.Checkable, cr *check.Result, resolvedMacros *value.Dictionary, useResolvedMacros bool) error

// Registry maps method names to their implementation.
type Registry struct {
	methods map[string]Func
}

// NewRegistry creates a registry that already contains the built in
// methods.
func NewRegistry() *Registry {
	r := &Registry{
		methods: make(map[string]Func),
	}
	r.Register("dummy", DummyCheckTask)
	return r
}

// Register adds fn under name, replacing any method with the same name.
func (r *Registry) Register(name string, fn Func) {
	r.methods[name] = fn
}

func (r *Registry) Lookup(name string) (Func, error) {
	fn, ok := r.methods[name]
	if !ok {
		return nil, fmt.Errorf("check method '%s' does not exist", name)
	}
	return fn, nil
}

// Names returns the names of all registered methods in ascending order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.methods))
	for name := range r.methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
