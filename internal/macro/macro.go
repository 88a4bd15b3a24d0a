// Package macro expands $macro$ references in strings.
//
// A macro is either unqualified ($dummy_state$), in which case the custom
// variables of all resolvers are searched in order, or qualified with the
// name of a resolver ($host.address$, $service.vars.port$). "$$" expands
// to a single '$'.
package macro

import (
	"context"
	"fmt"

	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/ctxlog"
	"github.com/tsatke/sentinel/internal/value"
)

// MaxRecursion is the maximum depth of macros that expand into strings
// containing further macros.
const MaxRecursion = 15

type resolution struct {
	ctx               context.Context
	resolvers         ResolverList
	resolvedMacros    *value.Dictionary
	useResolvedMacros bool
	stack             *expansionStack
}

// Resolve expands all macros in str.
//
// If str consists of exactly one macro, the resolved value is returned as
// is, keeping its type. Otherwise, the result is a value.String.
//
// If useResolvedMacros is set, macros are looked up in resolvedMacros only.
// Otherwise every resolved macro is recorded in resolvedMacros, if that is
// not nil. Macros that cannot be resolved expand to nothing.
func Resolve(ctx context.Context, str base.String, resolvers ResolverList, resolvedMacros *value.Dictionary, useResolvedMacros bool) (value.Value, error) {
	r := &resolution{
		ctx:               ctx,
		resolvers:         resolvers,
		resolvedMacros:    resolvedMacros,
		useResolvedMacros: useResolvedMacros,
		stack:             newExpansionStack(MaxRecursion),
	}
	return r.resolveString(str)
}

// ResolveString is like Resolve, but always converts the result into a
// base.String.
func ResolveString(ctx context.Context, str base.String, resolvers ResolverList, resolvedMacros *value.Dictionary, useResolvedMacros bool) (base.String, error) {
	v, err := Resolve(ctx, str, resolvers, resolvedMacros, useResolvedMacros)
	if err != nil {
		return "", err
	}
	return base.FromValue(v), nil
}

func (r *resolution) resolveString(str base.String) (value.Value, error) {
	result := str
	offset := 0

	for {
		first := result.Find("$", offset)
		if first == base.NPos {
			break
		}
		second := result.Find("$", first+1)
		if second == base.NPos {
			return nil, fmt.Errorf("%w: %q", ErrUnterminated, str.String())
		}

		name := result.SubStr(first+1, second-first-1)
		if name.IsEmpty() {
			result.Replace(first, 2, "$")
			offset = first + 1
			continue
		}

		resolved, err := r.resolveMacro(name)
		if err != nil {
			return nil, err
		}

		if first == 0 && second == result.Len()-1 && offset == 0 {
			return resolved, nil
		}

		switch resolved.Type() {
		case value.TypeArray, value.TypeDictionary:
			return nil, fmt.Errorf("%w: $%s$", ErrMixedTypes, name)
		}

		replacement := base.FromValue(resolved)
		result.Replace(first, second-first+1, replacement)
		offset = first + replacement.Len()
	}

	return value.NewString(result.String()), nil
}

func (r *resolution) resolveMacro(name base.String) (value.Value, error) {
	logger := ctxlog.FromContext(r.ctx)

	if r.useResolvedMacros {
		val, ok := r.resolvedMacros.Get(name.String())
		if !ok {
			logger.Warn("Macro is not defined.", "macro", name.String())
			return value.Nil, nil
		}
		return val, nil
	}

	val, ok := r.lookup(name)
	if !ok {
		logger.Warn("Macro is not defined.", "macro", name.String())
		return value.Nil, nil
	}

	if !r.stack.Push(StackFrame{Name: name.String()}) {
		return nil, RecursionError{
			Message: "infinite recursion detected while resolving macros",
			Stack:   r.stack.Slice(),
		}
	}
	defer r.stack.Pop()

	if fn, isFn := val.(*value.Function); isFn {
		result, err := fn.Call()
		if err != nil {
			return nil, fmt.Errorf("call '%s' for macro $%s$: %w", fn.Name, name, err)
		}
		val = result
	}

	if val.Type() == value.TypeString {
		expanded, err := r.resolveString(base.FromValue(val))
		if err != nil {
			return nil, err
		}
		val = expanded
	}

	logger.Debug("Resolved macro.", "macro", name.String(), "value", val.String())
	if r.resolvedMacros != nil {
		r.resolvedMacros.Set(name.String(), val)
	}
	return val, nil
}

func (r *resolution) lookup(name base.String) (value.Value, bool) {
	dot := name.Find(".", 0)
	if dot == base.NPos {
		for _, e := range r.resolvers {
			if val, ok := e.Resolver.Vars().Get(name.String()); ok {
				return val, true
			}
		}
		return nil, false
	}

	resolver, ok := r.resolvers.find(name.SubStr(0, dot))
	if !ok {
		return nil, false
	}
	return resolver.ResolveMacro(name.SubStr(dot+1, base.NPos))
}
