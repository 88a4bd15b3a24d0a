package macro

import (
	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/value"
)

// Resolver is an object that macros can refer to, e.g. a host.
type Resolver interface {
	// ResolveMacro resolves an attribute of the object, such as "name"
	// or "vars.address". ok is false if the attribute does not exist.
	ResolveMacro(attr base.String) (val value.Value, ok bool)
	// Vars returns the custom variables of the object. Macros without an
	// object prefix are looked up in the custom variables of all resolvers.
	Vars() *value.Dictionary
}

// Entry registers a Resolver under the object name that macros use to
// refer to it.
type Entry struct {
	Name     base.String
	Resolver Resolver
}

// ResolverList is an ordered list of resolvers. Unqualified macros are
// looked up in order, the first match wins.
type ResolverList []Entry

func (l ResolverList) find(name base.String) (Resolver, bool) {
	for _, e := range l {
		if e.Name == name {
			return e.Resolver, true
		}
	}
	return nil, false
}

// LookupPath walks a dot separated path through nested dictionaries.
//
//	LookupPath(vars, "disks.root.warning")
func LookupPath(d *value.Dictionary, path base.String) (value.Value, bool) {
	var current value.Value = d
	for _, key := range path.Split(".") {
		dict, ok := current.(*value.Dictionary)
		if !ok || dict == nil {
			return nil, false
		}
		current, ok = dict.Get(key.String())
		if !ok {
			return nil, false
		}
	}
	return current, true
}

// ResolveVars resolves attributes of the form "vars.<path>" against d.
// It is meant to be used by Resolver implementations.
func ResolveVars(d *value.Dictionary, attr base.String) (value.Value, bool) {
	const prefix = base.String("vars.")
	if attr.Len() <= prefix.Len() || attr.SubStr(0, prefix.Len()) != prefix {
		return nil, false
	}
	return LookupPath(d, attr.SubStr(prefix.Len(), base.NPos))
}
