package check

import (
	"github.com/tsatke/sentinel/internal/base"
	"github.com/tsatke/sentinel/internal/macro"
	"github.com/tsatke/sentinel/internal/value"
)

var _ macro.Resolver = (*CheckCommand)(nil)

// CheckCommand describes how a checkable is checked. Method names the
// check method that executes it, Vars holds defaults for macros.
type CheckCommand struct {
	Name   base.String
	Method base.String
	vars   *value.Dictionary
}

func NewCheckCommand(name, method base.String, vars *value.Dictionary) *CheckCommand {
	if vars == nil {
		vars = value.NewDictionary()
	}
	return &CheckCommand{
		Name:   name,
		Method: method,
		vars:   vars,
	}
}

func (c *CheckCommand) Vars() *value.Dictionary { return c.vars }

func (c *CheckCommand) ResolveMacro(attr base.String) (value.Value, bool) {
	switch attr {
	case "name":
		return value.NewString(c.Name.String()), true
	case "method":
		return value.NewString(c.Method.String()), true
	}
	return macro.ResolveVars(c.vars, attr)
}
