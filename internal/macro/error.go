package macro

import (
	"errors"
	"strings"
)

var (
	// ErrUnterminated is returned if a '$' has no matching closing '$'.
	ErrUnterminated = errors.New("closing $ not found in macro format string")
	// ErrMixedTypes is returned if a macro that resolves to an array or a
	// dictionary is used inside a string.
	ErrMixedTypes = errors.New("mixing both strings and non-strings in macros is not allowed")
)

// RecursionError is returned if macros keep expanding into other macros
// beyond the maximum depth. Stack holds the macros that were being
// expanded, innermost first.
type RecursionError struct {
	Message string
	Stack   []StackFrame
}

func (e RecursionError) Error() string {
	names := make([]string, len(e.Stack))
	for i, frame := range e.Stack {
		names[len(e.Stack)-1-i] = frame.String()
	}
	return e.Message + " (" + strings.Join(names, " -> ") + ")"
}
