package sentinel

import "github.com/tsatke/sentinel/internal/macro"

// Error is the error of a check whose macros expand into each other
// endlessly. Stack holds the names of the macros that were being expanded,
// innermost first.
type Error struct {
	Message string
	Stack   []StackFrame
}

type StackFrame struct {
	Name string
}

func errorFromInternal(err macro.RecursionError) Error {
	e := Error{}
	e.Message = err.Error()
	e.Stack = make([]StackFrame, len(err.Stack))
	for i, frame := range err.Stack {
		e.Stack[i] = StackFrame{
			Name: frame.Name,
		}
	}
	return e
}

func (e Error) Error() string {
	return e.Message
}
