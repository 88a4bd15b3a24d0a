package check

import (
	"time"

	"github.com/google/uuid"
	"github.com/tsatke/sentinel/internal/base"
)

// Result is the outcome of a single check execution.
type Result struct {
	ID              uuid.UUID
	Command         base.String
	State           State
	ExitStatus      int
	Output          base.String
	PerformanceData []base.String
	ExecutionStart  time.Time
	ExecutionEnd    time.Time
}

// NewResult creates an empty result with a fresh ID.
func NewResult() *Result {
	return &Result{
		ID:    uuid.New(),
		State: StateUnknown,
	}
}

func (r *Result) ExecutionTime() time.Duration {
	return r.ExecutionEnd.Sub(r.ExecutionStart)
}
