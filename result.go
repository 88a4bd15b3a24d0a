package sentinel

import (
	"time"

	"github.com/tsatke/sentinel/internal/check"
	"github.com/tsatke/sentinel/internal/engine"
)

type State uint8

const (
	StateOK State = iota
	StateWarning
	StateCritical
	StateUnknown
)

func (s State) String() string {
	return check.State(s).String()
}

// Result is the result of the check of a single host or service.
type Result struct {
	// Name is the name of the host, or "<host>!<service>" for services.
	Name            string
	State           State
	ExitStatus      int
	Output          string
	PerformanceData []string
	ExecutionStart  time.Time
	ExecutionEnd    time.Time
	// Err is the reason why the check failed, if it did. If the macros of
	// the check expand into each other endlessly, Err is of type Error.
	Err error
}

type Results []Result

func (r Results) Count() int {
	return len(r)
}

// Get returns the result of the host or service with the given name.
func (r Results) Get(name string) (Result, bool) {
	for _, res := range r {
		if res.Name == name {
			return res, true
		}
	}
	return Result{}, false
}

func resultsFromInternal(reports ...engine.Report) Results {
	var results Results

	for _, report := range reports {
		cr := report.Result
		res := Result{
			Name:           report.Checkable.Name().String(),
			State:          State(cr.State),
			ExitStatus:     cr.ExitStatus,
			Output:         cr.Output.String(),
			ExecutionStart: cr.ExecutionStart,
			ExecutionEnd:   cr.ExecutionEnd,
		}
		for _, pd := range cr.PerformanceData {
			res.PerformanceData = append(res.PerformanceData, pd.String())
		}
		if report.Err != nil {
			res.Err = convertError(report.Err)
		}
		results = append(results, res)
	}

	return results
}
