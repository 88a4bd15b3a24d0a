package check

// State is the state of a checkable as determined by its last check.
type State uint8

const (
	StateOK State = iota
	StateWarning
	StateCritical
	StateUnknown
)

func (s State) String() string {
	switch s {
	case StateOK:
		return "OK"
	case StateWarning:
		return "WARNING"
	case StateCritical:
		return "CRITICAL"
	}
	return "UNKNOWN"
}

// ExitStatusToState maps a plugin exit status to a State. Every status
// other than 0, 1 and 2 is unknown.
func ExitStatusToState(exitStatus int) State {
	switch exitStatus {
	case 0:
		return StateOK
	case 1:
		return StateWarning
	case 2:
		return StateCritical
	}
	return StateUnknown
}
