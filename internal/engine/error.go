package engine

import "github.com/tsatke/sentinel/internal/base"

// CheckError is returned when the check method of a checkable fails.
type CheckError struct {
	Checkable base.String
	Err       error
}

func (e CheckError) Error() string {
	return "check " + e.Checkable.String() + ": " + e.Err.Error()
}

func (e CheckError) Unwrap() error {
	return e.Err
}
