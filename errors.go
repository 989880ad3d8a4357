package splinterp

import (
	"fmt"

	"github.com/phil-mansfield/splinterp/io"
	"github.com/phil-mansfield/splinterp/math/interpolate"
	"github.com/pkg/errors"
)

// Kind categorizes the ways an interpolation can fail.
type Kind int

const (
	// FileAccess means the sample file is missing or unreadable.
	FileAccess Kind = iota + 1
	// Parse means a row of the sample file isn't numeric or is too short.
	Parse
	// Fitting means the samples can't support a spline of the requested
	// degree.
	Fitting
	// Validation means a parameter was out of range.
	Validation
)

func (k Kind) String() string {
	switch k {
	case FileAccess:
		return "file access"
	case Parse:
		return "parse"
	case Fitting:
		return "fitting"
	case Validation:
		return "validation"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by every failing operation in this package.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string { return fmt.Sprintf("%s error: %s", e.Kind, e.Err) }
func (e *Error) Unwrap() error { return e.Err }

// KindOf returns the Kind of err, or 0 if err didn't come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// classify wraps an error from io or interpolate in an *Error.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var kind Kind
	switch {
	case errors.Is(err, io.ErrFileAccess):
		kind = FileAccess
	case errors.Is(err, io.ErrParse):
		kind = Parse
	case errors.Is(err, io.ErrConfig), errors.Is(err, interpolate.ErrDegree):
		kind = Validation
	default:
		kind = Fitting
	}
	return &Error{kind, err}
}
