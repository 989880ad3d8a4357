package interpolate

import (
	"github.com/pkg/errors"
)

var (
	// ErrDegree is returned when a spline degree outside
	// [MinDegree, MaxDegree] is requested.
	ErrDegree = errors.New("spline degree out of range")
	// ErrLength is returned when the x and y tables differ in length.
	ErrLength = errors.New("x and y tables have different lengths")
	// ErrTooFewPoints is returned when there are not more points than the
	// spline degree.
	ErrTooFewPoints = errors.New("too few points for spline degree")
	// ErrDuplicateX is returned when two samples share an x value.
	ErrDuplicateX = errors.New("duplicate x value")
	// ErrNonFinite is returned when a sample is NaN or infinite.
	ErrNonFinite = errors.New("non-finite sample")
	// ErrSingular is returned when the collocation system cannot be solved.
	ErrSingular = errors.New("singular collocation matrix")
)
