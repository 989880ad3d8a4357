/*package splinterp fits interpolating splines to the columns of a text table
and evaluates them.
*/
package splinterp

import (
	"github.com/phil-mansfield/splinterp/io"
	"github.com/phil-mansfield/splinterp/math/interpolate"
	"github.com/pkg/errors"
)

// Fit is a spline fit to the samples of a table file.
type Fit struct {
	// Xs and Ys are the samples in file order.
	Xs, Ys []float64
	Spline *interpolate.BSpline
	// Derivative is the order of the derivative returned by Eval and
	// EvalAll.
	Derivative int
}

var _ interpolate.Interpolator = &Fit{}

// FitFile reads the sample columns of fname and fits a spline to them as
// described by con. Parameters are checked before the file is touched.
func FitFile(fname string, con *io.InterpolateConfig) (*Fit, error) {
	if con.Degree < interpolate.MinDegree || con.Degree > interpolate.MaxDegree {
		return nil, classify(errors.Wrapf(
			interpolate.ErrDegree, "k = %d, must be in range [%d, %d]",
			con.Degree, interpolate.MinDegree, interpolate.MaxDegree,
		))
	} else if err := con.CheckInit(); err != nil {
		return nil, classify(err)
	}

	xs, ys, err := io.ReadSamples(fname, con.XColumn, con.YColumn)
	if err != nil {
		return nil, classify(err)
	}

	sp, err := interpolate.NewBSpline(xs, ys, con.Degree)
	if err != nil {
		return nil, classify(errors.Wrap(err, fname))
	}

	return &Fit{Xs: xs, Ys: ys, Spline: sp, Derivative: con.Derivative}, nil
}

// Eval evaluates the fit (or its derivative) at x.
func (f *Fit) Eval(x float64) float64 {
	return f.Spline.Diff(x, f.Derivative)
}

// EvalAll evaluates the fit (or its derivative) at every element of xs. If
// an output array is given, the output is written to that array.
func (f *Fit) EvalAll(xs []float64, out ...[]float64) []float64 {
	return f.Spline.Deriv(f.Derivative).EvalAll(xs, out...)
}

// ReadConfig reads an [Interpolate] config file. A missing or unreadable
// file is a FileAccess error, anything wrong with its contents a Validation
// error.
func ReadConfig(fname string) (*io.InterpolateConfig, error) {
	con, err := io.ReadInterpolateConfig(fname)
	if err != nil {
		return nil, classify(err)
	}
	return con, nil
}

func degreeConfig(k int) *io.InterpolateConfig {
	con := io.DefaultInterpolateWrapper().Interpolate
	con.Degree = k
	return &con
}

// Interpolate fits a spline of degree k to the first and third columns of
// fname and evaluates it at x.
func Interpolate(fname string, x float64, k int) (float64, error) {
	f, err := FitFile(fname, degreeConfig(k))
	if err != nil {
		return 0, err
	}
	return f.Eval(x), nil
}

// InterpolateAll is Interpolate for a sequence of points. The result has one
// value for each element of xs, in the same order.
func InterpolateAll(fname string, xs []float64, k int) ([]float64, error) {
	f, err := FitFile(fname, degreeConfig(k))
	if err != nil {
		return nil, err
	}
	return f.EvalAll(xs), nil
}
