package interpolate

import (
	"fmt"
	"math"
	"sort"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

const (
	// MinDegree and MaxDegree bound the polynomial degree of a BSpline.
	MinDegree = 1
	MaxDegree = 5
	// DefaultDegree gives a cubic spline.
	DefaultDegree = 3
)

// BSpline is a 1D interpolating spline of degree k stored in B-spline form.
// It passes through every point of the table it was created from.
//
// A BSpline is immutable after construction and may be shared between
// goroutines.
type BSpline struct {
	ts, cs []float64
	k      int
}

// NewBSpline fits an interpolating spline of degree k to a table of x and y
// values. The table does not need to be sorted, but every x value must be
// distinct, and there must be more points than the degree of the spline.
//
// Knots are placed the way FITPACK does for a zero smoothing factor: k+1
// copies of each end point, then the interior data points for odd k or the
// midpoints between them for even k.
//
// xs and ys are not modified or retained.
func NewBSpline(xs, ys []float64, k int) (*BSpline, error) {
	if k < MinDegree || k > MaxDegree {
		return nil, errors.Wrapf(
			ErrDegree, "k = %d, must be in range [%d, %d]",
			k, MinDegree, MaxDegree,
		)
	} else if len(xs) != len(ys) {
		return nil, errors.Wrapf(
			ErrLength, "len(xs) = %d, but len(ys) = %d", len(xs), len(ys),
		)
	} else if len(xs) <= k {
		return nil, errors.Wrapf(
			ErrTooFewPoints, "table has %d points, but k = %d needs %d",
			len(xs), k, k+1,
		)
	}

	for i := range xs {
		if !finite(xs[i]) || !finite(ys[i]) {
			return nil, errors.Wrapf(
				ErrNonFinite, "point %d is (%g, %g)", i, xs[i], ys[i],
			)
		}
	}

	sxs, sys := sortTable(xs, ys)
	for i := 1; i < len(sxs); i++ {
		if sxs[i] == sxs[i-1] {
			return nil, errors.Wrapf(
				ErrDuplicateX, "x = %g appears more than once", sxs[i],
			)
		}
	}

	sp := &BSpline{k: k, ts: knots(sxs, k)}
	if err := sp.solve(sxs, sys); err != nil {
		return nil, err
	}
	return sp, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// sortTable returns copies of xs and ys sorted by x.
func sortTable(xs, ys []float64) (sxs, sys []float64) {
	sxs = make([]float64, len(xs))
	copy(sxs, xs)
	idxs := make([]int, len(xs))
	floats.Argsort(sxs, idxs)

	sys = make([]float64, len(ys))
	for i, j := range idxs {
		sys[i] = ys[j]
	}
	return sxs, sys
}

// knots returns the m + k + 1 knots of an interpolating spline through the m
// sorted points xs.
func knots(xs []float64, k int) []float64 {
	m := len(xs)
	n := m + k + 1
	ts := make([]float64, n)

	for i := 0; i <= k; i++ {
		ts[i], ts[n-1-i] = xs[0], xs[m-1]
	}

	half := k / 2
	for l := 0; l < m-k-1; l++ {
		if k%2 == 1 {
			ts[k+1+l] = xs[half+1+l]
		} else {
			ts[k+1+l] = (xs[half+l] + xs[half+1+l]) / 2
		}
	}

	return ts
}

// solve finds the coefficients which make the spline pass through every
// point in the table.
func (sp *BSpline) solve(xs, ys []float64) error {
	m, k := len(xs), sp.k
	a := mat.NewDense(m, m, nil)

	var bs [MaxDegree + 1]float64
	for i, x := range xs {
		l := sp.span(x)
		sp.basis(l, x, bs[:k+1])
		for r := 0; r <= k; r++ {
			a.Set(i, l-k+r, bs[r])
		}
	}

	var c mat.VecDense
	if err := c.SolveVec(a, mat.NewVecDense(m, ys)); err != nil {
		return errors.Wrap(ErrSingular, err.Error())
	}

	sp.cs = make([]float64, m)
	for i := range sp.cs {
		sp.cs[i] = c.AtVec(i)
	}
	return nil
}

// span returns the index l of the knot interval [t_l, t_l+1) which x is
// evaluated in. Points outside the table use the first or last interval, so
// the end polynomials are continued.
func (sp *BSpline) span(x float64) int {
	inner := sp.ts[sp.k+1 : len(sp.ts)-sp.k-1]
	return sp.k + sort.Search(len(inner), func(i int) bool {
		return inner[i] > x
	})
}

// basis writes the k+1 B-splines which are non-zero on interval l, evaluated
// at x, to bs. bs[r] is the value of basis function l-k+r.
func (sp *BSpline) basis(l int, x float64, bs []float64) {
	ts := sp.ts
	var left, right [MaxDegree + 1]float64

	bs[0] = 1
	for j := 1; j <= sp.k; j++ {
		left[j] = x - ts[l+1-j]
		right[j] = ts[l+j] - x
		saved := 0.0
		for r := 0; r < j; r++ {
			tmp := bs[r] / (right[r+1] + left[j-r])
			bs[r] = saved + right[r+1]*tmp
			saved = left[j-r] * tmp
		}
		bs[j] = saved
	}
}

// Eval computes the value of the spline at the given point. Points outside
// the range of the table are extrapolated with the polynomial of the nearest
// segment.
func (sp *BSpline) Eval(x float64) float64 {
	var bs [MaxDegree + 1]float64
	l := sp.span(x)
	sp.basis(l, x, bs[:sp.k+1])

	sum := 0.0
	for r := 0; r <= sp.k; r++ {
		sum += sp.cs[l-sp.k+r] * bs[r]
	}
	return sum
}

// EvalAll evaluates the spline at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
//
// If more than one output array is provided, only the first is used.
func (sp *BSpline) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i, x := range xs {
		out[0][i] = sp.Eval(x)
	}
	return out[0]
}

// Deriv returns the spline's derivative of the given order as a new spline
// of degree k - order. Orders above k give a spline which is zero
// everywhere.
func (sp *BSpline) Deriv(order int) *BSpline {
	if order < 0 {
		panic(fmt.Sprintf("Derivative order %d is negative.", order))
	} else if order > sp.k {
		return &BSpline{ts: sp.ts, cs: make([]float64, len(sp.cs)), k: sp.k}
	}

	d := sp
	for o := 0; o < order; o++ {
		k, ts, cs := d.k, d.ts, d.cs
		dcs := make([]float64, len(cs)-1)
		for i := range dcs {
			dcs[i] = float64(k) * (cs[i+1] - cs[i]) / (ts[i+k+1] - ts[i+1])
		}
		d = &BSpline{ts: ts[1 : len(ts)-1], cs: dcs, k: k - 1}
	}
	return d
}

// Diff computes the derivative of spline at the given point to the
// specified order. Order 0 is the same as Eval.
func (sp *BSpline) Diff(x float64, order int) float64 {
	if order == 0 {
		return sp.Eval(x)
	}
	return sp.Deriv(order).Eval(x)
}

// Degree returns the polynomial degree of the spline.
func (sp *BSpline) Degree() int { return sp.k }

// Knots returns a copy of the spline's knot vector.
func (sp *BSpline) Knots() []float64 {
	ts := make([]float64, len(sp.ts))
	copy(ts, sp.ts)
	return ts
}

// Coeffs returns a copy of the spline's B-spline coefficients.
func (sp *BSpline) Coeffs() []float64 {
	cs := make([]float64, len(sp.cs))
	copy(cs, sp.cs)
	return cs
}

// Range returns the smallest and largest x values of the table the spline was
// fit to.
func (sp *BSpline) Range() (lo, hi float64) {
	return sp.ts[0], sp.ts[len(sp.ts)-1]
}
