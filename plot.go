package splinterp

import (
	"fmt"
	"math"

	plt "github.com/phil-mansfield/pyplot"
)

const plotPoints = 200

// plotRange returns the x range which covers both the table and the query
// points.
func plotRange(f *Fit, qs []float64) (lo, hi float64) {
	lo, hi = f.Spline.Range()
	for _, q := range qs {
		lo, hi = math.Min(lo, q), math.Max(hi, q)
	}
	return lo, hi
}

func linspace(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	dx := (hi - lo) / float64(n-1)
	for i := range xs {
		xs[i] = lo + dx*float64(i)
	}
	return xs
}

// Plot saves an image of the fit to fname along with the query points, qs,
// and their values. The input table is drawn when the fit isn't a
// derivative. Rendering needs python and matplotlib on the path.
func Plot(fname string, f *Fit, qs, vals []float64) {
	lo, hi := plotRange(f, qs)
	xs := linspace(lo, hi, plotPoints)
	ys := f.EvalAll(xs)

	plt.Figure()
	plt.Plot(xs, ys, "b", plt.LW(2))
	if f.Derivative == 0 {
		plt.Plot(f.Xs, f.Ys, "ok")
	}
	plt.Plot(qs, vals, "or")

	if f.Derivative == 0 {
		plt.Title(fmt.Sprintf("Degree %d spline", f.Spline.Degree()))
	} else {
		plt.Title(fmt.Sprintf(
			"Degree %d spline, derivative %d", f.Spline.Degree(), f.Derivative,
		))
	}
	plt.XLabel(`$x$`, plt.FontSize(16))
	plt.YLabel(`$y$`, plt.FontSize(16))

	plt.SaveFig(fname)
	plt.Execute()
}
