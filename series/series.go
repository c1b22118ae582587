// Package series contains small helpers for one-dimensional data series:
// NaN-aware reductions, the logarithmic remapping used by the plot items,
// and adaptors for the data interfaces of gonum.org/v1/plot.
package series

import (
	"math"
	"sort"

	"gonum.org/v1/plot/plotter"
)

// MinMax returns the smallest and largest finite value of vs. Both results
// are NaN when vs contains no finite value.
func MinMax(vs []float64) (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		if !(lo < v) {
			lo = v
		}
		if !(hi > v) {
			hi = v
		}
	}
	return lo, hi
}

// ZeroNonFinite returns a copy of vs with every NaN and infinity replaced
// by 0.
func ZeroNonFinite(vs []float64) []float64 {
	out := make([]float64, len(vs))
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = 0
		} else {
			out[i] = v
		}
	}
	return out
}

// LogScale remaps vs to decimal logarithms. Values at or below zero, NaN
// and infinities are clamped to a floor of one tenth of the smallest
// positive value before taking the logarithm, so they stay one decade below
// the real data instead of producing -Inf. A series without any positive
// value maps to all zeros.
func LogScale(vs []float64) []float64 {
	floor := math.Inf(1)
	for _, v := range vs {
		if v > 0 && !math.IsInf(v, 1) && v < floor {
			floor = v
		}
	}
	out := make([]float64, len(vs))
	if math.IsInf(floor, 1) {
		return out
	}
	floor /= 10
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < floor {
			v = floor
		}
		out[i] = math.Log10(v)
	}
	return out
}

// DropNaNRows returns copies of x and each column in ys with every row
// removed whose x value is not finite. All columns must have the length of
// x.
func DropNaNRows(x []float64, ys ...[]float64) ([]float64, [][]float64) {
	keep := make([]int, 0, len(x))
	for i, v := range x {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		keep = append(keep, i)
	}

	xc := make([]float64, len(keep))
	for j, i := range keep {
		xc[j] = x[i]
	}
	cols := make([][]float64, len(ys))
	for c, col := range ys {
		cc := make([]float64, len(keep))
		for j, i := range keep {
			cc[j] = col[i]
		}
		cols[c] = cc
	}
	return xc, cols
}

// AdjacentSpacing returns the distance from the sample with the smallest x
// to its nearest neighbour, and likewise for the sample with the largest x.
// The input need not be sorted. With fewer than two samples both spacings
// fall back to def.
func AdjacentSpacing(x []float64, def float64) (left, right float64) {
	if len(x) < 2 {
		return def, def
	}
	lo, hi := MinMax(x)
	left, right = math.Inf(1), math.Inf(1)
	for _, v := range x {
		if d := v - lo; d > 0 && d < left {
			left = d
		}
		if d := hi - v; d > 0 && d < right {
			right = d
		}
	}
	if math.IsInf(left, 1) { // all x equal
		left = def
	}
	if math.IsInf(right, 1) {
		right = def
	}
	return left, right
}

// MinSpacing returns the smallest distance between two distinct values of
// x, or def if there is none.
func MinSpacing(x []float64, def float64) float64 {
	xs := append([]float64(nil), x...)
	sort.Float64s(xs)
	lo := math.Inf(1)
	for i := 1; i < len(xs); i++ {
		if d := xs[i] - xs[i-1]; d > 0 && d < lo {
			lo = d
		}
	}
	if math.IsInf(lo, 1) {
		return def
	}
	return lo
}

// FromXYer copies the points of a gonum/plot data source into plain
// coordinate slices.
func FromXYer(xy plotter.XYer) (x, y []float64) {
	n := xy.Len()
	x = make([]float64, n)
	y = make([]float64, n)
	for i := 0; i < n; i++ {
		x[i], y[i] = xy.XY(i)
	}
	return x, y
}
