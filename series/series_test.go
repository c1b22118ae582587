package series

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

func near(a, b float64) bool {
	if math.IsNaN(a) || math.IsNaN(b) {
		return math.IsNaN(a) && math.IsNaN(b)
	}
	return math.Abs(a-b) < 1e-9
}

func slicesNear(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !near(a[i], b[i]) {
			return false
		}
	}
	return true
}

var logScaleTests = []struct {
	in, want []float64
}{
	{[]float64{0, 1, 10}, []float64{-1, 0, 1}},
	{[]float64{-1e-8, 0, 1e-8, 1e-4, 10}, []float64{-9, -9, -8, -4, 1}},
	{[]float64{-1, 0}, []float64{0, 0}},
	{[]float64{}, []float64{}},
	{[]float64{nan, 100}, []float64{1, 2}},
}

func TestLogScale(t *testing.T) {
	for i, tc := range logScaleTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := LogScale(tc.in); !slicesNear(got, tc.want) {
				t.Errorf("LogScale(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

var minMaxTests = []struct {
	in     []float64
	lo, hi float64
}{
	{[]float64{3, 1, 2}, 1, 3},
	{[]float64{nan, 1, math.Inf(1)}, 1, 1},
	{[]float64{nan, nan}, nan, nan},
	{nil, nan, nan},
	{[]float64{-5}, -5, -5},
}

func TestMinMax(t *testing.T) {
	for i, tc := range minMaxTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			lo, hi := MinMax(tc.in)
			if !near(lo, tc.lo) || !near(hi, tc.hi) {
				t.Errorf("MinMax(%v) = %v, %v, want %v, %v",
					tc.in, lo, hi, tc.lo, tc.hi)
			}
		})
	}
}

func TestZeroNonFinite(t *testing.T) {
	in := []float64{1, nan, math.Inf(-1), 4}
	want := []float64{1, 0, 0, 4}
	if got := ZeroNonFinite(in); !slicesNear(got, want) {
		t.Errorf("ZeroNonFinite(%v) = %v, want %v", in, got, want)
	}
}

func TestDropNaNRows(t *testing.T) {
	x := []float64{1, nan, 3, math.Inf(1), 5}
	y := []float64{10, 20, 30, 40, 50}
	z := []float64{-1, -2, -3, -4, -5}

	gx, cols := DropNaNRows(x, y, z)
	if !slicesNear(gx, []float64{1, 3, 5}) {
		t.Errorf("x = %v, want [1 3 5]", gx)
	}
	if !slicesNear(cols[0], []float64{10, 30, 50}) {
		t.Errorf("y = %v, want [10 30 50]", cols[0])
	}
	if !slicesNear(cols[1], []float64{-1, -3, -5}) {
		t.Errorf("z = %v, want [-1 -3 -5]", cols[1])
	}
}

var adjacentSpacingTests = []struct {
	in          []float64
	left, right float64
}{
	{[]float64{-0.1, 0, 0.1, 0.2}, 0.1, 0.1},
	{[]float64{0, 1, 4}, 1, 3},
	{[]float64{4, 0, 1}, 1, 3}, // order must not matter
	{[]float64{2}, 0.9, 0.9},
	{nil, 0.9, 0.9},
	{[]float64{3, 3, 3}, 0.9, 0.9},
}

func TestAdjacentSpacing(t *testing.T) {
	for i, tc := range adjacentSpacingTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			left, right := AdjacentSpacing(tc.in, 0.9)
			if !near(left, tc.left) || !near(right, tc.right) {
				t.Errorf("AdjacentSpacing(%v) = %v, %v, want %v, %v",
					tc.in, left, right, tc.left, tc.right)
			}
		})
	}
}

func TestMinSpacing(t *testing.T) {
	if got := MinSpacing([]float64{5, 1, 2, 9}, 1); !near(got, 1) {
		t.Errorf("MinSpacing = %v, want 1", got)
	}
	if got := MinSpacing([]float64{7}, 1); !near(got, 1) {
		t.Errorf("MinSpacing single = %v, want default 1", got)
	}
	if got := MinSpacing([]float64{2, 2, 2}, 0.5); !near(got, 0.5) {
		t.Errorf("MinSpacing equal = %v, want default 0.5", got)
	}
}
