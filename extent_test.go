package foamgraph

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

func rectNear(a, b Rect) bool {
	return near(a.X, b.X) && near(a.Y, b.Y) && near(a.W, b.W) && near(a.H, b.H)
}

var rectUnionTests = []struct {
	a, b, want Rect
}{
	{Rect{}, Rect{}, Rect{}},
	{Rect{}, Rect{1, 2, 3, 4}, Rect{1, 2, 3, 4}},
	{Rect{1, 2, 3, 4}, Rect{}, Rect{1, 2, 3, 4}},
	{Rect{0, 0, 1, 1}, Rect{2, 2, 1, 1}, Rect{0, 0, 3, 3}},
	{Rect{0, 0, 4, 4}, Rect{1, 1, 1, 1}, Rect{0, 0, 4, 4}},
	{Rect{-2, -2, 1, 1}, Rect{1, 1, 1, 1}, Rect{-2, -2, 4, 4}},
}

func TestRectUnion(t *testing.T) {
	for i, tc := range rectUnionTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			if got := tc.a.Union(tc.b); !rectNear(got, tc.want) {
				t.Errorf("%v union %v = %v, want %v", tc.a, tc.b, got, tc.want)
			}
			if got := tc.b.Union(tc.a); !rectNear(got, tc.want) {
				t.Errorf("%v union %v = %v, want %v", tc.b, tc.a, got, tc.want)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{0, 0, 2, 2}
	b := Rect{1, 1, 2, 2}
	if got, want := a.Intersect(b), (Rect{1, 1, 1, 1}); !rectNear(got, want) {
		t.Errorf("%v intersect %v = %v, want %v", a, b, got, want)
	}

	c := Rect{5, 5, 1, 1}
	if got := a.Intersect(c); got.IsValid() {
		t.Errorf("%v intersect %v = %v, want invalid", a, c, got)
	}
}

func TestRectPad(t *testing.T) {
	r := Rect{0, 0, 10, 2}
	if got, want := r.Pad(0.05, 0.05), (Rect{-0.5, -0.1, 11, 2.2}); !rectNear(got, want) {
		t.Errorf("pad = %v, want %v", got, want)
	}
	if got := r.Pad(0, 0); !rectNear(got, r) {
		t.Errorf("zero pad = %v, want %v", got, r)
	}
	if got := (Rect{}).Pad(0.05, 0.05); !got.IsNull() {
		t.Errorf("padded null rect = %v, want null", got)
	}
}

func TestRectFromCorners(t *testing.T) {
	want := Rect{1, 2, 3, 4}
	if got := RectFromCorners(4, 6, 1, 2); !rectNear(got, want) {
		t.Errorf("RectFromCorners = %v, want %v", got, want)
	}
}

func TestRectNullVsDegenerate(t *testing.T) {
	if !(Rect{}).IsNull() {
		t.Error("zero rect must be null")
	}
	point := Rect{X: 1, Y: 1}
	if point.IsNull() {
		t.Error("degenerate rect away from the origin must not be null")
	}
	if point.IsValid() {
		t.Error("degenerate rect must not be valid")
	}
}

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestIntervalIsSet(t *testing.T) {
	if UnsetInterval().IsSet() {
		t.Error("unset interval reports set")
	}
	iv := UnsetInterval()
	iv.Update(1, 2, 3)
	if !iv.IsSet() || iv.Min != 1 || iv.Max != 3 {
		t.Errorf("interval after update = %v, want [1:3]", iv)
	}
}
