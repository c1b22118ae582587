package foamgraph

import (
	"fmt"
	"math"
)

// DefaultPadding is the relative padding applied on each side of an
// auto-ranged or explicitly padded rect.
const DefaultPadding = 0.05

// A Rect is an axis-aligned rectangle in data coordinates. X and Y are the
// coordinates of the corner with the smallest coordinates, W and H the
// extents towards larger coordinates.
//
// The zero Rect is the null rect. It is a sentinel meaning "no extent at
// all" and acts as the identity of Union; it is distinct from a degenerate
// rect describing a single data point away from the origin.
type Rect struct {
	X, Y, W, H float64
}

// RectFromCorners returns the canonical rect spanned by the two corner
// points (x0,y0) and (x1,y1).
func RectFromCorners(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// IsNull reports whether r is the null sentinel.
func (r Rect) IsNull() bool {
	return r.X == 0 && r.Y == 0 && r.W == 0 && r.H == 0
}

// IsValid reports whether r describes a region with positive area.
func (r Rect) IsValid() bool {
	return r.W > 0 && r.H > 0
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Bottom() float64 { return r.Y }
func (r Rect) Top() float64    { return r.Y + r.H }

// Center returns the center point of r.
func (r Rect) Center() (x, y float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Contains reports whether the point (x,y) lies in r, edges included.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Union returns the smallest rect covering both r and o. A null operand is
// ignored, so Union over any sequence of rects can start from Rect{}.
func (r Rect) Union(o Rect) Rect {
	if r.IsNull() {
		return o
	}
	if o.IsNull() {
		return r
	}
	x0 := math.Min(r.X, o.X)
	y0 := math.Min(r.Y, o.Y)
	x1 := math.Max(r.Right(), o.Right())
	y1 := math.Max(r.Top(), o.Top())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Intersect returns the overlap of r and o. W and H of the result are
// negative when the rects do not overlap; callers must check IsValid before
// using the result as a region.
func (r Rect) Intersect(o Rect) Rect {
	x0 := math.Max(r.X, o.X)
	y0 := math.Max(r.Y, o.Y)
	x1 := math.Min(r.Right(), o.Right())
	y1 := math.Min(r.Top(), o.Top())
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Pad returns r expanded symmetrically by px*W horizontally and py*H
// vertically on each side. Zero padding returns r unchanged; a null rect
// stays null.
func (r Rect) Pad(px, py float64) Rect {
	if r.IsNull() {
		return r
	}
	dx, dy := px*r.W, py*r.H
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}

// Translated returns r shifted by (dx, dy).
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func (r Rect) String() string {
	return fmt.Sprintf("Rect(%g, %g, %g, %g)", r.X, r.Y, r.W, r.H)
}

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval. Both edges
// may be NaN indicating that the edge has not been determined yet.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the interval with both edges unset.
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include every finite x.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if math.IsNaN(v) {
			continue
		}
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// IsSet reports whether both edges of i have been determined.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Equal reports whether i and j agree, treating NaN edges as equal.
func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}
