package foamgraph

import (
	"fmt"
	"math"
)

// MaxRegions is the number of regions of interest one group can hold.
const MaxRegions = 4

// RegionShape selects the outline of a region of interest.
type RegionShape int

const (
	RegionRect RegionShape = iota
	RegionEllipse
)

func (s RegionShape) String() string {
	if s == RegionEllipse {
		return "ellipse"
	}
	return "rect"
}

// Region is a movable, resizable region of interest. Its geometry lives in
// the same data coordinates as the plot items but is independent of their
// bounds; moving a region never triggers auto-ranging.
//
// With snapping enabled the geometry is rounded to whole coordinates on
// every change, which keeps a region usable as pixel indices into an
// image.
type Region struct {
	shape   RegionShape
	rect    Rect
	snap    bool
	visible bool

	onChange []func()
}

// NewRegion returns a visible region with the given shape and geometry.
func NewRegion(shape RegionShape, rect Rect) *Region {
	r := &Region{shape: shape, visible: true}
	r.rect = rect
	return r
}

// Shape returns the region's outline shape.
func (r *Region) Shape() RegionShape { return r.shape }

// Rect returns the region's geometry.
func (r *Region) Rect() Rect { return r.rect }

// Visible reports whether the region is shown.
func (r *Region) Visible() bool { return r.visible }

// SetVisible shows or hides the region.
func (r *Region) SetVisible(v bool) { r.visible = v }

// Snap returns whether the geometry is rounded to whole coordinates.
func (r *Region) Snap() bool { return r.snap }

// SetSnap enables or disables coordinate snapping. Enabling it snaps the
// current geometry immediately.
func (r *Region) SetSnap(on bool) {
	r.snap = on
	if on {
		r.SetRect(r.rect)
	}
}

// SetRect replaces the region's geometry.
func (r *Region) SetRect(rect Rect) {
	if r.snap {
		rect = Rect{
			X: math.Round(rect.X),
			Y: math.Round(rect.Y),
			W: math.Round(rect.W),
			H: math.Round(rect.H),
		}
	}
	r.rect = rect
	for _, fn := range r.onChange {
		fn()
	}
}

// Translate moves the region by (dx, dy).
func (r *Region) Translate(dx, dy float64) {
	r.SetRect(r.rect.Translated(dx, dy))
}

// OnChanged registers fn to run after every geometry change.
func (r *Region) OnChanged(fn func()) {
	r.onChange = append(r.onChange, fn)
}

// Intersect clips the region's geometry against other. The result may be
// invalid when the two do not overlap.
func (r *Region) Intersect(other Rect) Rect {
	return r.rect.Intersect(other)
}

// Slice clips the region against an image of rows by cols pixels and
// returns the index bounds of the covered sub-image, row y0 <= y < y1 and
// column x0 <= x < x1. ok is false when the region misses the image.
func (r *Region) Slice(rows, cols int) (x0, y0, x1, y1 int, ok bool) {
	clip := r.rect.Intersect(Rect{W: float64(cols), H: float64(rows)})
	if !clip.IsValid() {
		return 0, 0, 0, 0, false
	}
	x0 = int(math.Floor(clip.Left()))
	y0 = int(math.Floor(clip.Bottom()))
	x1 = int(math.Ceil(clip.Right()))
	y1 = int(math.Ceil(clip.Top()))
	return x0, y0, x1, y1, true
}

// RegionGroup owns the regions of one image widget. It refuses to grow
// beyond MaxRegions.
type RegionGroup struct {
	regions []*Region
}

// NewRegionGroup returns an empty group.
func NewRegionGroup() *RegionGroup {
	return &RegionGroup{}
}

// Add creates a region and adds it to the group. It fails with
// ErrTooManyRegions once the group is full.
func (g *RegionGroup) Add(shape RegionShape, rect Rect) (*Region, error) {
	if len(g.regions) >= MaxRegions {
		return nil, fmt.Errorf("%w: limit is %d", ErrTooManyRegions, MaxRegions)
	}
	r := NewRegion(shape, rect)
	g.regions = append(g.regions, r)
	return r, nil
}

// Remove takes a region out of the group. Removing a region the group does
// not own is a no-op.
func (g *RegionGroup) Remove(r *Region) {
	for i, have := range g.regions {
		if have == r {
			g.regions = append(g.regions[:i], g.regions[i+1:]...)
			return
		}
	}
}

// Regions returns the group's regions in creation order.
func (g *RegionGroup) Regions() []*Region { return g.regions }
