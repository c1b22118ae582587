package foamgraph

import (
	"fmt"
	"math"
	"strings"
)

// MouseMode selects how mouse drags on a canvas are interpreted.
type MouseMode int

const (
	// MouseOff ignores drags.
	MouseOff MouseMode = iota
	// MousePan translates the view with the drag.
	MousePan
	// MouseZoom spans a selection rectangle to zoom into.
	MouseZoom
)

func (m MouseMode) String() string {
	switch m {
	case MouseOff:
		return "off"
	case MousePan:
		return "pan"
	case MouseZoom:
		return "zoom"
	}
	return fmt.Sprintf("MouseMode(%d)", int(m))
}

// Orientation selects the axis along which bars are laid out.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// ParseOrientation parses "vertical" or "horizontal", case-insensitively.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(s) {
	case "vertical", "v":
		return Vertical, nil
	case "horizontal", "h":
		return Horizontal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidOrientation, s)
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// State describes what currently drives a canvas's target range.
type State int

const (
	// StateIdle means the canvas has no ranged content yet.
	StateIdle State = iota
	// StateAutoRanging means the target rect tracks the union of the
	// attached items' bounds on at least one axis.
	StateAutoRanging
	// StateManual means the target rect was frozen by an explicit range
	// call, pan or zoom.
	StateManual
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateAutoRanging:
		return "auto-ranging"
	}
	return "manual"
}

// WheelScaleFactor converts a wheel delta into a relative scale change.
const WheelScaleFactor = 0.00125

// Canvas owns a set of plot items and maps their common data space onto a
// device rect. It keeps two rects: the target rect is the range the caller
// asked for, the view rect is what is actually shown, differing from the
// target only when the aspect ratio lock forces an enlargement.
//
// All updates are synchronous. Changing an item's data, visibility or
// mode recomputes the aggregate range before the mutating call returns,
// and subscribers are notified on the caller's goroutine. A Canvas must be
// confined to one goroutine.
type Canvas struct {
	items []Item

	targetRect Rect
	viewRect   Rect
	deviceRect Rect

	autoRangeX bool
	autoRangeY bool

	aspectLocked bool
	aspectRatio  float64

	invertX, invertY bool

	mouseMode      MouseMode
	barOrientation Orientation

	tr Transform

	linkedX, linkedY       *Canvas
	xFollowers, yFollowers []*Canvas

	onRange     []func()
	onTransform []func()

	updating bool
}

// NewCanvas returns an empty canvas with both auto-range flags enabled and
// pan as the mouse mode.
func NewCanvas() *Canvas {
	return &Canvas{
		autoRangeX:  true,
		autoRangeY:  true,
		aspectRatio: 1,
		mouseMode:   MousePan,
	}
}

// AddItem attaches an item to the canvas. An item belongs to at most one
// canvas; attaching an attached item fails with ErrAlreadyAttached and
// changes neither canvas.
func (c *Canvas) AddItem(it Item) error {
	b := it.base()
	if b.canvas != nil {
		return fmt.Errorf("%w: %s %q", ErrAlreadyAttached, b.kind, b.label)
	}
	b.canvas = c
	c.items = append(c.items, it)
	c.invalidateBars()
	c.updateAutoRange()
	return nil
}

// RemoveItem detaches an item from the canvas. Removing an item the canvas
// does not own fails with ErrNotAttached.
func (c *Canvas) RemoveItem(it Item) error {
	b := it.base()
	if b.canvas != c {
		return fmt.Errorf("%w: %s %q", ErrNotAttached, b.kind, b.label)
	}
	for i, have := range c.items {
		if have == it {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	b.canvas = nil
	b.valid = false
	c.invalidateBars()
	c.updateAutoRange()
	return nil
}

// Items returns the attached items in insertion order. The slice is owned
// by the canvas.
func (c *Canvas) Items() []Item { return c.items }

// TargetRect returns the range the caller asked for.
func (c *Canvas) TargetRect() Rect { return c.targetRect }

// ViewRect returns the range actually shown.
func (c *Canvas) ViewRect() Rect { return c.viewRect }

// DeviceRect returns the device-pixel rect of the canvas.
func (c *Canvas) DeviceRect() Rect { return c.deviceRect }

// Transform returns the current data-to-device map.
func (c *Canvas) Transform() Transform { return c.tr }

// State derives the canvas state from its flags and content.
func (c *Canvas) State() State {
	if len(c.items) == 0 && c.targetRect.IsNull() {
		return StateIdle
	}
	if c.autoRangeX || c.autoRangeY {
		return StateAutoRanging
	}
	return StateManual
}

// MouseMode returns the drag interpretation mode.
func (c *Canvas) MouseMode() MouseMode { return c.mouseMode }

// SetMouseMode sets the drag interpretation mode.
func (c *Canvas) SetMouseMode(m MouseMode) { c.mouseMode = m }

// BarOrientation returns the layout axis of the attached bar items.
func (c *Canvas) BarOrientation() Orientation { return c.barOrientation }

// SetBarOrientation sets the layout axis of the attached bar items.
func (c *Canvas) SetBarOrientation(o Orientation) {
	if c.barOrientation == o {
		return
	}
	c.barOrientation = o
	c.invalidateBars()
	c.updateAutoRange()
}

// SetAspectRatioLocked locks or unlocks the view aspect. While locked, the
// view rect is enlarged so that viewHeight/viewWidth stays at ratio times
// deviceHeight/deviceWidth.
func (c *Canvas) SetAspectRatioLocked(locked bool, ratio float64) {
	c.aspectLocked = locked
	if ratio > 0 {
		c.aspectRatio = ratio
	}
	c.applyView()
}

// InvertX mirrors the x axis of the device mapping.
func (c *Canvas) InvertX(inverted bool) {
	c.invertX = inverted
	c.updateMatrix()
	c.notifyRange()
}

// InvertY flips the y axis of the device mapping. The default mapping
// already points data y up and device y down; inverting makes them agree.
func (c *Canvas) InvertY(inverted bool) {
	c.invertY = inverted
	c.updateMatrix()
	c.notifyRange()
}

// EnableAutoRangeX re-enables tracking of the items' horizontal extent.
func (c *Canvas) EnableAutoRangeX(on bool) {
	if c.autoRangeX == on {
		return
	}
	c.autoRangeX = on
	if on {
		c.updateAutoRange()
	}
}

// EnableAutoRangeY re-enables tracking of the items' vertical extent.
func (c *Canvas) EnableAutoRangeY(on bool) {
	if c.autoRangeY == on {
		return
	}
	c.autoRangeY = on
	if on {
		c.updateAutoRange()
	}
}

// AutoRangeEnabled returns both auto-range flags.
func (c *Canvas) AutoRangeEnabled() (x, y bool) {
	return c.autoRangeX, c.autoRangeY
}

// OnRangeChanged registers fn to run after every view rect change.
func (c *Canvas) OnRangeChanged(fn func()) {
	c.onRange = append(c.onRange, fn)
}

// OnTransformChanged registers fn to run after every device mapping
// change.
func (c *Canvas) OnTransformChanged(fn func()) {
	c.onTransform = append(c.onTransform, fn)
}

// Resize tells the canvas its device-pixel rect. The transform is unusable
// until the first resize with a positive area.
func (c *Canvas) Resize(device Rect) {
	c.deviceRect = device
	// Marker paddings depend on the device scale.
	for _, it := range c.items {
		if it.Kind() == KindScatter {
			it.base().valid = false
		}
	}
	c.applyView()
	c.updateAutoRange()
}

// SetTargetRange sets both axes of the target range at once. The rect is
// expanded by the relative padding on each side first; pass 0 to apply the
// rect exactly, or DefaultPadding for the standard margin. Both auto-range
// flags are disabled.
func (c *Canvas) SetTargetRange(r Rect, padding float64) {
	c.autoRangeX, c.autoRangeY = false, false
	c.setRangeBoth(r.Pad(padding, padding))
}

// SetTargetXRange sets the horizontal target range and disables horizontal
// auto-ranging. Under an aspect lock the view's vertical range follows;
// the target itself keeps its vertical range.
func (c *Canvas) SetTargetXRange(x0, x1 float64) {
	c.autoRangeX = false
	c.targetRect = RectFromCorners(x0, c.targetRect.Bottom(), x1, c.targetRect.Top())
	c.viewRect = c.adjustAspect(c.targetRect)
	c.finishRangeChange()
}

// SetTargetYRange sets the vertical target range and disables vertical
// auto-ranging. Under an aspect lock the view's horizontal range follows;
// the target itself keeps its horizontal range.
func (c *Canvas) SetTargetYRange(y0, y1 float64) {
	c.autoRangeY = false
	c.targetRect = RectFromCorners(c.targetRect.Left(), y0, c.targetRect.Right(), y1)
	c.viewRect = c.adjustAspect(c.targetRect)
	c.finishRangeChange()
}

// ViewAll recomputes the range from the attached items and re-enables both
// auto-range flags.
func (c *Canvas) ViewAll() {
	c.autoRangeX, c.autoRangeY = true, true
	c.updateAutoRange()
}

// GraphRect returns the union of the visible items' bounding rects, or the
// null rect when nothing contributes.
func (c *Canvas) GraphRect() Rect {
	var r Rect
	for _, it := range c.items {
		if !it.Visible() {
			continue
		}
		r = r.Union(it.BoundingRect())
	}
	return r
}

// updateAutoRange recomputes the target range from the items on every axis
// with auto-ranging enabled. It runs synchronously on item add, remove,
// data change and visibility change.
func (c *Canvas) updateAutoRange() {
	if c.updating || (!c.autoRangeX && !c.autoRangeY) {
		return
	}
	c.updating = true
	defer func() { c.updating = false }()

	r := c.GraphRect()
	if r.IsNull() {
		return
	}
	r = r.Pad(DefaultPadding, DefaultPadding)

	switch {
	case c.autoRangeX && c.autoRangeY:
		c.setRangeBoth(r)
	case c.autoRangeX:
		c.targetRect = RectFromCorners(
			r.Left(), c.targetRect.Bottom(), r.Right(), c.targetRect.Top())
		c.viewRect = c.adjustAspect(c.targetRect)
		c.finishRangeChange()
	default:
		c.targetRect = RectFromCorners(
			c.targetRect.Left(), r.Bottom(), c.targetRect.Right(), r.Top())
		c.viewRect = c.adjustAspect(c.targetRect)
		c.finishRangeChange()
	}
}

// setRangeBoth installs r as the target, applies the aspect lock and
// refreshes the view.
func (c *Canvas) setRangeBoth(r Rect) {
	c.targetRect = r
	c.viewRect = c.adjustAspect(r)
	c.finishRangeChange()
}

// applyView recomputes the view rect from the unchanged target rect, used
// after resizes and aspect lock toggles.
func (c *Canvas) applyView() {
	c.viewRect = c.adjustAspect(c.targetRect)
	c.updateMatrix()
	c.notifyRange()
}

// adjustAspect enlarges r so that its height/width ratio matches the
// locked ratio scaled by the device shape. The enlargement keeps the
// center and never shrinks either axis.
func (c *Canvas) adjustAspect(r Rect) Rect {
	if !c.aspectLocked || !r.IsValid() || !c.deviceRect.IsValid() {
		return r
	}
	deviceRatio := c.deviceRect.H / c.deviceRect.W
	scale := c.aspectRatio * deviceRatio * r.W / r.H
	cx, cy := r.Center()
	if scale > 1 {
		h := r.H * scale
		return Rect{X: r.X, Y: cy - h/2, W: r.W, H: h}
	}
	if scale < 1 {
		w := r.W / scale
		return Rect{X: cx - w/2, Y: r.Y, W: w, H: r.H}
	}
	return r
}

func (c *Canvas) finishRangeChange() {
	c.updateMatrix()
	c.notifyRange()
	c.syncFollowers()
}

func (c *Canvas) updateMatrix() {
	c.tr = makeTransform(c.viewRect, c.deviceRect, c.invertX, c.invertY)
	for _, fn := range c.onTransform {
		fn()
	}
}

func (c *Canvas) notifyRange() {
	for _, fn := range c.onRange {
		fn()
	}
}

// ----------------------------------------------------------------------------
// Interaction

// Drag pans the view by a device-pixel delta. It does nothing unless the
// mouse mode is pan. Panning freezes auto-ranging on both axes.
func (c *Canvas) Drag(dx, dy float64) {
	if c.mouseMode != MousePan || !c.tr.Valid() {
		return
	}
	ddx := dx / c.tr.sx
	ddy := dy / c.tr.sy
	c.autoRangeX, c.autoRangeY = false, false
	c.setRangeBoth(c.viewRect.Translated(ddx, ddy))
}

// ZoomRect zooms to the data-space region spanned by two device-pixel
// corners, clipped to the current view. It does nothing unless the mouse
// mode is zoom.
func (c *Canvas) ZoomRect(x0, y0, x1, y1 float64) {
	if c.mouseMode != MouseZoom || !c.tr.Valid() {
		return
	}
	ax, ay, _ := c.tr.ToData(x0, y0)
	bx, by, _ := c.tr.ToData(x1, y1)
	r := RectFromCorners(ax, ay, bx, by).Intersect(c.viewRect)
	if !r.IsValid() {
		return
	}
	c.autoRangeX, c.autoRangeY = false, false
	c.setRangeBoth(r)
}

// WheelZoom scales the view about the device-pixel position (xc, yc). The
// wheel delta maps to a relative scale of 1 + delta*WheelScaleFactor.
func (c *Canvas) WheelZoom(delta, xc, yc float64) {
	if !c.tr.Valid() {
		return
	}
	s := 1 + delta*WheelScaleFactor
	if s <= 0 {
		return
	}
	cx, cy, _ := c.tr.ToData(xc, yc)
	r := c.viewRect
	x0 := cx + (r.Left()-cx)*s
	x1 := cx + (r.Right()-cx)*s
	y0 := cy + (r.Bottom()-cy)*s
	y1 := cy + (r.Top()-cy)*s
	c.autoRangeX, c.autoRangeY = false, false
	c.setRangeBoth(RectFromCorners(x0, y0, x1, y1))
}

// ----------------------------------------------------------------------------
// Linking

// LinkXTo makes the canvas follow the horizontal target range of other, as
// a secondary canvas sharing the x domain does. Horizontal auto-ranging is
// disabled on the follower.
func (c *Canvas) LinkXTo(other *Canvas) {
	if c.linkedX != nil {
		c.linkedX.xFollowers = removeCanvas(c.linkedX.xFollowers, c)
	}
	c.linkedX = other
	other.xFollowers = append(other.xFollowers, c)
	c.autoRangeX = false
	if !other.targetRect.IsNull() {
		c.SetTargetXRange(other.targetRect.Left(), other.targetRect.Right())
	}
}

// LinkYTo makes the canvas follow the vertical target range of other.
// Vertical auto-ranging is disabled on the follower.
func (c *Canvas) LinkYTo(other *Canvas) {
	if c.linkedY != nil {
		c.linkedY.yFollowers = removeCanvas(c.linkedY.yFollowers, c)
	}
	c.linkedY = other
	other.yFollowers = append(other.yFollowers, c)
	c.autoRangeY = false
	if !other.targetRect.IsNull() {
		c.SetTargetYRange(other.targetRect.Bottom(), other.targetRect.Top())
	}
}

func (c *Canvas) syncFollowers() {
	for _, f := range c.xFollowers {
		if f.targetRect.Left() != c.targetRect.Left() ||
			f.targetRect.Right() != c.targetRect.Right() {
			f.SetTargetXRange(c.targetRect.Left(), c.targetRect.Right())
		}
	}
	for _, f := range c.yFollowers {
		if f.targetRect.Bottom() != c.targetRect.Bottom() ||
			f.targetRect.Top() != c.targetRect.Top() {
			f.SetTargetYRange(c.targetRect.Bottom(), c.targetRect.Top())
		}
	}
}

func removeCanvas(cs []*Canvas, c *Canvas) []*Canvas {
	for i, have := range cs {
		if have == c {
			return append(cs[:i], cs[i+1:]...)
		}
	}
	return cs
}

// ----------------------------------------------------------------------------
// Item support

// barSlot returns the ordinal position of b among the currently attached
// bar items and their total count. The position is not stable under
// removal and re-adding of earlier bars.
func (c *Canvas) barSlot(b *Bar) (index, count int) {
	index = -1
	for _, it := range c.items {
		if it.Kind() != KindBar {
			continue
		}
		if it == Item(b) {
			index = count
		}
		count++
	}
	if index < 0 || count == 0 {
		return 0, 1
	}
	return index, count
}

// invalidateBars drops the cached bounds of all attached bar items, whose
// dodge slots depend on the bar set and orientation.
func (c *Canvas) invalidateBars() {
	for _, it := range c.items {
		if it.Kind() == KindBar {
			it.base().valid = false
		}
	}
}

// unitsPerPixel returns the data-space size of one device pixel, or zeros
// while no device mapping exists.
func (c *Canvas) unitsPerPixel() (ux, uy float64) {
	if !c.tr.Valid() {
		return 0, 0
	}
	return math.Abs(1 / c.tr.sx), math.Abs(1 / c.tr.sy)
}
