package foamgraph

// Transform is the affine map from data coordinates to device pixels for
// one canvas. Device y grows downwards, so the y scale is negative unless
// the canvas y axis is inverted.
//
// The zero Transform is not usable; Valid reports whether a device mapping
// exists. Mapping through an unusable transform returns ok == false rather
// than failing hard, since a canvas routinely exists before it is given a
// device rect.
type Transform struct {
	sx, sy float64
	tx, ty float64
	usable bool
}

// makeTransform builds the data-to-device map for the given view and
// device rects. The result is unusable when either rect has no area.
func makeTransform(view, device Rect, invertX, invertY bool) Transform {
	if !view.IsValid() || !device.IsValid() {
		return Transform{}
	}
	sx := device.W / view.W
	sy := device.H / view.H
	if invertX {
		sx = -sx
	}
	if !invertY {
		sy = -sy
	}

	vcx, vcy := view.Center()
	dcx, dcy := device.Center()
	return Transform{
		sx: sx, sy: sy,
		tx:     dcx - sx*vcx,
		ty:     dcy - sy*vcy,
		usable: true,
	}
}

// Valid reports whether the transform has a usable device mapping.
func (t Transform) Valid() bool { return t.usable }

// ToDevice maps a data point to device pixels. ok is false when no device
// mapping is available.
func (t Transform) ToDevice(x, y float64) (dx, dy float64, ok bool) {
	if !t.usable {
		return 0, 0, false
	}
	return t.sx*x + t.tx, t.sy*y + t.ty, true
}

// ToData maps a device pixel back to data coordinates. ok is false when no
// device mapping is available.
func (t Transform) ToData(dx, dy float64) (x, y float64, ok bool) {
	if !t.usable {
		return 0, 0, false
	}
	return (dx - t.tx) / t.sx, (dy - t.ty) / t.sy, true
}

// RectToDevice maps a data rect to its device-space counterpart.
func (t Transform) RectToDevice(r Rect) (Rect, bool) {
	if !t.usable {
		return Rect{}, false
	}
	x0, y0, _ := t.ToDevice(r.X, r.Y)
	x1, y1, _ := t.ToDevice(r.Right(), r.Top())
	return RectFromCorners(x0, y0, x1, y1), true
}

// RectToData maps a device rect to its data-space counterpart.
func (t Transform) RectToData(r Rect) (Rect, bool) {
	if !t.usable {
		return Rect{}, false
	}
	x0, y0, _ := t.ToData(r.X, r.Y)
	x1, y1, _ := t.ToData(r.Right(), r.Top())
	return RectFromCorners(x0, y0, x1, y1), true
}
