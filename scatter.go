package foamgraph

// Scatter draws an unconnected marker per (x, y) sample. Its bound is the
// envelope of the sample points, widened on every side by half the marker
// size mapped from device to data units. While the item is detached, or the
// canvas has no usable device rect yet, the marker padding is zero.
type Scatter struct {
	itemBase

	x, y       []float64
	markerSize float64
}

// NewScatter returns an empty scatter item with the default marker size.
func NewScatter(label string) *Scatter {
	s := &Scatter{itemBase: newItemBase(KindScatter, label), markerSize: 6}
	s.bounds = s.computeBounds
	return s
}

// SetData replaces the scatter's samples.
func (s *Scatter) SetData(x, y []float64) error {
	if err := checkLengths(len(x), y); err != nil {
		return err
	}
	s.x = append(s.x[:0:0], x...)
	s.y = append(s.y[:0:0], y...)
	s.invalidate()
	return nil
}

// ClearData implements Item.
func (s *Scatter) ClearData() {
	s.x, s.y = nil, nil
	s.invalidate()
}

// Data returns the item's backing arrays.
func (s *Scatter) Data() (x, y []float64) { return s.x, s.y }

// MarkerSize returns the marker diameter in device units.
func (s *Scatter) MarkerSize() float64 { return s.markerSize }

// SetMarkerSize sets the marker diameter in device units.
func (s *Scatter) SetMarkerSize(d float64) {
	s.markerSize = d
	s.invalidate()
}

func (s *Scatter) computeBounds() Rect {
	r := curveBounds(s.x, s.y, nil, s.checkFinite, s.logX, s.logY)
	if r.IsNull() || s.canvas == nil {
		return r
	}
	ux, uy := s.canvas.unitsPerPixel()
	half := s.markerSize / 2
	return Rect{
		X: r.X - half*ux,
		Y: r.Y - half*uy,
		W: r.W + s.markerSize*ux,
		H: r.H + s.markerSize*uy,
	}
}
