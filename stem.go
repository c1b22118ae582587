package foamgraph

import "github.com/zhujun98/foamgraph-go/series"

// Stem draws a vertical line from the zero baseline to every (x, y)
// sample. The baseline belongs to the item, so its vertical bound always
// includes 0 even when all y values share one sign.
type Stem struct {
	itemBase

	x, y []float64
}

// NewStem returns an empty stem item.
func NewStem(label string) *Stem {
	s := &Stem{itemBase: newItemBase(KindStem, label)}
	s.bounds = s.computeBounds
	return s
}

// SetData replaces the stem's samples.
func (s *Stem) SetData(x, y []float64) error {
	if err := checkLengths(len(x), y); err != nil {
		return err
	}
	s.x = append(s.x[:0:0], x...)
	s.y = append(s.y[:0:0], y...)
	s.invalidate()
	return nil
}

// ClearData implements Item.
func (s *Stem) ClearData() {
	s.x, s.y = nil, nil
	s.invalidate()
}

// Data returns the item's backing arrays.
func (s *Stem) Data() (x, y []float64) { return s.x, s.y }

func (s *Stem) computeBounds() Rect {
	x, cols := series.DropNaNRows(s.x, s.y)
	y := cols[0]
	if s.checkFinite {
		y = series.ZeroNonFinite(y)
	}
	if s.logX {
		x = series.LogScale(x)
	}
	if s.logY {
		y = series.LogScale(y)
	}
	xlo, xhi := series.MinMax(x)
	ylo, yhi := series.MinMax(y)
	r := boundsRect(xlo, xhi, ylo, yhi)
	if r.IsNull() {
		return r
	}
	vlo, vhi := r.Y, r.Top()
	if vlo > 0 {
		vlo = 0
	}
	if vhi < 0 {
		vhi = 0
	}
	return RectFromCorners(r.X, vlo, r.Right(), vhi)
}
