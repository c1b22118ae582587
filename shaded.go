package foamgraph

import "github.com/zhujun98/foamgraph-go/series"

// Shaded fills the band between two curves y1 and y2 sharing the x
// samples. Its bound covers both edges.
type Shaded struct {
	itemBase

	x, y1, y2 []float64
}

// NewShaded returns an empty shaded region.
func NewShaded(label string) *Shaded {
	s := &Shaded{itemBase: newItemBase(KindShaded, label)}
	s.bounds = s.computeBounds
	return s
}

// SetData replaces the shaded region's samples.
func (s *Shaded) SetData(x, y1, y2 []float64) error {
	if err := checkLengths(len(x), y1, y2); err != nil {
		return err
	}
	s.x = append(s.x[:0:0], x...)
	s.y1 = append(s.y1[:0:0], y1...)
	s.y2 = append(s.y2[:0:0], y2...)
	s.invalidate()
	return nil
}

// ClearData implements Item.
func (s *Shaded) ClearData() {
	s.x, s.y1, s.y2 = nil, nil, nil
	s.invalidate()
}

// Data returns the item's backing arrays.
func (s *Shaded) Data() (x, y1, y2 []float64) { return s.x, s.y1, s.y2 }

func (s *Shaded) computeBounds() Rect {
	x, cols := series.DropNaNRows(s.x, s.y1, s.y2)
	y1, y2 := cols[0], cols[1]
	if s.checkFinite {
		y1 = series.ZeroNonFinite(y1)
		y2 = series.ZeroNonFinite(y2)
	}
	if s.logX {
		x = series.LogScale(x)
	}
	if s.logY {
		y1 = series.LogScale(y1)
		y2 = series.LogScale(y2)
	}
	xlo, xhi := series.MinMax(x)
	lo1, hi1 := series.MinMax(y1)
	lo2, hi2 := series.MinMax(y2)
	return boundsRect(xlo, xhi, min2(lo1, lo2), max2(hi1, hi2))
}

// min2 picks the smaller finite value; NaN operands lose.
func min2(a, b float64) float64 {
	if !(b < a) && a == a {
		return a
	}
	return b
}

func max2(a, b float64) float64 {
	if !(b > a) && a == a {
		return a
	}
	return b
}
