package foamgraph

import "github.com/zhujun98/foamgraph-go/series"

// DefaultBeam is the whisker cap width of an errorbar as a fraction of the
// local x sample spacing.
const DefaultBeam = 0.9

// Errorbar draws a vertical whisker from yMin to yMax at every x, with an
// optional midpoint y and a horizontal cap (the beam) at both ends. The cap
// extends beam*spacing/2 to each side of x, where spacing is the distance
// to the nearest adjacent sample, so the caps of the outermost samples
// widen the horizontal bound.
type Errorbar struct {
	itemBase

	x, y       []float64
	yMin, yMax []float64
	beam       float64
}

// NewErrorbar returns an empty errorbar item with the default beam.
func NewErrorbar(label string) *Errorbar {
	e := &Errorbar{itemBase: newItemBase(KindErrorbar, label), beam: DefaultBeam}
	e.bounds = e.computeBounds
	return e
}

// SetData replaces the errorbar's samples. y holds the midpoints and may be
// nil when only the whisker span matters.
func (e *Errorbar) SetData(x, y, yMin, yMax []float64) error {
	cols := [][]float64{yMin, yMax}
	if y != nil {
		cols = append(cols, y)
	}
	if err := checkLengths(len(x), cols...); err != nil {
		return err
	}
	e.x = append(e.x[:0:0], x...)
	e.yMin = append(e.yMin[:0:0], yMin...)
	e.yMax = append(e.yMax[:0:0], yMax...)
	if y == nil {
		e.y = nil
	} else {
		e.y = append(e.y[:0:0], y...)
	}
	e.invalidate()
	return nil
}

// ClearData implements Item.
func (e *Errorbar) ClearData() {
	e.x, e.y, e.yMin, e.yMax = nil, nil, nil, nil
	e.invalidate()
}

// Data returns the item's backing arrays. y is nil when no midpoints were
// set.
func (e *Errorbar) Data() (x, y, yMin, yMax []float64) {
	return e.x, e.y, e.yMin, e.yMax
}

// Beam returns the whisker cap width factor.
func (e *Errorbar) Beam() float64 { return e.beam }

// SetBeam sets the whisker cap width factor. Values outside [0, 1] are
// clamped, not rejected.
func (e *Errorbar) SetBeam(beam float64) {
	if beam < 0 {
		beam = 0
	} else if beam > 1 {
		beam = 1
	}
	e.beam = beam
	e.invalidate()
}

func (e *Errorbar) computeBounds() Rect {
	ys := [][]float64{e.yMin, e.yMax}
	x, cols := series.DropNaNRows(e.x, ys...)
	lo, hi := cols[0], cols[1]
	if e.checkFinite {
		lo = series.ZeroNonFinite(lo)
		hi = series.ZeroNonFinite(hi)
	}
	if e.logX {
		x = series.LogScale(x)
	}
	if e.logY {
		lo = series.LogScale(lo)
		hi = series.LogScale(hi)
	}

	left, right := series.AdjacentSpacing(x, 0.9)
	xlo, xhi := series.MinMax(x)
	ylo, _ := series.MinMax(lo)
	_, yhi := series.MinMax(hi)
	r := boundsRect(xlo, xhi, ylo, yhi)
	if r.IsNull() {
		return r
	}
	// The outermost caps stick out by half the beam width on each end.
	dl := e.beam * left / 2
	dr := e.beam * right / 2
	return Rect{X: r.X - dl, Y: r.Y, W: r.W + dl + dr, H: r.H}
}
