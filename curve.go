package foamgraph

import (
	"gonum.org/v1/plot/plotter"

	"github.com/zhujun98/foamgraph-go/series"
)

// Curve is a poly-line through (x, y) samples, optionally with a symmetric
// y error per sample that widens the vertical bound.
type Curve struct {
	itemBase

	x, y []float64
	yErr []float64 // nil when no error band is set
}

// NewCurve returns an empty curve.
func NewCurve(label string) *Curve {
	c := &Curve{itemBase: newItemBase(KindCurve, label)}
	c.bounds = c.computeBounds
	return c
}

// SetData replaces the curve's samples. The previous data, including a
// previously set error array, is kept untouched when the lengths disagree.
func (c *Curve) SetData(x, y []float64) error {
	if err := checkLengths(len(x), y); err != nil {
		return err
	}
	c.x = append(c.x[:0:0], x...)
	c.y = append(c.y[:0:0], y...)
	c.yErr = nil
	c.invalidate()
	return nil
}

// SetDataWithYErr replaces the curve's samples together with a symmetric
// y error per sample.
func (c *Curve) SetDataWithYErr(x, y, yErr []float64) error {
	if err := checkLengths(len(x), y, yErr); err != nil {
		return err
	}
	c.x = append(c.x[:0:0], x...)
	c.y = append(c.y[:0:0], y...)
	c.yErr = append(c.yErr[:0:0], yErr...)
	c.invalidate()
	return nil
}

// SetDataFromXYer replaces the curve's samples from a gonum/plot data
// source.
func (c *Curve) SetDataFromXYer(xy plotter.XYer) error {
	x, y := series.FromXYer(xy)
	return c.SetData(x, y)
}

// ClearData implements Item.
func (c *Curve) ClearData() {
	c.x, c.y, c.yErr = nil, nil, nil
	c.invalidate()
}

// Data returns the item's backing arrays. The slices are owned by the item.
func (c *Curve) Data() (x, y []float64) { return c.x, c.y }

func (c *Curve) computeBounds() Rect {
	return curveBounds(c.x, c.y, c.yErr, c.checkFinite, c.logX, c.logY)
}

// curveBounds is the shared bounding computation of Curve and SimpleCurve.
//
// Rows with a non-finite x never contribute to either axis. A non-finite y
// is treated as 0 under checkFinite so the sample keeps participating;
// without checkFinite the sample is dropped from the y reduction only, so
// the x extent does not shrink. Log remapping happens after the NaN policy,
// in series.LogScale's clamped decimal-log space.
func curveBounds(x, y, yErr []float64, checkFinite, logX, logY bool) Rect {
	cols := [][]float64{y}
	if yErr != nil {
		cols = append(cols, yErr)
	}
	x, cols = series.DropNaNRows(x, cols...)
	y = cols[0]
	if yErr != nil {
		yErr = cols[1]
	}

	if checkFinite {
		y = series.ZeroNonFinite(y)
	}
	lows, highs := y, y
	if yErr != nil {
		lows = make([]float64, len(y))
		highs = make([]float64, len(y))
		for i := range y {
			lows[i] = y[i] - yErr[i]
			highs[i] = y[i] + yErr[i]
		}
	}

	if logX {
		x = series.LogScale(x)
	}
	if logY {
		lows = series.LogScale(lows)
		if yErr == nil {
			highs = lows
		} else {
			highs = series.LogScale(highs)
		}
	}

	xlo, xhi := series.MinMax(x)
	ylo, _ := series.MinMax(lows)
	_, yhi := series.MinMax(highs)
	return boundsRect(xlo, xhi, ylo, yhi)
}

// SimpleCurve is a decimated variant of Curve meant for very dense data.
// The renderer may draw it with fewer segments; its data contract and
// bounding behaviour are those of Curve without an error band.
type SimpleCurve struct {
	itemBase

	x, y []float64
}

// NewSimpleCurve returns an empty simple curve.
func NewSimpleCurve(label string) *SimpleCurve {
	c := &SimpleCurve{itemBase: newItemBase(KindSimpleCurve, label)}
	c.bounds = c.computeBounds
	return c
}

// SetData replaces the curve's samples.
func (c *SimpleCurve) SetData(x, y []float64) error {
	if err := checkLengths(len(x), y); err != nil {
		return err
	}
	c.x = append(c.x[:0:0], x...)
	c.y = append(c.y[:0:0], y...)
	c.invalidate()
	return nil
}

// ClearData implements Item.
func (c *SimpleCurve) ClearData() {
	c.x, c.y = nil, nil
	c.invalidate()
}

// Data returns the item's backing arrays.
func (c *SimpleCurve) Data() (x, y []float64) { return c.x, c.y }

func (c *SimpleCurve) computeBounds() Rect {
	return curveBounds(c.x, c.y, nil, c.checkFinite, c.logX, c.logY)
}
