package foamgraph

import "github.com/zhujun98/foamgraph-go/series"

// Candlestick draws one candle per x: a whisker from yMin to yMax and a
// body from yStart to yEnd. Only the whisker span enters the vertical
// bound; the body is drawn inside that envelope.
type Candlestick struct {
	itemBase

	x            []float64
	yStart, yEnd []float64
	yMin, yMax   []float64
}

// NewCandlestick returns an empty candlestick item.
func NewCandlestick(label string) *Candlestick {
	c := &Candlestick{itemBase: newItemBase(KindCandlestick, label)}
	c.bounds = c.computeBounds
	return c
}

// SetData replaces the candlestick's samples.
func (c *Candlestick) SetData(x, yStart, yEnd, yMin, yMax []float64) error {
	if err := checkLengths(len(x), yStart, yEnd, yMin, yMax); err != nil {
		return err
	}
	c.x = append(c.x[:0:0], x...)
	c.yStart = append(c.yStart[:0:0], yStart...)
	c.yEnd = append(c.yEnd[:0:0], yEnd...)
	c.yMin = append(c.yMin[:0:0], yMin...)
	c.yMax = append(c.yMax[:0:0], yMax...)
	c.invalidate()
	return nil
}

// ClearData implements Item.
func (c *Candlestick) ClearData() {
	c.x, c.yStart, c.yEnd, c.yMin, c.yMax = nil, nil, nil, nil, nil
	c.invalidate()
}

// Data returns the item's backing arrays.
func (c *Candlestick) Data() (x, yStart, yEnd, yMin, yMax []float64) {
	return c.x, c.yStart, c.yEnd, c.yMin, c.yMax
}

func (c *Candlestick) computeBounds() Rect {
	x, cols := series.DropNaNRows(c.x, c.yMin, c.yMax)
	lo, hi := cols[0], cols[1]
	if c.checkFinite {
		lo = series.ZeroNonFinite(lo)
		hi = series.ZeroNonFinite(hi)
	}
	if c.logX {
		x = series.LogScale(x)
	}
	if c.logY {
		lo = series.LogScale(lo)
		hi = series.LogScale(hi)
	}
	xlo, xhi := series.MinMax(x)
	ylo, _ := series.MinMax(lo)
	_, yhi := series.MinMax(hi)
	return boundsRect(xlo, xhi, ylo, yhi)
}
