package foamgraph

import (
	"math"

	"gonum.org/v1/plot"
)

// Axis produces tick marks for one side of a canvas. It subscribes to the
// canvas's range changes and recomputes its ticks lazily on the next Ticks
// call.
//
// In log-scale mode the canvas range holds decimal exponents; the axis
// maps them back to linear values and delegates to a logarithmic ticker,
// so the tick labels stay in the data's own units.
type Axis struct {
	orientation Orientation
	label       string

	canvas *Canvas
	ticker plot.Ticker

	logScale bool

	ticks []plot.Tick
	dirty bool
}

// NewAxis returns an axis for the given orientation. A Horizontal axis
// ticks the x range, a Vertical one the y range.
func NewAxis(orientation Orientation) *Axis {
	return &Axis{
		orientation: orientation,
		ticker:      plot.DefaultTicks{},
		dirty:       true,
	}
}

// Label returns the axis label text.
func (a *Axis) Label() string { return a.label }

// SetLabel sets the axis label text.
func (a *Axis) SetLabel(label string) { a.label = label }

// Orientation returns the axis orientation.
func (a *Axis) Orientation() Orientation { return a.orientation }

// LinkToCanvas attaches the axis to a canvas. The axis follows the
// canvas's view range from then on.
func (a *Axis) LinkToCanvas(c *Canvas) {
	a.canvas = c
	a.dirty = true
	c.OnRangeChanged(func() { a.dirty = true })
}

// SetTicker replaces the tick generator.
func (a *Axis) SetTicker(t plot.Ticker) {
	a.ticker = t
	a.dirty = true
}

// LogScale reports whether the axis is in log-scale mode.
func (a *Axis) LogScale() bool { return a.logScale }

// SetLogScale switches the axis, and every item on the linked canvas,
// between linear and decimal-log scale along this axis's orientation.
func (a *Axis) SetLogScale(on bool) {
	if a.logScale == on {
		return
	}
	a.logScale = on
	if a.logScale {
		a.ticker = plot.LogTicks{}
	} else {
		a.ticker = plot.DefaultTicks{}
	}
	a.dirty = true
	if a.canvas == nil {
		return
	}
	for _, it := range a.canvas.Items() {
		if a.orientation == Horizontal {
			it.SetLogX(on)
		} else {
			it.SetLogY(on)
		}
	}
}

// Range returns the view range covered by the axis. In log-scale mode the
// values are decimal exponents.
func (a *Axis) Range() (lo, hi float64) {
	if a.canvas == nil {
		return 0, 0
	}
	view := a.canvas.ViewRect()
	if a.orientation == Horizontal {
		return view.Left(), view.Right()
	}
	return view.Bottom(), view.Top()
}

// Ticks returns the tick marks for the current range. The result is cached
// until the canvas range changes.
func (a *Axis) Ticks() []plot.Tick {
	if !a.dirty {
		return a.ticks
	}
	a.dirty = false
	a.ticks = nil

	lo, hi := a.Range()
	if !(lo < hi) {
		return a.ticks
	}
	if a.logScale {
		// The range holds exponents. Tick the linear counterparts, then
		// map the tick positions back to exponent space for placement.
		ticks := a.ticker.Ticks(math.Pow(10, lo), math.Pow(10, hi))
		for _, t := range ticks {
			if t.Value <= 0 {
				continue
			}
			t.Value = math.Log10(t.Value)
			a.ticks = append(a.ticks, t)
		}
		return a.ticks
	}
	a.ticks = a.ticker.Ticks(lo, hi)
	return a.ticks
}
