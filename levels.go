package foamgraph

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/plot"
)

// quickMinMaxLimit is the image size above which the level estimators
// halve the larger dimension until the sample fits.
const quickMinMaxLimit = 100000

// QuickMinMax estimates the display levels of a 2D image by down-sampling.
// While the image holds more than 1e5 values, every other row or column of
// the larger dimension is dropped. NaN values are ignored; an image
// without finite values yields (NaN, NaN).
func QuickMinMax(img [][]float64) (lo, hi float64) {
	lo, hi = math.NaN(), math.NaN()
	quickSample(img, func(v float64) {
		if !(lo < v) {
			lo = v
		}
		if !(hi > v) {
			hi = v
		}
	})
	return lo, hi
}

// QuickMinMaxQuantile estimates robust display levels from the same
// down-sampled image as QuickMinMax. q must be in [0, 1]; values below 0.5
// are mirrored to 1-q. The result is the (1-q, q) quantile pair of the
// sample, clipping outliers on both ends symmetrically.
func QuickMinMaxQuantile(img [][]float64, q float64) (lo, hi float64, err error) {
	if q < 0 || q > 1 {
		return 0, 0, fmt.Errorf("%w: %g", ErrInvalidQuantile, q)
	}
	if q < 0.5 {
		q = 1 - q
	}
	var sample []float64
	quickSample(img, func(v float64) {
		sample = append(sample, v)
	})
	s := stats.Sample{Xs: sample}
	return s.Quantile(1 - q), s.Quantile(q), nil
}

// quickSample feeds every finite value of the down-sampled image to fn.
func quickSample(img [][]float64, fn func(float64)) {
	rows := len(img)
	cols := 0
	if rows > 0 {
		cols = len(img[0])
	}
	rowStep, colStep := 1, 1
	for rows/rowStep*(cols/colStep) > quickMinMaxLimit {
		if rows/rowStep >= cols/colStep {
			rowStep *= 2
		} else {
			colStep *= 2
		}
	}
	for i := 0; i < rows; i += rowStep {
		row := img[i]
		for j := 0; j < len(row); j += colStep {
			if v := row[j]; !math.IsNaN(v) {
				fn(v)
			}
		}
	}
}

// Colorbar maps an image's display levels to tick marks. It mirrors the
// vertical axis of an image widget: the level interval takes the place of
// the view range, and the same tick generators apply.
type Colorbar struct {
	levels Interval
	ticker plot.Ticker

	onLevels []func()
}

// NewColorbar returns a colorbar with unset levels.
func NewColorbar() *Colorbar {
	return &Colorbar{
		levels: UnsetInterval(),
		ticker: plot.DefaultTicks{},
	}
}

// Levels returns the current display levels.
func (c *Colorbar) Levels() Interval { return c.levels }

// SetLevels sets the display levels and notifies subscribers.
func (c *Colorbar) SetLevels(lo, hi float64) {
	c.levels = Interval{Min: lo, Max: hi}
	for _, fn := range c.onLevels {
		fn()
	}
}

// SetLevelsFromImage derives the levels from an image via QuickMinMax.
func (c *Colorbar) SetLevelsFromImage(img [][]float64) {
	lo, hi := QuickMinMax(img)
	c.SetLevels(lo, hi)
}

// SetTicker replaces the tick generator.
func (c *Colorbar) SetTicker(t plot.Ticker) { c.ticker = t }

// OnLevelsChanged registers fn to run after every levels change.
func (c *Colorbar) OnLevelsChanged(fn func()) {
	c.onLevels = append(c.onLevels, fn)
}

// Ticks returns the tick marks spanning the current levels, or nil while
// the levels are unset or degenerate.
func (c *Colorbar) Ticks() []plot.Tick {
	if !c.levels.IsSet() || !(c.levels.Min < c.levels.Max) {
		return nil
	}
	return c.ticker.Ticks(c.levels.Min, c.levels.Max)
}
