package foamgraph

import (
	"fmt"
	"math"
)

// Kind enumerates the plot item kinds. The set is closed: the auto-range
// aggregator and the legend switch over it exhaustively.
type Kind int

const (
	KindCurve Kind = iota
	KindSimpleCurve
	KindBar
	KindScatter
	KindErrorbar
	KindCandlestick
	KindShaded
	KindStem
	KindAnnotation
	numKinds
)

func (k Kind) String() string {
	return [numKinds]string{
		"curve", "simple-curve", "bar", "scatter", "errorbar",
		"candlestick", "shaded", "stem", "annotation",
	}[k]
}

// Item is the interface shared by all plot items. An item exclusively owns
// its data buffers; SetData replaces them wholesale and never aliases the
// caller's slices into later calls.
type Item interface {
	Kind() Kind

	// Label is the text shown for this item in a legend.
	Label() string
	SetLabel(string)

	Visible() bool
	SetVisible(bool)

	// SetLogX and SetLogY switch the bounding computation of the item to
	// decimal-log space on the respective axis.
	SetLogX(bool)
	SetLogY(bool)

	// BoundingRect returns the minimal rect covering the item's data in
	// (possibly log-remapped) data coordinates. It returns the null rect
	// when the item has no finite data. The result is cached until the
	// data or a mode flag changes.
	BoundingRect() Rect

	// ClearData empties the backing arrays and resets the bound to the
	// null rect.
	ClearData()

	base() *itemBase
}

// itemBase carries the state common to all item kinds. It holds a passive
// reference to the owning canvas, used only to validate attachment and to
// trigger the synchronous auto-range recomputation; the canvas remains the
// owner of the relationship.
type itemBase struct {
	kind    Kind
	label   string
	visible bool

	logX, logY  bool
	checkFinite bool

	canvas *Canvas

	bounds func() Rect
	cached Rect
	valid  bool
}

func newItemBase(kind Kind, label string) itemBase {
	return itemBase{kind: kind, label: label, visible: true, checkFinite: true}
}

func (b *itemBase) base() *itemBase { return b }

func (b *itemBase) Kind() Kind { return b.kind }

func (b *itemBase) Label() string { return b.label }

func (b *itemBase) SetLabel(label string) { b.label = label }

func (b *itemBase) Visible() bool { return b.visible }

// SetVisible shows or hides the item. Hidden items keep their data but do
// not contribute to auto-ranging.
func (b *itemBase) SetVisible(v bool) {
	if b.visible == v {
		return
	}
	b.visible = v
	if b.canvas != nil {
		b.canvas.updateAutoRange()
	}
}

func (b *itemBase) SetLogX(on bool) {
	if b.logX == on {
		return
	}
	b.logX = on
	b.invalidate()
}

func (b *itemBase) SetLogY(on bool) {
	if b.logY == on {
		return
	}
	b.logY = on
	b.invalidate()
}

// SetCheckFinite selects the NaN policy of the bounding computation: when
// enabled (the default), non-finite y samples are treated as 0 and keep
// participating; when disabled they are excluded from the y reduction
// without shrinking the x extent.
func (b *itemBase) SetCheckFinite(on bool) {
	if b.checkFinite == on {
		return
	}
	b.checkFinite = on
	b.invalidate()
}

func (b *itemBase) BoundingRect() Rect {
	if !b.valid {
		b.cached = b.bounds()
		b.valid = true
	}
	return b.cached
}

// invalidate drops the cached bound and informs the canvas, which
// synchronously recomputes the aggregate range before this call returns.
func (b *itemBase) invalidate() {
	b.valid = false
	if b.canvas != nil {
		b.canvas.updateAutoRange()
	}
}

// checkLengths verifies that every column has exactly n entries.
func checkLengths(n int, cols ...[]float64) error {
	for _, col := range cols {
		if len(col) != n {
			return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, n, len(col))
		}
	}
	return nil
}

// boundsRect assembles a rect from per-axis min/max values, returning the
// null rect if any of them is undetermined.
func boundsRect(xlo, xhi, ylo, yhi float64) Rect {
	if math.IsNaN(xlo) || math.IsNaN(xhi) || math.IsNaN(ylo) || math.IsNaN(yhi) {
		return Rect{}
	}
	return Rect{X: xlo, Y: ylo, W: xhi - xlo, H: yhi - ylo}
}
