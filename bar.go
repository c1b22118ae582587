package foamgraph

import (
	"math"

	"github.com/zhujun98/foamgraph-go/series"
)

// Bar draws one rectangle per sample, anchored at the zero baseline. The
// rectangle width is a fraction of the smallest spacing between x samples.
//
// When several bars share a canvas they are dodged side by side: the
// canvas assigns each one a slot by ordinal position among the currently
// attached bars, along the canvas bar orientation. The slot therefore
// shifts when an earlier bar is removed.
type Bar struct {
	itemBase

	x, y  []float64
	width float64
}

// NewBar returns an empty bar item with full width.
func NewBar(label string) *Bar {
	b := &Bar{itemBase: newItemBase(KindBar, label), width: 1}
	b.bounds = b.computeBounds
	return b
}

// SetData replaces the bar's samples.
func (b *Bar) SetData(x, y []float64) error {
	if err := checkLengths(len(x), y); err != nil {
		return err
	}
	b.x = append(b.x[:0:0], x...)
	b.y = append(b.y[:0:0], y...)
	b.invalidate()
	return nil
}

// ClearData implements Item.
func (b *Bar) ClearData() {
	b.x, b.y = nil, nil
	b.invalidate()
}

// Data returns the item's backing arrays.
func (b *Bar) Data() (x, y []float64) { return b.x, b.y }

// Width returns the bar width as a fraction of the x sample spacing.
func (b *Bar) Width() float64 { return b.width }

// SetWidth sets the bar width as a fraction of the x sample spacing.
// Values outside (0, 1] fall back to 1.
func (b *Bar) SetWidth(w float64) {
	if w <= 0 || w > 1 {
		w = 1
	}
	b.width = w
	b.invalidate()
}

func (b *Bar) computeBounds() Rect {
	x, cols := series.DropNaNRows(b.x, b.y)
	y := cols[0]
	if b.checkFinite {
		y = series.ZeroNonFinite(y)
	}
	if b.logX {
		x = series.LogScale(x)
	}
	if b.logY {
		y = series.LogScale(y)
	}

	xlo, xhi := series.MinMax(x)
	if math.IsNaN(xlo) {
		return Rect{}
	}
	slot, offset := b.dodge(x)

	// Bars grow from the baseline, so 0 is always part of the value axis.
	vlo, vhi := series.MinMax(y)
	if math.IsNaN(vlo) || vlo > 0 {
		vlo = 0
	}
	if math.IsNaN(vhi) || vhi < 0 {
		vhi = 0
	}
	clo := xlo + offset - slot/2
	chi := xhi + offset + slot/2

	if b.canvas != nil && b.canvas.BarOrientation() == Horizontal {
		return RectFromCorners(vlo, clo, vhi, chi)
	}
	return RectFromCorners(clo, vlo, chi, vhi)
}

// dodge returns the bar's slot width and center offset among the bars of
// its canvas. A detached bar occupies its full width with no offset.
func (b *Bar) dodge(x []float64) (slot, offset float64) {
	spacing := series.MinSpacing(x, 1)
	full := b.width * spacing
	k, m := 0, 1
	if b.canvas != nil {
		k, m = b.canvas.barSlot(b)
	}
	slot = full / float64(m)
	offset = float64(2*k-m+1) * slot / 2
	return slot, offset
}
