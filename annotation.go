package foamgraph

import "fmt"

// Annotation places a text label at every (x, y) anchor point. Its bound is
// the envelope of the anchor points; the rendered text extends beyond it in
// device space. Annotations are excluded from the legend.
type Annotation struct {
	itemBase

	x, y  []float64
	texts []string
}

// NewAnnotation returns an empty annotation item.
func NewAnnotation(label string) *Annotation {
	a := &Annotation{itemBase: newItemBase(KindAnnotation, label)}
	a.bounds = a.computeBounds
	return a
}

// SetData replaces the annotation's anchors and texts.
func (a *Annotation) SetData(x, y []float64, texts []string) error {
	if err := checkLengths(len(x), y); err != nil {
		return err
	}
	if len(texts) != len(x) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(texts))
	}
	a.x = append(a.x[:0:0], x...)
	a.y = append(a.y[:0:0], y...)
	a.texts = append(a.texts[:0:0], texts...)
	a.invalidate()
	return nil
}

// ClearData implements Item.
func (a *Annotation) ClearData() {
	a.x, a.y, a.texts = nil, nil, nil
	a.invalidate()
}

// Data returns the item's backing arrays.
func (a *Annotation) Data() (x, y []float64, texts []string) {
	return a.x, a.y, a.texts
}

func (a *Annotation) computeBounds() Rect {
	return curveBounds(a.x, a.y, nil, a.checkFinite, a.logX, a.logY)
}
