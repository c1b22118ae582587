package foamgraph

// LegendEntry is one row of a canvas legend.
type LegendEntry struct {
	Label   string
	Kind    Kind
	Visible bool
}

// Legend lists the labelled items of a canvas in their attachment order.
// Annotations never appear; neither do items without a label.
type Legend struct {
	canvas *Canvas
}

// NewLegend returns a legend for the given canvas.
func NewLegend(c *Canvas) *Legend {
	return &Legend{canvas: c}
}

// Entries returns the current legend rows.
func (l *Legend) Entries() []LegendEntry {
	var entries []LegendEntry
	for _, it := range l.canvas.Items() {
		if it.Kind() == KindAnnotation || it.Label() == "" {
			continue
		}
		entries = append(entries, LegendEntry{
			Label:   it.Label(),
			Kind:    it.Kind(),
			Visible: it.Visible(),
		})
	}
	return entries
}
