package foamgraph

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDataLengthMismatch(t *testing.T) {
	c := NewCurve("")
	require.NoError(t, c.SetData([]float64{1, 2}, []float64{3, 4}))

	err := c.SetData([]float64{1, 2, 3}, []float64{4, 5})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrLengthMismatch))

	// The rejected call must not change anything.
	x, y := c.Data()
	assert.Equal(t, []float64{1, 2}, x)
	assert.Equal(t, []float64{3, 4}, y)
	assert.True(t, rectNear(c.BoundingRect(), Rect{1, 3, 1, 1}))
}

func TestSetDataLengthMismatchAllKinds(t *testing.T) {
	three := []float64{1, 2, 3}
	two := []float64{1, 2}

	for _, tc := range []struct {
		name string
		call func() error
	}{
		{"curve", func() error { return NewCurve("").SetData(three, two) }},
		{"curve-yerr", func() error {
			return NewCurve("").SetDataWithYErr(three, three, two)
		}},
		{"simple-curve", func() error { return NewSimpleCurve("").SetData(three, two) }},
		{"scatter", func() error { return NewScatter("").SetData(three, two) }},
		{"bar", func() error { return NewBar("").SetData(three, two) }},
		{"errorbar", func() error {
			return NewErrorbar("").SetData(three, nil, three, two)
		}},
		{"candlestick", func() error {
			return NewCandlestick("").SetData(three, three, three, three, two)
		}},
		{"shaded", func() error { return NewShaded("").SetData(three, three, two) }},
		{"stem", func() error { return NewStem("").SetData(three, two) }},
		{"annotation", func() error {
			return NewAnnotation("").SetData(three, three, []string{"a"})
		}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.call(), ErrLengthMismatch)
		})
	}
}

func TestClearDataResetsBounds(t *testing.T) {
	x := []float64{1, 2, 3}
	y := []float64{4, 5, 6}

	curve := NewCurve("")
	require.NoError(t, curve.SetData(x, y))
	scatter := NewScatter("")
	require.NoError(t, scatter.SetData(x, y))
	bar := NewBar("")
	require.NoError(t, bar.SetData(x, y))
	stem := NewStem("")
	require.NoError(t, stem.SetData(x, y))
	shaded := NewShaded("")
	require.NoError(t, shaded.SetData(x, y, y))
	errorbar := NewErrorbar("")
	require.NoError(t, errorbar.SetData(x, y, y, y))
	candle := NewCandlestick("")
	require.NoError(t, candle.SetData(x, y, y, y, y))
	annotation := NewAnnotation("")
	require.NoError(t, annotation.SetData(x, y, []string{"a", "b", "c"}))

	items := []Item{curve, scatter, bar, stem, shaded, errorbar, candle, annotation}
	for _, it := range items {
		assert.False(t, it.BoundingRect().IsNull(), "%s has data", it.Kind())
		it.ClearData()
		assert.True(t, it.BoundingRect().IsNull(), "%s after clear", it.Kind())
	}
}

func TestItemVisibility(t *testing.T) {
	c := NewCanvas()
	it := NewCurve("v")
	require.NoError(t, c.AddItem(it))
	require.NoError(t, it.SetData([]float64{0, 1}, []float64{0, 1}))

	assert.False(t, c.GraphRect().IsNull())
	it.SetVisible(false)
	assert.True(t, c.GraphRect().IsNull())
	it.SetVisible(true)
	assert.False(t, c.GraphRect().IsNull())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "curve", KindCurve.String())
	assert.Equal(t, "annotation", KindAnnotation.String())
}
