package foamgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAxisTicksFollowRange(t *testing.T) {
	canvas := NewCanvas()
	axis := NewAxis(Horizontal)
	axis.LinkToCanvas(canvas)

	canvas.SetTargetRange(Rect{0, 0, 10, 1}, 0)
	ticks := axis.Ticks()
	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		assert.GreaterOrEqual(t, tick.Value, 0.0)
		assert.LessOrEqual(t, tick.Value, 10.0)
	}

	canvas.SetTargetRange(Rect{100, 0, 50, 1}, 0)
	ticks = axis.Ticks()
	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		assert.GreaterOrEqual(t, tick.Value, 100.0)
		assert.LessOrEqual(t, tick.Value, 150.0)
	}
}

func TestAxisVerticalRange(t *testing.T) {
	canvas := NewCanvas()
	axis := NewAxis(Vertical)
	axis.LinkToCanvas(canvas)

	canvas.SetTargetRange(Rect{0, -5, 1, 15}, 0)
	lo, hi := axis.Range()
	assert.Equal(t, -5.0, lo)
	assert.Equal(t, 10.0, hi)
}

func TestAxisLogScaleTogglesItems(t *testing.T) {
	canvas := NewCanvas()
	curve := NewCurve("")
	require.NoError(t, canvas.AddItem(curve))
	require.NoError(t, curve.SetData([]float64{1, 10, 100}, []float64{1, 2, 3}))

	axis := NewAxis(Horizontal)
	axis.LinkToCanvas(canvas)
	axis.SetLogScale(true)

	// The item now reports exponents on x.
	assert.True(t, rectNear(curve.BoundingRect(), Rect{0, 1, 2, 2}),
		"bounds = %v", curve.BoundingRect())

	axis.SetLogScale(false)
	assert.True(t, rectNear(curve.BoundingRect(), Rect{1, 1, 99, 2}),
		"linear bounds = %v", curve.BoundingRect())
}

func TestAxisLogTicksInExponentSpace(t *testing.T) {
	canvas := NewCanvas()
	axis := NewAxis(Horizontal)
	axis.LinkToCanvas(canvas)
	axis.SetLogScale(true)

	// The canvas range holds exponents 0..3, i.e. values 1..1000.
	canvas.SetTargetRange(Rect{0, 0, 3, 1}, 0)
	ticks := axis.Ticks()
	require.NotEmpty(t, ticks)
	for _, tick := range ticks {
		assert.GreaterOrEqual(t, tick.Value, 0.0)
		assert.LessOrEqual(t, tick.Value, 3.0)
	}
}

func TestAxisNoCanvas(t *testing.T) {
	axis := NewAxis(Horizontal)
	assert.Empty(t, axis.Ticks())
}
