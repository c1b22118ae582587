// +build ignore

package main

import (
	"fmt"
	"math"

	"github.com/zhujun98/foamgraph-go"
)

func main() {
	canvas := foamgraph.NewCanvas()
	canvas.Resize(foamgraph.Rect{W: 640, H: 480})

	curve := foamgraph.NewCurve("signal")
	scatter := foamgraph.NewScatter("samples")
	stem := foamgraph.NewStem("pulses")

	for _, it := range []foamgraph.Item{curve, scatter, stem} {
		if err := canvas.AddItem(it); err != nil {
			panic(err)
		}
	}

	n := 100
	x := make([]float64, n)
	y := make([]float64, n)
	for i := range x {
		x[i] = float64(i) / 10
		y[i] = math.Sin(x[i]) * math.Exp(-x[i]/8)
	}
	curve.SetData(x, y)
	scatter.SetData(x, y)
	stem.SetData([]float64{1, 3, 5, 7}, []float64{0.5, -0.3, 0.8, -0.6})

	fmt.Println("graph:", canvas.GraphRect())
	fmt.Println("view: ", canvas.ViewRect())

	xAxis := foamgraph.NewAxis(foamgraph.Horizontal)
	xAxis.LinkToCanvas(canvas)
	for _, t := range xAxis.Ticks() {
		fmt.Printf("  tick %6.2f %q\n", t.Value, t.Label)
	}

	legend := foamgraph.NewLegend(canvas)
	for _, e := range legend.Entries() {
		fmt.Printf("  legend %-8s %s\n", e.Kind, e.Label)
	}

	// Zoom into the first half about the device center.
	canvas.SetMouseMode(foamgraph.MouseZoom)
	canvas.ZoomRect(0, 0, 320, 480)
	fmt.Println("zoomed:", canvas.ViewRect())
}
