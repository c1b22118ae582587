package foamgraph

import "testing"

func TestTransformMapping(t *testing.T) {
	view := Rect{0, 0, 10, 10}
	device := Rect{0, 0, 100, 100}
	tr := makeTransform(view, device, false, false)
	if !tr.Valid() {
		t.Fatal("transform not valid")
	}

	// Device y grows downwards: the view's bottom edge maps to the
	// device's bottom row.
	dx, dy, ok := tr.ToDevice(0, 0)
	if !ok || !near(dx, 0) || !near(dy, 100) {
		t.Errorf("ToDevice(0,0) = %v, %v, %v", dx, dy, ok)
	}
	dx, dy, _ = tr.ToDevice(10, 10)
	if !near(dx, 100) || !near(dy, 0) {
		t.Errorf("ToDevice(10,10) = %v, %v", dx, dy)
	}
}

func TestTransformRoundTrip(t *testing.T) {
	tr := makeTransform(Rect{-3, 2, 7, 5}, Rect{10, 20, 300, 150}, false, false)
	for _, p := range [][2]float64{{0, 0}, {-3, 2}, {4, 7}, {1.5, 3.25}} {
		dx, dy, ok := tr.ToDevice(p[0], p[1])
		if !ok {
			t.Fatalf("ToDevice(%v) not ok", p)
		}
		x, y, ok := tr.ToData(dx, dy)
		if !ok || !near(x, p[0]) || !near(y, p[1]) {
			t.Errorf("round trip %v = (%v, %v)", p, x, y)
		}
	}
}

func TestTransformInverted(t *testing.T) {
	view := Rect{0, 0, 10, 10}
	device := Rect{0, 0, 100, 100}

	tr := makeTransform(view, device, true, false)
	dx, _, _ := tr.ToDevice(0, 0)
	if !near(dx, 100) {
		t.Errorf("inverted x: ToDevice(0,0).x = %v, want 100", dx)
	}

	tr = makeTransform(view, device, false, true)
	_, dy, _ := tr.ToDevice(0, 0)
	if !near(dy, 0) {
		t.Errorf("inverted y: ToDevice(0,0).y = %v, want 0", dy)
	}
}

func TestTransformDeviceUnavailable(t *testing.T) {
	tr := makeTransform(Rect{0, 0, 10, 10}, Rect{}, false, false)
	if tr.Valid() {
		t.Fatal("transform with zero-area device must not be valid")
	}
	if _, _, ok := tr.ToDevice(1, 1); ok {
		t.Error("ToDevice on invalid transform returned ok")
	}
	if _, _, ok := tr.ToData(1, 1); ok {
		t.Error("ToData on invalid transform returned ok")
	}
	if _, ok := tr.RectToDevice(Rect{0, 0, 1, 1}); ok {
		t.Error("RectToDevice on invalid transform returned ok")
	}
}

func TestTransformRects(t *testing.T) {
	tr := makeTransform(Rect{0, 0, 10, 10}, Rect{0, 0, 100, 100}, false, false)
	got, ok := tr.RectToDevice(Rect{2, 2, 4, 4})
	if !ok || !rectNear(got, Rect{20, 40, 40, 40}) {
		t.Errorf("RectToDevice = %v, %v", got, ok)
	}
	back, ok := tr.RectToData(got)
	if !ok || !rectNear(back, Rect{2, 2, 4, 4}) {
		t.Errorf("RectToData = %v, %v", back, ok)
	}
}
