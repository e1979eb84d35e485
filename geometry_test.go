package nodegraph

import "testing"

func approxEqual(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func approxPoint(a, b Point, eps float64) bool {
	return approxEqual(a.X, b.X, eps) && approxEqual(a.Y, b.Y, eps)
}

func TestCanvasRoundTrip(t *testing.T) {
	c := NewCanvas()
	c.SetWindow(Point{10, 20}, Size{800, 600})
	c.SetZoom(1.5)
	c.SetOrigin(Point{30, -40})

	p := Point{123.4, 567.8}
	screen := c.ToScreen(p)
	back := c.FromScreen(screen)
	if !approxPoint(p, back, 1e-4) {
		t.Errorf("round trip mismatch: want %v, got %v", p, back)
	}
}

func TestBezierSplitReproducesSamples(t *testing.T) {
	b := Bezier{Point{0, 0}, Point{30, 100}, Point{70, -100}, Point{100, 0}}
	left, right := b.Split(0.4)

	for i := 0; i <= 10; i++ {
		t2 := float64(i) / 10
		want := b.Sample(t2)
		var got Point
		if t2 <= 0.4 {
			got = left.Sample(t2 / 0.4)
		} else {
			got = right.Sample((t2 - 0.4) / 0.6)
		}
		if !approxPoint(want, got, 1e-3) {
			t.Errorf("split mismatch at t=%v: want %v, got %v", t2, want, got)
		}
	}
}

func TestBezierLineIntersect(t *testing.T) {
	b := Bezier{Point{0, 0}, Point{50, 200}, Point{50, -200}, Point{100, 0}}
	pts := b.LineIntersect(Point{-10, 0}, Point{110, 0})
	if len(pts) == 0 {
		t.Fatalf("expected at least one intersection with the x-axis")
	}
	for _, p := range pts {
		if !approxEqual(p.Y, 0, 1e-3) {
			t.Errorf("intersection point not on line: %v", p)
		}
		_, _, dist := b.ProjectPoint(p)
		if dist > 1e-2 {
			t.Errorf("intersection point not on curve: dist=%v", dist)
		}
	}
}

func TestRectContainsAndIntersects(t *testing.T) {
	r := RectFromPosSize(Point{0, 0}, Size{100, 100})
	if !r.Contains(Point{50, 50}) {
		t.Errorf("expected rect to contain center point")
	}
	other := RectFromPosSize(Point{90, 90}, Size{50, 50})
	if !r.Intersects(other) {
		t.Errorf("expected overlapping rects to intersect")
	}
	far := RectFromPosSize(Point{1000, 1000}, Size{10, 10})
	if r.Intersects(far) {
		t.Errorf("expected distant rects to not intersect")
	}
}
