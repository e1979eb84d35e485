package nodegraph

import "math"

// Point is a 2D coordinate in whatever space the caller is working in
// (editor/canvas/client/screen — the type itself is space-agnostic,
// matching the teacher's single Vec2 used across Transform/Camera/Node).
type Point struct {
	X, Y float64
}

func (p Point) Add(o Point) Point { return Point{p.X + o.X, p.Y + o.Y} }
func (p Point) Sub(o Point) Point { return Point{p.X - o.X, p.Y - o.Y} }
func (p Point) Scale(s float64) Point { return Point{p.X * s, p.Y * s} }
func (p Point) Mul(o Point) Point { return Point{p.X * o.X, p.Y * o.Y} }

func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

func (p Point) Normalized() Point {
	l := p.Length()
	if l < 1e-9 {
		return Point{}
	}
	return Point{p.X / l, p.Y / l}
}

func (p Point) Dot(o Point) float64 { return p.X*o.X + p.Y*o.Y }

// Size is a width/height pair.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle in editor space, stored as min/max
// corners (matches the teacher's transform.go bounds representation,
// which keeps min/max rather than origin+size to make union/intersect
// branch-free).
type Rect struct {
	Min, Max Point
}

func RectFromPosSize(pos Point, size Size) Rect {
	return Rect{Min: pos, Max: Point{pos.X + size.W, pos.Y + size.H}}
}

func (r Rect) Size() Size { return Size{r.Max.X - r.Min.X, r.Max.Y - r.Min.Y} }
func (r Rect) Center() Point {
	return Point{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

func (r Rect) ContainsRect(o Rect) bool {
	return o.Min.X >= r.Min.X && o.Min.Y >= r.Min.Y && o.Max.X <= r.Max.X && o.Max.Y <= r.Max.Y
}

func (r Rect) Intersects(o Rect) bool {
	return r.Min.X <= o.Max.X && r.Max.X >= o.Min.X && r.Min.Y <= o.Max.Y && r.Max.Y >= o.Min.Y
}

// Inflate grows the rectangle by d on every side (negative d shrinks).
func (r Rect) Inflate(d float64) Rect {
	return Rect{
		Min: Point{r.Min.X - d, r.Min.Y - d},
		Max: Point{r.Max.X + d, r.Max.Y + d},
	}
}

func (r Rect) Translate(d Point) Rect {
	return Rect{r.Min.Add(d), r.Max.Add(d)}
}

func (r Rect) Union(o Rect) Rect {
	return Rect{
		Min: Point{math.Min(r.Min.X, o.Min.X), math.Min(r.Min.Y, o.Min.Y)},
		Max: Point{math.Max(r.Max.X, o.Max.X), math.Max(r.Max.Y, o.Max.Y)},
	}
}

// normalized returns r with Min/Max swapped per-axis if the rect was
// built from an out-of-order drag (rubber-band selection).
func (r Rect) normalized() Rect {
	if r.Min.X > r.Max.X {
		r.Min.X, r.Max.X = r.Max.X, r.Min.X
	}
	if r.Min.Y > r.Max.Y {
		r.Min.Y, r.Max.Y = r.Max.Y, r.Min.Y
	}
	return r
}

// Bezier is a cubic Bézier curve used for link strokes.
type Bezier struct {
	P0, P1, P2, P3 Point
}

func lerpPoint(a, b Point, t float64) Point {
	return Point{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
}

// Sample evaluates the curve at parameter t via De Casteljau.
func (b Bezier) Sample(t float64) Point {
	ab := lerpPoint(b.P0, b.P1, t)
	bc := lerpPoint(b.P1, b.P2, t)
	cd := lerpPoint(b.P2, b.P3, t)
	abbc := lerpPoint(ab, bc, t)
	bccd := lerpPoint(bc, cd, t)
	return lerpPoint(abbc, bccd, t)
}

// Tangent returns the (unnormalized) derivative of the curve at t.
func (b Bezier) Tangent(t float64) Point {
	mt := 1 - t
	d1 := b.P1.Sub(b.P0).Scale(3 * mt * mt)
	d2 := b.P2.Sub(b.P1).Scale(6 * mt * t)
	d3 := b.P3.Sub(b.P2).Scale(3 * t * t)
	return d1.Add(d2).Add(d3)
}

// Bounds returns the axis-aligned bounding rectangle of the curve,
// sampled coarsely (sufficient for hit-test rejection, not exact).
func (b Bezier) Bounds() Rect {
	r := Rect{Min: b.P0, Max: b.P0}
	const steps = 32
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		p := b.Sample(t)
		r.Min.X = math.Min(r.Min.X, p.X)
		r.Min.Y = math.Min(r.Min.Y, p.Y)
		r.Max.X = math.Max(r.Max.X, p.X)
		r.Max.Y = math.Max(r.Max.Y, p.Y)
	}
	return r
}

// Split divides the curve at t into two sub-curves that reproduce the
// original samples when concatenated.
func (b Bezier) Split(t float64) (left, right Bezier) {
	ab := lerpPoint(b.P0, b.P1, t)
	bc := lerpPoint(b.P1, b.P2, t)
	cd := lerpPoint(b.P2, b.P3, t)
	abbc := lerpPoint(ab, bc, t)
	bccd := lerpPoint(bc, cd, t)
	mid := lerpPoint(abbc, bccd, t)
	left = Bezier{b.P0, ab, abbc, mid}
	right = Bezier{mid, bccd, cd, b.P3}
	return
}

// Length estimates arc length by fixed-step polyline summation.
func (b Bezier) Length(steps int) float64 {
	if steps <= 0 {
		steps = 64
	}
	prev := b.P0
	total := 0.0
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := b.Sample(t)
		total += p.Sub(prev).Length()
		prev = p
	}
	return total
}

// Walk advances along the curve by a fixed arc-length step, returning
// the point at each stop — used to place Flow markers at even spacing.
func (b Bezier) Walk(step float64, startOffset float64) []Point {
	if step <= 0 {
		return nil
	}
	const resolution = 256
	pts := make([]Point, 0, resolution/4)
	prev := b.P0
	acc := -startOffset
	for i := 1; i <= resolution; i++ {
		t := float64(i) / resolution
		p := b.Sample(t)
		seg := p.Sub(prev).Length()
		acc += seg
		for acc >= step {
			acc -= step
			pts = append(pts, p)
		}
		prev = p
	}
	return pts
}

// ProjectPoint returns the closest point on the curve to q (coarse
// scan followed by refinement) plus the parameter t and distance.
func (b Bezier) ProjectPoint(q Point) (closest Point, t float64, dist float64) {
	bestT, bestD := 0.0, math.MaxFloat64
	const coarse = 50
	for i := 0; i <= coarse; i++ {
		ct := float64(i) / coarse
		d := b.Sample(ct).Sub(q).Length()
		if d < bestD {
			bestD, bestT = d, ct
		}
	}
	lo := math.Max(0, bestT-1.0/coarse)
	hi := math.Min(1, bestT+1.0/coarse)
	const refine = 10
	for i := 0; i <= refine; i++ {
		ct := lo + (hi-lo)*float64(i)/refine
		d := b.Sample(ct).Sub(q).Length()
		if d < bestD {
			bestD, bestT = d, ct
		}
	}
	return b.Sample(bestT), bestT, bestD
}

// LineIntersect returns the intersection points between the curve and
// the segment a-c, found by sampling the curve into a polyline and
// testing each segment pair for intersection. A crossing that lands
// exactly on a sample point is reported once per adjoining segment.
func (b Bezier) LineIntersect(a, c Point) []Point {
	var out []Point
	const steps = 64
	prev := b.P0
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		cur := b.Sample(t)
		if p, ok := segmentIntersect(prev, cur, a, c); ok {
			out = append(out, p)
		}
		prev = cur
	}
	return out
}

func segmentIntersect(p1, p2, p3, p4 Point) (Point, bool) {
	d := (p2.X-p1.X)*(p4.Y-p3.Y) - (p2.Y-p1.Y)*(p4.X-p3.X)
	if math.Abs(d) < 1e-9 {
		return Point{}, false
	}
	t := ((p3.X-p1.X)*(p4.Y-p3.Y) - (p3.Y-p1.Y)*(p4.X-p3.X)) / d
	u := ((p3.X-p1.X)*(p2.Y-p1.Y) - (p3.Y-p1.Y)*(p2.X-p1.X)) / d
	if t < 0 || t > 1 || u < 0 || u > 1 {
		return Point{}, false
	}
	return Point{p1.X + t*(p2.X-p1.X), p1.Y + t*(p2.Y-p1.Y)}, true
}
