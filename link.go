package nodegraph

// Link connects a provider pin (StartPinID) to a receiver pin
// (EndPinID) via a cubic Bézier curve (spec §3).
type Link struct {
	ID          EntityID
	StartPinID  EntityID
	EndPinID    EntityID
	Color       Color
	Thickness   float64
	ExtraThickness float64

	startPos, endPos Point

	live bool
}

func (l *Link) reset() { l.live = false }

// curve builds the cubic Bézier for the link's current endpoints.
func (l *Link) curve(ctx *Context) (Bezier, bool) {
	start, ok1 := ctx.store.findPin(l.StartPinID)
	end, ok2 := ctx.store.findPin(l.EndPinID)
	if !ok1 || !ok2 || !start.live || !end.live {
		return Bezier{}, false
	}
	halfDist := start.Pivot.Center().Sub(end.Pivot.Center()).Length() / 2
	strength := start.Strength
	if strength <= 0 {
		strength = 100
	}
	es := easedStrength(strength, halfDist)
	p0 := start.Pivot.Center()
	p3 := end.Pivot.Center()
	p1 := p0.Add(start.Direction.Scale(es))
	p2 := p3.Add(end.Direction.Scale(es))
	return Bezier{p0, p1, p2, p3}, true
}

// Visible reports whether both endpoints are live and the curve's
// bounds intersect the visible window.
func (l *Link) Visible(ctx *Context) bool {
	b, ok := l.curve(ctx)
	if !ok {
		return false
	}
	visible := ctx.Canvas.GetVisibleBounds()
	return b.Bounds().Inflate(l.Thickness).Intersects(visible)
}

// UpdateEndpoints writes the closest-line endpoints computed from both
// pins' pivots.
func (l *Link) UpdateEndpoints(ctx *Context) {
	start, ok1 := ctx.store.findPin(l.StartPinID)
	end, ok2 := ctx.store.findPin(l.EndPinID)
	if !ok1 || !ok2 {
		return
	}
	l.startPos, l.endPos = start.GetClosestLine(end)
}

// HitPoint rejects by inflated bounding rect then projects the point
// onto the curve (spec §3: 50-step coarse scan, 10x refinement).
func (l *Link) HitPoint(ctx *Context, q Point) bool {
	b, ok := l.curve(ctx)
	if !ok {
		return false
	}
	if !b.Bounds().Inflate(l.Thickness + l.ExtraThickness).Contains(q) {
		return false
	}
	_, _, dist := b.ProjectPoint(q)
	return dist <= l.Thickness+l.ExtraThickness
}

// HitRect tests containment or cubic-line intersection against the
// four rectangle edges.
func (l *Link) HitRect(ctx *Context, r Rect, allowIntersect bool) bool {
	b, ok := l.curve(ctx)
	if !ok {
		return false
	}
	if r.ContainsRect(b.Bounds()) {
		return true
	}
	if !allowIntersect {
		return false
	}
	corners := [4]Point{r.Min, {r.Max.X, r.Min.Y}, r.Max, {r.Min.X, r.Max.Y}}
	for i := 0; i < 4; i++ {
		if len(b.LineIntersect(corners[i], corners[(i+1)%4])) > 0 {
			return true
		}
	}
	return false
}

// Draw issues a cubic-Bézier stroke, with an arrow tip at either end
// that declares a nonzero arrow size.
func (l *Link) Draw(ctx *Context, dl *DrawList, style *Style, startArrow, endArrow float64) {
	b, ok := l.curve(ctx)
	if !ok {
		return
	}
	col := l.Color
	if col == (Color{}) {
		col = style.Color(ColorFlow)
	}
	strokeBezier(dl.Current(), b, col, l.Thickness)
	if startArrow > 0 {
		drawArrow(dl.Current(), b.P0, b.Tangent(0).Normalized().Scale(-1), startArrow, col)
	}
	if endArrow > 0 {
		// Use the tangent at the intended endpoint (t=1) — the source
		// has a known bug computing this as tangent(0) in two call
		// sites; do not replicate it (design note).
		drawArrow(dl.Current(), b.P3, b.Tangent(1).Normalized(), endArrow, col)
	}
}

// strokeBezier tessellates the curve into a ribbon of the given
// thickness using perpendicular offsets along the polyline, grounded
// on the teacher's Rope mesh generation (mesh_helpers.go).
func strokeBezier(ch *DrawChannel, b Bezier, col Color, thickness float64) {
	const steps = 24
	half := thickness / 2
	if half <= 0 {
		half = 1
	}
	prevLeft, prevRight := Point{}, Point{}
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		p := b.Sample(t)
		tan := b.Tangent(t).Normalized()
		normal := Point{-tan.Y, tan.X}
		left := p.Add(normal.Scale(half))
		right := p.Sub(normal.Scale(half))
		if i > 0 {
			ch.AddTriangle(prevLeft, left, right, col, Rect{}, 0)
			ch.AddTriangle(prevLeft, right, prevRight, col, Rect{}, 0)
		}
		prevLeft, prevRight = left, right
	}
}

func drawArrow(ch *DrawChannel, tip Point, dir Point, size float64, col Color) {
	back := tip.Sub(dir.Scale(size))
	normal := Point{-dir.Y, dir.X}
	left := back.Add(normal.Scale(size / 2))
	right := back.Sub(normal.Scale(size / 2))
	ch.AddTriangle(tip, left, right, col, Rect{}, 0)
}
