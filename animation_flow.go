package nodegraph

import "math"

// FlowAnimation pulses markers along a link's Bézier curve to visualize
// execution, grounded directly on the teacher's particle.go: a small
// pool of marker "particles" walked along a path instead of a 2D
// velocity field, with the same per-particle lerp-over-lifetime shape
// (radius 6->2px, alpha fades by (1-progress)^0.35).
type FlowAnimation struct {
	LinkID EntityID

	offset float64
	speed  float64 // pixels/sec
	step   float64 // FlowMarkerDistance

	playing bool

	cachedCurve  Bezier
	cachedValid  bool
	cachedPoints []Point
}

func newFlowAnimation(linkID EntityID, style *Style) *FlowAnimation {
	return &FlowAnimation{
		LinkID:  linkID,
		speed:   style.Var(VarFlowSpeed),
		step:    style.Var(VarFlowMarkerDistance),
		playing: true,
	}
}

// invalidate is called when either endpoint moves, forcing a re-walk.
func (f *FlowAnimation) invalidate() { f.cachedValid = false }

func (f *FlowAnimation) update(dt float64) {
	if !f.playing {
		return
	}
	f.offset += f.speed * dt
}

// markers returns the current marker draw list: each a (point, radius,
// alpha) tuple, recomputed from the path cache plus the current walk
// offset.
type flowMarker struct {
	Pos    Point
	Radius float64
	Alpha  float64
}

func (f *FlowAnimation) markers(curve Bezier) []flowMarker {
	if !f.cachedValid || curve != f.cachedCurve {
		f.cachedCurve = curve
		f.cachedPoints = curve.Walk(f.step, 0)
		f.cachedValid = true
	}
	length := curve.Length(64)
	if length <= 0 || f.step <= 0 {
		return nil
	}
	walkOffset := math.Mod(f.offset, f.step)
	out := make([]flowMarker, 0, len(f.cachedPoints))
	for i, p := range f.cachedPoints {
		dist := float64(i)*f.step + walkOffset
		progress := dist / length
		if progress > 1 {
			continue
		}
		radius := 6 + (2-6)*progress
		alpha := math.Pow(1-progress, 0.35)
		out = append(out, flowMarker{Pos: p, Radius: radius, Alpha: alpha})
	}
	return out
}

func drawFlowMarkers(ch *DrawChannel, markers []flowMarker, col Color) {
	for _, m := range markers {
		c := col
		c.A *= float32(m.Alpha)
		drawFilledCircle(ch, m.Pos, m.Radius, c)
	}
}

func drawFilledCircle(ch *DrawChannel, center Point, radius float64, col Color) {
	const segments = 12
	prev := center.Add(Point{radius, 0})
	for i := 1; i <= segments; i++ {
		angle := 2 * math.Pi * float64(i) / segments
		cur := center.Add(Point{radius * math.Cos(angle), radius * math.Sin(angle)})
		ch.AddTriangle(center, prev, cur, col, Rect{}, 0)
		prev = cur
	}
}
