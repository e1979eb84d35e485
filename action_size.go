package nodegraph

// resizeEdge identifies which border region a size drag started on.
type resizeEdge int

const (
	edgeNone resizeEdge = iota
	edgeTop
	edgeBottom
	edgeLeft
	edgeRight
	edgeTopLeft
	edgeTopRight
	edgeBottomLeft
	edgeBottomRight
)

const resizeBorderThickness = 6

// sizeAction handles dragging a group's border region to resize it
// (spec §4.4, priority 4).
type sizeAction struct {
	ctx *Context

	dragging     bool
	nodeID       EntityID
	edge         resizeEdge
	startBounds  Rect
	startGroup   Rect
	startScreen  Point

	// stable is false for the one frame a dynamic-minimum-size snap
	// moves the locked edge out from under the raw drag delta; the
	// baseline is reset that frame so the next frame resumes tracking
	// the cursor from the snapped rectangle (spec §4.4).
	stable bool
}

func newSizeAction(ctx *Context) *sizeAction { return &sizeAction{ctx: ctx} }

func (a *sizeAction) Name() string { return "size" }

func (a *sizeAction) Accept(ctx *Context, probe *frameProbe) AcceptResult {
	btn := MouseButton(ctx.cfg.DragButtonIndex)
	if probe.hotKind != objNode {
		return AcceptFalse
	}
	node, ok := ctx.store.findNode(probe.hotID)
	if !ok || node.Kind != KindGroup {
		return AcceptFalse
	}
	edge := classifyEdge(node.Bounds, ctx.input.CursorScreen, ctx, resizeBorderThickness)
	if edge == edgeNone {
		return AcceptFalse
	}
	if !ctx.input.isDown(btn) {
		return AcceptPossible
	}
	a.dragging = true
	a.nodeID = node.ID
	a.edge = edge
	a.startBounds = node.Bounds
	a.startGroup = node.GroupBounds
	a.startScreen = ctx.input.CursorScreen
	a.stable = true
	return AcceptTrue
}

func (a *sizeAction) Process(ctx *Context) bool {
	btn := MouseButton(ctx.cfg.DragButtonIndex)
	node, ok := ctx.store.findNode(a.nodeID)
	if !ok {
		return false
	}
	if !ctx.input.isDown(btn) {
		a.dragging = false
		return false
	}
	deltaScreen := ctx.input.CursorScreen.Sub(a.startScreen)
	delta := deltaScreen.Scale(1 / ctx.Canvas.Zoom())
	proposed := applyEdgeDelta(a.startBounds, a.edge, delta)
	snapped, bounds := enforceMinSize(proposed, a.edge, node.measuredSize)
	node.Bounds = bounds
	a.stable = !snapped
	if snapped {
		// Rebaseline so next frame's delta is measured from the
		// snapped rectangle and the current cursor position, not the
		// original drag start (spec §4.4: "so the next frame continues
		// tracking").
		a.startBounds = node.Bounds
		a.startScreen = ctx.input.CursorScreen
	}
	rec := ctx.settings.nodeRecord(node.ID)
	rec.makeDirty(DirtySize)
	rec.Size = node.Bounds.Size()
	return true
}

// enforceMinSize snaps r to measuredSize along whichever axis the drag
// pushed below it, sliding the edge that moved back in so the locked
// (opposite) edge keeps its position (spec §4.4 dynamic minimum size).
func enforceMinSize(r Rect, edge resizeEdge, minSize Size) (snapped bool, out Rect) {
	out = r
	size := r.Size()
	if minSize.W > 0 && size.W < minSize.W {
		snapped = true
		switch edge {
		case edgeLeft, edgeTopLeft, edgeBottomLeft:
			out.Min.X = out.Max.X - minSize.W
		default:
			out.Max.X = out.Min.X + minSize.W
		}
	}
	if minSize.H > 0 && size.H < minSize.H {
		snapped = true
		switch edge {
		case edgeTop, edgeTopLeft, edgeTopRight:
			out.Min.Y = out.Max.Y - minSize.H
		default:
			out.Max.Y = out.Min.Y + minSize.H
		}
	}
	return snapped, out
}

func (a *sizeAction) Cursor() CursorKind {
	switch a.edge {
	case edgeTop, edgeBottom:
		return CursorResizeNS
	case edgeLeft, edgeRight:
		return CursorResizeEW
	case edgeTopLeft, edgeBottomRight:
		return CursorResizeNWSE
	case edgeTopRight, edgeBottomLeft:
		return CursorResizeNESW
	default:
		return CursorArrow
	}
}

func classifyEdge(bounds Rect, screenPt Point, ctx *Context, thickness float64) resizeEdge {
	p := ctx.Canvas.FromScreen(screenPt)
	near := func(v, edge float64) bool {
		d := v - edge
		if d < 0 {
			d = -d
		}
		return d <= thickness
	}
	top := near(p.Y, bounds.Min.Y) && p.X >= bounds.Min.X && p.X <= bounds.Max.X
	bottom := near(p.Y, bounds.Max.Y) && p.X >= bounds.Min.X && p.X <= bounds.Max.X
	left := near(p.X, bounds.Min.X) && p.Y >= bounds.Min.Y && p.Y <= bounds.Max.Y
	right := near(p.X, bounds.Max.X) && p.Y >= bounds.Min.Y && p.Y <= bounds.Max.Y
	switch {
	case top && left:
		return edgeTopLeft
	case top && right:
		return edgeTopRight
	case bottom && left:
		return edgeBottomLeft
	case bottom && right:
		return edgeBottomRight
	case top:
		return edgeTop
	case bottom:
		return edgeBottom
	case left:
		return edgeLeft
	case right:
		return edgeRight
	default:
		return edgeNone
	}
}

// applyEdgeDelta moves only the edges indicated by edge, locking the
// opposite edge in place (spec §4.4 size action details).
func applyEdgeDelta(start Rect, edge resizeEdge, delta Point) Rect {
	r := start
	switch edge {
	case edgeTop:
		r.Min.Y += delta.Y
	case edgeBottom:
		r.Max.Y += delta.Y
	case edgeLeft:
		r.Min.X += delta.X
	case edgeRight:
		r.Max.X += delta.X
	case edgeTopLeft:
		r.Min.X += delta.X
		r.Min.Y += delta.Y
	case edgeTopRight:
		r.Max.X += delta.X
		r.Min.Y += delta.Y
	case edgeBottomLeft:
		r.Min.X += delta.X
		r.Max.Y += delta.Y
	case edgeBottomRight:
		r.Max.X += delta.X
		r.Max.Y += delta.Y
	}
	return r.normalized()
}
