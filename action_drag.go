package nodegraph

// dragSnapGrid is the spec's 16-pixel alignment grid.
const dragSnapGrid = 16

// dragAction handles dragging a node/pin object that accepts drag
// (spec §4.4, priority 5). Dragging a selected object drags the whole
// selection; group drag additionally picks up grouped children unless
// Shift is held.
type dragAction struct {
	ctx *Context

	dragging  bool
	primary   EntityID
	startScreen Point
	members   []EntityID
	snapDisabled bool
}

func newDragAction(ctx *Context) *dragAction { return &dragAction{ctx: ctx} }

func (a *dragAction) Name() string { return "drag" }

func (a *dragAction) Accept(ctx *Context, probe *frameProbe) AcceptResult {
	btn := MouseButton(ctx.cfg.DragButtonIndex)
	if probe.hotKind != objNode || !ctx.input.isDown(btn) {
		return AcceptFalse
	}
	node, ok := ctx.store.findNode(probe.hotID)
	if !ok {
		return AcceptFalse
	}
	a.primary = node.ID
	a.startScreen = ctx.input.CursorScreen
	a.snapDisabled = ctx.input.Mods.Alt
	a.members = a.collectMembers(ctx, node)
	for _, id := range a.members {
		if n, ok := ctx.store.findNode(id); ok {
			n.AcceptDrag()
		}
	}
	a.dragging = true
	return AcceptTrue
}

func (a *dragAction) collectMembers(ctx *Context, node *Node) []EntityID {
	members := []EntityID{node.ID}
	if ctx.IsNodeSelected(node.ID) {
		for _, id := range ctx.selection {
			if id != node.ID {
				members = append(members, id)
			}
		}
	}
	if node.Kind == KindGroup && !ctx.input.Mods.Shift {
		var grouped []*Node
		node.getGroupedNodes(ctx, &grouped)
		for _, g := range grouped {
			members = append(members, g.ID)
		}
	}
	return members
}

func (a *dragAction) Process(ctx *Context) bool {
	btn := MouseButton(ctx.cfg.DragButtonIndex)
	if !ctx.input.isDown(btn) {
		a.finish(ctx)
		return false
	}
	deltaScreen := ctx.input.CursorScreen.Sub(a.startScreen)
	delta := deltaScreen.Scale(1 / ctx.Canvas.Zoom())
	if !a.snapDisabled {
		delta = a.snapDelta(ctx, delta)
	}
	for _, id := range a.members {
		if n, ok := ctx.store.findNode(id); ok {
			n.UpdateDrag(delta)
		}
	}
	return true
}

// snapDelta snaps the primary node's pins to the nearest 16px grid
// line, choosing per-axis the pivot whose snap delta is smallest
// (spec §4.4 drag action details).
func (a *dragAction) snapDelta(ctx *Context, delta Point) Point {
	node, ok := ctx.store.findNode(a.primary)
	if !ok {
		return delta
	}
	bestX, bestY := delta.X, delta.Y
	bestDX, bestDY := float64(dragSnapGrid+1), float64(dragSnapGrid+1)
	for _, pid := range node.PinIDs {
		pin, ok := ctx.store.findPin(pid)
		if !ok {
			continue
		}
		center := pin.Pivot.Center().Add(delta)
		snapX := snapToGrid(center.X)
		snapY := snapToGrid(center.Y)
		dx := absF(snapX - center.X)
		dy := absF(snapY - center.Y)
		if dx < bestDX {
			bestDX = dx
			bestX = delta.X + (snapX - center.X)
		}
		if dy < bestDY {
			bestDY = dy
			bestY = delta.Y + (snapY - center.Y)
		}
	}
	return Point{bestX, bestY}
}

func snapToGrid(v float64) float64 {
	q := v/dragSnapGrid + 0.5
	f := float64(int(q))
	if f > q {
		f--
	}
	return f * dragSnapGrid
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

func (a *dragAction) finish(ctx *Context) {
	a.dragging = false
	for _, id := range a.members {
		if n, ok := ctx.store.findNode(id); ok {
			if n.EndDrag() {
				rec := ctx.settings.nodeRecord(id)
				rec.makeDirty(DirtyPosition)
				rec.Location = n.Bounds.Min
			}
		}
	}
}

func (a *dragAction) Cursor() CursorKind { return CursorMove }
