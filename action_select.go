package nodegraph

// selectionFadeOutDuration is c_SelectionFadeOutDuration from the spec.
const selectionFadeOutDuration = 0.15

type selectMode int

const (
	selectNodes selectMode = iota
	selectGroups
	selectLinks
)

// selectAction handles rubber-band drag-select from background and
// plain background click-to-clear (spec §4.4, priority 6).
type selectAction struct {
	ctx *Context

	dragging   bool
	startScreen Point
	mode       selectMode
	ctrlMerge  bool
	preDrag    []EntityID

	fadeRect    Rect
	fadeElapsed float64
	fading      bool
}

func newSelectAction(ctx *Context) *selectAction { return &selectAction{ctx: ctx} }

func (a *selectAction) Name() string { return "select" }

func (a *selectAction) Accept(ctx *Context, probe *frameProbe) AcceptResult {
	btn := MouseButton(ctx.cfg.DragButtonIndex)
	if probe.hotKind != objNone {
		return AcceptFalse
	}
	if !ctx.input.isDown(btn) {
		if probe.backgroundClicked {
			ctx.ClearSelection()
			return AcceptTrue
		}
		return AcceptFalse
	}
	a.dragging = true
	a.startScreen = ctx.input.CursorScreen
	a.ctrlMerge = ctx.input.Mods.Ctrl
	a.preDrag = append([]EntityID(nil), ctx.selection...)
	switch {
	case ctx.input.Mods.Shift:
		a.mode = selectGroups
	case ctx.input.Mods.Alt:
		a.mode = selectLinks
	default:
		a.mode = selectNodes
	}
	return AcceptTrue
}

func (a *selectAction) Process(ctx *Context) bool {
	btn := MouseButton(ctx.cfg.DragButtonIndex)
	if !a.dragging {
		return false
	}
	rect := Rect{a.startScreen, ctx.input.CursorScreen}.normalized()
	a.fadeRect = rect
	if ctx.input.isDown(btn) {
		return true
	}
	a.dragging = false
	a.applySelection(ctx, rect)
	a.fading = true
	a.fadeElapsed = 0
	return false
}

func (a *selectAction) applySelection(ctx *Context, screenRect Rect) {
	canvasRect := Rect{ctx.Canvas.FromScreen(screenRect.Min), ctx.Canvas.FromScreen(screenRect.Max)}.normalized()
	var hit []EntityID
	switch a.mode {
	case selectLinks:
		ctx.store.eachLink(func(l *Link) {
			if l.live && l.HitRect(ctx, canvasRect, true) {
				hit = append(hit, l.ID)
			}
		})
	case selectGroups:
		ctx.store.eachNode(func(n *Node) {
			if n.live && n.Kind == KindGroup && n.HitRect(canvasRect, true) {
				hit = append(hit, n.ID)
			}
		})
	default:
		ctx.store.eachNode(func(n *Node) {
			if n.live && n.Kind != KindGroup && n.HitRect(canvasRect, true) {
				hit = append(hit, n.ID)
			}
		})
	}
	if a.ctrlMerge {
		ctx.setSelection(xorMerge(a.preDrag, hit))
	} else {
		ctx.setSelection(hit)
	}
}

func xorMerge(a, b []EntityID) []EntityID {
	set := make(map[EntityID]bool, len(a)+len(b))
	for _, id := range a {
		set[id] = true
	}
	for _, id := range b {
		set[id] = !set[id]
	}
	var out []EntityID
	for id, in := range set {
		if in {
			out = append(out, id)
		}
	}
	return out
}

func (a *selectAction) updateFade(dt float64) {
	if !a.fading {
		return
	}
	a.fadeElapsed += dt
	if a.fadeElapsed >= selectionFadeOutDuration {
		a.fading = false
	}
}

func (a *selectAction) Cursor() CursorKind { return CursorCrosshair }
