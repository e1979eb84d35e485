package nodegraph

import "math"

// navigateAction handles background drag-pan, wheel-zoom, and
// focus+F navigate-to-content/selection (spec §4.4, priority 1).
type navigateAction struct {
	ctx *Context

	dragging   bool
	button     MouseButton
	lastScreen Point
}

func newNavigateAction(ctx *Context) *navigateAction { return &navigateAction{ctx: ctx} }

func (a *navigateAction) Name() string { return "navigate" }

func (a *navigateAction) Accept(ctx *Context, probe *frameProbe) AcceptResult {
	in := ctx.input
	navBtn := MouseButton(ctx.cfg.NavigateButtonIndex)

	if in.isDown(navBtn) && probe.hotKind == objNone {
		a.dragging = true
		a.button = navBtn
		a.lastScreen = in.CursorScreen
		return AcceptTrue
	}
	if in.Wheel != 0 {
		a.handleWheel(ctx)
		return AcceptTrue
	}
	if in.WindowFocus && in.isKeyDown(KeyF) {
		if len(ctx.selection) > 0 {
			ctx.NavigateToSelection(false, ctx.style.Var(VarScrollDuration))
		} else {
			ctx.NavigateToContent(false, ctx.style.Var(VarScrollDuration))
		}
		return AcceptTrue
	}
	return AcceptFalse
}

func (a *navigateAction) Process(ctx *Context) bool {
	in := ctx.input
	if in.Wheel != 0 {
		a.handleWheel(ctx)
	}
	if !a.dragging {
		return false
	}
	if !in.isDown(a.button) {
		a.dragging = false
		return false
	}
	delta := in.CursorScreen.Sub(a.lastScreen)
	a.lastScreen = in.CursorScreen
	ctx.Canvas.SetOrigin(ctx.Canvas.Origin().Add(delta))
	ctx.settings.makeGlobalDirty(DirtyNavigation)
	return true
}

func (a *navigateAction) Cursor() CursorKind { return CursorMove }

func (a *navigateAction) handleWheel(ctx *Context) {
	delta := ctx.input.Wheel
	cursor := ctx.input.CursorScreen
	ctx.input.Wheel = 0
	if ctx.cfg.EnableSmoothZoom {
		factor := math.Pow(ctx.cfg.SmoothZoomPower, delta)
		newZoom := ctx.Canvas.Zoom() * factor
		ctx.Canvas.ZoomAroundScreenPoint(cursor, newZoom)
	} else {
		levels := ctx.cfg.CustomZoomLevels
		cur := ctx.Canvas.Zoom()
		next := nextZoomLevel(levels, cur, delta > 0)
		ctx.Canvas.ZoomAroundScreenPoint(cursor, next)
	}
	ctx.settings.makeGlobalDirty(DirtyNavigation)
}

func nextZoomLevel(levels []float64, cur float64, up bool) float64 {
	if len(levels) == 0 {
		return cur
	}
	if up {
		for _, z := range levels {
			if z > cur+1e-9 {
				return z
			}
		}
		return levels[len(levels)-1]
	}
	for i := len(levels) - 1; i >= 0; i-- {
		if levels[i] < cur-1e-9 {
			return levels[i]
		}
	}
	return levels[0]
}
