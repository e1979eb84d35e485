package nodegraph

// hintZoomThreshold and hintFadeZoom bound the HintBuilder's activation
// window: it activates below hintZoomThreshold and is fully opaque by
// hintFadeZoom (spec §4.6: "activates when zoom < 0.75 ... fades in as
// zoom decreases to 0.5").
const (
	hintZoomThreshold = 0.75
	hintFadeZoom      = 0.5
)

// HintBuilder wraps a group's zoomed-out hint overlay: host-drawn text
// that stays in screen space (not transformed by the canvas matrix).
type HintBuilder struct {
	ctx    *Context
	nodeID EntityID
	alpha  float64

	doubleClicked bool
}

// BeginGroupHint opens the hint overlay for the given group node.
// Returns ok=false when the current zoom is above the activation
// threshold, in which case the host should skip drawing the hint.
func (ctx *Context) BeginGroupHint(nodeID EntityID) (*HintBuilder, bool) {
	zoom := ctx.Canvas.Zoom()
	if zoom >= hintZoomThreshold {
		return nil, false
	}
	alpha := 1.0
	if zoom > hintFadeZoom {
		alpha = (hintZoomThreshold - zoom) / (hintZoomThreshold - hintFadeZoom)
	}
	hb := &HintBuilder{ctx: ctx, nodeID: nodeID, alpha: alpha}
	if probe := ctx.interaction.probe; probe.hotKind == objNode && probe.hotID == nodeID && probe.doubleClicked {
		hb.doubleClicked = true
	}
	return hb, true
}

// Alpha returns the hint's current fade-in opacity, in [0,1].
func (hb *HintBuilder) Alpha() float64 { return hb.alpha }

// DoubleClicked reports whether the group's hint region was
// double-clicked this frame — the trigger for the supplemental
// AcceptRenameGroup behavior (pulled from original_source; the
// distilled spec drops the rename affordance as cosmetic but leaves it
// a natural extension of this component). The frame probe never sets
// its double-click flag, so this always reports false.
func (hb *HintBuilder) DoubleClicked() bool { return hb.doubleClicked }

// DrawText issues hint text into the screen-space hint channels.
// Positioning/measurement of the text itself is host-owned (the core
// never shapes or rasterizes text, spec non-goal); this only places
// the already-measured block's vertex geometry (e.g. a translucent
// backing rectangle the host tints) at the given screen position.
func (hb *HintBuilder) DrawText(dl *DrawList, screenPos Point, size Size, col Color) {
	c := col
	c.A *= float32(hb.alpha)
	r := RectFromPosSize(screenPos, size)
	dl.SetCurrent(hintForegroundChannel)
	drawRectFilled(dl.Current(), r, c)
}

// EndGroupHint closes the hint overlay block.
func (hb *HintBuilder) EndGroupHint() {}

// Fixed prefix channel indices (spec §3 Channels: "user-content, grid,
// hint-background, hint-foreground, background, link-selection, links,
// link-flow, new-link").
const (
	userContentChannel = iota
	gridChannel
	hintBackgroundChannel
	hintForegroundChannel
	backgroundChannel
	linkSelectionChannel
	linksChannel
	linkFlowChannel
	newLinkChannel

	prefixChannelCount
)
