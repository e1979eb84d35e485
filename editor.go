package nodegraph

import (
	"fmt"
	"os"
)

// debugEnabled gates the ad hoc stderr tracing and contract-violation
// panics, matching the teacher's package-level globalDebug flag
// (scene.go's SetDebugMode) rather than pulling in a logging library
// the teacher itself doesn't use.
var debugEnabled bool

func debugf(format string, args ...any) {
	if !debugEnabled {
		return
	}
	fmt.Fprintf(os.Stderr, "[nodegraph] "+format+"\n", args...)
}

// debugCheck panics with msg when cond is false and debug mode is on —
// the contract-violation taxonomy from spec §7, grounded on the
// teacher's debugCheckDisposed/debugCheckTreeDepth assertions.
func debugCheck(debug bool, cond bool, msg string) {
	if debug && !cond {
		panic("nodegraph: " + msg)
	}
}

// Context is the editor front door: it owns the canvas, arena storage,
// style, settings, animation, and interaction state, and exposes the
// per-frame Begin/End lifecycle plus the public query API (spec §2's
// "Editor context" component, 22% of the budget). One Context per
// editor instance; SetCurrentEditor below is a thin convenience shim
// over an explicit Context parameter (design note on the global
// "current editor" pointer).
type Context struct {
	Canvas *Canvas

	cfg   Config
	style *Style

	store    *store
	settings *settingsStore
	anim     *animationHost

	interaction *interactionState

	input InputState

	selection       []EntityID
	selectionID     uint64
	prevSelectionID uint64

	frameOpen  bool
	builderTop *nodeBuilderFrame

	shortcutsEnabled bool
	pendingShortcut  shortcutKind
	pendingContextMenu contextMenuRequest
	pendingCreate    *pendingCreateItem
	deleteQueue      []deleteCandidate

	suspendDepth int

	lastEndTime float64
}

// CreateEditor constructs a new editor Context from cfg.
func CreateEditor(cfg Config) *Context {
	cfg = cfg.withDefaults()
	debugEnabled = cfg.Debug
	ctx := &Context{
		Canvas:           NewCanvas(),
		cfg:              cfg,
		style:            DefaultStyle(),
		store:            newStore(),
		settings:         newSettingsStore(),
		anim:             newAnimationHost(),
		shortcutsEnabled: true,
	}
	ctx.interaction = newInteractionState(ctx)
	ctx.anim.navigate = newNavigateAnimation(ctx.Canvas)
	ctx.settings.loadAll(&ctx.cfg)
	return ctx
}

// DestroyEditor releases an editor's resources. The core never retains
// any global state beyond the current-editor shim, so this is a no-op
// beyond clearing the shim if ctx is current.
func DestroyEditor(ctx *Context) {
	if currentEditor == ctx {
		currentEditor = nil
	}
}

var currentEditor *Context

// SetCurrentEditor sets the implicit editor used by call sites that
// don't thread a Context explicitly (host-side convenience only; the
// core itself always takes an explicit Context).
func SetCurrentEditor(ctx *Context) { currentEditor = ctx }

// CurrentEditor returns the editor set by SetCurrentEditor, or nil.
func CurrentEditor() *Context { return currentEditor }

// SetInput supplies this frame's input snapshot; the core never reads
// a device itself (spec §1 non-goal).
func (ctx *Context) SetInput(in InputState) { ctx.input = in }

// Begin starts a frame. All builder submissions (BeginNode/Link/...)
// must happen between Begin and End.
func (ctx *Context) Begin() {
	debugCheck(ctx.cfg.Debug, !ctx.frameOpen, "Begin called while a frame is already open")
	ctx.frameOpen = true
	ctx.store.eachNode(func(n *Node) { n.reset() })
	ctx.store.eachPin(func(p *Pin) { p.reset() })
	ctx.store.eachLink(func(l *Link) { l.reset() })
	ctx.pendingContextMenu = contextMenuRequest{}
	ctx.pendingShortcut = shortcutNone
}

// End closes the frame: computes interaction input, arbitrates one
// action, draws, transforms channels, merges into the host display
// list, and commits dirty settings (spec §2 frame data flow).
func (ctx *Context) End() *DrawChannel {
	debugCheck(ctx.cfg.Debug, ctx.frameOpen, "End called without a matching Begin")
	ctx.frameOpen = false

	ctx.recomputeSelectionID()

	if ctx.suspendDepth == 0 {
		ctx.interaction.processFrame(ctx)
	}

	const dt = 1.0 / 60.0
	ctx.anim.update(dt)

	dl := NewDrawList()
	ctx.drawFrame(dl)

	if !ctx.interaction.IsActive() {
		ctx.settings.runSaveCycle(&ctx.cfg)
	}

	merged := dl.Merge()
	return &merged
}

func (is *interactionState) IsActive() bool { return is.current != nil }

func (ctx *Context) drawFrame(dl *DrawList) {
	dl.Grow(9)
	dl.SetCurrent(0)
	ctx.store.eachLink(func(l *Link) {
		if !l.live || !l.Visible(ctx) {
			return
		}
		var startArrow, endArrow float64
		if start, ok := ctx.store.findPin(l.StartPinID); ok {
			startArrow = start.ArrowSize
		}
		if end, ok := ctx.store.findPin(l.EndPinID); ok {
			endArrow = end.ArrowSize
		}
		l.Draw(ctx, dl, ctx.style, startArrow, endArrow)
	})
	ctx.store.eachNode(func(n *Node) {
		if !n.live {
			return
		}
		n.Draw(dl, ctx.style, ctx.IsNodeSelected(n.ID), ctx.hoveredNodeID() == n.ID)
	})
	dl.TransformRange(0, len(dl.Channels), Point{}, ctx.Canvas.Origin().Add(ctx.Canvas.windowScreenPos), ctx.Canvas.Zoom())
}

func (ctx *Context) hoveredNodeID() EntityID {
	if ctx.interaction.probe.hotKind == objNode {
		return ctx.interaction.probe.hotID
	}
	return 0
}

// computeFrameProbe walks live objects back-to-front (highest z first)
// to find the hot object under the cursor, plus click state derived
// from this frame's button transitions: a release of the drag or
// context-menu button is a click only when the cursor has not moved
// since that button was pressed. Double-click and active state are not
// computed, so those probe fields stay unset. Links have no
// host-emitted hit region so they are tested last, manually, after
// node/pin probing fails (spec §4.4).
func (ctx *Context) computeFrameProbe() frameProbe {
	var probe frameProbe
	cursor := ctx.Canvas.FromScreen(ctx.input.CursorScreen)

	var hotNode *Node
	ctx.store.eachNode(func(n *Node) {
		if !n.live || !n.HitPoint(cursor) {
			return
		}
		if hotNode == nil || n.ZOrder >= hotNode.ZOrder {
			hotNode = n
		}
	})
	var hotPin *Pin
	ctx.store.eachPin(func(p *Pin) {
		if !p.live || !p.HitPoint(cursor) {
			return
		}
		hotPin = p
	})

	switch {
	case hotPin != nil:
		probe.hot, probe.hotID, probe.hotKind = hotPin, hotPin.ID, objPin
	case hotNode != nil:
		probe.hot, probe.hotID, probe.hotKind = hotNode, hotNode.ID, objNode
	default:
		var hotLink *Link
		ctx.store.eachLink(func(l *Link) {
			if l.live && l.HitPoint(ctx, cursor) {
				hotLink = l
			}
		})
		if hotLink != nil {
			probe.hotID, probe.hotKind = hotLink.ID, objLink
		}
	}

	is := ctx.interaction
	for b, down := range ctx.input.ButtonsDown {
		if _, held := is.pressStart[b]; down && !held {
			is.pressStart[b] = ctx.input.CursorScreen
		}
	}
	btn := MouseButton(ctx.cfg.DragButtonIndex)
	for _, b := range []MouseButton{btn, MouseButton(ctx.cfg.ContextMenuButtonIndex)} {
		if !ctx.input.wasReleased(b) {
			continue
		}
		start, pressed := is.pressStart[b]
		delete(is.pressStart, b)
		if pressed && start != ctx.input.CursorScreen {
			continue
		}
		probe.clicked = true
		if b == btn && probe.hotKind == objNone {
			probe.backgroundClicked = true
			probe.backgroundClickButton = btn
		}
	}
	return probe
}

func (ctx *Context) recomputeSelectionID() {
	if ctx.selectionID != ctx.prevSelectionID {
		ctx.prevSelectionID = ctx.selectionID
	}
}

func (ctx *Context) setSelection(ids []EntityID) {
	ctx.selection = ids
	ctx.selectionID++
	ctx.settings.makeGlobalDirty(DirtySelection)
}

// GetCurrentZoom returns the canvas's current zoom factor.
func (ctx *Context) GetCurrentZoom() float64 { return ctx.Canvas.Zoom() }

// ScreenToCanvas / CanvasToScreen expose the canvas coordinate mapping.
func (ctx *Context) ScreenToCanvas(p Point) Point { return ctx.Canvas.FromScreen(p) }
func (ctx *Context) CanvasToScreen(p Point) Point { return ctx.Canvas.ToScreen(p) }
func (ctx *Context) GetScreenSize() Size          { return ctx.Canvas.ScreenSize() }

// Suspend/Resume let the host temporarily escape the editor's
// coordinate transform (e.g. to draw a popup in plain screen space);
// nesting is allowed.
func (ctx *Context) Suspend() { ctx.suspendDepth++ }
func (ctx *Context) Resume() {
	if ctx.suspendDepth > 0 {
		ctx.suspendDepth--
	}
}
func (ctx *Context) IsSuspended() bool { return ctx.suspendDepth > 0 }

// FindNode/FindPin/FindLink are the donburi-backed lookup functions;
// idiomatic Go (value, ok) instead of a null pointer for a lookup miss
// (spec §9 design note on result types for data-shaped failures).
func (ctx *Context) FindNode(id EntityID) (*Node, bool) { return ctx.store.findNode(id) }
func (ctx *Context) FindPin(id EntityID) (*Pin, bool)   { return ctx.store.findPin(id) }
func (ctx *Context) FindLink(id EntityID) (*Link, bool) { return ctx.store.findLink(id) }
