package nodegraph

type contextMenuKind int

const (
	ctxMenuNone contextMenuKind = iota
	ctxMenuNode
	ctxMenuPin
	ctxMenuLink
	ctxMenuBackground
)

type contextMenuRequest struct {
	kind contextMenuKind
	id   EntityID
}

// ShowNodeContextMenu/ShowPinContextMenu/ShowLinkContextMenu/
// ShowBackgroundContextMenu report whether the corresponding context
// menu was requested this frame (and for node/pin/link, which one),
// letting the host open its own popup UI. The candidate id is out to
// mirror the source's out-parameter style while staying idiomatic Go.
func (ctx *Context) ShowNodeContextMenu() (id EntityID, ok bool) {
	if ctx.pendingContextMenu.kind == ctxMenuNode {
		return ctx.pendingContextMenu.id, true
	}
	return 0, false
}

func (ctx *Context) ShowPinContextMenu() (id EntityID, ok bool) {
	if ctx.pendingContextMenu.kind == ctxMenuPin {
		return ctx.pendingContextMenu.id, true
	}
	return 0, false
}

func (ctx *Context) ShowLinkContextMenu() (id EntityID, ok bool) {
	if ctx.pendingContextMenu.kind == ctxMenuLink {
		return ctx.pendingContextMenu.id, true
	}
	return 0, false
}

func (ctx *Context) ShowBackgroundContextMenu() bool {
	return ctx.pendingContextMenu.kind == ctxMenuBackground
}
