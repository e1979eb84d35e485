package nodegraph

// contextMenuAction fires a click (without motion) of the configured
// context-menu button on a hit object or background (spec §4.4,
// priority 2). The actual menu content is host-drawn; this action only
// records which kind of context menu to show and hands off to
// contextmenu.go's query methods.
type contextMenuAction struct {
	ctx *Context
}

func newContextMenuAction(ctx *Context) *contextMenuAction { return &contextMenuAction{ctx: ctx} }

func (a *contextMenuAction) Name() string { return "context-menu" }

func (a *contextMenuAction) Accept(ctx *Context, probe *frameProbe) AcceptResult {
	btn := MouseButton(ctx.cfg.ContextMenuButtonIndex)
	if !ctx.input.wasReleased(btn) || !probe.clicked {
		return AcceptFalse
	}
	switch probe.hotKind {
	case objNode:
		ctx.pendingContextMenu = contextMenuRequest{kind: ctxMenuNode, id: probe.hotID}
	case objPin:
		ctx.pendingContextMenu = contextMenuRequest{kind: ctxMenuPin, id: probe.hotID}
	case objLink:
		ctx.pendingContextMenu = contextMenuRequest{kind: ctxMenuLink, id: probe.hotID}
	default:
		ctx.pendingContextMenu = contextMenuRequest{kind: ctxMenuBackground}
	}
	return AcceptTrue
}

func (a *contextMenuAction) Process(ctx *Context) bool { return false }

func (a *contextMenuAction) Cursor() CursorKind { return CursorArrow }
