package nodegraph

// shortcutAction recognizes focused-window modifier-key combos
// (Ctrl+X/C/V/D, Space) and records which shortcut fired for the
// host's BeginShortcut block to query (spec §4.4, priority 3).
type shortcutAction struct {
	ctx *Context
}

func newShortcutAction(ctx *Context) *shortcutAction { return &shortcutAction{ctx: ctx} }

func (a *shortcutAction) Name() string { return "shortcut" }

func (a *shortcutAction) Accept(ctx *Context, probe *frameProbe) AcceptResult {
	if !ctx.input.WindowFocus || !ctx.shortcutsEnabled {
		return AcceptFalse
	}
	in := ctx.input
	switch {
	case in.Mods.Ctrl && in.isKeyDown(KeyX):
		ctx.pendingShortcut = shortcutCut
	case in.Mods.Ctrl && in.isKeyDown(KeyC):
		ctx.pendingShortcut = shortcutCopy
	case in.Mods.Ctrl && in.isKeyDown(KeyV):
		ctx.pendingShortcut = shortcutPaste
	case in.Mods.Ctrl && in.isKeyDown(KeyD):
		ctx.pendingShortcut = shortcutDuplicate
	case in.isKeyDown(KeySpace):
		ctx.pendingShortcut = shortcutCreateNode
	default:
		return AcceptFalse
	}
	return AcceptTrue
}

func (a *shortcutAction) Process(ctx *Context) bool { return false }

func (a *shortcutAction) Cursor() CursorKind { return CursorArrow }
