package nodegraph

// shortcutKind is which shortcut fired this frame, recorded by
// action_shortcut.go and queried by the host inside BeginShortcut.
type shortcutKind int

const (
	shortcutNone shortcutKind = iota
	shortcutCut
	shortcutCopy
	shortcutPaste
	shortcutDuplicate
	shortcutCreateNode
)

// EnableShortcuts toggles whether the shortcut action participates in
// arbitration at all.
func (ctx *Context) EnableShortcuts(enable bool) { ctx.shortcutsEnabled = enable }
func (ctx *Context) AreShortcutsEnabled() bool    { return ctx.shortcutsEnabled }

// BeginShortcut opens the query block for this frame's shortcut, if
// any. Returns false when no shortcut fired.
func (ctx *Context) BeginShortcut() bool { return ctx.pendingShortcut != shortcutNone }

func (ctx *Context) AcceptCut() bool       { return ctx.pendingShortcut == shortcutCut }
func (ctx *Context) AcceptCopy() bool      { return ctx.pendingShortcut == shortcutCopy }
func (ctx *Context) AcceptPaste() bool     { return ctx.pendingShortcut == shortcutPaste }
func (ctx *Context) AcceptDuplicate() bool { return ctx.pendingShortcut == shortcutDuplicate }
func (ctx *Context) AcceptCreateNode() bool { return ctx.pendingShortcut == shortcutCreateNode }

// GetActionContextNodes/Links return the node/link ids the active
// shortcut should act on — the current selection, split by kind.
func (ctx *Context) GetActionContextNodes() []EntityID {
	var out []EntityID
	for _, id := range ctx.selection {
		if _, ok := ctx.store.findNode(id); ok {
			out = append(out, id)
		}
	}
	return out
}

func (ctx *Context) GetActionContextLinks() []EntityID {
	var out []EntityID
	for _, id := range ctx.selection {
		if _, ok := ctx.store.findLink(id); ok {
			out = append(out, id)
		}
	}
	return out
}

func (ctx *Context) GetActionContextSize() int { return len(ctx.selection) }

// EndShortcut closes the shortcut query block for this frame.
func (ctx *Context) EndShortcut() { ctx.pendingShortcut = shortcutNone }
