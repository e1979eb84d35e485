package nodegraph

// deleteAction processes host-queued or Delete-key-triggered deletion
// requests during the host's BeginDelete/EndDelete block (spec §4.4,
// priority 8). The links-before-nodes ordering and the
// delete-dependencies fan-out live in query_delete.go; this file only
// decides whether the delete action is triggered this frame.
type deleteAction struct {
	ctx *Context
}

func newDeleteAction(ctx *Context) *deleteAction { return &deleteAction{ctx: ctx} }

func (a *deleteAction) Name() string { return "delete" }

func (a *deleteAction) Accept(ctx *Context, probe *frameProbe) AcceptResult {
	if ctx.input.isKeyDown(KeyDelete) && len(ctx.selection) > 0 {
		ctx.queueSelectionForDeletion()
		return AcceptTrue
	}
	if ctx.input.Mods.Alt && probe.hotKind == objLink && probe.clicked {
		ctx.DeleteLink(probe.hotID)
		return AcceptTrue
	}
	if len(ctx.deleteQueue) > 0 {
		return AcceptTrue
	}
	return AcceptFalse
}

func (a *deleteAction) Process(ctx *Context) bool {
	// Single-frame action: the actual queries are served from
	// query_delete.go during the host's BeginDelete block this frame.
	return false
}

func (a *deleteAction) Cursor() CursorKind { return CursorArrow }
