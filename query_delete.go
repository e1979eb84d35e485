package nodegraph

type deleteKind int

const (
	deleteKindLink deleteKind = iota
	deleteKindNode
)

type deleteCandidate struct {
	kind     deleteKind
	id       EntityID
	resolved bool
}

// queueSelectionForDeletion is called by action_delete.go when the
// Delete key fires with a non-empty selection: every selected node and
// link becomes a delete candidate for this frame's BeginDelete block.
func (ctx *Context) queueSelectionForDeletion() {
	for _, id := range ctx.selection {
		if _, ok := ctx.store.findLink(id); ok {
			ctx.deleteQueue = append(ctx.deleteQueue, deleteCandidate{kind: deleteKindLink, id: id})
			continue
		}
		if _, ok := ctx.store.findNode(id); ok {
			ctx.deleteQueue = append(ctx.deleteQueue, deleteCandidate{kind: deleteKindNode, id: id})
		}
	}
}

// DeleteNode/DeleteLink queue a host-requested deletion outside the
// selection-driven path (e.g. from a context menu action). DeleteNode
// also eagerly queues every link touching id, so the host's
// QueryDeletedLink/QueryDeletedNode loop sees the links first without
// having to first accept the node (spec §8 scenario "delete node with
// two links").
func (ctx *Context) DeleteNode(id EntityID) {
	ctx.deleteQueue = append(ctx.deleteQueue, deleteCandidate{kind: deleteKindNode, id: id})
	ctx.store.eachLink(func(l *Link) {
		if linkTouchesNode(ctx, l, id) && !ctx.alreadyQueued(l.ID, deleteKindLink) {
			ctx.deleteQueue = append(ctx.deleteQueue, deleteCandidate{kind: deleteKindLink, id: l.ID})
		}
	})
}

func (ctx *Context) DeleteLink(id EntityID) {
	ctx.deleteQueue = append(ctx.deleteQueue, deleteCandidate{kind: deleteKindLink, id: id})
}

// BreakLinks removes every link touching nodeID without deleting the
// node itself.
func (ctx *Context) BreakLinks(nodeID EntityID) {
	var toRemove []EntityID
	ctx.store.eachLink(func(l *Link) {
		if linkTouchesNode(ctx, l, nodeID) {
			toRemove = append(toRemove, l.ID)
		}
	})
	for _, id := range toRemove {
		ctx.store.deleteLink(id)
	}
}

func (ctx *Context) HasAnyLinks(nodeID EntityID) bool {
	found := false
	ctx.store.eachLink(func(l *Link) {
		if linkTouchesNode(ctx, l, nodeID) {
			found = true
		}
	})
	return found
}

func linkTouchesNode(ctx *Context, l *Link, nodeID EntityID) bool {
	start, ok1 := ctx.store.findPin(l.StartPinID)
	end, ok2 := ctx.store.findPin(l.EndPinID)
	return (ok1 && start.Node == nodeID) || (ok2 && end.Node == nodeID)
}

// BeginDelete opens the delete query block; returns false when the
// queue is empty this frame.
func (ctx *Context) BeginDelete() bool { return len(ctx.deleteQueue) > 0 }

// QueryDeletedLink serves the next unresolved link candidate. Links
// are served before nodes within a frame to avoid dangling pin
// references (spec §4.4).
func (ctx *Context) QueryDeletedLink() (id EntityID, ok bool) {
	for i := range ctx.deleteQueue {
		c := &ctx.deleteQueue[i]
		if !c.resolved && c.kind == deleteKindLink {
			return c.id, true
		}
	}
	return 0, false
}

// QueryDeletedNode serves the next unresolved node candidate, but only
// once all link candidates have been resolved this frame.
func (ctx *Context) QueryDeletedNode() (id EntityID, ok bool) {
	for i := range ctx.deleteQueue {
		c := &ctx.deleteQueue[i]
		if !c.resolved && c.kind == deleteKindLink {
			return 0, false
		}
	}
	for i := range ctx.deleteQueue {
		c := &ctx.deleteQueue[i]
		if !c.resolved && c.kind == deleteKindNode {
			return c.id, true
		}
	}
	return 0, false
}

// AcceptDeletedItem confirms the most recently queried candidate for
// the given id. When deleteDependencies is true and the candidate is a
// node, every link touching it is additionally queued so the host gets
// an individual veto opportunity on each via subsequent
// QueryDeletedLink calls, per spec §4.4.
func (ctx *Context) AcceptDeletedItem(id EntityID, deleteDependencies bool) bool {
	for i := range ctx.deleteQueue {
		c := &ctx.deleteQueue[i]
		if c.resolved || c.id != id {
			continue
		}
		c.resolved = true
		switch c.kind {
		case deleteKindLink:
			ctx.store.deleteLink(id)
		case deleteKindNode:
			if deleteDependencies {
				ctx.store.eachLink(func(l *Link) {
					if linkTouchesNode(ctx, l, id) && !ctx.alreadyQueued(l.ID, deleteKindLink) {
						ctx.deleteQueue = append(ctx.deleteQueue, deleteCandidate{kind: deleteKindLink, id: l.ID})
					}
				})
			}
			ctx.store.deleteNode(id)
		}
		return true
	}
	return false
}

func (ctx *Context) alreadyQueued(id EntityID, kind deleteKind) bool {
	for _, c := range ctx.deleteQueue {
		if c.id == id && c.kind == kind {
			return true
		}
	}
	return false
}

// RejectDeletedItem vetoes the candidate, removing it from the queue
// without deleting anything.
func (ctx *Context) RejectDeletedItem(id EntityID) {
	for i := range ctx.deleteQueue {
		if ctx.deleteQueue[i].id == id && !ctx.deleteQueue[i].resolved {
			ctx.deleteQueue[i].resolved = true
			return
		}
	}
}

// EndDelete closes the delete query block, dropping any resolved
// candidates left in the queue.
func (ctx *Context) EndDelete() {
	remaining := ctx.deleteQueue[:0]
	for _, c := range ctx.deleteQueue {
		if !c.resolved {
			remaining = append(remaining, c)
		}
	}
	ctx.deleteQueue = remaining
}
