package nodegraph

// BeginCreate opens the create-item query block; returns false when no
// create candidate exists this frame (spec §4.4 create-item details).
func (ctx *Context) BeginCreate() bool { return ctx.pendingCreate != nil }

// QueryNewLink returns the candidate link endpoints when the create
// action's candidate is a compatible pin.
func (ctx *Context) QueryNewLink() (startPin, endPin EntityID, ok bool) {
	if ctx.pendingCreate == nil || ctx.pendingCreate.candidatePin == 0 {
		return 0, 0, false
	}
	return ctx.pendingCreate.originPin, ctx.pendingCreate.candidatePin, true
}

// QueryNewNode returns the drop point when the create action's
// candidate is empty canvas (no compatible pin under the cursor).
func (ctx *Context) QueryNewNode() (pinID EntityID, dropPoint Point, ok bool) {
	if ctx.pendingCreate == nil || ctx.pendingCreate.candidatePin != 0 {
		return 0, Point{}, false
	}
	return ctx.pendingCreate.originPin, ctx.pendingCreate.canvasPoint, true
}

// AcceptNewItem confirms the pending create candidate: for a link
// candidate it performs the link (via Pin.LinkTo) and reports success;
// for a node candidate it just marks the pending item resolved, since
// the host is responsible for creating the node id and calling
// SetNodePosition at the drop point afterward.
func (ctx *Context) AcceptNewItem() bool {
	if ctx.pendingCreate == nil || ctx.pendingCreate.resolved {
		return false
	}
	ctx.pendingCreate.resolved = true
	if ctx.pendingCreate.candidatePin == 0 {
		return true
	}
	origin, ok1 := ctx.store.findPin(ctx.pendingCreate.originPin)
	cand, ok2 := ctx.store.findPin(ctx.pendingCreate.candidatePin)
	if !ok1 || !ok2 {
		return false
	}
	return origin.LinkTo(cand, ctx) == LinkOK
}

// RejectNewItem declines the pending create candidate; no link or
// node is created.
func (ctx *Context) RejectNewItem() {
	if ctx.pendingCreate != nil {
		ctx.pendingCreate.resolved = true
	}
}

// EndCreate closes the create-item query block for this frame.
func (ctx *Context) EndCreate() { ctx.pendingCreate = nil }

// Link submits (or updates) a link between startPinID and endPinID for
// this frame, marking it live. Submission is idempotent per id, the
// same way node/pin submission works.
func (ctx *Context) Link(id EntityID, startPinID, endPinID EntityID, color Color, thickness float64) *Link {
	l := ctx.store.getOrCreateLink(id)
	l.StartPinID = startPinID
	l.EndPinID = endPinID
	l.Color = color
	l.Thickness = thickness
	l.live = true
	l.UpdateEndpoints(ctx)
	return l
}

// Flow starts a flow-pulse animation on linkID; an animation already
// running on that link is left as it is.
// direction is reserved for a future reversed-flow mode; the marker
// walk always proceeds start->end today.
func (ctx *Context) Flow(linkID EntityID, direction int) {
	if ctx.anim.flows[linkID] == nil {
		ctx.anim.flows[linkID] = newFlowAnimation(linkID, ctx.style)
	}
}
