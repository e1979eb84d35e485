package nodegraph

// channelsPerNode is c_ChannelsPerNode from the spec: each node
// reserves a block of per-node channels for base, background,
// user-background, pin, content (spec §3 Channels).
const channelsPerNode = 5

// nodeBuilderFrame is one entry in the stack of builder frames stored
// on the Context (design note: "model the coroutine-like Begin/End
// flow as a stack of builder frames; each Begin* pushes, each End*
// pops and validates match").
type nodeBuilderFrame struct {
	nodeID      EntityID
	channelBase int

	pinKind  PinKind
	pinID    EntityID
	pinOpen  bool

	pivotAlignment Point
	pivotSize      Size
	pivotScale     Point
}

// BeginNode opens a node submission. Applies any pending restore-state
// or center-on-screen request and marks the node live for this frame.
// It reserves no per-node draw channels.
func (ctx *Context) BeginNode(id EntityID) *Node {
	debugCheck(ctx.cfg.Debug, ctx.builderTop == nil, "BeginNode called while another node builder is open")
	n, _ := ctx.store.getOrCreateNode(id)
	n.live = true
	n.PinIDs = n.PinIDs[:0]

	if n.centerOnScreenPending {
		size := n.Bounds.Size()
		center := ctx.Canvas.GetVisibleBounds().Center()
		n.Bounds = RectFromPosSize(Point{center.X - size.W/2, center.Y - size.H/2}, size)
		n.centerOnScreenPending = false
	}
	// The first time a node id is ever submitted, automatically restore
	// its saved settings record (if any) the same way an explicit
	// RestoreNodeState call would later (spec §7; original_source gates
	// this on m_WasUsed in EditorContext::CreateNode).
	if rec, ok := ctx.settings.nodes[id]; ok && (n.restoreStatePending || !n.wasUsed) {
		n.Bounds = RectFromPosSize(rec.Location, rec.Size)
		if rec.hasGroup {
			n.GroupBounds = RectFromPosSize(n.Bounds.Min, rec.GroupSize)
		}
		n.restoreStatePending = false
	}
	n.wasUsed = true

	ctx.builderTop = &nodeBuilderFrame{
		nodeID:         id,
		pivotAlignment: Point{ctx.style.Var(VarPivotAlignmentX), ctx.style.Var(VarPivotAlignmentY)},
		pivotSize:      Size{ctx.style.Var(VarPivotSizeX), ctx.style.Var(VarPivotSizeY)},
		pivotScale:     Point{ctx.style.Var(VarPivotScaleX), ctx.style.Var(VarPivotScaleY)},
	}
	return n
}

// EndNode captures the node's measured size; a change from the
// previous frame marks settings dirty with reason Size.
func (ctx *Context) EndNode(measuredSize Size) {
	debugCheck(ctx.cfg.Debug, ctx.builderTop != nil, "EndNode called without a matching BeginNode")
	frame := ctx.builderTop
	ctx.builderTop = nil
	n, ok := ctx.store.findNode(frame.nodeID)
	if !ok {
		return
	}
	if measuredSize != n.measuredSize {
		n.measuredSize = measuredSize
		n.Bounds = RectFromPosSize(n.Bounds.Min, measuredSize)
		rec := ctx.settings.nodeRecord(n.ID)
		rec.makeDirty(DirtySize)
		rec.Size = measuredSize
	}
}

// Group marks the current node as a group and reserves a hollow
// interior region equal to size.
func (ctx *Context) Group(size Size) {
	debugCheck(ctx.cfg.Debug, ctx.builderTop != nil, "Group called outside BeginNode/EndNode")
	n, ok := ctx.store.findNode(ctx.builderTop.nodeID)
	if !ok {
		return
	}
	n.Kind = KindGroup
	n.GroupBounds = RectFromPosSize(n.Bounds.Min, size)
}

// BeginPin opens a pin submission under the current node.
func (ctx *Context) BeginPin(id EntityID, kind PinKind) *Pin {
	debugCheck(ctx.cfg.Debug, ctx.builderTop != nil, "BeginPin called outside BeginNode/EndNode")
	debugCheck(ctx.cfg.Debug, !ctx.builderTop.pinOpen, "BeginPin called while another pin is open")
	p := ctx.store.getOrCreatePin(id)
	p.Node = ctx.builderTop.nodeID
	p.Kind = kind
	p.live = true
	ctx.builderTop.pinID = id
	ctx.builderTop.pinKind = kind
	ctx.builderTop.pinOpen = true

	if n, ok := ctx.store.findNode(p.Node); ok {
		n.PinIDs = append([]EntityID{id}, n.PinIDs...) // newest-first
	}
	return p
}

// PinRect sets the pin's post-layout item rectangle, captured by the
// host after it lays out the pin's body.
func (ctx *Context) PinRect(bounds Rect) {
	debugCheck(ctx.cfg.Debug, ctx.builderTop != nil && ctx.builderTop.pinOpen, "PinRect called outside BeginPin/EndPin")
	p, ok := ctx.store.findPin(ctx.builderTop.pinID)
	if !ok {
		return
	}
	p.Bounds = bounds
}

// PinPivotRect / PinPivotSize / PinPivotScale / PinPivotAlignment let
// the host override the pivot geometry for the currently open pin
// before EndPin computes it.
func (ctx *Context) PinPivotRect(r Rect) {
	p, ok := ctx.store.findPin(ctx.builderTop.pinID)
	if ok {
		p.Pivot = r
	}
}

func (ctx *Context) PinPivotSize(size Size) { ctx.builderTop.pivotSize = size }
func (ctx *Context) PinPivotScale(scale Point) { ctx.builderTop.pivotScale = scale }
func (ctx *Context) PinPivotAlignment(align Point) { ctx.builderTop.pivotAlignment = align }

// EndPin closes the pin submission, computing its pivot from the
// node's pin bounds plus pivotAlignment/pivotSize/pivotScale unless
// the host already set an explicit pivot rect via PinPivotRect.
func (ctx *Context) EndPin() {
	debugCheck(ctx.cfg.Debug, ctx.builderTop != nil && ctx.builderTop.pinOpen, "EndPin called without a matching BeginPin")
	p, ok := ctx.store.findPin(ctx.builderTop.pinID)
	ctx.builderTop.pinOpen = false
	if !ok {
		return
	}
	if p.Pivot == (Rect{}) {
		frame := ctx.builderTop
		size := p.Bounds.Size()
		pw := size.W * frame.pivotScale.X
		ph := size.H * frame.pivotScale.Y
		if frame.pivotSize.W > 0 {
			pw = frame.pivotSize.W
		}
		if frame.pivotSize.H > 0 {
			ph = frame.pivotSize.H
		}
		origin := Point{
			X: p.Bounds.Min.X + (size.W-pw)*frame.pivotAlignment.X,
			Y: p.Bounds.Min.Y + (size.H-ph)*frame.pivotAlignment.Y,
		}
		p.Pivot = RectFromPosSize(origin, Size{pw, ph})
	}
	if p.Direction == (Point{}) {
		if p.Kind == PinOutput {
			p.Direction = Point{ctx.style.Var(VarSourceDirectionX), ctx.style.Var(VarSourceDirectionY)}
		} else {
			p.Direction = Point{ctx.style.Var(VarTargetDirectionX), ctx.style.Var(VarTargetDirectionY)}
		}
	}
	if p.Strength <= 0 {
		p.Strength = ctx.style.Var(VarLinkStrength)
	}
}

// GetNodeBackgroundDrawList returns the drawing channel reserved for
// the current node's user-background layer, letting the host draw
// behind its own content but above the node's fill.
func (ctx *Context) GetNodeBackgroundDrawList(dl *DrawList) *DrawChannel {
	if ctx.builderTop == nil {
		return nil
	}
	idx := ctx.builderTop.channelBase + 2 // user-background slot
	if idx >= len(dl.Channels) {
		dl.Grow(idx + 1)
	}
	return &dl.Channels[idx]
}
