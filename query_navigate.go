package nodegraph

// SetNodePosition / GetNodePosition / GetNodeSize / SetGroupSize set or
// read a node's editor-space placement. A stale id (never submitted)
// silently creates a placeholder non-live node that accepts the state
// when the host next submits it (spec §7).
func (ctx *Context) SetNodePosition(id EntityID, pos Point) {
	n, _ := ctx.store.getOrCreateNode(id)
	size := n.Bounds.Size()
	n.Bounds = RectFromPosSize(pos, size)
	rec := ctx.settings.nodeRecord(id)
	rec.makeDirty(DirtyPosition)
	rec.Location = pos
}

func (ctx *Context) GetNodePosition(id EntityID) (Point, bool) {
	n, ok := ctx.store.findNode(id)
	if !ok {
		return Point{}, false
	}
	return n.Bounds.Min, true
}

func (ctx *Context) GetNodeSize(id EntityID) (Size, bool) {
	n, ok := ctx.store.findNode(id)
	if !ok {
		return Size{}, false
	}
	return n.Bounds.Size(), true
}

func (ctx *Context) SetGroupSize(id EntityID, size Size) {
	n, _ := ctx.store.getOrCreateNode(id)
	n.GroupBounds = RectFromPosSize(n.Bounds.Min, size)
	rec := ctx.settings.nodeRecord(id)
	rec.hasGroup = true
	rec.GroupSize = size
	rec.makeDirty(DirtySize)
}

// CenterNodeOnScreen defers centering until the node's next build,
// matching the source's restore-state-pending style transient flag.
func (ctx *Context) CenterNodeOnScreen(id EntityID) {
	n, _ := ctx.store.getOrCreateNode(id)
	n.centerOnScreenPending = true
}

func (ctx *Context) SetNodeZPosition(id EntityID, z int) {
	n, _ := ctx.store.getOrCreateNode(id)
	n.ZOrder = z
}

func (ctx *Context) GetNodeZPosition(id EntityID) (int, bool) {
	n, ok := ctx.store.findNode(id)
	if !ok {
		return 0, false
	}
	return n.ZOrder, true
}

func (ctx *Context) RestoreNodeState(id EntityID) {
	n, _ := ctx.store.getOrCreateNode(id)
	n.restoreStatePending = true
}

// RenameGroup applies a host-supplied name to a group node's settings
// user blob. Supplemental feature pulled from original_source (spec
// dropped the cosmetic rename hook); paired with HintBuilder's
// DoubleClicked query in builder_hint.go.
func (ctx *Context) RenameGroup(id EntityID, name string) {
	rec := ctx.settings.nodeRecord(id)
	rec.UserBlob = []byte(name)
	rec.makeDirty(DirtyUser)
}

// NavigateToContent fits the view to the union of all live node
// bounds (spec §8 scenario 5).
func (ctx *Context) NavigateToContent(zoomIn bool, duration float64) {
	bounds, ok := ctx.contentBounds()
	if !ok {
		return
	}
	ctx.navigateToBounds(bounds, duration)
}

// NavigateToSelection fits the view to the union of selected node
// bounds.
func (ctx *Context) NavigateToSelection(zoomIn bool, duration float64) {
	var bounds Rect
	any := false
	for _, id := range ctx.selection {
		n, ok := ctx.store.findNode(id)
		if !ok {
			continue
		}
		if !any {
			bounds = n.Bounds
			any = true
		} else {
			bounds = bounds.Union(n.Bounds)
		}
	}
	if !any {
		return
	}
	ctx.navigateToBounds(bounds, duration)
}

func (ctx *Context) contentBounds() (Rect, bool) {
	var bounds Rect
	any := false
	ctx.store.eachNode(func(n *Node) {
		if !n.live {
			return
		}
		if !any {
			bounds = n.Bounds
			any = true
		} else {
			bounds = bounds.Union(n.Bounds)
		}
	})
	return bounds, any
}

func (ctx *Context) navigateToBounds(bounds Rect, duration float64) {
	zoom := computeFitZoom(bounds, ctx.Canvas.ScreenSize(), ctx.cfg.CustomZoomLevels)
	center := bounds.Center()
	targetOrigin := Point{
		X: ctx.Canvas.ScreenSize().W/2 - center.X*zoom,
		Y: ctx.Canvas.ScreenSize().H/2 - center.Y*zoom,
	}
	ctx.anim.navigate.NavigateTo(targetOrigin, zoom, duration)
	ctx.settings.makeGlobalDirty(DirtyNavigation)
}
