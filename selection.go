package nodegraph

// HasSelectionChanged reports whether the selection changed since the
// last frame's End.
func (ctx *Context) HasSelectionChanged() bool { return ctx.selectionID != ctx.prevSelectionID }

func (ctx *Context) GetSelectedObjectCount() int { return len(ctx.selection) }

func (ctx *Context) GetSelectedNodes() []EntityID {
	var out []EntityID
	for _, id := range ctx.selection {
		if _, ok := ctx.store.findNode(id); ok {
			out = append(out, id)
		}
	}
	return out
}

func (ctx *Context) GetSelectedLinks() []EntityID {
	var out []EntityID
	for _, id := range ctx.selection {
		if _, ok := ctx.store.findLink(id); ok {
			out = append(out, id)
		}
	}
	return out
}

func (ctx *Context) IsNodeSelected(id EntityID) bool { return containsID(ctx.selection, id) }
func (ctx *Context) IsLinkSelected(id EntityID) bool { return containsID(ctx.selection, id) }

func containsID(list []EntityID, id EntityID) bool {
	for _, v := range list {
		if v == id {
			return true
		}
	}
	return false
}

// ClearSelection empties the selection set. A click that would mix
// node and link selections clears first (spec §3).
func (ctx *Context) ClearSelection() {
	if len(ctx.selection) == 0 {
		return
	}
	ctx.setSelection(nil)
}

// SelectNode/SelectLink add an entity to the selection. When append is
// false, or when the existing selection holds the other kind, the
// whole selection is cleared first.
func (ctx *Context) SelectNode(id EntityID, appendSel bool) {
	if !appendSel || ctx.selectionMixesWith(objNode) {
		ctx.ClearSelection()
	}
	ctx.setSelection(append(append([]EntityID(nil), ctx.selection...), id))
}

func (ctx *Context) SelectLink(id EntityID, appendSel bool) {
	if !appendSel || ctx.selectionMixesWith(objLink) {
		ctx.ClearSelection()
	}
	ctx.setSelection(append(append([]EntityID(nil), ctx.selection...), id))
}

func (ctx *Context) selectionMixesWith(kind objectKind) bool {
	if len(ctx.selection) == 0 {
		return false
	}
	for _, id := range ctx.selection {
		_, isNode := ctx.store.findNode(id)
		if kind == objNode && !isNode {
			return true
		}
		if kind == objLink && isNode {
			return true
		}
	}
	return false
}

func (ctx *Context) DeselectNode(id EntityID) { ctx.deselect(id) }
func (ctx *Context) DeselectLink(id EntityID) { ctx.deselect(id) }

func (ctx *Context) deselect(id EntityID) {
	out := make([]EntityID, 0, len(ctx.selection))
	for _, v := range ctx.selection {
		if v != id {
			out = append(out, v)
		}
	}
	ctx.setSelection(out)
}

// GetHoveredNode/GetHoveredPin/GetHoveredLink report this frame's hot
// object, if any, of the requested kind.
func (ctx *Context) GetHoveredNode() (EntityID, bool) {
	if ctx.interaction.probe.hotKind == objNode {
		return ctx.interaction.probe.hotID, true
	}
	return 0, false
}

func (ctx *Context) GetHoveredPin() (EntityID, bool) {
	if ctx.interaction.probe.hotKind == objPin {
		return ctx.interaction.probe.hotID, true
	}
	return 0, false
}

func (ctx *Context) GetHoveredLink() (EntityID, bool) {
	if ctx.interaction.probe.hotKind == objLink {
		return ctx.interaction.probe.hotID, true
	}
	return 0, false
}

func (ctx *Context) GetDoubleClickedNode() (EntityID, bool) {
	if ctx.interaction.probe.hotKind == objNode && ctx.interaction.probe.doubleClicked {
		return ctx.interaction.probe.hotID, true
	}
	return 0, false
}

func (ctx *Context) GetDoubleClickedPin() (EntityID, bool) {
	if ctx.interaction.probe.hotKind == objPin && ctx.interaction.probe.doubleClicked {
		return ctx.interaction.probe.hotID, true
	}
	return 0, false
}

func (ctx *Context) GetDoubleClickedLink() (EntityID, bool) {
	if ctx.interaction.probe.hotKind == objLink && ctx.interaction.probe.doubleClicked {
		return ctx.interaction.probe.hotID, true
	}
	return 0, false
}

func (ctx *Context) IsBackgroundClicked() bool       { return ctx.interaction.probe.backgroundClicked }
func (ctx *Context) IsBackgroundDoubleClicked() bool { return ctx.interaction.probe.backgroundDoubleClicked }

func (ctx *Context) GetBackgroundClickButtonIndex() int {
	return int(ctx.interaction.probe.backgroundClickButton)
}

func (ctx *Context) GetBackgroundDoubleClickButtonIndex() int {
	return int(ctx.interaction.probe.backgroundClickButton)
}
