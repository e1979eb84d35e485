package nodegraph

// Node owns an editor-space bounding rectangle, a z-order, and the pins
// submitted under it this frame. Fields mirror spec §3's data model;
// the linked-pin-list and transient flags are grounded on the
// teacher's Node (parent/child tree, zIndex, drag-state fields)
// generalized from a scene-graph node to a graph-editor node: no
// parent/child tree here, only node→pins ownership and a group's
// separate group rectangle.
type Node struct {
	ID   EntityID
	Kind NodeKind

	Bounds Rect
	ZOrder int

	// GroupBounds is the hollow interior rectangle for a KindGroup node.
	GroupBounds Rect

	// PinIDs is pins owned by this node, newest-first (PreviousPin
	// submission order, per spec §3).
	PinIDs []EntityID

	BgColor     Color
	BorderColor Color
	BorderWidth float64
	Rounding    float64

	GroupBgColor     Color
	GroupBorderColor Color

	// live is cleared by Reset at the start of each frame and set when
	// the node's builder runs; a node not marked live this frame is not
	// drawn or hit-tested.
	live bool

	restoreStatePending   bool
	centerOnScreenPending bool

	// wasUsed is set the first time the node is ever submitted via
	// BeginNode; until then, BeginNode auto-restores any saved
	// NodeSettings record instead of waiting for an explicit
	// RestoreNodeState call (mirrors original_source's
	// EditorContext::CreateNode gating its restore on m_WasUsed).
	wasUsed bool

	dragging  bool
	dragStart Point

	measuredSize Size

	// AcceptLinkFunc vetoes a candidate link where this node owns the
	// receiver pin; nil means accept. Go-idiomatic veto hook standing
	// in for the source's virtual AcceptLink override (design note on
	// Action polymorphism, applied symmetrically here).
	AcceptLinkFunc func(receiver, provider EntityID) bool

	// WasLinkedFunc notifies this node that one of its pins just formed
	// a link, naming the receiver and provider pin ids (spec §4.3). Nil
	// means no notification is needed.
	WasLinkedFunc func(receiver, provider EntityID)

	// WasUnlinkedFunc notifies this node that one of its pins just lost
	// a link. Nil means no notification is needed.
	WasUnlinkedFunc func(receiver, provider EntityID)
}

// reset marks the node not-live at the start of a frame; the builder
// marks it live again if the host resubmits it this frame.
func (n *Node) reset() { n.live = false }

func (n *Node) HitPoint(p Point) bool {
	if n.Kind == KindGroup {
		// Hollow interior: only the border ring is hot, interior is
		// transparent so nested content receives hits (spec §4.4).
		outer := n.Bounds
		if !outer.Contains(p) {
			return false
		}
		return !n.GroupBounds.Contains(p)
	}
	return n.Bounds.Contains(p)
}

func (n *Node) HitRect(r Rect, allowIntersect bool) bool {
	if allowIntersect {
		return n.Bounds.Intersects(r)
	}
	return r.ContainsRect(n.Bounds)
}

// AcceptDrag captures the node's current position as the drag origin.
func (n *Node) AcceptDrag() {
	n.dragging = true
	n.dragStart = n.Bounds.Min
}

// UpdateDrag repositions the node by offset from the captured drag start.
func (n *Node) UpdateDrag(offset Point) {
	size := n.Bounds.Size()
	newPos := n.dragStart.Add(offset)
	n.Bounds = RectFromPosSize(newPos, size)
}

// EndDrag stops the drag and reports whether the position changed.
func (n *Node) EndDrag() bool {
	n.dragging = false
	return n.Bounds.Min != n.dragStart
}

// getGroupedNodes appends to out every node (recursively) whose full
// bounds are contained in this group's group rectangle.
func (n *Node) getGroupedNodes(ctx *Context, out *[]*Node) {
	if n.Kind != KindGroup {
		return
	}
	ctx.store.eachNode(func(other *Node) {
		if other == n || !other.live {
			return
		}
		if n.GroupBounds.ContainsRect(other.Bounds) {
			*out = append(*out, other)
			other.getGroupedNodes(ctx, out)
		}
	})
}

// Draw dispatches to base (selection/hover border), background (fill),
// and leaves a hook point for host content (already drawn into the
// node's content channel by the time Draw runs), per spec §4.3.
func (n *Node) Draw(dl *DrawList, style *Style, selected, hovered bool) {
	n.drawBackground(dl, style)
	n.drawBase(dl, style, selected, hovered)
}

func (n *Node) drawBackground(dl *DrawList, style *Style) {
	ch := dl.Current()
	bg := n.BgColor
	if bg == (Color{}) {
		bg = style.Color(ColorNodeBg)
	}
	drawRectFilled(ch, n.Bounds, bg)
	if n.Kind == KindGroup {
		gbg := n.GroupBgColor
		if gbg == (Color{}) {
			gbg = style.Color(ColorGroupBg)
		}
		drawRectFilled(ch, n.GroupBounds, gbg)
	}
}

func (n *Node) drawBase(dl *DrawList, style *Style, selected, hovered bool) {
	ch := dl.Current()
	switch {
	case selected:
		drawRectStroke(ch, n.Bounds, style.Color(ColorSelNodeBorder), style.Var(VarSelectedNodeBorderWidth))
	case hovered && n.Kind != KindGroup:
		// Groups do not receive hover borders (spec §4.3).
		drawRectStroke(ch, n.Bounds, style.Color(ColorHovNodeBorder), style.Var(VarHoveredNodeBorderWidth))
	default:
		border := n.BorderColor
		if border == (Color{}) {
			border = style.Color(ColorNodeBorder)
		}
		drawRectStroke(ch, n.Bounds, border, n.BorderWidth)
	}
}

func drawRectFilled(ch *DrawChannel, r Rect, col Color) {
	tl, tr := r.Min, Point{r.Max.X, r.Min.Y}
	br, bl := r.Max, Point{r.Min.X, r.Max.Y}
	ch.AddTriangle(tl, tr, br, col, r, 0)
	ch.AddTriangle(tl, br, bl, col, r, 0)
}

func drawRectStroke(ch *DrawChannel, r Rect, col Color, width float64) {
	if width <= 0 {
		return
	}
	outer := r.Inflate(width / 2)
	inner := r.Inflate(-width / 2)
	// Four thin quads forming the stroke ring, each as two triangles.
	drawRectFilled(ch, Rect{Point{outer.Min.X, outer.Min.Y}, Point{outer.Max.X, inner.Min.Y}}, col) // top
	drawRectFilled(ch, Rect{Point{outer.Min.X, inner.Max.Y}, Point{outer.Max.X, outer.Max.Y}}, col) // bottom
	drawRectFilled(ch, Rect{Point{outer.Min.X, inner.Min.Y}, Point{inner.Min.X, inner.Max.Y}}, col) // left
	drawRectFilled(ch, Rect{Point{inner.Max.X, inner.Min.Y}, Point{outer.Max.X, inner.Max.Y}}, col) // right
}
