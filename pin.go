package nodegraph

import "math"

// LinkReason explains why CanLinkTo rejected (or accepted) a candidate
// link; a result type standing in for the source's ad hoc bool return
// (design note: "use a result type for operations that can fail for
// data reasons").
type LinkReason int

const (
	LinkOK LinkReason = iota
	LinkRejectSameNode
	LinkRejectSameKind
	LinkRejectTypeMismatch
	LinkRejectVetoed
)

// Pin owns a bounding rectangle, a pivot rectangle (the link-attach
// anchor), a direction vector, and at most one outgoing link reference
// held on the receiver side (spec §3).
type Pin struct {
	ID   EntityID
	Kind PinKind
	Node EntityID

	Bounds Rect
	Pivot  Rect

	Direction Point
	Strength  float64

	// ValueType is an opaque type tag; "" is the wildcard ("any") type
	// that morphs to match whatever it links with (spec §4.3 rule 3).
	ValueType string

	Color       Color
	BorderColor Color
	BorderWidth float64
	Radius      float64
	ArrowSize   float64
	ArrowWidth  float64
	Rounding    float64

	// Link is the non-owning reference to the provider pin, held only
	// on the receiver side. Zero means unlinked.
	Link EntityID

	HasConnection bool
	HadConnection bool

	live bool
}

func (p *Pin) reset() {
	p.live = false
	// HadConnection flips at the start of the frame after a link
	// existed, per the spec's resolved open question.
	p.HadConnection = p.HadConnection || p.HasConnection
}

func (p *Pin) HitPoint(pt Point) bool { return p.inflatedPivot().Contains(pt) }

func (p *Pin) HitRect(r Rect, allowIntersect bool) bool {
	if allowIntersect {
		return p.Bounds.Intersects(r)
	}
	return r.ContainsRect(p.Bounds)
}

func (p *Pin) inflatedPivot() Rect {
	return p.Pivot.Inflate(p.Radius + p.ArrowSize)
}

// GetClosestPoint returns the nearest point on the pivot rectangle
// expanded by radius+arrowSize to q.
func (p *Pin) GetClosestPoint(q Point) Point {
	return closestPointOnRect(p.inflatedPivot(), q)
}

func closestPointOnRect(r Rect, q Point) Point {
	x := clampF(q.X, r.Min.X, r.Max.X)
	y := clampF(q.Y, r.Min.Y, r.Max.Y)
	return Point{x, y}
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// GetClosestLine returns the shortest straight segment between this
// pin's inflated pivot and the other's.
func (p *Pin) GetClosestLine(other *Pin) (Point, Point) {
	a := p.inflatedPivot()
	b := other.inflatedPivot()
	ca, cb := a.Center(), b.Center()
	pa := closestPointOnRect(a, cb)
	pb := closestPointOnRect(b, ca)
	_ = ca
	return pa, pb
}

// CanLinkTo evaluates the link-compatibility rules in spec §4.3 order.
func (p *Pin) CanLinkTo(other *Pin, ctx *Context) LinkReason {
	if p.Node == other.Node {
		return LinkRejectSameNode
	}
	if p.Kind == other.Kind {
		return LinkRejectSameKind
	}
	if p.ValueType != "" && other.ValueType != "" && p.ValueType != other.ValueType {
		return LinkRejectTypeMismatch
	}
	receiver, provider := p, other
	if p.Kind == PinOutput {
		receiver, provider = other, p
	}
	if node, ok := ctx.store.findNode(receiver.Node); ok && node.AcceptLinkFunc != nil {
		if !node.AcceptLinkFunc(receiver.ID, provider.ID) {
			return LinkRejectVetoed
		}
	}
	return LinkOK
}

// LinkTo performs CanLinkTo and, on success, clears any prior link on
// the receiver and records the new one, morphing a wildcard ("any")
// ValueType on either side to match its new partner's concrete type
// (spec §4.3 rule 3), and notifying both owning nodes.
func (p *Pin) LinkTo(other *Pin, ctx *Context) LinkReason {
	reason := p.CanLinkTo(other, ctx)
	if reason != LinkOK {
		return reason
	}
	receiver, provider := p, other
	if p.Kind == PinOutput {
		receiver, provider = other, p
	}
	if receiver.Link != 0 {
		receiver.Unlink(ctx)
	}
	receiver.Link = provider.ID
	receiver.HasConnection = true
	if prov, ok := ctx.store.findPin(provider.ID); ok {
		prov.HasConnection = true
	}
	switch {
	case receiver.ValueType == "":
		receiver.ValueType = provider.ValueType
	case provider.ValueType == "":
		provider.ValueType = receiver.ValueType
	}
	if node, ok := ctx.store.findNode(receiver.Node); ok && node.WasLinkedFunc != nil {
		node.WasLinkedFunc(receiver.ID, provider.ID)
	}
	if node, ok := ctx.store.findNode(provider.Node); ok && node.WasLinkedFunc != nil {
		node.WasLinkedFunc(receiver.ID, provider.ID)
	}
	return LinkOK
}

// Unlink clears the receiver's link field and updates connection flags,
// notifying both owning nodes. A provider pin can serve more than one
// receiver, so its HasConnection only clears once no other pin still
// references it (spec §3).
func (p *Pin) Unlink(ctx *Context) {
	if p.Link == 0 {
		return
	}
	providerID := p.Link
	p.Link = 0
	p.HasConnection = false
	if prov, ok := ctx.store.findPin(providerID); ok && !ctx.store.anyPinLinksTo(providerID) {
		prov.HasConnection = false
	}
	if node, ok := ctx.store.findNode(p.Node); ok && node.WasUnlinkedFunc != nil {
		node.WasUnlinkedFunc(p.ID, providerID)
	}
	if prov, ok := ctx.store.findPin(providerID); ok {
		if node, ok := ctx.store.findNode(prov.Node); ok && node.WasUnlinkedFunc != nil {
			node.WasUnlinkedFunc(p.ID, providerID)
		}
	}
}

// easedStrength implements the natural-compression easing used for
// link control points when endpoints are close (spec §3).
func easedStrength(strength, halfDist float64) float64 {
	if halfDist < strength {
		return strength * math.Sin(math.Pi/2*halfDist/strength)
	}
	return strength
}
