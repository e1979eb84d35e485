package nodegraph

// NodeKind distinguishes a plain node from a group.
type NodeKind int

const (
	KindNode NodeKind = iota
	KindGroup
)

// PinKind distinguishes input (receiver-by-default) from output
// (provider-by-default) pins. The orientation is a default only: a
// node's AcceptLinkFunc may still accept an Output pin as the link's
// receiver (spec §3's "same mechanism accepts Output as receiver").
type PinKind int

const (
	PinInput PinKind = iota
	PinOutput
)

// DirtyReason is a bitmask tagging why a settings record needs saving.
type DirtyReason uint32

const (
	DirtyNavigation DirtyReason = 1 << iota
	DirtyPosition
	DirtySize
	DirtySelection
	DirtyAddNode
	DirtyRemoveNode
	DirtyUser
)

// Drawable is the trait implemented by Node, Pin, and Link in place of
// the source's Object base class (design note: "replace virtual
// dispatch over Object with a tagged variant plus a trait interface").
// Link's hit-testing needs a *Context (it has no cached geometry of
// its own between frames), so the common trait only covers the
// point/rect predicates Node and Pin can answer standalone. Link does
// not implement Drawable: it offers the same predicates as
// Context-taking methods, and a hot link is recorded by id and kind only.
type Drawable interface {
	HitPoint(p Point) bool
	HitRect(r Rect, allowIntersect bool) bool
}
