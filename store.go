package nodegraph

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// EntityID is the host-supplied opaque identifier for a node, pin, or
// link. It is distinct from the donburi.Entity that backs the entity's
// storage slot; EntityID is the stable reference across frames (spec
// §3), donburi.Entity is the arena index.
type EntityID uint64

// Arena-indexed storage for nodes, pins, and links, backed by a single
// donburi.World. Per design note 9 ("arena+index layout... one storage
// vector for nodes and one for pins... links are a single index stored
// on the receiver pin") this promotes donburi from the teacher's
// optional ecs/ bridge into the core's own entity storage: donburi's
// generational Entity plays the role of "index" the note calls for,
// giving us reuse-safe ids and O(1) lookup without hand-rolling an
// arena and its free list.
type store struct {
	world donburi.World

	nodesByID map[EntityID]donburi.Entity
	pinsByID  map[EntityID]donburi.Entity
	linksByID map[EntityID]donburi.Entity
}

var (
	nodeComponent = donburi.NewComponentType[Node]()
	pinComponent  = donburi.NewComponentType[Pin]()
	linkComponent = donburi.NewComponentType[Link]()
)

func newStore() *store {
	return &store{
		world:     donburi.NewWorld(),
		nodesByID: make(map[EntityID]donburi.Entity),
		pinsByID:  make(map[EntityID]donburi.Entity),
		linksByID: make(map[EntityID]donburi.Entity),
	}
}

// getOrCreateNode returns the node for id, creating a fresh one if
// none exists yet; created reports whether this call made it.
func (s *store) getOrCreateNode(id EntityID) (n *Node, created bool) {
	if e, ok := s.nodesByID[id]; ok {
		return donburi.Get[Node](s.world.Entry(e)), false
	}
	e := s.world.Create(nodeComponent)
	entry := s.world.Entry(e)
	n = donburi.Get[Node](entry)
	*n = Node{ID: id}
	s.nodesByID[id] = e
	return n, true
}

func (s *store) findNode(id EntityID) (*Node, bool) {
	e, ok := s.nodesByID[id]
	if !ok {
		return nil, false
	}
	return donburi.Get[Node](s.world.Entry(e)), true
}

func (s *store) deleteNode(id EntityID) {
	e, ok := s.nodesByID[id]
	if !ok {
		return
	}
	s.world.Remove(e)
	delete(s.nodesByID, id)
}

func (s *store) getOrCreatePin(id EntityID) *Pin {
	if e, ok := s.pinsByID[id]; ok {
		return donburi.Get[Pin](s.world.Entry(e))
	}
	e := s.world.Create(pinComponent)
	entry := s.world.Entry(e)
	p := donburi.Get[Pin](entry)
	*p = Pin{ID: id}
	s.pinsByID[id] = e
	return p
}

func (s *store) findPin(id EntityID) (*Pin, bool) {
	e, ok := s.pinsByID[id]
	if !ok {
		return nil, false
	}
	return donburi.Get[Pin](s.world.Entry(e)), true
}

func (s *store) deletePin(id EntityID) {
	e, ok := s.pinsByID[id]
	if !ok {
		return
	}
	s.world.Remove(e)
	delete(s.pinsByID, id)
}

func (s *store) getOrCreateLink(id EntityID) *Link {
	if e, ok := s.linksByID[id]; ok {
		return donburi.Get[Link](s.world.Entry(e))
	}
	e := s.world.Create(linkComponent)
	entry := s.world.Entry(e)
	l := donburi.Get[Link](entry)
	*l = Link{ID: id}
	s.linksByID[id] = e
	return l
}

func (s *store) findLink(id EntityID) (*Link, bool) {
	e, ok := s.linksByID[id]
	if !ok {
		return nil, false
	}
	return donburi.Get[Link](s.world.Entry(e)), true
}

func (s *store) deleteLink(id EntityID) {
	e, ok := s.linksByID[id]
	if !ok {
		return
	}
	s.world.Remove(e)
	delete(s.linksByID, id)
}

// eachNode iterates every stored node, live or not, in arena order (not z-order; callers
// needing z-order sort the slice themselves).
func (s *store) eachNode(fn func(*Node)) {
	q := donburi.NewQuery(filter.Contains(nodeComponent))
	q.Each(s.world, func(entry *donburi.Entry) {
		fn(donburi.Get[Node](entry))
	})
}

func (s *store) eachPin(fn func(*Pin)) {
	q := donburi.NewQuery(filter.Contains(pinComponent))
	q.Each(s.world, func(entry *donburi.Entry) {
		fn(donburi.Get[Pin](entry))
	})
}

// anyPinLinksTo reports whether some pin still records providerID as
// its link, used by Pin.Unlink to decide whether a provider's
// HasConnection should clear (a provider pin can have more than one
// receiver, spec §3).
func (s *store) anyPinLinksTo(providerID EntityID) bool {
	found := false
	s.eachPin(func(p *Pin) {
		if p.Link == providerID {
			found = true
		}
	})
	return found
}

func (s *store) eachLink(fn func(*Link)) {
	q := donburi.NewQuery(filter.Contains(linkComponent))
	q.Each(s.world, func(entry *donburi.Entry) {
		fn(donburi.Get[Link](entry))
	})
}
