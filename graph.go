package dflow

import "slices"

// Graph is the mutable store owning every node in a pipeline and two
// reciprocal adjacency structures: outgoing[u] (the set of nodes u feeds)
// and incoming[v] (the slot -> producer map for v). Both are kept
// consistent by every mutating method; nothing outside this file writes to
// either map.
type Graph struct {
	nextID NodeID
	nodes  map[NodeID]*nodeRecord

	outgoing map[NodeID]map[NodeID]struct{}
	incoming map[NodeID][]NodeID // 0 means "unfilled"; real ids start at 1
}

type nodeRecord struct {
	node     TypedNode
	isSource bool
	isSink   bool
}

// NewGraph returns an empty graph store.
func NewGraph() *Graph {
	return &Graph{
		nodes:    make(map[NodeID]*nodeRecord),
		outgoing: make(map[NodeID]map[NodeID]struct{}),
		incoming: make(map[NodeID][]NodeID),
	}
}

// CreateNode registers n, allocates its id, caches its type info, and
// installs empty adjacency entries. It never fails: n is always
// constructible by the caller before this is called.
func (g *Graph) CreateNode(n TypedNode) NodeID {
	g.nextID++
	id := g.nextID

	inputTypes := n.InputTypes()
	g.nodes[id] = &nodeRecord{
		node:     n,
		isSource: len(inputTypes) == 0,
		isSink:   n.OutputType() == NoOutputType,
	}
	g.outgoing[id] = make(map[NodeID]struct{})
	g.incoming[id] = make([]NodeID, len(inputTypes))

	return id
}

// EraseNode removes id and every edge touching it: each producer loses id
// from its outgoing set, and every slot of every node id used to feed is
// cleared. Erasing an unknown id fails with ErrInvalidNodeID; erasing twice
// fails the same way.
func (g *Graph) EraseNode(id NodeID) error {
	if _, ok := g.nodes[id]; !ok {
		return ErrInvalidNodeID
	}

	for _, producer := range g.incoming[id] {
		if producer != 0 {
			delete(g.outgoing[producer], id)
		}
	}

	for consumer := range g.outgoing[id] {
		slots := g.incoming[consumer]
		for slot, producer := range slots {
			if producer == id {
				slots[slot] = 0
			}
		}
	}

	delete(g.incoming, id)
	delete(g.outgoing, id)
	delete(g.nodes, id)
	return nil
}

// GetNode returns a borrowed view of id's node, or ok=false if id is
// unknown. It never fails.
func (g *Graph) GetNode(id NodeID) (node TypedNode, ok bool) {
	rec, ok := g.nodes[id]
	if !ok {
		return nil, false
	}
	return rec.node, true
}

// Connect binds src's output to dst's input slot. Preconditions are
// checked in this exact priority order, which is observable and must be
// preserved even when more than one of them would fail:
//  1. ErrInvalidNodeID if either id is unknown
//  2. ErrSlotAlreadyUsed if slot is within range and already filled
//  3. ErrNoSuchSlot if slot is out of range
//  4. ErrConnectionTypeMismatch if the declared types don't line up
//
// On success it fills incoming[dst][slot], adds dst to outgoing[src], and
// calls Bind(src's node, slot) on dst's node if it implements Binder. A
// failed Connect leaves the graph unchanged.
func (g *Graph) Connect(src, dst NodeID, slot int) error {
	srcRec, ok := g.nodes[src]
	if !ok {
		return ErrInvalidNodeID
	}
	dstRec, ok := g.nodes[dst]
	if !ok {
		return ErrInvalidNodeID
	}

	incoming := g.incoming[dst]
	if slot >= 0 && slot < len(incoming) && incoming[slot] != 0 {
		return ErrSlotAlreadyUsed
	}

	inputTypes := dstRec.node.InputTypes()
	if slot < 0 || slot >= len(inputTypes) {
		return ErrNoSuchSlot
	}

	if inputTypes[slot] != srcRec.node.OutputType() {
		return ErrConnectionTypeMismatch
	}

	incoming[slot] = src
	g.outgoing[src][dst] = struct{}{}

	if binder, ok := dstRec.node.(Binder); ok {
		binder.Bind(srcRec.node, slot)
	}

	return nil
}

// Disconnect removes every edge from src to dst. It fails only with
// ErrInvalidNodeID for an unknown id; if src and dst are not connected it
// is a silent no-op, never an error.
func (g *Graph) Disconnect(src, dst NodeID) error {
	if _, ok := g.nodes[src]; !ok {
		return ErrInvalidNodeID
	}
	if _, ok := g.nodes[dst]; !ok {
		return ErrInvalidNodeID
	}

	if _, connected := g.outgoing[src][dst]; !connected {
		return nil
	}

	delete(g.outgoing[src], dst)
	slots := g.incoming[dst]
	for slot, producer := range slots {
		if producer == src {
			slots[slot] = 0
		}
	}
	return nil
}

// GetDependencies returns every (dst, slot) pair currently fed by src. The
// order is unspecified. Fails with ErrInvalidNodeID if src is unknown.
func (g *Graph) GetDependencies(src NodeID) ([]Dependency, error) {
	if _, ok := g.nodes[src]; !ok {
		return nil, ErrInvalidNodeID
	}

	var deps []Dependency
	for dst := range g.outgoing[src] {
		for slot, producer := range g.incoming[dst] {
			if producer == src {
				deps = append(deps, Dependency{Dst: dst, Slot: slot})
			}
		}
	}
	return deps, nil
}

// NodeIDs returns every live node id in ascending order.
func (g *Graph) NodeIDs() []NodeID {
	ids := make([]NodeID, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Outgoing returns the ids u feeds, in ascending order.
func (g *Graph) Outgoing(u NodeID) []NodeID {
	set := g.outgoing[u]
	out := make([]NodeID, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// IncomingProducers returns the distinct producers feeding any slot of v,
// in ascending order, skipping unfilled slots.
func (g *Graph) IncomingProducers(v NodeID) []NodeID {
	seen := make(map[NodeID]bool)
	var producers []NodeID
	for _, p := range g.incoming[v] {
		if p != 0 && !seen[p] {
			seen[p] = true
			producers = append(producers, p)
		}
	}
	slices.Sort(producers)
	return producers
}

func (g *Graph) isSource(id NodeID) bool { return g.nodes[id].isSource }
func (g *Graph) isSink(id NodeID) bool   { return g.nodes[id].isSink }
