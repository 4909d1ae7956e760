package dflow

import "github.com/birdayz/dflow/internal/topoq"

// This file holds the pure, read-only analyses over a Graph: reachability,
// weak connectivity, cycle detection, and topological order. None of these
// mutate the store; IsValid composes them into the validity predicate.

// forwardDFS visits every node reachable from root by following outgoing
// edges, recording ids in post-order into *post. Children are visited in
// ascending id order so repeated calls over the same graph are
// deterministic.
func (g *Graph) forwardDFS(root NodeID, visited map[NodeID]bool, post *[]NodeID) {
	if visited[root] {
		return
	}
	visited[root] = true
	for _, child := range g.Outgoing(root) {
		g.forwardDFS(child, visited, post)
	}
	*post = append(*post, root)
}

// reachable runs a breadth-first expansion from root using neighbors (either
// Outgoing or IncomingProducers), with the pending frontier kept in
// ascending id order via topoq so the visited set fills in the same order
// on every call.
func reachable(root NodeID, neighbors func(NodeID) []NodeID) map[NodeID]bool {
	visited := map[NodeID]bool{root: true}
	frontier := topoq.New(func(a, b NodeID) bool { return a < b })
	frontier.Push(root)

	for frontier.Len() > 0 {
		u, _ := frontier.Pop()
		for _, v := range neighbors(u) {
			if !visited[v] {
				visited[v] = true
				frontier.Push(v)
			}
		}
	}
	return visited
}

// ForwardReachable returns the ids reachable from root by following
// outgoing edges, including root itself.
func (g *Graph) ForwardReachable(root NodeID) map[NodeID]bool {
	return reachable(root, g.Outgoing)
}

// BackwardReachable returns the ids that can reach root by following
// incoming edges, including root itself.
func (g *Graph) BackwardReachable(root NodeID) map[NodeID]bool {
	return reachable(root, g.IncomingProducers)
}

// WeaklyConnected reports whether every live node is forward- or
// backward-reachable from the lexicographically (numerically) first
// inserted id. An empty graph is not weakly connected. Because the root is
// always the first inserted node rather than an arbitrary one, this check
// is not rotation-invariant — that is intentional for a DAG pipeline (see
// spec Open Question 2) and should not be mistaken for a general
// connectivity test.
func (g *Graph) WeaklyConnected() bool {
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return false
	}
	root := ids[0]
	forward := g.ForwardReachable(root)
	backward := g.BackwardReachable(root)
	for _, id := range ids {
		if !forward[id] && !backward[id] {
			return false
		}
	}
	return true
}

// HasCycle reports whether the graph contains a cycle, via a classical
// three-color DFS over outgoing edges rooted at every unvisited node in
// ascending id order. A self-loop counts as a cycle.
func (g *Graph) HasCycle() bool {
	const (
		white = iota
		gray
		black
	)
	color := make(map[NodeID]int)

	var visit func(NodeID) bool
	visit = func(u NodeID) bool {
		color[u] = gray
		for _, v := range g.Outgoing(u) {
			switch color[v] {
			case gray:
				return true
			case white:
				if visit(v) {
					return true
				}
			}
		}
		color[u] = black
		return false
	}

	for _, id := range g.NodeIDs() {
		if color[id] == white {
			if visit(id) {
				return true
			}
		}
	}
	return false
}

// TopologicalOrder returns a valid topological ordering of every live node,
// computed as repeated forward DFS from unvisited roots (ascending id),
// pushing nodes post-order and reversing the resulting stack. Behavior is
// only meaningful for an acyclic graph; callers validate first.
func (g *Graph) TopologicalOrder() []NodeID {
	visited := make(map[NodeID]bool)
	var post []NodeID
	for _, id := range g.NodeIDs() {
		if !visited[id] {
			g.forwardDFS(id, visited, &post)
		}
	}

	order := make([]NodeID, len(post))
	for i, id := range post {
		order[len(post)-1-i] = id
	}
	return order
}

// IsValid reports whether the graph satisfies every structural invariant
// required to run it: every input slot filled, every non-sink node has at
// least one consumer, at least one source and one sink exist, the graph is
// weakly connected, and it is acyclic. An empty graph is invalid.
func (g *Graph) IsValid() bool {
	ids := g.NodeIDs()
	if len(ids) == 0 {
		return false
	}

	hasSource, hasSink := false, false
	for _, id := range ids {
		rec := g.nodes[id]

		for _, producer := range g.incoming[id] {
			if producer == 0 {
				return false
			}
		}

		if !rec.isSink && len(g.outgoing[id]) == 0 {
			return false
		}

		if rec.isSource {
			hasSource = true
		}
		if rec.isSink {
			hasSink = true
		}
	}

	if !hasSource || !hasSink {
		return false
	}
	if !g.WeaklyConnected() {
		return false
	}
	if g.HasCycle() {
		return false
	}
	return true
}
