// Package render dumps a dflow.Graph to a DOT-like textual form for
// debugging and the cmd/dflowctl demo. It never mutates the graph it reads.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/birdayz/dflow"
)

// edge is a single src -> dst occurrence, kept even when a src feeds dst on
// more than one slot — the dump preserves one line per edge, not per
// distinct pair.
type edge struct {
	src, dst         dflow.NodeID
	srcName, dstName string
}

// Dump renders g as a single digraph block: one quoted "<id> <name>" line
// per live node in ascending id order, a blank line, then one quoted
// "<src_id> <src_name>" -> "<dst_id> <dst_name>" line per edge sorted by
// (src id, dst id). Duplicate edges (the same pair connected on more than
// one slot) are not deduplicated. The result always ends in a single
// trailing newline.
func Dump(g *dflow.Graph) string {
	var b strings.Builder
	b.WriteString("digraph G {\n")

	for _, id := range g.NodeIDs() {
		node, ok := g.GetNode(id)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "  %q\n", fmt.Sprintf("%d %s", id, node.Name()))
	}

	b.WriteString("\n")

	var edges []edge
	for _, src := range g.NodeIDs() {
		srcNode, ok := g.GetNode(src)
		if !ok {
			continue
		}
		deps, err := g.GetDependencies(src)
		if err != nil {
			continue
		}
		for _, dep := range deps {
			dstNode, ok := g.GetNode(dep.Dst)
			if !ok {
				continue
			}
			edges = append(edges, edge{
				src: src, dst: dep.Dst,
				srcName: srcNode.Name(), dstName: dstNode.Name(),
			})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].src != edges[j].src {
			return edges[i].src < edges[j].src
		}
		return edges[i].dst < edges[j].dst
	})

	for _, e := range edges {
		fmt.Fprintf(&b, "  %q -> %q\n",
			fmt.Sprintf("%d %s", e.src, e.srcName),
			fmt.Sprintf("%d %s", e.dst, e.dstName))
	}

	b.WriteString("}\n")
	return b.String()
}
