// Package topoq is a small deterministic frontier queue shared by the
// graph analyses and the step scheduler. Both need to expand a BFS/DFS
// frontier in a stable order so that repeated runs over the same graph
// produce byte-identical traces — the same concern the teacher's older
// worker-balancing code solves with golang.org/x/exp/slices.Sort calls on
// every queue mutation.
package topoq

import "golang.org/x/exp/slices"

// Ordered is a frontier that keeps its pending items sorted by less,
// so Pop always returns the least remaining item rather than insertion
// order.
type Ordered[T any] struct {
	items []T
	less  func(a, b T) bool
}

// New returns an empty Ordered frontier using less to order items.
func New[T any](less func(a, b T) bool) *Ordered[T] {
	return &Ordered[T]{less: less}
}

// Push inserts v, keeping items sorted.
func (o *Ordered[T]) Push(v T) {
	o.items = append(o.items, v)
	slices.SortFunc(o.items, func(a, b T) bool { return o.less(a, b) })
}

// Pop removes and returns the least item, or ok=false if empty.
func (o *Ordered[T]) Pop() (v T, ok bool) {
	if len(o.items) == 0 {
		return v, false
	}
	v = o.items[0]
	o.items = o.items[1:]
	return v, true
}

// Len reports how many items remain.
func (o *Ordered[T]) Len() int { return len(o.items) }
