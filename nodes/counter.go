// Package nodes collects concrete producer, component, and sink node types
// built on dflow's embeddable bases. None of them know about the graph they
// end up wired into; they only implement Name, PollNext, and whatever
// optional capability interfaces apply.
package nodes

import (
	"context"

	"github.com/birdayz/dflow"
)

// Counter is a source that emits an increasing sequence of ints, one per
// tick, forever. It never returns Empty or Closed on its own; wrap it or
// cap the pipeline's tick count if you need it to stop.
type Counter struct {
	dflow.SourceBase[int]

	name string
	next int
	step int
}

// NewCounter returns a Counter named name, starting at start and advancing
// by step each tick. A step of zero is legal but pointless.
func NewCounter(name string, start, step int) *Counter {
	return &Counter{name: name, next: start, step: step}
}

func (c *Counter) Name() string { return c.name }

func (c *Counter) PollNext(ctx context.Context) (dflow.PollState, error) {
	if err := ctx.Err(); err != nil {
		return dflow.Empty, err
	}
	c.Set(c.next)
	c.next += c.step
	return dflow.Ready, nil
}
