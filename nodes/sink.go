package nodes

import (
	"context"

	"github.com/birdayz/dflow"
)

// Sink is a single-input terminal node that records every value its
// producer has set, one per tick. With a positive Limit it reports Closed
// once it has collected that many values; with Limit zero it never closes
// on its own and relies on an enclosing Run deadline or ctx cancellation to
// stop the pipeline.
type Sink[T any] struct {
	dflow.SinkBase

	name   string
	Limit  int
	Values []T
}

// NewSink returns a Sink named name bound to a single input of type T, with
// the given collection limit (0 for unbounded).
func NewSink[T any](name string, limit int) *Sink[T] {
	return &Sink[T]{
		name:     name,
		Limit:    limit,
		SinkBase: dflow.NewSinkBase(dflow.TypeOf[T]()),
	}
}

func (s *Sink[T]) Name() string { return s.name }

func (s *Sink[T]) PollNext(ctx context.Context) (dflow.PollState, error) {
	if err := ctx.Err(); err != nil {
		return dflow.Empty, err
	}
	if s.Limit > 0 && len(s.Values) >= s.Limit {
		return dflow.Closed, nil
	}
	s.Values = append(s.Values, dflow.Input[T](&s.ConsumerBase, 0))
	if s.Limit > 0 && len(s.Values) >= s.Limit {
		return dflow.Closed, nil
	}
	return dflow.Ready, nil
}
