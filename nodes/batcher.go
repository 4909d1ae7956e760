package nodes

import (
	"context"

	"github.com/birdayz/dflow"
	"go.uber.org/multierr"
)

// Batcher is a single-input sink that buffers values and flushes them in
// groups of BatchSize through Flush, one call per buffered item. Flush
// failures for individual items don't stop the batch — every item is still
// attempted, and their errors are combined with multierr before PollNext
// returns, mirroring how a partial write failure is reported without
// losing the other failures in the same batch.
type Batcher[T any] struct {
	dflow.SinkBase

	name      string
	BatchSize int
	Flush     func(T) error

	buf []T
}

// NewBatcher returns a Batcher named name, bound to a single input of type
// T, flushing every batchSize items via flush.
func NewBatcher[T any](name string, batchSize int, flush func(T) error) *Batcher[T] {
	return &Batcher[T]{
		name:      name,
		BatchSize: batchSize,
		Flush:     flush,
		SinkBase:  dflow.NewSinkBase(dflow.TypeOf[T]()),
	}
}

func (b *Batcher[T]) Name() string { return b.name }

func (b *Batcher[T]) PollNext(ctx context.Context) (dflow.PollState, error) {
	if err := ctx.Err(); err != nil {
		return dflow.Empty, err
	}

	b.buf = append(b.buf, dflow.Input[T](&b.ConsumerBase, 0))
	if len(b.buf) < b.BatchSize {
		return dflow.Ready, nil
	}

	var err error
	for _, v := range b.buf {
		err = multierr.Append(err, b.Flush(v))
	}
	b.buf = b.buf[:0]

	if err != nil {
		return dflow.Empty, err
	}
	return dflow.Ready, nil
}
