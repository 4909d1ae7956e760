package nodes

import (
	"context"
	"errors"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/birdayz/dflow"
	"go.uber.org/multierr"
)

func TestCounterEmitsIncreasingSequence(t *testing.T) {
	c := NewCounter("c", 10, 5)
	ctx := context.Background()

	state, err := c.PollNext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, dflow.Ready, state)
	assert.Equal(t, 10, c.Get())

	_, err = c.PollNext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 15, c.Get())
}

func TestJoinerCombinesInputs(t *testing.T) {
	g := dflow.NewGraph()
	counter := NewCounter("counter", 1, 1)
	strs := NewStringAppender("strs", "v")
	joiner := NewJoiner("joiner")

	counterID := g.CreateNode(counter)
	strsID := g.CreateNode(strs)
	joinerID := g.CreateNode(joiner)

	assert.NoError(t, g.Connect(counterID, joinerID, 0))
	assert.NoError(t, g.Connect(strsID, joinerID, 1))

	ctx := context.Background()
	_, err := counter.PollNext(ctx)
	assert.NoError(t, err)
	_, err = strs.PollNext(ctx)
	assert.NoError(t, err)

	state, err := joiner.PollNext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, dflow.Ready, state)
	assert.Equal(t, "v0:1", joiner.Get())
}

func TestSinkClosesAtLimit(t *testing.T) {
	g := dflow.NewGraph()
	counter := NewCounter("counter", 0, 1)
	sink := NewSink[int]("sink", 2)

	counterID := g.CreateNode(counter)
	sinkID := g.CreateNode(sink)
	assert.NoError(t, g.Connect(counterID, sinkID, 0))

	ctx := context.Background()
	_, err := counter.PollNext(ctx)
	assert.NoError(t, err)
	state, err := sink.PollNext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, dflow.Ready, state)

	_, err = counter.PollNext(ctx)
	assert.NoError(t, err)
	state, err = sink.PollNext(ctx)
	assert.NoError(t, err)
	assert.Equal(t, dflow.Closed, state)

	assert.Equal(t, []int{0, 1}, sink.Values)
}

func TestBatcherCombinesFlushErrors(t *testing.T) {
	g := dflow.NewGraph()
	counter := NewCounter("counter", 0, 1)

	flushErr := errors.New("boom")
	b := NewBatcher[int]("batcher", 3, func(v int) error {
		if v != 0 {
			return flushErr
		}
		return nil
	})

	counterID := g.CreateNode(counter)
	batcherID := g.CreateNode(b)
	assert.NoError(t, g.Connect(counterID, batcherID, 0))

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := counter.PollNext(ctx)
		assert.NoError(t, err)
		state, err := b.PollNext(ctx)
		if i < 2 {
			assert.NoError(t, err)
			assert.Equal(t, dflow.Ready, state)
		} else {
			assert.Error(t, err)
			assert.Equal(t, 2, len(multierr.Errors(err)))
			assert.Equal(t, dflow.Empty, state)
		}
	}
}
