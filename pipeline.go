package dflow

import (
	"context"
	"log/slog"
	"time"
)

// Pipeline wraps a Graph with the ambient concerns a running pipeline needs:
// a logger, a name for log lines, an optional per-tick timeout, and the
// sticky closed-node bookkeeping Step relies on. The zero value is not
// usable; build one with New.
type Pipeline struct {
	graph       *Graph
	logger      *slog.Logger
	name        string
	tickTimeout time.Duration

	closed map[NodeID]bool
}

// Option configures a Pipeline at construction time.
type Option func(*Pipeline)

// WithLogger overrides the default logger (slog.Default()).
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) { p.logger = logger }
}

// WithName sets the name used in log lines. Default is "pipeline".
func WithName(name string) Option {
	return func(p *Pipeline) { p.name = name }
}

// WithTickTimeout sets a deadline, counted from the start of each Step call,
// on the context that Step passes to every PollNext; nodes that check their
// context see it expire. A zero timeout (the default) sets no deadline; ctx
// cancellation still applies.
func WithTickTimeout(d time.Duration) Option {
	return func(p *Pipeline) { p.tickTimeout = d }
}

// NullLogger returns a logger that discards everything, for tests and
// callers that want Pipeline's default verbosity silenced.
func NullLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(discard{}, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// New wraps g in a Pipeline ready to Step or Run. g is not copied; mutating
// it after construction (CreateNode, Connect, ...) is reflected in
// subsequent ticks.
func New(g *Graph, opts ...Option) *Pipeline {
	p := &Pipeline{
		graph:  g,
		logger: slog.Default(),
		name:   "pipeline",
		closed: make(map[NodeID]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Graph returns the underlying store.
func (p *Pipeline) Graph() *Graph { return p.graph }

// Step runs one tick: every live node is visited in topological order and
// polled at most once. A node that has returned Closed in a previous tick
// is never polled again — it is recorded as Closed again without calling
// PollNext, since closedness is sticky and never downgraded. The moment a
// poll returns Empty or Closed, that result is painted across the entire
// forward-reachability closure of the polled node, short-circuiting every
// downstream consumer for the rest of this tick before it is ever polled;
// Closed dominates Empty in that paint and is never downgraded, while
// Empty only overrides the absence of any mark. Step returns true once
// every sink is Closed.
func (p *Pipeline) Step(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	tickCtx := ctx
	if p.tickTimeout > 0 {
		var cancel context.CancelFunc
		tickCtx, cancel = context.WithTimeout(ctx, p.tickTimeout)
		defer cancel()
	}

	order := p.graph.TopologicalOrder()
	states := make(map[NodeID]PollState, len(order))

	for _, id := range order {
		if p.closed[id] {
			states[id] = Closed
			continue
		}

		if state, marked := states[id]; marked {
			// Painted by an ancestor's Empty/Closed result earlier this
			// tick; short-circuited, never polled.
			if state == Closed {
				p.closed[id] = true
			}
			continue
		}

		node, ok := p.graph.GetNode(id)
		if !ok {
			continue
		}

		state, err := node.PollNext(tickCtx)
		if err != nil {
			p.logger.Error("node poll failed", "pipeline", p.name, "node", node.Name(), "id", id, "err", err)
			return false, err
		}

		states[id] = state
		if state == Closed {
			p.closed[id] = true
		}
		p.logger.Debug("polled node", "pipeline", p.name, "node", node.Name(), "id", id, "state", state.String())

		if state != Ready {
			paintReachable(states, p.graph.ForwardReachable(id), id, state)
		}
	}

	for _, id := range order {
		if p.graph.isSink(id) && states[id] != Closed {
			return false, nil
		}
	}
	return true, nil
}

// paintReachable marks every id in reachable (other than self) with state,
// except it never downgrades an id already marked Closed, and never lets a
// painted Empty override a Closed mark made by some other ancestor earlier
// in the same tick.
func paintReachable(states map[NodeID]PollState, reachable map[NodeID]bool, self NodeID, state PollState) {
	for id := range reachable {
		if id == self {
			continue
		}
		if existing, marked := states[id]; marked && existing == Closed {
			continue
		}
		states[id] = state
	}
}

// Run calls Step repeatedly until it reports done, an error occurs, or ctx
// is cancelled between ticks.
func (p *Pipeline) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		done, err := p.Step(ctx)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}
