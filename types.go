package dflow

import (
	"context"
	"fmt"
	"reflect"
)

// NodeID is a strongly-typed, monotonically increasing node handle. It is
// never reused after EraseNode, and the zero value never names a live
// node — the graph starts allocating at 1.
type NodeID uint64

// PollState is the outcome of one node's poll during a tick.
type PollState int

const (
	// Ready means the node advanced; Value() now reflects its new output.
	Ready PollState = iota
	// Empty means no value this tick; downstream nodes are skipped this
	// tick only.
	Empty
	// Closed means the node will never produce again; downstream nodes
	// are closed for the remainder of the run.
	Closed
)

func (s PollState) String() string {
	switch s {
	case Ready:
		return "ready"
	case Empty:
		return "empty"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("PollState(%d)", int(s))
	}
}

type noOutput struct{}

// NoOutputType is the distinguished output type token used by sink nodes,
// which have no output. A node is a sink iff its OutputType() == NoOutputType.
var NoOutputType = reflect.TypeOf(noOutput{})

// TypeOf returns the comparable type token for T. Type tokens are never
// compared structurally, only by identity (==), which is exactly what
// reflect.Type gives us for free.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Node is the capability every node in a pipeline must satisfy. It says
// nothing about the node's input/output types — those live on TypedNode —
// so the scheduler and the rendering code can hold a Node without knowing
// anything about the concrete producer/component/sink shape underneath.
type Node interface {
	// Name returns a human-readable display name for the node.
	Name() string
	// PollNext advances the node by one tick and reports the outcome.
	PollNext(ctx context.Context) (PollState, error)
}

// TypedNode is a Node that has declared its static input and output type
// tokens. CreateNode requires this; IsSource/IsSink are derived from it.
type TypedNode interface {
	Node
	// InputTypes returns the node's ordered input slot types. A source
	// returns an empty slice.
	InputTypes() []reflect.Type
	// OutputType returns the node's output type token, or NoOutputType
	// for a sink.
	OutputType() reflect.Type
}

// Binder is implemented by non-source nodes. Connect invokes Bind exactly
// once per successful connection targeting one of the node's slots, so the
// node can cache a typed view of its producer for later Value() reads.
type Binder interface {
	Bind(producer Node, slot int)
}

// Valuer is implemented by non-sink nodes. It exposes the node's most
// recently produced value; valid to call any time after at least one Ready
// poll.
type Valuer interface {
	Value() any
}

// Dependency names one (consumer, slot) pair fed by a particular producer.
type Dependency struct {
	Dst  NodeID
	Slot int
}
