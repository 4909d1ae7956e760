package dflow

import (
	"fmt"
	"reflect"
)

// ProducerBase caches a node's static output type token and its most
// recently produced value. Embed it in a concrete source or component node
// type; it supplies OutputType and Value so the concrete type only has to
// implement Name and PollNext.
type ProducerBase[O any] struct {
	value O
}

// OutputType implements TypedNode.
func (p *ProducerBase[O]) OutputType() reflect.Type { return TypeOf[O]() }

// Value implements Valuer, returning the last value Set by PollNext.
func (p *ProducerBase[O]) Value() any { return p.value }

// Set records the node's output for this tick. Call it from PollNext
// before returning Ready.
func (p *ProducerBase[O]) Set(v O) { p.value = v }

// Get returns the last value set, typed — a convenience for nodes that
// read their own output back (e.g. to compute the next tick's value).
func (p *ProducerBase[O]) Get() O { return p.value }

// ConsumerBase caches a node's static input type tokens and the producer
// bound to each slot by Bind. Embed it in a concrete component or sink node
// type; it supplies InputTypes and Bind.
type ConsumerBase struct {
	inputTypes []reflect.Type
	producers  []Node
}

// NewConsumerBase builds a ConsumerBase with one slot per input type, in
// order.
func NewConsumerBase(inputTypes ...reflect.Type) ConsumerBase {
	return ConsumerBase{
		inputTypes: inputTypes,
		producers:  make([]Node, len(inputTypes)),
	}
}

// InputTypes implements TypedNode.
func (c *ConsumerBase) InputTypes() []reflect.Type { return c.inputTypes }

// Bind implements Binder. Connect calls this exactly once per successful
// connection targeting slot.
func (c *ConsumerBase) Bind(producer Node, slot int) {
	c.producers[slot] = producer
}

// Producer returns the node most recently bound to slot, or nil if no
// producer has ever been bound to it. Disconnect and EraseNode do not call
// Bind, so a producer stays cached here after its edge is removed.
func (c *ConsumerBase) Producer(slot int) Node {
	return c.producers[slot]
}

// Input reads the current value of the producer bound to slot, asserted to
// T. Calling it on an unfilled slot, or against a producer whose value is
// not a T, is a graph-construction programming error, not a dataflow
// condition — it panics rather than returning a zero value silently.
func Input[T any](c *ConsumerBase, slot int) T {
	producer := c.producers[slot]
	v, ok := producer.(Valuer)
	if !ok {
		panic(fmt.Sprintf("dflow: slot %d has no bound producer", slot))
	}
	return v.Value().(T)
}

// SourceBase is a ProducerBase with no input slots — embed it in a
// zero-input producer node.
type SourceBase[O any] struct {
	ProducerBase[O]
}

// InputTypes implements TypedNode; sources declare no inputs.
func (SourceBase[O]) InputTypes() []reflect.Type { return nil }

// SinkBase is a ConsumerBase with the distinguished no-output type — embed
// it in a node with inputs but no output.
type SinkBase struct {
	ConsumerBase
}

// NewSinkBase builds a SinkBase with one slot per input type, in order.
func NewSinkBase(inputTypes ...reflect.Type) SinkBase {
	return SinkBase{ConsumerBase: NewConsumerBase(inputTypes...)}
}

// OutputType implements TypedNode; sinks produce nothing.
func (SinkBase) OutputType() reflect.Type { return NoOutputType }

// ComponentBase combines ConsumerBase and ProducerBase for a node with both
// inputs and an output.
type ComponentBase[O any] struct {
	ConsumerBase
	ProducerBase[O]
}

// NewComponentBase builds a ComponentBase with one input slot per type, in
// order.
func NewComponentBase[O any](inputTypes ...reflect.Type) ComponentBase[O] {
	return ComponentBase[O]{ConsumerBase: NewConsumerBase(inputTypes...)}
}
