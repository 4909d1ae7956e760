package render

import (
	"context"
	"reflect"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/birdayz/dflow"
)

type stubNode struct {
	name string
	in   []reflect.Type
	out  reflect.Type
}

func (s *stubNode) Name() string                                       { return s.name }
func (s *stubNode) InputTypes() []reflect.Type                         { return s.in }
func (s *stubNode) OutputType() reflect.Type                           { return s.out }
func (s *stubNode) PollNext(context.Context) (dflow.PollState, error)  { return dflow.Ready, nil }
func (s *stubNode) Bind(dflow.Node, int)                               {}

func TestDumpOrdersNodesAndEdges(t *testing.T) {
	g := dflow.NewGraph()
	a := g.CreateNode(&stubNode{name: "a", out: dflow.TypeOf[int]()})
	b := g.CreateNode(&stubNode{name: "b", in: []reflect.Type{dflow.TypeOf[int](), dflow.TypeOf[int]()}, out: dflow.NoOutputType})

	assert.NoError(t, g.Connect(a, b, 0))
	assert.NoError(t, g.Connect(a, b, 1))

	out := Dump(g)
	want := "digraph G {\n" +
		"  \"1 a\"\n" +
		"  \"2 b\"\n" +
		"\n" +
		"  \"1 a\" -> \"2 b\"\n" +
		"  \"1 a\" -> \"2 b\"\n" +
		"}\n"
	assert.Equal(t, want, out)
}
