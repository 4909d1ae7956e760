package dflow

import (
	"reflect"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func chain(t *testing.T, n int) (*Graph, []NodeID) {
	t.Helper()
	g := NewGraph()
	ids := make([]NodeID, n)
	ids[0] = g.CreateNode(newFakeSource("n0", TypeOf[int]()))
	for i := 1; i < n; i++ {
		var out reflect.Type = TypeOf[int]()
		if i == n-1 {
			out = NoOutputType
		}
		ids[i] = g.CreateNode(newFakeConsumer(nodeName(i), []reflect.Type{TypeOf[int]()}, out))
		assert.NoError(t, g.Connect(ids[i-1], ids[i], 0))
	}
	return g, ids
}

func nodeName(i int) string {
	return "n" + string(rune('0'+i))
}

func TestTopologicalOrderRespectsEdges(t *testing.T) {
	g, ids := chain(t, 4)
	order := g.TopologicalOrder()
	assert.Equal(t, 4, len(order))

	index := make(map[NodeID]int)
	for i, id := range order {
		index[id] = i
	}
	for i := 1; i < len(ids); i++ {
		assert.True(t, index[ids[i-1]] < index[ids[i]])
	}
}

func TestHasCycle(t *testing.T) {
	g := NewGraph()
	a := g.CreateNode(newFakeConsumer("a", []reflect.Type{TypeOf[int]()}, TypeOf[int]()))
	b := g.CreateNode(newFakeConsumer("b", []reflect.Type{TypeOf[int]()}, TypeOf[int]()))
	assert.NoError(t, g.Connect(a, b, 0))
	assert.False(t, g.HasCycle())

	assert.NoError(t, g.Connect(b, a, 0))
	assert.True(t, g.HasCycle())
}

func TestWeaklyConnected(t *testing.T) {
	g, _ := chain(t, 3)
	assert.True(t, g.WeaklyConnected())

	g.CreateNode(newFakeSource("isolated", TypeOf[int]()))
	assert.False(t, g.WeaklyConnected())
}

func TestWeaklyConnectedEmptyGraph(t *testing.T) {
	g := NewGraph()
	assert.False(t, g.WeaklyConnected())
}

func TestIsValid(t *testing.T) {
	t.Run("empty graph invalid", func(t *testing.T) {
		g := NewGraph()
		assert.False(t, g.IsValid())
	})

	t.Run("unfilled slot invalid", func(t *testing.T) {
		g := NewGraph()
		g.CreateNode(newFakeConsumer("sink", []reflect.Type{TypeOf[int]()}, NoOutputType))
		assert.False(t, g.IsValid())
	})

	t.Run("dangling producer invalid", func(t *testing.T) {
		g := NewGraph()
		g.CreateNode(newFakeSource("src", TypeOf[int]()))
		assert.False(t, g.IsValid())
	})

	t.Run("no source invalid", func(t *testing.T) {
		g := NewGraph()
		a := g.CreateNode(newFakeConsumer("a", []reflect.Type{TypeOf[int]()}, TypeOf[int]()))
		b := g.CreateNode(newFakeConsumer("b", []reflect.Type{TypeOf[int]()}, NoOutputType))
		assert.NoError(t, g.Connect(a, b, 0))
		assert.False(t, g.IsValid())
	})

	t.Run("cycle invalid", func(t *testing.T) {
		g := NewGraph()
		a := g.CreateNode(newFakeConsumer("a", []reflect.Type{TypeOf[int]()}, TypeOf[int]()))
		b := g.CreateNode(newFakeConsumer("b", []reflect.Type{TypeOf[int]()}, TypeOf[int]()))
		assert.NoError(t, g.Connect(a, b, 0))
		assert.NoError(t, g.Connect(b, a, 0))
		assert.False(t, g.IsValid())
	})

	t.Run("valid chain", func(t *testing.T) {
		g, _ := chain(t, 3)
		assert.True(t, g.IsValid())
	})
}
