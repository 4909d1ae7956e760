package nodes

import (
	"context"
	"fmt"

	"github.com/birdayz/dflow"
)

// Joiner is a two-input component: slot 0 takes an int, slot 1 a string,
// and it emits their combination as a string every tick both producers are
// Ready. It is a plain function node, useful mainly as a worked example of
// dflow.ComponentBase with mismatched input types.
type Joiner struct {
	dflow.ComponentBase[string]

	name string
}

// NewJoiner returns an unconnected Joiner named name; bind its two slots
// with Graph.Connect before running it.
func NewJoiner(name string) *Joiner {
	return &Joiner{
		name:          name,
		ComponentBase: dflow.NewComponentBase[string](dflow.TypeOf[int](), dflow.TypeOf[string]()),
	}
}

func (j *Joiner) Name() string { return j.name }

func (j *Joiner) PollNext(ctx context.Context) (dflow.PollState, error) {
	if err := ctx.Err(); err != nil {
		return dflow.Empty, err
	}
	n := dflow.Input[int](&j.ConsumerBase, 0)
	s := dflow.Input[string](&j.ConsumerBase, 1)
	j.Set(fmt.Sprintf("%s:%d", s, n))
	return dflow.Ready, nil
}
