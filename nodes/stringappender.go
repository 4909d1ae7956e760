package nodes

import (
	"context"
	"fmt"

	"github.com/birdayz/dflow"
)

// StringAppender is a source that emits "<prefix><tick index>" each tick,
// forever. It is the string-typed counterpart to Counter, used to exercise
// multi-input components that join an int stream with a string stream.
type StringAppender struct {
	dflow.SourceBase[string]

	name   string
	prefix string
	tick   int
}

// NewStringAppender returns a StringAppender named name, prefixing every
// emitted value with prefix.
func NewStringAppender(name, prefix string) *StringAppender {
	return &StringAppender{name: name, prefix: prefix}
}

func (s *StringAppender) Name() string { return s.name }

func (s *StringAppender) PollNext(ctx context.Context) (dflow.PollState, error) {
	if err := ctx.Err(); err != nil {
		return dflow.Empty, err
	}
	s.Set(fmt.Sprintf("%s%d", s.prefix, s.tick))
	s.tick++
	return dflow.Ready, nil
}
