package dflow

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestTypeOfIdentity(t *testing.T) {
	assert.Equal(t, TypeOf[int](), TypeOf[int]())
	assert.NotEqual(t, TypeOf[int](), TypeOf[string]())
	assert.NotEqual(t, TypeOf[int](), NoOutputType)
}

func TestPollStateString(t *testing.T) {
	cases := []struct {
		state PollState
		want  string
	}{
		{Ready, "ready"},
		{Empty, "empty"},
		{Closed, "closed"},
	}
	for _, tt := range cases {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.state.String())
		})
	}
}
