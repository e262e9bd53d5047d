package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionalKey(t *testing.T) {
	t.Parallel()

	key := GroupKey{ClientAddress: "10.20.30.40", ActorID: "u200", QueryID: "query1"}

	some := SomeKey(key)
	got, ok := some.Get()
	assert.True(t, ok)
	assert.True(t, some.IsDefined())
	assert.Equal(t, key, got)
	assert.Equal(t, "(10.20.30.40,u200,query1)", some.String())

	undefined := UndefinedKey()
	got, ok = undefined.Get()
	assert.False(t, ok)
	assert.False(t, undefined.IsDefined())
	assert.Equal(t, GroupKey{}, got)
	assert.Equal(t, "undefined", undefined.String())
}

func TestOptionalKey_EmptyComponentsAreStillDefined(t *testing.T) {
	t.Parallel()

	// An empty actor is not the sentinel; only "-" makes a key undefined.
	assert.True(t, SomeKey(GroupKey{}).IsDefined())
	assert.NotEqual(t, SomeKey(GroupKey{}), UndefinedKey())
}

func TestGroupKey_Less(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b GroupKey
		want bool
	}{
		{
			name: "client address decides first",
			a:    GroupKey{ClientAddress: "10.0.0.1", ActorID: "z", QueryID: "z"},
			b:    GroupKey{ClientAddress: "10.0.0.2", ActorID: "a", QueryID: "a"},
			want: true,
		},
		{
			name: "actor decides second",
			a:    GroupKey{ClientAddress: "10.0.0.1", ActorID: "u2", QueryID: "a"},
			b:    GroupKey{ClientAddress: "10.0.0.1", ActorID: "u1", QueryID: "z"},
			want: false,
		},
		{
			name: "query decides last",
			a:    GroupKey{ClientAddress: "10.0.0.1", ActorID: "u1", QueryID: "q1"},
			b:    GroupKey{ClientAddress: "10.0.0.1", ActorID: "u1", QueryID: "q2"},
			want: true,
		},
		{
			name: "equal keys",
			a:    GroupKey{ClientAddress: "10.0.0.1", ActorID: "u1", QueryID: "q1"},
			b:    GroupKey{ClientAddress: "10.0.0.1", ActorID: "u1", QueryID: "q1"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.a.Less(tt.b))
		})
	}
}
