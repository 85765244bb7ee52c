package input

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_RegisterAndResolve(t *testing.T) {
	r := NewRegistry(context.Background())
	var got Event
	require.NoError(t, r.Register("camera_zoom", func(ev Event) { got = ev }))

	h, err := r.Resolve("camera_zoom")
	require.NoError(t, err)
	h(ScrollEvent{DY: 1})

	assert.Equal(t, ScrollEvent{DY: 1}, got)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_ResolveUnknown(t *testing.T) {
	r := NewRegistry(context.Background())

	h, err := r.Resolve("missing")

	assert.Nil(t, h)
	assert.ErrorIs(t, err, ErrUnknownCallback)
}

func TestRegistry_LastRegistrationWins(t *testing.T) {
	r := NewRegistry(context.Background())
	calls := ""
	require.NoError(t, r.Register("act", func(Event) { calls += "first" }))
	require.NoError(t, r.Register("act", func(Event) { calls += "second" }))

	h, err := r.Resolve("act")
	require.NoError(t, err)
	h(ScrollEvent{})

	assert.Equal(t, "second", calls)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_StrictRejectsDuplicates(t *testing.T) {
	r := NewRegistry(context.Background(), WithStrictRegistration())
	calls := ""
	require.NoError(t, r.Register("act", func(Event) { calls += "first" }))

	err := r.Register("act", func(Event) { calls += "second" })
	require.ErrorIs(t, err, ErrDuplicateCallback)

	h, err := r.Resolve("act")
	require.NoError(t, err)
	h(ScrollEvent{})
	assert.Equal(t, "first", calls)
}

func TestRegistry_RejectsInvalid(t *testing.T) {
	r := NewRegistry(context.Background())

	assert.ErrorIs(t, r.Register("", func(Event) {}), ErrInvalidCallback)
	assert.ErrorIs(t, r.Register("nil", nil), ErrInvalidCallback)
	assert.Zero(t, r.Len())
}

func TestRegistry_ClearAndNames(t *testing.T) {
	r := NewRegistry(context.Background())
	for _, name := range []string{"zoom", "close", "move"} {
		require.NoError(t, r.Register(name, func(Event) {}))
	}

	assert.Equal(t, []string{"close", "move", "zoom"}, r.Names())

	r.Clear()
	assert.Zero(t, r.Len())
	assert.Empty(t, r.Names())
	_, err := r.Resolve("zoom")
	assert.ErrorIs(t, err, ErrUnknownCallback)
}
