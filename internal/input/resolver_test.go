package input_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lunar/internal/infrastructure/config"
	"github.com/bnema/lunar/internal/input"
)

type resolverFixture struct {
	registry *input.Registry
	table    *input.Table
	settings *input.Settings
	resolver *input.Resolver
	calls    []string
}

func newResolverFixture(t *testing.T, opts ...input.ResolverOption) *resolverFixture {
	t.Helper()
	ctx := context.Background()
	f := &resolverFixture{
		registry: input.NewRegistry(ctx),
		table:    input.NewTable(),
		settings: &input.Settings{},
	}
	for _, name := range []string{"window_close", "camera_move_forward", "camera_zoom", "camera_rotate", "window_windowed"} {
		name := name
		require.NoError(t, f.registry.Register(name, func(input.Event) { f.calls = append(f.calls, name) }))
	}
	f.resolver = input.NewResolver(ctx, f.registry, f.table, f.settings, opts...)
	return f
}

func (f *resolverFixture) callback(t *testing.T, id input.Identifier) string {
	t.Helper()
	b, ok := f.table.Lookup(id)
	require.Truef(t, ok, "%s not bound", id)
	return b.Callback
}

func writeDoc(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestResolver_ApplyBindsEveryValidEntry(t *testing.T) {
	f := newResolverFixture(t)
	doc := &config.Document{
		Bindings: []config.BindingEntry{
			{Input: "KEY_ESCAPE", Callback: "window_close"},
			{Input: "KEY_W", Callback: "camera_move_forward"},
			{Input: "MOUSE_SCROLL", Callback: "camera_zoom"},
			{Input: "MOUSE_MOVE", Callback: "camera_rotate", Modifiers: []string{"CONTROL", "ALT"}},
		},
		Settings: config.Settings{ResetPointerOnEnter: config.Bool(true)},
	}

	report, err := f.resolver.Apply(doc)

	require.NoError(t, err)
	assert.True(t, report.Applied)
	assert.Equal(t, 4, report.Bound)
	assert.Empty(t, report.Errors)
	assert.Equal(t, "window_close", f.callback(t, input.KeyEscape))
	assert.Equal(t, "camera_zoom", f.callback(t, input.IdentifierScroll))

	rotate, _ := f.table.Lookup(input.IdentifierMove)
	assert.Equal(t, input.ModControl|input.ModAlt, rotate.Mods)
	keyW, _ := input.LookupInput("KEY_W")
	w, _ := f.table.Lookup(keyW)
	assert.Equal(t, "camera_move_forward", w.Callback)
	assert.Equal(t, input.ModNone, w.Mods)
	assert.True(t, f.settings.ResetPointerOnEnter)
}

func TestResolver_UnknownCallbackSkipsOnlyThatEntry(t *testing.T) {
	f := newResolverFixture(t)
	doc := &config.Document{
		Bindings: []config.BindingEntry{
			{Input: "KEY_ESCAPE", Callback: "window_close"},
			{Input: "KEY_Q", Callback: "window_clsoe"},
			{Input: "MOUSE_SCROLL", Callback: "camera_zoom"},
		},
	}

	report, err := f.resolver.Apply(doc)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Bound)
	require.Len(t, report.Errors, 1)
	assert.ErrorIs(t, report.Errors[0], input.ErrUnknownCallback)
	assert.Equal(t, 1, report.Errors[0].Index)
	assert.Equal(t, "window_close", report.Errors[0].Suggestion)

	q, _ := input.LookupInput("KEY_Q")
	_, ok := f.table.Lookup(q)
	assert.False(t, ok)
	assert.Equal(t, "window_close", f.callback(t, input.KeyEscape))
	assert.Equal(t, "camera_zoom", f.callback(t, input.IdentifierScroll))
}

func TestResolver_UnknownInputAndModifierAreSkipped(t *testing.T) {
	f := newResolverFixture(t)
	doc := &config.Document{
		Bindings: []config.BindingEntry{
			{Input: "KEY_ESCAP", Callback: "window_close"},
			{Input: "KEY_W", Callback: "camera_move_forward", Modifiers: []string{"HYPER"}},
			{Input: "MOUSE_SCROLL", Callback: "camera_zoom"},
		},
	}

	report, err := f.resolver.Apply(doc)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Bound)
	require.Len(t, report.Errors, 2)
	assert.ErrorIs(t, report.Errors[0], input.ErrUnknownInput)
	assert.Equal(t, "KEY_ESCAPE", report.Errors[0].Suggestion)
	assert.ErrorIs(t, report.Errors[1], input.ErrUnknownModifier)
	assert.Contains(t, report.Errors[1].Error(), "HYPER")
}

func TestResolver_NoopCallbackLeavesInputUnbound(t *testing.T) {
	f := newResolverFixture(t)
	doc := &config.Document{
		Bindings: []config.BindingEntry{
			{Input: "KEY_TAB", Callback: input.NoopCallback},
			{Input: "KEY_ESCAPE", Callback: "window_close"},
		},
	}

	report, err := f.resolver.Apply(doc)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Unbound)
	assert.Empty(t, report.Errors)
	_, ok := f.table.Lookup(input.KeyTab)
	assert.False(t, ok)
}

func TestResolver_LaterEntryReplacesEarlierAndIsReported(t *testing.T) {
	f := newResolverFixture(t)
	doc := &config.Document{
		Bindings: []config.BindingEntry{
			{Input: "KEY_F11", Callback: "window_close"},
			{Input: "KEY_F11", Callback: "window_windowed", Modifiers: []string{"SHIFT"}},
		},
	}

	report, err := f.resolver.Apply(doc)

	require.NoError(t, err)
	require.Len(t, report.Conflicts, 1)
	assert.Equal(t, "window_close", report.Conflicts[0].Previous)
	f11, _ := input.LookupInput("KEY_F11")
	assert.Equal(t, "window_windowed", f.callback(t, f11))
}

func TestResolver_RebindReplacesWholeTable(t *testing.T) {
	f := newResolverFixture(t)
	_, err := f.resolver.Apply(&config.Document{
		Bindings: []config.BindingEntry{
			{Input: "KEY_ESCAPE", Callback: "window_close"},
			{Input: "KEY_W", Callback: "camera_move_forward"},
		},
		Settings: config.Settings{ResetPointerOnEnter: config.Bool(true)},
	})
	require.NoError(t, err)

	report, err := f.resolver.Apply(&config.Document{
		Bindings: []config.BindingEntry{
			{Input: "MOUSE_SCROLL", Callback: "camera_zoom"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, 1, report.Bound)
	assert.Equal(t, 1, f.table.Len())
	_, ok := f.table.Lookup(input.KeyEscape)
	assert.False(t, ok)
	assert.True(t, f.settings.ResetPointerOnEnter, "a document without settings keeps them")
}

func TestResolver_SettingsOnlyChangeWhenSet(t *testing.T) {
	f := newResolverFixture(t)
	f.settings.ResetPointerOnEnter = true

	_, err := f.resolver.Apply(&config.Document{})
	require.NoError(t, err)
	assert.True(t, f.settings.ResetPointerOnEnter)

	_, err = f.resolver.Apply(&config.Document{Settings: config.Settings{ResetPointerOnEnter: config.Bool(false)}})
	require.NoError(t, err)
	assert.False(t, f.settings.ResetPointerOnEnter)
}

func TestResolver_StrictKeepsTableAndReportsEverything(t *testing.T) {
	f := newResolverFixture(t, input.WithStrictBindings())
	_, err := f.resolver.Apply(&config.Document{
		Bindings: []config.BindingEntry{{Input: "KEY_ESCAPE", Callback: "window_close"}},
	})
	require.NoError(t, err)

	report, err := f.resolver.Apply(&config.Document{
		Bindings: []config.BindingEntry{
			{Input: "KEY_W", Callback: "camera_move_forward"},
			{Input: "KEY_NOPE", Callback: "window_close"},
			{Input: "KEY_W", Callback: "camera_zoom"},
			{Input: "KEY_E", Callback: "missing"},
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, input.ErrUnknownInput)
	assert.ErrorIs(t, err, input.ErrUnknownCallback)
	assert.False(t, report.Applied)
	assert.Len(t, report.Errors, 2)
	assert.Len(t, report.Conflicts, 1)
	assert.Equal(t, 1, f.table.Len())
	assert.Equal(t, "window_close", f.callback(t, input.KeyEscape))
}

func TestResolver_BindFromConfigYAML(t *testing.T) {
	f := newResolverFixture(t)
	path := writeDoc(t, "interface.yaml", `
keyboard_and_mouse_bindings:
  - key: GLFW_KEY_ESCAPE
    callback: window_close
  - key: GLFW_KEY_W
    callback: camera_move_forward
    mod: GLFW_KEY_LEFT_SHIFT
  - key: LUNAR_MOUSE_SCROLL
    callback: camera_zoom
  - key: GLFW_KEY_TAB
    callback: empty
keyboard_and_mouse_settings:
  reset_mouse_position_upon_enter_window: true
`)

	report, err := f.resolver.BindFromConfig(path)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Bound)
	assert.Equal(t, 1, report.Unbound)
	w, ok := input.LookupInput("KEY_W")
	require.True(t, ok)
	b, _ := f.table.Lookup(w)
	assert.Equal(t, input.ModShift, b.Mods)
	assert.True(t, f.settings.ResetPointerOnEnter)
}

func TestResolver_LoadFailureKeepsTable(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
	}{
		{"missing file", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.yaml") }},
		{"malformed yaml", func(t *testing.T) string {
			return writeDoc(t, "bad.yaml", "keyboard_and_mouse_bindings: [\n  - key: KEY_A\n")
		}},
		{"unsupported extension", func(t *testing.T) string { return writeDoc(t, "bindings.ini", "key=KEY_A") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newResolverFixture(t)
			_, err := f.resolver.Apply(&config.Document{
				Bindings: []config.BindingEntry{{Input: "KEY_ESCAPE", Callback: "window_close"}},
				Settings: config.Settings{ResetPointerOnEnter: config.Bool(true)},
			})
			require.NoError(t, err)

			report, err := f.resolver.BindFromConfig(tt.path(t))

			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrLoad)
			assert.False(t, report.Applied)
			assert.Equal(t, 1, report.Bound)
			assert.Equal(t, "window_close", f.callback(t, input.KeyEscape))
			assert.True(t, f.settings.ResetPointerOnEnter)
		})
	}
}

func TestResolver_LoadFailureOnFirstStartLeavesTableEmpty(t *testing.T) {
	f := newResolverFixture(t)

	_, err := f.resolver.BindFromConfig(filepath.Join(t.TempDir(), "missing.yaml"))

	require.ErrorIs(t, err, config.ErrLoad)
	assert.Zero(t, f.table.Len())
}
