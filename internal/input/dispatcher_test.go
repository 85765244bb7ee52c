package input_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/lunar/internal/input"
	"github.com/bnema/lunar/internal/input/mocks"
)

// recorder collects the events a handler receives.
type recorder struct {
	events []input.Event
}

func (r *recorder) handle(ev input.Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) last(t *testing.T) input.Event {
	t.Helper()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

func newDispatcher(t *testing.T, window input.Window, settings *input.Settings) (*input.Dispatcher, *input.Table) {
	t.Helper()
	table := input.NewTable()
	return input.NewDispatcher(context.Background(), table, settings, window), table
}

func TestDispatcher_ModifierMatching(t *testing.T) {
	tests := []struct {
		name     string
		held     []input.Identifier
		required input.Modifier
		want     bool
	}{
		{"shift required, shift and control held", []input.Identifier{input.KeyLeftShift, input.KeyRightControl}, input.ModShift, true},
		{"shift required, control held", []input.Identifier{input.KeyLeftControl}, input.ModShift, false},
		{"shift required, right shift held", []input.Identifier{input.KeyRightShift}, input.ModShift, true},
		{"no requirement, nothing held", nil, input.ModNone, true},
		{"no requirement, everything held", []input.Identifier{input.KeyLeftShift, input.KeyLeftControl, input.KeyLeftAlt, input.KeyLeftSuper}, input.ModNone, true},
		{"super and alt required, only super held", []input.Identifier{input.KeyRightSuper}, input.ModSuper | input.ModAlt, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			window := mocks.NewMockWindow(t).Hold(tt.held...)
			d, table := newDispatcher(t, window, nil)
			rec := &recorder{}
			table.Bind(input.KeyEscape, input.Binding{Callback: "close", Handler: rec.handle, Mods: tt.required})

			d.OnKey(int(input.KeyEscape), 9, input.ActionPress, input.ModNone)

			assert.Equal(t, tt.want, len(rec.events) == 1)
		})
	}
}

func TestDispatcher_KeyEventCarriesLiveModifiers(t *testing.T) {
	window := mocks.NewMockWindow(t).Hold(input.KeyLeftShift, input.KeyRightAlt)
	d, table := newDispatcher(t, window, nil)
	rec := &recorder{}
	table.Bind(input.KeyEscape, input.Binding{Handler: rec.handle})

	// the windowing layer's own mods argument is ignored
	d.OnKey(int(input.KeyEscape), 9, input.ActionRepeat, input.ModSuper)

	ev, ok := rec.last(t).(input.KeyEvent)
	require.True(t, ok)
	assert.Equal(t, input.KeyEvent{Key: input.KeyEscape, Scancode: 9, Action: input.ActionRepeat, Mods: input.ModShift | input.ModAlt}, ev)
}

func TestDispatcher_UnboundInputsAreNoOps(t *testing.T) {
	window := mocks.NewMockWindow(t).HoldNothing().At(0, 0)
	d, _ := newDispatcher(t, window, nil)

	assert.NotPanics(t, func() {
		d.OnKey(int(input.KeyEscape), 0, input.ActionPress, 0)
		d.OnButton(int(input.MouseButtonLeft), input.ActionPress, 0)
		d.OnScroll(0, 1)
		d.OnMove(5, 5)
		d.OnEnter(true)
	})
}

func TestDispatcher_OutOfRangeCodesAreIgnored(t *testing.T) {
	window := mocks.NewMockWindow(t)
	d, table := newDispatcher(t, window, nil)
	rec := &recorder{}
	table.Bind(input.IdentifierScroll, input.Binding{Handler: rec.handle})
	table.Bind(input.IdentifierMove, input.Binding{Handler: rec.handle})
	table.Bind(input.MouseButtonLeft, input.Binding{Handler: rec.handle})
	table.Bind(input.KeyEscape, input.Binding{Handler: rec.handle})

	d.OnKey(-1, 0, input.ActionPress, 0)
	d.OnKey(int(input.MouseButtonLeft), 0, input.ActionPress, 0)
	d.OnKey(int(input.KeySpace)-1, 0, input.ActionPress, 0)
	d.OnButton(int(input.KeyEscape), input.ActionPress, 0)
	d.OnKey(int(input.IdentifierScroll), 0, input.ActionPress, 0)
	d.OnButton(int(input.IdentifierMove), input.ActionPress, 0)
	d.OnButton(12, input.ActionPress, 0)

	assert.Empty(t, rec.events)
}

func TestDispatcher_ButtonEventSamplesCursor(t *testing.T) {
	window := mocks.NewMockWindow(t).Hold(input.KeyLeftControl).At(120, 48)
	d, table := newDispatcher(t, window, nil)
	rec := &recorder{}
	table.Bind(input.MouseButtonRight, input.Binding{Handler: rec.handle, Mods: input.ModControl})

	d.OnButton(int(input.MouseButtonRight), input.ActionPress, 0)

	assert.Equal(t, input.ButtonEvent{
		Button: input.MouseButtonRight,
		Action: input.ActionPress,
		Mods:   input.ModControl,
		X:      120,
		Y:      48,
	}, rec.last(t))
}

func TestDispatcher_ScrollUsesSyntheticIdentifierAndLiveModifiers(t *testing.T) {
	window := mocks.NewMockWindow(t).Hold(input.KeyLeftAlt)
	d, table := newDispatcher(t, window, nil)
	rec := &recorder{}
	table.Bind(input.IdentifierScroll, input.Binding{Handler: rec.handle, Mods: input.ModAlt})

	d.OnScroll(0.5, -2)

	assert.Equal(t, input.ScrollEvent{DX: 0.5, DY: -2}, rec.last(t))
}

func TestDispatcher_ScrollBlockedWithoutRequiredModifier(t *testing.T) {
	window := mocks.NewMockWindow(t).HoldNothing()
	d, table := newDispatcher(t, window, nil)
	rec := &recorder{}
	table.Bind(input.IdentifierScroll, input.Binding{Handler: rec.handle, Mods: input.ModControl})

	d.OnScroll(0, 1)

	assert.Empty(t, rec.events)
}

func TestDispatcher_MoveDeltaFollowsBaseline(t *testing.T) {
	window := mocks.NewMockWindow(t).Hold().HoldButtons(input.MouseButtonLeft, input.MouseButtonMiddle).At(100, 100)
	d, table := newDispatcher(t, window, nil)
	rec := &recorder{}
	table.Bind(input.IdentifierMove, input.Binding{Handler: rec.handle})
	d.Reset()

	d.OnMove(110, 95)
	d.OnMove(110, 105)

	require.Len(t, rec.events, 2)
	assert.Equal(t, input.MoveEvent{
		Buttons: input.ButtonMaskLeft | input.ButtonMaskMiddle,
		X:       110, Y: 95, DX: 10, DY: -5,
	}, rec.events[0])
	assert.Equal(t, input.MoveEvent{
		Buttons: input.ButtonMaskLeft | input.ButtonMaskMiddle,
		X:       110, Y: 105, DX: 0, DY: 10,
	}, rec.events[1])
}

func TestDispatcher_UnboundMoveStillAdvancesBaseline(t *testing.T) {
	window := mocks.NewMockWindow(t).HoldNothing()
	d, table := newDispatcher(t, window, nil)

	d.OnMove(30, 40)
	rec := &recorder{}
	table.Bind(input.IdentifierMove, input.Binding{Handler: rec.handle})
	d.OnMove(35, 50)

	ev := rec.last(t).(input.MoveEvent)
	assert.Equal(t, float32(5), ev.DX)
	assert.Equal(t, float32(10), ev.DY)
}

func TestDispatcher_EnterResetsBaselineWhenEnabled(t *testing.T) {
	window := mocks.NewMockWindow(t).HoldNothing().At(0, 0)
	settings := &input.Settings{ResetPointerOnEnter: true}
	d, table := newDispatcher(t, window, settings)
	rec := &recorder{}
	table.Bind(input.IdentifierMove, input.Binding{Handler: rec.handle})

	d.OnMove(10, 10)
	d.OnEnter(false)
	window.At(500, 300)
	d.OnEnter(true)
	d.OnMove(505, 298)

	ev := rec.last(t).(input.MoveEvent)
	assert.Equal(t, float32(5), ev.DX)
	assert.Equal(t, float32(-2), ev.DY)
}

func TestDispatcher_EnterKeepsBaselineWhenDisabled(t *testing.T) {
	window := mocks.NewMockWindow(t).HoldNothing()
	d, table := newDispatcher(t, window, &input.Settings{})
	rec := &recorder{}
	table.Bind(input.IdentifierMove, input.Binding{Handler: rec.handle})

	d.OnMove(10, 10)
	d.OnEnter(true)
	d.OnMove(505, 298)

	ev := rec.last(t).(input.MoveEvent)
	assert.Equal(t, float32(495), ev.DX)
	assert.Equal(t, float32(288), ev.DY)
	window.AssertNotCalled(t, "CursorPos")
}

func TestDispatcher_HandlerPanicsPropagate(t *testing.T) {
	window := mocks.NewMockWindow(t).HoldNothing()
	d, table := newDispatcher(t, window, nil)
	table.Bind(input.IdentifierScroll, input.Binding{Handler: func(input.Event) { panic("boom") }})

	assert.PanicsWithValue(t, "boom", func() { d.OnScroll(0, 1) })
}
