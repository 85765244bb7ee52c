package input

import (
	"context"

	"github.com/bnema/lunar/internal/logging"
	"github.com/rs/zerolog"
)

// Window is the live input state the dispatcher samples at dispatch time.
type Window interface {
	// CursorPos returns the pointer position in window coordinates.
	CursorPos() (x, y float64)
	KeyDown(key Identifier) bool
	ButtonDown(button Identifier) bool
}

// Sink receives raw notifications from the windowing layer. Codes are the
// windowing layer's raw values; the mods arguments are what the layer
// reports and may be ignored by implementations.
type Sink interface {
	OnKey(code, scancode int, action Action, mods Modifier)
	OnButton(button int, action Action, mods Modifier)
	OnScroll(dx, dy float64)
	OnMove(x, y float64)
	OnEnter(entered bool)
}

// Source is a windowing layer that delivers notifications to a Sink.
type Source interface {
	SetSink(Sink)
}

// Dispatcher resolves raw notifications against a Table and invokes the
// matching handler synchronously. It must only be driven from the thread
// that polls the windowing layer.
type Dispatcher struct {
	table    *Table
	settings *Settings
	window   Window

	// pointer baseline for move deltas
	prevX, prevY float64

	log *zerolog.Logger
}

var _ Sink = (*Dispatcher)(nil)

// NewDispatcher creates a dispatcher over table. settings may be nil.
func NewDispatcher(ctx context.Context, table *Table, settings *Settings, window Window) *Dispatcher {
	if settings == nil {
		settings = &Settings{}
	}
	return &Dispatcher{
		table:    table,
		settings: settings,
		window:   window,
		log:      logging.FromContext(ctx),
	}
}

// Reset re-samples the pointer baseline from the window.
func (d *Dispatcher) Reset() {
	d.prevX, d.prevY = d.window.CursorPos()
}

// Baseline returns the position the next move delta is computed against.
func (d *Dispatcher) Baseline() (x, y float64) {
	return d.prevX, d.prevY
}

// OnKey handles a key notification. Codes outside the key range, including
// the windowing layer's "unknown key" and pointer button codes, are ignored.
func (d *Dispatcher) OnKey(code, scancode int, action Action, _ Modifier) {
	id, ok := hardwareIdentifier(code)
	if !ok || id < KeySpace {
		return
	}
	b, ok := d.table.Lookup(id)
	if !ok {
		return
	}
	d.fire(b, KeyEvent{
		Key:      id,
		Scancode: int32(scancode),
		Action:   action,
		Mods:     liveModifiers(d.window),
	})
}

// OnButton handles a pointer button notification.
func (d *Dispatcher) OnButton(button int, action Action, _ Modifier) {
	id, ok := hardwareIdentifier(button)
	if !ok || id > MouseButtonLast {
		return
	}
	b, ok := d.table.Lookup(id)
	if !ok {
		return
	}
	x, y := d.window.CursorPos()
	d.fire(b, ButtonEvent{
		Button: id,
		Action: action,
		Mods:   liveModifiers(d.window),
		X:      float32(x),
		Y:      float32(y),
	})
}

// OnScroll handles a scroll notification under IdentifierScroll.
func (d *Dispatcher) OnScroll(dx, dy float64) {
	b, ok := d.table.Lookup(IdentifierScroll)
	if !ok {
		return
	}
	d.fire(b, ScrollEvent{DX: float32(dx), DY: float32(dy)})
}

// OnMove handles a pointer move under IdentifierMove. The baseline advances
// on every move, whether or not anything is bound.
func (d *Dispatcher) OnMove(x, y float64) {
	dx, dy := x-d.prevX, y-d.prevY
	d.prevX, d.prevY = x, y

	b, ok := d.table.Lookup(IdentifierMove)
	if !ok {
		return
	}
	d.fire(b, MoveEvent{
		Buttons: liveButtons(d.window),
		X:       float32(x),
		Y:       float32(y),
		DX:      float32(dx),
		DY:      float32(dy),
	})
}

// OnEnter handles the pointer entering or leaving the window.
func (d *Dispatcher) OnEnter(entered bool) {
	if !entered || !d.settings.ResetPointerOnEnter {
		return
	}
	d.Reset()
	d.log.Trace().Float64("x", d.prevX).Float64("y", d.prevY).Msg("pointer baseline reset on enter")
}

// fire invokes b's handler when the live modifiers satisfy its requirement.
// Scroll and move notifications carry no modifier state, so it is sampled here.
func (d *Dispatcher) fire(b Binding, ev Event) {
	live := eventModifiers(ev, d.window)
	if !live.Matches(b.Mods) {
		d.log.Trace().
			Stringer("input", ev.ID()).
			Stringer("required", b.Mods).
			Stringer("live", live).
			Msg("modifier mismatch")
		return
	}
	d.log.Trace().Stringer("input", ev.ID()).Str("callback", b.Callback).Msg("dispatch")
	b.Handler(ev)
}

// eventModifiers returns the live mask already sampled into key and button
// events, or samples it for kinds that do not carry one.
func eventModifiers(ev Event, w Window) Modifier {
	switch e := ev.(type) {
	case KeyEvent:
		return e.Mods
	case ButtonEvent:
		return e.Mods
	default:
		return liveModifiers(w)
	}
}

func liveButtons(w Window) ButtonMask {
	var mask ButtonMask
	if w.ButtonDown(MouseButtonLeft) {
		mask |= ButtonMaskLeft
	}
	if w.ButtonDown(MouseButtonRight) {
		mask |= ButtonMaskRight
	}
	if w.ButtonDown(MouseButtonMiddle) {
		mask |= ButtonMaskMiddle
	}
	return mask
}
