package input

import (
	"context"
	"fmt"

	"github.com/bnema/lunar/internal/logging"
)

// Kind tags the active payload of an Event.
type Kind uint8

const (
	KindKey Kind = iota
	KindButton
	KindMove
	KindScroll
)

func (k Kind) String() string {
	switch k {
	case KindKey:
		return "key"
	case KindButton:
		return "button"
	case KindMove:
		return "move"
	case KindScroll:
		return "scroll"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Action is what happened to a key or button.
type Action uint8

const (
	ActionRelease Action = 0
	ActionPress   Action = 1
	ActionRepeat  Action = 2
)

func (a Action) String() string {
	switch a {
	case ActionRelease:
		return "release"
	case ActionPress:
		return "press"
	case ActionRepeat:
		return "repeat"
	default:
		return fmt.Sprintf("action(%d)", uint8(a))
	}
}

// ButtonMask records which primary pointer buttons are held during a move.
type ButtonMask uint8

const (
	ButtonMaskLeft   ButtonMask = 1 << MouseButtonLeft
	ButtonMaskRight  ButtonMask = 1 << MouseButtonRight
	ButtonMaskMiddle ButtonMask = 1 << MouseButtonMiddle
)

// Event is a single input notification. The concrete types are KeyEvent,
// ButtonEvent, MoveEvent and ScrollEvent; consumers switch on the type.
// Events are values built per notification and must not be retained.
type Event interface {
	Kind() Kind
	// ID is the identifier the event was dispatched under.
	ID() Identifier
	String() string

	isEvent()
}

// KeyEvent is a keyboard key transition.
type KeyEvent struct {
	Key      Identifier
	Action   Action
	Mods     Modifier
	Scancode int32
}

// ButtonEvent is a pointer button transition at the current cursor position.
type ButtonEvent struct {
	Button Identifier
	Action Action
	Mods   Modifier
	X, Y   float32
}

// MoveEvent is a pointer move. DX/DY are relative to the previous baseline.
type MoveEvent struct {
	Buttons ButtonMask
	X, Y    float32
	DX, DY  float32
}

// ScrollEvent is a scroll wheel or touchpad scroll offset.
type ScrollEvent struct {
	DX, DY float32
}

func (KeyEvent) Kind() Kind    { return KindKey }
func (ButtonEvent) Kind() Kind { return KindButton }
func (MoveEvent) Kind() Kind   { return KindMove }
func (ScrollEvent) Kind() Kind { return KindScroll }

func (e KeyEvent) ID() Identifier    { return e.Key }
func (e ButtonEvent) ID() Identifier { return e.Button }
func (MoveEvent) ID() Identifier     { return IdentifierMove }
func (ScrollEvent) ID() Identifier   { return IdentifierScroll }

func (KeyEvent) isEvent()    {}
func (ButtonEvent) isEvent() {}
func (MoveEvent) isEvent()   {}
func (ScrollEvent) isEvent() {}

func (e KeyEvent) String() string {
	return fmt.Sprintf("<keyboard: key:%s(%d), action:%s, scancode:%d, mods:%s>",
		e.Key, uint16(e.Key), e.Action, e.Scancode, e.Mods)
}

func (e ButtonEvent) String() string {
	return fmt.Sprintf("<mouse click: button:%s(%d), action:%s, mods:%s, x:%g, y:%g>",
		e.Button, uint16(e.Button), e.Action, e.Mods, e.X, e.Y)
}

func (e MoveEvent) String() string {
	return fmt.Sprintf("<mouse move: x:%g, y:%g, xoffset:%g, yoffset:%g, buttons:%03b>",
		e.X, e.Y, e.DX, e.DY, uint8(e.Buttons))
}

func (e ScrollEvent) String() string {
	return fmt.Sprintf("<mouse scroll: x:%g, y:%g>", e.DX, e.DY)
}

// Handler is an application callback bound to an input.
type Handler func(Event)

// DebugHandler returns a Handler that logs every event it receives.
func DebugHandler(ctx context.Context) Handler {
	log := logging.FromContext(ctx)
	return func(ev Event) {
		log.Debug().
			Str("kind", ev.Kind().String()).
			Stringer("id", ev.ID()).
			Msg(ev.String())
	}
}
