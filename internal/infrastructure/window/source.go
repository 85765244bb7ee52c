package window

import (
	"context"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/bnema/lunar/internal/input"
	"github.com/bnema/lunar/internal/logging"
)

// Key repeat timing in ticks. ebiten has no native repeat notification.
const (
	RepeatDelay    = 30
	RepeatInterval = 3
)

// Source turns ebiten's polled state into input notifications. Update must be
// called once per tick from the game's Update, which is also where the
// attached sink's handlers run.
type Source struct {
	device Device
	sink   input.Sink

	width, height int
	x, y          int
	inside        bool
	polled        bool

	keys []ebiten.Key
	log  *zerolog.Logger
}

var (
	_ input.Source = (*Source)(nil)
	_ input.Window = (*Source)(nil)
)

// NewSource creates a Source polling device.
func NewSource(ctx context.Context, device Device) *Source {
	return &Source{
		device: device,
		log:    logging.FromContext(ctx),
	}
}

// SetSink implements input.Source.
func (s *Source) SetSink(sink input.Sink) {
	s.sink = sink
	s.log.Debug().Msg("window source attached")
}

// SetBounds records the logical screen size used for enter/leave detection.
// Call it from the game's Layout.
func (s *Source) SetBounds(width, height int) {
	s.width, s.height = width, height
}

// CursorPos implements input.Window with the position seen by the last Update,
// or the device's current position before the first one.
func (s *Source) CursorPos() (float64, float64) {
	if !s.polled {
		x, y := s.device.CursorPosition()
		return float64(x), float64(y)
	}
	return float64(s.x), float64(s.y)
}

// KeyDown implements input.Window.
func (s *Source) KeyDown(key input.Identifier) bool {
	k, ok := keyByIdentifier[key]
	return ok && s.device.IsKeyPressed(k)
}

// ButtonDown implements input.Window.
func (s *Source) ButtonDown(button input.Identifier) bool {
	b, ok := buttonKey(button)
	return ok && s.device.IsMouseButtonPressed(b)
}

// Update polls the device and raises notifications in the order
// enter/leave, move, keys, buttons, scroll.
func (s *Source) Update() {
	s.updatePointer()
	if s.sink == nil {
		return
	}
	s.updateKeys()
	s.updateButtons()

	if dx, dy := s.device.Wheel(); dx != 0 || dy != 0 {
		s.sink.OnScroll(dx, dy)
	}
}

func (s *Source) updatePointer() {
	x, y := s.device.CursorPosition()
	moved := !s.polled || x != s.x || y != s.y
	s.x, s.y = x, y

	inside := s.contains(x, y)
	entered := inside != s.inside || !s.polled
	s.inside = inside
	s.polled = true

	if s.sink == nil {
		return
	}
	if entered {
		s.sink.OnEnter(inside)
	}
	if moved {
		s.sink.OnMove(float64(x), float64(y))
	}
}

func (s *Source) contains(x, y int) bool {
	if s.width <= 0 || s.height <= 0 {
		return true
	}
	return x >= 0 && y >= 0 && x < s.width && y < s.height
}

// updateKeys reports key edges. ebiten exposes no hardware scancode, so the
// ebiten key ordinal is passed in its place.
func (s *Source) updateKeys() {
	mods := s.modifiers()

	s.keys = s.device.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.sink.OnKey(keyCode(k), int(k), input.ActionPress, mods)
	}

	s.keys = s.device.AppendPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if repeats(s.device.KeyPressDuration(k)) {
			s.sink.OnKey(keyCode(k), int(k), input.ActionRepeat, mods)
		}
	}

	s.keys = s.device.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		s.sink.OnKey(keyCode(k), int(k), input.ActionRelease, mods)
	}
}

func (s *Source) updateButtons() {
	mods := s.modifiers()
	for _, b := range buttonMap {
		if s.device.IsMouseButtonJustPressed(b.button) {
			s.sink.OnButton(int(b.id), input.ActionPress, mods)
		}
		if s.device.IsMouseButtonJustReleased(b.button) {
			s.sink.OnButton(int(b.id), input.ActionRelease, mods)
		}
	}
}

// modifiers reports the held modifiers the way the windowing layer would.
func (s *Source) modifiers() input.Modifier {
	var mods input.Modifier
	if s.device.IsKeyPressed(ebiten.KeyShift) {
		mods |= input.ModShift
	}
	if s.device.IsKeyPressed(ebiten.KeyControl) {
		mods |= input.ModControl
	}
	if s.device.IsKeyPressed(ebiten.KeyAlt) {
		mods |= input.ModAlt
	}
	if s.device.IsKeyPressed(ebiten.KeyMeta) {
		mods |= input.ModSuper
	}
	return mods
}

// repeats reports whether a key held for d ticks emits a repeat this tick.
func repeats(d int) bool {
	return d > RepeatDelay && (d-RepeatDelay)%RepeatInterval == 0
}
