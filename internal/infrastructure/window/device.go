// Package window adapts ebiten's per-frame input state to the input
// package's notification and live-state interfaces.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Device is the part of ebiten's input and window API the Source polls.
type Device interface {
	AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key
	AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key
	AppendPressedKeys(keys []ebiten.Key) []ebiten.Key
	KeyPressDuration(key ebiten.Key) int
	IsKeyPressed(key ebiten.Key) bool

	IsMouseButtonPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustPressed(button ebiten.MouseButton) bool
	IsMouseButtonJustReleased(button ebiten.MouseButton) bool
	CursorPosition() (x, y int)
	Wheel() (dx, dy float64)

	IsFullscreen() bool
	SetFullscreen(fullscreen bool)
}

// Ebiten is the Device backed by the running ebiten game.
type Ebiten struct{}

var _ Device = Ebiten{}

func (Ebiten) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (Ebiten) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (Ebiten) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendPressedKeys(keys)
}

func (Ebiten) KeyPressDuration(key ebiten.Key) int { return inpututil.KeyPressDuration(key) }
func (Ebiten) IsKeyPressed(key ebiten.Key) bool    { return ebiten.IsKeyPressed(key) }

func (Ebiten) IsMouseButtonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}

func (Ebiten) IsMouseButtonJustPressed(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(button)
}

func (Ebiten) IsMouseButtonJustReleased(button ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustReleased(button)
}

func (Ebiten) CursorPosition() (int, int)    { return ebiten.CursorPosition() }
func (Ebiten) Wheel() (float64, float64)     { return ebiten.Wheel() }
func (Ebiten) IsFullscreen() bool            { return ebiten.IsFullscreen() }
func (Ebiten) SetFullscreen(fullscreen bool) { ebiten.SetFullscreen(fullscreen) }

// Headless is a Device with no input, for resolving bindings without a window.
type Headless struct {
	fullscreen bool
}

var _ Device = (*Headless)(nil)

func (*Headless) AppendJustPressedKeys(keys []ebiten.Key) []ebiten.Key  { return keys }
func (*Headless) AppendJustReleasedKeys(keys []ebiten.Key) []ebiten.Key { return keys }
func (*Headless) AppendPressedKeys(keys []ebiten.Key) []ebiten.Key      { return keys }
func (*Headless) KeyPressDuration(ebiten.Key) int                       { return 0 }
func (*Headless) IsKeyPressed(ebiten.Key) bool                          { return false }
func (*Headless) IsMouseButtonPressed(ebiten.MouseButton) bool          { return false }
func (*Headless) IsMouseButtonJustPressed(ebiten.MouseButton) bool      { return false }
func (*Headless) IsMouseButtonJustReleased(ebiten.MouseButton) bool     { return false }
func (*Headless) CursorPosition() (int, int)                            { return 0, 0 }
func (*Headless) Wheel() (float64, float64)                             { return 0, 0 }
func (h *Headless) IsFullscreen() bool                                  { return h.fullscreen }
func (h *Headless) SetFullscreen(fullscreen bool)                       { h.fullscreen = fullscreen }
