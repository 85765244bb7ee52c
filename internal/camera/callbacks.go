package camera

import (
	"fmt"

	"github.com/bnema/lunar/internal/input"
)

// Callback names the camera registers.
const (
	CallbackMoveForward  = "camera_move_forward"
	CallbackMoveBackward = "camera_move_backward"
	CallbackMoveLeft     = "camera_move_left"
	CallbackMoveRight    = "camera_move_right"
	CallbackMoveUp       = "camera_move_up"
	CallbackMoveDown     = "camera_move_down"
	CallbackRotate       = "camera_rotate"
	CallbackZoom         = "camera_zoom"
	CallbackResetZoom    = "camera_reset_zoom"
)

// Registrar accepts named handlers. *input.Manager satisfies it.
type Registrar interface {
	RegisterCallback(name string, handler input.Handler) error
}

// Register makes every camera action available to bindings.
func (c *Camera) Register(r Registrar) error {
	callbacks := []struct {
		name    string
		handler input.Handler
	}{
		{CallbackMoveForward, c.MoveForward},
		{CallbackMoveBackward, c.MoveBackward},
		{CallbackMoveLeft, c.MoveLeft},
		{CallbackMoveRight, c.MoveRight},
		{CallbackMoveUp, c.MoveUp},
		{CallbackMoveDown, c.MoveDown},
		{CallbackRotate, c.Rotate},
		{CallbackZoom, c.Zoom},
		{CallbackResetZoom, c.ResetZoom},
	}
	for _, cb := range callbacks {
		if err := r.RegisterCallback(cb.name, cb.handler); err != nil {
			return fmt.Errorf("register camera callbacks: %w", err)
		}
	}
	return nil
}

func (c *Camera) MoveForward(ev input.Event) {
	if active(ev) {
		c.Move(c.front)
	}
}

func (c *Camera) MoveBackward(ev input.Event) {
	if active(ev) {
		c.Move(c.front.Scale(-1))
	}
}

func (c *Camera) MoveLeft(ev input.Event) {
	if active(ev) {
		c.Move(c.right.Scale(-1))
	}
}

func (c *Camera) MoveRight(ev input.Event) {
	if active(ev) {
		c.Move(c.right)
	}
}

func (c *Camera) MoveUp(ev input.Event) {
	if active(ev) {
		c.Move(WorldUp)
	}
}

func (c *Camera) MoveDown(ev input.Event) {
	if active(ev) {
		c.Move(WorldUp.Scale(-1))
	}
}

// Rotate turns the camera by a pointer move's deltas. Other events are ignored.
func (c *Camera) Rotate(ev input.Event) {
	if mv, ok := ev.(input.MoveEvent); ok {
		c.Turn(float64(mv.DX), float64(mv.DY))
	}
}

// Zoom narrows the field of view when scrolling up.
func (c *Camera) Zoom(ev input.Event) {
	if sc, ok := ev.(input.ScrollEvent); ok {
		c.SetFOV(c.fov - float64(sc.DY))
	}
}

func (c *Camera) ResetZoom(ev input.Event) {
	if active(ev) {
		c.ResetFOV()
	}
}

// active reports whether ev should trigger a discrete action: releases of
// keys and buttons do not.
func active(ev input.Event) bool {
	switch e := ev.(type) {
	case input.KeyEvent:
		return e.Action != input.ActionRelease
	case input.ButtonEvent:
		return e.Action != input.ActionRelease
	default:
		return true
	}
}
