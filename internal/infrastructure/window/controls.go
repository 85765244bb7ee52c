package window

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/lunar/internal/input"
	"github.com/bnema/lunar/internal/logging"
)

// Callback names the window controls register.
const (
	CallbackClose      = "window_close"
	CallbackFullscreen = "window_fullscreen"
	CallbackWindowed   = "window_windowed"
	CallbackDebug      = "debug"
)

// Registrar accepts named handlers. *input.Manager satisfies it.
type Registrar interface {
	RegisterCallback(name string, handler input.Handler) error
}

// Controls exposes window-level actions as input handlers.
type Controls struct {
	device  Device
	closing bool
	ctx     context.Context
	log     *zerolog.Logger
}

// NewControls creates window controls acting on device.
func NewControls(ctx context.Context, device Device) *Controls {
	return &Controls{
		device: device,
		ctx:    ctx,
		log:    logging.FromContext(ctx),
	}
}

// Register makes the window actions and the debug printer available to bindings.
func (c *Controls) Register(r Registrar) error {
	callbacks := map[string]input.Handler{
		CallbackClose:      c.Close,
		CallbackFullscreen: c.Fullscreen,
		CallbackWindowed:   c.Windowed,
		CallbackDebug:      input.DebugHandler(c.ctx),
	}
	for name, h := range callbacks {
		if err := r.RegisterCallback(name, h); err != nil {
			return fmt.Errorf("register window callbacks: %w", err)
		}
	}
	return nil
}

// Closing reports whether a close was requested.
func (c *Controls) Closing() bool { return c.closing }

func (c *Controls) Close(ev input.Event) {
	if !pressed(ev) {
		return
	}
	c.log.Info().Msg("window close requested")
	c.closing = true
}

func (c *Controls) Fullscreen(ev input.Event) {
	if pressed(ev) && !c.device.IsFullscreen() {
		c.device.SetFullscreen(true)
	}
}

func (c *Controls) Windowed(ev input.Event) {
	if pressed(ev) && c.device.IsFullscreen() {
		c.device.SetFullscreen(false)
	}
}

// pressed reports whether ev is the initial press of a key or button.
// Other event kinds always count.
func pressed(ev input.Event) bool {
	switch e := ev.(type) {
	case input.KeyEvent:
		return e.Action == input.ActionPress
	case input.ButtonEvent:
		return e.Action == input.ActionPress
	default:
		return true
	}
}
