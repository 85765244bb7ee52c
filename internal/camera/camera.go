// Package camera implements a fly-through camera driven by input callbacks.
package camera

import (
	"context"
	"math"

	"github.com/rs/zerolog"

	"github.com/bnema/lunar/internal/logging"
)

// Field of view limits, in degrees.
const (
	FOVDefault = 45.0
	FOVMin     = 1.0
	FOVMax     = 45.0
)

// PitchLimit keeps the camera from flipping over the vertical axis.
const PitchLimit = 89.0

// yawDefault points the camera down -Z.
const yawDefault = -90.0

const nearPlane = 0.1

// Config holds the camera's starting position and step sizes.
type Config struct {
	Position Vec3
	// Speed is the distance travelled per movement event.
	Speed float64
	// Sensitivity converts pointer deltas into degrees.
	Sensitivity float64
}

// DefaultConfig returns the settings used by the demo scene.
func DefaultConfig() Config {
	return Config{
		Position:    Vec3{0, -1, 5},
		Speed:       0.05,
		Sensitivity: 0.1,
	}
}

// Camera tracks position and orientation. It is mutated by input handlers on
// the dispatch thread and read by the renderer on the same thread.
type Camera struct {
	cfg Config

	position   Vec3
	yaw, pitch float64
	fov        float64

	front, up, right Vec3

	log *zerolog.Logger
}

// New creates a camera looking down -Z from cfg.Position.
func New(ctx context.Context, cfg Config) *Camera {
	c := &Camera{
		cfg:      cfg,
		position: cfg.Position,
		yaw:      yawDefault,
		fov:      FOVDefault,
		log:      logging.FromContext(ctx),
	}
	c.updateVectors()
	return c
}

func (c *Camera) Position() Vec3 { return c.position }
func (c *Camera) Front() Vec3    { return c.front }
func (c *Camera) Up() Vec3       { return c.up }
func (c *Camera) Right() Vec3    { return c.right }
func (c *Camera) Yaw() float64   { return c.yaw }
func (c *Camera) Pitch() float64 { return c.pitch }
func (c *Camera) FOV() float64   { return c.fov }
func (c *Camera) Config() Config { return c.cfg }

// Move translates the camera by dir scaled to the configured speed.
func (c *Camera) Move(dir Vec3) {
	c.position = c.position.Add(dir.Scale(c.cfg.Speed))
}

// Turn applies pointer deltas. Moving the pointer up looks up.
func (c *Camera) Turn(dx, dy float64) {
	c.yaw += dx * c.cfg.Sensitivity
	c.pitch = clampPitch(c.pitch - dy*c.cfg.Sensitivity)
	c.updateVectors()
}

// SetFOV sets the field of view, clamping to the valid range.
func (c *Camera) SetFOV(fov float64) {
	c.fov = clampFOV(fov)
}

// ResetFOV restores the default field of view.
func (c *Camera) ResetFOV() {
	c.SetFOV(FOVDefault)
	c.log.Debug().Float64("fov", c.fov).Msg("camera zoom reset")
}

// Reset returns the camera to its starting state.
func (c *Camera) Reset() {
	c.position = c.cfg.Position
	c.yaw, c.pitch = yawDefault, 0
	c.fov = FOVDefault
	c.updateVectors()
}

// Project maps a world point onto a width x height viewport using a
// perspective projection. ok is false for points behind the near plane.
func (c *Camera) Project(p Vec3, width, height float64) (x, y float64, ok bool) {
	d := p.Sub(c.position)
	z := d.Dot(c.front)
	if z < nearPlane {
		return 0, 0, false
	}
	f := 1 / math.Tan(radians(c.fov)/2)
	half := height / 2
	x = width/2 + d.Dot(c.right)*f/z*half
	y = half - d.Dot(c.up)*f/z*half
	return x, y, true
}

func (c *Camera) updateVectors() {
	yaw, pitch := radians(c.yaw), radians(c.pitch)
	c.front = Vec3{
		X: math.Cos(yaw) * math.Cos(pitch),
		Y: math.Sin(pitch),
		Z: math.Sin(yaw) * math.Cos(pitch),
	}.Normalize()
	c.right = c.front.Cross(WorldUp).Normalize()
	c.up = c.right.Cross(c.front).Normalize()
}

func clampPitch(p float64) float64 {
	if p > PitchLimit {
		return PitchLimit
	}
	if p < -PitchLimit {
		return -PitchLimit
	}
	return p
}

func clampFOV(fov float64) float64 {
	if fov < FOVMin {
		return FOVMin
	}
	if fov > FOVMax {
		return FOVMax
	}
	return fov
}
