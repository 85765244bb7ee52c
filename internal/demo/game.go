// Package demo is a small ebiten scene that exercises the input layer:
// a fly-through camera over a wireframe cube, driven by a bindings document.
package demo

import (
	"context"
	"errors"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/bnema/lunar/internal/camera"
	"github.com/bnema/lunar/internal/infrastructure/window"
	"github.com/bnema/lunar/internal/input"
	"github.com/bnema/lunar/internal/logging"
)

const (
	windowWidth  = 1280
	windowHeight = 720
	windowTitle  = "lunar"
)

var (
	background = color.RGBA{0x10, 0x12, 0x1a, 0xff}
	gridColor  = color.RGBA{0x3a, 0x3f, 0x4f, 0xff}
	cubeColor  = color.RGBA{0xe0, 0xb0, 0x50, 0xff}
)

// Options configures the demo.
type Options struct {
	BindingsPath string
	Watch        bool
	Strict       bool
}

// Game implements ebiten.Game.
type Game struct {
	opts Options

	manager  *input.Manager
	source   *window.Source
	controls *window.Controls
	camera   *camera.Camera

	cube, grid    []Edge
	width, height int

	log *zerolog.Logger
}

var _ ebiten.Game = (*Game)(nil)

// New wires the camera and window controls into an input manager. Nothing is
// bound until Start.
func New(ctx context.Context, device window.Device, opts Options) (*Game, error) {
	ctx = logging.WithBindingsPath(logging.WithComponent(ctx, "demo"), opts.BindingsPath)

	var managerOpts []input.Option
	if opts.Strict {
		managerOpts = append(managerOpts, input.WithResolverOptions(input.WithStrictBindings()))
	}

	source := window.NewSource(ctx, device)
	g := &Game{
		opts:     opts,
		manager:  input.NewManager(ctx, source, managerOpts...),
		source:   source,
		controls: window.NewControls(ctx, device),
		camera:   camera.New(ctx, camera.DefaultConfig()),
		cube:     cubeEdges(),
		grid:     gridEdges(),
		width:    windowWidth,
		height:   windowHeight,
		log:      logging.FromContext(ctx),
	}

	if err := g.camera.Register(g.manager); err != nil {
		return nil, err
	}
	if err := g.controls.Register(g.manager); err != nil {
		return nil, err
	}
	return g, nil
}

// Start binds from the configured document and starts watching it if asked.
// A document that fails to load leaves the scene unbound rather than failing
// startup.
func (g *Game) Start() error {
	report, err := g.manager.BindFromConfig(g.opts.BindingsPath)
	if err != nil {
		g.log.Warn().Err(err).Msg("starting without bindings")
	} else {
		g.log.Info().Int("bound", report.Bound).Int("skipped", len(report.Errors)).Msg("bindings loaded")
	}

	if g.opts.Watch {
		if err := g.manager.Watch(g.opts.BindingsPath); err != nil {
			return err
		}
	}
	return nil
}

// Manager exposes the input manager driving the scene.
func (g *Game) Manager() *input.Manager { return g.manager }

// Camera exposes the scene camera.
func (g *Game) Camera() *camera.Camera { return g.camera }

// Update applies pending binding changes, then dispatches this tick's input.
func (g *Game) Update() error {
	g.manager.Poll()
	g.source.Update()
	if g.controls.Closing() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	g.drawEdges(screen, g.grid, gridColor)
	g.drawEdges(screen, g.cube, cubeColor)

	pos := g.camera.Position()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"pos %.2f %.2f %.2f\nyaw %.1f pitch %.1f fov %.1f\nbindings %d",
		pos.X, pos.Y, pos.Z,
		g.camera.Yaw(), g.camera.Pitch(), g.camera.FOV(),
		g.manager.Table().Len(),
	))
}

func (g *Game) drawEdges(screen *ebiten.Image, edges []Edge, clr color.Color) {
	w, h := float64(g.width), float64(g.height)
	for _, e := range edges {
		x0, y0, ok0 := g.camera.Project(e[0], w, h)
		x1, y1, ok1 := g.camera.Project(e[1], w, h)
		if !ok0 || !ok1 {
			continue
		}
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1, clr, true)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	g.source.SetBounds(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// Close releases the input manager.
func (g *Game) Close() error {
	return g.manager.Close()
}

// Run opens the window and blocks until it is closed.
func Run(ctx context.Context, opts Options) error {
	g, err := New(ctx, window.Ebiten{}, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := g.Close(); err != nil {
			g.log.Warn().Err(err).Msg("failed to close input manager")
		}
	}()
	if err := g.Start(); err != nil {
		return err
	}

	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run demo: %w", err)
	}
	return nil
}
