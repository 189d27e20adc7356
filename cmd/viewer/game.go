package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/config"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/overlay"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"
)

const (
	tickDT        = 1.0 / 60
	shipSpeed     = 12.0
	boostFactor   = 3.0
	orbitSens     = 0.005
	zoomStep      = 1.5
	trailInterval = 1.0 / 30
)

var warpKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5}

type game struct {
	sys    *scene.System
	assets *scene.Assets
	logger *slog.Logger

	renderer *raster.Renderer
	surface  *image.RGBA
	screen   *ebiten.Image

	cam     *camera.Camera
	ship    mathutil.Vec3
	heading float64
	warp    scene.Warp

	t       float64
	frame   int
	paused  bool
	trails  bool
	hud     bool
	lastX   int
	lastY   int
	dragged bool
}

func newGame(sys *scene.System, assets *scene.Assets, cfg config.Config, logger *slog.Logger) *game {
	g := &game{
		sys:      sys,
		assets:   assets,
		logger:   logger,
		renderer: raster.NewRenderer(cfg.RenderWidth, cfg.RenderHeight, logger),
		surface:  image.NewRGBA(image.Rect(0, 0, cfg.OutputWidth, cfg.OutputHeight)),
		ship:     sys.ShipPosition(0),
		trails:   !cfg.NoTrails,
		hud:      !cfg.NoHUD,
	}
	g.cam = sys.CameraAt(0, float64(cfg.RenderWidth)/float64(cfg.RenderHeight))
	g.cam.FovY = cfg.FOV
	return g
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.trails = !g.trails
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.hud = !g.hud
	}
	if !g.paused {
		g.t += tickDT
	}

	for i, k := range warpKeys {
		if !inpututil.IsKeyJustPressed(k) || i >= len(g.sys.Bodies) {
			continue
		}
		if g.warp.WarpTo(g.sys, i, g.t, g.cam) {
			g.logger.Info("warp", "body", g.sys.Bodies[i].Name)
		} else {
			g.logger.Debug("warp request ignored", "body", g.sys.Bodies[i].Name)
		}
	}

	if g.warp.Active() {
		if g.warp.Apply(tickDT, g.cam) {
			g.ship = g.warp.End()
		}
		return nil
	}

	g.orbitInput()
	g.moveShip()
	g.cam.Follow(g.ship, tickDT)
	return nil
}

// orbitInput handles right-drag orbiting and wheel zoom.
func (g *game) orbitInput() {
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		if g.dragged {
			g.cam.Orbit(float64(x-g.lastX)*orbitSens, float64(y-g.lastY)*orbitSens)
		}
		g.dragged = true
	} else {
		g.dragged = false
	}
	g.lastX, g.lastY = x, y

	if _, wy := ebiten.Wheel(); wy != 0 {
		g.cam.Zoom(-wy * zoomStep)
	}
}

// moveShip applies WASD / Space / Ctrl relative to the camera heading and
// keeps the ship outside every body.
func (g *game) moveShip() {
	fwd := g.cam.Forward()
	fwd[1] = 0
	if fwd.Len() < 1e-9 {
		return
	}
	fwd = fwd.Normalize()
	right := fwd.Cross(mathutil.WorldUp).Normalize()

	var dir mathutil.Vec3
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		dir = dir.Add(fwd)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		dir = dir.Sub(fwd)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		dir = dir.Add(right)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		dir = dir.Sub(right)
	}
	if ebiten.IsKeyPressed(ebiten.KeySpace) {
		dir = dir.Add(mathutil.WorldUp)
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		dir = dir.Sub(mathutil.WorldUp)
	}
	if dir.Len() < 1e-9 {
		return
	}

	speed := shipSpeed
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		speed *= boostFactor
	}
	dir = dir.Normalize()
	g.ship = g.ship.Add(dir.Scale(speed * tickDT))
	g.ship, _ = g.sys.KeepOutside(g.ship, g.t)

	if dir[0] != 0 || dir[2] != 0 {
		g.heading = math.Atan2(-dir[0], -dir[2])
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.screen == nil {
		g.screen = ebiten.NewImage(g.surface.Bounds().Dx(), g.surface.Bounds().Dy())
	}

	g.sys.Ship.Yaw = g.heading + math.Pi
	frame := g.sys.Build(g.frame, g.t, g.cam, g.ship, g.assets)
	pipeline.Render(g.renderer, frame)
	g.renderer.BlitTo(g.surface)

	if g.trails {
		for i, b := range g.sys.Bodies {
			if b.OrbitRadius <= 0 {
				continue
			}
			c := color.RGBA{b.Color.R, b.Color.G, b.Color.B, g.sys.TrailAlpha}
			overlay.DrawTrail(g.surface, g.renderer, g.cam, g.sys.Trail(i, g.t, g.sys.TrailLen, trailInterval), c)
		}
	}
	if g.hud {
		g.drawHUD()
	}

	g.screen.WritePixels(g.surface.Pix)
	screen.DrawImage(g.screen, nil)
	g.frame++
}

func (g *game) drawHUD() {
	st := g.renderer.Stats()
	lines := []string{
		fmt.Sprintf("t=%.1fs  fps=%.0f  tris=%d", g.t, ebiten.ActualFPS(), st.Triangles),
		fmt.Sprintf("ship %.1f %.1f %.1f", g.ship[0], g.ship[1], g.ship[2]),
		"WASD/Space/Ctrl move  RMB orbit  wheel zoom",
		"1-5 warp  T trails  H hud  P pause  Esc quit",
	}
	if g.paused {
		lines = append(lines, "PAUSED")
	}
	for i, s := range lines {
		overlay.TextShadow(g.surface, 8, 6+i*overlay.LineHeight, s, scene.White)
	}
	if g.warp.Active() {
		s := "WARP"
		x := g.surface.Bounds().Dx() - overlay.TextWidth(s) - 8
		overlay.TextShadow(g.surface, x, 6, s, scene.Yellow)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.surface.Bounds().Dx(), g.surface.Bounds().Dy()
}
