package raster

import (
	"image/color"
	"math"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/mathutil"
)

var glowColor = color.RGBA{255, 200, 120, 120}

const minGlowRadius = 8.0

// DrawSunGlow adds a radial halo around the projected center. The radius
// comes from projecting center+(scale,0,0); if that probe fails it falls
// back to min(scale·10, W/2). Nothing is drawn when center fails to project.
func (r *Renderer) DrawSunGlow(center mathutil.Vec3, scale float64, cam *camera.Camera) {
	vp := cam.ViewProjection()
	sc, ok := r.Project(center, vp)
	if !ok {
		return
	}

	var radius float64
	if probe, ok := r.Project(center.Add(mathutil.Vec3{scale, 0, 0}), vp); ok {
		radius = math.Max(minGlowRadius, math.Hypot(probe.X-sc.X, probe.Y-sc.Y))
	} else {
		radius = math.Min(scale*10, float64(r.fb.Width)*0.5)
	}

	r.fb.drawGlow(int(math.Round(sc.X)), int(math.Round(sc.Y)), radius, glowColor)
}

// drawGlow blends c·(1−d/radius)^1.5 into every pixel within radius of
// (cx, cy). Only the part of the disc inside the frame is visited.
func (fb *FrameBuffer) drawGlow(cx, cy int, radius float64, c color.RGBA) {
	if !(radius > 0) || math.IsInf(radius, 0) {
		return
	}
	ir := int(math.Ceil(radius))
	y0, y1 := max(cy-ir, 0), min(cy+ir, fb.Height-1)
	x0, x1 := max(cx-ir, 0), min(cx+ir, fb.Width-1)

	for y := y0; y <= y1; y++ {
		oy := float64(y - cy)
		for x := x0; x <= x1; x++ {
			ox := float64(x - cx)
			d := math.Sqrt(ox*ox + oy*oy)
			if d > radius {
				continue
			}
			fall := math.Pow(1-d/radius, 1.5)
			fb.BlendAdditive(x, y, color.RGBA{
				uint8(float64(c.R) * fall),
				uint8(float64(c.G) * fall),
				uint8(float64(c.B) * fall),
				uint8(float64(c.A) * fall),
			})
		}
	}
}
