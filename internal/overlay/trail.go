package overlay

import (
	"image"
	"image/color"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

// DrawTrail projects points (oldest first) with the renderer's camera
// mapping, scales them from render to dst resolution and connects them with
// lines. A point that fails to project breaks the polyline.
func DrawTrail(dst *image.RGBA, r *raster.Renderer, cam *camera.Camera, points []mathutil.Vec3, c color.RGBA) {
	if len(points) < 2 || r.Width() == 0 || r.Height() == 0 {
		return
	}
	b := dst.Bounds()
	sx := float64(b.Dx()) / float64(r.Width())
	sy := float64(b.Dy()) / float64(r.Height())

	var lx, ly float64
	have := false
	for _, p := range points {
		x, y, ok := r.WorldToScreen(p, cam)
		if !ok {
			have = false
			continue
		}
		x, y = x*sx, y*sy
		if have {
			Line(dst, lx, ly, x, y, c)
		}
		lx, ly, have = x, y, true
	}
}

// Line draws a blended Bresenham line, clipped to dst.
func Line(dst *image.RGBA, fx0, fy0, fx1, fy1 float64, c color.RGBA) {
	b := dst.Bounds()
	fx0, fy0, fx1, fy1, ok := raster.ClipSegment(fx0, fy0, fx1, fy1, -1, -1, float64(b.Dx()), float64(b.Dy()))
	if !ok {
		return
	}
	x0, y0, x1, y1 := int(fx0), int(fy0), int(fx1), int(fy1)

	dx := x1 - x0
	if dx < 0 {
		dx = -dx
	}
	dy := y1 - y0
	if dy > 0 {
		dy = -dy
	}
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy
	for {
		blend(dst, x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}
