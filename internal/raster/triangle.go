package raster

import (
	"image/color"
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/shading"
)

// minArea is the smallest |signed area| (in pixels²) a triangle may have
// before it is skipped as degenerate.
const minArea = 1e-6

// edgeFunction is the signed area of the parallelogram (a→b, a→c).
func edgeFunction(ax, ay, bx, by, cx, cy float64) float64 {
	return (cx-ax)*(by-ay) - (cy-ay)*(bx-ax)
}

// RasterizeTriangle fills one projected triangle with per-pixel procedural
// shading and a depth test. w0..w2 are the world positions of the three
// vertices; they are interpolated with the same screen-space barycentrics as
// depth and passed to the shader together with the per-face lambert term.
// Either winding is accepted. It reports false for a degenerate triangle.
//
// The pixel loop does not allocate.
func RasterizeTriangle(
	fb *FrameBuffer,
	s0, s1, s2 ScreenVertex,
	w0, w1, w2 mathutil.Vec3,
	lambert float64,
	kind shading.Kind,
	base color.RGBA,
) bool {
	area := edgeFunction(s0.X, s0.Y, s1.X, s1.Y, s2.X, s2.Y)
	if math.Abs(area) < minArea {
		return false
	}
	invArea := 1.0 / area

	// Bounding box, clamped to the frame
	minX := int(math.Max(math.Floor(math.Min(math.Min(s0.X, s1.X), s2.X)), 0))
	maxX := int(math.Min(math.Ceil(math.Max(math.Max(s0.X, s1.X), s2.X)), float64(fb.Width-1)))
	minY := int(math.Max(math.Floor(math.Min(math.Min(s0.Y, s1.Y), s2.Y)), 0))
	maxY := int(math.Min(math.Ceil(math.Max(math.Max(s0.Y, s1.Y), s2.Y)), float64(fb.Height-1)))
	if minX > maxX || minY > maxY {
		return true
	}

	for sy := minY; sy <= maxY; sy++ {
		py := float64(sy) + 0.5
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			px := float64(sx) + 0.5

			ea := edgeFunction(s1.X, s1.Y, s2.X, s2.Y, px, py)
			eb := edgeFunction(s2.X, s2.Y, s0.X, s0.Y, px, py)
			ec := edgeFunction(s0.X, s0.Y, s1.X, s1.Y, px, py)

			inside := (ea >= 0 && eb >= 0 && ec >= 0) || (ea <= 0 && eb <= 0 && ec <= 0)
			if !inside {
				continue
			}

			b0, b1, b2 := ea*invArea, eb*invArea, ec*invArea

			z := b0*s0.Depth + b1*s1.Depth + b2*s2.Depth
			zIdx := rowOff + sx
			if !(z < fb.ZBuf[zIdx]) {
				continue
			}

			world := mathutil.Vec3{
				b0*w0[0] + b1*w1[0] + b2*w2[0],
				b0*w0[1] + b1*w1[1] + b2*w2[1],
				b0*w0[2] + b1*w1[2] + b2*w2[2],
			}

			fb.ZBuf[zIdx] = z
			fb.set(zIdx, shading.Shade(kind, base, world, lambert))
		}
	}
	return true
}
