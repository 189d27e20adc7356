package raster

import (
	"image/color"
	"math"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/mathutil"
)

const (
	orbitSegments  = 256
	orbitThickness = 0.03
	orbitAlpha     = 200

	ringSegments = 128
	ringMargin   = 1000.0 // px beyond the frame a ring corner may project to
	maxLineSteps = 500
)

// drawLine2D draws a Bresenham line at FarDepth: visible over the cleared
// background, hidden behind anything depth-tested.
func (fb *FrameBuffer) drawLine2D(x0, y0, x1, y1 int, c color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 >= x1 {
		sx = -1
	}
	if y0 >= y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.WriteIfNotFarther(x0, y0, FarDepth, c)
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

// drawSegment clips a→b to the frame (one pixel of slack) and draws the
// remainder with drawLine2D. Fully hidden segments draw nothing.
func (fb *FrameBuffer) drawSegment(a, b ScreenVertex, c color.RGBA) {
	if !mathutil.IsFinite(a.X + a.Y + b.X + b.Y) {
		return
	}
	x0, y0, x1, y1, ok := ClipSegment(a.X, a.Y, b.X, b.Y,
		-1, -1, float64(fb.Width), float64(fb.Height))
	if !ok {
		return
	}
	fb.drawLine2D(int(x0), int(y0), int(x1), int(y1), c)
}

// ClipSegment is Liang–Barsky clipping against [xmin,xmax]×[ymin,ymax].
func ClipSegment(x0, y0, x1, y1, xmin, ymin, xmax, ymax float64) (float64, float64, float64, float64, bool) {
	dx, dy := x1-x0, y1-y0
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x0 - xmin, xmax - x0, y0 - ymin, ymax - y0}
	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q[i] / p[i]
		if p[i] < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	return x0 + t0*dx, y0 + t0*dy, x0 + t1*dx, y0 + t1*dy, true
}

// drawLineDepth steps from a to b interpolating depth, writing only where
// nearer than what is stored. The step count is capped.
func (fb *FrameBuffer) drawLineDepth(a, b ScreenVertex, c color.RGBA) {
	dx := math.Abs(b.X - a.X)
	dy := math.Abs(b.Y - a.Y)
	steps := int(math.Min(math.Max(math.Max(dx, dy), 1), maxLineSteps))

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := int(math.Round(a.X + (b.X-a.X)*t))
		y := int(math.Round(a.Y + (b.Y-a.Y)*t))
		z := a.Depth + (b.Depth-a.Depth)*t
		fb.WriteIfNearer(x, y, z, c)
	}
}

// DrawOrbitRing draws a circular orbit of the given radius in the XZ plane
// around the origin, three concentric passes thick. Vertices that fail to
// project break the polyline.
func (r *Renderer) DrawOrbitRing(radius float64, cam *camera.Camera, c color.RGBA) {
	if radius <= 0 {
		return
	}
	vp := cam.ViewProjection()
	rgba := color.RGBA{c.R, c.G, c.B, orbitAlpha}

	for _, off := range [...]float64{-orbitThickness, 0, orbitThickness} {
		rr := radius + off
		var prev ScreenVertex
		havePrev := false
		for i := 0; i <= orbitSegments; i++ {
			angle := float64(i) / orbitSegments * 2 * math.Pi
			world := mathutil.Vec3{rr * math.Cos(angle), 0, rr * math.Sin(angle)}

			p, ok := r.Project(world, vp)
			if !ok {
				havePrev = false
				r.stats.OrbitBreaks++
				continue
			}
			if havePrev {
				r.fb.drawSegment(prev, p, rgba)
			}
			prev, havePrev = p, true
		}
	}
}

// DrawRing draws a flat annulus between inner and outer radius in the XZ
// plane at center.Y as depth-tested line quads. A quad is skipped whole if
// any corner fails to project or lands absurdly far off screen.
func (r *Renderer) DrawRing(center mathutil.Vec3, inner, outer float64, cam *camera.Camera, c color.RGBA) {
	vp := cam.ViewProjection()
	w, h := float64(r.fb.Width), float64(r.fb.Height)

	valid := func(s ScreenVertex) bool {
		return mathutil.IsFinite(s.X) && mathutil.IsFinite(s.Y) && mathutil.IsFinite(s.Depth) &&
			s.X >= -ringMargin && s.X <= w+ringMargin &&
			s.Y >= -ringMargin && s.Y <= h+ringMargin
	}
	at := func(radius, angle float64) mathutil.Vec3 {
		return mathutil.Vec3{
			center[0] + radius*math.Cos(angle),
			center[1],
			center[2] + radius*math.Sin(angle),
		}
	}

	for i := 0; i < ringSegments; i++ {
		a0 := float64(i) / ringSegments * 2 * math.Pi
		a1 := float64(i+1) / ringSegments * 2 * math.Pi

		s0i, ok0 := r.Project(at(inner, a0), vp)
		s0o, ok1 := r.Project(at(outer, a0), vp)
		s1i, ok2 := r.Project(at(inner, a1), vp)
		s1o, ok3 := r.Project(at(outer, a1), vp)
		if !(ok0 && ok1 && ok2 && ok3) ||
			!valid(s0i) || !valid(s0o) || !valid(s1i) || !valid(s1o) {
			r.stats.RingQuadsSkipped++
			continue
		}

		r.fb.drawLineDepth(s0i, s0o, c)
		r.fb.drawLineDepth(s1i, s1o, c)
		r.fb.drawLineDepth(s0o, s1o, c)
		r.fb.drawLineDepth(s0i, s1i, c)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
