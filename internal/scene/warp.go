package scene

import (
	"math"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/mathutil"
)

// Warp eases the camera from one position and target to another.
type Warp struct {
	active   bool
	elapsed  float64
	duration float64

	from, to             mathutil.Vec3
	fromTarget, toTarget mathutil.Vec3
}

// Start begins a warp. Duration scales with distance, clamped to [0.5, 3] s.
func (w *Warp) Start(from, to, fromTarget, toTarget mathutil.Vec3) {
	*w = Warp{
		active:     true,
		from:       from,
		to:         to,
		fromTarget: fromTarget,
		toTarget:   toTarget,
		duration:   math.Max(0.5, math.Min(3, to.Sub(from).Len()/25)),
	}
}

// WarpTo starts a warp that stops short of body i, looking at its center.
// A request made while a warp is in progress is ignored and reports false.
func (w *Warp) WarpTo(s *System, i int, t float64, cam *camera.Camera) bool {
	if w.active {
		return false
	}
	center := s.Bodies[i].Position(t)
	dir := center.Sub(cam.Position)
	if dir.Dot(dir) < 1e-6 {
		dir = mathutil.Vec3{0, 0, -1}
	} else {
		dir = dir.Normalize()
	}
	safe := center.Sub(dir.Scale(SafeDistance(s.Bodies[i]) + 2))
	w.Start(cam.Position, safe, cam.Target, center)
	return true
}

// Active reports whether a warp is in progress.
func (w *Warp) Active() bool { return w.active }

// End is the final camera position of the last warp.
func (w *Warp) End() mathutil.Vec3 { return w.to }

// Apply advances the warp by dt and writes the eased position and target
// into cam. It reports true on the step that finishes the warp.
func (w *Warp) Apply(dt float64, cam *camera.Camera) (finished bool) {
	if !w.active {
		return false
	}
	w.elapsed += dt
	t := math.Min(w.elapsed/w.duration, 1)
	s := t * t * (3 - 2*t)

	cam.Position = w.from.Lerp(w.to, s)
	cam.Target = w.fromTarget.Lerp(w.toTarget, s)

	if t >= 1 {
		cam.Position, cam.Target = w.to, w.toTarget
		w.active = false
		return true
	}
	return false
}
