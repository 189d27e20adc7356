package raster

import (
	"math"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/mathutil"
)

// ScreenVertex is a projected vertex: pixel coordinates plus depth in [0,1].
type ScreenVertex struct {
	X, Y  float64
	Depth float64
}

// project maps v through mvp to a w×h screen. It fails when w is near zero
// or the NDC depth falls outside [-1,1]; there is no near-plane clipping.
func project(v mathutil.Vec3, mvp mathutil.Mat4, w, h int) (ScreenVertex, bool) {
	c := mathutil.Clip(mvp, v)
	if math.Abs(c[3]) < 1e-6 {
		return ScreenVertex{}, false
	}
	inv := 1 / c[3]
	nx, ny, nz := c[0]*inv, c[1]*inv, c[2]*inv
	if !(nz >= -1 && nz <= 1) {
		return ScreenVertex{}, false
	}
	return ScreenVertex{
		X:     (nx*0.5 + 0.5) * float64(w),
		Y:     (-ny*0.5 + 0.5) * float64(h),
		Depth: nz*0.5 + 0.5,
	}, true
}

// Project maps an object-space vertex through mvp into this renderer's
// screen space.
func (r *Renderer) Project(v mathutil.Vec3, mvp mathutil.Mat4) (ScreenVertex, bool) {
	return project(v, mvp, r.fb.Width, r.fb.Height)
}

// ProjectPoint projects a world-space point with the camera's view and
// projection (identity model).
func (r *Renderer) ProjectPoint(world mathutil.Vec3, cam *camera.Camera) (ScreenVertex, bool) {
	return r.Project(world, cam.ViewProjection())
}

// WorldToScreen returns the pixel position of a world point, for overlays
// drawn after the frame.
func (r *Renderer) WorldToScreen(world mathutil.Vec3, cam *camera.Camera) (x, y float64, ok bool) {
	sv, ok := r.ProjectPoint(world, cam)
	return sv.X, sv.Y, ok
}
