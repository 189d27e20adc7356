// Package camera holds the orbit/look-at camera used by every draw call.
package camera

import (
	"math"

	"solar-renderer/internal/mathutil"
)

// Projection constants. The far plane covers a scene of roughly 100 units
// with a wide margin.
const (
	Near = 0.1
	Far  = 2000.0

	DefaultFovY   = 60.0
	DefaultAspect = 16.0 / 9.0

	minDistance  = 0.001
	pitchLimit   = 1.45 // ~83°
	zoomDistance = 1.5
)

// Camera is either positioned directly (Position/Target) or in orbit form
// (Yaw/Pitch/Distance around Target). Only one form is authoritative per
// update; FromLookAt and SyncPositionFromOrbit derive the other.
type Camera struct {
	Position mathutil.Vec3
	Target   mathutil.Vec3

	Yaw      float64 // radians, atan2(offset.z, offset.x)
	Pitch    float64 // radians
	Distance float64

	FovY   float64 // vertical field of view, degrees
	Aspect float64 // width / height
}

// New returns a camera at position looking at target with the orbit form
// derived from the two points.
func New(position, target mathutil.Vec3) *Camera {
	c := &Camera{
		FovY:   DefaultFovY,
		Aspect: DefaultAspect,
	}
	c.FromLookAt(position, target)
	return c
}

// FromLookAt sets Position/Target and decomposes the offset into orbit form.
func (c *Camera) FromLookAt(position, target mathutil.Vec3) {
	c.Position = position
	c.Target = target
	offset := position.Sub(target)
	c.Distance = math.Max(offset.Len(), minDistance)
	c.Pitch = math.Asin(clampUnit(offset[1] / c.Distance))
	c.Yaw = math.Atan2(offset[2], offset[0])
}

// SyncPositionFromOrbit recomputes Position from Yaw/Pitch/Distance around Target.
func (c *Camera) SyncPositionFromOrbit() {
	c.Position = c.Target.Add(c.orbitOffset())
}

func (c *Camera) orbitOffset() mathutil.Vec3 {
	cp := math.Cos(c.Pitch)
	return mathutil.Vec3{
		c.Distance * cp * math.Cos(c.Yaw),
		c.Distance * math.Sin(c.Pitch),
		c.Distance * cp * math.Sin(c.Yaw),
	}
}

// Forward is the unit view direction.
func (c *Camera) Forward() mathutil.Vec3 {
	return c.Target.Sub(c.Position).Normalize()
}

// Right is forward × WorldUp. Degenerates (zero vector) when forward is
// parallel to WorldUp.
func (c *Camera) Right() mathutil.Vec3 {
	return c.Forward().Cross(mathutil.WorldUp).Normalize()
}

// Up completes the right-handed orthonormal frame.
func (c *Camera) Up() mathutil.Vec3 {
	return c.Right().Cross(c.Forward()).Normalize()
}

// ViewMatrix is the right-handed world→eye transform.
func (c *Camera) ViewMatrix() mathutil.Mat4 {
	return mathutil.LookAt(c.Position, c.Target, mathutil.WorldUp)
}

// ProjectionMatrix is the right-handed perspective transform.
func (c *Camera) ProjectionMatrix() mathutil.Mat4 {
	return mathutil.Perspective(mathutil.Deg2Rad(c.FovY), c.Aspect, Near, Far)
}

// ViewProjection returns projection · view.
func (c *Camera) ViewProjection() mathutil.Mat4 {
	return c.ProjectionMatrix().Mul4(c.ViewMatrix())
}

// TanHalfFov returns tan(FovY/2), used to build per-pixel rays.
func (c *Camera) TanHalfFov() float64 {
	return math.Tan(mathutil.Deg2Rad(c.FovY) * 0.5)
}

// Orbit rotates the orbit angles; pitch is clamped to avoid flipping over
// the pole. Position is not updated.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.Yaw += dYaw
	c.Pitch = math.Max(-pitchLimit, math.Min(pitchLimit, c.Pitch+dPitch))
}

// Zoom changes the orbit distance, never closer than 1.5 units.
func (c *Camera) Zoom(delta float64) {
	c.Distance = math.Max(c.Distance+delta, zoomDistance)
}

// Follow retargets the camera and eases Position towards the orbit position
// around the new target. dt is in seconds; the smoothing is frame-rate
// independent at 60 Hz.
func (c *Camera) Follow(target mathutil.Vec3, dt float64) {
	c.Target = target
	desired := target.Add(c.orbitOffset())
	smooth := 1 - math.Pow(0.85, dt*60)
	c.Position = c.Position.Lerp(desired, smooth)
}

func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
