// Package pipeline assembles one frame from an explicit draw list and runs
// the passes in a fixed order.
package pipeline

import (
	"image/color"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/mesh"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/skybox"
)

// Orbit is a circle of the given radius in the XZ plane around the origin.
type Orbit struct {
	Radius float64
	Color  color.RGBA
}

// Object is one mesh instance.
type Object struct {
	Name      string
	Mesh      *mesh.Mesh
	Transform raster.Transform
	Material  raster.Material
}

// Ring is a flat annulus around Center.
type Ring struct {
	Center       mathutil.Vec3
	Inner, Outer float64
	Color        color.RGBA
}

// Glow is an additive halo around a world point.
type Glow struct {
	Center mathutil.Vec3
	Scale  float64
}

// Frame is everything one frame needs. Nothing is read from ambient state.
type Frame struct {
	Index      int
	Camera     *camera.Camera
	LightDir   mathutil.Vec3
	Background color.RGBA
	Skybox     *skybox.Skybox // nil: background colour only

	Orbits  []Orbit
	Objects []Object
	Rings   []Ring
	Glows   []Glow
}

// Render draws f into r: clear, skybox, orbits, objects and rings, glows.
// Primitive failures are counted in r.Stats and never abort the frame.
func Render(r *raster.Renderer, f *Frame) {
	r.Clear(f.Background)

	if f.Skybox != nil {
		r.DrawSkybox(f.Camera, f.Skybox)
	}
	for _, o := range f.Orbits {
		r.DrawOrbitRing(o.Radius, f.Camera, o.Color)
	}
	for _, obj := range f.Objects {
		if obj.Mesh == nil {
			continue
		}
		r.DrawMesh(obj.Mesh, obj.Transform, obj.Material, f.Camera, f.LightDir)
	}
	for _, ring := range f.Rings {
		r.DrawRing(ring.Center, ring.Inner, ring.Outer, f.Camera, ring.Color)
	}
	for _, g := range f.Glows {
		r.DrawSunGlow(g.Center, g.Scale, f.Camera)
	}

	r.LogStats(f.Index)
}
