package scene

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/mesh"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/shading"
	"solar-renderer/internal/skybox"
)

// Assets are loaded once and shared read-only between frames.
type Assets struct {
	Sphere *mesh.Mesh
	Ship   *mesh.Mesh
	Skybox *skybox.Skybox // optional
}

// LoadAssets reads models/sphere.obj, models/ship.obj and, unless noSky is
// set, the six faces under skybox/.
func LoadAssets(dir string, noSky bool, logger *slog.Logger) (*Assets, error) {
	sphere, err := mesh.Load(filepath.Join(dir, "models", "sphere.obj"), logger)
	if err != nil {
		return nil, err
	}
	ship, err := mesh.Load(filepath.Join(dir, "models", "ship.obj"), logger)
	if err != nil {
		return nil, err
	}
	a := &Assets{Sphere: sphere, Ship: ship}
	if noSky {
		return a, nil
	}
	if a.Skybox, err = skybox.Load(filepath.Join(dir, "skybox")); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return a, nil
}

// CameraAt returns the offline fly-by camera for time t: it orbits the ship
// from the outside of its path, looking in towards the sun.
func (s *System) CameraAt(t float64, aspect float64) *camera.Camera {
	ship := s.ShipPosition(t)
	cam := &camera.Camera{
		Target:   ship,
		Yaw:      s.Ship.PathSpeed * t,
		Pitch:    s.Ship.CamPitch,
		Distance: s.Ship.CamDistance,
		FovY:     camera.DefaultFovY,
		Aspect:   aspect,
	}
	cam.SyncPositionFromOrbit()
	return cam
}

// Build assembles the draw list for time t seen through cam, with the ship
// at shipPos.
func (s *System) Build(index int, t float64, cam *camera.Camera, shipPos mathutil.Vec3, a *Assets) *pipeline.Frame {
	f := &pipeline.Frame{
		Index:      index,
		Camera:     cam,
		LightDir:   s.LightDir,
		Background: Black,
		Skybox:     a.Skybox,
	}

	for _, b := range s.Bodies {
		if b.OrbitRadius > 0 {
			f.Orbits = append(f.Orbits, pipeline.Orbit{Radius: b.OrbitRadius, Color: s.OrbitColor})
		}
	}

	for _, b := range s.Bodies {
		pos := b.Position(t)
		f.Objects = append(f.Objects, pipeline.Object{
			Name:      b.Name,
			Mesh:      a.Sphere,
			Transform: raster.Transform{Position: pos, Scale: b.Scale},
			Material:  raster.Material{Base: b.Color, Kind: b.Kind},
		})
		if b.Ring != nil {
			f.Rings = append(f.Rings, pipeline.Ring{
				Center: pos,
				Inner:  b.Scale * b.Ring.Inner,
				Outer:  b.Scale * b.Ring.Outer,
				Color:  b.Ring.Color,
			})
		}
	}

	for i, sat := range s.Satellites {
		f.Objects = append(f.Objects, pipeline.Object{
			Name:      sat.Name,
			Mesh:      a.Sphere,
			Transform: raster.Transform{Position: s.SatellitePosition(i, t), Scale: sat.Scale},
			Material:  raster.Material{Base: sat.Color, Kind: sat.Kind},
		})
	}

	f.Objects = append(f.Objects, pipeline.Object{
		Name:      "ship",
		Mesh:      a.Ship,
		Transform: raster.Transform{Position: shipPos, Scale: s.Ship.Scale, Yaw: s.Ship.Yaw},
		Material:  raster.Material{Base: s.Ship.Color, Kind: shading.Default},
	})

	sun := s.Bodies[s.SunIndex]
	f.Glows = append(f.Glows, pipeline.Glow{Center: sun.Position(t), Scale: sun.Scale})

	return f
}
