package scene

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/mesh"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/skybox"
)

func TestBodyPositionsOnOrbit(t *testing.T) {
	s := SolarSystem()
	for _, b := range s.Bodies {
		for _, tm := range []float64{0, 1.3, 10} {
			p := b.Position(tm)
			if p[1] != 0 {
				t.Errorf("%s left the XZ plane: %v", b.Name, p)
			}
			if r := math.Hypot(p[0], p[2]); math.Abs(r-b.OrbitRadius) > 1e-9 {
				t.Errorf("%s radius %v at t=%v, want %v", b.Name, r, tm, b.OrbitRadius)
			}
		}
	}
	if p := s.Bodies[s.SunIndex].Position(5); p != (mathutil.Vec3{}) {
		t.Errorf("sun moved: %v", p)
	}
}

func TestSatelliteFollowsParent(t *testing.T) {
	s := SolarSystem()
	for _, tm := range []float64{0, 2, 7.5} {
		d := s.SatellitePosition(0, tm).Sub(s.Bodies[1].Position(tm)).Len()
		if math.Abs(d-3) > 1e-9 {
			t.Errorf("moon distance from earth at t=%v = %v, want 3", tm, d)
		}
	}
}

func TestTrail(t *testing.T) {
	s := SolarSystem()
	tr := s.Trail(1, 10, 128, 1.0/30)
	if len(tr) != 128 {
		t.Fatalf("len = %d, want 128", len(tr))
	}
	if tr[len(tr)-1] != s.Bodies[1].Position(10) {
		t.Error("last trail point is not the current position")
	}

	early := s.Trail(1, 0.25, 128, 0.1)
	if len(early) != 3 {
		t.Errorf("trail at t=0.25 has %d points, want 3", len(early))
	}
	if s.Trail(1, 5, 0, 0.1) != nil {
		t.Error("zero-length trail not nil")
	}
}

func TestKeepOutside(t *testing.T) {
	s := SolarSystem()
	p, moved := s.KeepOutside(mathutil.Vec3{0, 0, -1}, 0)
	if !moved {
		t.Fatal("point inside the sun not moved")
	}
	if d := p.Len(); math.Abs(d-SafeDistance(s.Bodies[0])) > 1e-9 {
		t.Errorf("pushed to %v, want safe distance %v", d, SafeDistance(s.Bodies[0]))
	}
	if _, moved := s.KeepOutside(mathutil.Vec3{0, 30, 0}, 0); moved {
		t.Error("point far above the plane moved")
	}
}

func TestBuildDrawList(t *testing.T) {
	s := SolarSystem()
	a := &Assets{Sphere: mesh.UVSphere(6, 8), Ship: mesh.UVSphere(3, 4)}
	cam := s.CameraAt(2, 16.0/9)
	f := s.Build(7, 2, cam, s.ShipPosition(2), a)

	if f.Index != 7 || f.Camera != cam {
		t.Error("frame index or camera not carried")
	}
	if len(f.Orbits) != len(s.Bodies)-1 {
		t.Errorf("orbits = %d, want %d (sun excluded)", len(f.Orbits), len(s.Bodies)-1)
	}
	if want := len(s.Bodies) + len(s.Satellites) + 1; len(f.Objects) != want {
		t.Errorf("objects = %d, want %d", len(f.Objects), want)
	}
	if len(f.Rings) != 2 {
		t.Errorf("rings = %d, want 2", len(f.Rings))
	}
	gas := s.Bodies[4]
	if r := f.Rings[0]; r.Inner != gas.Scale*1.6 || r.Outer != gas.Scale*3.0 || r.Center != gas.Position(2) {
		t.Errorf("gas ring = %+v", r)
	}
	ship := f.Objects[len(f.Objects)-1]
	if ship.Transform.Yaw != math.Pi || ship.Mesh != a.Ship {
		t.Errorf("ship object = %+v", ship.Transform)
	}
	if len(f.Glows) != 1 || f.Glows[0].Scale != 4 {
		t.Errorf("glows = %+v", f.Glows)
	}

	r := raster.NewRenderer(160, 90, nil)
	pipeline.Render(r, f)
	if r.Stats().Triangles == 0 {
		t.Error("fly-by frame rasterized nothing")
	}
}

func TestCameraAtLooksAtShip(t *testing.T) {
	s := SolarSystem()
	for _, tm := range []float64{0, 4, 30} {
		cam := s.CameraAt(tm, 1)
		if d := cam.Position.Sub(s.ShipPosition(tm)).Len(); math.Abs(d-s.Ship.CamDistance) > 1e-9 {
			t.Errorf("t=%v camera distance %v, want %v", tm, d, s.Ship.CamDistance)
		}
		if cam.Position.Len() <= s.ShipPosition(tm).Len() {
			t.Errorf("t=%v camera not outside the ship's path", tm)
		}
	}
}

func TestWarp(t *testing.T) {
	s := SolarSystem()
	cam := camera.New(mathutil.Vec3{0, 8, 35}, mathutil.Vec3{0, 0, 30})
	var w Warp
	if !w.WarpTo(s, 2, 0, cam) || !w.Active() {
		t.Fatal("warp not active after start")
	}

	finished := false
	for i := 0; i < 400 && !finished; i++ {
		finished = w.Apply(1.0/60, cam)
	}
	if !finished || w.Active() {
		t.Fatal("warp never finished")
	}
	if cam.Position != w.End() || cam.Target != s.Bodies[2].Position(0) {
		t.Errorf("camera at %v looking at %v after warp", cam.Position, cam.Target)
	}
	if d := cam.Position.Sub(cam.Target).Len(); d < SafeDistance(s.Bodies[2]) {
		t.Errorf("warp ended %v from the planet, inside the safe distance", d)
	}
	if w.Apply(1, cam) {
		t.Error("inactive warp reported finishing")
	}
}

func TestWarpIgnoresRequestWhileActive(t *testing.T) {
	s := SolarSystem()
	cam := camera.New(mathutil.Vec3{0, 8, 35}, mathutil.Vec3{0, 0, 30})
	var w Warp
	w.WarpTo(s, 2, 0, cam)
	end := w.End()

	w.Apply(0.1, cam)
	if w.WarpTo(s, 4, 0, cam) {
		t.Error("second warp accepted while the first is running")
	}
	if w.End() != end {
		t.Errorf("warp retargeted to %v, want %v", w.End(), end)
	}

	for w.Active() {
		w.Apply(0.1, cam)
	}
	if !w.WarpTo(s, 4, 0, cam) {
		t.Error("warp rejected after the previous one finished")
	}
}

func writeModels(t *testing.T, dir string) {
	t.Helper()
	models := filepath.Join(dir, "models")
	if err := os.MkdirAll(models, 0755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"sphere.obj", "ship.obj"} {
		f, err := os.Create(filepath.Join(models, name))
		if err != nil {
			t.Fatal(err)
		}
		if err := mesh.UVSphere(4, 6).WriteOBJ(f); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
}

func TestLoadAssets(t *testing.T) {
	dir := t.TempDir()
	writeModels(t, dir)

	a, err := LoadAssets(dir, true, nil)
	if err != nil {
		t.Fatalf("LoadAssets: %v", err)
	}
	if a.Skybox != nil {
		t.Error("skybox loaded with noSky set")
	}
	if want := len(mesh.UVSphere(4, 6).Triangles); len(a.Sphere.Triangles) != want {
		t.Errorf("sphere triangles = %d, want %d", len(a.Sphere.Triangles), want)
	}

	// Skybox directory is missing entirely.
	if _, err := LoadAssets(dir, false, nil); err == nil {
		t.Error("expected error without skybox/")
	}

	if err := os.MkdirAll(filepath.Join(dir, "skybox"), 0755); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAssets(dir, false, nil); !errors.Is(err, skybox.ErrMissingFace) {
		t.Errorf("err = %v, want ErrMissingFace", err)
	}
}

func TestLoadAssetsMissingMesh(t *testing.T) {
	if _, err := LoadAssets(t.TempDir(), true, nil); err == nil {
		t.Error("expected error for missing models")
	}
}
