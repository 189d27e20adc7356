// Package scene describes the solar-system preset and turns it into a
// per-frame draw list. Every position is a pure function of time.
package scene

import (
	"image/color"
	"math"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/shading"
)

// Palette.
var (
	Yellow    = color.RGBA{253, 249, 0, 255}
	Blue      = color.RGBA{0, 121, 241, 255}
	Red       = color.RGBA{230, 41, 55, 255}
	SkyBlue   = color.RGBA{102, 191, 255, 255}
	Beige     = color.RGBA{211, 176, 131, 255}
	Khaki     = color.RGBA{200, 180, 80, 255}
	LightGray = color.RGBA{200, 200, 200, 255}
	White     = color.RGBA{255, 255, 255, 255}
	Black     = color.RGBA{0, 0, 0, 255}
)

// RingSpec sizes a ring relative to its body's scale.
type RingSpec struct {
	Inner, Outer float64 // multiples of Body.Scale
	Color        color.RGBA
}

// Body is a sphere on a circular orbit in the XZ plane around the origin.
type Body struct {
	Name        string
	OrbitRadius float64
	OrbitSpeed  float64 // rad/s
	Scale       float64
	Color       color.RGBA
	Kind        shading.Kind
	Ring        *RingSpec
}

// Position at time t (seconds).
func (b Body) Position(t float64) mathutil.Vec3 {
	a := b.OrbitSpeed * t
	return mathutil.Vec3{b.OrbitRadius * math.Cos(a), 0, b.OrbitRadius * math.Sin(a)}
}

// Satellite circles a parent body.
type Satellite struct {
	Name        string
	Parent      int // index into System.Bodies
	OrbitRadius float64
	OrbitSpeed  float64
	Scale       float64
	Color       color.RGBA
	Kind        shading.Kind
}

// Ship is the player craft. Offline renders fly it along a fixed circle.
type Ship struct {
	Scale       float64
	Yaw         float64 // model correction about +Y
	Color       color.RGBA
	PathRadius  float64
	PathSpeed   float64
	PathHeight  float64
	CamDistance float64
	CamPitch    float64
}

// System is a complete scene description.
type System struct {
	Bodies     []Body
	Satellites []Satellite
	Ship       Ship

	SunIndex   int
	LightDir   mathutil.Vec3
	OrbitColor color.RGBA
	TrailLen   int
	TrailAlpha uint8
}

// SolarSystem returns the default scene: a sun, five planets, a moon around
// the second body and the ship.
func SolarSystem() *System {
	return &System{
		Bodies: []Body{
			{Name: "sun", Scale: 4, Color: Yellow, Kind: shading.Sun},
			{Name: "earth", OrbitRadius: 18, OrbitSpeed: 0.7, Scale: 1.3, Color: Blue, Kind: shading.Earth},
			{Name: "volcanic", OrbitRadius: 28, OrbitSpeed: 0.5, Scale: 1.5, Color: Red, Kind: shading.Volcanic},
			{Name: "ice", OrbitRadius: 40, OrbitSpeed: 0.42, Scale: 1.6, Color: SkyBlue, Kind: shading.Ice},
			{Name: "gas", OrbitRadius: 55, OrbitSpeed: 0.35, Scale: 2.7, Color: Beige, Kind: shading.Gas,
				Ring: &RingSpec{Inner: 1.6, Outer: 3.0, Color: color.RGBA{200, 180, 140, 200}}},
			{Name: "super-earth", OrbitRadius: 72, OrbitSpeed: 0.28, Scale: 2.0, Color: Khaki, Kind: shading.SuperEarth,
				Ring: &RingSpec{Inner: 1.25, Outer: 2.5, Color: color.RGBA{180, 60, 30, 200}}},
		},
		Satellites: []Satellite{
			{Name: "moon", Parent: 1, OrbitRadius: 3, OrbitSpeed: 1, Scale: 0.5, Color: LightGray, Kind: shading.Ice},
		},
		Ship: Ship{
			Scale:       0.9,
			Yaw:         math.Pi,
			Color:       White,
			PathRadius:  33,
			PathSpeed:   0.12,
			PathHeight:  1.5,
			CamDistance: 10,
			CamPitch:    0.35,
		},
		SunIndex:   0,
		LightDir:   mathutil.Vec3{1, -0.4, -0.2},
		OrbitColor: LightGray,
		TrailLen:   128,
		TrailAlpha: 160,
	}
}

// SatellitePosition at time t.
func (s *System) SatellitePosition(i int, t float64) mathutil.Vec3 {
	sat := s.Satellites[i]
	a := sat.OrbitSpeed * t
	parent := s.Bodies[sat.Parent].Position(t)
	return parent.Add(mathutil.Vec3{sat.OrbitRadius * math.Cos(a), 0, sat.OrbitRadius * math.Sin(a)})
}

// ShipPosition is the ship's position on its offline flight path.
func (s *System) ShipPosition(t float64) mathutil.Vec3 {
	a := s.Ship.PathSpeed * t
	r := s.Ship.PathRadius
	return mathutil.Vec3{r * math.Cos(a), s.Ship.PathHeight, r * math.Sin(a)}
}

// Trail returns up to n past positions of body i ending at t, sampled every
// dt seconds, oldest first. Samples before t=0 are not produced.
func (s *System) Trail(i int, t float64, n int, dt float64) []mathutil.Vec3 {
	if n <= 0 || dt <= 0 {
		return nil
	}
	if avail := int(t/dt) + 1; avail < n {
		n = avail
	}
	out := make([]mathutil.Vec3, n)
	for k := 0; k < n; k++ {
		out[k] = s.Bodies[i].Position(t - float64(n-1-k)*dt)
	}
	return out
}

// SafeDistance is how close the camera's anchor may get to body b.
func SafeDistance(b Body) float64 {
	return b.Scale*2.5 + 4
}

// KeepOutside pushes p out of every body's safe sphere at time t and
// reports whether it moved.
func (s *System) KeepOutside(p mathutil.Vec3, t float64) (mathutil.Vec3, bool) {
	moved := false
	for _, b := range s.Bodies {
		center := b.Position(t)
		to := p.Sub(center)
		safe := SafeDistance(b)
		if d := to.Len(); d < safe {
			dir := to.Normalize()
			if d < 1e-9 {
				dir = mathutil.Vec3{0, 1, 0}
			}
			p = center.Add(dir.Scale(safe))
			moved = true
		}
	}
	return p, moved
}
