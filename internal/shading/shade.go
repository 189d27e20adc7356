// Package shading evaluates the per-pixel planet materials. Every function
// here is pure: the same inputs always produce the same colour.
package shading

import (
	"image/color"
	"math"

	"solar-renderer/internal/mathutil"
)

type rgb = mathutil.Vec3

var (
	earthOcean = rgb{0.0, 0.2, 0.7}
	earthLand  = rgb{0.0, 0.5, 0.1}
	earthIce   = rgb{0.8, 0.8, 0.9}

	superOcean = rgb{0.1, 0.3, 0.6}
	superLand  = rgb{0.7, 0.65, 0.3}
	superIce   = rgb{0.85, 0.82, 0.8}

	volcanicDark  = rgb{0.35, 0.08, 0.05}
	volcanicLight = rgb{0.55, 0.12, 0.08}

	iceBright = rgb{0.7, 0.9, 1.0}
	iceDeep   = rgb{0.4, 0.7, 0.9}

	gasLight = rgb{0.95, 0.85, 0.7}
	gasDark  = rgb{0.7, 0.55, 0.4}
)

// Shade maps a material kind, base tint, interpolated world position and
// lambert term to an opaque RGBA colour. World-position trigonometry stands
// in for texture coordinates and noise.
func Shade(kind Kind, base color.RGBA, p mathutil.Vec3, lambert float64) color.RGBA {
	var c rgb

	switch kind {
	case Sun:
		t := math.Min(p.Len()/3.5, 1)
		c = rgb{1, mathutil.Lerp(0.9, 0.6, t), mathutil.Lerp(0.3, 0.0, t)}
		c = c.Scale(0.5 + 0.5*lambert)

	case Earth:
		c = terrestrial(p, lambert, earthOcean, earthLand, earthIce, 0.3)

	case SuperEarth:
		c = terrestrial(p, lambert, superOcean, superLand, superIce, 0.4)

	case Volcanic:
		noise := math.Sin(p[0]*2.5) * math.Cos(p[2]*3.0)
		t := mathutil.Clamp01(noise*0.5 + 0.5)
		c = volcanicDark.Lerp(volcanicLight, t).Scale(0.3 + 0.65*lambert)

	case Ice:
		noise := math.Sin(p[2]*2.0) * math.Cos(p[1]*3.0)
		t := mathutil.Clamp01(noise*0.5 + 0.5)
		spec := 0.2 * math.Pow(lambert, 8)
		c = iceDeep.Lerp(iceBright, t).Scale(0.5 + 0.5*lambert)
		c = c.Add(rgb{spec, spec * 0.9, spec * 0.6})

	case Gas:
		band := math.Sin(p[1] * 6.0)
		turb := math.Sin(p[0]*8.0) * math.Cos(p[2]*6.0) * 0.2
		t := mathutil.Clamp01(band*0.5 + 0.5 + turb)
		haze := 1 - 0.15*math.Min(p.Len()/2, 1)
		c = gasDark.Lerp(gasLight, t).Scale((0.25 + 0.75*lambert) * haze)

	default:
		diffuse := 0.3 + 0.7*lambert
		c = rgb{
			float64(base.R) / 255 * diffuse,
			float64(base.G) / 255 * diffuse,
			float64(base.B) / 255 * diffuse,
		}
	}

	return color.RGBA{
		R: quantize(c[0]),
		G: quantize(c[1]),
		B: quantize(c[2]),
		A: 255,
	}
}

// terrestrial picks ice above |lat| 1, otherwise land or ocean from a
// latitude+noise mix, then applies diffuse plus a rim term.
func terrestrial(p mathutil.Vec3, lambert float64, ocean, land, ice rgb, rimStrength float64) rgb {
	lat := p[1]
	noise := math.Sin(p[0]*0.7) * math.Cos(p[2]*0.5)
	mix := lat*0.4 + noise*0.6

	c := ocean
	switch {
	case math.Abs(lat) > 1:
		c = ice
	case mix > 0:
		c = land
	}

	// The view direction is approximated by the surface direction itself,
	// so the rim term only contributes where normalisation degenerates.
	n := p.Normalize()
	rim := rimStrength * (1 - math.Abs(n.Dot(n)))
	return c.Scale(0.15 + 0.75*lambert + rim)
}

// quantize clamps to [0,1] and truncates to 8 bits.
func quantize(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(mathutil.Clamp01(v) * 255)
}
