// Package texture decodes images into immutable RGB textures and samples
// them with nearest-neighbour lookup.
package texture

import "solar-renderer/internal/mathutil"

// Texture is an RGB byte image, row-major, 3 bytes per texel.
// It is never mutated after load.
type Texture struct {
	Width  int
	Height int
	Pix    []uint8
}

// Sample returns the nearest texel at (u, v) as linear RGB in [0,1].
// u and v are clamped to [0,1] with NaN treated as 0; v=0 is the top row.
func (t *Texture) Sample(u, v float64) mathutil.Vec3 {
	x := int(unit(u) * float64(t.Width-1))
	y := int(unit(v) * float64(t.Height-1))
	i := (y*t.Width + x) * 3
	return mathutil.Vec3{
		float64(t.Pix[i]) / 255,
		float64(t.Pix[i+1]) / 255,
		float64(t.Pix[i+2]) / 255,
	}
}

func unit(x float64) float64 {
	if !(x > 0) {
		return 0
	}
	return min(x, 1)
}
