// Package overlay draws 2D annotations (orbit trails, HUD text) on the
// presented image after the 3D frame has been blitted.
package overlay

import (
	"image"
	"image/color"

	"tinygo.org/x/drivers"
)

// imageDisplay adapts a premultiplied RGBA image to drivers.Displayer so
// tinyfont can draw on it. Pixels are alpha-blended over what is there.
type imageDisplay struct {
	img *image.RGBA
}

var _ drivers.Displayer = (*imageDisplay)(nil)

func (d *imageDisplay) Size() (x, y int16) {
	b := d.img.Bounds()
	return int16(b.Dx()), int16(b.Dy())
}

func (d *imageDisplay) SetPixel(x, y int16, c color.RGBA) {
	blend(d.img, int(x), int(y), c)
}

func (d *imageDisplay) Display() error { return nil }

// blend composites a non-premultiplied colour over dst at (x, y), relative
// to dst's bounds. Out-of-range coordinates are ignored.
func blend(dst *image.RGBA, x, y int, c color.RGBA) {
	b := dst.Bounds()
	if x < 0 || y < 0 || x >= b.Dx() || y >= b.Dy() || c.A == 0 {
		return
	}
	o := y*dst.Stride + x*4
	p := dst.Pix[o : o+4 : o+4]
	if c.A == 255 {
		p[0], p[1], p[2], p[3] = c.R, c.G, c.B, 255
		return
	}
	a := uint32(c.A)
	ia := 255 - a
	p[0] = uint8((uint32(c.R)*a + uint32(p[0])*ia) / 255)
	p[1] = uint8((uint32(c.G)*a + uint32(p[1])*ia) / 255)
	p[2] = uint8((uint32(c.B)*a + uint32(p[2])*ia) / 255)
	p[3] = uint8(a + uint32(p[3])*ia/255)
}
