package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// BlitTo resamples the frame buffer onto dst with nearest-neighbour lookup:
// destination pixel (x, y) reads source (x·W/dw, y·H/dh). *image.NRGBA is
// copied directly; *image.RGBA is premultiplied on the way.
func (fb *FrameBuffer) BlitTo(dst draw.Image) {
	b := dst.Bounds()
	dw, dh := b.Dx(), b.Dy()
	if dw == 0 || dh == 0 || fb.Width == 0 || fb.Height == 0 {
		return
	}

	for dy := 0; dy < dh; dy++ {
		srcRow := (dy * fb.Height / dh) * fb.Width
		for dx := 0; dx < dw; dx++ {
			so := (srcRow + dx*fb.Width/dw) * 4
			px := fb.Color[so : so+4 : so+4]

			switch d := dst.(type) {
			case *image.NRGBA:
				do := dy*d.Stride + dx*4
				copy(d.Pix[do:do+4], px)
			case *image.RGBA:
				do := dy*d.Stride + dx*4
				a := uint16(px[3])
				d.Pix[do] = uint8(uint16(px[0]) * a / 255)
				d.Pix[do+1] = uint8(uint16(px[1]) * a / 255)
				d.Pix[do+2] = uint8(uint16(px[2]) * a / 255)
				d.Pix[do+3] = px[3]
			default:
				dst.Set(b.Min.X+dx, b.Min.Y+dy, color.NRGBA{px[0], px[1], px[2], px[3]})
			}
		}
	}
}
