package raster

import (
	"image"
	"image/color"
)

// FarDepth is the depth every pixel holds after Clear.
const FarDepth = 1.0

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Color and ZBuf share the pixel index y*Width+x.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel in [0,1], smaller is nearer
}

// NewFrameBuffer allocates a buffer cleared to transparent black at FarDepth.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, w*h*4),
		ZBuf:   make([]float64, w*h),
	}
	fb.Clear(color.RGBA{})
	return fb
}

// Clear sets every pixel to c and every depth to FarDepth.
func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := range fb.ZBuf {
		o := i * 4
		fb.Color[o] = c.R
		fb.Color[o+1] = c.G
		fb.Color[o+2] = c.B
		fb.Color[o+3] = c.A
		fb.ZBuf[i] = FarDepth
	}
}

func (fb *FrameBuffer) index(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return 0, false
	}
	return y*fb.Width + x, true
}

func (fb *FrameBuffer) set(i int, c color.RGBA) {
	o := i * 4
	fb.Color[o] = c.R
	fb.Color[o+1] = c.G
	fb.Color[o+2] = c.B
	fb.Color[o+3] = c.A
}

// WriteIfNearer writes color and depth when depth is strictly less than the
// stored depth. Out-of-bounds writes are ignored.
func (fb *FrameBuffer) WriteIfNearer(x, y int, depth float64, c color.RGBA) bool {
	i, ok := fb.index(x, y)
	if !ok || !(depth < fb.ZBuf[i]) {
		return false
	}
	fb.ZBuf[i] = depth
	fb.set(i, c)
	return true
}

// WriteIfNotFarther is WriteIfNearer with a <= test, so a write at FarDepth
// lands on a cleared pixel but never on geometry.
func (fb *FrameBuffer) WriteIfNotFarther(x, y int, depth float64, c color.RGBA) bool {
	i, ok := fb.index(x, y)
	if !ok || !(depth <= fb.ZBuf[i]) {
		return false
	}
	fb.ZBuf[i] = depth
	fb.set(i, c)
	return true
}

// WriteUnconditional writes color only; depth is left untouched.
func (fb *FrameBuffer) WriteUnconditional(x, y int, c color.RGBA) {
	if i, ok := fb.index(x, y); ok {
		fb.set(i, c)
	}
}

// BlendAdditive adds c to the stored color per channel, alpha included,
// saturating at 255. Depth is neither read nor written.
func (fb *FrameBuffer) BlendAdditive(x, y int, c color.RGBA) {
	i, ok := fb.index(x, y)
	if !ok {
		return
	}
	o := i * 4
	fb.Color[o] = addSat(fb.Color[o], c.R)
	fb.Color[o+1] = addSat(fb.Color[o+1], c.G)
	fb.Color[o+2] = addSat(fb.Color[o+2], c.B)
	fb.Color[o+3] = addSat(fb.Color[o+3], c.A)
}

// At returns the stored color, or transparent black outside the buffer.
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	i, ok := fb.index(x, y)
	if !ok {
		return color.RGBA{}
	}
	o := i * 4
	return color.RGBA{fb.Color[o], fb.Color[o+1], fb.Color[o+2], fb.Color[o+3]}
}

// DepthAt returns the stored depth, or FarDepth outside the buffer.
func (fb *FrameBuffer) DepthAt(x, y int) float64 {
	i, ok := fb.index(x, y)
	if !ok {
		return FarDepth
	}
	return fb.ZBuf[i]
}

// Image copies the color buffer into a new NRGBA image. Stored colors are
// not premultiplied.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Color)
	return img
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
