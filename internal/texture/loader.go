package texture

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"
)

// decoders maps a lower-case extension to its decoder. The tga package
// registers with an empty magic string and would claim every file through
// image.Decode, so formats are picked by extension instead.
var decoders = map[string]func(io.Reader) (image.Image, error){
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".tga":  tga.Decode,
	".bmp":  bmp.Decode,
	".webp": webp.Decode,
}

// Load reads and decodes a PNG, JPEG, TGA, BMP or WebP file into an RGB texture.
func Load(path string) (*Texture, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("texture: unknown extension %q: %s", ext, path)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}

	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	tex := FromImage(img)
	if tex.Width == 0 || tex.Height == 0 {
		return nil, fmt.Errorf("texture: empty image %s", path)
	}
	return tex, nil
}

// FromImage converts any image to a tightly packed RGB texture, dropping alpha.
func FromImage(src image.Image) *Texture {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	pix := make([]uint8, w*h*3)

	switch s := src.(type) {
	case *image.NRGBA:
		for y := 0; y < h; y++ {
			row := s.Pix[y*s.Stride:]
			for x := 0; x < w; x++ {
				copy(pix[(y*w+x)*3:], row[x*4:x*4+3])
			}
		}
	default:
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				r, g, bl, a := src.At(b.Min.X+x, b.Min.Y+y).RGBA()
				if a > 0 && a < 0xffff {
					// Un-premultiply so translucent texels keep their hue.
					r = r * 0xffff / a
					g = g * 0xffff / a
					bl = bl * 0xffff / a
				}
				i := (y*w + x) * 3
				pix[i] = uint8(r >> 8)
				pix[i+1] = uint8(g >> 8)
				pix[i+2] = uint8(bl >> 8)
			}
		}
	}

	return &Texture{Width: w, Height: h, Pix: pix}
}
