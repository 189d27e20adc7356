package overlay

import (
	"image"
	"image/color"
	"testing"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/raster"
)

func opaqueBlack(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	return img
}

func lit(img *image.RGBA) int {
	n := 0
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i]|img.Pix[i+1]|img.Pix[i+2] != 0 {
			n++
		}
	}
	return n
}

func TestBlend(t *testing.T) {
	img := opaqueBlack(2, 1)
	blend(img, 0, 0, color.RGBA{255, 255, 255, 255})
	blend(img, 1, 0, color.RGBA{200, 100, 0, 128})
	blend(img, 5, 0, color.RGBA{255, 0, 0, 255})

	if got := img.RGBAAt(0, 0); got != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("opaque blend = %v", got)
	}
	if got := img.RGBAAt(1, 0); got != (color.RGBA{100, 50, 0, 255}) {
		t.Errorf("half blend = %v, want {100 50 0 255}", got)
	}
}

func TestLine(t *testing.T) {
	img := opaqueBlack(10, 10)
	Line(img, 0, 0, 9, 9, color.RGBA{255, 0, 0, 255})
	for i := 0; i < 10; i++ {
		if img.RGBAAt(i, i).R != 255 {
			t.Errorf("diagonal pixel %d not drawn", i)
		}
	}
	if n := lit(img); n != 10 {
		t.Errorf("lit = %d, want 10", n)
	}

	far := opaqueBlack(10, 10)
	Line(far, -1e9, 5, 1e9, 5, color.RGBA{0, 255, 0, 255})
	if n := lit(far); n != 10 {
		t.Errorf("clipped horizontal line lit %d pixels, want 10", n)
	}
}

func TestDrawTrail(t *testing.T) {
	r := raster.NewRenderer(64, 36, nil)
	cam := camera.New(mathutil.Vec3{0, 10, 20}, mathutil.Vec3{0, 0, 0})

	var pts []mathutil.Vec3
	for i := 0; i <= 8; i++ {
		pts = append(pts, mathutil.Vec3{float64(i) - 4, 0, 0})
	}

	dst := opaqueBlack(128, 72)
	DrawTrail(dst, r, cam, pts, color.RGBA{0, 121, 241, 160})
	if lit(dst) == 0 {
		t.Fatal("trail not drawn")
	}
	// The trail runs through the projected origin, scaled ×2.
	x, y, _ := r.WorldToScreen(mathutil.Vec3{}, cam)
	if c := dst.RGBAAt(int(x*2), int(y*2)); c.B == 0 {
		t.Errorf("pixel at projected origin = %v, want trail colour", c)
	}

	behind := opaqueBlack(128, 72)
	DrawTrail(behind, r, cam, []mathutil.Vec3{{0, 0, 40}, {1, 0, 40}}, color.RGBA{255, 255, 255, 255})
	if lit(behind) != 0 {
		t.Error("trail behind the camera drawn")
	}
}

func TestText(t *testing.T) {
	img := opaqueBlack(120, 20)
	TextShadow(img, 2, 2, "frame 0001", color.RGBA{255, 255, 255, 255})
	if lit(img) == 0 {
		t.Fatal("no text pixels")
	}
	if w := TextWidth("frame 0001"); w <= 0 || w > 120 {
		t.Errorf("TextWidth = %d", w)
	}
	if TextWidth("ab") >= TextWidth("abcd") {
		t.Error("TextWidth not increasing with length")
	}
}
