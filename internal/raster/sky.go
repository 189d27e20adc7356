package raster

import (
	"image/color"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/skybox"
)

// DrawSkybox fills every pixel with the cubemap colour seen through its
// center. Depth is not written, so the background stays at FarDepth.
func (r *Renderer) DrawSkybox(cam *camera.Camera, sky *skybox.Skybox) {
	w, h := r.fb.Width, r.fb.Height
	tanY := cam.TanHalfFov()
	tanX := tanY * cam.Aspect

	forward := cam.Forward()
	right := cam.Right()
	up := cam.Up()

	for y := 0; y < h; y++ {
		ndcY := 1 - (float64(y)+0.5)/float64(h)*2
		camY := up.Scale(ndcY * tanY)
		for x := 0; x < w; x++ {
			ndcX := (float64(x)+0.5)/float64(w)*2 - 1
			dir := right.Scale(ndcX * tanX).Add(camY).Add(forward).Normalize()

			col := sky.Sample(dir)
			r.fb.WriteUnconditional(x, y, color.RGBA{
				clamp255(col[0] * 255),
				clamp255(col[1] * 255),
				clamp255(col[2] * 255),
				255,
			})
		}
	}
}
