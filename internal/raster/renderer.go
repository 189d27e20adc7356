// Package raster is a CPU triangle rasterizer with a depth buffer,
// procedural shading and a handful of screen-space passes (skybox, orbit
// lines, rings, additive glow).
package raster

import (
	"image/color"
	"image/draw"
	"log/slog"
	"math"

	"solar-renderer/internal/camera"
	"solar-renderer/internal/logging"
	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/mesh"
	"solar-renderer/internal/shading"
)

// Stats counts per-frame work and skips. Reset by Clear.
type Stats struct {
	Triangles        int // rasterized
	BadIndex         int // skipped: index outside the vertex list
	Unprojected      int // skipped: a vertex failed to project
	Degenerate       int // skipped: zero screen area
	RingQuadsSkipped int
	OrbitBreaks      int
}

// Transform places a mesh in the world: T(Position)·Ry(Yaw)·S(Scale).
type Transform struct {
	Position mathutil.Vec3
	Scale    float64
	Yaw      float64
}

// Material selects the shading rule and its base colour.
type Material struct {
	Base color.RGBA
	Kind shading.Kind
}

// Renderer owns one FrameBuffer. It is not safe for concurrent use; render
// independent frames with independent Renderers.
type Renderer struct {
	fb     *FrameBuffer
	logger *slog.Logger
	stats  Stats
}

// NewRenderer allocates a w×h frame buffer. A nil logger discards output.
func NewRenderer(w, h int, logger *slog.Logger) *Renderer {
	return &Renderer{
		fb:     NewFrameBuffer(w, h),
		logger: logging.OrNop(logger),
	}
}

// FrameBuffer exposes the render target for readback.
func (r *Renderer) FrameBuffer() *FrameBuffer { return r.fb }

func (r *Renderer) Width() int  { return r.fb.Width }
func (r *Renderer) Height() int { return r.fb.Height }

// Stats returns the counters accumulated since the last Clear.
func (r *Renderer) Stats() Stats { return r.stats }

// Clear resets color, depth and counters for a new frame.
func (r *Renderer) Clear(c color.RGBA) {
	r.fb.Clear(c)
	r.stats = Stats{}
}

// BlitTo presents the frame on dst with nearest-neighbour resampling.
func (r *Renderer) BlitTo(dst draw.Image) {
	r.fb.BlitTo(dst)
}

// LogStats writes the frame counters at debug level.
func (r *Renderer) LogStats(frame int) {
	s := r.stats
	r.logger.Debug("frame rasterized",
		"frame", frame,
		"triangles", s.Triangles,
		"bad_index", s.BadIndex,
		"unprojected", s.Unprojected,
		"degenerate", s.Degenerate,
		"ring_quads_skipped", s.RingQuadsSkipped,
		"orbit_breaks", s.OrbitBreaks,
	)
}

// DrawMeshShaded draws m at pos, uniformly scaled, with no rotation.
func (r *Renderer) DrawMeshShaded(m *mesh.Mesh, pos mathutil.Vec3, scale float64, base color.RGBA,
	cam *camera.Camera, kind shading.Kind, lightDir mathutil.Vec3) {
	r.DrawMesh(m, Transform{Position: pos, Scale: scale}, Material{Base: base, Kind: kind}, cam, lightDir)
}

// DrawMeshShadedRotated is DrawMeshShaded with a yaw (radians) about +Y.
func (r *Renderer) DrawMeshShadedRotated(m *mesh.Mesh, pos mathutil.Vec3, scale, yaw float64, base color.RGBA,
	cam *camera.Camera, kind shading.Kind, lightDir mathutil.Vec3) {
	r.DrawMesh(m, Transform{Position: pos, Scale: scale, Yaw: yaw}, Material{Base: base, Kind: kind}, cam, lightDir)
}

// DrawMesh rasterizes every triangle of m with flat lambert lighting from
// lightDir (the direction light travels) and per-pixel procedural shading.
// Triangles are skipped, never fatal, when an index is out of range, a vertex
// fails to project, or the projected area is degenerate.
func (r *Renderer) DrawMesh(m *mesh.Mesh, xf Transform, mat Material, cam *camera.Camera, lightDir mathutil.Vec3) {
	model := mathutil.Model(xf.Position, xf.Scale, xf.Yaw)
	mvp := cam.ViewProjection().Mul4(model)
	toLight := lightDir.Normalize().Neg()

	n := len(m.Vertices)
	for _, tri := range m.Triangles {
		if tri[0] < 0 || tri[0] >= n || tri[1] < 0 || tri[1] >= n || tri[2] < 0 || tri[2] >= n {
			r.stats.BadIndex++
			continue
		}
		v0, v1, v2 := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]

		w0 := mathutil.TransformPoint(model, v0)
		w1 := mathutil.TransformPoint(model, v1)
		w2 := mathutil.TransformPoint(model, v2)
		normal := w1.Sub(w0).Cross(w2.Sub(w0)).Normalize()

		s0, ok0 := r.Project(v0, mvp)
		s1, ok1 := r.Project(v1, mvp)
		s2, ok2 := r.Project(v2, mvp)
		if !ok0 || !ok1 || !ok2 {
			r.stats.Unprojected++
			continue
		}

		lambert := math.Max(0, normal.Dot(toLight))
		if !RasterizeTriangle(r.fb, s0, s1, s2, w0, w1, w2, lambert, mat.Kind, mat.Base) {
			r.stats.Degenerate++
			continue
		}
		r.stats.Triangles++
	}
}
