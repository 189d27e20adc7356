// Package mesh holds indexed triangle meshes and reads them from
// Wavefront OBJ text.
package mesh

import (
	"fmt"
	"math"

	"solar-renderer/internal/mathutil"
)

// Mesh is an immutable indexed triangle list in object space.
// Every triangle index is < len(Vertices).
type Mesh struct {
	Name      string
	Vertices  []mathutil.Vec3
	Triangles [][3]int

	// Dropped counts faces removed at load because an index was out of range.
	Dropped int
}

// Validate returns an error describing the first triangle that references
// a missing vertex, or nil.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for i, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= n {
				return fmt.Errorf("mesh: %s triangle %d index %d out of range [0,%d)", m.Name, i, idx, n)
			}
		}
	}
	return nil
}

// Bounds returns the axis-aligned min and max corners of all vertices.
// An empty mesh returns two zero vectors.
func (m *Mesh) Bounds() (min, max mathutil.Vec3) {
	if len(m.Vertices) == 0 {
		return
	}
	min = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	max = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, v := range m.Vertices {
		for k := 0; k < 3; k++ {
			min[k] = math.Min(min[k], v[k])
			max[k] = math.Max(max[k], v[k])
		}
	}
	return
}

// retainValid drops triangles whose indices fall outside the vertex list.
func (m *Mesh) retainValid() {
	n := len(m.Vertices)
	kept := m.Triangles[:0]
	for _, tri := range m.Triangles {
		if tri[0] >= 0 && tri[0] < n && tri[1] >= 0 && tri[1] < n && tri[2] >= 0 && tri[2] < n {
			kept = append(kept, tri)
		}
	}
	m.Dropped += len(m.Triangles) - len(kept)
	m.Triangles = kept
}
