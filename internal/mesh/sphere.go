package mesh

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"solar-renderer/internal/mathutil"
)

// UVSphere builds a unit sphere with the given latitude and longitude
// subdivisions. Poles are single vertices.
func UVSphere(stacks, slices int) *Mesh {
	if stacks < 2 {
		stacks = 2
	}
	if slices < 3 {
		slices = 3
	}

	m := &Mesh{Name: fmt.Sprintf("uvsphere-%dx%d", stacks, slices)}
	m.Vertices = append(m.Vertices, mathutil.Vec3{0, 1, 0})
	for i := 1; i < stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		y, r := math.Cos(phi), math.Sin(phi)
		for j := 0; j < slices; j++ {
			theta := 2 * math.Pi * float64(j) / float64(slices)
			m.Vertices = append(m.Vertices, mathutil.Vec3{r * math.Cos(theta), y, r * math.Sin(theta)})
		}
	}
	south := len(m.Vertices)
	m.Vertices = append(m.Vertices, mathutil.Vec3{0, -1, 0})

	ring := func(i, j int) int { return 1 + (i-1)*slices + j%slices }

	for j := 0; j < slices; j++ {
		m.Triangles = append(m.Triangles, [3]int{0, ring(1, j+1), ring(1, j)})
	}
	for i := 1; i < stacks-1; i++ {
		for j := 0; j < slices; j++ {
			a, b := ring(i, j), ring(i, j+1)
			c, d := ring(i+1, j), ring(i+1, j+1)
			m.Triangles = append(m.Triangles, [3]int{a, b, d}, [3]int{a, d, c})
		}
	}
	for j := 0; j < slices; j++ {
		m.Triangles = append(m.Triangles, [3]int{south, ring(stacks-1, j), ring(stacks-1, j+1)})
	}
	return m
}

// WriteOBJ writes the mesh as OBJ text with one-based indices.
func (m *Mesh) WriteOBJ(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if m.Name != "" {
		fmt.Fprintf(bw, "o %s\n", m.Name)
	}
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %.6f %.6f %.6f\n", v[0], v[1], v[2])
	}
	for _, t := range m.Triangles {
		fmt.Fprintf(bw, "f %d %d %d\n", t[0]+1, t[1]+1, t[2]+1)
	}
	return bw.Flush()
}
