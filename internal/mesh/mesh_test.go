package mesh

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"solar-renderer/internal/mathutil"
)

const quadOBJ = `# unit quad
o quad
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
vt 0 0
vn 0 0 1
f 1/1/1 2/1/1 3/1/1 4/1/1
`

func TestParseFanTriangulates(t *testing.T) {
	m, err := Parse(strings.NewReader(quadOBJ), "quad", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Vertices) != 4 {
		t.Fatalf("vertices = %d, want 4", len(m.Vertices))
	}
	want := [][3]int{{0, 1, 2}, {0, 2, 3}}
	if len(m.Triangles) != len(want) {
		t.Fatalf("triangles = %v, want %v", m.Triangles, want)
	}
	for i := range want {
		if m.Triangles[i] != want[i] {
			t.Errorf("triangle %d = %v, want %v", i, m.Triangles[i], want[i])
		}
	}
}

func TestParseDropsOutOfRangeFaces(t *testing.T) {
	src := `v 0 0 0
v 1 0 0
v 0 1 0
f 1 2 3
f 1 2 9
f 0 1 2
f 3 2 1
`
	m, err := Parse(strings.NewReader(src), "bad", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Triangles) != 2 {
		t.Errorf("kept %d triangles, want 2", len(m.Triangles))
	}
	if m.Dropped != 2 {
		t.Errorf("Dropped = %d, want 2", m.Dropped)
	}
	if err := m.Validate(); err != nil {
		t.Errorf("Validate after load: %v", err)
	}
	for _, tri := range m.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(m.Vertices) {
				t.Errorf("index %d out of range after load", idx)
			}
		}
	}
}

func TestParseMalformed(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"short vertex", "v 1 2\n"},
		{"bad coordinate", "v 1 two 3\n"},
		{"short face", "v 0 0 0\nf 1 1\n"},
		{"bad corner", "v 0 0 0\nf 1 x 1\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.src), tc.name, nil)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("err = %v, want ErrMalformed", err)
			}
		})
	}
}

func TestValidateReportsBadIndex(t *testing.T) {
	m := &Mesh{
		Name:      "broken",
		Vertices:  []mathutil.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Triangles: [][3]int{{0, 1, 2}, {0, 1, 3}},
	}
	if err := m.Validate(); err == nil {
		t.Error("Validate accepted index 3 with 3 vertices")
	}
}

func TestBounds(t *testing.T) {
	m, err := Parse(strings.NewReader(quadOBJ), "quad", nil)
	if err != nil {
		t.Fatal(err)
	}
	lo, hi := m.Bounds()
	if lo != (mathutil.Vec3{0, 0, 0}) || hi != (mathutil.Vec3{1, 1, 0}) {
		t.Errorf("Bounds = %v..%v, want (0,0,0)..(1,1,0)", lo, hi)
	}
}

func TestUVSphereRoundTrip(t *testing.T) {
	s := UVSphere(8, 12)
	if err := s.Validate(); err != nil {
		t.Fatalf("UVSphere invalid: %v", err)
	}
	wantTris := 2*12 + 2*12*(8-2)
	if len(s.Triangles) != wantTris {
		t.Errorf("triangles = %d, want %d", len(s.Triangles), wantTris)
	}
	for i, v := range s.Vertices {
		if l := v.Len(); l < 0.999 || l > 1.001 {
			t.Fatalf("vertex %d length %v, want 1", i, l)
		}
	}

	var buf bytes.Buffer
	if err := s.WriteOBJ(&buf); err != nil {
		t.Fatal(err)
	}
	back, err := Parse(&buf, "sphere", nil)
	if err != nil {
		t.Fatalf("Parse(WriteOBJ): %v", err)
	}
	if len(back.Vertices) != len(s.Vertices) || len(back.Triangles) != len(s.Triangles) {
		t.Errorf("round trip %d/%d, want %d/%d",
			len(back.Vertices), len(back.Triangles), len(s.Vertices), len(s.Triangles))
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.obj"), nil); err == nil {
		t.Error("Load of missing file returned nil error")
	}

	path := filepath.Join(t.TempDir(), "quad.obj")
	if err := os.WriteFile(path, []byte(quadOBJ), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if m.Name != path {
		t.Errorf("Name = %q, want %q", m.Name, path)
	}
}
