package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"solar-renderer/internal/logging"
	"solar-renderer/internal/mathutil"
)

// ErrMalformed marks an OBJ record that cannot be parsed.
var ErrMalformed = errors.New("malformed record")

// Load reads an OBJ file from disk.
func Load(path string, logger *slog.Logger) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, path, logger)
}

// Parse reads OBJ text. Only "v x y z" and "f a b c ..." records are used;
// face corners may carry "/vt/vn" suffixes which are ignored, and polygons
// are fan-triangulated. Faces referencing missing vertices are dropped and
// counted in Mesh.Dropped.
func Parse(r io.Reader, name string, logger *slog.Logger) (*Mesh, error) {
	logger = logging.OrNop(logger)

	m := &Mesh{Name: name}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: parse %s:%d: %w", name, line, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "f":
			idx, err := parseFace(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: parse %s:%d: %w", name, line, err)
			}
			for i := 1; i+1 < len(idx); i++ {
				m.Triangles = append(m.Triangles, [3]int{idx[0], idx[i], idx[i+1]})
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", name, err)
	}

	m.retainValid()
	if m.Dropped > 0 {
		logger.Warn("dropped faces with out-of-range indices",
			"mesh", name, "dropped", m.Dropped, "kept", len(m.Triangles))
	}
	logger.Debug("mesh loaded", "mesh", name,
		"vertices", len(m.Vertices), "triangles", len(m.Triangles))

	return m, nil
}

func parseVertex(fields []string) (mathutil.Vec3, error) {
	var v mathutil.Vec3
	if len(fields) < 3 {
		return v, fmt.Errorf("%w: vertex needs 3 coordinates, got %d", ErrMalformed, len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return v, fmt.Errorf("%w: vertex coordinate %q", ErrMalformed, fields[i])
		}
		v[i] = f
	}
	return v, nil
}

// parseFace converts one-based corner references to zero-based indices.
// Non-positive references become negative indices and are dropped later.
func parseFace(fields []string) ([]int, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("%w: face needs 3 corners, got %d", ErrMalformed, len(fields))
	}
	idx := make([]int, len(fields))
	for i, c := range fields {
		ref, _, _ := strings.Cut(c, "/")
		n, err := strconv.Atoi(ref)
		if err != nil {
			return nil, fmt.Errorf("%w: face corner %q", ErrMalformed, c)
		}
		if n <= 0 {
			idx[i] = -1
		} else {
			idx[i] = n - 1
		}
	}
	return idx, nil
}
