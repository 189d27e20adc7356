package main

import (
	"fmt"
	"os"
	"path/filepath"

	"solar-renderer/internal/logging"
	"solar-renderer/internal/mesh"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: inspectobj file.obj [file.obj ...]")
		os.Exit(2)
	}
	logger, _ := logging.New("warn", os.Stderr)

	failed := 0
	for _, arg := range os.Args[1:] {
		m, err := mesh.Load(arg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Parse error %s: %v\n", arg, err)
			failed++
			continue
		}
		fmt.Printf("\n=== %s ===\n", filepath.Base(arg))
		fmt.Printf("  vertices:  %d\n", len(m.Vertices))
		fmt.Printf("  triangles: %d\n", len(m.Triangles))
		if m.Dropped > 0 {
			fmt.Printf("  dropped:   %d (index out of range)\n", m.Dropped)
		}

		lo, hi := m.Bounds()
		fmt.Printf("  bounds:    [%.3f %.3f %.3f] .. [%.3f %.3f %.3f]\n",
			lo[0], lo[1], lo[2], hi[0], hi[1], hi[2])
		size := hi.Sub(lo)
		fmt.Printf("  size:      %.3f x %.3f x %.3f\n", size[0], size[1], size[2])

		degenerate := 0
		for _, tri := range m.Triangles {
			a, b, c := m.Vertices[tri[0]], m.Vertices[tri[1]], m.Vertices[tri[2]]
			if b.Sub(a).Cross(c.Sub(a)).Len() < 1e-12 {
				degenerate++
			}
		}
		if degenerate > 0 {
			fmt.Printf("  degenerate: %d zero-area triangles\n", degenerate)
		}
		if err := m.Validate(); err != nil {
			fmt.Printf("  INVALID: %v\n", err)
			failed++
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
