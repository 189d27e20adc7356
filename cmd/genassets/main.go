package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/HugoSmits86/nativewebp"

	"solar-renderer/internal/mathutil"
	"solar-renderer/internal/mesh"
	"solar-renderer/internal/skybox"
)

func main() {
	outDir := flag.String("out", "assets", "Output assets directory")
	stacks := flag.Int("stacks", 16, "Sphere latitude subdivisions")
	slices := flag.Int("slices", 24, "Sphere longitude subdivisions")
	faceSize := flag.Int("face", 512, "Skybox face size in pixels")
	stars := flag.Int("stars", 900, "Stars per skybox face")
	seed := flag.Int64("seed", 1, "Starfield seed")
	flag.Parse()

	models := filepath.Join(*outDir, "models")
	sky := filepath.Join(*outDir, "skybox")
	for _, d := range []string{models, sky} {
		if err := os.MkdirAll(d, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	sphere := mesh.UVSphere(*stacks, *slices)
	if err := writeOBJ(filepath.Join(models, "sphere.obj"), sphere); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("sphere.obj: %d vertices, %d triangles\n", len(sphere.Vertices), len(sphere.Triangles))

	ship := dart()
	if err := writeOBJ(filepath.Join(models, "ship.obj"), ship); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("ship.obj: %d vertices, %d triangles\n", len(ship.Vertices), len(ship.Triangles))

	rng := rand.New(rand.NewSource(*seed))
	for _, stem := range skybox.FileStems {
		path := filepath.Join(sky, stem+".webp")
		if err := writeFace(path, starfield(rng, *faceSize, *stars)); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}
	fmt.Printf("skybox: 6 faces %dx%d in %s\n", *faceSize, *faceSize, sky)
}

// dart is a low-poly ship pointing down +Z; the scene turns it by π.
func dart() *mesh.Mesh {
	return &mesh.Mesh{
		Name: "ship",
		Vertices: []mathutil.Vec3{
			{0, 0, 1.6},     // 0 nose
			{-1, 0, -0.8},   // 1 left wing
			{1, 0, -0.8},    // 2 right wing
			{0, 0.35, -0.6}, // 3 dorsal
			{0, -0.2, -0.6}, // 4 belly
			{0, 0.1, -0.9},  // 5 tail
		},
		Triangles: [][3]int{
			{0, 3, 1}, {0, 2, 3},
			{0, 1, 4}, {0, 4, 2},
			{1, 3, 5}, {3, 2, 5},
			{1, 5, 4}, {5, 2, 4},
		},
	}
}

func writeOBJ(path string, m *mesh.Mesh) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := m.WriteOBJ(f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

func starfield(rng *rand.Rand, size, n int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = 2
		img.Pix[i+1] = 2
		img.Pix[i+2] = 8
		img.Pix[i+3] = 255
	}
	for i := 0; i < n; i++ {
		x, y := rng.Intn(size), rng.Intn(size)
		v := uint8(120 + rng.Intn(136))
		tint := rng.Intn(3)
		c := color.NRGBA{v, v, v, 255}
		switch tint {
		case 1:
			c.B = uint8(min(255, int(v)+30))
		case 2:
			c.R = uint8(min(255, int(v)+30))
		}
		img.SetNRGBA(x, y, c)
	}
	return img
}

func writeFace(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
