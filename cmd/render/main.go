package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"solar-renderer/internal/batch"
	"solar-renderer/internal/config"
	"solar-renderer/internal/logging"
	"solar-renderer/internal/scene"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	supersample := flag.Int("ss", 0, "Supersampling factor (default: 1)")
	assetsDir := flag.String("assets", "", "Path to assets directory (default: auto-detect)")
	outputDir := flag.String("output", "", "Output directory (default: out)")
	animated := flag.Bool("animated", false, "Write one animated WebP instead of stills")
	noSkybox := flag.Bool("no-skybox", false, "Skip the skybox pass (black background)")
	noTrails := flag.Bool("no-trails", false, "Do not draw orbit trails")
	noHUD := flag.Bool("no-hud", false, "Do not draw the frame label")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error")

	flag.Parse()

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		AssetsDir:   *assetsDir,
		OutputDir:   *outputDir,
		Frames:      *frames,
		Workers:     *workers,
		Supersample: *supersample,
		Animated:    *animated,
		NoSkybox:    *noSkybox,
		NoTrails:    *noTrails,
		NoHUD:       *noHUD,
		LogLevel:    *logLevel,
	})

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nUse -assets or config.json.\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Load meshes and skybox
	assets, err := scene.LoadAssets(cfg.AssetsDir, cfg.NoSkybox, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Meshes: sphere %d tris, ship %d tris\n", len(assets.Sphere.Triangles), len(assets.Ship.Triangles))
	if assets.Skybox == nil {
		fmt.Println("Skybox: disabled")
	}

	// Print summary
	mode := "stills"
	if cfg.Animated {
		mode = "animated"
	}
	fmt.Printf("Solar system software renderer → WebP (%s)\n", mode)
	fmt.Printf("Frames: %d @ %d fps, Workers: %d\n", cfg.Frames, cfg.FPS, cfg.Workers)
	fmt.Printf("Render: %dx%d ×%d → %dx%d\n", cfg.RenderWidth, cfg.RenderHeight, cfg.Supersample, cfg.OutputWidth, cfg.OutputHeight)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()

	// Run batch
	batchCfg := batch.Config{
		OutputDir:    cfg.OutputDir,
		RenderWidth:  cfg.RenderWidth,
		RenderHeight: cfg.RenderHeight,
		OutputWidth:  cfg.OutputWidth,
		OutputHeight: cfg.OutputHeight,
		Supersample:  cfg.Supersample,
		FOV:          cfg.FOV,
		Frames:       cfg.Frames,
		FPS:          cfg.FPS,
		Workers:      cfg.Workers,
		Animated:     cfg.Animated,
		Trails:       !cfg.NoTrails,
		HUD:          !cfg.NoHUD,
		Progress: func(done, total int, rate float64) {
			fmt.Printf("  [%d/%d] %.1f frames/sec\n", done, total, rate)
		},
	}

	results, err := batch.Run(ctx, batchCfg, scene.SolarSystem(), assets, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	tris, skipped := 0, 0
	for _, r := range results {
		tris += r.Triangles
		skipped += r.Skipped
	}
	fmt.Printf("Rendered: %d frames, %d triangles", len(results), tris)
	if skipped > 0 {
		fmt.Printf(" (%d skipped)", skipped)
	}
	fmt.Println()

	// Write manifest
	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	if err := batch.WriteManifest(manifestPath, batchCfg, results); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}
}
