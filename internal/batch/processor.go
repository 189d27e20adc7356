// Package batch renders a time sequence of frames in parallel and writes
// them as WebP files.
package batch

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/sync/errgroup"

	"solar-renderer/internal/logging"
	"solar-renderer/internal/overlay"
	"solar-renderer/internal/pipeline"
	"solar-renderer/internal/postprocess"
	"solar-renderer/internal/raster"
	"solar-renderer/internal/scene"
)

// Config holds all settings for a batch run.
type Config struct {
	OutputDir    string
	RenderWidth  int
	RenderHeight int
	OutputWidth  int
	OutputHeight int
	Supersample  int
	FOV          float64
	Frames       int
	FPS          int
	Workers      int
	Animated     bool
	Trails       bool
	HUD          bool

	// Progress, when set, receives a line every couple of seconds.
	Progress func(done, total int, rate float64)
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index     int
	Time      float64
	Image     string
	Triangles int
	Skipped   int
	Duration  time.Duration
}

// AnimationFile is the output name used when Config.Animated is set.
const AnimationFile = "sequence.webp"

// Run renders frames 0..Frames-1 at t = i/FPS. Each worker owns its own
// Renderer; the scene assets are shared read-only. Stills are written as
// frame_%04d.webp as they finish; an animation is encoded once all frames
// are in. The first failure cancels the remaining frames.
func Run(ctx context.Context, cfg Config, sys *scene.System, assets *scene.Assets, logger *slog.Logger) ([]Result, error) {
	logger = logging.OrNop(logger)
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: create %s: %w", cfg.OutputDir, err)
	}

	total := cfg.Frames
	results := make([]Result, total)
	var frames []*image.RGBA
	if cfg.Animated {
		frames = make([]*image.RGBA, total)
	}

	var processed atomic.Int64
	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	defer close(done)
	if cfg.Progress != nil {
		go func() {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					if p := processed.Load(); p > 0 {
						cfg.Progress(int(p), total, float64(p)/time.Since(start).Seconds())
					}
				}
			}
		}()
	}

	// One renderer per worker slot; a slot is only ever used by one
	// goroutine at a time.
	workers := max(1, min(cfg.Workers, total))
	pool := make(chan *raster.Renderer, workers)
	for w := 0; w < workers; w++ {
		pool <- raster.NewRenderer(cfg.RenderWidth*cfg.Supersample, cfg.RenderHeight*cfg.Supersample, logger)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := 0; i < total; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := <-pool
			defer func() { pool <- r }()

			res, img, err := renderFrame(cfg, sys, assets, r, i)
			if err != nil {
				return err
			}
			results[i] = res
			if cfg.Animated {
				frames[i] = img
			}
			processed.Add(1)
			logger.Debug("frame done", "frame", i, "triangles", res.Triangles, "elapsed", res.Duration)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if cfg.Animated {
		path := filepath.Join(cfg.OutputDir, AnimationFile)
		if err := writeAnimation(path, frames, cfg.FPS); err != nil {
			return nil, err
		}
		for i := range results {
			results[i].Image = AnimationFile
		}
	}

	return results, nil
}

func renderFrame(cfg Config, sys *scene.System, assets *scene.Assets, r *raster.Renderer, i int) (Result, *image.RGBA, error) {
	begin := time.Now()
	t := float64(i) / float64(cfg.FPS)

	cam := sys.CameraAt(t, float64(cfg.RenderWidth)/float64(cfg.RenderHeight))
	cam.FovY = cfg.FOV
	frame := sys.Build(i, t, cam, sys.ShipPosition(t), assets)
	pipeline.Render(r, frame)

	var out *image.RGBA
	if cfg.Supersample > 1 {
		out = postprocess.Downsample(r.FrameBuffer().Image(), cfg.OutputWidth, cfg.OutputHeight)
	} else {
		out = image.NewRGBA(image.Rect(0, 0, cfg.OutputWidth, cfg.OutputHeight))
		r.BlitTo(out)
	}

	if cfg.Trails {
		dt := 1 / float64(cfg.FPS)
		for bi, b := range sys.Bodies {
			if b.OrbitRadius <= 0 {
				continue
			}
			c := color.RGBA{b.Color.R, b.Color.G, b.Color.B, sys.TrailAlpha}
			overlay.DrawTrail(out, r, cam, sys.Trail(bi, t, sys.TrailLen, dt), c)
		}
	}
	if cfg.HUD {
		overlay.TextShadow(out, 8, 6, fmt.Sprintf("frame %04d  t=%.2fs", i, t), scene.White)
	}

	stats := r.Stats()
	res := Result{
		Index:     i,
		Time:      t,
		Triangles: stats.Triangles,
		Skipped:   stats.BadIndex + stats.Unprojected + stats.Degenerate,
	}

	if !cfg.Animated {
		res.Image = fmt.Sprintf("frame_%04d.webp", i)
		if err := writeStill(filepath.Join(cfg.OutputDir, res.Image), out); err != nil {
			return Result{}, nil, err
		}
	}

	res.Duration = time.Since(begin)
	return res, out, nil
}

func writeStill(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return fmt.Errorf("batch: webp encode %s: %w", path, err)
	}
	return f.Close()
}

func writeAnimation(path string, frames []*image.RGBA, fps int) error {
	ani := &nativewebp.Animation{
		Images:    make([]image.Image, len(frames)),
		Durations: make([]uint, len(frames)),
		Disposals: make([]uint, len(frames)),
	}
	delay := uint(1000 / fps)
	for i, img := range frames {
		ani.Images[i] = img
		ani.Durations[i] = delay
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	defer f.Close()

	if err := nativewebp.EncodeAll(f, ani, nil); err != nil {
		return fmt.Errorf("batch: webp encode animation %s: %w", path, err)
	}
	return f.Close()
}
