package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"solar-renderer/internal/config"
	"solar-renderer/internal/logging"
	"solar-renderer/internal/scene"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	assetsDir := flag.String("assets", "", "Path to assets directory (default: auto-detect)")
	noSkybox := flag.Bool("no-skybox", false, "Skip the skybox pass (black background)")
	logLevel := flag.String("log", "", "Log level: debug, info, warn, error")
	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{AssetsDir: *assetsDir, NoSkybox: *noSkybox, LogLevel: *logLevel})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	assets, err := scene.LoadAssets(cfg.AssetsDir, cfg.NoSkybox, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		os.Exit(1)
	}

	g := newGame(scene.SolarSystem(), assets, cfg, logger)

	ebiten.SetWindowTitle("Solar system (software renderer)")
	ebiten.SetWindowSize(cfg.OutputWidth, cfg.OutputHeight)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
