package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and render settings.
type Config struct {
	// Paths
	AssetsDir string `json:"assets_dir"`
	OutputDir string `json:"output_dir"`

	// Render settings
	RenderWidth  int     `json:"render_width"`
	RenderHeight int     `json:"render_height"`
	OutputWidth  int     `json:"output_width"`
	OutputHeight int     `json:"output_height"`
	Supersample  int     `json:"supersample"`
	FOV          float64 `json:"fov"`

	// Sequence settings
	Frames   int  `json:"frames"`
	FPS      int  `json:"fps"`
	Workers  int  `json:"workers"`
	Animated bool `json:"animated"`
	NoSkybox bool `json:"no_skybox"`
	NoTrails bool `json:"no_trails"`
	NoHUD    bool `json:"no_hud"`

	LogLevel string `json:"log_level"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies CLI overrides and fills any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.AssetsDir != "" {
		c.AssetsDir = flags.AssetsDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Animated {
		c.Animated = true
	}
	if flags.NoSkybox {
		c.NoSkybox = true
	}
	if flags.NoTrails {
		c.NoTrails = true
	}
	if flags.NoHUD {
		c.NoHUD = true
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	// Auto-detect the assets dir if still empty
	if c.AssetsDir == "" {
		c.AssetsDir = detectAssetsDir()
	}
	if c.OutputDir == "" {
		c.OutputDir = "out"
	}

	// Defaults for render settings
	if c.RenderWidth <= 0 || c.RenderHeight <= 0 {
		c.RenderWidth, c.RenderHeight = 640, 360
	}
	if c.OutputWidth <= 0 || c.OutputHeight <= 0 {
		c.OutputWidth, c.OutputHeight = 1280, 720
	}
	if c.Supersample <= 0 {
		c.Supersample = 1
	}
	if c.FOV <= 0 {
		c.FOV = 60
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.FPS <= 0 {
		c.FPS = 30
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

// Validate rejects settings Resolve cannot repair.
func (c *Config) Validate() error {
	var errs []error
	if c.FOV >= 180 {
		errs = append(errs, fmt.Errorf("config: fov %.1f must be below 180", c.FOV))
	}
	if c.Supersample > 8 {
		errs = append(errs, fmt.Errorf("config: supersample %d exceeds 8", c.Supersample))
	}
	if c.AssetsDir == "" {
		errs = append(errs, errors.New("config: no assets directory found"))
	}
	return errors.Join(errs...)
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	AssetsDir   string
	OutputDir   string
	Frames      int
	Workers     int
	Supersample int
	Animated    bool
	NoSkybox    bool
	NoTrails    bool
	NoHUD       bool
	LogLevel    string
}

// detectAssetsDir looks for assets/models next to the executable, then in
// the working directory and its parent.
func detectAssetsDir() string {
	var bases []string
	if exe, _ := os.Executable(); exe != "" {
		dir := filepath.Dir(exe)
		bases = append(bases, dir, filepath.Dir(dir))
	}
	if cwd, _ := os.Getwd(); cwd != "" {
		bases = append(bases, cwd, filepath.Dir(cwd))
	}

	for _, base := range bases {
		candidate := filepath.Join(base, "assets")
		if _, err := os.Stat(filepath.Join(candidate, "models")); err == nil {
			return candidate
		}
	}
	return ""
}
