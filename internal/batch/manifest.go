package batch

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest describes a finished sequence.
type Manifest struct {
	Width    int             `json:"width"`
	Height   int             `json:"height"`
	FPS      int             `json:"fps"`
	Animated bool            `json:"animated"`
	Frames   []ManifestEntry `json:"frames"`
}

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index     int     `json:"index"`
	Time      float64 `json:"time"`
	Image     string  `json:"image"`
	Triangles int     `json:"triangles"`
	Skipped   int     `json:"skipped,omitempty"`
}

// WriteManifest writes manifest.json describing results.
func WriteManifest(path string, cfg Config, results []Result) error {
	m := Manifest{
		Width:    cfg.OutputWidth,
		Height:   cfg.OutputHeight,
		FPS:      cfg.FPS,
		Animated: cfg.Animated,
		Frames:   make([]ManifestEntry, len(results)),
	}
	for i, r := range results {
		m.Frames[i] = ManifestEntry{
			Index:     r.Index,
			Time:      r.Time,
			Image:     r.Image,
			Triangles: r.Triangles,
			Skipped:   r.Skipped,
		}
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("batch: manifest: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}
