package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contactsheet/gridcell/pkg/cropper"
	"github.com/contactsheet/gridcell/pkg/grid"
)

// Config holds the application configuration.
type Config struct {
	Server    ServerConfig    `json:"server"`
	Output    OutputConfig    `json:"output"`
	Detection DetectionConfig `json:"detection"`
}

// ServerConfig holds configuration for the HTTP server.
type ServerConfig struct {
	Addr            string `json:"addr"`
	ShutdownTimeout int    `json:"shutdown_timeout_seconds"`
}

// OutputConfig holds configuration for crop output encoding.
type OutputConfig struct {
	Quality  int  `json:"quality"`
	Lossless bool `json:"lossless"`
}

// DetectionConfig holds the grid detection thresholds.
type DetectionConfig struct {
	BorderBrightness   int     `json:"border_brightness"`
	BorderFraction     float64 `json:"border_fraction"`
	BorderMaxFraction  float64 `json:"border_max_fraction"`
	BorderLookahead    int     `json:"border_lookahead"`
	BorderProbes       int     `json:"border_probes"`
	GutterBrightness   int     `json:"gutter_brightness"`
	MinGutterThickness int     `json:"min_gutter_thickness"`
	EdgeGuard          int     `json:"edge_guard"`
	TrimBrightness     int     `json:"trim_brightness"`
	TrimFraction       float64 `json:"trim_fraction"`
	TrimFloor          int     `json:"trim_floor"`
	MinCropSize        int     `json:"min_crop_size"`
	EdgeInset          int     `json:"edge_inset"`
}

// Default returns a configuration with default values.
func Default() *Config {
	g := grid.DefaultConfig()
	c := cropper.DefaultConfig()
	return &Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ShutdownTimeout: 10,
		},
		Output: OutputConfig{
			Quality:  c.Quality,
			Lossless: c.Lossless,
		},
		Detection: DetectionConfig{
			BorderBrightness:   int(g.BorderBrightness),
			BorderFraction:     g.BorderFraction,
			BorderMaxFraction:  g.BorderMaxFraction,
			BorderLookahead:    g.BorderLookahead,
			BorderProbes:       g.BorderProbes,
			GutterBrightness:   int(g.GutterBrightness),
			MinGutterThickness: g.MinGutterThickness,
			EdgeGuard:          g.EdgeGuard,
			TrimBrightness:     int(g.TrimBrightness),
			TrimFraction:       g.TrimFraction,
			TrimFloor:          g.TrimFloor,
			MinCropSize:        c.MinSize,
			EdgeInset:          c.EdgeInset,
		},
	}
}

// LoadFromFile loads configuration from a JSON file.
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return config, nil
}

// SaveToFile saves configuration to a JSON file.
func (c *Config) SaveToFile(filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr cannot be empty")
	}

	if c.Output.Quality < 1 || c.Output.Quality > 100 {
		return fmt.Errorf("output.quality must be between 1 and 100")
	}

	d := c.Detection
	for name, v := range map[string]int{
		"detection.border_brightness": d.BorderBrightness,
		"detection.gutter_brightness": d.GutterBrightness,
		"detection.trim_brightness":   d.TrimBrightness,
	} {
		if v < 0 || v > 255 {
			return fmt.Errorf("%s must be between 0 and 255", name)
		}
	}

	for name, v := range map[string]float64{
		"detection.border_fraction":     d.BorderFraction,
		"detection.border_max_fraction": d.BorderMaxFraction,
		"detection.trim_fraction":       d.TrimFraction,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%s must be between 0 and 1", name)
		}
	}

	if d.MinGutterThickness < 1 {
		return fmt.Errorf("detection.min_gutter_thickness must be positive")
	}

	if d.MinCropSize < 1 {
		return fmt.Errorf("detection.min_crop_size must be positive")
	}

	return nil
}

// Grid converts the detection settings to a grid.Config.
func (c *Config) Grid() grid.Config {
	d := c.Detection
	return grid.Config{
		BorderBrightness:   uint8(d.BorderBrightness),
		BorderFraction:     d.BorderFraction,
		BorderMaxFraction:  d.BorderMaxFraction,
		BorderLookahead:    d.BorderLookahead,
		BorderProbes:       d.BorderProbes,
		GutterBrightness:   uint8(d.GutterBrightness),
		MinGutterThickness: d.MinGutterThickness,
		EdgeGuard:          d.EdgeGuard,
		TrimBrightness:     uint8(d.TrimBrightness),
		TrimFraction:       d.TrimFraction,
		TrimFloor:          d.TrimFloor,
	}
}

// Cropper converts the output settings to a cropper.Config.
func (c *Config) Cropper() cropper.Config {
	return cropper.Config{
		Quality:   c.Output.Quality,
		Lossless:  c.Output.Lossless,
		MinSize:   c.Detection.MinCropSize,
		EdgeInset: c.Detection.EdgeInset,
	}
}

// GetConfigPath returns the default configuration file path.
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "gridcell", "config.json")
}
