package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"

	polimath "github.com/cszach/poli-math"
)

// Config holds all configurable preview settings.
type Config struct {
	OutputDir   string `json:"output_dir"`
	Texture     string `json:"texture"`
	Size        int    `json:"size"`
	Supersample int    `json:"supersample"`
	Frames      int    `json:"frames"`
	Workers     int    `json:"workers"`
	Order       string `json:"rotation_order"`
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

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	OutputDir string
	Texture   string
	Size      int
	Frames    int
	Workers   int
	Order     string
}

// Resolve applies CLI flag overrides and fills any remaining empty fields
// with defaults.
func (c *Config) Resolve(flags Flags) {
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Texture != "" {
		c.Texture = flags.Texture
	}
	if flags.Size > 0 {
		c.Size = flags.Size
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Order != "" {
		c.Order = flags.Order
	}

	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Size <= 0 {
		c.Size = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 36
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Order == "" {
		c.Order = "XYZ"
	}
}

// RotationOrder parses the configured order name.
func (c *Config) RotationOrder() (polimath.RotationOrder, error) {
	switch strings.ToUpper(c.Order) {
	case "XYZ":
		return polimath.OrderXYZ, nil
	case "XZY":
		return polimath.OrderXZY, nil
	case "YXZ":
		return polimath.OrderYXZ, nil
	case "YZX":
		return polimath.OrderYZX, nil
	case "ZXY":
		return polimath.OrderZXY, nil
	case "ZYX":
		return polimath.OrderZYX, nil
	}
	return polimath.OrderXYZ, fmt.Errorf("config: unknown rotation order %q", c.Order)
}
