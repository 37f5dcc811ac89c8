package main

import (
	"flag"
	"fmt"
	"image"
	"os"

	polimath "github.com/cszach/poli-math"
	"github.com/cszach/poli-math/internal/config"
	"github.com/cszach/poli-math/internal/raster"
	"github.com/cszach/poli-math/internal/texture"
	"github.com/cszach/poli-math/internal/turntable"
)

func main() {
	configFile := flag.String("config", "", "Path to config.json file")
	outputDir := flag.String("output", "", "Output directory (default: frames)")
	texPath := flag.String("texture", "", "Optional TGA/PNG/JPEG texture for the cube")
	size := flag.Int("size", 0, "Frame size in pixels (default: 256)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 36)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	order := flag.String("order", "", "Euler rotation order: XYZ XZY YXZ YZX ZXY ZYX (default: XYZ)")

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
	cfg.Resolve(config.Flags{
		OutputDir: *outputDir,
		Texture:   *texPath,
		Size:      *size,
		Frames:    *frames,
		Workers:   *workers,
		Order:     *order,
	})

	rotOrder, err := cfg.RotationOrder()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	var tex *image.NRGBA
	if cfg.Texture != "" {
		tex, err = texture.Load(cfg.Texture)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	// Demo scene: a cube over a ground plane. The cube takes the texture
	// when one is given.
	cube := raster.NewCube(polimath.Color{R: 0.63, G: 0.63, B: 0.67})
	cube.Textured = tex != nil
	ground := raster.NewGroundPlane(-0.8, 2.5, polimath.Color{R: 0.22, G: 0.24, B: 0.28})

	opts := turntable.Options{
		OutputDir:   cfg.OutputDir,
		Size:        cfg.Size,
		Supersample: cfg.Supersample,
		Frames:      cfg.Frames,
		Workers:     cfg.Workers,
		Order:       rotOrder,
		Tilt:        0.3,
	}

	fmt.Printf("Rendering %d frames (%s order, %dx%d) to %s\n",
		opts.Frames, opts.Order, cfg.Size, cfg.Size, cfg.OutputDir)

	results := turntable.Run(opts, []*raster.Mesh{cube, ground}, tex)

	ok := 0
	for _, r := range results {
		if r.Success {
			ok++
		} else {
			fmt.Fprintf(os.Stderr, "  frame %d failed: %s\n", r.Frame, r.Error)
		}
	}
	fmt.Printf("Done: %d/%d frames\n", ok, len(results))
	if ok != len(results) {
		os.Exit(1)
	}
}
