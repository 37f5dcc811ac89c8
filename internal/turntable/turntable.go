// Package turntable renders a rotating preview of a scene to per-frame WebP
// files using a worker pool.
package turntable

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"

	polimath "github.com/cszach/poli-math"
	"github.com/cszach/poli-math/internal/postprocess"
	"github.com/cszach/poli-math/internal/raster"
)

// Options holds shared settings for a turntable run.
type Options struct {
	OutputDir   string
	Size        int
	Supersample int
	Frames      int
	Workers     int
	Order       polimath.RotationOrder
	Tilt        float32 // constant X tilt in radians applied every frame
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Frame   int
	Path    string
	Success bool
	Error   string
}

// FrameRotation returns the Euler angles for frame i of n: a full turn
// around Y plus the constant tilt, in the configured order.
func FrameRotation(opts Options, i int) polimath.Euler {
	return polimath.Euler{
		X:     opts.Tilt,
		Y:     float32(2 * math.Pi * float64(i) / float64(opts.Frames)),
		Z:     0,
		Order: opts.Order,
	}
}

// Run renders all frames using a worker pool and reports per-frame results.
func Run(opts Options, meshes []*raster.Mesh, tex *image.NRGBA) []Result {
	total := opts.Frames
	results := make([]Result, total)
	var rendered atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	go func() {
		ticker := time.NewTicker(2 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				n := rendered.Load()
				if n > 0 {
					elapsed := time.Since(start).Seconds()
					fmt.Printf("  [%d/%d] %.1f frames/sec\n", n, total, float64(n)/elapsed)
				}
			}
		}
	}()

	// Worker pool
	frameChan := make(chan int, opts.Workers*2)
	var wg sync.WaitGroup

	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range frameChan {
				results[i] = renderFrame(opts, meshes, tex, i)
				rendered.Add(1)
			}
		}()
	}

	for i := 0; i < total; i++ {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()
	close(done)

	return results
}

func renderFrame(opts Options, meshes []*raster.Mesh, tex *image.NRGBA, i int) Result {
	// Author the frame's rotation as Euler angles, compose through a
	// quaternion into the model matrix.
	e := FrameRotation(opts, i)
	q := polimath.QuaternionFromEuler(e)
	model := polimath.Compose(polimath.Vector3{}, q, polimath.Vector3{X: 1, Y: 1, Z: 1})

	img := raster.Render(meshes, model, raster.DefaultCamera(), tex, opts.Size, opts.Supersample)
	if opts.Supersample > 1 {
		img = postprocess.Downsample(img, opts.Size)
	}

	path := filepath.Join(opts.OutputDir, fmt.Sprintf("frame_%03d.webp", i))
	f, err := os.Create(path)
	if err != nil {
		return Result{Frame: i, Path: path, Error: err.Error()}
	}
	defer f.Close()

	if err := nativewebp.Encode(f, img, nil); err != nil {
		return Result{Frame: i, Path: path, Error: fmt.Sprintf("WebP encode: %v", err)}
	}

	return Result{Frame: i, Path: path, Success: true}
}
