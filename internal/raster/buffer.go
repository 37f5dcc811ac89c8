package raster

import "math"

// FrameBuffer holds the render target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float32 // view-space depth per pixel, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and a -inf depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	depth := make([]float32, n)
	negInf := float32(math.Inf(-1))
	for i := range depth {
		depth[i] = negInf
	}
	return &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		Depth:  depth,
	}
}
