package raster

import (
	"image"
	"math"
)

// Vertex is a screen-space vertex: pixel coordinates, view-space depth, and
// texture coordinates.
type Vertex struct {
	X, Y  float64
	Depth float32
	U, V  float64
}

// FillTriangle rasterizes one triangle with z-buffering, optional bilinear
// texturing, sRGB-correct shading, and ACES tone mapping. The shade scalar
// is flat per face and computed by the caller from the transformed normal.
//
// This is the hot path; the pixel loop does not allocate.
func FillTriangle(
	fb *FrameBuffer,
	v0, v1, v2 Vertex,
	tex *image.NRGBA,
	baseR, baseG, baseB, baseA uint8,
	shade float64,
	lc *LightConfig,
) {
	// Bounding box clipped to the framebuffer
	minX := int(math.Min(math.Min(v0.X, v1.X), v2.X))
	maxX := int(math.Max(math.Max(v0.X, v1.X), v2.X)) + 1
	minY := int(math.Min(math.Min(v0.Y, v1.Y), v2.Y))
	maxY := int(math.Max(math.Max(v0.Y, v1.Y), v2.Y)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	// Barycentric setup
	det := (v1.Y-v2.Y)*(v0.X-v2.X) + (v2.X-v1.X)*(v0.Y-v2.Y)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := v1.Y - v2.Y
	dx21 := v2.X - v1.X
	dy20 := v2.Y - v0.Y
	dx02 := v0.X - v2.X

	hasUV := tex != nil
	exposure := lc.Exposure
	invGamma := lc.InvGamma

	for sy := minY; sy <= maxY; sy++ {
		dsy := float64(sy) - v2.Y
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) - v2.X
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := float32(w0)*v0.Depth + float32(w1)*v1.Depth + float32(w2)*v2.Depth
			zIdx := rowOff + sx
			if z <= fb.Depth[zIdx] {
				continue
			}

			cr, cg, cb, ca := baseR, baseG, baseB, baseA
			if hasUV {
				u := w0*v0.U + w1*v1.U + w2*v2.U
				v := w0*v0.V + w1*v1.V + w2*v2.V
				cr, cg, cb, ca = SampleTexture(tex, u, v)
			}

			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.Depth[zIdx] = z

			// sRGB decode (LUT), shade, tonemap, re-encode
			sr := ACESTonemap(srgbToLinear[cr] * shade * exposure)
			sg := ACESTonemap(srgbToLinear[cg] * shade * exposure)
			sb := ACESTonemap(srgbToLinear[cb] * shade * exposure)

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = clamp255(math.Pow(sr, invGamma) * 255)
			fb.Color[pxIdx+1] = clamp255(math.Pow(sg, invGamma) * 255)
			fb.Color[pxIdx+2] = clamp255(math.Pow(sb, invGamma) * 255)
			fb.Color[pxIdx+3] = ca
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
