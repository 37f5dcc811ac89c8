package raster

import (
	"math"

	polimath "github.com/cszach/poli-math"
)

// LightConfig holds precomputed lighting parameters for the preview shader.
type LightConfig struct {
	LightDir polimath.Vector3
	RimDir   polimath.Vector3
	ViewDir  polimath.Vector3
	HalfMain polimath.Vector3 // precomputed half-vector for Blinn-Phong
	Ambient  float64
	Hemi     float64
	Direct   float64
	Rim      float64
	SpecInt  float64
	SpecPow  float64
	Exposure float64
	InvGamma float64
}

// DefaultLightConfig returns the standard three-light preview setup: one key
// light, one rim light, and a hemisphere fill.
func DefaultLightConfig() LightConfig {
	lightDir := polimath.Vector3{X: 180, Y: 260, Z: 140}.Normalized()
	rimDir := polimath.Vector3{X: -160, Y: 130, Z: -210}.Normalized()
	viewDir := polimath.Vector3{X: 0, Y: -110, Z: -400}.Normalized()

	halfMain := lightDir.Sub(viewDir).Normalized()

	return LightConfig{
		LightDir: lightDir,
		RimDir:   rimDir,
		ViewDir:  viewDir,
		HalfMain: halfMain,
		Ambient:  0.55,
		Hemi:     0.50,
		Direct:   1.50,
		Rim:      0.60,
		SpecInt:  0.45,
		SpecPow:  12.0,
		Exposure: 1.05,
		InvGamma: 1.0 / 2.2,
	}
}

// ComputeShade returns the combined lighting scalar for a unit face normal.
func (lc *LightConfig) ComputeShade(normal polimath.Vector3) float64 {
	// Lambertian (abs for double-sided)
	ndlMain := math.Abs(float64(normal.Dot(lc.LightDir)))
	ndlRim := math.Abs(float64(normal.Dot(lc.RimDir)))

	// Hemisphere fill
	hemi := (1.0-math.Abs(float64(normal.Y)))*0.5 + 0.5
	hemiLight := hemi * lc.Hemi

	// Blinn-Phong specular
	ndh := float64(normal.Dot(lc.HalfMain))
	if ndh < 0 {
		ndh = 0
	}
	spec := math.Pow(ndh, lc.SpecPow) * lc.SpecInt

	return lc.Ambient + hemiLight + ndlMain*lc.Direct + ndlRim*lc.Rim + spec
}

// Precomputed sRGB-to-linear lookup table (256 entries).
var srgbToLinear [256]float64

func init() {
	for i := 0; i < 256; i++ {
		srgbToLinear[i] = math.Pow(float64(i)/255.0, 2.2)
	}
}

// ACESTonemap applies ACES Filmic tone mapping to a linear value.
func ACESTonemap(x float64) float64 {
	return (x * (2.51*x + 0.03)) / (x*(2.43*x+0.59) + 0.14)
}
