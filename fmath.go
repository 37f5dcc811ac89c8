package polimath

import "math"

// float32 wrappers over the float64 math package. The library stores
// everything as float32 for GPU buffer layout; intermediate trig runs in
// float64 and is truncated once on the way out.

func sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }

func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }

func asin32(x float32) float32 { return float32(math.Asin(float64(x))) }

func atan232(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp1 clamps x to [-1, 1]. Guards asin against arguments that drift
// slightly outside its domain from float rounding.
func clamp1(x float32) float32 {
	if x < -1 {
		return -1
	}
	if x > 1 {
		return 1
	}
	return x
}
