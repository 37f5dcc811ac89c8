package postprocess

import (
	"image"
	"testing"
)

func TestDownsampleSize(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 128, 128))
	for i := range src.Pix {
		src.Pix[i] = 200
	}

	dst := Downsample(src, 64)
	if dst.Bounds().Dx() != 64 || dst.Bounds().Dy() != 64 {
		t.Errorf("bounds: got %v", dst.Bounds())
	}

	// A uniform opaque image stays (approximately) uniform.
	for i := 0; i < len(dst.Pix); i += 4 {
		for c := 0; c < 4; c++ {
			v := int(dst.Pix[i+c])
			if v < 198 || v > 202 {
				t.Fatalf("pixel %d channel %d: got %d", i/4, c, v)
			}
		}
	}
}

func TestDownsampleNoOpWhenSmall(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 32, 32))
	if got := Downsample(src, 64); got != src {
		t.Error("small image should pass through unchanged")
	}
}

func TestDownsampleTransparentStaysTransparent(t *testing.T) {
	// Fully transparent but brightly colored pixels must not bleed color
	// into the result; the premultiply step zeroes them out.
	src := image.NewNRGBA(image.Rect(0, 0, 64, 64))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i] = 255
		src.Pix[i+3] = 0
	}

	dst := Downsample(src, 32)
	for i := 0; i < len(dst.Pix); i += 4 {
		if dst.Pix[i+3] != 0 {
			t.Fatalf("pixel %d: alpha %d, want 0", i/4, dst.Pix[i+3])
		}
		if dst.Pix[i] != 0 {
			t.Fatalf("pixel %d: red %d bled through transparency", i/4, dst.Pix[i])
		}
	}
}
