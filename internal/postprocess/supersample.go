package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces image size with premultiplied-alpha-aware CatmullRom
// filtering. Premultiplying first prevents dark halo artifacts at
// transparent edges.
func Downsample(img *image.NRGBA, targetSize int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= targetSize && b.Dy() <= targetSize {
		return img
	}

	premul := premultiply(img)

	dst := image.NewRGBA(image.Rect(0, 0, targetSize, targetSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), draw.Src, nil)

	return unpremultiply(dst)
}

func premultiply(img *image.NRGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := float64(img.Pix[si+3]) / 255.0
			out.Pix[di] = uint8(float64(img.Pix[si])*a + 0.5)
			out.Pix[di+1] = uint8(float64(img.Pix[si+1])*a + 0.5)
			out.Pix[di+2] = uint8(float64(img.Pix[si+2])*a + 0.5)
			out.Pix[di+3] = img.Pix[si+3]
		}
	}
	return out
}

func unpremultiply(img *image.RGBA) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := img.PixOffset(x, y)
			di := out.PixOffset(x, y)
			a := float64(img.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				out.Pix[di] = clamp8(float64(img.Pix[si]) * inv)
				out.Pix[di+1] = clamp8(float64(img.Pix[si+1]) * inv)
				out.Pix[di+2] = clamp8(float64(img.Pix[si+2]) * inv)
			}
			out.Pix[di+3] = img.Pix[si+3]
		}
	}
	return out
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
