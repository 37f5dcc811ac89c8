package texture

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "github.com/ftrvxmtrx/tga"
)

// Load reads a TGA, PNG, or JPEG file and returns an NRGBA image. The
// format is sniffed from the file contents, not the extension.
func Load(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return toNRGBA(img), nil
}

// toNRGBA converts any image to NRGBA format.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(b)

	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		// No alpha channel in the source; draw and force alpha to 255.
		draw.Draw(dst, b, src, b.Min, draw.Src)
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				dst.Pix[dst.PixOffset(x, y)+3] = 255
			}
		}
	default:
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				c := color.NRGBAModel.Convert(src.At(x, y)).(color.NRGBA)
				i := dst.PixOffset(x, y)
				dst.Pix[i] = c.R
				dst.Pix[i+1] = c.G
				dst.Pix[i+2] = c.B
				dst.Pix[i+3] = c.A
			}
		}
	}
	return dst
}
