package raster

import "image"

// SampleTexture performs bilinear filtering with UV wrapping and returns
// RGBA as uint8. Reads tex.Pix directly; called per pixel from the triangle
// fill loop.
func SampleTexture(tex *image.NRGBA, u, v float64) (r, g, b, a uint8) {
	w := tex.Rect.Dx()
	h := tex.Rect.Dy()

	u = wrap01(u)
	v = wrap01(v)

	fx := u * float64(w-1)
	fy := v * float64(h-1)
	x0, y0 := int(fx), int(fy)
	x1, y1 := (x0+1)%w, (y0+1)%h
	dx := fx - float64(x0)
	dy := fy - float64(y0)

	pix := tex.Pix
	top := y0 * tex.Stride
	bot := y1 * tex.Stride

	var out [4]uint8
	for c := 0; c < 4; c++ {
		// Lerp across x on both rows, then across y.
		t := float64(pix[top+x0*4+c]) + (float64(pix[top+x1*4+c])-float64(pix[top+x0*4+c]))*dx
		b := float64(pix[bot+x0*4+c]) + (float64(pix[bot+x1*4+c])-float64(pix[bot+x0*4+c]))*dx
		out[c] = uint8(t + (b-t)*dy + 0.5)
	}
	return out[0], out[1], out[2], out[3]
}

func wrap01(u float64) float64 {
	u = u - float64(int(u))
	if u < 0 {
		u += 1.0
	}
	return u
}
