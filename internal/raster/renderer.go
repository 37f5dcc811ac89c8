package raster

import (
	"image"
	"math"

	polimath "github.com/cszach/poli-math"
)

// Camera describes the preview viewpoint.
type Camera struct {
	Eye    polimath.Vector3
	Target polimath.Vector3
	Up     polimath.Vector3
}

// DefaultCamera returns the standard three-quarter preview viewpoint.
func DefaultCamera() Camera {
	return Camera{
		Eye:    polimath.Vector3{X: 1.6, Y: 1.2, Z: 2.4},
		Target: polimath.Vector3{},
		Up:     polimath.Vector3{Y: 1},
	}
}

// ViewMatrix returns the world-to-view transform: the inverse of the
// camera's look-at orientation followed by the eye translation.
func (c Camera) ViewMatrix() polimath.Matrix4 {
	orient := polimath.LookAt(c.Eye, c.Target, c.Up)
	return orient.Inverse().Mul(polimath.Matrix4FromTranslation(c.Eye.Neg()))
}

// Render draws the meshes under the given model transform into an NRGBA
// image using an orthographic fit-to-frame projection. Vertices run through
// the model-view matrix; face normals run through the normal matrix (the
// adjugate of the model-view top-left 3x3) so lighting stays correct under
// non-uniform scale and shear.
func Render(
	meshes []*Mesh,
	model polimath.Matrix4,
	cam Camera,
	tex *image.NRGBA,
	size int,
	supersample int,
) *image.NRGBA {
	renderSize := size * supersample

	mv := cam.ViewMatrix().Mul(model)
	normalM := polimath.NormalMatrix(mv)

	// Transform all vertices to view space and find the XY extent.
	viewPos := make([][]polimath.Vector3, len(meshes))
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for mi, m := range meshes {
		vp := make([]polimath.Vector3, len(m.Positions))
		for i, p := range m.Positions {
			v := mv.MulPoint(p)
			vp[i] = v
			minX = math.Min(minX, float64(v.X))
			maxX = math.Max(maxX, float64(v.X))
			minY = math.Min(minY, float64(v.Y))
			maxY = math.Max(maxY, float64(v.Y))
		}
		viewPos[mi] = vp
	}

	if len(meshes) == 0 || minX > maxX {
		return image.NewNRGBA(image.Rect(0, 0, size, size))
	}

	cx := (minX + maxX) / 2
	cy := (minY + maxY) / 2
	span := math.Max(maxX-minX, maxY-minY)
	if span < 0.001 {
		span = 0.001
	}

	// Margin grows with supersampling so the downsampled frame keeps the
	// same border. Clamp it so small frames keep a usable viewport.
	margin := 16 * supersample
	if margin > renderSize/4 {
		margin = renderSize / 4
	}
	scale := float64(renderSize-2*margin) / span
	half := float64(renderSize) / 2

	fb := NewFrameBuffer(renderSize, renderSize)
	lc := DefaultLightConfig()

	for mi, m := range meshes {
		vp := viewPos[mi]

		var meshTex *image.NRGBA
		if m.Textured {
			meshTex = tex
		}
		baseR, baseG, baseB, baseA := m.Base.RGBA8()

		for _, tri := range m.Tris {
			p0, p1, p2 := m.Positions[tri.V[0]], m.Positions[tri.V[1]], m.Positions[tri.V[2]]

			// Flat shading: object-space face normal corrected by the
			// normal matrix.
			n := p1.Sub(p0).Cross(p2.Sub(p0))
			n = normalM.MulVector3(n)
			if n.Length() < 1e-8 {
				continue
			}
			shade := lc.ComputeShade(n.Normalized())

			verts := [3]Vertex{}
			for k, vi := range tri.V {
				v := vp[vi]
				verts[k] = Vertex{
					X:     half + (float64(v.X)-cx)*scale,
					Y:     half - (float64(v.Y)-cy)*scale,
					Depth: v.Z,
					U:     float64(m.UVs[tri.T[k]][0]),
					V:     float64(m.UVs[tri.T[k]][1]),
				}
			}

			FillTriangle(fb, verts[0], verts[1], verts[2], meshTex,
				baseR, baseG, baseB, baseA, shade, &lc)
		}
	}

	img := image.NewNRGBA(image.Rect(0, 0, renderSize, renderSize))
	copy(img.Pix, fb.Color)
	return img
}
