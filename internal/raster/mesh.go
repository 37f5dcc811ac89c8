package raster

import (
	polimath "github.com/cszach/poli-math"
)

// Mesh is a triangle mesh in object space.
type Mesh struct {
	Positions []polimath.Vector3
	UVs       [][2]float32
	Tris      []Triangle
	Base      polimath.Color // flat color used when no texture is bound
	Textured  bool
}

// Triangle indexes three positions and three UVs.
type Triangle struct {
	V [3]int
	T [3]int
}

// NewCube returns a unit cube centered on the origin with per-face UVs.
func NewCube(base polimath.Color) *Mesh {
	h := float32(0.5)

	// 8 corners, duplicated per face so each face gets its own UVs.
	corners := [8]polimath.Vector3{
		{X: -h, Y: -h, Z: -h},
		{X: h, Y: -h, Z: -h},
		{X: h, Y: h, Z: -h},
		{X: -h, Y: h, Z: -h},
		{X: -h, Y: -h, Z: h},
		{X: h, Y: -h, Z: h},
		{X: h, Y: h, Z: h},
		{X: -h, Y: h, Z: h},
	}

	faces := [6][4]int{
		{4, 5, 6, 7}, // +z
		{1, 0, 3, 2}, // -z
		{5, 1, 2, 6}, // +x
		{0, 4, 7, 3}, // -x
		{7, 6, 2, 3}, // +y
		{0, 1, 5, 4}, // -y
	}

	m := &Mesh{Base: base}
	for _, f := range faces {
		i := len(m.Positions)
		for _, c := range f {
			m.Positions = append(m.Positions, corners[c])
		}
		m.UVs = append(m.UVs,
			[2]float32{0, 1}, [2]float32{1, 1}, [2]float32{1, 0}, [2]float32{0, 0})

		m.Tris = append(m.Tris,
			Triangle{V: [3]int{i, i + 1, i + 2}, T: [3]int{i, i + 1, i + 2}},
			Triangle{V: [3]int{i, i + 2, i + 3}, T: [3]int{i, i + 2, i + 3}},
		)
	}
	return m
}

// NewGroundPlane returns a quad in the XZ plane at the given height, sized
// extent in each direction.
func NewGroundPlane(y, extent float32, base polimath.Color) *Mesh {
	m := &Mesh{
		Positions: []polimath.Vector3{
			{X: -extent, Y: y, Z: -extent},
			{X: extent, Y: y, Z: -extent},
			{X: extent, Y: y, Z: extent},
			{X: -extent, Y: y, Z: extent},
		},
		UVs: [][2]float32{{0, 0}, {1, 0}, {1, 1}, {0, 1}},
		Tris: []Triangle{
			{V: [3]int{0, 1, 2}, T: [3]int{0, 1, 2}},
			{V: [3]int{0, 2, 3}, T: [3]int{0, 2, 3}},
		},
		Base: base,
	}
	return m
}
