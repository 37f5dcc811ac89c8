package polimath

// Matrix3 is a 3x3 matrix stored as 9 packed float32 in column-major order,
// the layout shading languages expect when the array is uploaded as raw
// bytes. Entry n_{row}{col} lives at index (col-1)*3 + (row-1).
type Matrix3 [9]float32

// NewMatrix3 creates a 3x3 matrix from row-major arguments. The elements are
// stored internally in column-major order.
func NewMatrix3(
	n11, n12, n13,
	n21, n22, n23,
	n31, n32, n33 float32,
) Matrix3 {
	return Matrix3{
		n11, n21, n31,
		n12, n22, n32,
		n13, n23, n33,
	}
}

// Matrix3Identity returns the 3x3 identity matrix.
func Matrix3Identity() Matrix3 {
	return Matrix3{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Matrix3Zero returns the 3x3 zero matrix.
func Matrix3Zero() Matrix3 {
	return Matrix3{}
}

// Matrix3FromMatrix4 returns the top-left 3x3 of the given 4x4 matrix.
func Matrix3FromMatrix4(m Matrix4) Matrix3 {
	return Matrix3{
		m[0], m[1], m[2],
		m[4], m[5], m[6],
		m[8], m[9], m[10],
	}
}

// NormalMatrix returns the matrix that corrects normal vectors for deforms
// such as scaling and skewing in the given transformation matrix.
//
// The normal matrix is the adjugate of the top-left 3x3, not the inverse
// transpose: the adjugate stays valid when the transform is singular and
// skips the determinant division. See
// https://github.com/graphitemaster/normals_revisited.
func NormalMatrix(m Matrix4) Matrix3 {
	return Matrix3FromMatrix4(m).Adjugate()
}

// Set sets the elements of this matrix from row-major arguments.
func (m *Matrix3) Set(
	n11, n12, n13,
	n21, n22, n23,
	n31, n32, n33 float32,
) {
	m[0], m[1], m[2] = n11, n21, n31
	m[3], m[4], m[5] = n12, n22, n32
	m[6], m[7], m[8] = n13, n23, n33
}

// MulVector3 returns M × v.
func (m Matrix3) MulVector3(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[3]*v.Y + m[6]*v.Z,
		Y: m[1]*v.X + m[4]*v.Y + m[7]*v.Z,
		Z: m[2]*v.X + m[5]*v.Y + m[8]*v.Z,
	}
}

// MulScalar returns the matrix with every element multiplied by s.
func (m Matrix3) MulScalar(s float32) Matrix3 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar returns the matrix with every element divided by s.
func (m Matrix3) DivScalar(s float32) Matrix3 {
	for i := range m {
		m[i] /= s
	}
	return m
}

// Determinant returns the determinant of this matrix, by the six-term rule.
func (m Matrix3) Determinant() float32 {
	n11, n21, n31 := m[0], m[1], m[2]
	n12, n22, n32 := m[3], m[4], m[5]
	n13, n23, n33 := m[6], m[7], m[8]

	return n11*n22*n33 + n12*n23*n31 + n13*n21*n32 -
		n11*n23*n32 - n12*n21*n33 - n13*n22*n31
}

// Transpose returns the transpose of this matrix.
func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m[0], m[3], m[6],
		m[1], m[4], m[7],
		m[2], m[5], m[8],
	}
}

// Adjugate returns the adjugate of this matrix, also known as the classical
// adjoint: the transpose of the cofactor matrix, computed in closed form.
func (m Matrix3) Adjugate() Matrix3 {
	n11, n21, n31 := m[0], m[1], m[2]
	n12, n22, n32 := m[3], m[4], m[5]
	n13, n23, n33 := m[6], m[7], m[8]

	return Matrix3{
		n22*n33 - n23*n32,
		n23*n31 - n21*n33,
		n21*n32 - n22*n31,
		n13*n32 - n12*n33,
		n11*n33 - n13*n31,
		n12*n31 - n11*n32,
		n12*n23 - n13*n22,
		n13*n21 - n11*n23,
		n11*n22 - n12*n21,
	}
}

// Inverse returns the inverse of this matrix, computed as adjugate over
// determinant. If the determinant is exactly zero the matrix has no inverse
// and the 3x3 zero matrix is returned as a sentinel; callers on hot paths
// check for the zero matrix instead of handling an error.
func (m Matrix3) Inverse() Matrix3 {
	det := m.Determinant()
	if det == 0 {
		return Matrix3Zero()
	}
	return m.Adjugate().DivScalar(det)
}
