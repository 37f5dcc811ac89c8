package polimath

// Matrix4 is a 4x4 matrix stored as 16 packed float32 in column-major
// order, commonly used to encode transformations: translation, rotation,
// and scale. Entry n_{row}{col} lives at index (col-1)*4 + (row-1); the
// array uploads to GPU buffers as raw bytes.
type Matrix4 [16]float32

// NewMatrix4 creates a 4x4 matrix from row-major arguments. The elements
// are stored internally in column-major order.
func NewMatrix4(
	n11, n12, n13, n14,
	n21, n22, n23, n24,
	n31, n32, n33, n34,
	n41, n42, n43, n44 float32,
) Matrix4 {
	return Matrix4{
		n11, n21, n31, n41,
		n12, n22, n32, n42,
		n13, n23, n33, n43,
		n14, n24, n34, n44,
	}
}

// Matrix4Identity returns the 4x4 identity matrix.
func Matrix4Identity() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Matrix4Zero returns the 4x4 zero matrix.
func Matrix4Zero() Matrix4 {
	return Matrix4{}
}

// Matrix4FromTranslation returns the translation matrix for the given
// displacement vector.
func Matrix4FromTranslation(v Vector3) Matrix4 {
	return NewMatrix4(
		1, 0, 0, v.X,
		0, 1, 0, v.Y,
		0, 0, 1, v.Z,
		0, 0, 0, 1,
	)
}

// Matrix4FromRotationX returns the rotation matrix around the X axis by the
// given angle in radians.
func Matrix4FromRotationX(theta float32) Matrix4 {
	c, s := cos32(theta), sin32(theta)
	return NewMatrix4(
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	)
}

// Matrix4FromRotationY returns the rotation matrix around the Y axis by the
// given angle in radians.
func Matrix4FromRotationY(theta float32) Matrix4 {
	c, s := cos32(theta), sin32(theta)
	return NewMatrix4(
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	)
}

// Matrix4FromRotationZ returns the rotation matrix around the Z axis by the
// given angle in radians.
func Matrix4FromRotationZ(theta float32) Matrix4 {
	c, s := cos32(theta), sin32(theta)
	return NewMatrix4(
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

// Matrix4FromScale returns the transformation matrix for the given scale
// factors.
func Matrix4FromScale(v Vector3) Matrix4 {
	return NewMatrix4(
		v.X, 0, 0, 0,
		0, v.Y, 0, 0,
		0, 0, v.Z, 0,
		0, 0, 0, 1,
	)
}

// Matrix4FromEuler returns the rotation matrix for the given Euler angles.
// The three single-axis rotations are composed in the order the Euler triple
// carries, with the per-order products expanded in closed form.
func Matrix4FromEuler(euler Euler) Matrix4 {
	m := Matrix4Identity()

	a, b := cos32(euler.X), sin32(euler.X)
	c, d := cos32(euler.Y), sin32(euler.Y)
	e, f := cos32(euler.Z), sin32(euler.Z)

	switch euler.Order {
	case OrderXYZ:
		ae, af := a*e, a*f
		be, bf := b*e, b*f

		m[0] = c * e
		m[4] = -c * f
		m[8] = d

		m[1] = af + be*d
		m[5] = ae - bf*d
		m[9] = -b * c

		m[2] = bf - ae*d
		m[6] = be + af*d
		m[10] = a * c

	case OrderXZY:
		ac, ad := a*c, a*d
		bc, bd := b*c, b*d

		m[0] = c * e
		m[4] = -f
		m[8] = d * e

		m[1] = ac*f + bd
		m[5] = a * e
		m[9] = ad*f - bc

		m[2] = bc*f - ad
		m[6] = b * e
		m[10] = bd*f + ac

	case OrderYXZ:
		ce, cf := c*e, c*f
		de, df := d*e, d*f

		m[0] = ce + df*b
		m[4] = de*b - cf
		m[8] = a * d

		m[1] = a * f
		m[5] = a * e
		m[9] = -b

		m[2] = cf*b - de
		m[6] = df + ce*b
		m[10] = a * c

	case OrderYZX:
		ac, ad := a*c, a*d
		bc, bd := b*c, b*d

		m[0] = c * e
		m[4] = bd - ac*f
		m[8] = bc*f + ad

		m[1] = f
		m[5] = a * e
		m[9] = -b * e

		m[2] = -d * e
		m[6] = ad*f + bc
		m[10] = ac - bd*f

	case OrderZXY:
		ce, cf := c*e, c*f
		de, df := d*e, d*f

		m[0] = ce - df*b
		m[4] = -a * f
		m[8] = de + cf*b

		m[1] = cf + de*b
		m[5] = a * e
		m[9] = df - ce*b

		m[2] = -a * d
		m[6] = b
		m[10] = a * c

	case OrderZYX:
		ae, af := a*e, a*f
		be, bf := b*e, b*f

		m[0] = c * e
		m[4] = be*d - af
		m[8] = ae*d + bf

		m[1] = c * f
		m[5] = bf*d + ae
		m[9] = af*d - be

		m[2] = -d
		m[6] = b * c
		m[10] = a * c
	}

	return m
}

// Matrix4FromQuaternion returns the rotation matrix for the given rotation
// quaternion.
func Matrix4FromQuaternion(q Quaternion) Matrix4 {
	return Compose(Vector3{}, q, Vector3{1, 1, 1})
}

// Compose creates the matrix for the transformation composed of the given
// translation, rotation, and scale, in TRS order: scale first, then
// rotation, then translation.
//
// Rotation and scale are fused into one multiply-add chain over the
// quaternion double products, without materializing a pure-rotation matrix
// first. Rotation-only is Compose(zero, q, one).
func Compose(translation Vector3, rotation Quaternion, scale Vector3) Matrix4 {
	x, y, z, w := rotation.X, rotation.Y, rotation.Z, rotation.W

	x2, y2, z2 := x+x, y+y, z+z

	xx, xy, xz := x*x2, x*y2, x*z2
	yy, yz, zz := y*y2, y*z2, z*z2
	wx, wy, wz := w*x2, w*y2, w*z2

	sx, sy, sz := scale.X, scale.Y, scale.Z

	var m Matrix4

	m[0] = (1 - (yy + zz)) * sx
	m[1] = (xy + wz) * sx
	m[2] = (xz - wy) * sx
	m[3] = 0

	m[4] = (xy - wz) * sy
	m[5] = (1 - (xx + zz)) * sy
	m[6] = (yz + wx) * sy
	m[7] = 0

	m[8] = (xz + wy) * sz
	m[9] = (yz - wx) * sz
	m[10] = (1 - (xx + yy)) * sz
	m[11] = 0

	m[12] = translation.X
	m[13] = translation.Y
	m[14] = translation.Z
	m[15] = 1

	return m
}

// LookAt returns the rotation matrix looking from eye towards target,
// oriented by the up vector. If up is parallel to the view direction the
// basis is degenerate and NaN propagates; caller responsibility, not
// guarded.
func LookAt(eye, target, up Vector3) Matrix4 {
	z := eye.Sub(target).Normalized()
	x := up.Cross(z).Normalized()
	y := z.Cross(x).Normalized()

	return Matrix4{
		x.X, x.Y, x.Z, 0,
		y.X, y.Y, y.Z, 0,
		z.X, z.Y, z.Z, 0,
		0, 0, 0, 1,
	}
}

// Mul returns the matrix product a × b.
func (a Matrix4) Mul(b Matrix4) Matrix4 {
	a11, a21, a31, a41 := a[0], a[1], a[2], a[3]
	a12, a22, a32, a42 := a[4], a[5], a[6], a[7]
	a13, a23, a33, a43 := a[8], a[9], a[10], a[11]
	a14, a24, a34, a44 := a[12], a[13], a[14], a[15]

	b11, b21, b31, b41 := b[0], b[1], b[2], b[3]
	b12, b22, b32, b42 := b[4], b[5], b[6], b[7]
	b13, b23, b33, b43 := b[8], b[9], b[10], b[11]
	b14, b24, b34, b44 := b[12], b[13], b[14], b[15]

	return NewMatrix4(
		a11*b11+a12*b21+a13*b31+a14*b41,
		a11*b12+a12*b22+a13*b32+a14*b42,
		a11*b13+a12*b23+a13*b33+a14*b43,
		a11*b14+a12*b24+a13*b34+a14*b44,
		a21*b11+a22*b21+a23*b31+a24*b41,
		a21*b12+a22*b22+a23*b32+a24*b42,
		a21*b13+a22*b23+a23*b33+a24*b43,
		a21*b14+a22*b24+a23*b34+a24*b44,
		a31*b11+a32*b21+a33*b31+a34*b41,
		a31*b12+a32*b22+a33*b32+a34*b42,
		a31*b13+a32*b23+a33*b33+a34*b43,
		a31*b14+a32*b24+a33*b34+a34*b44,
		a41*b11+a42*b21+a43*b31+a44*b41,
		a41*b12+a42*b22+a43*b32+a44*b42,
		a41*b13+a42*b23+a43*b33+a44*b43,
		a41*b14+a42*b24+a43*b34+a44*b44,
	)
}

// MulScalar returns the matrix with every element multiplied by s.
func (m Matrix4) MulScalar(s float32) Matrix4 {
	for i := range m {
		m[i] *= s
	}
	return m
}

// DivScalar returns the matrix with every element divided by s.
func (m Matrix4) DivScalar(s float32) Matrix4 {
	for i := range m {
		m[i] /= s
	}
	return m
}

// MulPoint transforms a 3D point by this matrix with an implicit w of 1.
// The projective divide is skipped; affine transforms only.
func (m Matrix4) MulPoint(v Vector3) Vector3 {
	return Vector3{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12],
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13],
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14],
	}
}

// Set sets the elements of this matrix from row-major arguments.
func (m *Matrix4) Set(
	n11, n12, n13, n14,
	n21, n22, n23, n24,
	n31, n32, n33, n34,
	n41, n42, n43, n44 float32,
) {
	m[0], m[1], m[2], m[3] = n11, n21, n31, n41
	m[4], m[5], m[6], m[7] = n12, n22, n32, n42
	m[8], m[9], m[10], m[11] = n13, n23, n33, n43
	m[12], m[13], m[14], m[15] = n14, n24, n34, n44
}

// Translation returns the translation component of this matrix.
func (m Matrix4) Translation() Vector3 {
	return Vector3{m[12], m[13], m[14]}
}

// Translate right-multiplies this matrix by a translation, in place.
func (m *Matrix4) Translate(v Vector3) {
	*m = m.Mul(Matrix4FromTranslation(v))
}

// Rotate right-multiplies this matrix by the given rotation quaternion, in
// place. Euler angles go through QuaternionFromEuler first.
func (m *Matrix4) Rotate(q Quaternion) {
	*m = m.Mul(Matrix4FromQuaternion(q))
}

// Scale right-multiplies this matrix by a scale, in place.
func (m *Matrix4) Scale(v Vector3) {
	*m = m.Mul(Matrix4FromScale(v))
}

// Determinant returns the determinant of this matrix by full cofactor
// expansion, 24 terms, no pivoting.
func (m Matrix4) Determinant() float32 {
	n11, n21, n31, n41 := m[0], m[1], m[2], m[3]
	n12, n22, n32, n42 := m[4], m[5], m[6], m[7]
	n13, n23, n33, n43 := m[8], m[9], m[10], m[11]
	n14, n24, n34, n44 := m[12], m[13], m[14], m[15]

	return n14*n23*n32*n41 - n13*n24*n32*n41 - n14*n22*n33*n41 + n12*n24*n33*n41 +
		n13*n22*n34*n41 - n12*n23*n34*n41 - n14*n23*n31*n42 + n13*n24*n31*n42 +
		n14*n21*n33*n42 - n11*n24*n33*n42 - n13*n21*n34*n42 + n11*n23*n34*n42 +
		n14*n22*n31*n43 - n12*n24*n31*n43 - n14*n21*n32*n43 + n11*n24*n32*n43 +
		n12*n21*n34*n43 - n11*n22*n34*n43 - n13*n22*n31*n44 + n12*n23*n31*n44 +
		n13*n21*n32*n44 - n11*n23*n32*n44 - n12*n21*n33*n44 + n11*n22*n33*n44
}

// Adjugate returns the adjugate of this matrix, each entry a closed-form
// 3x3 cofactor.
func (m Matrix4) Adjugate() Matrix4 {
	n11, n21, n31, n41 := m[0], m[1], m[2], m[3]
	n12, n22, n32, n42 := m[4], m[5], m[6], m[7]
	n13, n23, n33, n43 := m[8], m[9], m[10], m[11]
	n14, n24, n34, n44 := m[12], m[13], m[14], m[15]

	return NewMatrix4(
		n23*n34*n42-n24*n33*n42+n24*n32*n43-n22*n34*n43-n23*n32*n44+n22*n33*n44,
		n14*n33*n42-n13*n34*n42-n14*n32*n43+n12*n34*n43+n13*n32*n44-n12*n33*n44,
		n13*n24*n42-n14*n23*n42+n14*n22*n43-n12*n24*n43-n13*n22*n44+n12*n23*n44,
		n14*n23*n32-n13*n24*n32-n14*n22*n33+n12*n24*n33+n13*n22*n34-n12*n23*n34,
		n24*n33*n41-n23*n34*n41-n24*n31*n43+n21*n34*n43+n23*n31*n44-n21*n33*n44,
		n13*n34*n41-n14*n33*n41+n14*n31*n43-n11*n34*n43-n13*n31*n44+n11*n33*n44,
		n14*n23*n41-n13*n24*n41-n14*n21*n43+n11*n24*n43+n13*n21*n44-n11*n23*n44,
		n13*n24*n31-n14*n23*n31+n14*n21*n33-n11*n24*n33-n13*n21*n34+n11*n23*n34,
		n22*n34*n41-n24*n32*n41+n24*n31*n42-n21*n34*n42-n22*n31*n44+n21*n32*n44,
		n14*n32*n41-n12*n34*n41-n14*n31*n42+n11*n34*n42+n12*n31*n44-n11*n32*n44,
		n12*n24*n41-n14*n22*n41+n14*n21*n42-n11*n24*n42-n12*n21*n44+n11*n22*n44,
		n14*n22*n31-n12*n24*n31-n14*n21*n32+n11*n24*n32+n12*n21*n34-n11*n22*n34,
		n23*n32*n41-n22*n33*n41-n23*n31*n42+n21*n33*n42+n22*n31*n43-n21*n32*n43,
		n12*n33*n41-n13*n32*n41+n13*n31*n42-n11*n33*n42-n12*n31*n43+n11*n32*n43,
		n13*n22*n41-n12*n23*n41-n13*n21*n42+n11*n23*n42+n12*n21*n43-n11*n22*n43,
		n12*n23*n31-n13*n22*n31+n13*n21*n32-n11*n23*n32-n12*n21*n33+n11*n22*n33,
	)
}

// Inverse returns the inverse of this matrix, computed as adjugate over
// determinant. If the determinant is exactly zero the 4x4 zero matrix is
// returned as a sentinel, same contract as Matrix3.Inverse.
func (m Matrix4) Inverse() Matrix4 {
	det := m.Determinant()
	if det == 0 {
		return Matrix4Zero()
	}
	return m.Adjugate().DivScalar(det)
}
