package polimath

// Quaternion represents a rotation around an arbitrary axis. A rotation by
// angle α around the unit axis β has components
//
//	x = β.x * sin(α/2)
//	y = β.y * sin(α/2)
//	z = β.z * sin(α/2)
//	w = cos(α/2)
//
// Rotation quaternions must be unit quaternions; the type does not enforce
// this. Call Normalize after arithmetic that can denormalize, such as
// repeated multiplication. Four packed float32 fields, GPU-buffer safe.
type Quaternion struct {
	X, Y, Z, W float32
}

// QuaternionIdentity returns the identity quaternion, i.e. no rotation.
func QuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// QuaternionFromAxisAngle returns the quaternion for the rotation by the
// given angle in radians around the given axis. The axis must be normalized.
func QuaternionFromAxisAngle(axis Vector3, angle float32) Quaternion {
	s := sin32(angle / 2)
	return Quaternion{
		X: axis.X * s,
		Y: axis.Y * s,
		Z: axis.Z * s,
		W: cos32(angle / 2),
	}
}

// QuaternionFromEuler converts the given Euler angles to a rotation
// quaternion. Each order is a fixed bilinear combination of the six
// half-angle sines and cosines: the algebraically expanded product of the
// three single-axis quaternions composed in that order. The sign patterns
// differ per order.
func QuaternionFromEuler(e Euler) Quaternion {
	c1 := cos32(e.X / 2)
	c2 := cos32(e.Y / 2)
	c3 := cos32(e.Z / 2)

	s1 := sin32(e.X / 2)
	s2 := sin32(e.Y / 2)
	s3 := sin32(e.Z / 2)

	switch e.Order {
	case OrderXYZ:
		return Quaternion{
			X: s1*c2*c3 + c1*s2*s3,
			Y: c1*s2*c3 - s1*c2*s3,
			Z: c1*c2*s3 + s1*s2*c3,
			W: c1*c2*c3 - s1*s2*s3,
		}
	case OrderXZY:
		return Quaternion{
			X: s1*c2*c3 - c1*s2*s3,
			Y: c1*s2*c3 - s1*c2*s3,
			Z: c1*c2*s3 + s1*s2*c3,
			W: c1*c2*c3 + s1*s2*s3,
		}
	case OrderYXZ:
		return Quaternion{
			X: s1*c2*c3 + c1*s2*s3,
			Y: c1*s2*c3 - s1*c2*s3,
			Z: c1*c2*s3 - s1*s2*c3,
			W: c1*c2*c3 + s1*s2*s3,
		}
	case OrderYZX:
		return Quaternion{
			X: s1*c2*c3 + c1*s2*s3,
			Y: c1*s2*c3 + s1*c2*s3,
			Z: c1*c2*s3 - s1*s2*c3,
			W: c1*c2*c3 - s1*s2*s3,
		}
	case OrderZXY:
		return Quaternion{
			X: s1*c2*c3 - c1*s2*s3,
			Y: c1*s2*c3 + s1*c2*s3,
			Z: c1*c2*s3 + s1*s2*c3,
			W: c1*c2*c3 - s1*s2*s3,
		}
	case OrderZYX:
		return Quaternion{
			X: s1*c2*c3 - c1*s2*s3,
			Y: c1*s2*c3 + s1*c2*s3,
			Z: c1*c2*s3 - s1*s2*c3,
			W: c1*c2*c3 + s1*s2*s3,
		}
	}

	return QuaternionIdentity()
}

// Mul returns the Hamilton product a * b: the rotation obtained by first
// applying b and then a. Quaternion multiplication is not commutative.
func (a Quaternion) Mul(b Quaternion) Quaternion {
	return Quaternion{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

// Set sets the components of this quaternion.
func (q *Quaternion) Set(x, y, z, w float32) *Quaternion {
	q.X = x
	q.Y = y
	q.Z = z
	q.W = w
	return q
}

// Norm returns the Euclidean 4-norm. The norm has no inherent geometric
// meaning, but all rotation quaternions must have a norm of 1.
func (q Quaternion) Norm() float32 {
	return sqrt32(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
}

// Normalize scales this quaternion to unit norm in place. A zero quaternion
// produces NaN components; not guarded.
func (q *Quaternion) Normalize() *Quaternion {
	norm := q.Norm()
	q.X /= norm
	q.Y /= norm
	q.Z /= norm
	q.W /= norm
	return q
}

// Conjugate returns the conjugate, which represents the same rotation in the
// opposite direction.
func (q Quaternion) Conjugate() Quaternion {
	return Quaternion{-q.X, -q.Y, -q.Z, q.W}
}

// Invert replaces this quaternion with its conjugate. For unit quaternions
// the conjugate equals the inverse, so this reverses the rotation. A
// non-unit quaternion must be normalized first or the result is not the
// reciprocal.
func (q *Quaternion) Invert() *Quaternion {
	*q = q.Conjugate()
	return q
}
