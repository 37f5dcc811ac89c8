package polimath

// RotationOrder is the order in which the three local-axis rotations of an
// Euler triple are composed, first-applied axis first.
type RotationOrder int

const (
	OrderXYZ RotationOrder = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
)

func (o RotationOrder) String() string {
	switch o {
	case OrderXYZ:
		return "XYZ"
	case OrderXZY:
		return "XZY"
	case OrderYXZ:
		return "YXZ"
	case OrderYZX:
		return "YZX"
	case OrderZXY:
		return "ZXY"
	case OrderZYX:
		return "ZYX"
	}
	return "unknown"
}

// Euler describes a rotation as chained rotations around the local X, Y,
// and Z axes in a given order. Angles are in radians.
//
// Euler angles are intuitive to author but suffer from gimbal lock; prefer
// Quaternion for composing and interpolating rotations. The zero value is
// no rotation in XYZ order.
type Euler struct {
	X, Y, Z float32
	Order   RotationOrder
}

// Set sets the angles and order.
func (e *Euler) Set(x, y, z float32, order RotationOrder) {
	e.X = x
	e.Y = y
	e.Z = z
	e.Order = order
}

// Once the asin source entry is this close to ±1 the paired atan2 solution
// degenerates (gimbal lock) and the fallback entry pair is used instead.
const gimbalLockThreshold = 0.9999999

// EulerFromRotationMatrix extracts Euler angles in the given order from the
// rotation part (the top-left 3x3) of m. The matrix must be a pure rotation,
// i.e. unscaled.
//
// Each order reads one angle from an asin of a designated entry, clamped to
// [-1, 1] against float drift, and recovers the other two from atan2 of
// paired entries. Near gimbal lock the pair is degenerate: one angle is
// fixed to zero and the other comes from a fallback entry pair. The entry
// tables and sign conventions differ per order.
func EulerFromRotationMatrix(m Matrix4, order RotationOrder) Euler {
	m11, m12, m13 := m[0], m[4], m[8]
	m21, m22, m23 := m[1], m[5], m[9]
	m31, m32, m33 := m[2], m[6], m[10]

	e := Euler{Order: order}

	switch order {
	case OrderXYZ:
		e.Y = asin32(clamp1(m13))
		if abs32(m13) < gimbalLockThreshold {
			e.X = atan232(-m23, m33)
			e.Z = atan232(-m12, m11)
		} else {
			e.X = atan232(m32, m22)
			e.Z = 0
		}

	case OrderXZY:
		e.Z = asin32(-clamp1(m12))
		if abs32(m12) < gimbalLockThreshold {
			e.X = atan232(m32, m22)
			e.Y = atan232(m13, m11)
		} else {
			e.X = atan232(-m23, m33)
			e.Y = 0
		}

	case OrderYXZ:
		e.X = asin32(-clamp1(m23))
		if abs32(m23) < gimbalLockThreshold {
			e.Y = atan232(m13, m33)
			e.Z = atan232(m21, m22)
		} else {
			e.Y = atan232(-m31, m11)
			e.Z = 0
		}

	case OrderYZX:
		e.Z = asin32(clamp1(m21))
		if abs32(m21) < gimbalLockThreshold {
			e.X = atan232(-m23, m22)
			e.Y = atan232(-m31, m11)
		} else {
			e.X = 0
			e.Y = atan232(m13, m33)
		}

	case OrderZXY:
		e.X = asin32(clamp1(m32))
		if abs32(m32) < gimbalLockThreshold {
			e.Y = atan232(-m31, m33)
			e.Z = atan232(-m12, m22)
		} else {
			e.Y = 0
			e.Z = atan232(m21, m11)
		}

	case OrderZYX:
		e.Y = asin32(-clamp1(m31))
		if abs32(m31) < gimbalLockThreshold {
			e.X = atan232(m32, m33)
			e.Z = atan232(m21, m11)
		} else {
			e.X = 0
			e.Z = atan232(-m12, m22)
		}
	}

	return e
}

// EulerFromQuaternion converts the given rotation quaternion to Euler angles
// in the given order. The conversion routes through the rotation matrix so
// that the gimbal-lock handling of EulerFromRotationMatrix applies; there is
// no separate closed form for the quaternion domain.
func EulerFromQuaternion(q Quaternion, order RotationOrder) Euler {
	return EulerFromRotationMatrix(Matrix4FromQuaternion(q), order)
}
