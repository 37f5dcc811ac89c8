package polimath

import (
	"math"
	"testing"
)

func TestRotationOrderString(t *testing.T) {
	cases := map[RotationOrder]string{
		OrderXYZ: "XYZ",
		OrderXZY: "XZY",
		OrderYXZ: "YXZ",
		OrderYZX: "YZX",
		OrderZXY: "ZXY",
		OrderZYX: "ZYX",
	}
	for order, want := range cases {
		if got := order.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}

	if OrderXYZ != 0 {
		t.Error("default order must be XYZ")
	}
}

func TestEulerSet(t *testing.T) {
	var e Euler
	e.Set(1, 2, 3, OrderZXY)
	if e != (Euler{1, 2, 3, OrderZXY}) {
		t.Errorf("got %v", e)
	}
}

// Round trip matrix -> Euler -> matrix for every order. The extracted angles
// need not equal the input angles (the representation is not unique) but
// must produce the same rotation matrix.
func TestEulerFromRotationMatrixRoundTrip(t *testing.T) {
	halfPi := float32(math.Pi / 2)

	cases := []Euler{
		{0, 0, 0, OrderXYZ},
		{1, 0, 0, OrderXYZ},
		{0, 1, 0, OrderZYX},
		{0, 0, 0.5, OrderYZX},
		{0, 0, -0.5, OrderYZX},
		{0.3, -0.6, 1.1, OrderXYZ},
		{0.3, -0.6, 1.1, OrderXZY},
		{0.3, -0.6, 1.1, OrderYXZ},
		{0.3, -0.6, 1.1, OrderYZX},
		{0.3, -0.6, 1.1, OrderZXY},
		{0.3, -0.6, 1.1, OrderZYX},

		// Gimbal lock: the asin-source angle of each order at ±π/2.
		{0.4, halfPi, 0.2, OrderXYZ},
		{0.4, -halfPi, 0.2, OrderXYZ},
		{0.4, 0.2, halfPi, OrderXZY},
		{halfPi, 0.4, 0.2, OrderYXZ},
		{0.4, 0.2, -halfPi, OrderYZX},
		{halfPi, 0.4, 0.2, OrderZXY},
		{0.4, halfPi, 0.2, OrderZYX},
	}

	for _, e := range cases {
		m := Matrix4FromEuler(e)
		extracted := EulerFromRotationMatrix(m, e.Order)

		if extracted.Order != e.Order {
			t.Errorf("%v order %s: extraction changed order to %s",
				e, e.Order, extracted.Order)
		}

		m2 := Matrix4FromEuler(extracted)
		for i := range m {
			if diff := math.Abs(float64(m[i] - m2[i])); diff > 1e-5 {
				t.Errorf("%+v order %s: matrix mismatch at %d: %v vs %v",
					e, e.Order, i, m[i], m2[i])
				break
			}
		}
	}
}

// Quaternion -> Euler routes through the rotation matrix, so the round trip
// must also agree at the matrix level for every order.
func TestEulerFromQuaternionRoundTrip(t *testing.T) {
	orders := []RotationOrder{OrderXYZ, OrderXZY, OrderYXZ, OrderYZX, OrderZXY, OrderZYX}

	for _, order := range orders {
		e := Euler{X: 0.25, Y: 0.5, Z: -0.75, Order: order}
		q := QuaternionFromEuler(e)

		back := EulerFromQuaternion(q, order)
		matrix4Eq(t, Matrix4FromEuler(back), Matrix4FromEuler(e), 1e-5)
	}
}

func TestEulerGimbalLockExtraction(t *testing.T) {
	// At y = π/2 in XYZ order the X and Z axes align; the extraction must
	// fix Z to zero and fold the whole remaining rotation into X.
	e := Euler{X: 0.4, Y: float32(math.Pi / 2), Z: 0.2, Order: OrderXYZ}
	extracted := EulerFromRotationMatrix(Matrix4FromEuler(e), OrderXYZ)

	if extracted.Z != 0 {
		t.Errorf("z angle in gimbal lock: got %v, want 0", extracted.Z)
	}
	floatEq(t, extracted.Y, float32(math.Pi/2), 1e-3, "y angle in gimbal lock")
}

func TestEulerAsinClamp(t *testing.T) {
	// A matrix whose asin-source entry drifted just past 1 must not produce
	// NaN angles.
	m := Matrix4Identity()
	m[8] = 1.0000001 // m13, the XYZ asin source

	e := EulerFromRotationMatrix(m, OrderXYZ)
	for _, angle := range []float32{e.X, e.Y, e.Z} {
		if math.IsNaN(float64(angle)) {
			t.Fatalf("NaN angle extracted: %+v", e)
		}
	}
}
