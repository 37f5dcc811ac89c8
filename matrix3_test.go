package polimath

import "testing"

// cmToRm3 converts a column-major index into the row-major index that holds
// the same element.
func cmToRm3(i int) int {
	return i%3*3 + i/3
}

func matrix3Eq(t *testing.T, got, want Matrix3, tol float32) {
	t.Helper()
	for i := range got {
		floatEq(t, got[i], want[i], tol, "element")
	}
}

func TestNewMatrix3ColumnMajorStorage(t *testing.T) {
	m := NewMatrix3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)

	for i := 0; i < 9; i++ {
		if m[i] != float32(cmToRm3(i)+1) {
			t.Errorf("element %d: got %v, want %v", i, m[i], cmToRm3(i)+1)
		}
	}
}

func TestMatrix3Identity(t *testing.T) {
	m := Matrix3Identity()
	for i := 0; i < 9; i++ {
		want := float32(0)
		if i%4 == 0 {
			want = 1
		}
		if m[i] != want {
			t.Errorf("element %d: got %v, want %v", i, m[i], want)
		}
	}
}

func TestMatrix3FromMatrix4(t *testing.T) {
	m4 := NewMatrix4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)

	got := Matrix3FromMatrix4(m4)
	want := Matrix3{1, 5, 9, 2, 6, 10, 3, 7, 11}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatrix3Set(t *testing.T) {
	var m Matrix3
	m.Set(
		10, 11, 12,
		13, 14, 15,
		16, 17, 18,
	)
	for i := 0; i < 9; i++ {
		if m[i] != float32(cmToRm3(i)+10) {
			t.Errorf("element %d: got %v", i, m[i])
		}
	}
}

func TestMatrix3Determinant(t *testing.T) {
	m := Matrix3Identity()
	if got := m.Determinant(); got != 1 {
		t.Errorf("identity determinant: got %v", got)
	}

	m[0] = 2
	if got := m.Determinant(); got != 2 {
		t.Errorf("scaled determinant: got %v", got)
	}

	m[0] = 0
	if got := m.Determinant(); got != 0 {
		t.Errorf("singular determinant: got %v", got)
	}

	m.Set(
		2, 3, 4,
		5, 13, 7,
		8, 9, 11,
	)
	if got := m.Determinant(); got != -73 {
		t.Errorf("determinant: got %v, want -73", got)
	}
}

func TestMatrix3Transpose(t *testing.T) {
	m := NewMatrix3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	want := Matrix3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	if got := m.Transpose(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestMatrix3Adjugate(t *testing.T) {
	m := NewMatrix3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)

	want := NewMatrix3(
		-24, 18, 5,
		20, -15, -4,
		-5, 4, 1,
	)
	matrix3Eq(t, m.Adjugate(), want, eps)
}

func TestNormalMatrix(t *testing.T) {
	// Sheared transform with a singular top-left 3x3 would break the
	// inverse-transpose construction; the adjugate stays well defined.
	m := NewMatrix4(
		1, 2, 3, 3,
		0, 1, 4, 4,
		5, 6, 0, 5,
		6, 7, 8, 9,
	)

	want := NewMatrix3(
		-24, 18, 5,
		20, -15, -4,
		-5, 4, 1,
	)
	matrix3Eq(t, NormalMatrix(m), want, eps)
}

func TestMatrix3Inverse(t *testing.T) {
	m := NewMatrix3(
		1, 2, 3,
		0, 1, 4,
		5, 6, 0,
	)

	// det = 1, so inverse equals adjugate here.
	want := NewMatrix3(
		-24, 18, 5,
		20, -15, -4,
		-5, 4, 1,
	)
	matrix3Eq(t, m.Inverse(), want, eps)

	// M * M^-1 == identity.
	inv := m.Inverse()
	prod := Matrix3Zero()
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			var sum float32
			for k := 0; k < 3; k++ {
				sum += m[k*3+r] * inv[c*3+k]
			}
			prod[c*3+r] = sum
		}
	}
	matrix3Eq(t, prod, Matrix3Identity(), 1e-5)

	degenerate := NewMatrix3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	if got := degenerate.Inverse(); got != Matrix3Zero() {
		t.Errorf("singular inverse: got %v, want zero matrix", got)
	}
}

func TestMatrix3MulVector3(t *testing.T) {
	m := NewMatrix3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	got := m.MulVector3(Vector3{1, 2, 3})
	if got != (Vector3{14, 32, 50}) {
		t.Errorf("got %v", got)
	}

	id := Matrix3Identity()
	v := Vector3{5, -6, 7}
	if id.MulVector3(v) != v {
		t.Errorf("identity multiply changed vector")
	}
}

func TestMatrix3ScalarOps(t *testing.T) {
	m := NewMatrix3(
		1, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)

	double := m.MulScalar(2)
	half := m.DivScalar(2)
	for i := 0; i < 9; i++ {
		floatEq(t, double[i], m[i]*2, eps, "MulScalar")
		floatEq(t, half[i], m[i]/2, eps, "DivScalar")
	}
}
