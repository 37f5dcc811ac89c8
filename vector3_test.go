package polimath

import (
	"math"
	"testing"
)

const eps = 1e-6

func floatEq(t *testing.T, got, want, tol float32, msg string) {
	t.Helper()
	if diff := float64(got - want); math.Abs(diff) > float64(tol) {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func TestVector3Arithmetic(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, 5, 6}

	if got := a.Add(b); got != (Vector3{5, 7, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vector3{-3, -3, -3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Mul(b); got != (Vector3{4, 10, 18}) {
		t.Errorf("Mul: got %v", got)
	}
	if got := b.Div(a); got != (Vector3{4, 2.5, 2}) {
		t.Errorf("Div: got %v", got)
	}
	if got := a.MulScalar(2); got != (Vector3{2, 4, 6}) {
		t.Errorf("MulScalar: got %v", got)
	}
	if got := a.AddScalar(1); got != (Vector3{2, 3, 4}) {
		t.Errorf("AddScalar: got %v", got)
	}
	if got := a.SubScalar(1); got != (Vector3{0, 1, 2}) {
		t.Errorf("SubScalar: got %v", got)
	}
	if got := a.DivScalar(2); got != (Vector3{0.5, 1, 1.5}) {
		t.Errorf("DivScalar: got %v", got)
	}
	if got := a.Neg(); got != (Vector3{-1, -2, -3}) {
		t.Errorf("Neg: got %v", got)
	}
}

func TestVector3DotCross(t *testing.T) {
	a := Vector3{1, 2, 3}
	b := Vector3{4, 5, 6}

	floatEq(t, a.Dot(b), 32, eps, "Dot")

	if got := a.Cross(b); got != (Vector3{-3, 6, -3}) {
		t.Errorf("Cross: got %v", got)
	}

	x := Vector3{1, 0, 0}
	y := Vector3{0, 1, 0}
	if got := x.Cross(y); got != (Vector3{0, 0, 1}) {
		t.Errorf("x cross y: got %v", got)
	}
}

func TestVector3Normalize(t *testing.T) {
	v := Vector3{3, 4, 0}

	floatEq(t, v.Length(), 5, eps, "Length")

	n := v.Normalized()
	floatEq(t, n.Length(), 1, eps, "Normalized length")
	if v != (Vector3{3, 4, 0}) {
		t.Errorf("Normalized modified receiver: %v", v)
	}

	v.Normalize()
	floatEq(t, v.Length(), 1, eps, "Normalize length")
	floatEq(t, v.X, 0.6, eps, "Normalize x")
	floatEq(t, v.Y, 0.8, eps, "Normalize y")
}

func TestVector3Set(t *testing.T) {
	var v Vector3
	v.Set(1, 2, 3)
	if v != (Vector3{1, 2, 3}) {
		t.Errorf("Set: got %v", v)
	}
}
