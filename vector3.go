package polimath

// Vector3 is a 3-component vector for quantities such as 3D points and
// directions. Plain value type: three packed float32 fields, no padding, so
// slices of Vector3 can be written to GPU buffers as raw bytes.
type Vector3 struct {
	X, Y, Z float32
}

// Set sets the components of this vector.
func (v *Vector3) Set(x, y, z float32) *Vector3 {
	v.X = x
	v.Y = y
	v.Z = z
	return v
}

// Add returns the element-wise sum a + b.
func (a Vector3) Add(b Vector3) Vector3 {
	return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// AddScalar returns the vector with s added to every component.
func (v Vector3) AddScalar(s float32) Vector3 {
	return Vector3{v.X + s, v.Y + s, v.Z + s}
}

// Sub returns the element-wise difference a - b.
func (a Vector3) Sub(b Vector3) Vector3 {
	return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// SubScalar returns the vector with s subtracted from every component.
func (v Vector3) SubScalar(s float32) Vector3 {
	return Vector3{v.X - s, v.Y - s, v.Z - s}
}

// Mul returns the element-wise product a * b.
func (a Vector3) Mul(b Vector3) Vector3 {
	return Vector3{a.X * b.X, a.Y * b.Y, a.Z * b.Z}
}

// MulScalar returns the vector scaled by s.
func (v Vector3) MulScalar(s float32) Vector3 {
	return Vector3{v.X * s, v.Y * s, v.Z * s}
}

// Div returns the element-wise quotient a / b.
func (a Vector3) Div(b Vector3) Vector3 {
	return Vector3{a.X / b.X, a.Y / b.Y, a.Z / b.Z}
}

// DivScalar returns the vector divided by s.
func (v Vector3) DivScalar(s float32) Vector3 {
	return Vector3{v.X / s, v.Y / s, v.Z / s}
}

// Neg returns the negated vector.
func (v Vector3) Neg() Vector3 {
	return Vector3{-v.X, -v.Y, -v.Z}
}

// Length returns the Euclidean length of this vector.
func (v Vector3) Length() float32 {
	return sqrt32(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize scales this vector to unit length in place. A zero vector
// produces NaN components; not guarded.
func (v *Vector3) Normalize() *Vector3 {
	length := v.Length()
	v.X /= length
	v.Y /= length
	v.Z /= length
	return v
}

// Normalized returns the unit-length copy of this vector without modifying
// the receiver. A zero vector produces NaN components; not guarded.
func (v Vector3) Normalized() Vector3 {
	length := v.Length()
	return Vector3{v.X / length, v.Y / length, v.Z / length}
}

// Dot returns the dot product of a and b.
func (a Vector3) Dot(b Vector3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vector3) Cross(b Vector3) Vector3 {
	return Vector3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}
