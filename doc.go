// Package polimath is a 3D transform math toolkit: vectors, 3x3 and 4x4
// matrices, quaternions, Euler angles, and an RGB color type.
//
// All types are plain values with fixed, padding-free layouts. Matrices are
// stored column-major, matching the buffer layout shading languages expect,
// so any of these types can be written to GPU-visible buffers as raw bytes.
//
// Rotations can be authored as Euler angles, composed as quaternions, and
// baked into 4x4 transform matrices; conversions between the three
// representations are provided in both directions, with gimbal-lock-aware
// extraction of Euler angles from matrices.
//
// The package favors sentinel values over errors on hot paths: inverting a
// singular matrix returns the zero matrix, and normalizing a zero-length
// vector or quaternion propagates NaN.
package polimath
