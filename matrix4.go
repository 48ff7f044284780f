package composite

import (
	"math"

	"golang.org/x/image/math/f64"
)

// Matrix4 is a 4x4 transformation matrix in row-major order (m[4*r+c]),
// stored as a golang.org/x/image f64.Mat4.
//
// The compositor combines a view matrix (parent space to clip space) with a
// world matrix (placement of the current layer's unit quad in parent space)
// as view * world, and applies the product to homogeneous vertex positions
// (x, y, 1, 1). See MapVertex.
type Matrix4 f64.Mat4

// Identity4 returns the 4x4 identity matrix.
func Identity4() Matrix4 {
	return Matrix4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate4 returns a translation by (x, y).
func Translate4(x, y float64) Matrix4 {
	return Matrix4{
		1, 0, 0, x,
		0, 1, 0, y,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Scale4 returns a scale by (x, y).
func Scale4(x, y float64) Matrix4 {
	return Matrix4{
		x, 0, 0, 0,
		0, y, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Rotate4 returns a rotation about the Z axis by angle (in radians).
func Rotate4(angle float64) Matrix4 {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Matrix4{
		cos, -sin, 0, 0,
		sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Orthographic returns a view matrix projecting the parent-space rectangle
// (left, top)-(right, bottom) onto clip space [-1,1]x[-1,1]. Parent space
// is Y down (top-left origin), clip space is Y up, so the projection flips
// Y: (left, top) maps to clip (-1, 1).
func Orthographic(left, right, top, bottom float64) Matrix4 {
	sx := 2 / (right - left)
	sy := 2 / (top - bottom)
	return Matrix4{
		sx, 0, 0, -(right + left) / (right - left),
		0, sy, 0, -(top + bottom) / (top - bottom),
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// WorldQuad returns a world matrix placing the unit quad [0,1]x[0,1] at
// position (x, y) with size (w, h) in parent space. This mirrors how the
// source pipeline places a layer's quad for a blend pass.
func WorldQuad(x, y, w, h float64) Matrix4 {
	return Translate4(x, y).Mul(Scale4(w, h))
}

// Mul returns the matrix product m * other.
func (m Matrix4) Mul(other Matrix4) Matrix4 {
	var out Matrix4
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m[4*r+k] * other[4*k+c]
			}
			out[4*r+c] = sum
		}
	}
	return out
}

// TransformVec4 applies the matrix to a homogeneous vector.
func (m Matrix4) TransformVec4(v f64.Vec4) f64.Vec4 {
	var out f64.Vec4
	for r := 0; r < 4; r++ {
		out[r] = m[4*r]*v[0] + m[4*r+1]*v[1] + m[4*r+2]*v[2] + m[4*r+3]*v[3]
	}
	return out
}

// Affine extracts the 2D affine action of the matrix on homogeneous
// positions (x, y, 1, 1): the Z and W columns both contribute to the
// translation term. This is the part the compositor inverts for quad
// coverage testing; any perspective rows are ignored.
func (m Matrix4) Affine() Matrix {
	return Matrix{
		A: m[0], B: m[1], C: m[2] + m[3],
		D: m[4], E: m[5], F: m[6] + m[7],
	}
}
