// Package mat4 builds the 4x4 transforms fed to shader uniforms.
//
// Matrices are row-major (m[row][col]) and follow the column-vector
// convention, so a point p is transformed as M·p. GL stores matrices
// column-major: upload with transpose set, e.g.
//
//	gl.UniformMatrix4fv(loc, 1, true, m.Ptr())
package mat4

import (
	"github.com/chewxy/math32"
)

type Mat4 [4][4]float32

type Vec4 [4]float32

func Identity() Mat4 {
	return Mat4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Radians converts degrees to radians. None of the constructors convert on
// their own.
func Radians(deg float32) float32 {
	return deg * math32.Pi / 180
}

// Mul returns m·a.
func (m Mat4) Mul(a Mat4) Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[i][k] * a[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// MulVec4 returns m·v.
func (m Mat4) MulVec4(v Vec4) Vec4 {
	var out Vec4
	for i := 0; i < 4; i++ {
		out[i] = m[i][0]*v[0] + m[i][1]*v[1] + m[i][2]*v[2] + m[i][3]*v[3]
	}
	return out
}

func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// ApproxEqual reports whether every element of m is within tol of a.
func (m Mat4) ApproxEqual(a Mat4, tol float32) bool {
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if math32.Abs(m[i][j]-a[i][j]) > tol {
				return false
			}
		}
	}
	return true
}

// Ptr returns a pointer to the first element, in row-major order.
func (m *Mat4) Ptr() *float32 {
	return &m[0][0]
}
