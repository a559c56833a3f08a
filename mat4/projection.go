package mat4

import (
	"github.com/chewxy/math32"
)

// Perspective returns a symmetric perspective projection. fovy is the
// vertical field of view in radians; near and far are positive distances.
// Nothing is validated: near == far or a zero fovy yields Inf/NaN entries.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	tan := math32.Tan(fovy / 2)

	var m Mat4
	m[0][0] = 1 / (aspect * tan)
	m[1][1] = 1 / tan
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = -(2 * far * near) / (far - near)
	m[3][2] = -1
	return m
}

// Frustum returns an off-axis perspective projection, as glFrustum.
func Frustum(left, right, bottom, top, near, far float32) Mat4 {
	var m Mat4
	m[0][0] = (2 * near) / (right - left)
	m[0][2] = (right + left) / (right - left)
	m[1][1] = (2 * near) / (top - bottom)
	m[1][2] = (top + bottom) / (top - bottom)
	m[2][2] = -(far + near) / (far - near)
	m[2][3] = (-2 * far * near) / (far - near)
	m[3][2] = -1
	return m
}

// Ortho returns an orthographic projection, as glOrtho.
func Ortho(left, right, bottom, top, near, far float32) Mat4 {
	var m Mat4
	m[0][0] = 2 / (right - left)
	m[0][3] = -(right + left) / (right - left)
	m[1][1] = 2 / (top - bottom)
	m[1][3] = -(top + bottom) / (top - bottom)
	m[2][2] = -2 / (far - near)
	m[2][3] = -(far + near) / (far - near)
	m[3][3] = 1
	return m
}
