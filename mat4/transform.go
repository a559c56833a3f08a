package mat4

import (
	"github.com/chewxy/math32"
)

func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m[0][3] = x
	m[1][3] = y
	m[2][3] = z
	return m
}

func Scale(x, y, z float32) Mat4 {
	m := Identity()
	m[0][0] = x
	m[1][1] = y
	m[2][2] = z
	return m
}

// RotateX rotates angle radians about the x axis.
func RotateX(angle float32) Mat4 {
	cos, sin := math32.Cos(angle), math32.Sin(angle)
	m := Identity()
	m[1][1], m[1][2] = cos, -sin
	m[2][1], m[2][2] = sin, cos
	return m
}

// RotateY rotates angle radians about the y axis.
func RotateY(angle float32) Mat4 {
	cos, sin := math32.Cos(angle), math32.Sin(angle)
	m := Identity()
	m[0][0], m[0][2] = cos, sin
	m[2][0], m[2][2] = -sin, cos
	return m
}

// RotateZ rotates angle radians about the z axis.
func RotateZ(angle float32) Mat4 {
	cos, sin := math32.Cos(angle), math32.Sin(angle)
	m := Identity()
	m[0][0], m[0][1] = cos, -sin
	m[1][0], m[1][1] = sin, cos
	return m
}
