package scene

import (
	"github.com/chewxy/math32"

	"phong/mat4"
)

type Vec3 struct {
	X, Y, Z float32
}

func (v Vec3) Add(u Vec3) Vec3 {
	return Vec3{v.X + u.X, v.Y + u.Y, v.Z + u.Z}
}

func (v Vec3) Scale(t float32) Vec3 {
	return Vec3{v.X * t, v.Y * t, v.Z * t}
}

func (v Vec3) Dot(u Vec3) float32 {
	return v.X*u.X + v.Y*u.Y + v.Z*u.Z
}

func (v Vec3) Len() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) Normalize() Vec3 {
	return v.Scale(1 / v.Len())
}

func (v Vec3) Cross(u Vec3) Vec3 {
	return Vec3{
		v.Y*u.Z - v.Z*u.Y,
		v.Z*u.X - v.X*u.Z,
		v.X*u.Y - v.Y*u.X,
	}
}

// RotateAroundAxis rotates v by angle radians about axis (Rodrigues).
func (v Vec3) RotateAroundAxis(axis Vec3, angle float32) Vec3 {
	axis = axis.Normalize()
	cos := math32.Cos(angle)
	sin := math32.Sin(angle)
	return v.Scale(cos).
		Add(axis.Cross(v).Scale(sin)).
		Add(axis.Scale(axis.Dot(v) * (1 - cos)))
}

// Translation returns the matrix moving the origin to v.
func (v Vec3) Translation() mat4.Mat4 {
	return mat4.Translate(v.X, v.Y, v.Z)
}
