package math

import (
	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
)

// The x/image matrix types are row-major: element (r, c) lives at index
// 4*r + c. Matrix4d is column-major, so every conversion transposes.

// F64Mat4 returns mat as a row-major f64.Mat4.
func (mat *Matrix4d) F64Mat4() f64.Mat4 {
	var t Matrix4d
	return f64.Mat4(mat.TransposeTo(&t).Array())
}

// SetF64Mat4 sets mat from a row-major f64.Mat4.
func (mat *Matrix4d) SetF64Mat4(src f64.Mat4) *Matrix4d {
	return mat.SetArray([16]float64(src)).Transpose()
}

// F32Mat4 returns mat narrowed to a row-major f32.Mat4.
func (mat *Matrix4d) F32Mat4() f32.Mat4 {
	var out f32.Mat4
	for i, v := range mat.F64Mat4() {
		out[i] = float32(v)
	}
	return out
}

// SetF32Mat4 sets mat from a row-major f32.Mat4.
func (mat *Matrix4d) SetF32Mat4(src f32.Mat4) *Matrix4d {
	var wide f64.Mat4
	for i, v := range src {
		wide[i] = float64(v)
	}
	return mat.SetF64Mat4(wide)
}

// F64Aff4 returns rows 0..2 of an affine mat as a row-major f64.Aff4.
func (mat *Matrix4d) F64Aff4() f64.Aff4 {
	return f64.Aff4{
		mat.M00, mat.M10, mat.M20, mat.M30,
		mat.M01, mat.M11, mat.M21, mat.M31,
		mat.M02, mat.M12, mat.M22, mat.M32,
	}
}

/**
 * @brief Returns the XY part of an affine mat as an f64.Aff3, the 2D affine
 * transform used by x/image/draw. Z is ignored.
 */
func (mat *Matrix4d) F64Aff3() f64.Aff3 {
	return f64.Aff3{
		mat.M00, mat.M10, mat.M30,
		mat.M01, mat.M11, mat.M31,
	}
}

func (v Vector2d) F64() f64.Vec2 {
	return f64.Vec2{v.X, v.Y}
}

func (v Vector3d) F64() f64.Vec3 {
	return f64.Vec3{v.X, v.Y, v.Z}
}

func (v Vector4d) F64() f64.Vec4 {
	return f64.Vec4{v.X, v.Y, v.Z, v.W}
}

func NewVector3dFromF64(v f64.Vec3) Vector3d {
	return Vector3d{v[0], v[1], v[2]}
}
