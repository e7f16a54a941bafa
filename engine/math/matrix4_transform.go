package math

// ------------------------------------------
// Translation
// ------------------------------------------

/**
 * @brief Sets mat to a translation matrix:
 *
 * {
 *   {1, 0, 0, x},
 *   {0, 1, 0, y},
 *   {0, 0, 1, z},
 *   {0, 0, 0, 1}
 * }
 */
func (mat *Matrix4d) Translation(x, y, z float64) *Matrix4d {
	*mat = Matrix4d{M00: 1, M11: 1, M22: 1, M30: x, M31: y, M32: z, M33: 1}
	return mat
}

// TranslationVector is Translation with the offset given as a vector.
func (mat *Matrix4d) TranslationVector(offset Vector3d) *Matrix4d {
	return mat.Translation(offset.X, offset.Y, offset.Z)
}

/**
 * @brief Post-multiplies mat by a translation: mat * T(x, y, z). The
 * translation is applied before mat.
 */
func (mat *Matrix4d) Translate(x, y, z float64) *Matrix4d {
	return mat.TranslateTo(x, y, z, mat)
}

func (mat *Matrix4d) TranslateTo(x, y, z float64, dest *Matrix4d) *Matrix4d {
	c0, c1, c2, c3 := mat.columns()
	c3 = c0.MulScalar(x).Add(c1.MulScalar(y)).Add(c2.MulScalar(z)).Add(c3)
	*dest = matrixFromColumns(c0, c1, c2, c3)
	return dest
}

/**
 * @brief Pre-multiplies mat by a translation: T(x, y, z) * mat. The
 * translation is applied after mat.
 */
func (mat *Matrix4d) TranslateLocal(x, y, z float64) *Matrix4d {
	return mat.TranslateLocalTo(x, y, z, mat)
}

func (mat *Matrix4d) TranslateLocalTo(x, y, z float64, dest *Matrix4d) *Matrix4d {
	s := *mat
	s.M00, s.M01, s.M02 = s.M00+x*s.M03, s.M01+y*s.M03, s.M02+z*s.M03
	s.M10, s.M11, s.M12 = s.M10+x*s.M13, s.M11+y*s.M13, s.M12+z*s.M13
	s.M20, s.M21, s.M22 = s.M20+x*s.M23, s.M21+y*s.M23, s.M22+z*s.M23
	s.M30, s.M31, s.M32 = s.M30+x*s.M33, s.M31+y*s.M33, s.M32+z*s.M33
	*dest = s
	return dest
}

// ------------------------------------------
// Scale
// ------------------------------------------

// Scaling sets mat to a scaling matrix with the given diagonal.
func (mat *Matrix4d) Scaling(x, y, z float64) *Matrix4d {
	*mat = Matrix4d{M00: x, M11: y, M22: z, M33: 1}
	return mat
}

// ScalingUniform sets mat to a uniform scaling matrix.
func (mat *Matrix4d) ScalingUniform(factor float64) *Matrix4d {
	return mat.Scaling(factor, factor, factor)
}

// Scale post-multiplies mat by a scaling matrix: mat * S(x, y, z).
func (mat *Matrix4d) Scale(x, y, z float64) *Matrix4d {
	return mat.ScaleTo(x, y, z, mat)
}

func (mat *Matrix4d) ScaleTo(x, y, z float64, dest *Matrix4d) *Matrix4d {
	c0, c1, c2, c3 := mat.columns()
	*dest = matrixFromColumns(c0.MulScalar(x), c1.MulScalar(y), c2.MulScalar(z), c3)
	return dest
}

// ScaleUniform scales all three axes by factor.
func (mat *Matrix4d) ScaleUniform(factor float64) *Matrix4d {
	return mat.ScaleTo(factor, factor, factor, mat)
}

// ScaleLocal pre-multiplies mat by a scaling matrix: S(x, y, z) * mat.
func (mat *Matrix4d) ScaleLocal(x, y, z float64) *Matrix4d {
	return mat.ScaleLocalTo(x, y, z, mat)
}

func (mat *Matrix4d) ScaleLocalTo(x, y, z float64, dest *Matrix4d) *Matrix4d {
	s := *mat
	s.M00, s.M01, s.M02 = s.M00*x, s.M01*y, s.M02*z
	s.M10, s.M11, s.M12 = s.M10*x, s.M11*y, s.M12*z
	s.M20, s.M21, s.M22 = s.M20*x, s.M21*y, s.M22*z
	s.M30, s.M31, s.M32 = s.M30*x, s.M31*y, s.M32*z
	*dest = s
	return dest
}

// ------------------------------------------
// Rotation about the principal axes
// ------------------------------------------

// RotationX sets mat to a rotation of angle radians about the X axis.
func (mat *Matrix4d) RotationX(angle float64) *Matrix4d {
	sin, cos := sinCos(angle)
	*mat = Matrix4d{
		M00: 1,
		M11: cos, M12: sin,
		M21: -sin, M22: cos,
		M33: 1,
	}
	return mat
}

// RotationY sets mat to a rotation of angle radians about the Y axis.
func (mat *Matrix4d) RotationY(angle float64) *Matrix4d {
	sin, cos := sinCos(angle)
	*mat = Matrix4d{
		M00: cos, M02: -sin,
		M11: 1,
		M20: sin, M22: cos,
		M33: 1,
	}
	return mat
}

// RotationZ sets mat to a rotation of angle radians about the Z axis.
func (mat *Matrix4d) RotationZ(angle float64) *Matrix4d {
	sin, cos := sinCos(angle)
	*mat = Matrix4d{
		M00: cos, M01: sin,
		M10: -sin, M11: cos,
		M22: 1,
		M33: 1,
	}
	return mat
}

// RotateX post-multiplies mat by a rotation about the X axis.
func (mat *Matrix4d) RotateX(angle float64) *Matrix4d {
	return mat.RotateXTo(angle, mat)
}

func (mat *Matrix4d) RotateXTo(angle float64, dest *Matrix4d) *Matrix4d {
	sin, cos := sinCos(angle)
	c0, c1, c2, c3 := mat.columns()
	n1 := c1.MulScalar(cos).Add(c2.MulScalar(sin))
	n2 := c2.MulScalar(cos).Sub(c1.MulScalar(sin))
	*dest = matrixFromColumns(c0, n1, n2, c3)
	return dest
}

// RotateY post-multiplies mat by a rotation about the Y axis.
func (mat *Matrix4d) RotateY(angle float64) *Matrix4d {
	return mat.RotateYTo(angle, mat)
}

func (mat *Matrix4d) RotateYTo(angle float64, dest *Matrix4d) *Matrix4d {
	sin, cos := sinCos(angle)
	c0, c1, c2, c3 := mat.columns()
	n0 := c0.MulScalar(cos).Sub(c2.MulScalar(sin))
	n2 := c0.MulScalar(sin).Add(c2.MulScalar(cos))
	*dest = matrixFromColumns(n0, c1, n2, c3)
	return dest
}

// RotateZ post-multiplies mat by a rotation about the Z axis.
func (mat *Matrix4d) RotateZ(angle float64) *Matrix4d {
	return mat.RotateZTo(angle, mat)
}

func (mat *Matrix4d) RotateZTo(angle float64, dest *Matrix4d) *Matrix4d {
	sin, cos := sinCos(angle)
	c0, c1, c2, c3 := mat.columns()
	n0 := c0.MulScalar(cos).Add(c1.MulScalar(sin))
	n1 := c1.MulScalar(cos).Sub(c0.MulScalar(sin))
	*dest = matrixFromColumns(n0, n1, c2, c3)
	return dest
}

// ------------------------------------------
// Euler composites
// ------------------------------------------

// RotationXYZ sets mat to RotationX(angleX) * RotationY(angleY) * RotationZ(angleZ).
func (mat *Matrix4d) RotationXYZ(angleX, angleY, angleZ float64) *Matrix4d {
	return mat.Identity().RotateXYZ(angleX, angleY, angleZ)
}

// RotationZYX sets mat to RotationZ(angleZ) * RotationY(angleY) * RotationX(angleX).
func (mat *Matrix4d) RotationZYX(angleZ, angleY, angleX float64) *Matrix4d {
	return mat.Identity().RotateZYX(angleZ, angleY, angleX)
}

// RotationYXZ sets mat to RotationY(angleY) * RotationX(angleX) * RotationZ(angleZ).
func (mat *Matrix4d) RotationYXZ(angleY, angleX, angleZ float64) *Matrix4d {
	return mat.Identity().RotateYXZ(angleY, angleX, angleZ)
}

/**
 * @brief Post-multiplies mat by the rotations about X, then Y, then Z in one
 * pass. Equivalent to RotateX(angleX).RotateY(angleY).RotateZ(angleZ).
 */
func (mat *Matrix4d) RotateXYZ(angleX, angleY, angleZ float64) *Matrix4d {
	return mat.RotateXYZTo(angleX, angleY, angleZ, mat)
}

func (mat *Matrix4d) RotateXYZTo(angleX, angleY, angleZ float64, dest *Matrix4d) *Matrix4d {
	sinX, cosX := sinCos(angleX)
	sinY, cosY := sinCos(angleY)
	sinZ, cosZ := sinCos(angleZ)
	c0, c1, c2, c3 := mat.columns()
	// X
	x1 := c1.MulScalar(cosX).Add(c2.MulScalar(sinX))
	x2 := c2.MulScalar(cosX).Sub(c1.MulScalar(sinX))
	// Y
	y0 := c0.MulScalar(cosY).Sub(x2.MulScalar(sinY))
	y2 := c0.MulScalar(sinY).Add(x2.MulScalar(cosY))
	// Z
	z0 := y0.MulScalar(cosZ).Add(x1.MulScalar(sinZ))
	z1 := x1.MulScalar(cosZ).Sub(y0.MulScalar(sinZ))
	*dest = matrixFromColumns(z0, z1, y2, c3)
	return dest
}

/**
 * @brief Post-multiplies mat by the rotations about Z, then Y, then X in one
 * pass. Equivalent to RotateZ(angleZ).RotateY(angleY).RotateX(angleX).
 */
func (mat *Matrix4d) RotateZYX(angleZ, angleY, angleX float64) *Matrix4d {
	return mat.RotateZYXTo(angleZ, angleY, angleX, mat)
}

func (mat *Matrix4d) RotateZYXTo(angleZ, angleY, angleX float64, dest *Matrix4d) *Matrix4d {
	sinX, cosX := sinCos(angleX)
	sinY, cosY := sinCos(angleY)
	sinZ, cosZ := sinCos(angleZ)
	c0, c1, c2, c3 := mat.columns()
	// Z
	z0 := c0.MulScalar(cosZ).Add(c1.MulScalar(sinZ))
	z1 := c1.MulScalar(cosZ).Sub(c0.MulScalar(sinZ))
	// Y
	y0 := z0.MulScalar(cosY).Sub(c2.MulScalar(sinY))
	y2 := z0.MulScalar(sinY).Add(c2.MulScalar(cosY))
	// X
	x1 := z1.MulScalar(cosX).Add(y2.MulScalar(sinX))
	x2 := y2.MulScalar(cosX).Sub(z1.MulScalar(sinX))
	*dest = matrixFromColumns(y0, x1, x2, c3)
	return dest
}

/**
 * @brief Post-multiplies mat by the rotations about Y, then X, then Z in one
 * pass. Equivalent to RotateY(angleY).RotateX(angleX).RotateZ(angleZ).
 */
func (mat *Matrix4d) RotateYXZ(angleY, angleX, angleZ float64) *Matrix4d {
	return mat.RotateYXZTo(angleY, angleX, angleZ, mat)
}

func (mat *Matrix4d) RotateYXZTo(angleY, angleX, angleZ float64, dest *Matrix4d) *Matrix4d {
	sinX, cosX := sinCos(angleX)
	sinY, cosY := sinCos(angleY)
	sinZ, cosZ := sinCos(angleZ)
	c0, c1, c2, c3 := mat.columns()
	// Y
	y0 := c0.MulScalar(cosY).Sub(c2.MulScalar(sinY))
	y2 := c0.MulScalar(sinY).Add(c2.MulScalar(cosY))
	// X
	x1 := c1.MulScalar(cosX).Add(y2.MulScalar(sinX))
	x2 := y2.MulScalar(cosX).Sub(c1.MulScalar(sinX))
	// Z
	z0 := y0.MulScalar(cosZ).Add(x1.MulScalar(sinZ))
	z1 := x1.MulScalar(cosZ).Sub(y0.MulScalar(sinZ))
	*dest = matrixFromColumns(z0, z1, x2, c3)
	return dest
}

// ------------------------------------------
// Arbitrary rotations
// ------------------------------------------

/**
 * @brief Sets mat to a rotation of angle radians about the axis (x, y, z).
 * The axis must be unit length.
 */
func (mat *Matrix4d) Rotation(angle, x, y, z float64) *Matrix4d {
	return mat.SetMatrix3d(axisAngleRotation(angle, x, y, z))
}

// RotationAxisAngle sets mat to the rotation described by a.
func (mat *Matrix4d) RotationAxisAngle(a AxisAngle4d) *Matrix4d {
	return mat.Rotation(a.Angle, a.X, a.Y, a.Z)
}

// SetFromAxisAngle replaces the 3x3 block with the rotation described by a
// and keeps the other elements.
func (mat *Matrix4d) SetFromAxisAngle(a AxisAngle4d) *Matrix4d {
	r := axisAngleRotation(a.Angle, a.X, a.Y, a.Z)
	return mat.Set3x3(NewMatrix4dFromMatrix3d(r))
}

// Rotate post-multiplies mat by a rotation about the unit axis (x, y, z).
func (mat *Matrix4d) Rotate(angle, x, y, z float64) *Matrix4d {
	return mat.RotateTo(angle, x, y, z, mat)
}

func (mat *Matrix4d) RotateTo(angle, x, y, z float64, dest *Matrix4d) *Matrix4d {
	return mat.rotate3x3To(axisAngleRotation(angle, x, y, z), dest)
}

// RotateAxisAngle post-multiplies mat by the rotation described by a.
func (mat *Matrix4d) RotateAxisAngle(a AxisAngle4d) *Matrix4d {
	return mat.RotateTo(a.Angle, a.X, a.Y, a.Z, mat)
}

// RotateLocal pre-multiplies mat by a rotation about the unit axis (x, y, z).
func (mat *Matrix4d) RotateLocal(angle, x, y, z float64) *Matrix4d {
	return mat.RotateLocalTo(angle, x, y, z, mat)
}

func (mat *Matrix4d) RotateLocalTo(angle, x, y, z float64, dest *Matrix4d) *Matrix4d {
	return mat.MulLocalTo(NewMatrix4d().Rotation(angle, x, y, z), dest)
}

// RotationQuat sets mat to the rotation of the unit quaternion q.
func (mat *Matrix4d) RotationQuat(q Quaterniond) *Matrix4d {
	return mat.SetMatrix3d(quaternionRotation(q))
}

// RotateQuat post-multiplies mat by the rotation of the unit quaternion q.
func (mat *Matrix4d) RotateQuat(q Quaterniond) *Matrix4d {
	return mat.RotateQuatTo(q, mat)
}

func (mat *Matrix4d) RotateQuatTo(q Quaterniond, dest *Matrix4d) *Matrix4d {
	return mat.rotate3x3To(quaternionRotation(q), dest)
}

// rotate3x3To writes mat * r into dest, where r is a pure rotation/scale
// block. Column 3 of mat is kept.
func (mat *Matrix4d) rotate3x3To(r Matrix3d, dest *Matrix4d) *Matrix4d {
	c0, c1, c2, c3 := mat.columns()
	n0 := c0.MulScalar(r.M00).Add(c1.MulScalar(r.M01)).Add(c2.MulScalar(r.M02))
	n1 := c0.MulScalar(r.M10).Add(c1.MulScalar(r.M11)).Add(c2.MulScalar(r.M12))
	n2 := c0.MulScalar(r.M20).Add(c1.MulScalar(r.M21)).Add(c2.MulScalar(r.M22))
	*dest = matrixFromColumns(n0, n1, n2, c3)
	return dest
}

func axisAngleRotation(angle, x, y, z float64) Matrix3d {
	sin, cos := sinCos(angle)
	c := 1.0 - cos
	xy, xz, yz := x*y, x*z, y*z
	return Matrix3d{
		M00: cos + x*x*c, M01: xy*c + z*sin, M02: xz*c - y*sin,
		M10: xy*c - z*sin, M11: cos + y*y*c, M12: yz*c + x*sin,
		M20: xz*c + y*sin, M21: yz*c - x*sin, M22: cos + z*z*c,
	}
}

func quaternionRotation(q Quaterniond) Matrix3d {
	w2, x2, y2, z2 := q.W*q.W, q.X*q.X, q.Y*q.Y, q.Z*q.Z
	zw, xy, xz := q.Z*q.W, q.X*q.Y, q.X*q.Z
	yw, yz, xw := q.Y*q.W, q.Y*q.Z, q.X*q.W
	return Matrix3d{
		M00: w2 + x2 - z2 - y2, M01: 2 * (xy + zw), M02: 2 * (xz - yw),
		M10: 2 * (xy - zw), M11: y2 - z2 + w2 - x2, M12: 2 * (yz + xw),
		M20: 2 * (yw + xz), M21: 2 * (yz - xw), M22: z2 - y2 - x2 + w2,
	}
}

// ------------------------------------------
// Translation / rotation / scale composites
// ------------------------------------------

/**
 * @brief Sets mat to T * R * S: scale first, then rotate by the unit
 * quaternion q, then translate by t.
 */
func (mat *Matrix4d) TranslationRotateScale(t Vector3d, q Quaterniond, s Vector3d) *Matrix4d {
	dqx, dqy, dqz := q.X+q.X, q.Y+q.Y, q.Z+q.Z
	q00, q11, q22 := dqx*q.X, dqy*q.Y, dqz*q.Z
	q01, q02, q03 := dqx*q.Y, dqx*q.Z, dqx*q.W
	q12, q13, q23 := dqy*q.Z, dqy*q.W, dqz*q.W
	*mat = Matrix4d{
		M00: s.X - (q11+q22)*s.X, M01: (q01 + q23) * s.X, M02: (q02 - q13) * s.X,
		M10: (q01 - q23) * s.Y, M11: s.Y - (q22+q00)*s.Y, M12: (q12 + q03) * s.Y,
		M20: (q02 + q13) * s.Z, M21: (q12 - q03) * s.Z, M22: s.Z - (q11+q00)*s.Z,
		M30: t.X, M31: t.Y, M32: t.Z, M33: 1,
	}
	return mat
}

// TranslationRotateScaleInvert sets mat to (T * R * S)^-1.
func (mat *Matrix4d) TranslationRotateScaleInvert(t Vector3d, q Quaterniond, s Vector3d) *Matrix4d {
	nqx, nqy, nqz := -q.X, -q.Y, -q.Z
	dqx, dqy, dqz := nqx+nqx, nqy+nqy, nqz+nqz
	q00, q11, q22 := dqx*nqx, dqy*nqy, dqz*nqz
	q01, q02, q03 := dqx*nqy, dqx*nqz, dqx*q.W
	q12, q13, q23 := dqy*nqz, dqy*q.W, dqz*q.W
	isx, isy, isz := 1.0/s.X, 1.0/s.Y, 1.0/s.Z
	r := Matrix4d{
		M00: isx * (1.0 - q11 - q22), M01: isy * (q01 + q23), M02: isz * (q02 - q13),
		M10: isx * (q01 - q23), M11: isy * (1.0 - q22 - q00), M12: isz * (q12 + q03),
		M20: isx * (q02 + q13), M21: isy * (q12 - q03), M22: isz * (1.0 - q11 - q00),
		M33: 1,
	}
	r.M30 = -r.M00*t.X - r.M10*t.Y - r.M20*t.Z
	r.M31 = -r.M01*t.X - r.M11*t.Y - r.M21*t.Z
	r.M32 = -r.M02*t.X - r.M12*t.Y - r.M22*t.Z
	*mat = r
	return mat
}

// TranslationRotate sets mat to T * R with unit scale.
func (mat *Matrix4d) TranslationRotate(t Vector3d, q Quaterniond) *Matrix4d {
	return mat.TranslationRotateScale(t, q, NewVector3dOne())
}

// TranslateRotateScale post-multiplies mat by T * R * S.
func (mat *Matrix4d) TranslateRotateScale(t Vector3d, q Quaterniond, s Vector3d) *Matrix4d {
	return mat.MulAffineR(NewMatrix4d().TranslationRotateScale(t, q, s))
}

// ------------------------------------------
// Vector transforms
// ------------------------------------------

// Transform multiplies v by mat.
func (mat *Matrix4d) Transform(v Vector4d) Vector4d {
	return Vector4d{
		X: mat.M00*v.X + mat.M10*v.Y + mat.M20*v.Z + mat.M30*v.W,
		Y: mat.M01*v.X + mat.M11*v.Y + mat.M21*v.Z + mat.M31*v.W,
		Z: mat.M02*v.X + mat.M12*v.Y + mat.M22*v.Z + mat.M32*v.W,
		W: mat.M03*v.X + mat.M13*v.Y + mat.M23*v.Z + mat.M33*v.W,
	}
}

// TransformProject multiplies the point (v, 1) by mat and divides by w.
func (mat *Matrix4d) TransformProject(v Vector3d) Vector3d {
	return mat.Transform(v.ToVector4d(1.0)).PerspectiveDivide()
}

// TransformPosition transforms the point v by the 3x3 block and the
// translation. Row 3 is ignored.
func (mat *Matrix4d) TransformPosition(v Vector3d) Vector3d {
	return Vector3d{
		X: mat.M00*v.X + mat.M10*v.Y + mat.M20*v.Z + mat.M30,
		Y: mat.M01*v.X + mat.M11*v.Y + mat.M21*v.Z + mat.M31,
		Z: mat.M02*v.X + mat.M12*v.Y + mat.M22*v.Z + mat.M32,
	}
}

// TransformDirection transforms the direction v by the 3x3 block only.
func (mat *Matrix4d) TransformDirection(v Vector3d) Vector3d {
	return Vector3d{
		X: mat.M00*v.X + mat.M10*v.Y + mat.M20*v.Z,
		Y: mat.M01*v.X + mat.M11*v.Y + mat.M21*v.Z,
		Z: mat.M02*v.X + mat.M12*v.Y + mat.M22*v.Z,
	}
}

// TransformAffine multiplies v by an affine mat; w is carried through.
func (mat *Matrix4d) TransformAffine(v Vector4d) Vector4d {
	return Vector4d{
		X: mat.M00*v.X + mat.M10*v.Y + mat.M20*v.Z + mat.M30*v.W,
		Y: mat.M01*v.X + mat.M11*v.Y + mat.M21*v.Z + mat.M31*v.W,
		Z: mat.M02*v.X + mat.M12*v.Y + mat.M22*v.Z + mat.M32*v.W,
		W: v.W,
	}
}
