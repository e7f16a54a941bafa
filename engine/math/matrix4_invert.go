package math

/**
 * @brief Inverts mat using cofactors. A singular matrix is not detected: the
 * division by a zero determinant fills the result with Inf/NaN.
 */
func (mat *Matrix4d) Invert() *Matrix4d {
	return mat.InvertTo(mat)
}

func (mat *Matrix4d) InvertTo(dest *Matrix4d) *Matrix4d {
	s := *mat
	a := s.M00*s.M11 - s.M01*s.M10
	b := s.M00*s.M12 - s.M02*s.M10
	c := s.M00*s.M13 - s.M03*s.M10
	d := s.M01*s.M12 - s.M02*s.M11
	e := s.M01*s.M13 - s.M03*s.M11
	f := s.M02*s.M13 - s.M03*s.M12
	g := s.M20*s.M31 - s.M21*s.M30
	h := s.M20*s.M32 - s.M22*s.M30
	i := s.M20*s.M33 - s.M23*s.M30
	j := s.M21*s.M32 - s.M22*s.M31
	k := s.M21*s.M33 - s.M23*s.M31
	l := s.M22*s.M33 - s.M23*s.M32
	det := 1.0 / (a*l - b*k + c*j + d*i - e*h + f*g)
	*dest = Matrix4d{
		M00: (s.M11*l - s.M12*k + s.M13*j) * det,
		M01: (-s.M01*l + s.M02*k - s.M03*j) * det,
		M02: (s.M31*f - s.M32*e + s.M33*d) * det,
		M03: (-s.M21*f + s.M22*e - s.M23*d) * det,
		M10: (-s.M10*l + s.M12*i - s.M13*h) * det,
		M11: (s.M00*l - s.M02*i + s.M03*h) * det,
		M12: (-s.M30*f + s.M32*c - s.M33*b) * det,
		M13: (s.M20*f - s.M22*c + s.M23*b) * det,
		M20: (s.M10*k - s.M11*i + s.M13*g) * det,
		M21: (-s.M00*k + s.M01*i - s.M03*g) * det,
		M22: (s.M30*e - s.M31*c + s.M33*a) * det,
		M23: (-s.M20*e + s.M21*c - s.M23*a) * det,
		M30: (-s.M10*j + s.M11*h - s.M12*g) * det,
		M31: (s.M00*j - s.M01*h + s.M02*g) * det,
		M32: (-s.M30*d + s.M31*b - s.M32*a) * det,
		M33: (s.M20*d - s.M21*b + s.M22*a) * det,
	}
	return dest
}

/**
 * @brief Inverts an affine mat: the 3x3 block is inverted and the
 * translation becomes -inverse(3x3) * translation.
 */
func (mat *Matrix4d) InvertAffine() *Matrix4d {
	return mat.InvertAffineTo(mat)
}

func (mat *Matrix4d) InvertAffineTo(dest *Matrix4d) *Matrix4d {
	s := *mat
	det := 1.0 / s.Determinant3x3()
	r := Matrix4d{
		M00: (s.M11*s.M22 - s.M12*s.M21) * det,
		M01: (s.M21*s.M02 - s.M22*s.M01) * det,
		M02: (s.M12*s.M01 - s.M11*s.M02) * det,
		M10: (s.M12*s.M20 - s.M10*s.M22) * det,
		M11: (s.M22*s.M00 - s.M20*s.M02) * det,
		M12: (s.M10*s.M02 - s.M12*s.M00) * det,
		M20: (s.M10*s.M21 - s.M11*s.M20) * det,
		M21: (s.M20*s.M01 - s.M21*s.M00) * det,
		M22: (s.M11*s.M00 - s.M10*s.M01) * det,
		M33: 1.0,
	}
	r.M30 = -(r.M00*s.M30 + r.M10*s.M31 + r.M20*s.M32)
	r.M31 = -(r.M01*s.M30 + r.M11*s.M31 + r.M21*s.M32)
	r.M32 = -(r.M02*s.M30 + r.M12*s.M31 + r.M22*s.M32)
	*dest = r
	return dest
}

/**
 * @brief Inverts an affine mat whose 3x3 block is orthonormal (rotation
 * only), such as a look-at view matrix. The block is transposed.
 */
func (mat *Matrix4d) InvertAffineUnitScale() *Matrix4d {
	return mat.InvertAffineUnitScaleTo(mat)
}

func (mat *Matrix4d) InvertAffineUnitScaleTo(dest *Matrix4d) *Matrix4d {
	s := *mat
	*dest = Matrix4d{
		M00: s.M00, M01: s.M10, M02: s.M20, M03: 0,
		M10: s.M01, M11: s.M11, M12: s.M21, M13: 0,
		M20: s.M02, M21: s.M12, M22: s.M22, M23: 0,
		M30: -(s.M00*s.M30 + s.M01*s.M31 + s.M02*s.M32),
		M31: -(s.M10*s.M30 + s.M11*s.M31 + s.M12*s.M32),
		M32: -(s.M20*s.M30 + s.M21*s.M31 + s.M22*s.M32),
		M33: 1,
	}
	return dest
}

// InvertLookAt inverts a view matrix built by LookAt or LookAlong.
func (mat *Matrix4d) InvertLookAt() *Matrix4d {
	return mat.InvertAffineUnitScaleTo(mat)
}

func (mat *Matrix4d) InvertLookAtTo(dest *Matrix4d) *Matrix4d {
	return mat.InvertAffineUnitScaleTo(dest)
}

/**
 * @brief Inverts a symmetric perspective projection built by Perspective.
 * Any other input gives a meaningless result.
 */
func (mat *Matrix4d) InvertPerspective() *Matrix4d {
	return mat.InvertPerspectiveTo(mat)
}

func (mat *Matrix4d) InvertPerspectiveTo(dest *Matrix4d) *Matrix4d {
	s := *mat
	a := 1.0 / (s.M00 * s.M11)
	l := -1.0 / (s.M23 * s.M32)
	*dest = Matrix4d{
		M00: s.M11 * a,
		M11: s.M00 * a,
		M23: -s.M23 * l,
		M32: -s.M32 * l,
		M33: s.M22 * l,
	}
	return dest
}

// InvertFrustum inverts a projection built by Frustum.
func (mat *Matrix4d) InvertFrustum() *Matrix4d {
	return mat.InvertFrustumTo(mat)
}

func (mat *Matrix4d) InvertFrustumTo(dest *Matrix4d) *Matrix4d {
	s := *mat
	invM00 := 1.0 / s.M00
	invM11 := 1.0 / s.M11
	invM23 := 1.0 / s.M23
	invM32 := 1.0 / s.M32
	*dest = Matrix4d{
		M00: invM00,
		M11: invM11,
		M23: invM32,
		M30: -s.M20 * invM00 * invM23,
		M31: -s.M21 * invM11 * invM23,
		M32: invM23,
		M33: -s.M22 * invM23 * invM32,
	}
	return dest
}

// InvertOrtho inverts a projection built by Ortho or OrthoSymmetric.
func (mat *Matrix4d) InvertOrtho() *Matrix4d {
	return mat.InvertOrthoTo(mat)
}

func (mat *Matrix4d) InvertOrthoTo(dest *Matrix4d) *Matrix4d {
	s := *mat
	invM00 := 1.0 / s.M00
	invM11 := 1.0 / s.M11
	invM22 := 1.0 / s.M22
	*dest = Matrix4d{
		M00: invM00,
		M11: invM11,
		M22: invM22,
		M30: -s.M30 * invM00,
		M31: -s.M31 * invM11,
		M32: -s.M32 * invM22,
		M33: 1,
	}
	return dest
}

/**
 * @brief Computes (mat * view)^-1 where mat is a symmetric perspective
 * projection and view an affine matrix with an orthonormal 3x3 block.
 * The result is stored in dest; mat is not modified.
 */
func (mat *Matrix4d) InvertPerspectiveView(view Matrix4dc, dest *Matrix4d) *Matrix4d {
	s, v := *mat, view.Matrix()
	a := 1.0 / (s.M00 * s.M11)
	l := -1.0 / (s.M23 * s.M32)
	pm00 := s.M11 * a
	pm11 := s.M00 * a
	pm23 := -s.M23 * l
	pm32 := -s.M32 * l
	pm33 := s.M22 * l
	vm30 := -v.M00*v.M30 - v.M01*v.M31 - v.M02*v.M32
	vm31 := -v.M10*v.M30 - v.M11*v.M31 - v.M12*v.M32
	vm32 := -v.M20*v.M30 - v.M21*v.M31 - v.M22*v.M32
	*dest = Matrix4d{
		M00: v.M00 * pm00, M01: v.M10 * pm00, M02: v.M20 * pm00, M03: 0,
		M10: v.M01 * pm11, M11: v.M11 * pm11, M12: v.M21 * pm11, M13: 0,
		M20: vm30 * pm23, M21: vm31 * pm23, M22: vm32 * pm23, M23: pm23,
		M30: v.M02*pm32 + vm30*pm33,
		M31: v.M12*pm32 + vm31*pm33,
		M32: v.M22*pm32 + vm32*pm33,
		M33: pm33,
	}
	return dest
}

// ------------------------------------------
// Decomposition
// ------------------------------------------

// GetTranslation returns (M30, M31, M32).
func (mat *Matrix4d) GetTranslation() Vector3d {
	return Vector3d{mat.M30, mat.M31, mat.M32}
}

// GetScale returns the length of each of the first three columns.
func (mat *Matrix4d) GetScale() Vector3d {
	return Vector3d{
		Vector3d{mat.M00, mat.M01, mat.M02}.Length(),
		Vector3d{mat.M10, mat.M11, mat.M12}.Length(),
		Vector3d{mat.M20, mat.M21, mat.M22}.Length(),
	}
}

// Get3x3 returns the upper-left 3x3 block.
func (mat *Matrix4d) Get3x3() Matrix3d {
	return Matrix3d{
		mat.M00, mat.M01, mat.M02,
		mat.M10, mat.M11, mat.M12,
		mat.M20, mat.M21, mat.M22,
	}
}

// GetNormalizedRotation extracts the rotation of a matrix whose 3x3 block is
// orthonormal.
func (mat *Matrix4d) GetNormalizedRotation() Quaterniond {
	var q Quaterniond
	return *q.SetFromNormalized(mat)
}

// GetUnnormalizedRotation extracts the rotation of a matrix whose 3x3 block
// may carry scaling.
func (mat *Matrix4d) GetUnnormalizedRotation() Quaterniond {
	var q Quaterniond
	return *q.SetFromUnnormalized(mat)
}

// GetAxisAngle returns the rotation of an orthonormal 3x3 block as an
// axis-angle.
func (mat *Matrix4d) GetAxisAngle() AxisAngle4d {
	return mat.GetNormalizedRotation().AxisAngle()
}

/**
 * @brief Replaces mat by its normal matrix: the inverse-transpose of the
 * upper-left 3x3 block. All other elements are reset to the identity.
 */
func (mat *Matrix4d) Normal() *Matrix4d {
	return mat.NormalTo(mat)
}

func (mat *Matrix4d) NormalTo(dest *Matrix4d) *Matrix4d {
	return dest.SetMatrix3d(mat.Normal3x3())
}

// Normal3x3 returns the inverse-transpose of the upper-left 3x3 block.
func (mat *Matrix4d) Normal3x3() Matrix3d {
	s := 1.0 / mat.Determinant3x3()
	return Matrix3d{
		M00: (mat.M11*mat.M22 - mat.M21*mat.M12) * s,
		M01: (mat.M20*mat.M12 - mat.M10*mat.M22) * s,
		M02: (mat.M10*mat.M21 - mat.M20*mat.M11) * s,
		M10: (mat.M21*mat.M02 - mat.M01*mat.M22) * s,
		M11: (mat.M00*mat.M22 - mat.M20*mat.M02) * s,
		M12: (mat.M20*mat.M01 - mat.M00*mat.M21) * s,
		M20: (mat.M01*mat.M12 - mat.M02*mat.M11) * s,
		M21: (mat.M02*mat.M10 - mat.M00*mat.M12) * s,
		M22: (mat.M00*mat.M11 - mat.M01*mat.M10) * s,
	}
}

// Normalize3x3 scales each of the first three columns to unit length. All
// other elements are kept.
func (mat *Matrix4d) Normalize3x3() *Matrix4d {
	return mat.Normalize3x3To(mat)
}

func (mat *Matrix4d) Normalize3x3To(dest *Matrix4d) *Matrix4d {
	s := *mat
	invX := invSqrt(s.M00*s.M00 + s.M01*s.M01 + s.M02*s.M02)
	invY := invSqrt(s.M10*s.M10 + s.M11*s.M11 + s.M12*s.M12)
	invZ := invSqrt(s.M20*s.M20 + s.M21*s.M21 + s.M22*s.M22)
	s.M00, s.M01, s.M02 = s.M00*invX, s.M01*invX, s.M02*invX
	s.M10, s.M11, s.M12 = s.M10*invY, s.M11*invY, s.M12*invY
	s.M20, s.M21, s.M22 = s.M20*invZ, s.M21*invZ, s.M22*invZ
	*dest = s
	return dest
}
