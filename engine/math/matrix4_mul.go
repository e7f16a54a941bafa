package math

/**
 * @brief Multiplies mat by right and stores the result in mat: mat * right.
 * When transforming a vector v with the result, right is applied first:
 * mat * right * v.
 *
 * @param right The right operand of the multiplication.
 * @return mat for chaining.
 */
func (mat *Matrix4d) Mul(right Matrix4dc) *Matrix4d {
	return mat.MulTo(right, mat)
}

// MulTo writes mat * right into dest. dest may be mat or right.
func (mat *Matrix4d) MulTo(right Matrix4dc, dest *Matrix4d) *Matrix4d {
	a, b := *mat, right.Matrix()
	*dest = mulGeneric(&a, &b)
	return dest
}

func mulGeneric(a, b *Matrix4d) Matrix4d {
	return Matrix4d{
		M00: a.M00*b.M00 + a.M10*b.M01 + a.M20*b.M02 + a.M30*b.M03,
		M01: a.M01*b.M00 + a.M11*b.M01 + a.M21*b.M02 + a.M31*b.M03,
		M02: a.M02*b.M00 + a.M12*b.M01 + a.M22*b.M02 + a.M32*b.M03,
		M03: a.M03*b.M00 + a.M13*b.M01 + a.M23*b.M02 + a.M33*b.M03,
		M10: a.M00*b.M10 + a.M10*b.M11 + a.M20*b.M12 + a.M30*b.M13,
		M11: a.M01*b.M10 + a.M11*b.M11 + a.M21*b.M12 + a.M31*b.M13,
		M12: a.M02*b.M10 + a.M12*b.M11 + a.M22*b.M12 + a.M32*b.M13,
		M13: a.M03*b.M10 + a.M13*b.M11 + a.M23*b.M12 + a.M33*b.M13,
		M20: a.M00*b.M20 + a.M10*b.M21 + a.M20*b.M22 + a.M30*b.M23,
		M21: a.M01*b.M20 + a.M11*b.M21 + a.M21*b.M22 + a.M31*b.M23,
		M22: a.M02*b.M20 + a.M12*b.M21 + a.M22*b.M22 + a.M32*b.M23,
		M23: a.M03*b.M20 + a.M13*b.M21 + a.M23*b.M22 + a.M33*b.M23,
		M30: a.M00*b.M30 + a.M10*b.M31 + a.M20*b.M32 + a.M30*b.M33,
		M31: a.M01*b.M30 + a.M11*b.M31 + a.M21*b.M32 + a.M31*b.M33,
		M32: a.M02*b.M30 + a.M12*b.M31 + a.M22*b.M32 + a.M32*b.M33,
		M33: a.M03*b.M30 + a.M13*b.M31 + a.M23*b.M32 + a.M33*b.M33,
	}
}

// mulAffineR multiplies assuming row 3 of b is (0, 0, 0, 1).
func mulAffineR(a, b *Matrix4d) Matrix4d {
	return Matrix4d{
		M00: a.M00*b.M00 + a.M10*b.M01 + a.M20*b.M02,
		M01: a.M01*b.M00 + a.M11*b.M01 + a.M21*b.M02,
		M02: a.M02*b.M00 + a.M12*b.M01 + a.M22*b.M02,
		M03: a.M03*b.M00 + a.M13*b.M01 + a.M23*b.M02,
		M10: a.M00*b.M10 + a.M10*b.M11 + a.M20*b.M12,
		M11: a.M01*b.M10 + a.M11*b.M11 + a.M21*b.M12,
		M12: a.M02*b.M10 + a.M12*b.M11 + a.M22*b.M12,
		M13: a.M03*b.M10 + a.M13*b.M11 + a.M23*b.M12,
		M20: a.M00*b.M20 + a.M10*b.M21 + a.M20*b.M22,
		M21: a.M01*b.M20 + a.M11*b.M21 + a.M21*b.M22,
		M22: a.M02*b.M20 + a.M12*b.M21 + a.M22*b.M22,
		M23: a.M03*b.M20 + a.M13*b.M21 + a.M23*b.M22,
		M30: a.M00*b.M30 + a.M10*b.M31 + a.M20*b.M32 + a.M30,
		M31: a.M01*b.M30 + a.M11*b.M31 + a.M21*b.M32 + a.M31,
		M32: a.M02*b.M30 + a.M12*b.M31 + a.M22*b.M32 + a.M32,
		M33: a.M03*b.M30 + a.M13*b.M31 + a.M23*b.M32 + a.M33,
	}
}

// mulAffine multiplies assuming row 3 of both a and b is (0, 0, 0, 1).
// Row 3 of the result is copied from a.
func mulAffine(a, b *Matrix4d) Matrix4d {
	return Matrix4d{
		M00: a.M00*b.M00 + a.M10*b.M01 + a.M20*b.M02,
		M01: a.M01*b.M00 + a.M11*b.M01 + a.M21*b.M02,
		M02: a.M02*b.M00 + a.M12*b.M01 + a.M22*b.M02,
		M03: a.M03,
		M10: a.M00*b.M10 + a.M10*b.M11 + a.M20*b.M12,
		M11: a.M01*b.M10 + a.M11*b.M11 + a.M21*b.M12,
		M12: a.M02*b.M10 + a.M12*b.M11 + a.M22*b.M12,
		M13: a.M13,
		M20: a.M00*b.M20 + a.M10*b.M21 + a.M20*b.M22,
		M21: a.M01*b.M20 + a.M11*b.M21 + a.M21*b.M22,
		M22: a.M02*b.M20 + a.M12*b.M21 + a.M22*b.M22,
		M23: a.M23,
		M30: a.M00*b.M30 + a.M10*b.M31 + a.M20*b.M32 + a.M30,
		M31: a.M01*b.M30 + a.M11*b.M31 + a.M21*b.M32 + a.M31,
		M32: a.M02*b.M30 + a.M12*b.M31 + a.M22*b.M32 + a.M32,
		M33: a.M33,
	}
}

/**
 * @brief Multiplies mat by right, assuming right is affine (row 3 is
 * (0, 0, 0, 1)). The precondition is not checked.
 */
func (mat *Matrix4d) MulAffineR(right Matrix4dc) *Matrix4d {
	return mat.MulAffineRTo(right, mat)
}

func (mat *Matrix4d) MulAffineRTo(right Matrix4dc, dest *Matrix4d) *Matrix4d {
	a, b := *mat, right.Matrix()
	*dest = mulAffineR(&a, &b)
	return dest
}

/**
 * @brief Multiplies mat by right, assuming both are affine. Row 3 of the
 * result is copied from mat. The precondition is not checked.
 */
func (mat *Matrix4d) MulAffine(right Matrix4dc) *Matrix4d {
	return mat.MulAffineTo(right, mat)
}

func (mat *Matrix4d) MulAffineTo(right Matrix4dc, dest *Matrix4d) *Matrix4d {
	a, b := *mat, right.Matrix()
	*dest = mulAffine(&a, &b)
	return dest
}

// MulLocal pre-multiplies mat by left: left * mat.
func (mat *Matrix4d) MulLocal(left Matrix4dc) *Matrix4d {
	return mat.MulLocalTo(left, mat)
}

func (mat *Matrix4d) MulLocalTo(left Matrix4dc, dest *Matrix4d) *Matrix4d {
	a, b := left.Matrix(), *mat
	*dest = mulGeneric(&a, &b)
	return dest
}

// MulLocalAffine pre-multiplies mat by left, assuming both are affine.
func (mat *Matrix4d) MulLocalAffine(left Matrix4dc) *Matrix4d {
	return mat.MulLocalAffineTo(left, mat)
}

func (mat *Matrix4d) MulLocalAffineTo(left Matrix4dc, dest *Matrix4d) *Matrix4d {
	a, b := left.Matrix(), *mat
	*dest = mulAffine(&a, &b)
	dest.M03, dest.M13, dest.M23, dest.M33 = 0, 0, 0, 1
	return dest
}

/**
 * @brief Multiplies a symmetric perspective projection mat (only M00, M11,
 * M22, M23 and M32 set) by an affine view matrix.
 */
func (mat *Matrix4d) MulPerspectiveAffine(view Matrix4dc) *Matrix4d {
	return mat.MulPerspectiveAffineTo(view, mat)
}

func (mat *Matrix4d) MulPerspectiveAffineTo(view Matrix4dc, dest *Matrix4d) *Matrix4d {
	p, v := *mat, view.Matrix()
	*dest = Matrix4d{
		M00: p.M00 * v.M00, M01: p.M11 * v.M01, M02: p.M22 * v.M02, M03: p.M23 * v.M02,
		M10: p.M00 * v.M10, M11: p.M11 * v.M11, M12: p.M22 * v.M12, M13: p.M23 * v.M12,
		M20: p.M00 * v.M20, M21: p.M11 * v.M21, M22: p.M22 * v.M22, M23: p.M23 * v.M22,
		M30: p.M00 * v.M30, M31: p.M11 * v.M31, M32: p.M22*v.M32 + p.M32, M33: p.M23 * v.M32,
	}
	return dest
}

/**
 * @brief Multiplies an orthographic projection mat (diagonal scale plus
 * translation) by an affine view matrix.
 */
func (mat *Matrix4d) MulOrthoAffine(view Matrix4dc) *Matrix4d {
	return mat.MulOrthoAffineTo(view, mat)
}

func (mat *Matrix4d) MulOrthoAffineTo(view Matrix4dc, dest *Matrix4d) *Matrix4d {
	o, v := *mat, view.Matrix()
	*dest = Matrix4d{
		M00: o.M00 * v.M00, M01: o.M11 * v.M01, M02: o.M22 * v.M02, M03: 0,
		M10: o.M00 * v.M10, M11: o.M11 * v.M11, M12: o.M22 * v.M12, M13: 0,
		M20: o.M00 * v.M20, M21: o.M11 * v.M21, M22: o.M22 * v.M22, M23: 0,
		M30: o.M00*v.M30 + o.M30, M31: o.M11*v.M31 + o.M31, M32: o.M22*v.M32 + o.M32, M33: 1,
	}
	return dest
}

/**
 * @brief Multiplies a pure translation mat by an affine right matrix.
 */
func (mat *Matrix4d) MulTranslationAffine(right Matrix4dc) *Matrix4d {
	return mat.MulTranslationAffineTo(right, mat)
}

func (mat *Matrix4d) MulTranslationAffineTo(right Matrix4dc, dest *Matrix4d) *Matrix4d {
	t, r := *mat, right.Matrix()
	*dest = Matrix4d{
		M00: r.M00, M01: r.M01, M02: r.M02, M03: r.M03,
		M10: r.M10, M11: r.M11, M12: r.M12, M13: r.M13,
		M20: r.M20, M21: r.M21, M22: r.M22, M23: r.M23,
		M30: r.M30 + t.M30, M31: r.M31 + t.M31, M32: r.M32 + t.M32, M33: r.M33,
	}
	return dest
}
