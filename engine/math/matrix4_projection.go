package math

import m "math"

// projectionDepth returns M22 and M32 of a right-handed perspective or
// frustum projection. A zFar or zNear of +Inf selects the infinite limit.
func projectionDepth(zNear, zFar float64, zZeroToOne bool) (float64, float64) {
	const e = infiniteProjectionEpsilon
	farInf := zFar > 0 && m.IsInf(zFar, 1)
	nearInf := zNear > 0 && m.IsInf(zNear, 1)
	switch {
	case farInf:
		if zZeroToOne {
			return e - 1.0, (e - 1.0) * zNear
		}
		return e - 1.0, (e - 2.0) * zNear
	case nearInf:
		if zZeroToOne {
			return -e, (1.0 - e) * zFar
		}
		return 1.0 - e, (2.0 - e) * zFar
	case zZeroToOne:
		return zFar / (zNear - zFar), zFar * zNear / (zNear - zFar)
	}
	return (zFar + zNear) / (zNear - zFar), (zFar + zFar) * zNear / (zNear - zFar)
}

// flipZ negates column 2, turning a right-handed projection into its
// left-handed counterpart.
func (mat *Matrix4d) flipZ() *Matrix4d {
	mat.M20, mat.M21, mat.M22, mat.M23 = -mat.M20, -mat.M21, -mat.M22, -mat.M23
	return mat
}

/**
 * @brief Writes mat * p into dest where p is a projection matrix whose only
 * non-zero elements are M00, M11, column 2 and column 3.
 */
func (mat *Matrix4d) mulProjectionTo(p *Matrix4d, dest *Matrix4d) *Matrix4d {
	c0, c1, c2, c3 := mat.columns()
	n0 := c0.MulScalar(p.M00)
	n1 := c1.MulScalar(p.M11)
	n2 := c0.MulScalar(p.M20).Add(c1.MulScalar(p.M21)).Add(c2.MulScalar(p.M22)).Add(c3.MulScalar(p.M23))
	n3 := c0.MulScalar(p.M30).Add(c1.MulScalar(p.M31)).Add(c2.MulScalar(p.M32)).Add(c3.MulScalar(p.M33))
	*dest = matrixFromColumns(n0, n1, n2, n3)
	return dest
}

// ------------------------------------------
// Perspective
// ------------------------------------------

/**
 * @brief Sets mat to a symmetric right-handed perspective projection using
 * OpenGL's NDC z range of [-1, 1].
 *
 * @param fovy The vertical field of view in radians, in (0, PI).
 * @param aspect The aspect ratio, width divided by height.
 * @param zNear The near clip distance. +Inf selects an infinite near plane.
 * @param zFar The far clip distance. +Inf selects an infinite far plane.
 */
func (mat *Matrix4d) SetPerspective(fovy, aspect, zNear, zFar float64) *Matrix4d {
	return mat.SetPerspectiveNDC(fovy, aspect, zNear, zFar, false)
}

// SetPerspectiveNDC is SetPerspective with an explicit NDC z range: [0, 1]
// when zZeroToOne is true, [-1, 1] otherwise.
func (mat *Matrix4d) SetPerspectiveNDC(fovy, aspect, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	h := m.Tan(fovy * 0.5)
	m22, m32 := projectionDepth(zNear, zFar, zZeroToOne)
	*mat = Matrix4d{
		M00: 1.0 / (h * aspect),
		M11: 1.0 / h,
		M22: m22, M23: -1.0,
		M32: m32,
	}
	return mat
}

// SetPerspectiveLH sets mat to a left-handed perspective projection.
func (mat *Matrix4d) SetPerspectiveLH(fovy, aspect, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	return mat.SetPerspectiveNDC(fovy, aspect, zNear, zFar, zZeroToOne).flipZ()
}

// Perspective post-multiplies mat by a right-handed OpenGL perspective
// projection.
func (mat *Matrix4d) Perspective(fovy, aspect, zNear, zFar float64) *Matrix4d {
	return mat.PerspectiveTo(fovy, aspect, zNear, zFar, false, mat)
}

func (mat *Matrix4d) PerspectiveNDC(fovy, aspect, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	return mat.PerspectiveTo(fovy, aspect, zNear, zFar, zZeroToOne, mat)
}

func (mat *Matrix4d) PerspectiveTo(fovy, aspect, zNear, zFar float64, zZeroToOne bool, dest *Matrix4d) *Matrix4d {
	var p Matrix4d
	p.SetPerspectiveNDC(fovy, aspect, zNear, zFar, zZeroToOne)
	return mat.mulProjectionTo(&p, dest)
}

// PerspectiveLH post-multiplies mat by a left-handed perspective projection.
func (mat *Matrix4d) PerspectiveLH(fovy, aspect, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	var p Matrix4d
	p.SetPerspectiveLH(fovy, aspect, zNear, zFar, zZeroToOne)
	return mat.mulProjectionTo(&p, mat)
}

// ------------------------------------------
// Frustum
// ------------------------------------------

/**
 * @brief Sets mat to an arbitrary right-handed perspective frustum with
 * OpenGL's NDC z range. The edges are given on the near plane.
 */
func (mat *Matrix4d) SetFrustum(left, right, bottom, top, zNear, zFar float64) *Matrix4d {
	return mat.SetFrustumNDC(left, right, bottom, top, zNear, zFar, false)
}

func (mat *Matrix4d) SetFrustumNDC(left, right, bottom, top, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	m22, m32 := projectionDepth(zNear, zFar, zZeroToOne)
	*mat = Matrix4d{
		M00: (zNear + zNear) / (right - left),
		M11: (zNear + zNear) / (top - bottom),
		M20: (right + left) / (right - left),
		M21: (top + bottom) / (top - bottom),
		M22: m22, M23: -1.0,
		M32: m32,
	}
	return mat
}

// SetFrustumLH sets mat to a left-handed perspective frustum. The off-center
// terms M20 and M21 keep the sign of the right-handed form.
func (mat *Matrix4d) SetFrustumLH(left, right, bottom, top, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	mat.SetFrustumNDC(left, right, bottom, top, zNear, zFar, zZeroToOne)
	mat.M22 = -mat.M22
	mat.M23 = 1.0
	return mat
}

// Frustum post-multiplies mat by a right-handed OpenGL frustum projection.
func (mat *Matrix4d) Frustum(left, right, bottom, top, zNear, zFar float64) *Matrix4d {
	return mat.FrustumTo(left, right, bottom, top, zNear, zFar, false, mat)
}

func (mat *Matrix4d) FrustumNDC(left, right, bottom, top, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	return mat.FrustumTo(left, right, bottom, top, zNear, zFar, zZeroToOne, mat)
}

func (mat *Matrix4d) FrustumTo(left, right, bottom, top, zNear, zFar float64, zZeroToOne bool, dest *Matrix4d) *Matrix4d {
	var p Matrix4d
	p.SetFrustumNDC(left, right, bottom, top, zNear, zFar, zZeroToOne)
	return mat.mulProjectionTo(&p, dest)
}

// FrustumLH post-multiplies mat by a left-handed frustum projection.
func (mat *Matrix4d) FrustumLH(left, right, bottom, top, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	var p Matrix4d
	p.SetFrustumLH(left, right, bottom, top, zNear, zFar, zZeroToOne)
	return mat.mulProjectionTo(&p, mat)
}

// ------------------------------------------
// Orthographic
// ------------------------------------------

/**
 * @brief Sets mat to a right-handed orthographic projection with OpenGL's
 * NDC z range.
 */
func (mat *Matrix4d) SetOrtho(left, right, bottom, top, zNear, zFar float64) *Matrix4d {
	return mat.SetOrthoNDC(left, right, bottom, top, zNear, zFar, false)
}

func (mat *Matrix4d) SetOrthoNDC(left, right, bottom, top, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	depth, offset := 2.0, zFar+zNear
	if zZeroToOne {
		depth, offset = 1.0, zNear
	}
	*mat = Matrix4d{
		M00: 2.0 / (right - left),
		M11: 2.0 / (top - bottom),
		M22: depth / (zNear - zFar),
		M30: (right + left) / (left - right),
		M31: (top + bottom) / (bottom - top),
		M32: offset / (zNear - zFar),
		M33: 1.0,
	}
	return mat
}

// SetOrthoLH sets mat to a left-handed orthographic projection.
func (mat *Matrix4d) SetOrthoLH(left, right, bottom, top, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	return mat.SetOrthoNDC(left, right, bottom, top, zNear, zFar, zZeroToOne).flipZ()
}

// Ortho post-multiplies mat by a right-handed OpenGL orthographic projection.
func (mat *Matrix4d) Ortho(left, right, bottom, top, zNear, zFar float64) *Matrix4d {
	return mat.OrthoTo(left, right, bottom, top, zNear, zFar, false, mat)
}

func (mat *Matrix4d) OrthoNDC(left, right, bottom, top, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	return mat.OrthoTo(left, right, bottom, top, zNear, zFar, zZeroToOne, mat)
}

func (mat *Matrix4d) OrthoTo(left, right, bottom, top, zNear, zFar float64, zZeroToOne bool, dest *Matrix4d) *Matrix4d {
	var p Matrix4d
	p.SetOrthoNDC(left, right, bottom, top, zNear, zFar, zZeroToOne)
	return mat.mulProjectionTo(&p, dest)
}

// OrthoLH post-multiplies mat by a left-handed orthographic projection.
func (mat *Matrix4d) OrthoLH(left, right, bottom, top, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	var p Matrix4d
	p.SetOrthoLH(left, right, bottom, top, zNear, zFar, zZeroToOne)
	return mat.mulProjectionTo(&p, mat)
}

/**
 * @brief Sets mat to a symmetric orthographic projection: Ortho with
 * left = -width/2, right = width/2, bottom = -height/2 and top = height/2.
 */
func (mat *Matrix4d) SetOrthoSymmetric(width, height, zNear, zFar float64) *Matrix4d {
	return mat.SetOrthoSymmetricNDC(width, height, zNear, zFar, false)
}

func (mat *Matrix4d) SetOrthoSymmetricNDC(width, height, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	mat.SetOrthoNDC(-0.5*width, 0.5*width, -0.5*height, 0.5*height, zNear, zFar, zZeroToOne)
	mat.M00, mat.M11 = 2.0/width, 2.0/height
	mat.M30, mat.M31 = 0, 0
	return mat
}

func (mat *Matrix4d) SetOrthoSymmetricLH(width, height, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	return mat.SetOrthoSymmetricNDC(width, height, zNear, zFar, zZeroToOne).flipZ()
}

func (mat *Matrix4d) OrthoSymmetric(width, height, zNear, zFar float64) *Matrix4d {
	return mat.OrthoSymmetricTo(width, height, zNear, zFar, false, mat)
}

func (mat *Matrix4d) OrthoSymmetricNDC(width, height, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	return mat.OrthoSymmetricTo(width, height, zNear, zFar, zZeroToOne, mat)
}

func (mat *Matrix4d) OrthoSymmetricTo(width, height, zNear, zFar float64, zZeroToOne bool, dest *Matrix4d) *Matrix4d {
	var p Matrix4d
	p.SetOrthoSymmetricNDC(width, height, zNear, zFar, zZeroToOne)
	return mat.mulProjectionTo(&p, dest)
}

func (mat *Matrix4d) OrthoSymmetricLH(width, height, zNear, zFar float64, zZeroToOne bool) *Matrix4d {
	var p Matrix4d
	p.SetOrthoSymmetricLH(width, height, zNear, zFar, zZeroToOne)
	return mat.mulProjectionTo(&p, mat)
}

/**
 * @brief Sets mat to a 2D orthographic projection. Equivalent to Ortho with
 * zNear = -1 and zFar = 1.
 */
func (mat *Matrix4d) SetOrtho2D(left, right, bottom, top float64) *Matrix4d {
	*mat = Matrix4d{
		M00: 2.0 / (right - left),
		M11: 2.0 / (top - bottom),
		M22: -1.0,
		M30: -(right + left) / (right - left),
		M31: -(top + bottom) / (top - bottom),
		M33: 1.0,
	}
	return mat
}

func (mat *Matrix4d) SetOrtho2DLH(left, right, bottom, top float64) *Matrix4d {
	return mat.SetOrtho2D(left, right, bottom, top).flipZ()
}

func (mat *Matrix4d) Ortho2D(left, right, bottom, top float64) *Matrix4d {
	return mat.Ortho2DTo(left, right, bottom, top, mat)
}

func (mat *Matrix4d) Ortho2DTo(left, right, bottom, top float64, dest *Matrix4d) *Matrix4d {
	var p Matrix4d
	p.SetOrtho2D(left, right, bottom, top)
	return mat.mulProjectionTo(&p, dest)
}

func (mat *Matrix4d) Ortho2DLH(left, right, bottom, top float64) *Matrix4d {
	var p Matrix4d
	p.SetOrtho2DLH(left, right, bottom, top)
	return mat.mulProjectionTo(&p, mat)
}
