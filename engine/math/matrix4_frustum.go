package math

import m "math"

// rawPlane returns the unnormalized clip plane selected by plane, using
// the Gribb/Hartmann row combinations. plane must be valid.
func (mat *Matrix4d) rawPlane(plane int) Vector4d {
	row3 := Vector4d{mat.M03, mat.M13, mat.M23, mat.M33}
	switch plane {
	case PlaneNX:
		return row3.Add(Vector4d{mat.M00, mat.M10, mat.M20, mat.M30})
	case PlanePX:
		return row3.Sub(Vector4d{mat.M00, mat.M10, mat.M20, mat.M30})
	case PlaneNY:
		return row3.Add(Vector4d{mat.M01, mat.M11, mat.M21, mat.M31})
	case PlanePY:
		return row3.Sub(Vector4d{mat.M01, mat.M11, mat.M21, mat.M31})
	case PlaneNZ:
		return row3.Add(Vector4d{mat.M02, mat.M12, mat.M22, mat.M32})
	default:
		return row3.Sub(Vector4d{mat.M02, mat.M12, mat.M22, mat.M32})
	}
}

/**
 * @brief Returns the frustum plane selected by plane (PlaneNX..PlanePZ) of
 * the frustum defined by mat, a projection or view-projection matrix. The
 * plane is (a, b, c, d) with a*x + b*y + c*z + d = 0, (a, b, c) unit length
 * and pointing into the frustum.
 *
 * @return ErrIndexOutOfRange for an unknown plane.
 */
func (mat *Matrix4d) FrustumPlane(plane int) (Vector4d, error) {
	if plane < PlaneNX || plane > PlanePZ {
		return Vector4d{}, indexError("plane", plane)
	}
	return mat.rawPlane(plane).Normalized3(), nil
}

// cornerPlanes maps every corner selector to its x, y and z planes.
var cornerPlanes = [8][3]int{
	CornerNXNYNZ: {PlaneNX, PlaneNY, PlaneNZ},
	CornerPXNYNZ: {PlanePX, PlaneNY, PlaneNZ},
	CornerPXPYNZ: {PlanePX, PlanePY, PlaneNZ},
	CornerNXPYNZ: {PlaneNX, PlanePY, PlaneNZ},
	CornerPXNYPZ: {PlanePX, PlaneNY, PlanePZ},
	CornerNXNYPZ: {PlaneNX, PlaneNY, PlanePZ},
	CornerNXPYPZ: {PlaneNX, PlanePY, PlanePZ},
	CornerPXPYPZ: {PlanePX, PlanePY, PlanePZ},
}

/**
 * @brief Returns the frustum corner selected by corner (CornerNXNYNZ..
 * CornerPXPYPZ) as the intersection of its three planes. Degenerate planes
 * yield NaN components.
 *
 * @return ErrIndexOutOfRange for an unknown corner.
 */
func (mat *Matrix4d) FrustumCorner(corner int) (Vector3d, error) {
	if corner < CornerNXNYNZ || corner > CornerPXPYPZ {
		return Vector3d{}, indexError("corner", corner)
	}
	p := cornerPlanes[corner]
	return intersectPlanes(mat.rawPlane(p[0]), mat.rawPlane(p[1]), mat.rawPlane(p[2])), nil
}

// intersectPlanes solves for the point shared by three planes.
func intersectPlanes(p1, p2, p3 Vector4d) Vector3d {
	n1, n2, n3 := p1.XYZ(), p2.XYZ(), p3.XYZ()
	c23 := n2.Cross(n3)
	c31 := n3.Cross(n1)
	c12 := n1.Cross(n2)
	invDot := 1.0 / n1.Dot(c23)
	return c23.MulScalar(-p1.W).
		Add(c31.MulScalar(-p2.W)).
		Add(c12.MulScalar(-p3.W)).
		MulScalar(invDot)
}

// PerspectiveOrigin returns the eye position of a perspective
// (view-)projection: the intersection of its left, right and top planes.
func (mat *Matrix4d) PerspectiveOrigin() Vector3d {
	return intersectPlanes(mat.rawPlane(PlaneNX), mat.rawPlane(PlanePX), mat.rawPlane(PlanePY))
}

// PerspectiveFov returns the vertical field of view in radians of a
// perspective (view-)projection.
func (mat *Matrix4d) PerspectiveFov() float64 {
	n1 := Vector3d{mat.M03 + mat.M01, mat.M13 + mat.M11, mat.M23 + mat.M21}
	n2 := Vector3d{mat.M01 - mat.M03, mat.M11 - mat.M13, mat.M21 - mat.M23}
	return m.Acos(n1.Dot(n2) / (n1.Length() * n2.Length()))
}

// PerspectiveNear returns the near clip distance of a right-handed OpenGL
// perspective projection.
func (mat *Matrix4d) PerspectiveNear() float64 {
	return mat.M32 / (mat.M23 + mat.M22)
}

// PerspectiveFar returns the far clip distance of a right-handed OpenGL
// perspective projection.
func (mat *Matrix4d) PerspectiveFar() float64 {
	return mat.M32 / (mat.M22 - mat.M23)
}

/**
 * @brief Writes into dest a copy of the perspective projection mat whose
 * near and far planes are replaced by near and far. Used to split a view
 * frustum into slices.
 */
func (mat *Matrix4d) PerspectiveFrustumSlice(near, far float64, dest *Matrix4d) *Matrix4d {
	s := *mat
	invOldNear := (s.M23 + s.M22) / s.M32
	invNearFar := 1.0 / (near - far)
	s.M00 *= invOldNear * near
	s.M11 *= invOldNear * near
	s.M22 = (far + near) * invNearFar
	s.M32 = (far + far) * near * invNearFar
	*dest = s
	return dest
}

/**
 * @brief Returns the normalized direction of the ray through the frustum at
 * (x, y), where (0, 0) is the left-bottom and (1, 1) the right-top corner
 * of the near plane. mat is a (view-)projection matrix.
 */
func (mat *Matrix4d) FrustumRayDir(x, y float64) Vector3d {
	a := mat.M10 * mat.M23
	b := mat.M13 * mat.M21
	c := mat.M10 * mat.M21
	d := mat.M11 * mat.M23
	e := mat.M13 * mat.M20
	f := mat.M11 * mat.M20
	g := mat.M03 * mat.M20
	h := mat.M01 * mat.M23
	i := mat.M01 * mat.M20
	j := mat.M03 * mat.M21
	k := mat.M00 * mat.M23
	l := mat.M00 * mat.M21
	mm := mat.M00 * mat.M13
	n := mat.M03 * mat.M11
	o := mat.M00 * mat.M11
	p := mat.M01 * mat.M13
	q := mat.M03 * mat.M10
	r := mat.M01 * mat.M10
	y1 := 1.0 - y
	m1 := Vector3d{
		X: (d+e+f-a-b-c)*y1 + (a-b-c+d-e+f)*y,
		Y: (j+k+l-g-h-i)*y1 + (g-h-i+j-k+l)*y,
		Z: (p+q+r-mm-n-o)*y1 + (mm-n-o+p-q+r)*y,
	}
	m2 := Vector3d{
		X: (b-c-d+e+f-a)*y1 + (a+b-c-d-e+f)*y,
		Y: (h-i-j+k+l-g)*y1 + (g+h-i-j-k+l)*y,
		Z: (n-o-p+q+r-mm)*y1 + (mm+n-o-p-q+r)*y,
	}
	return m1.MulScalar(1.0 - x).Add(m2.MulScalar(x)).Normalized()
}

// ------------------------------------------
// Axes and origin
// ------------------------------------------

// PositiveX returns the world direction that mat maps onto +X. mat may
// contain scaling.
func (mat *Matrix4d) PositiveX() Vector3d {
	return Vector3d{
		mat.M11*mat.M22 - mat.M12*mat.M21,
		mat.M02*mat.M21 - mat.M01*mat.M22,
		mat.M01*mat.M12 - mat.M02*mat.M11,
	}.Normalized()
}

// PositiveY returns the world direction that mat maps onto +Y.
func (mat *Matrix4d) PositiveY() Vector3d {
	return Vector3d{
		mat.M12*mat.M20 - mat.M10*mat.M22,
		mat.M00*mat.M22 - mat.M02*mat.M20,
		mat.M02*mat.M10 - mat.M00*mat.M12,
	}.Normalized()
}

// PositiveZ returns the world direction that mat maps onto +Z.
func (mat *Matrix4d) PositiveZ() Vector3d {
	return Vector3d{
		mat.M10*mat.M21 - mat.M11*mat.M20,
		mat.M20*mat.M01 - mat.M21*mat.M00,
		mat.M00*mat.M11 - mat.M01*mat.M10,
	}.Normalized()
}

// NormalizedPositiveX is PositiveX for a matrix with an orthonormal 3x3 block.
func (mat *Matrix4d) NormalizedPositiveX() Vector3d {
	return Vector3d{mat.M00, mat.M10, mat.M20}
}

// NormalizedPositiveY is PositiveY for a matrix with an orthonormal 3x3 block.
func (mat *Matrix4d) NormalizedPositiveY() Vector3d {
	return Vector3d{mat.M01, mat.M11, mat.M21}
}

// NormalizedPositiveZ is PositiveZ for a matrix with an orthonormal 3x3 block.
func (mat *Matrix4d) NormalizedPositiveZ() Vector3d {
	return Vector3d{mat.M02, mat.M12, mat.M22}
}

/**
 * @brief Returns the position that mat maps onto the origin, which is the
 * camera position of a view matrix. Use PerspectiveOrigin for matrices that
 * include a perspective projection.
 */
func (mat *Matrix4d) Origin() Vector3d {
	a := mat.M00*mat.M11 - mat.M01*mat.M10
	b := mat.M00*mat.M12 - mat.M02*mat.M10
	d := mat.M01*mat.M12 - mat.M02*mat.M11
	g := mat.M20*mat.M31 - mat.M21*mat.M30
	h := mat.M20*mat.M32 - mat.M22*mat.M30
	j := mat.M21*mat.M32 - mat.M22*mat.M31
	w := mat.M20*d - mat.M21*b + mat.M22*a
	return Vector3d{
		-mat.M10*j + mat.M11*h - mat.M12*g,
		mat.M00*j - mat.M01*h + mat.M02*g,
		-mat.M30*d + mat.M31*b - mat.M32*a,
	}.DivScalar(w)
}

// OriginAffine is Origin for an affine mat.
func (mat *Matrix4d) OriginAffine() Vector3d {
	a := mat.M00*mat.M11 - mat.M01*mat.M10
	b := mat.M00*mat.M12 - mat.M02*mat.M10
	d := mat.M01*mat.M12 - mat.M02*mat.M11
	g := mat.M20*mat.M31 - mat.M21*mat.M30
	h := mat.M20*mat.M32 - mat.M22*mat.M30
	j := mat.M21*mat.M32 - mat.M22*mat.M31
	det := mat.Determinant3x3()
	return Vector3d{
		-mat.M10*j + mat.M11*h - mat.M12*g,
		mat.M00*j - mat.M01*h + mat.M02*g,
		-mat.M30*d + mat.M31*b - mat.M32*a,
	}.DivScalar(det)
}

// ------------------------------------------
// Project / unproject
// ------------------------------------------

func windowToNDC(winX, winY, winZ float64, viewport Viewport) Vector4d {
	return Vector4d{
		X: (winX-float64(viewport[0]))/float64(viewport[2])*2.0 - 1.0,
		Y: (winY-float64(viewport[1]))/float64(viewport[3])*2.0 - 1.0,
		Z: winZ + winZ - 1.0,
		W: 1.0,
	}
}

/**
 * @brief Maps window coordinates back to world space by inverting mat, a
 * (view-)projection matrix. winZ is the depth in [0, 1].
 */
func (mat *Matrix4d) Unproject(winX, winY, winZ float64, viewport Viewport) Vector3d {
	var inv Matrix4d
	mat.InvertTo(&inv)
	return inv.UnprojectInv(winX, winY, winZ, viewport)
}

// UnprojectInv is Unproject for a mat that is already the inverse of the
// (view-)projection matrix.
func (mat *Matrix4d) UnprojectInv(winX, winY, winZ float64, viewport Viewport) Vector3d {
	return mat.Transform(windowToNDC(winX, winY, winZ, viewport)).PerspectiveDivide()
}

/**
 * @brief Returns the world-space ray through the window position
 * (winX, winY): origin on the near plane and the unnormalized direction to
 * the far plane.
 */
func (mat *Matrix4d) UnprojectRay(winX, winY float64, viewport Viewport) (Vector3d, Vector3d) {
	var inv Matrix4d
	mat.InvertTo(&inv)
	return inv.UnprojectInvRay(winX, winY, viewport)
}

// UnprojectInvRay is UnprojectRay for an already inverted mat.
func (mat *Matrix4d) UnprojectInvRay(winX, winY float64, viewport Viewport) (Vector3d, Vector3d) {
	ndc := windowToNDC(winX, winY, 0, viewport)
	ndc.Z = -1.0
	near := mat.Transform(ndc).PerspectiveDivide()
	ndc.Z = 1.0
	far := mat.Transform(ndc).PerspectiveDivide()
	return near, far.Sub(near)
}

/**
 * @brief Maps the object-space point (x, y, z) through mat to window
 * coordinates of viewport. The returned z is the depth in [0, 1].
 */
func (mat *Matrix4d) Project(x, y, z float64, viewport Viewport) Vector3d {
	ndc := mat.Transform(Vector4d{x, y, z, 1.0}).PerspectiveDivide()
	return Vector3d{
		X: (ndc.X*0.5+0.5)*float64(viewport[2]) + float64(viewport[0]),
		Y: (ndc.Y*0.5+0.5)*float64(viewport[3]) + float64(viewport[1]),
		Z: (1.0 + ndc.Z) * 0.5,
	}
}

/**
 * @brief Returns the axis-aligned box enclosing the frustum of the inverse
 * (view-)projection mat, found by transforming the eight corners of the NDC
 * cube.
 */
func (mat *Matrix4d) FrustumAabb() Extents3D {
	lo := Vector3d{m.Inf(1), m.Inf(1), m.Inf(1)}
	hi := Vector3d{m.Inf(-1), m.Inf(-1), m.Inf(-1)}
	for t := 0; t < 8; t++ {
		x := float64(((t & 1) << 1) - 1)
		y := float64((((t >> 1) & 1) << 1) - 1)
		z := float64((((t >> 2) & 1) << 1) - 1)
		p := mat.Transform(Vector4d{x, y, z, 1.0}).PerspectiveDivide()
		lo = lo.Min(p)
		hi = hi.Max(p)
	}
	return Extents3D{Min: lo, Max: hi}
}

// ------------------------------------------
// Culling
// ------------------------------------------

// TestPoint reports whether p lies inside the frustum of mat.
func (mat *Matrix4d) TestPoint(p Vector3d) bool {
	for plane := PlaneNX; plane <= PlanePZ; plane++ {
		pl := mat.rawPlane(plane)
		if pl.XYZ().Dot(p)+pl.W < 0 {
			return false
		}
	}
	return true
}

// TestSphere reports whether the sphere intersects or lies inside the
// frustum of mat.
func (mat *Matrix4d) TestSphere(center Vector3d, radius float64) bool {
	for plane := PlaneNX; plane <= PlanePZ; plane++ {
		pl := mat.rawPlane(plane).Normalized3()
		if pl.XYZ().Dot(center)+pl.W < -radius {
			return false
		}
	}
	return true
}

// TestAab reports whether the axis-aligned box [lo, hi] intersects or
// lies inside the frustum of mat. It may report true for some boxes just
// outside a frustum corner.
func (mat *Matrix4d) TestAab(lo, hi Vector3d) bool {
	for plane := PlaneNX; plane <= PlanePZ; plane++ {
		pl := mat.rawPlane(plane)
		pv := hi
		if pl.X < 0 {
			pv.X = lo.X
		}
		if pl.Y < 0 {
			pv.Y = lo.Y
		}
		if pl.Z < 0 {
			pv.Z = lo.Z
		}
		if pl.XYZ().Dot(pv)+pl.W < 0 {
			return false
		}
	}
	return true
}
