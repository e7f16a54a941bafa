package math

// viewBasis returns the rotation block of a view matrix whose camera looks
// along -dir. dir must be unit length.
func viewBasis(dir, up Vector3d) Matrix3d {
	left := up.Cross(dir).Normalized()
	upn := dir.Cross(left)
	return Matrix3d{
		M00: left.X, M01: upn.X, M02: dir.X,
		M10: left.Y, M11: upn.Y, M12: dir.Y,
		M20: left.Z, M21: upn.Z, M22: dir.Z,
	}
}

func lookAtMatrix(eye, dir, up Vector3d) Matrix4d {
	r := viewBasis(dir, up)
	var v Matrix4d
	v.SetMatrix3d(r)
	v.M30 = -(r.M00*eye.X + r.M10*eye.Y + r.M20*eye.Z)
	v.M31 = -(r.M01*eye.X + r.M11*eye.Y + r.M21*eye.Z)
	v.M32 = -(r.M02*eye.X + r.M12*eye.Y + r.M22*eye.Z)
	return v
}

// ------------------------------------------
// Look-at / look-along
// ------------------------------------------

/**
 * @brief Sets mat to a right-handed view matrix that places the camera at
 * eye looking at center, with up as the approximate up direction.
 *
 * @param eye The camera position.
 * @param center The point to look at.
 * @param up The up direction; must not be parallel to center - eye.
 */
func (mat *Matrix4d) SetLookAt(eye, center, up Vector3d) *Matrix4d {
	*mat = lookAtMatrix(eye, eye.Sub(center).Normalized(), up)
	return mat
}

// SetLookAtLH sets mat to a left-handed view matrix.
func (mat *Matrix4d) SetLookAtLH(eye, center, up Vector3d) *Matrix4d {
	*mat = lookAtMatrix(eye, center.Sub(eye).Normalized(), up)
	return mat
}

// LookAt post-multiplies mat by the view matrix of SetLookAt.
func (mat *Matrix4d) LookAt(eye, center, up Vector3d) *Matrix4d {
	return mat.LookAtTo(eye, center, up, mat)
}

func (mat *Matrix4d) LookAtTo(eye, center, up Vector3d, dest *Matrix4d) *Matrix4d {
	v := lookAtMatrix(eye, eye.Sub(center).Normalized(), up)
	return mat.MulAffineRTo(&v, dest)
}

// LookAtLH post-multiplies mat by the view matrix of SetLookAtLH.
func (mat *Matrix4d) LookAtLH(eye, center, up Vector3d) *Matrix4d {
	v := lookAtMatrix(eye, center.Sub(eye).Normalized(), up)
	return mat.MulAffineRTo(&v, mat)
}

/**
 * @brief Post-multiplies a symmetric perspective projection mat by the view
 * matrix of SetLookAt, using the perspective/affine multiply.
 */
func (mat *Matrix4d) LookAtPerspective(eye, center, up Vector3d) *Matrix4d {
	return mat.LookAtPerspectiveTo(eye, center, up, mat)
}

func (mat *Matrix4d) LookAtPerspectiveTo(eye, center, up Vector3d, dest *Matrix4d) *Matrix4d {
	v := lookAtMatrix(eye, eye.Sub(center).Normalized(), up)
	return mat.MulPerspectiveAffineTo(&v, dest)
}

// SetLookAlong sets mat to a rotation-only view matrix looking along dir.
// It equals SetLookAt with the eye at the origin and center = dir.
func (mat *Matrix4d) SetLookAlong(dir, up Vector3d) *Matrix4d {
	return mat.SetMatrix3d(viewBasis(dir.Negate().Normalized(), up))
}

// LookAlong post-multiplies mat by the rotation of SetLookAlong.
func (mat *Matrix4d) LookAlong(dir, up Vector3d) *Matrix4d {
	return mat.LookAlongTo(dir, up, mat)
}

func (mat *Matrix4d) LookAlongTo(dir, up Vector3d, dest *Matrix4d) *Matrix4d {
	return mat.rotate3x3To(viewBasis(dir.Negate().Normalized(), up), dest)
}

// ------------------------------------------
// Orientation towards a direction
// ------------------------------------------

// towardsBasis returns a rotation that maps +Z onto dir.
func towardsBasis(dir, up Vector3d) Matrix3d {
	ndir := dir.Normalized()
	left := up.Cross(ndir).Normalized()
	upn := ndir.Cross(left)
	return Matrix3d{
		M00: left.X, M01: left.Y, M02: left.Z,
		M10: upn.X, M11: upn.Y, M12: upn.Z,
		M20: ndir.X, M21: ndir.Y, M22: ndir.Z,
	}
}

// RotationTowards sets mat to a rotation that aligns local +Z with dir.
func (mat *Matrix4d) RotationTowards(dir, up Vector3d) *Matrix4d {
	return mat.SetMatrix3d(towardsBasis(dir, up))
}

// TranslationRotateTowards sets mat to a translation to pos combined with
// RotationTowards(dir, up).
func (mat *Matrix4d) TranslationRotateTowards(pos, dir, up Vector3d) *Matrix4d {
	return mat.RotationTowards(dir, up).SetTranslation(pos.X, pos.Y, pos.Z)
}

// RotateTowards post-multiplies mat by RotationTowards(dir, up).
func (mat *Matrix4d) RotateTowards(dir, up Vector3d) *Matrix4d {
	return mat.RotateTowardsTo(dir, up, mat)
}

func (mat *Matrix4d) RotateTowardsTo(dir, up Vector3d, dest *Matrix4d) *Matrix4d {
	return mat.rotate3x3To(towardsBasis(dir, up), dest)
}

// ------------------------------------------
// Billboards
// ------------------------------------------

/**
 * @brief Sets mat to a cylindrical billboard transform: an object at objPos
 * rotates about up so its local +Z faces targetPos. up must be unit length.
 */
func (mat *Matrix4d) BillboardCylindrical(objPos, targetPos, up Vector3d) *Matrix4d {
	dir := targetPos.Sub(objPos)
	left := up.Cross(dir).Normalized()
	dir = left.Cross(up).Normalized()
	*mat = matrixFromColumns(left.ToVector4d(0), up.ToVector4d(0), dir.ToVector4d(0), objPos.ToVector4d(1))
	return mat
}

/**
 * @brief Sets mat to a spherical billboard transform: local +Z points from
 * objPos to targetPos and local +Y is as close to up as possible.
 */
func (mat *Matrix4d) BillboardSpherical(objPos, targetPos, up Vector3d) *Matrix4d {
	dir := targetPos.Sub(objPos).Normalized()
	left := up.Cross(dir).Normalized()
	upn := dir.Cross(left)
	*mat = matrixFromColumns(left.ToVector4d(0), upn.ToVector4d(0), dir.ToVector4d(0), objPos.ToVector4d(1))
	return mat
}

/**
 * @brief Sets mat to a spherical billboard transform using the shortest-arc
 * rotation from +Z to the direction towards targetPos. No up vector is used.
 */
func (mat *Matrix4d) BillboardSphericalShortestArc(objPos, targetPos Vector3d) *Matrix4d {
	to := targetPos.Sub(objPos)
	x, y, w := -to.Y, to.X, to.Length()+to.Z
	inv := invSqrt(x*x + y*y + w*w)
	x, y, w = x*inv, y*inv, w*inv
	q00 := (x + x) * x
	q11 := (y + y) * y
	q01 := (x + x) * y
	q03 := (x + x) * w
	q13 := (y + y) * w
	*mat = Matrix4d{
		M00: 1.0 - q11, M01: q01, M02: -q13,
		M10: q01, M11: 1.0 - q00, M12: q03,
		M20: q13, M21: -q03, M22: 1.0 - q11 - q00,
		M30: objPos.X, M31: objPos.Y, M32: objPos.Z, M33: 1.0,
	}
	return mat
}

// ------------------------------------------
// Reflection
// ------------------------------------------

/**
 * @brief Sets mat to a reflection about the plane a*x + b*y + c*z + d = 0.
 * (a, b, c) must be unit length.
 */
func (mat *Matrix4d) Reflection(a, b, c, d float64) *Matrix4d {
	da, db, dc, dd := a+a, b+b, c+c, d+d
	*mat = Matrix4d{
		M00: 1.0 - da*a, M01: -da * b, M02: -da * c,
		M10: -db * a, M11: 1.0 - db*b, M12: -db * c,
		M20: -dc * a, M21: -dc * b, M22: 1.0 - dc*c,
		M30: -dd * a, M31: -dd * b, M32: -dd * c, M33: 1.0,
	}
	return mat
}

// ReflectionNormalPoint sets mat to a reflection about the plane with the
// given normal through point.
func (mat *Matrix4d) ReflectionNormalPoint(normal, point Vector3d) *Matrix4d {
	n := normal.Normalized()
	return mat.Reflection(n.X, n.Y, n.Z, -n.Dot(point))
}

/**
 * @brief Sets mat to a reflection about the plane through point whose normal
 * is +Z rotated by the unit quaternion orientation.
 */
func (mat *Matrix4d) ReflectionQuat(orientation Quaterniond, point Vector3d) *Matrix4d {
	return mat.ReflectionNormalPoint(reflectionNormal(orientation), point)
}

// Reflect post-multiplies mat by Reflection(a, b, c, d).
func (mat *Matrix4d) Reflect(a, b, c, d float64) *Matrix4d {
	return mat.ReflectTo(a, b, c, d, mat)
}

func (mat *Matrix4d) ReflectTo(a, b, c, d float64, dest *Matrix4d) *Matrix4d {
	var r Matrix4d
	r.Reflection(a, b, c, d)
	return mat.MulAffineRTo(&r, dest)
}

func (mat *Matrix4d) ReflectNormalPoint(normal, point Vector3d) *Matrix4d {
	var r Matrix4d
	r.ReflectionNormalPoint(normal, point)
	return mat.MulAffineRTo(&r, mat)
}

func (mat *Matrix4d) ReflectQuat(orientation Quaterniond, point Vector3d) *Matrix4d {
	var r Matrix4d
	r.ReflectionQuat(orientation, point)
	return mat.MulAffineRTo(&r, mat)
}

func reflectionNormal(q Quaterniond) Vector3d {
	num1 := q.X + q.X
	num2 := q.Y + q.Y
	num3 := q.Z + q.Z
	return Vector3d{
		X: q.X*num3 + q.W*num2,
		Y: q.Y*num3 - q.W*num1,
		Z: 1.0 - (q.X*num1 + q.Y*num2),
	}
}

// ------------------------------------------
// Shadow
// ------------------------------------------

/**
 * @brief Post-multiplies mat by a matrix projecting geometry onto the plane
 * a*x + b*y + c*z + d = 0 as seen from light. light.W is 0 for a directional
 * light and 1 for a point light.
 */
func (mat *Matrix4d) Shadow(light Vector4d, a, b, c, d float64) *Matrix4d {
	return mat.ShadowTo(light, a, b, c, d, mat)
}

func (mat *Matrix4d) ShadowTo(light Vector4d, a, b, c, d float64, dest *Matrix4d) *Matrix4d {
	inv := invSqrt(a*a + b*b + c*c)
	an, bn, cn, dn := a*inv, b*inv, c*inv, d*inv
	dot := an*light.X + bn*light.Y + cn*light.Z + dn*light.W
	s := Matrix4d{
		M00: dot - an*light.X, M01: -an * light.Y, M02: -an * light.Z, M03: -an * light.W,
		M10: -bn * light.X, M11: dot - bn*light.Y, M12: -bn * light.Z, M13: -bn * light.W,
		M20: -cn * light.X, M21: -cn * light.Y, M22: dot - cn*light.Z, M23: -cn * light.W,
		M30: -dn * light.X, M31: -dn * light.Y, M32: -dn * light.Z, M33: dot - dn*light.W,
	}
	return mat.MulTo(&s, dest)
}

// ShadowPlane is Shadow onto the y = 0 plane transformed by the affine
// planeTransform.
func (mat *Matrix4d) ShadowPlane(light Vector4d, planeTransform Matrix4dc) *Matrix4d {
	return mat.ShadowPlaneTo(light, planeTransform, mat)
}

func (mat *Matrix4d) ShadowPlaneTo(light Vector4d, planeTransform Matrix4dc, dest *Matrix4d) *Matrix4d {
	pt := planeTransform.Matrix()
	a, b, c := pt.M10, pt.M11, pt.M12
	d := -a*pt.M30 - b*pt.M31 - c*pt.M32
	return mat.ShadowTo(light, a, b, c, d, dest)
}

// ------------------------------------------
// Picking and arcball
// ------------------------------------------

/**
 * @brief Post-multiplies mat by a picking matrix that maps the region of
 * width x height pixels centered at (x, y) in viewport onto the whole NDC
 * range.
 */
func (mat *Matrix4d) Pick(x, y, width, height float64, viewport Viewport) *Matrix4d {
	return mat.PickTo(x, y, width, height, viewport, mat)
}

func (mat *Matrix4d) PickTo(x, y, width, height float64, viewport Viewport, dest *Matrix4d) *Matrix4d {
	vx, vy := float64(viewport[0]), float64(viewport[1])
	vw, vh := float64(viewport[2]), float64(viewport[3])
	sx := vw / width
	sy := vh / height
	tx := (vw + 2.0*(vx-x)) / width
	ty := (vh + 2.0*(vy-y)) / height
	c0, c1, c2, c3 := mat.columns()
	n3 := c0.MulScalar(tx).Add(c1.MulScalar(ty)).Add(c3)
	*dest = matrixFromColumns(c0.MulScalar(sx), c1.MulScalar(sy), c2, n3)
	return dest
}

/**
 * @brief Post-multiplies mat by an arcball view: translate by -radius along
 * Z, rotate angleX about X then angleY about Y, then translate by -center.
 */
func (mat *Matrix4d) Arcball(radius float64, center Vector3d, angleX, angleY float64) *Matrix4d {
	return mat.ArcballTo(radius, center, angleX, angleY, mat)
}

func (mat *Matrix4d) ArcballTo(radius float64, center Vector3d, angleX, angleY float64, dest *Matrix4d) *Matrix4d {
	sinX, cosX := sinCos(angleX)
	sinY, cosY := sinCos(angleY)
	c0, c1, c2, c3 := mat.columns()
	c3 = c2.MulScalar(-radius).Add(c3)
	n1 := c1.MulScalar(cosX).Add(c2.MulScalar(sinX))
	x2 := c2.MulScalar(cosX).Sub(c1.MulScalar(sinX))
	n0 := c0.MulScalar(cosY).Sub(x2.MulScalar(sinY))
	n2 := c0.MulScalar(sinY).Add(x2.MulScalar(cosY))
	n3 := n0.MulScalar(-center.X).Add(n1.MulScalar(-center.Y)).Add(n2.MulScalar(-center.Z)).Add(c3)
	*dest = matrixFromColumns(n0, n1, n2, n3)
	return dest
}
