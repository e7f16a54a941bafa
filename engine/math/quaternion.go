package math

import m "math"

/**
 * @brief Creates an identity quaternion.
 *
 * @return An identity quaternion.
 */
func NewQuaterniondIdentity() Quaterniond {
	return Quaterniond{0, 0, 0, 1.0}
}

/**
 * @brief Creates a quaternion from the given axis and angle.
 *
 * @param axis The axis of rotation. It does not need to be unit length.
 * @param angle The angle of rotation in radians.
 * @return A new quaternion.
 */
func NewQuaterniondAxisAngle(axis Vector3d, angle float64) Quaterniond {
	s, c := sinCos(0.5 * angle)
	inv := invSqrt(axis.LengthSquared())
	return Quaterniond{axis.X * inv * s, axis.Y * inv * s, axis.Z * inv * s, c}
}

/**
 * @brief Returns the length of the provided quaternion.
 */
func (q Quaterniond) Length() float64 {
	return m.Sqrt(q.Dot(q))
}

/**
 * @brief Returns a normalized copy of the provided quaternion.
 */
func (q Quaterniond) Normalized() Quaterniond {
	inv := invSqrt(q.Dot(q))
	return Quaterniond{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

/**
 * @brief Returns the conjugate of the provided quaternion. That is,
 * The x, y and z elements are negated, but the w element is untouched.
 */
func (q Quaterniond) Conjugate() Quaterniond {
	return Quaterniond{-q.X, -q.Y, -q.Z, q.W}
}

/**
 * @brief Returns the inverse of the quaternion (conjugate divided by the
 * squared norm).
 */
func (q Quaterniond) Inverse() Quaterniond {
	inv := 1.0 / q.Dot(q)
	return Quaterniond{-q.X * inv, -q.Y * inv, -q.Z * inv, q.W * inv}
}

/**
 * @brief Multiplies the provided quaternions. The result applies other
 * first, then q.
 */
func (q Quaterniond) Mul(other Quaterniond) Quaterniond {
	return Quaterniond{
		X: q.X*other.W + q.Y*other.Z - q.Z*other.Y + q.W*other.X,
		Y: -q.X*other.Z + q.Y*other.W + q.Z*other.X + q.W*other.Y,
		Z: q.X*other.Y - q.Y*other.X + q.Z*other.W + q.W*other.Z,
		W: -q.X*other.X - q.Y*other.Y - q.Z*other.Z + q.W*other.W,
	}
}

/**
 * @brief Calculates the dot product of the provided quaternions.
 */
func (q Quaterniond) Dot(other Quaterniond) float64 {
	return q.X*other.X + q.Y*other.Y + q.Z*other.Z + q.W*other.W
}

// Transform rotates v by the quaternion, which must be unit length.
func (q Quaterniond) Transform(v Vector3d) Vector3d {
	xx, yy, zz, ww := q.X*q.X, q.Y*q.Y, q.Z*q.Z, q.W*q.W
	xy, xz, yz := q.X*q.Y, q.X*q.Z, q.Y*q.Z
	xw, zw, yw := q.X*q.W, q.Z*q.W, q.Y*q.W
	return Vector3d{
		X: (ww+xx-zz-yy)*v.X + 2*(xy-zw)*v.Y + 2*(xz+yw)*v.Z,
		Y: 2*(xy+zw)*v.X + (yy-zz+ww-xx)*v.Y + 2*(yz-xw)*v.Z,
		Z: 2*(xz-yw)*v.X + 2*(yz+xw)*v.Y + (zz-yy-xx+ww)*v.Z,
	}
}

/**
 * @brief Calculates spherical linear interpolation of a given percentage
 * between two quaternions.
 *
 * @param other The second quaternion.
 * @param percentage The percentage of interpolation, typically a value from 0.0-1.0.
 * @return An interpolated quaternion.
 */
func (q Quaterniond) Slerp(other Quaterniond, percentage float64) Quaterniond {
	// Only unit quaternions are valid rotations.
	v0 := q.Normalized()
	v1 := other.Normalized()

	dot := v0.Dot(v1)

	// v1 and -v1 encode the same rotation; take the shorter path.
	if dot < 0.0 {
		v1 = Quaterniond{-v1.X, -v1.Y, -v1.Z, -v1.W}
		dot = -dot
	}

	const dotThreshold = 0.9995
	if dot > dotThreshold {
		qt := Quaterniond{
			Lerp(v0.X, v1.X, percentage),
			Lerp(v0.Y, v1.Y, percentage),
			Lerp(v0.Z, v1.Z, percentage),
			Lerp(v0.W, v1.W, percentage)}
		return qt.Normalized()
	}

	theta0 := m.Acos(dot)
	theta := theta0 * percentage
	sinTheta := m.Sin(theta)
	sinTheta0 := m.Sin(theta0)

	s0 := m.Cos(theta) - dot*sinTheta/sinTheta0
	s1 := sinTheta / sinTheta0

	return Quaterniond{
		(v0.X * s0) + (v1.X * s1),
		(v0.Y * s0) + (v1.Y * s1),
		(v0.Z * s0) + (v1.Z * s1),
		(v0.W * s0) + (v1.W * s1)}
}

/**
 * @brief Sets the quaternion from the rotation encoded in the upper-left 3x3
 * block of mat. The block must be orthonormal.
 */
func (q *Quaterniond) SetFromNormalized(mat *Matrix4d) *Quaterniond {
	*q = quaternionFromRotation(
		mat.M00, mat.M01, mat.M02,
		mat.M10, mat.M11, mat.M12,
		mat.M20, mat.M21, mat.M22)
	return q
}

/**
 * @brief Sets the quaternion from the upper-left 3x3 block of mat after
 * normalizing each of its columns, so scaled matrices are accepted.
 */
func (q *Quaterniond) SetFromUnnormalized(mat *Matrix4d) *Quaterniond {
	nx := invSqrt(mat.M00*mat.M00 + mat.M01*mat.M01 + mat.M02*mat.M02)
	ny := invSqrt(mat.M10*mat.M10 + mat.M11*mat.M11 + mat.M12*mat.M12)
	nz := invSqrt(mat.M20*mat.M20 + mat.M21*mat.M21 + mat.M22*mat.M22)
	*q = quaternionFromRotation(
		mat.M00*nx, mat.M01*nx, mat.M02*nx,
		mat.M10*ny, mat.M11*ny, mat.M12*ny,
		mat.M20*nz, mat.M21*nz, mat.M22*nz)
	return q
}

func quaternionFromRotation(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Quaterniond {
	var q Quaterniond
	t := m00 + m11 + m22
	switch {
	case t >= 0:
		s := m.Sqrt(t + 1.0)
		q.W = s * 0.5
		s = 0.5 / s
		q.X = (m12 - m21) * s
		q.Y = (m20 - m02) * s
		q.Z = (m01 - m10) * s
	case m00 >= m11 && m00 >= m22:
		s := m.Sqrt(m00 - (m11 + m22) + 1.0)
		q.X = s * 0.5
		s = 0.5 / s
		q.Y = (m10 + m01) * s
		q.Z = (m02 + m20) * s
		q.W = (m12 - m21) * s
	case m11 > m22:
		s := m.Sqrt(m11 - (m22 + m00) + 1.0)
		q.Y = s * 0.5
		s = 0.5 / s
		q.Z = (m21 + m12) * s
		q.X = (m10 + m01) * s
		q.W = (m20 - m02) * s
	default:
		s := m.Sqrt(m22 - (m00 + m11) + 1.0)
		q.Z = s * 0.5
		s = 0.5 / s
		q.X = (m02 + m20) * s
		q.Y = (m21 + m12) * s
		q.W = (m01 - m10) * s
	}
	return q
}

// AxisAngle converts the unit quaternion into an axis-angle rotation.
func (q Quaterniond) AxisAngle() AxisAngle4d {
	w := Clamp(q.W, -1.0, 1.0)
	angle := 2.0 * m.Acos(w)
	s := m.Sqrt(1.0 - w*w)
	inv := 1.0 / s
	if m.IsInf(inv, 0) {
		// zero angle, any axis works
		return AxisAngle4d{Angle: angle, X: 0.0, Y: 0.0, Z: 1.0}
	}
	return AxisAngle4d{Angle: angle, X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}
}

func (q Quaterniond) Equals(other Quaterniond, delta float64) bool {
	return m.Abs(q.X-other.X) <= delta &&
		m.Abs(q.Y-other.Y) <= delta &&
		m.Abs(q.Z-other.Z) <= delta &&
		m.Abs(q.W-other.W) <= delta
}

// ------------------------------------------
// Axis angle
// ------------------------------------------

// NewAxisAngle4d creates a rotation of angle radians around (x, y, z).
func NewAxisAngle4d(angle, x, y, z float64) AxisAngle4d {
	return AxisAngle4d{Angle: angle, X: x, Y: y, Z: z}
}

// Normalized returns a copy with a unit-length axis.
func (a AxisAngle4d) Normalized() AxisAngle4d {
	inv := invSqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
	return AxisAngle4d{Angle: a.Angle, X: a.X * inv, Y: a.Y * inv, Z: a.Z * inv}
}

// Quaternion converts the axis-angle rotation into a unit quaternion.
func (a AxisAngle4d) Quaternion() Quaterniond {
	return NewQuaterniondAxisAngle(Vector3d{a.X, a.Y, a.Z}, a.Angle)
}

// Transform rotates v using Rodrigues' rotation formula.
func (a AxisAngle4d) Transform(v Vector3d) Vector3d {
	s, c := sinCos(a.Angle)
	axis := Vector3d{a.X, a.Y, a.Z}
	dot := axis.Dot(v)
	cross := axis.Cross(v)
	return v.MulScalar(c).Add(cross.MulScalar(s)).Add(axis.MulScalar(dot * (1.0 - c)))
}
