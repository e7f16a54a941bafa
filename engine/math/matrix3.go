package math

import (
	"fmt"
	m "math"
)

// NewMatrix3dIdentity creates a 3x3 identity matrix.
func NewMatrix3dIdentity() Matrix3d {
	return Matrix3d{
		M00: 1.0,
		M11: 1.0,
		M22: 1.0,
	}
}

// NewMatrix3d creates a 3x3 matrix from nine column-major values.
func NewMatrix3d(m00, m01, m02, m10, m11, m12, m20, m21, m22 float64) Matrix3d {
	return Matrix3d{
		m00, m01, m02,
		m10, m11, m12,
		m20, m21, m22,
	}
}

// Determinant returns the determinant of the matrix.
func (a Matrix3d) Determinant() float64 {
	return (a.M00*a.M11-a.M01*a.M10)*a.M22 +
		(a.M02*a.M10-a.M00*a.M12)*a.M21 +
		(a.M01*a.M12-a.M02*a.M11)*a.M20
}

// Transpose returns the transposed matrix.
func (a Matrix3d) Transpose() Matrix3d {
	return Matrix3d{
		a.M00, a.M10, a.M20,
		a.M01, a.M11, a.M21,
		a.M02, a.M12, a.M22,
	}
}

// Invert returns the inverse. A singular matrix yields Inf/NaN elements.
func (a Matrix3d) Invert() Matrix3d {
	s := 1.0 / a.Determinant()
	return Matrix3d{
		M00: (a.M11*a.M22 - a.M21*a.M12) * s,
		M01: (a.M21*a.M02 - a.M01*a.M22) * s,
		M02: (a.M01*a.M12 - a.M11*a.M02) * s,
		M10: (a.M20*a.M12 - a.M10*a.M22) * s,
		M11: (a.M00*a.M22 - a.M20*a.M02) * s,
		M12: (a.M10*a.M02 - a.M00*a.M12) * s,
		M20: (a.M10*a.M21 - a.M20*a.M11) * s,
		M21: (a.M20*a.M01 - a.M00*a.M21) * s,
		M22: (a.M00*a.M11 - a.M10*a.M01) * s,
	}
}

// Mul returns a * b, applying b first.
func (a Matrix3d) Mul(b Matrix3d) Matrix3d {
	return Matrix3d{
		M00: a.M00*b.M00 + a.M10*b.M01 + a.M20*b.M02,
		M01: a.M01*b.M00 + a.M11*b.M01 + a.M21*b.M02,
		M02: a.M02*b.M00 + a.M12*b.M01 + a.M22*b.M02,
		M10: a.M00*b.M10 + a.M10*b.M11 + a.M20*b.M12,
		M11: a.M01*b.M10 + a.M11*b.M11 + a.M21*b.M12,
		M12: a.M02*b.M10 + a.M12*b.M11 + a.M22*b.M12,
		M20: a.M00*b.M20 + a.M10*b.M21 + a.M20*b.M22,
		M21: a.M01*b.M20 + a.M11*b.M21 + a.M21*b.M22,
		M22: a.M02*b.M20 + a.M12*b.M21 + a.M22*b.M22,
	}
}

// Transform multiplies v by the matrix.
func (a Matrix3d) Transform(v Vector3d) Vector3d {
	return Vector3d{
		X: a.M00*v.X + a.M10*v.Y + a.M20*v.Z,
		Y: a.M01*v.X + a.M11*v.Y + a.M21*v.Z,
		Z: a.M02*v.X + a.M12*v.Y + a.M22*v.Z,
	}
}

// Quaternion extracts the rotation of an orthonormal matrix.
func (a Matrix3d) Quaternion() Quaterniond {
	return quaternionFromRotation(a.M00, a.M01, a.M02, a.M10, a.M11, a.M12, a.M20, a.M21, a.M22)
}

func (a Matrix3d) Equals(other Matrix3d, delta float64) bool {
	return m.Abs(a.M00-other.M00) <= delta && m.Abs(a.M01-other.M01) <= delta && m.Abs(a.M02-other.M02) <= delta &&
		m.Abs(a.M10-other.M10) <= delta && m.Abs(a.M11-other.M11) <= delta && m.Abs(a.M12-other.M12) <= delta &&
		m.Abs(a.M20-other.M20) <= delta && m.Abs(a.M21-other.M21) <= delta && m.Abs(a.M22-other.M22) <= delta
}

func (a Matrix3d) String() string {
	return fmt.Sprintf("%s %s %s\n%s %s %s\n%s %s %s\n",
		formatElement(a.M00), formatElement(a.M10), formatElement(a.M20),
		formatElement(a.M01), formatElement(a.M11), formatElement(a.M21),
		formatElement(a.M02), formatElement(a.M12), formatElement(a.M22))
}
