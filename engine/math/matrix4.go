package math

import (
	"fmt"
	m "math"
	"strings"
)

/**
 * @brief Creates and returns an identity matrix:
 *
 * {
 *   {1, 0, 0, 0},
 *   {0, 1, 0, 0},
 *   {0, 0, 1, 0},
 *   {0, 0, 0, 1}
 * }
 *
 * @return A new identity matrix
 */
func NewMatrix4d() *Matrix4d {
	return &Matrix4d{
		M00: 1.0,
		M11: 1.0,
		M22: 1.0,
		M33: 1.0,
	}
}

/**
 * @brief Creates a matrix from 16 values given in column-major order, so
 * the first four arguments form column 0.
 */
func NewMatrix4dFrom(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64) *Matrix4d {
	return &Matrix4d{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}
}

// NewMatrix4dCopy creates a copy of src.
func NewMatrix4dCopy(src Matrix4dc) *Matrix4d {
	c := src.Matrix()
	return &c
}

// NewMatrix4dFromMatrix3d creates an affine matrix whose upper-left 3x3
// block is src.
func NewMatrix4dFromMatrix3d(src Matrix3d) *Matrix4d {
	return NewMatrix4d().SetMatrix3d(src)
}

// Matrix returns a copy of the matrix value.
func (mat *Matrix4d) Matrix() Matrix4d {
	return *mat
}

// Set copies all 16 elements of src into mat.
func (mat *Matrix4d) Set(src Matrix4dc) *Matrix4d {
	*mat = src.Matrix()
	return mat
}

// SetValues overwrites all 16 elements, in column-major order.
func (mat *Matrix4d) SetValues(
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 float64) *Matrix4d {
	*mat = Matrix4d{
		m00, m01, m02, m03,
		m10, m11, m12, m13,
		m20, m21, m22, m23,
		m30, m31, m32, m33,
	}
	return mat
}

// Identity resets mat to the identity matrix.
func (mat *Matrix4d) Identity() *Matrix4d {
	*mat = Matrix4d{M00: 1.0, M11: 1.0, M22: 1.0, M33: 1.0}
	return mat
}

// Zero sets every element to 0.
func (mat *Matrix4d) Zero() *Matrix4d {
	*mat = Matrix4d{}
	return mat
}

// Swap exchanges the contents of mat and other.
func (mat *Matrix4d) Swap(other *Matrix4d) *Matrix4d {
	*mat, *other = *other, *mat
	return mat
}

// Set3x3 replaces the upper-left 3x3 block with the one of src and keeps
// every other element.
func (mat *Matrix4d) Set3x3(src Matrix4dc) *Matrix4d {
	s := src.Matrix()
	mat.M00, mat.M01, mat.M02 = s.M00, s.M01, s.M02
	mat.M10, mat.M11, mat.M12 = s.M10, s.M11, s.M12
	mat.M20, mat.M21, mat.M22 = s.M20, s.M21, s.M22
	return mat
}

// Set4x3 replaces rows 0..2 of every column with the ones of src. Row 3 is
// kept.
func (mat *Matrix4d) Set4x3(src Matrix4dc) *Matrix4d {
	s := src.Matrix()
	mat.Set3x3(&s)
	mat.M30, mat.M31, mat.M32 = s.M30, s.M31, s.M32
	return mat
}

// SetMatrix3d replaces the upper-left 3x3 block with src and resets the
// remaining elements to the identity.
func (mat *Matrix4d) SetMatrix3d(src Matrix3d) *Matrix4d {
	*mat = Matrix4d{
		src.M00, src.M01, src.M02, 0,
		src.M10, src.M11, src.M12, 0,
		src.M20, src.M21, src.M22, 0,
		0, 0, 0, 1,
	}
	return mat
}

// SetTranslation overwrites the translation column (M30, M31, M32) and
// leaves everything else untouched.
func (mat *Matrix4d) SetTranslation(x, y, z float64) *Matrix4d {
	mat.M30, mat.M31, mat.M32 = x, y, z
	return mat
}

/**
 * @brief Returns the 16 elements in column-major order.
 */
func (mat *Matrix4d) Array() [16]float64 {
	return [16]float64{
		mat.M00, mat.M01, mat.M02, mat.M03,
		mat.M10, mat.M11, mat.M12, mat.M13,
		mat.M20, mat.M21, mat.M22, mat.M23,
		mat.M30, mat.M31, mat.M32, mat.M33,
	}
}

/**
 * @brief Overwrites all 16 elements from a column-major array.
 */
func (mat *Matrix4d) SetArray(a [16]float64) *Matrix4d {
	*mat = Matrix4d{
		a[0], a[1], a[2], a[3],
		a[4], a[5], a[6], a[7],
		a[8], a[9], a[10], a[11],
		a[12], a[13], a[14], a[15],
	}
	return mat
}

/**
 * @brief Returns the element at the given column and row.
 *
 * @return ErrIndexOutOfRange when col or row is outside [0, 3].
 */
func (mat *Matrix4d) Element(col, row int) (float64, error) {
	if col < 0 || col > 3 {
		return 0, indexError("column", col)
	}
	if row < 0 || row > 3 {
		return 0, indexError("row", row)
	}
	a := mat.Array()
	return a[col*4+row], nil
}

/**
 * @brief Sets the element at the given column and row.
 *
 * @return ErrIndexOutOfRange when col or row is outside [0, 3].
 */
func (mat *Matrix4d) SetElement(col, row int, value float64) (*Matrix4d, error) {
	if col < 0 || col > 3 {
		return mat, indexError("column", col)
	}
	if row < 0 || row > 3 {
		return mat, indexError("row", row)
	}
	a := mat.Array()
	a[col*4+row] = value
	return mat.SetArray(a), nil
}

// GetRow returns row (M0r, M1r, M2r, M3r).
func (mat *Matrix4d) GetRow(row int) (Vector4d, error) {
	switch row {
	case 0:
		return Vector4d{mat.M00, mat.M10, mat.M20, mat.M30}, nil
	case 1:
		return Vector4d{mat.M01, mat.M11, mat.M21, mat.M31}, nil
	case 2:
		return Vector4d{mat.M02, mat.M12, mat.M22, mat.M32}, nil
	case 3:
		return Vector4d{mat.M03, mat.M13, mat.M23, mat.M33}, nil
	}
	return Vector4d{}, indexError("row", row)
}

// SetRow overwrites row with v.
func (mat *Matrix4d) SetRow(row int, v Vector4d) (*Matrix4d, error) {
	switch row {
	case 0:
		mat.M00, mat.M10, mat.M20, mat.M30 = v.X, v.Y, v.Z, v.W
	case 1:
		mat.M01, mat.M11, mat.M21, mat.M31 = v.X, v.Y, v.Z, v.W
	case 2:
		mat.M02, mat.M12, mat.M22, mat.M32 = v.X, v.Y, v.Z, v.W
	case 3:
		mat.M03, mat.M13, mat.M23, mat.M33 = v.X, v.Y, v.Z, v.W
	default:
		return mat, indexError("row", row)
	}
	return mat, nil
}

// GetColumn returns column (Mc0, Mc1, Mc2, Mc3). Column 3 is the
// translation column including M33.
func (mat *Matrix4d) GetColumn(col int) (Vector4d, error) {
	switch col {
	case 0:
		return Vector4d{mat.M00, mat.M01, mat.M02, mat.M03}, nil
	case 1:
		return Vector4d{mat.M10, mat.M11, mat.M12, mat.M13}, nil
	case 2:
		return Vector4d{mat.M20, mat.M21, mat.M22, mat.M23}, nil
	case 3:
		return Vector4d{mat.M30, mat.M31, mat.M32, mat.M33}, nil
	}
	return Vector4d{}, indexError("column", col)
}

// SetColumn overwrites column col with v.
func (mat *Matrix4d) SetColumn(col int, v Vector4d) (*Matrix4d, error) {
	switch col {
	case 0:
		mat.M00, mat.M01, mat.M02, mat.M03 = v.X, v.Y, v.Z, v.W
	case 1:
		mat.M10, mat.M11, mat.M12, mat.M13 = v.X, v.Y, v.Z, v.W
	case 2:
		mat.M20, mat.M21, mat.M22, mat.M23 = v.X, v.Y, v.Z, v.W
	case 3:
		mat.M30, mat.M31, mat.M32, mat.M33 = v.X, v.Y, v.Z, v.W
	default:
		return mat, indexError("column", col)
	}
	return mat, nil
}

// columns returns the four columns as vectors.
func (mat *Matrix4d) columns() (Vector4d, Vector4d, Vector4d, Vector4d) {
	return Vector4d{mat.M00, mat.M01, mat.M02, mat.M03},
		Vector4d{mat.M10, mat.M11, mat.M12, mat.M13},
		Vector4d{mat.M20, mat.M21, mat.M22, mat.M23},
		Vector4d{mat.M30, mat.M31, mat.M32, mat.M33}
}

func matrixFromColumns(c0, c1, c2, c3 Vector4d) Matrix4d {
	return Matrix4d{
		c0.X, c0.Y, c0.Z, c0.W,
		c1.X, c1.Y, c1.Z, c1.W,
		c2.X, c2.Y, c2.Z, c2.W,
		c3.X, c3.Y, c3.Z, c3.W,
	}
}

// ------------------------------------------
// Element-wise arithmetic
// ------------------------------------------

// Add adds other element-wise.
func (mat *Matrix4d) Add(other Matrix4dc) *Matrix4d {
	return mat.AddTo(other, mat)
}

func (mat *Matrix4d) AddTo(other Matrix4dc, dest *Matrix4d) *Matrix4d {
	a, b := mat.Array(), other.Matrix()
	bb := b.Array()
	for i := range a {
		a[i] += bb[i]
	}
	return dest.SetArray(a)
}

// Sub subtracts other element-wise.
func (mat *Matrix4d) Sub(other Matrix4dc) *Matrix4d {
	return mat.SubTo(other, mat)
}

func (mat *Matrix4d) SubTo(other Matrix4dc, dest *Matrix4d) *Matrix4d {
	a, b := mat.Array(), other.Matrix()
	bb := b.Array()
	for i := range a {
		a[i] -= bb[i]
	}
	return dest.SetArray(a)
}

// MulComponentWise multiplies element-wise.
func (mat *Matrix4d) MulComponentWise(other Matrix4dc) *Matrix4d {
	return mat.MulComponentWiseTo(other, mat)
}

func (mat *Matrix4d) MulComponentWiseTo(other Matrix4dc, dest *Matrix4d) *Matrix4d {
	a, b := mat.Array(), other.Matrix()
	bb := b.Array()
	for i := range a {
		a[i] *= bb[i]
	}
	return dest.SetArray(a)
}

// Add4x3 adds rows 0..2 of every column. Row 3 of mat is kept.
func (mat *Matrix4d) Add4x3(other Matrix4dc) *Matrix4d {
	return mat.Add4x3To(other, mat)
}

func (mat *Matrix4d) Add4x3To(other Matrix4dc, dest *Matrix4d) *Matrix4d {
	return mat.elementwise4x3(other, dest, func(a, b float64) float64 { return a + b })
}

// Sub4x3 subtracts rows 0..2 of every column. Row 3 of mat is kept.
func (mat *Matrix4d) Sub4x3(other Matrix4dc) *Matrix4d {
	return mat.Sub4x3To(other, mat)
}

func (mat *Matrix4d) Sub4x3To(other Matrix4dc, dest *Matrix4d) *Matrix4d {
	return mat.elementwise4x3(other, dest, func(a, b float64) float64 { return a - b })
}

// Mul4x3ComponentWise multiplies rows 0..2 of every column. Row 3 of mat is
// kept.
func (mat *Matrix4d) Mul4x3ComponentWise(other Matrix4dc) *Matrix4d {
	return mat.Mul4x3ComponentWiseTo(other, mat)
}

func (mat *Matrix4d) Mul4x3ComponentWiseTo(other Matrix4dc, dest *Matrix4d) *Matrix4d {
	return mat.elementwise4x3(other, dest, func(a, b float64) float64 { return a * b })
}

/**
 * @brief Component-wise adds other multiplied by otherFactor to rows 0..2
 * of every column: mat + other*otherFactor. Row 3 is kept.
 */
func (mat *Matrix4d) Fma4x3(other Matrix4dc, otherFactor float64) *Matrix4d {
	return mat.Fma4x3To(other, otherFactor, mat)
}

func (mat *Matrix4d) Fma4x3To(other Matrix4dc, otherFactor float64, dest *Matrix4d) *Matrix4d {
	return mat.elementwise4x3(other, dest, func(a, b float64) float64 { return fma(b, otherFactor, a) })
}

func (mat *Matrix4d) elementwise4x3(other Matrix4dc, dest *Matrix4d, op func(a, b float64) float64) *Matrix4d {
	a, b := mat.Array(), other.Matrix()
	bb := b.Array()
	for i := range a {
		if i%4 == 3 {
			continue
		}
		a[i] = op(a[i], bb[i])
	}
	return dest.SetArray(a)
}

/**
 * @brief Linearly interpolates every element between mat and other:
 * mat + (other - mat) * t.
 */
func (mat *Matrix4d) Lerp(other Matrix4dc, t float64) *Matrix4d {
	return mat.LerpTo(other, t, mat)
}

func (mat *Matrix4d) LerpTo(other Matrix4dc, t float64, dest *Matrix4d) *Matrix4d {
	a, b := mat.Array(), other.Matrix()
	bb := b.Array()
	for i := range a {
		a[i] = Lerp(a[i], bb[i], t)
	}
	return dest.SetArray(a)
}

// ------------------------------------------
// Transpose and determinants
// ------------------------------------------

// Transpose swaps element (c, r) with (r, c).
func (mat *Matrix4d) Transpose() *Matrix4d {
	return mat.TransposeTo(mat)
}

func (mat *Matrix4d) TransposeTo(dest *Matrix4d) *Matrix4d {
	s := *mat
	*dest = Matrix4d{
		s.M00, s.M10, s.M20, s.M30,
		s.M01, s.M11, s.M21, s.M31,
		s.M02, s.M12, s.M22, s.M32,
		s.M03, s.M13, s.M23, s.M33,
	}
	return dest
}

/**
 * @brief Transposes the upper-left 3x3 block and resets all other elements
 * to their identity values.
 */
func (mat *Matrix4d) Transpose3x3() *Matrix4d {
	return mat.Transpose3x3To(mat)
}

func (mat *Matrix4d) Transpose3x3To(dest *Matrix4d) *Matrix4d {
	s := *mat
	*dest = Matrix4d{
		s.M00, s.M10, s.M20, 0,
		s.M01, s.M11, s.M21, 0,
		s.M02, s.M12, s.M22, 0,
		0, 0, 0, 1,
	}
	return dest
}

// Determinant returns the determinant of the full 4x4 matrix.
func (mat *Matrix4d) Determinant() float64 {
	return (mat.M00*mat.M11-mat.M01*mat.M10)*(mat.M22*mat.M33-mat.M23*mat.M32) +
		(mat.M02*mat.M10-mat.M00*mat.M12)*(mat.M21*mat.M33-mat.M23*mat.M31) +
		(mat.M00*mat.M13-mat.M03*mat.M10)*(mat.M21*mat.M32-mat.M22*mat.M31) +
		(mat.M01*mat.M12-mat.M02*mat.M11)*(mat.M20*mat.M33-mat.M23*mat.M30) +
		(mat.M03*mat.M11-mat.M01*mat.M13)*(mat.M20*mat.M32-mat.M22*mat.M30) +
		(mat.M02*mat.M13-mat.M03*mat.M12)*(mat.M20*mat.M31-mat.M21*mat.M30)
}

// Determinant3x3 returns the determinant of the upper-left 3x3 block.
func (mat *Matrix4d) Determinant3x3() float64 {
	return (mat.M00*mat.M11-mat.M01*mat.M10)*mat.M22 +
		(mat.M02*mat.M10-mat.M00*mat.M12)*mat.M21 +
		(mat.M01*mat.M12-mat.M02*mat.M11)*mat.M20
}

// DeterminantAffine returns the determinant assuming row 3 is (0, 0, 0, 1).
func (mat *Matrix4d) DeterminantAffine() float64 {
	return mat.Determinant3x3()
}

// IsAffine reports whether row 3 is exactly (0, 0, 0, 1).
func (mat *Matrix4d) IsAffine() bool {
	return mat.M03 == 0.0 && mat.M13 == 0.0 && mat.M23 == 0.0 && mat.M33 == 1.0
}

// IsFinite reports whether no element is NaN or infinite.
func (mat *Matrix4d) IsFinite() bool {
	for _, v := range mat.Array() {
		if !isFinite(v) {
			return false
		}
	}
	return true
}

/**
 * @brief Compares all elements of mat and other and ensures the difference
 * is at most delta.
 */
func (mat *Matrix4d) Equals(other Matrix4dc, delta float64) bool {
	b := other.Matrix()
	bb := b.Array()
	for i, v := range mat.Array() {
		if m.Abs(v-bb[i]) > delta {
			return false
		}
	}
	return true
}

/**
 * @brief Returns the matrix as four text rows, row 0 first, each element in
 * scientific notation with three decimals.
 */
func (mat *Matrix4d) String() string {
	var sb strings.Builder
	a := mat.Array()
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(formatElement(a[col*4+row]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func formatElement(v float64) string {
	return fmt.Sprintf("%10.3e", v)
}
