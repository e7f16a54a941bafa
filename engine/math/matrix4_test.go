package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

const standardDelta = 1e-9

func assertMatrixInDelta(t *testing.T, expected, actual Matrix4dc, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	e, a := expected.Array(), actual.Array()
	assert.InDeltaSlice(t, e[:], a[:], delta, msgAndArgs...)
}

func assertVectorInDelta(t *testing.T, expected, actual Vector3d, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t,
		[]float64{expected.X, expected.Y, expected.Z},
		[]float64{actual.X, actual.Y, actual.Z},
		delta, msgAndArgs...)
}

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(20240611))
}

// lowerTriangular returns a non-affine matrix with determinant 36.
func lowerTriangular() Matrix4d {
	return Matrix4d{
		M00: 2, M01: 1, M02: -1, M03: 0.5,
		M11: 3, M12: 0.5, M13: -0.25,
		M22: 4, M23: 1,
		M33: 1.5,
	}
}

func TestMatrix4dIdentity(t *testing.T) {
	mat := NewMatrix4d()
	assert.Equal(t, [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, mat.Array())
	assert.True(t, mat.IsAffine())

	var zero Matrix4d
	assert.Equal(t, [16]float64{}, zero.Array())
	assert.Equal(t, *NewMatrix4d(), *zero.Identity())
}

func TestMatrix4dConstructors(t *testing.T) {
	mat := NewMatrix4dFrom(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	assert.Equal(t, 5.0, mat.M10)
	assert.Equal(t, 15.0, mat.M32)

	cp := NewMatrix4dCopy(mat)
	assert.Equal(t, *mat, *cp)
	cp.M00 = 100
	assert.Equal(t, 1.0, mat.M00)

	m3 := NewMatrix3d(1, 2, 3, 4, 5, 6, 7, 8, 9)
	from3 := NewMatrix4dFromMatrix3d(m3)
	assert.Equal(t, [16]float64{1, 2, 3, 0, 4, 5, 6, 0, 7, 8, 9, 0, 0, 0, 0, 1}, from3.Array())
}

func TestMatrix4dMulIdentity(t *testing.T) {
	r := newTestRand()
	for i := 0; i < 20; i++ {
		mat := RandomMatrix(r)
		var dest Matrix4d
		assert.Equal(t, mat, *mat.MulTo(NewMatrix4d(), &dest))
		assert.Equal(t, mat, *NewMatrix4d().MulTo(&mat, &dest))
	}
}

func TestMatrix4dInvert(t *testing.T) {
	r := newTestRand()
	for i := 0; i < 20; i++ {
		affine := RandomAffine(r)
		lt := lowerTriangular()
		mat := *lt.Mul(&affine)

		var inv, prod Matrix4d
		mat.InvertTo(&inv)
		assertMatrixInDelta(t, NewMatrix4d(), mat.MulTo(&inv, &prod), standardDelta)
		assertMatrixInDelta(t, NewMatrix4d(), inv.MulTo(&mat, &prod), standardDelta)
	}
}

func TestMatrix4dInvertSingular(t *testing.T) {
	var zero Matrix4d
	zero.Invert()
	assert.False(t, zero.IsFinite())

	mat := NewMatrix4d().Scale(1, 0, 1)
	mat.Invert()
	assert.False(t, mat.IsFinite())
}

func TestMatrix4dTransposeTwice(t *testing.T) {
	r := newTestRand()
	for i := 0; i < 10; i++ {
		mat := RandomMatrix(r)
		orig := mat
		mat.Transpose().Transpose()
		assert.Equal(t, orig, mat)
	}
}

func TestMatrix4dTranspose3x3(t *testing.T) {
	mat := NewMatrix4dFrom(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	mat.Transpose3x3()
	assert.Equal(t, [16]float64{1, 5, 9, 0, 2, 6, 10, 0, 3, 7, 11, 0, 0, 0, 0, 1}, mat.Array())
}

func TestMatrix4dTranslationLayout(t *testing.T) {
	var set Matrix4d
	set.Translation(1, 2, 3)
	applied := NewMatrix4d().Translate(1, 2, 3)

	assert.Equal(t, set, *applied)
	assert.Equal(t, [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 1, 2, 3, 1}, set.Array())
	assert.Equal(t, Vector3d{1, 2, 3}, set.GetTranslation())
}

func TestMatrix4dDeterminant(t *testing.T) {
	mat := lowerTriangular()
	assert.InDelta(t, 36.0, mat.Determinant(), 1e-12)
	assert.InDelta(t, 24.0, mat.Determinant3x3(), 1e-12)

	var reflection, scaling Matrix4d
	reflection.Reflection(0, 0, 1, 0)
	scaling.Scaling(1, 1, 1)
	assert.Less(t, reflection.Determinant3x3(), 0.0)
	assert.Equal(t, 1.0, scaling.Determinant3x3())
	assert.Equal(t, 1.0, scaling.DeterminantAffine())

	var s Matrix4d
	s.Scaling(2, 3, 4)
	assert.InDelta(t, 24.0, s.Determinant(), 1e-12)
}

func TestMatrix4dSelectorErrors(t *testing.T) {
	mat := NewMatrix4d()
	persp := NewMatrix4d().SetPerspective(K_PI/3, 16.0/9.0, 1, 1000)

	tests := []struct {
		name string
		call func() error
	}{
		{"GetRow negative", func() error { _, err := mat.GetRow(-1); return err }},
		{"GetRow 4", func() error { _, err := mat.GetRow(4); return err }},
		{"SetRow 4", func() error { _, err := mat.SetRow(4, Vector4d{}); return err }},
		{"GetColumn 4", func() error { _, err := mat.GetColumn(4); return err }},
		{"SetColumn negative", func() error { _, err := mat.SetColumn(-1, Vector4d{}); return err }},
		{"Element column", func() error { _, err := mat.Element(4, 0); return err }},
		{"Element row", func() error { _, err := mat.Element(0, 4); return err }},
		{"SetElement row", func() error { _, err := mat.SetElement(0, -1, 1); return err }},
		{"FrustumPlane 6", func() error { _, err := persp.FrustumPlane(6); return err }},
		{"FrustumPlane negative", func() error { _, err := persp.FrustumPlane(-1); return err }},
		{"FrustumCorner 8", func() error { _, err := persp.FrustumCorner(8); return err }},
		{"FrustumCorner negative", func() error { _, err := persp.FrustumCorner(-1); return err }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.ErrorIs(t, tt.call(), ErrIndexOutOfRange)
		})
	}
	assert.Equal(t, *NewMatrix4d(), *mat, "failed setters must not modify the matrix")
}

func TestMatrix4dRowsAndColumns(t *testing.T) {
	mat := NewMatrix4dFrom(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)

	row, err := mat.GetRow(1)
	require.NoError(t, err)
	assert.Equal(t, Vector4d{2, 6, 10, 14}, row)

	col, err := mat.GetColumn(3)
	require.NoError(t, err)
	assert.Equal(t, Vector4d{13, 14, 15, 16}, col, "column 3 includes M33")

	_, err = mat.SetRow(3, Vector4d{0, 0, 0, 1})
	require.NoError(t, err)
	assert.True(t, mat.IsAffine())

	_, err = mat.SetColumn(0, Vector4d{-1, -2, -3, 0})
	require.NoError(t, err)
	assert.Equal(t, -2.0, mat.M01)

	v, err := mat.Element(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 10.0, v)

	_, err = mat.SetElement(2, 1, 42)
	require.NoError(t, err)
	assert.Equal(t, 42.0, mat.M21)
}

func TestMatrix4dElementwise(t *testing.T) {
	a := NewMatrix4dFrom(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	b := NewMatrix4dFrom(
		2, 2, 2, 2,
		2, 2, 2, 2,
		2, 2, 2, 2,
		2, 2, 2, 2,
	)
	var dest Matrix4d

	a.AddTo(b, &dest)
	assert.Equal(t, 3.0, dest.M00)
	assert.Equal(t, 18.0, dest.M33)

	a.SubTo(b, &dest)
	assert.Equal(t, -1.0, dest.M00)
	assert.Equal(t, 14.0, dest.M33)

	a.MulComponentWiseTo(b, &dest)
	assert.Equal(t, 2.0, dest.M00)
	assert.Equal(t, 32.0, dest.M33)

	a.Add4x3To(b, &dest)
	assert.Equal(t, 3.0, dest.M00)
	assert.Equal(t, 4.0, dest.M03, "row 3 is kept from the receiver")
	assert.Equal(t, 16.0, dest.M33)

	a.Sub4x3To(b, &dest)
	assert.Equal(t, 13.0, dest.M32)
	assert.Equal(t, 8.0, dest.M13)

	a.Mul4x3ComponentWiseTo(b, &dest)
	assert.Equal(t, 30.0, dest.M32)
	assert.Equal(t, 12.0, dest.M23)

	a.Fma4x3To(b, 0.5, &dest)
	assert.Equal(t, 2.0, dest.M00)
	assert.Equal(t, 16.0, dest.M33)

	a.LerpTo(b, 0.5, &dest)
	assert.Equal(t, 1.5, dest.M00)
	assert.Equal(t, 9.0, dest.M33)
}

func TestMatrix4dAliasing(t *testing.T) {
	r := newTestRand()
	a := RandomMatrix(r)
	b := RandomMatrix(r)

	var expected Matrix4d
	a.MulTo(&b, &expected)
	aliased := a
	aliased.MulTo(&b, &aliased)
	assert.Equal(t, expected, aliased)

	a.MulTo(&a, &expected)
	aliased = a
	aliased.MulTo(&aliased, &aliased)
	assert.Equal(t, expected, aliased)

	a.InvertTo(&expected)
	aliased = a
	aliased.InvertTo(&aliased)
	assert.Equal(t, expected, aliased)

	a.TransposeTo(&expected)
	aliased = a
	aliased.TransposeTo(&aliased)
	assert.Equal(t, expected, aliased)

	a.RotateXYZTo(0.1, 0.2, 0.3, &expected)
	aliased = a
	aliased.RotateXYZTo(0.1, 0.2, 0.3, &aliased)
	assert.Equal(t, expected, aliased)

	a.PerspectiveTo(1, 1.5, 0.1, 10, false, &expected)
	aliased = a
	aliased.PerspectiveTo(1, 1.5, 0.1, 10, false, &aliased)
	assert.Equal(t, expected, aliased)
}

func TestMatrix4dSetHelpers(t *testing.T) {
	src := NewMatrix4dFrom(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)

	mat := NewMatrix4d()
	mat.Set3x3(src)
	assert.Equal(t, [16]float64{1, 2, 3, 0, 5, 6, 7, 0, 9, 10, 11, 0, 0, 0, 0, 1}, mat.Array())

	mat.Identity().Set4x3(src)
	assert.Equal(t, [16]float64{1, 2, 3, 0, 5, 6, 7, 0, 9, 10, 11, 0, 13, 14, 15, 1}, mat.Array())

	mat.SetTranslation(-1, -2, -3)
	assert.Equal(t, Vector3d{-1, -2, -3}, mat.GetTranslation())
	assert.Equal(t, 11.0, mat.M22)

	other := NewMatrix4d()
	mat.Swap(other)
	assert.Equal(t, *NewMatrix4d(), *mat)
	assert.Equal(t, -1.0, other.M30)

	mat.Zero()
	assert.Equal(t, [16]float64{}, mat.Array())

	mat.Set(src)
	assert.Equal(t, *src, *mat)

	im := NewImmutableMatrix4d(src)
	mat.Zero().Set(im)
	assert.Equal(t, *src, *mat)
}

func TestMatrix4dIsFinite(t *testing.T) {
	mat := NewMatrix4d()
	assert.True(t, mat.IsFinite())
	mat.M21 = m.NaN()
	assert.False(t, mat.IsFinite())
	mat.M21 = m.Inf(-1)
	assert.False(t, mat.IsFinite())
}

func TestMatrix4dEqualsAndString(t *testing.T) {
	a := NewMatrix4d()
	b := NewMatrix4d()
	b.M12 = 1e-7
	assert.True(t, a.Equals(b, 1e-6))
	assert.False(t, a.Equals(b, 1e-8))

	assert.Equal(t,
		" 1.000e+00  0.000e+00  0.000e+00  0.000e+00\n"+
			" 0.000e+00  1.000e+00  0.000e+00  0.000e+00\n"+
			" 0.000e+00  1.000e-07  1.000e+00  0.000e+00\n"+
			" 0.000e+00  0.000e+00  0.000e+00  1.000e+00\n",
		b.String())
}

func TestImmutableMatrix4d(t *testing.T) {
	src := NewMatrix4d().Translation(1, 2, 3)
	im := NewImmutableMatrix4d(src)
	src.M30 = 100

	assert.Equal(t, Vector3d{1, 2, 3}, im.GetTranslation())

	var dest Matrix4d
	im.MulTo(NewMatrix4d().Scaling(2, 2, 2), &dest)
	assert.Equal(t, 2.0, dest.M00)
	assert.Equal(t, 1.0, dest.M30)
	assert.True(t, im.IsAffine())
}

func BenchmarkMatrix4dMul(b *testing.B) {
	r := newTestRand()
	x, y := RandomMatrix(r), RandomMatrix(r)
	var dest Matrix4d
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.MulTo(&y, &dest)
	}
}

func BenchmarkMatrix4dInvert(b *testing.B) {
	r := newTestRand()
	x := RandomAffine(r)
	var dest Matrix4d
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.InvertTo(&dest)
	}
}
