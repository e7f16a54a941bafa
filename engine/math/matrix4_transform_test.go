package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatrix4dAffineTiers(t *testing.T) {
	r := newTestRand()
	for i := 0; i < 50; i++ {
		a := RandomAffine(r)
		b := RandomAffine(r)

		var general, affineR, affine Matrix4d
		a.MulTo(&b, &general)
		a.MulAffineRTo(&b, &affineR)
		a.MulAffineTo(&b, &affine)

		assertMatrixInDelta(t, &general, &affineR, 1e-12)
		assertMatrixInDelta(t, &general, &affine, 1e-12)
		assert.True(t, affine.IsAffine())
	}
}

func TestMatrix4dMulLocal(t *testing.T) {
	r := newTestRand()
	a := RandomAffine(r)
	b := RandomAffine(r)

	var expected, local, localAffine Matrix4d
	b.MulTo(&a, &expected)
	a.MulLocalTo(&b, &local)
	a.MulLocalAffineTo(&b, &localAffine)

	assertMatrixInDelta(t, &expected, &local, 1e-12)
	assertMatrixInDelta(t, &expected, &localAffine, 1e-12)
}

func TestMatrix4dSpecializedMultiplies(t *testing.T) {
	r := newTestRand()
	view := RandomAffine(r)

	var persp, ortho, translation Matrix4d
	persp.SetPerspective(1.2, 1.5, 0.1, 100)
	ortho.SetOrtho(-3, 2, -1, 4, 0.5, 20)
	translation.Translation(4, -2, 7)

	var expected, actual Matrix4d
	persp.MulTo(&view, &expected)
	persp.MulPerspectiveAffineTo(&view, &actual)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)

	ortho.MulTo(&view, &expected)
	ortho.MulOrthoAffineTo(&view, &actual)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)

	translation.MulTo(&view, &expected)
	translation.MulTranslationAffineTo(&view, &actual)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)
}

func TestMatrix4dTranslateScaleLocal(t *testing.T) {
	r := newTestRand()
	a := RandomAffine(r)

	var expected, actual Matrix4d
	NewMatrix4d().Translation(1, 2, 3).MulTo(&a, &expected)
	a.TranslateLocalTo(1, 2, 3, &actual)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)

	NewMatrix4d().Scaling(2, 3, 4).MulTo(&a, &expected)
	a.ScaleLocalTo(2, 3, 4, &actual)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)

	a.MulTo(NewMatrix4d().Scaling(2, 3, 4), &expected)
	a.ScaleTo(2, 3, 4, &actual)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)
}

func TestMatrix4dPrincipalRotations(t *testing.T) {
	var rx, ry, rz Matrix4d
	rx.RotationX(K_HALF_PI)
	ry.RotationY(K_HALF_PI)
	rz.RotationZ(K_HALF_PI)

	assertVectorInDelta(t, Vector3d{0, 0, 1}, rx.TransformDirection(Vector3d{0, 1, 0}), 1e-15)
	assertVectorInDelta(t, Vector3d{0, 0, -1}, ry.TransformDirection(Vector3d{1, 0, 0}), 1e-15)
	assertVectorInDelta(t, Vector3d{0, 1, 0}, rz.TransformDirection(Vector3d{1, 0, 0}), 1e-15)

	r := newTestRand()
	a := RandomAffine(r)
	var expected, actual Matrix4d
	a.MulTo(&rx, &expected)
	a.RotateXTo(K_HALF_PI, &actual)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)
	a.MulTo(&ry, &expected)
	a.RotateYTo(K_HALF_PI, &actual)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)
	a.MulTo(&rz, &expected)
	a.RotateZTo(K_HALF_PI, &actual)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)
}

func TestMatrix4dEulerComposites(t *testing.T) {
	r := newTestRand()
	for i := 0; i < 20; i++ {
		ax, ay, az := r.Float64()*K_PI_2, r.Float64()*K_PI_2, r.Float64()*K_PI_2
		base := RandomAffine(r)

		var expected, actual Matrix4d

		expected = base
		expected.RotateX(ax).RotateY(ay).RotateZ(az)
		actual = base
		actual.RotateXYZ(ax, ay, az)
		assertMatrixInDelta(t, &expected, &actual, 1e-12, "RotateXYZ")

		expected = base
		expected.RotateZ(az).RotateY(ay).RotateX(ax)
		actual = base
		actual.RotateZYX(az, ay, ax)
		assertMatrixInDelta(t, &expected, &actual, 1e-12, "RotateZYX")

		expected = base
		expected.RotateY(ay).RotateX(ax).RotateZ(az)
		actual = base
		actual.RotateYXZ(ay, ax, az)
		assertMatrixInDelta(t, &expected, &actual, 1e-12, "RotateYXZ")

		var rx, ry, rz Matrix4d
		rx.RotationX(ax)
		ry.RotationY(ay)
		rz.RotationZ(az)

		expected = rx
		expected.Mul(&ry).Mul(&rz)
		actual.RotationXYZ(ax, ay, az)
		assertMatrixInDelta(t, &expected, &actual, 1e-12, "RotationXYZ")

		expected = rz
		expected.Mul(&ry).Mul(&rx)
		actual.RotationZYX(az, ay, ax)
		assertMatrixInDelta(t, &expected, &actual, 1e-12, "RotationZYX")

		expected = ry
		expected.Mul(&rx).Mul(&rz)
		actual.RotationYXZ(ay, ax, az)
		assertMatrixInDelta(t, &expected, &actual, 1e-12, "RotationYXZ")
	}
}

func TestMatrix4dAxisAngleRotation(t *testing.T) {
	var rot, rx Matrix4d
	rot.Rotation(0.7, 1, 0, 0)
	rx.RotationX(0.7)
	assertMatrixInDelta(t, &rx, &rot, 1e-15)

	axis := Vector3d{1, 2, 3}.Normalized()
	rot.Rotation(1.1, axis.X, axis.Y, axis.Z)
	assertVectorInDelta(t, axis, rot.TransformDirection(axis), 1e-12, "the axis is fixed")
	assert.InDelta(t, 1.0, rot.Determinant3x3(), 1e-12)

	var fromAA, fromQuat Matrix4d
	fromAA.RotationAxisAngle(NewAxisAngle4d(1.1, axis.X, axis.Y, axis.Z))
	fromQuat.RotationQuat(NewQuaterniondAxisAngle(axis, 1.1))
	assertMatrixInDelta(t, &rot, &fromAA, 1e-12)
	assertMatrixInDelta(t, &rot, &fromQuat, 1e-12)

	base := NewMatrix4d().Translation(1, 2, 3)
	var expected, actual Matrix4d
	base.MulTo(&rot, &expected)
	actual = *base
	actual.Rotate(1.1, axis.X, axis.Y, axis.Z)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)

	actual = *base
	actual.RotateQuat(NewQuaterniondAxisAngle(axis, 1.1))
	assertMatrixInDelta(t, &expected, &actual, 1e-12)

	rot.MulTo(base, &expected)
	actual = *base
	actual.RotateLocal(1.1, axis.X, axis.Y, axis.Z)
	assertMatrixInDelta(t, &expected, &actual, 1e-12)

	keep := NewMatrix4d().Translation(5, 6, 7)
	keep.SetFromAxisAngle(NewAxisAngle4d(0.7, 1, 0, 0))
	assert.Equal(t, Vector3d{5, 6, 7}, keep.GetTranslation())
	assertMatrixInDelta(t, NewMatrix4d().RotationX(0.7).SetTranslation(5, 6, 7), keep, 1e-15)
}

func TestMatrix4dTranslationRotateScale(t *testing.T) {
	tr := Vector3d{1, -2, 3}
	q := NewQuaterniondAxisAngle(Vector3d{0, 1, 1}, 0.8)
	s := Vector3d{2, 0.5, 3}

	var trs Matrix4d
	trs.TranslationRotateScale(tr, q, s)

	expected := NewMatrix4d().Translation(tr.X, tr.Y, tr.Z).RotateQuat(q).Scale(s.X, s.Y, s.Z)
	assertMatrixInDelta(t, expected, &trs, 1e-12)

	assertVectorInDelta(t, s, trs.GetScale(), 1e-12)
	assertVectorInDelta(t, tr, trs.GetTranslation(), 0)
	assert.InDelta(t, 1.0, m.Abs(trs.GetUnnormalizedRotation().Dot(q)), 1e-12)

	var inv, prod Matrix4d
	inv.TranslationRotateScaleInvert(tr, q, s)
	assertMatrixInDelta(t, NewMatrix4d(), trs.MulTo(&inv, &prod), 1e-12)

	applied := NewMatrix4d().TranslateRotateScale(tr, q, s)
	assertMatrixInDelta(t, &trs, applied, 1e-12)

	var noScale Matrix4d
	noScale.TranslationRotate(tr, q)
	assertVectorInDelta(t, NewVector3dOne(), noScale.GetScale(), 1e-12)
}

func TestMatrix4dDecomposition(t *testing.T) {
	q := NewQuaterniondAxisAngle(Vector3d{1, 1, 0}, 0.6)
	var rot Matrix4d
	rot.RotationQuat(q)

	got := rot.GetNormalizedRotation()
	assert.InDelta(t, 1.0, m.Abs(got.Dot(q)), 1e-12)

	aa := rot.GetAxisAngle()
	assert.InDelta(t, 0.6, aa.Angle, 1e-12)
	assertVectorInDelta(t, Vector3d{1, 1, 0}.Normalized(), Vector3d{aa.X, aa.Y, aa.Z}, 1e-12)

	b := rot.Get3x3()
	assert.True(t, b.Mul(b.Transpose()).Equals(NewMatrix3dIdentity(), 1e-12))

	scaled := rot
	scaled.Scale(2, 3, 4)
	scaled.Normalize3x3()
	assertMatrixInDelta(t, &rot, &scaled, 1e-12)
}

func TestMatrix4dNormal(t *testing.T) {
	var mat Matrix4d
	mat.Scaling(2, 4, 8).Translate(1, 2, 3)

	normal := mat.Normal3x3()
	assert.True(t, normal.Equals(NewMatrix3d(0.5, 0, 0, 0, 0.25, 0, 0, 0, 0.125), 1e-15))

	var dest Matrix4d
	mat.NormalTo(&dest)
	assert.Equal(t, Vector3d{}, dest.GetTranslation())
	assert.Equal(t, 0.25, dest.M11)

	rot := NewMatrix4d().RotationXYZ(0.3, 0.2, 0.1)
	n := *rot
	n.Normal()
	assertMatrixInDelta(t, rot, &n, 1e-12, "normal matrix of a rotation is the rotation")
}

func TestMatrix4dVectorTransforms(t *testing.T) {
	mat := NewMatrix4d().Translation(1, 2, 3).Scale(2, 2, 2)

	assert.Equal(t, Vector3d{3, 4, 5}, mat.TransformPosition(Vector3d{1, 1, 1}))
	assert.Equal(t, Vector3d{2, 2, 2}, mat.TransformDirection(Vector3d{1, 1, 1}))
	assert.Equal(t, Vector4d{3, 4, 5, 1}, mat.Transform(Vector4d{1, 1, 1, 1}))
	assert.Equal(t, Vector4d{2, 2, 2, 0}, mat.TransformAffine(Vector4d{1, 1, 1, 0}))

	var persp Matrix4d
	persp.SetPerspective(K_HALF_PI, 1, 1, 10)
	p := persp.TransformProject(Vector3d{0, 0, -1})
	assert.InDelta(t, -1.0, p.Z, 1e-12)
}

func BenchmarkMatrix4dMulAffine(b *testing.B) {
	r := newTestRand()
	x, y := RandomAffine(r), RandomAffine(r)
	var dest Matrix4d
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.MulAffineTo(&y, &dest)
	}
}

func BenchmarkMatrix4dRotateXYZ(b *testing.B) {
	mat := NewMatrix4d()
	for i := 0; i < b.N; i++ {
		mat.RotateXYZ(0.1, 0.2, 0.3)
	}
}
