package math

import (
	m "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrustumPlanesAreNormalized(t *testing.T) {
	var persp Matrix4d
	persp.SetPerspective(K_PI/3, 16.0/9.0, 1, 1000)

	for plane := PlaneNX; plane <= PlanePZ; plane++ {
		p, err := persp.FrustumPlane(plane)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, p.XYZ().Length(), 1e-12, "plane %d", plane)
	}

	near, err := persp.FrustumPlane(PlaneNZ)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, near.X, 1e-12)
	assert.InDelta(t, 0.0, near.Y, 1e-12)
	assert.InDelta(t, -1.0, near.Z, 1e-12)
	assert.InDelta(t, -1.0, near.W, 1e-9)

	far, err := persp.FrustumPlane(PlanePZ)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, far.Z, 1e-12)
	assert.InDelta(t, 1000.0, far.W, 1e-6)
}

func TestFrustumCorners(t *testing.T) {
	var persp Matrix4d
	persp.SetPerspective(K_HALF_PI, 1, 1, 100)

	tests := []struct {
		corner   int
		expected Vector3d
	}{
		{CornerNXNYNZ, Vector3d{-1, -1, -1}},
		{CornerPXNYNZ, Vector3d{1, -1, -1}},
		{CornerPXPYNZ, Vector3d{1, 1, -1}},
		{CornerNXPYNZ, Vector3d{-1, 1, -1}},
		{CornerPXNYPZ, Vector3d{100, -100, -100}},
		{CornerNXNYPZ, Vector3d{-100, -100, -100}},
		{CornerNXPYPZ, Vector3d{-100, 100, -100}},
		{CornerPXPYPZ, Vector3d{100, 100, -100}},
	}
	for _, tt := range tests {
		c, err := persp.FrustumCorner(tt.corner)
		require.NoError(t, err)
		assertVectorInDelta(t, tt.expected, c, 1e-9, "corner %d", tt.corner)
	}

	var degenerate Matrix4d
	c, err := degenerate.FrustumCorner(CornerNXNYNZ)
	require.NoError(t, err)
	assert.False(t, c.IsFinite())
}

func TestPerspectiveQueries(t *testing.T) {
	var persp, view, viewProj Matrix4d
	persp.SetPerspective(1.2, 1.5, 0.1, 100)
	eye := Vector3d{1, 2, 3}
	view.SetLookAt(eye, Vector3d{-2, 0, -1}, Vector3d{0, 1, 0})
	persp.MulTo(&view, &viewProj)

	assert.InDelta(t, 0.1, persp.PerspectiveNear(), 1e-12)
	assert.InDelta(t, 100.0, persp.PerspectiveFar(), 1e-9)
	assert.InDelta(t, 1.2, persp.PerspectiveFov(), 1e-12)
	assert.InDelta(t, 1.2, viewProj.PerspectiveFov(), 1e-12)

	assertVectorInDelta(t, Vector3d{}, persp.PerspectiveOrigin(), 1e-12)
	assertVectorInDelta(t, eye, viewProj.PerspectiveOrigin(), 1e-9)

	var slice Matrix4d
	persp.PerspectiveFrustumSlice(1, 10, &slice)
	assert.InDelta(t, 1.0, slice.PerspectiveNear(), 1e-12)
	assert.InDelta(t, 10.0, slice.PerspectiveFar(), 1e-9)
	assert.InDelta(t, persp.M00*10, slice.M00, 1e-12)
	assert.InDelta(t, persp.M11*10, slice.M11, 1e-12)
	assert.Equal(t, persp.M23, slice.M23)
}

func TestFrustumRayDir(t *testing.T) {
	var persp Matrix4d
	persp.SetPerspective(K_HALF_PI, 1, 0.1, 100)

	assertVectorInDelta(t, Vector3d{0, 0, -1}, persp.FrustumRayDir(0.5, 0.5), 1e-12)
	assertVectorInDelta(t, Vector3d{-1, -1, -1}.Normalized(), persp.FrustumRayDir(0, 0), 1e-12)
	assertVectorInDelta(t, Vector3d{1, 1, -1}.Normalized(), persp.FrustumRayDir(1, 1), 1e-12)
}

func TestPositiveAxes(t *testing.T) {
	var rot Matrix4d
	rot.RotationY(K_HALF_PI)

	assertVectorInDelta(t, Vector3d{-1, 0, 0}, rot.PositiveZ(), 1e-12)
	assertVectorInDelta(t, Vector3d{-1, 0, 0}, rot.NormalizedPositiveZ(), 1e-12)
	assertVectorInDelta(t, Vector3d{0, 0, 1}, rot.PositiveX(), 1e-12)
	assertVectorInDelta(t, Vector3d{0, 0, 1}, rot.NormalizedPositiveX(), 1e-12)
	assertVectorInDelta(t, Vector3d{0, 1, 0}, rot.PositiveY(), 1e-12)
	assertVectorInDelta(t, Vector3d{0, 1, 0}, rot.NormalizedPositiveY(), 1e-12)

	scaled := rot
	scaled.Scale(3, 3, 3)
	assertVectorInDelta(t, Vector3d{-1, 0, 0}, scaled.PositiveZ(), 1e-12)
}

func TestUnprojectCenterLiesOnForwardAxis(t *testing.T) {
	var persp Matrix4d
	persp.SetPerspective(K_HALF_PI, 1, 0.1, 100)
	vp := Viewport{0, 0, 100, 100}

	p := persp.Unproject(50, 50, 0.5, vp)
	assert.InDelta(t, 0.0, p.X, 1e-12)
	assert.InDelta(t, 0.0, p.Y, 1e-12)
	assert.Less(t, p.Z, 0.0)

	var inv Matrix4d
	persp.InvertPerspectiveTo(&inv)
	assertVectorInDelta(t, p, inv.UnprojectInv(50, 50, 0.5, vp), 1e-9)

	near := persp.Unproject(50, 50, 0, vp)
	assert.InDelta(t, -0.1, near.Z, 1e-12)
}

func TestProjectUnprojectRoundTrip(t *testing.T) {
	var persp, view, viewProj Matrix4d
	persp.SetPerspective(1, 4.0/3.0, 0.1, 100)
	view.SetLookAt(Vector3d{0, 0, 5}, Vector3d{}, Vector3d{0, 1, 0})
	persp.MulTo(&view, &viewProj)
	vp := Viewport{10, 20, 640, 480}

	point := Vector3d{0.5, -0.3, 1}
	win := viewProj.Project(point.X, point.Y, point.Z, vp)
	assert.Greater(t, win.X, 10.0)
	assert.Less(t, win.X, 650.0)
	assert.Greater(t, win.Z, 0.0)
	assert.Less(t, win.Z, 1.0)

	back := viewProj.Unproject(win.X, win.Y, win.Z, vp)
	assertVectorInDelta(t, point, back, 1e-9)

	center := viewProj.Project(0, 0, 0, vp)
	assert.InDelta(t, 330.0, center.X, 1e-9)
	assert.InDelta(t, 260.0, center.Y, 1e-9)
}

func TestUnprojectRay(t *testing.T) {
	var persp Matrix4d
	persp.SetPerspective(K_HALF_PI, 1, 1, 100)
	vp := Viewport{0, 0, 200, 200}

	origin, dir := persp.UnprojectRay(100, 100, vp)
	assertVectorInDelta(t, Vector3d{0, 0, -1}, origin, 1e-9)
	assertVectorInDelta(t, Vector3d{0, 0, -99}, dir, 1e-7)

	var inv Matrix4d
	persp.InvertTo(&inv)
	o2, d2 := inv.UnprojectInvRay(0, 0, vp)
	assertVectorInDelta(t, Vector3d{-1, -1, -1}, o2, 1e-9)
	assertVectorInDelta(t, Vector3d{-99, -99, -99}, d2, 1e-7)
}

func TestFrustumAabb(t *testing.T) {
	var persp, inv Matrix4d
	persp.SetPerspective(K_HALF_PI, 1, 1, 100)
	persp.InvertTo(&inv)

	box := inv.FrustumAabb()
	assertVectorInDelta(t, Vector3d{-100, -100, -100}, box.Min, 1e-7)
	assertVectorInDelta(t, Vector3d{100, 100, -1}, box.Max, 1e-7)

	var ortho, orthoInv Matrix4d
	ortho.SetOrtho(-2, 4, -1, 3, 0.5, 20)
	ortho.InvertOrthoTo(&orthoInv)
	box = orthoInv.FrustumAabb()
	assertVectorInDelta(t, Vector3d{-2, -1, -20}, box.Min, 1e-12)
	assertVectorInDelta(t, Vector3d{4, 3, -0.5}, box.Max, 1e-12)
}

func TestFrustumCulling(t *testing.T) {
	var persp Matrix4d
	persp.SetPerspective(K_HALF_PI, 1, 1, 100)

	assert.True(t, persp.TestPoint(Vector3d{0, 0, -10}))
	assert.True(t, persp.TestPoint(Vector3d{9, -9, -10}))
	assert.False(t, persp.TestPoint(Vector3d{11, 0, -10}))
	assert.False(t, persp.TestPoint(Vector3d{0, 0, 10}))
	assert.False(t, persp.TestPoint(Vector3d{0, 0, -200}))
	assert.False(t, persp.TestPoint(Vector3d{0, 0, -0.5}))

	assert.True(t, persp.TestSphere(Vector3d{0, 0, -200}, 150))
	assert.False(t, persp.TestSphere(Vector3d{0, 0, -200}, 50))
	assert.True(t, persp.TestSphere(Vector3d{12, 0, -10}, 2))
	assert.False(t, persp.TestSphere(Vector3d{20, 0, -10}, 2))

	assert.True(t, persp.TestAab(Vector3d{-1, -1, -11}, Vector3d{1, 1, -9}))
	assert.True(t, persp.TestAab(Vector3d{-500, -500, -50}, Vector3d{500, 500, -40}))
	assert.False(t, persp.TestAab(Vector3d{50, 50, -11}, Vector3d{60, 60, -9}))
	assert.False(t, persp.TestAab(Vector3d{-1, -1, 1}, Vector3d{1, 1, 5}))

	im := NewImmutableMatrix4d(&persp)
	assert.True(t, im.TestPoint(Vector3d{0, 0, -10}))
	assert.InDelta(t, 1.0, im.PerspectiveNear(), 1e-12)
	_, err := im.FrustumPlane(9)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.False(t, m.IsNaN(im.PerspectiveFov()))
}

func BenchmarkFrustumPlanes(b *testing.B) {
	var persp Matrix4d
	persp.SetPerspective(1, 1.5, 0.1, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for plane := PlaneNX; plane <= PlanePZ; plane++ {
			_, _ = persp.FrustumPlane(plane)
		}
	}
}
