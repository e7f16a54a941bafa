package components

import (
	m "math"
	"testing"

	"github.com/spaghettifunk/animath/engine/math"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertVector(t *testing.T, expected, actual math.Vector3d, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	assert.InDeltaSlice(t,
		[]float64{expected.X, expected.Y, expected.Z},
		[]float64{actual.X, actual.Y, actual.Z},
		delta, msgAndArgs...)
}

func assertMatrix(t *testing.T, expected, actual math.Matrix4d, delta float64, msgAndArgs ...interface{}) {
	t.Helper()
	e, a := expected.Array(), actual.Array()
	assert.InDeltaSlice(t, e[:], a[:], delta, msgAndArgs...)
}

// squareCamera sits at the origin with a 90 degree perspective over a
// 200x200 viewport.
func squareCamera() *Camera {
	c := NewCamera(4)
	c.SetViewport(math.Viewport{0, 0, 200, 200})
	c.SetProjection(NewPerspectiveProjection(math.K_HALF_PI, 1, 1, 100))
	return c
}

func TestCameraDefaults(t *testing.T) {
	c := NewCamera(0)
	assertMatrix(t, *math.NewMatrix4d(), c.GetView(), 0)
	assertVector(t, math.Vector3d{X: 0, Y: 0, Z: -1}, c.Forward(), 1e-15)
	assertVector(t, math.Vector3d{X: 1, Y: 0, Z: 0}, c.Right(), 1e-15)
	assertVector(t, math.Vector3d{X: 0, Y: 1, Z: 0}, c.Up(), 1e-15)
	assert.Equal(t, ProjectionPerspective, c.GetProjection().Kind)
	assert.Equal(t, 0, c.HistoryLen())
}

func TestCameraRebuildsLazily(t *testing.T) {
	c := squareCamera()
	c.GetViewProjection()
	assert.Equal(t, 1, c.Rebuilds())
	c.GetViewProjection()
	c.GetInverseViewProjection()
	assert.Equal(t, 1, c.Rebuilds())

	c.SetPosition(math.Vector3d{X: 1, Y: 0, Z: 0})
	c.GetViewProjection()
	assert.Equal(t, 2, c.Rebuilds())

	c.SetViewport(math.Viewport{0, 0, 400, 200})
	assert.Equal(t, 2.0, c.GetProjection().Aspect)
	c.GetViewProjection()
	assert.Equal(t, 3, c.Rebuilds())
}

func TestCameraViewProjectionPerKind(t *testing.T) {
	projections := []Projection{
		NewPerspectiveProjection(1, 1.5, 0.1, 100),
		NewPerspectiveProjection(1, 1.5, 0.1, m.Inf(1)),
		{Kind: ProjectionPerspective, FovY: 1, Aspect: 1.5, Near: 0.1, Far: 50, ZeroToOne: true},
		{Kind: ProjectionFrustum, Left: -0.2, Right: 0.1, Bottom: -0.1, Top: 0.15, Near: 0.1, Far: 80},
		{Kind: ProjectionOrtho, Left: -4, Right: 6, Bottom: -2, Top: 3, Near: -1, Far: 40},
		{Kind: ProjectionOrthoSymmetric, Width: 10, Height: 8, Near: 0.5, Far: 60},
	}
	for _, p := range projections {
		c := NewCamera(0)
		c.SetPosition(math.Vector3d{X: 3, Y: 2, Z: 7})
		c.SetLookAt(math.Vector3d{X: -1, Y: 0, Z: 0}, math.Vector3d{X: 0, Y: 1, Z: 0})
		c.SetProjection(p)

		proj, view := p.Matrix(), c.GetView()
		var expected math.Matrix4d
		proj.MulTo(&view, &expected)
		assertMatrix(t, expected, c.GetViewProjection(), 1e-12, "kind %s", p.Kind)

		vp, inv := c.GetViewProjection(), c.GetInverseViewProjection()
		var product math.Matrix4d
		vp.MulTo(&inv, &product)
		assertMatrix(t, *math.NewMatrix4d(), product, 1e-9, "kind %s", p.Kind)
	}
}

func TestCameraProjectUnproject(t *testing.T) {
	c := NewCamera(0)
	c.SetViewport(math.Viewport{0, 0, 640, 480})
	c.SetPosition(math.Vector3d{X: 0, Y: 0, Z: 5})
	c.SetLookAt(math.Vector3d{}, math.Vector3d{X: 0, Y: 1, Z: 0})

	center := c.Project(math.Vector3d{})
	assert.InDelta(t, 320.0, center.X, 1e-9)
	assert.InDelta(t, 240.0, center.Y, 1e-9)

	p := math.Vector3d{X: 0.5, Y: -1, Z: 2}
	win := c.Project(p)
	assertVector(t, p, c.Unproject(win.X, win.Y, win.Z), 1e-9)
}

func TestCameraMovement(t *testing.T) {
	c := NewCamera(0)
	c.SetPosition(math.Vector3d{X: 0, Y: 0, Z: 5})
	c.SetLookAt(math.Vector3d{}, math.Vector3d{X: 0, Y: 1, Z: 0})

	c.MoveForward(2)
	assertVector(t, math.Vector3d{X: 0, Y: 0, Z: 3}, c.GetPosition(), 1e-12)
	target, ok := c.Target()
	assert.True(t, ok)
	assertVector(t, math.Vector3d{X: 0, Y: 0, Z: -2}, target, 1e-12)

	c.MoveRight(1)
	c.MoveUp(0.5)
	assertVector(t, math.Vector3d{X: 1, Y: 0.5, Z: 3}, c.GetPosition(), 1e-12)
	c.MoveLeft(1)
	c.MoveDown(0.5)
	c.MoveBackward(2)
	assertVector(t, math.Vector3d{X: 0, Y: 0, Z: 5}, c.GetPosition(), 1e-12)
}

func TestCameraYawPitch(t *testing.T) {
	c := NewCamera(0)
	c.Yaw(math.K_HALF_PI)
	assertVector(t, math.Vector3d{X: -1, Y: 0, Z: 0}, c.Forward(), 1e-12)

	c.Pitch(10)
	assert.Equal(t, PITCH_LIMIT, c.GetEulerRotation().X)
	c.Pitch(-20)
	assert.Equal(t, -PITCH_LIMIT, c.GetEulerRotation().X)

	looking := NewCamera(0)
	looking.SetPosition(math.Vector3d{X: 1, Y: 2, Z: 3})
	looking.SetLookAt(math.Vector3d{X: 4, Y: 0, Z: -1}, math.Vector3d{X: 0, Y: 1, Z: 0})
	before := looking.Forward()
	looking.Yaw(0)
	_, ok := looking.Target()
	assert.False(t, ok)
	assertVector(t, before, looking.Forward(), 1e-12)
}

func TestCameraFrustumQueries(t *testing.T) {
	c := squareCamera()

	corners := c.FrustumCorners()
	assertVector(t, math.Vector3d{X: -1, Y: -1, Z: -1}, corners[math.CornerNXNYNZ], 1e-9)
	assertVector(t, math.Vector3d{X: 100, Y: 100, Z: -100}, corners[math.CornerPXPYPZ], 1e-7)

	box := c.WorldAabb()
	assertVector(t, math.Vector3d{X: -100, Y: -100, Z: -100}, box.Min, 1e-7)
	assertVector(t, math.Vector3d{X: 100, Y: 100, Z: -1}, box.Max, 1e-7)

	planes, err := c.FrustumPlanes()
	require.NoError(t, err)
	assert.InDelta(t, -1.0, planes[math.PlaneNZ].Z, 1e-12)

	origin, dir := c.PickRay(100, 100)
	assertVector(t, math.Vector3d{X: 0, Y: 0, Z: -1}, origin, 1e-9)
	assertVector(t, math.Vector3d{X: 0, Y: 0, Z: -1}, dir, 1e-12)

	assertMatrix(t, c.GetViewProjection(), c.PickMatrix(100, 100, 200, 200), 1e-15)

	assert.True(t, c.IsPointVisible(math.Vector3d{X: 0, Y: 0, Z: -10}))
	assert.False(t, c.IsPointVisible(math.Vector3d{X: 0, Y: 0, Z: 10}))
	assert.True(t, c.IsSphereVisible(math.Vector3d{X: 12, Y: 0, Z: -10}, 2))
	assert.False(t, c.IsBoxVisible(math.Extents3D{Min: math.Vector3d{X: 50, Y: 50, Z: -11}, Max: math.Vector3d{X: 60, Y: 60, Z: -9}}))
}

func TestCameraHistory(t *testing.T) {
	c := NewCamera(2)
	_, ok := c.PreviousViewProjection(1)
	assert.False(t, ok)

	var frames []math.Matrix4d
	for i := 0; i < 3; i++ {
		c.SetPosition(math.Vector3d{X: float64(i), Y: 0, Z: 0})
		frames = append(frames, c.GetViewProjection())
		c.EndFrame()
	}
	assert.Equal(t, 2, c.HistoryLen())

	last, ok := c.PreviousViewProjection(1)
	require.True(t, ok)
	assert.Equal(t, frames[2], last)
	older, ok := c.PreviousViewProjection(2)
	require.True(t, ok)
	assert.Equal(t, frames[1], older)
	_, ok = c.PreviousViewProjection(3)
	assert.False(t, ok)

	c.Reset()
	assert.Equal(t, 0, c.HistoryLen())
}

func TestProjectionKindNames(t *testing.T) {
	for _, k := range []ProjectionKind{ProjectionPerspective, ProjectionFrustum, ProjectionOrtho, ProjectionOrthoSymmetric} {
		parsed, err := ParseProjectionKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}
	_, err := ParseProjectionKind("fisheye")
	assert.Error(t, err)
	assert.Equal(t, "ProjectionKind(9)", ProjectionKind(9).String())
}
