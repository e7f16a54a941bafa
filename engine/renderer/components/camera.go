package components

import (
	"fmt"
	m "math"

	"github.com/google/uuid"
	"github.com/spaghettifunk/animath/engine/containers"
	"github.com/spaghettifunk/animath/engine/math"
)

/** @brief The name of the default camera. */
const DEFAULT_CAMERA_NAME string = "default"

/** @brief The pitch limit, 89 degrees, used to avoid gimbal lock. */
const PITCH_LIMIT float64 = 1.5533430342749532

type ProjectionKind int

const (
	ProjectionPerspective ProjectionKind = iota
	ProjectionFrustum
	ProjectionOrtho
	ProjectionOrthoSymmetric
)

var projectionKindNames = map[ProjectionKind]string{
	ProjectionPerspective:    "perspective",
	ProjectionFrustum:        "frustum",
	ProjectionOrtho:          "ortho",
	ProjectionOrthoSymmetric: "ortho_symmetric",
}

func (k ProjectionKind) String() string {
	if s, ok := projectionKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("ProjectionKind(%d)", int(k))
}

// ParseProjectionKind maps a configuration name onto a ProjectionKind.
func ParseProjectionKind(name string) (ProjectionKind, error) {
	for k, s := range projectionKindNames {
		if s == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown projection kind %q", name)
}

/**
 * @brief The projection settings of a camera. FovY is in radians. Which
 * fields are used depends on Kind.
 */
type Projection struct {
	Kind                     ProjectionKind
	FovY, Aspect             float64
	Near, Far                float64
	Left, Right, Bottom, Top float64
	Width, Height            float64
	ZeroToOne                bool
}

// NewPerspectiveProjection returns a right-handed OpenGL perspective.
func NewPerspectiveProjection(fovy, aspect, near, far float64) Projection {
	return Projection{Kind: ProjectionPerspective, FovY: fovy, Aspect: aspect, Near: near, Far: far}
}

// Matrix builds the projection matrix.
func (p Projection) Matrix() math.Matrix4d {
	var proj math.Matrix4d
	switch p.Kind {
	case ProjectionFrustum:
		proj.SetFrustumNDC(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far, p.ZeroToOne)
	case ProjectionOrtho:
		proj.SetOrthoNDC(p.Left, p.Right, p.Bottom, p.Top, p.Near, p.Far, p.ZeroToOne)
	case ProjectionOrthoSymmetric:
		proj.SetOrthoSymmetricNDC(p.Width, p.Height, p.Near, p.Far, p.ZeroToOne)
	default:
		proj.SetPerspectiveNDC(p.FovY, p.Aspect, p.Near, p.Far, p.ZeroToOne)
	}
	return proj
}

/**
 * @brief Represents a camera that can be used for
 * a variety of things, especially rendering. Ideally,
 * these are created and managed by the camera system.
 */
type Camera struct {
	/** @brief Unique id assigned by the camera system. */
	ID uuid.UUID
	/** @brief The name the camera was acquired by. */
	Name string
	/**
	 * @brief The position of this camera.
	 * NOTE: Do not set this directly, use SetPosition() instead
	 * so the view matrix is recalculated when needed.
	 */
	Position math.Vector3d
	/**
	 * @brief The rotation of this camera using Euler angles (pitch, yaw, roll)
	 * in radians. Unused while a look-at target is set.
	 */
	EulerRotation math.Vector3d
	/** @brief Whether the view is built from target and up instead of the Euler angles. */
	lookAt bool
	target math.Vector3d
	up     math.Vector3d

	projection Projection
	viewport   math.Viewport

	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	IsDirty bool
	/** @brief Set when the projection or viewport changed. */
	projectionDirty bool

	view         math.Matrix4d
	proj         math.Matrix4d
	viewProj     math.Matrix4d
	invViewProj  math.Matrix4d
	history      *containers.RingQueue[math.Matrix4d]
	historySize  int
	rebuildCount int
}

type CameraLookup struct {
	ID             uuid.UUID
	ReferenceCount uint16
	Camera         *Camera
}

func NewCamera(historySize int) *Camera {
	camera := &Camera{historySize: historySize}
	camera.Reset()
	return camera
}

// Reset restores the default pose, projection and viewport and drops the
// history. The id and name are kept.
func (c *Camera) Reset() {
	c.EulerRotation = math.NewVector3dZero()
	c.Position = math.NewVector3dZero()
	c.lookAt = false
	c.target = math.NewVector3dForward()
	c.up = math.NewVector3dUp()
	c.viewport = math.Viewport{0, 0, 1280, 720}
	c.projection = NewPerspectiveProjection(math.DegToRad(60), 1280.0/720.0, 0.1, 1000)
	c.history = containers.NewRingQueue[math.Matrix4d](c.historySize)
	c.view.Identity()
	c.IsDirty = true
	c.projectionDirty = true
}

func (c *Camera) GetPosition() math.Vector3d {
	return c.Position
}

func (c *Camera) SetPosition(position math.Vector3d) {
	c.Position = position
	c.IsDirty = true
}

func (c *Camera) GetEulerRotation() math.Vector3d {
	return c.EulerRotation
}

// SetEulerRotation sets pitch, yaw and roll in radians and leaves look-at mode.
func (c *Camera) SetEulerRotation(rotation math.Vector3d) {
	c.EulerRotation = rotation
	c.lookAt = false
	c.IsDirty = true
}

// SetLookAt points the camera at target. Movement keeps the viewing direction.
func (c *Camera) SetLookAt(target, up math.Vector3d) {
	c.target = target
	c.up = up
	c.lookAt = true
	c.IsDirty = true
}

// Target returns the look-at target and whether one is set.
func (c *Camera) Target() (math.Vector3d, bool) {
	return c.target, c.lookAt
}

func (c *Camera) GetProjection() Projection {
	return c.projection
}

func (c *Camera) SetProjection(p Projection) {
	c.projection = p
	c.projectionDirty = true
}

func (c *Camera) GetViewport() math.Viewport {
	return c.viewport
}

// SetViewport changes the window rectangle. Perspective cameras follow the
// new aspect ratio.
func (c *Camera) SetViewport(viewport math.Viewport) {
	c.viewport = viewport
	if c.projection.Kind == ProjectionPerspective && viewport[3] > 0 {
		c.projection.Aspect = float64(viewport[2]) / float64(viewport[3])
	}
	c.projectionDirty = true
}

// world returns the camera-to-world transform of the Euler pose.
func (c *Camera) world() math.Matrix4d {
	var w math.Matrix4d
	w.Translation(c.Position.X, c.Position.Y, c.Position.Z).
		RotateYXZ(c.EulerRotation.Y, c.EulerRotation.X, c.EulerRotation.Z)
	return w
}

func (c *Camera) GetView() math.Matrix4d {
	if c.IsDirty {
		if c.lookAt {
			c.view.SetLookAt(c.Position, c.target, c.up)
		} else {
			w := c.world()
			w.InvertAffineUnitScaleTo(&c.view)
		}
		c.IsDirty = false
		c.projectionDirty = true
	}
	return c.view
}

func (c *Camera) GetProjectionMatrix() math.Matrix4d {
	c.rebuild()
	return c.proj
}

/**
 * @brief Returns projection * view, rebuilding it when the pose, projection
 * or viewport changed since the last call.
 */
func (c *Camera) GetViewProjection() math.Matrix4d {
	c.rebuild()
	return c.viewProj
}

// GetInverseViewProjection maps clip space back to world space.
func (c *Camera) GetInverseViewProjection() math.Matrix4d {
	c.rebuild()
	return c.invViewProj
}

func (c *Camera) rebuild() {
	view := c.GetView()
	if !c.projectionDirty {
		return
	}
	c.proj = c.projection.Matrix()
	switch c.projection.Kind {
	case ProjectionPerspective:
		c.proj.MulPerspectiveAffineTo(&view, &c.viewProj)
		c.proj.InvertPerspectiveView(&view, &c.invViewProj)
	case ProjectionOrtho, ProjectionOrthoSymmetric:
		c.proj.MulOrthoAffineTo(&view, &c.viewProj)
		c.viewProj.InvertTo(&c.invViewProj)
	default:
		c.proj.MulAffineRTo(&view, &c.viewProj)
		var invProj, invView math.Matrix4d
		c.proj.InvertFrustumTo(&invProj)
		view.InvertAffineTo(&invView)
		invView.MulTo(&invProj, &c.invViewProj)
	}
	c.projectionDirty = false
	c.rebuildCount++
}

// Rebuilds reports how many times the view-projection was recomputed.
func (c *Camera) Rebuilds() int {
	return c.rebuildCount
}

// EndFrame records the current view-projection in the history.
func (c *Camera) EndFrame() {
	c.history.Push(c.GetViewProjection())
}

/**
 * @brief Returns the view-projection recorded age frames ago, where 1 is
 * the most recent EndFrame. ok is false when the history is not that deep.
 */
func (c *Camera) PreviousViewProjection(age int) (math.Matrix4d, bool) {
	n := c.history.Len()
	if age < 1 || age > n {
		return math.Matrix4d{}, false
	}
	mat, err := c.history.At(n - age)
	return mat, err == nil
}

// HistoryLen returns the number of recorded frames.
func (c *Camera) HistoryLen() int {
	return c.history.Len()
}

func (c *Camera) Forward() math.Vector3d {
	view := c.GetView()
	return view.PositiveZ().Negate()
}

func (c *Camera) Backward() math.Vector3d {
	return c.Forward().Negate()
}

func (c *Camera) Left() math.Vector3d {
	return c.Right().Negate()
}

func (c *Camera) Right() math.Vector3d {
	view := c.GetView()
	return view.PositiveX()
}

func (c *Camera) Up() math.Vector3d {
	view := c.GetView()
	return view.PositiveY()
}

func (c *Camera) move(direction math.Vector3d, amount float64) {
	offset := direction.MulScalar(amount)
	c.Position = c.Position.Add(offset)
	if c.lookAt {
		c.target = c.target.Add(offset)
	}
	c.IsDirty = true
}

func (c *Camera) MoveForward(amount float64) {
	c.move(c.Forward(), amount)
}

func (c *Camera) MoveBackward(amount float64) {
	c.move(c.Backward(), amount)
}

func (c *Camera) MoveLeft(amount float64) {
	c.move(c.Left(), amount)
}

func (c *Camera) MoveRight(amount float64) {
	c.move(c.Right(), amount)
}

func (c *Camera) MoveUp(amount float64) {
	c.move(math.NewVector3dUp(), amount)
}

func (c *Camera) MoveDown(amount float64) {
	c.move(math.NewVector3dDown(), amount)
}

// leaveLookAt switches to Euler mode, keeping the current viewing direction.
func (c *Camera) leaveLookAt() {
	if !c.lookAt {
		return
	}
	dir := c.Forward()
	c.EulerRotation = math.Vector3d{
		X: m.Asin(math.Clamp(dir.Y, -1, 1)),
		Y: m.Atan2(-dir.X, -dir.Z),
	}
	c.lookAt = false
	c.IsDirty = true
}

func (c *Camera) Yaw(amount float64) {
	c.leaveLookAt()
	c.EulerRotation.Y += amount
	c.IsDirty = true
}

func (c *Camera) Pitch(amount float64) {
	c.leaveLookAt()
	c.EulerRotation.X += amount

	// Clamp to avoid Gimbal lock.
	c.EulerRotation.X = math.Clamp(c.EulerRotation.X, -PITCH_LIMIT, PITCH_LIMIT)

	c.IsDirty = true
}

// ------------------------------------------
// Queries
// ------------------------------------------

/**
 * @brief Returns the eight world-space corners of the view frustum, indexed
 * by the math.Corner* selectors. Far corners of an infinite projection are
 * not finite.
 */
func (c *Camera) FrustumCorners() [8]math.Vector3d {
	inv := c.GetInverseViewProjection()
	var corners [8]math.Vector3d
	for i, ndc := range cornerNDC {
		corners[i] = inv.TransformProject(ndc)
	}
	return corners
}

var cornerNDC = [8]math.Vector3d{
	math.CornerNXNYNZ: {X: -1, Y: -1, Z: -1},
	math.CornerPXNYNZ: {X: 1, Y: -1, Z: -1},
	math.CornerPXPYNZ: {X: 1, Y: 1, Z: -1},
	math.CornerNXPYNZ: {X: -1, Y: 1, Z: -1},
	math.CornerPXNYPZ: {X: 1, Y: -1, Z: 1},
	math.CornerNXNYPZ: {X: -1, Y: -1, Z: 1},
	math.CornerNXPYPZ: {X: -1, Y: 1, Z: 1},
	math.CornerPXPYPZ: {X: 1, Y: 1, Z: 1},
}

// FrustumPlanes returns the six normalized world-space clip planes.
func (c *Camera) FrustumPlanes() ([6]math.Vector4d, error) {
	vp := c.GetViewProjection()
	var planes [6]math.Vector4d
	for i := range planes {
		p, err := vp.FrustumPlane(math.PlaneNX + i)
		if err != nil {
			return planes, err
		}
		planes[i] = p
	}
	return planes, nil
}

// WorldAabb returns the world-space box enclosing the view frustum.
func (c *Camera) WorldAabb() math.Extents3D {
	inv := c.GetInverseViewProjection()
	return inv.FrustumAabb()
}

// Project maps a world position to window coordinates of the viewport.
func (c *Camera) Project(world math.Vector3d) math.Vector3d {
	vp := c.GetViewProjection()
	return vp.Project(world.X, world.Y, world.Z, c.viewport)
}

// Unproject maps window coordinates with a depth in [0, 1] to world space.
func (c *Camera) Unproject(winX, winY, depth float64) math.Vector3d {
	inv := c.GetInverseViewProjection()
	return inv.UnprojectInv(winX, winY, depth, c.viewport)
}

// PickRay returns the world-space ray under the window position, starting
// on the near plane, with a unit direction.
func (c *Camera) PickRay(winX, winY float64) (math.Vector3d, math.Vector3d) {
	inv := c.GetInverseViewProjection()
	origin, dir := inv.UnprojectInvRay(winX, winY, c.viewport)
	return origin, dir.Normalized()
}

/**
 * @brief Returns a view-projection restricted to the width x height pixel
 * region centered on (x, y), for selection rendering.
 */
func (c *Camera) PickMatrix(x, y, width, height float64) math.Matrix4d {
	vp := c.GetViewProjection()
	var pick math.Matrix4d
	pick.Identity().Pick(x, y, width, height, c.viewport).Mul(&vp)
	return pick
}

func (c *Camera) IsPointVisible(p math.Vector3d) bool {
	vp := c.GetViewProjection()
	return vp.TestPoint(p)
}

func (c *Camera) IsSphereVisible(center math.Vector3d, radius float64) bool {
	vp := c.GetViewProjection()
	return vp.TestSphere(center, radius)
}

func (c *Camera) IsBoxVisible(box math.Extents3D) bool {
	vp := c.GetViewProjection()
	return vp.TestAab(box.Min, box.Max)
}
