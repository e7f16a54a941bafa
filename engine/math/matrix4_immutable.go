package math

/**
 * @brief Read-only view of a 4x4 double-precision matrix. Operations that
 * take another matrix as an operand accept a Matrix4dc, so both a *Matrix4d
 * and an ImmutableMatrix4d can be passed. None of the methods modify the
 * viewed matrix.
 */
type Matrix4dc interface {
	// Matrix returns a copy of the 16 elements.
	Matrix() Matrix4d
	Array() [16]float64
	Element(col, row int) (float64, error)
	GetRow(row int) (Vector4d, error)
	GetColumn(col int) (Vector4d, error)
	GetTranslation() Vector3d
	GetScale() Vector3d
	Get3x3() Matrix3d

	Determinant() float64
	Determinant3x3() float64
	DeterminantAffine() float64
	IsAffine() bool
	IsFinite() bool

	MulTo(right Matrix4dc, dest *Matrix4d) *Matrix4d
	MulAffineRTo(right Matrix4dc, dest *Matrix4d) *Matrix4d
	MulAffineTo(right Matrix4dc, dest *Matrix4d) *Matrix4d
	InvertTo(dest *Matrix4d) *Matrix4d
	InvertAffineTo(dest *Matrix4d) *Matrix4d
	TransposeTo(dest *Matrix4d) *Matrix4d

	Transform(v Vector4d) Vector4d
	TransformProject(v Vector3d) Vector3d
	TransformPosition(v Vector3d) Vector3d
	TransformDirection(v Vector3d) Vector3d

	FrustumPlane(plane int) (Vector4d, error)
	FrustumCorner(corner int) (Vector3d, error)
	FrustumAabb() Extents3D
	PerspectiveOrigin() Vector3d
	PerspectiveFov() float64
	PerspectiveNear() float64
	PerspectiveFar() float64
	Project(x, y, z float64, viewport Viewport) Vector3d
	Unproject(winX, winY, winZ float64, viewport Viewport) Vector3d
	UnprojectInv(winX, winY, winZ float64, viewport Viewport) Vector3d
	TestPoint(p Vector3d) bool
	TestSphere(center Vector3d, radius float64) bool
	TestAab(lo, hi Vector3d) bool

	Float64s(dest []float64, offset int) error
	Float32s(dest []float32, offset int) error
	Equals(other Matrix4dc, delta float64) bool
	String() string
}

var (
	_ Matrix4dc = (*Matrix4d)(nil)
	_ Matrix4dc = ImmutableMatrix4d{}
)

/**
 * @brief A value wrapper exposing only the read-only methods of a matrix.
 * Handing one out guarantees the receiver cannot change the wrapped value.
 */
type ImmutableMatrix4d struct {
	mat Matrix4d
}

// NewImmutableMatrix4d snapshots src.
func NewImmutableMatrix4d(src Matrix4dc) ImmutableMatrix4d {
	return ImmutableMatrix4d{mat: src.Matrix()}
}

func (im ImmutableMatrix4d) Matrix() Matrix4d { return im.mat }
func (im ImmutableMatrix4d) Array() [16]float64 { return im.mat.Array() }
func (im ImmutableMatrix4d) Element(col, row int) (float64, error) { return im.mat.Element(col, row) }
func (im ImmutableMatrix4d) GetRow(row int) (Vector4d, error) { return im.mat.GetRow(row) }
func (im ImmutableMatrix4d) GetColumn(col int) (Vector4d, error) { return im.mat.GetColumn(col) }
func (im ImmutableMatrix4d) GetTranslation() Vector3d { return im.mat.GetTranslation() }
func (im ImmutableMatrix4d) GetScale() Vector3d { return im.mat.GetScale() }
func (im ImmutableMatrix4d) Get3x3() Matrix3d { return im.mat.Get3x3() }
func (im ImmutableMatrix4d) Determinant() float64 { return im.mat.Determinant() }
func (im ImmutableMatrix4d) Determinant3x3() float64 { return im.mat.Determinant3x3() }
func (im ImmutableMatrix4d) DeterminantAffine() float64 { return im.mat.DeterminantAffine() }
func (im ImmutableMatrix4d) IsAffine() bool { return im.mat.IsAffine() }
func (im ImmutableMatrix4d) IsFinite() bool { return im.mat.IsFinite() }

func (im ImmutableMatrix4d) MulTo(right Matrix4dc, dest *Matrix4d) *Matrix4d {
	return im.mat.MulTo(right, dest)
}

func (im ImmutableMatrix4d) MulAffineRTo(right Matrix4dc, dest *Matrix4d) *Matrix4d {
	return im.mat.MulAffineRTo(right, dest)
}

func (im ImmutableMatrix4d) MulAffineTo(right Matrix4dc, dest *Matrix4d) *Matrix4d {
	return im.mat.MulAffineTo(right, dest)
}

func (im ImmutableMatrix4d) InvertTo(dest *Matrix4d) *Matrix4d { return im.mat.InvertTo(dest) }
func (im ImmutableMatrix4d) InvertAffineTo(dest *Matrix4d) *Matrix4d { return im.mat.InvertAffineTo(dest) }
func (im ImmutableMatrix4d) TransposeTo(dest *Matrix4d) *Matrix4d { return im.mat.TransposeTo(dest) }

func (im ImmutableMatrix4d) Transform(v Vector4d) Vector4d { return im.mat.Transform(v) }
func (im ImmutableMatrix4d) TransformProject(v Vector3d) Vector3d { return im.mat.TransformProject(v) }
func (im ImmutableMatrix4d) TransformPosition(v Vector3d) Vector3d { return im.mat.TransformPosition(v) }
func (im ImmutableMatrix4d) TransformDirection(v Vector3d) Vector3d { return im.mat.TransformDirection(v) }

func (im ImmutableMatrix4d) FrustumPlane(plane int) (Vector4d, error) { return im.mat.FrustumPlane(plane) }
func (im ImmutableMatrix4d) FrustumCorner(corner int) (Vector3d, error) { return im.mat.FrustumCorner(corner) }
func (im ImmutableMatrix4d) FrustumAabb() Extents3D { return im.mat.FrustumAabb() }
func (im ImmutableMatrix4d) PerspectiveOrigin() Vector3d { return im.mat.PerspectiveOrigin() }
func (im ImmutableMatrix4d) PerspectiveFov() float64 { return im.mat.PerspectiveFov() }
func (im ImmutableMatrix4d) PerspectiveNear() float64 { return im.mat.PerspectiveNear() }
func (im ImmutableMatrix4d) PerspectiveFar() float64 { return im.mat.PerspectiveFar() }

func (im ImmutableMatrix4d) Project(x, y, z float64, viewport Viewport) Vector3d {
	return im.mat.Project(x, y, z, viewport)
}

func (im ImmutableMatrix4d) Unproject(winX, winY, winZ float64, viewport Viewport) Vector3d {
	return im.mat.Unproject(winX, winY, winZ, viewport)
}

func (im ImmutableMatrix4d) UnprojectInv(winX, winY, winZ float64, viewport Viewport) Vector3d {
	return im.mat.UnprojectInv(winX, winY, winZ, viewport)
}

func (im ImmutableMatrix4d) TestPoint(p Vector3d) bool { return im.mat.TestPoint(p) }

func (im ImmutableMatrix4d) TestSphere(center Vector3d, radius float64) bool {
	return im.mat.TestSphere(center, radius)
}

func (im ImmutableMatrix4d) TestAab(lo, hi Vector3d) bool { return im.mat.TestAab(lo, hi) }

func (im ImmutableMatrix4d) Float64s(dest []float64, offset int) error {
	return im.mat.Float64s(dest, offset)
}

func (im ImmutableMatrix4d) Float32s(dest []float32, offset int) error {
	return im.mat.Float32s(dest, offset)
}

func (im ImmutableMatrix4d) Equals(other Matrix4dc, delta float64) bool {
	return im.mat.Equals(other, delta)
}

func (im ImmutableMatrix4d) String() string { return im.mat.String() }
