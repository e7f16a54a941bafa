package math

import m "math"

// ------------------------------------------
// Vector 2
// ------------------------------------------

// NewVector2d creates a 2-element vector.
func NewVector2d(x, y float64) Vector2d {
	return Vector2d{x, y}
}

func (v Vector2d) Add(other Vector2d) Vector2d {
	return Vector2d{v.X + other.X, v.Y + other.Y}
}

func (v Vector2d) Sub(other Vector2d) Vector2d {
	return Vector2d{v.X - other.X, v.Y - other.Y}
}

func (v Vector2d) MulScalar(scalar float64) Vector2d {
	return Vector2d{v.X * scalar, v.Y * scalar}
}

func (v Vector2d) Dot(other Vector2d) float64 {
	return v.X*other.X + v.Y*other.Y
}

func (v Vector2d) Length() float64 {
	return m.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Equals reports whether every component differs by at most delta.
func (v Vector2d) Equals(other Vector2d, delta float64) bool {
	return m.Abs(v.X-other.X) <= delta && m.Abs(v.Y-other.Y) <= delta
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

/**
 * @brief Creates and returns a new 3-element vector using the supplied values.
 *
 * @param x The x value.
 * @param y The y value.
 * @param z The z value.
 * @return A new 3-element vector.
 */
func NewVector3d(x, y, z float64) Vector3d {
	return Vector3d{x, y, z}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 0.0.
 */
func NewVector3dZero() Vector3d {
	return Vector3d{0.0, 0.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector with all components set to 1.0.
 */
func NewVector3dOne() Vector3d {
	return Vector3d{1.0, 1.0, 1.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing up (0, 1, 0).
 */
func NewVector3dUp() Vector3d {
	return Vector3d{0.0, 1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing down (0, -1, 0).
 */
func NewVector3dDown() Vector3d {
	return Vector3d{0.0, -1.0, 0.0}
}

/**
 * @brief Creates and returns a 3-component vector pointing forward (0, 0, -1).
 */
func NewVector3dForward() Vector3d {
	return Vector3d{0.0, 0.0, -1.0}
}

/**
 * @brief Returns a new Vector4d using v as the x, y and z components and w for w.
 */
func (v Vector3d) ToVector4d(w float64) Vector4d {
	return Vector4d{v.X, v.Y, v.Z, w}
}

func (v Vector3d) Add(other Vector3d) Vector3d {
	return Vector3d{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

func (v Vector3d) Sub(other Vector3d) Vector3d {
	return Vector3d{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Mul multiplies component-wise.
func (v Vector3d) Mul(other Vector3d) Vector3d {
	return Vector3d{v.X * other.X, v.Y * other.Y, v.Z * other.Z}
}

func (v Vector3d) MulScalar(scalar float64) Vector3d {
	return Vector3d{v.X * scalar, v.Y * scalar, v.Z * scalar}
}

// DivScalar divides every component by scalar. A zero scalar yields Inf/NaN.
func (v Vector3d) DivScalar(scalar float64) Vector3d {
	inv := 1.0 / scalar
	return Vector3d{v.X * inv, v.Y * inv, v.Z * inv}
}

func (v Vector3d) Negate() Vector3d {
	return Vector3d{-v.X, -v.Y, -v.Z}
}

func (v Vector3d) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3d) Length() float64 {
	return m.Sqrt(v.LengthSquared())
}

/**
 * @brief Returns a normalized copy of the supplied vector. A zero-length
 * vector produces NaN components.
 */
func (v Vector3d) Normalized() Vector3d {
	inv := invSqrt(v.LengthSquared())
	return Vector3d{v.X * inv, v.Y * inv, v.Z * inv}
}

func (v Vector3d) Dot(other Vector3d) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

/**
 * The cross product is a new vector which is orthogonal to both provided vectors.
 */
func (v Vector3d) Cross(other Vector3d) Vector3d {
	return Vector3d{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X}
}

func (v Vector3d) Distance(other Vector3d) float64 {
	return v.Sub(other).Length()
}

func (v Vector3d) Lerp(other Vector3d, t float64) Vector3d {
	return Vector3d{Lerp(v.X, other.X, t), Lerp(v.Y, other.Y, t), Lerp(v.Z, other.Z, t)}
}

// Min returns the component-wise minimum.
func (v Vector3d) Min(other Vector3d) Vector3d {
	return Vector3d{m.Min(v.X, other.X), m.Min(v.Y, other.Y), m.Min(v.Z, other.Z)}
}

// Max returns the component-wise maximum.
func (v Vector3d) Max(other Vector3d) Vector3d {
	return Vector3d{m.Max(v.X, other.X), m.Max(v.Y, other.Y), m.Max(v.Z, other.Z)}
}

/**
 * @brief Compares all elements of v and other and ensures the difference
 * is at most delta.
 *
 * @param other The vector to compare against.
 * @param delta The difference tolerance.
 * @return True if within tolerance; otherwise false.
 */
func (v Vector3d) Equals(other Vector3d, delta float64) bool {
	return m.Abs(v.X-other.X) <= delta &&
		m.Abs(v.Y-other.Y) <= delta &&
		m.Abs(v.Z-other.Z) <= delta
}

// IsFinite reports whether no component is NaN or infinite.
func (v Vector3d) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// Vector3dc is the read-only view of a 3-component vector.
type Vector3dc interface {
	Vector() Vector3d
	Dot(other Vector3d) float64
	Length() float64
	LengthSquared() float64
	Distance(other Vector3d) float64
	Normalized() Vector3d
	Equals(other Vector3d, delta float64) bool
	IsFinite() bool
}

var (
	_ Vector3dc = Vector3d{}
	_ Vector3dc = ImmutableVector3d{}
)

func (v Vector3d) Vector() Vector3d { return v }

// ImmutableVector3d wraps a snapshot of a vector behind Vector3dc.
type ImmutableVector3d struct {
	v Vector3d
}

func NewImmutableVector3d(src Vector3dc) ImmutableVector3d {
	return ImmutableVector3d{v: src.Vector()}
}

func (iv ImmutableVector3d) Vector() Vector3d                          { return iv.v }
func (iv ImmutableVector3d) Dot(other Vector3d) float64                { return iv.v.Dot(other) }
func (iv ImmutableVector3d) Length() float64                           { return iv.v.Length() }
func (iv ImmutableVector3d) LengthSquared() float64                    { return iv.v.LengthSquared() }
func (iv ImmutableVector3d) Distance(other Vector3d) float64           { return iv.v.Distance(other) }
func (iv ImmutableVector3d) Normalized() Vector3d                      { return iv.v.Normalized() }
func (iv ImmutableVector3d) Equals(other Vector3d, delta float64) bool { return iv.v.Equals(other, delta) }
func (iv ImmutableVector3d) IsFinite() bool                            { return iv.v.IsFinite() }

// ------------------------------------------
// Vector 4
// ------------------------------------------

/**
 * @brief Creates and returns a new 4-element vector using the supplied values.
 */
func NewVector4d(x, y, z, w float64) Vector4d {
	return Vector4d{x, y, z, w}
}

/**
 * @brief Returns the x, y and z components, dropping w.
 */
func (v Vector4d) XYZ() Vector3d {
	return Vector3d{v.X, v.Y, v.Z}
}

func (v Vector4d) Add(other Vector4d) Vector4d {
	return Vector4d{v.X + other.X, v.Y + other.Y, v.Z + other.Z, v.W + other.W}
}

func (v Vector4d) Sub(other Vector4d) Vector4d {
	return Vector4d{v.X - other.X, v.Y - other.Y, v.Z - other.Z, v.W - other.W}
}

func (v Vector4d) MulScalar(scalar float64) Vector4d {
	return Vector4d{v.X * scalar, v.Y * scalar, v.Z * scalar, v.W * scalar}
}

// DivScalar divides all four components by scalar.
func (v Vector4d) DivScalar(scalar float64) Vector4d {
	inv := 1.0 / scalar
	return Vector4d{v.X * inv, v.Y * inv, v.Z * inv, v.W * inv}
}

// PerspectiveDivide returns (x, y, z) divided by w.
func (v Vector4d) PerspectiveDivide() Vector3d {
	inv := 1.0 / v.W
	return Vector3d{v.X * inv, v.Y * inv, v.Z * inv}
}

func (v Vector4d) Dot(other Vector4d) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vector4d) Length() float64 {
	return m.Sqrt(v.Dot(v))
}

func (v Vector4d) Normalized() Vector4d {
	inv := invSqrt(v.Dot(v))
	return Vector4d{v.X * inv, v.Y * inv, v.Z * inv, v.W * inv}
}

/**
 * @brief Divides all four components by the length of (x, y, z). Used to
 * normalize a plane equation so that (x, y, z) is a unit normal and w the
 * signed distance of the plane from the origin.
 */
func (v Vector4d) Normalized3() Vector4d {
	inv := invSqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	return Vector4d{v.X * inv, v.Y * inv, v.Z * inv, v.W * inv}
}

func (v Vector4d) Equals(other Vector4d, delta float64) bool {
	return m.Abs(v.X-other.X) <= delta &&
		m.Abs(v.Y-other.Y) <= delta &&
		m.Abs(v.Z-other.Z) <= delta &&
		m.Abs(v.W-other.W) <= delta
}

func isFinite(f float64) bool {
	return !m.IsNaN(f) && !m.IsInf(f, 0)
}
