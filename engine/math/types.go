package math

// Vector2d represents a 2D vector of float64 components.
type Vector2d struct {
	X, Y float64
}

// Vector3d represents a 3D vector of float64 components.
type Vector3d struct {
	X, Y, Z float64
}

// Vector4d represents a 4D (homogeneous) vector of float64 components.
type Vector4d struct {
	X, Y, Z, W float64
}

/** @brief A unit quaternion, used to represent rotational orientation. */
type Quaterniond struct {
	X, Y, Z, W float64
}

/**
 * @brief A rotation of Angle radians around the axis (X, Y, Z).
 * The axis is expected to be unit length.
 */
type AxisAngle4d struct {
	Angle   float64
	X, Y, Z float64
}

/**
 * @brief A 3x3 matrix stored column-major, named MCR (column, row).
 * Typically holds the rotation/scale block of a Matrix4d.
 */
type Matrix3d struct {
	M00, M01, M02 float64
	M10, M11, M12 float64
	M20, M21, M22 float64
}

/**
 * @brief A 4x4 matrix of float64 stored column-major. Each field is named
 * MCR where C is the column and R is the row, so M30, M31, M32 hold the
 * translation of an affine transformation.
 *
 * The zero value is the zero matrix; use NewMatrix4d or Identity for the
 * identity. Operations mutate the receiver and return it so calls chain;
 * every operation has a ...To variant that writes into dest instead, and
 * dest may be the receiver.
 */
type Matrix4d struct {
	M00, M01, M02, M03 float64
	M10, M11, M12, M13 float64
	M20, M21, M22, M23 float64
	M30, M31, M32, M33 float64
}

/**
 * @brief A 4x4 matrix of float32 stored column-major, the single-precision
 * sibling of Matrix4d.
 */
type Matrix4f struct {
	M00, M01, M02, M03 float32
	M10, M11, M12, M13 float32
	M20, M21, M22, M23 float32
	M30, M31, M32, M33 float32
}

/**
 * @brief A window-space viewport rectangle: x, y, width, height in pixels.
 */
type Viewport [4]int

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vector3d
	/** @brief The maximum extents of the object. */
	Max Vector3d
}

/**
 * @brief Represents the transform of an object in the world.
 * Transforms can have a parent whose own transform is then
 * taken into account. NOTE: The properties of this should not
 * be edited directly, but done via the methods in transform.go
 * to ensure proper matrix generation.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vector3d
	/** @brief The rotation in the world. */
	Rotation Quaterniond
	/** @brief The scale in the world. */
	Scale Vector3d
	/**
	 * @brief Indicates if the position, rotation or scale have changed,
	 * indicating that the local matrix needs to be recalculated.
	 */
	IsDirty bool
	/**
	 * @brief The local transformation matrix, updated whenever
	 * the position, rotation or scale have changed.
	 */
	Local Matrix4d
	/** @brief A pointer to a parent transform if one is assigned. Can also be nil. */
	Parent *Transform
}
