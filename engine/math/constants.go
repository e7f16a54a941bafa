package math

import m "math"

const (
	/** @brief PI. */
	K_PI float64 = m.Pi
	/** @brief PI multiplied by 2. */
	K_PI_2 float64 = 2.0 * K_PI
	/** @brief PI divided by 2. */
	K_HALF_PI float64 = 0.5 * K_PI
	/** @brief PI divided by 4. */
	K_QUARTER_PI float64 = 0.25 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float64 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float64 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + epsilon != 1.0 for float64. */
	K_DOUBLE_EPSILON float64 = 2.220446049250313e-16
	/** @brief Smallest positive number where 1.0 + epsilon != 1.0 for float32. */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

// infiniteProjectionEpsilon keeps the infinite near/far projection limit
// well-conditioned.
const infiniteProjectionEpsilon = 1e-6

// Frustum plane selectors, as returned by FrustumPlane.
const (
	// PlaneNX selects the plane x = -1 in clip space.
	PlaneNX = iota
	// PlanePX selects the plane x = 1 in clip space.
	PlanePX
	// PlaneNY selects the plane y = -1 in clip space.
	PlaneNY
	// PlanePY selects the plane y = 1 in clip space.
	PlanePY
	// PlaneNZ selects the near plane z = -1 in clip space.
	PlaneNZ
	// PlanePZ selects the far plane z = 1 in clip space.
	PlanePZ
)

// Frustum corner selectors, as returned by FrustumCorner.
const (
	// CornerNXNYNZ is the corner (-1, -1, -1) in clip space.
	CornerNXNYNZ = iota
	// CornerPXNYNZ is the corner (1, -1, -1) in clip space.
	CornerPXNYNZ
	// CornerPXPYNZ is the corner (1, 1, -1) in clip space.
	CornerPXPYNZ
	// CornerNXPYNZ is the corner (-1, 1, -1) in clip space.
	CornerNXPYNZ
	// CornerPXNYPZ is the corner (1, -1, 1) in clip space.
	CornerPXNYPZ
	// CornerNXNYPZ is the corner (-1, -1, 1) in clip space.
	CornerNXNYPZ
	// CornerNXPYPZ is the corner (-1, 1, 1) in clip space.
	CornerNXPYPZ
	// CornerPXPYPZ is the corner (1, 1, 1) in clip space.
	CornerPXPYPZ
)

/**
 * @brief Converts provided degrees to radians.
 */
func DegToRad(degrees float64) float64 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

/**
 * @brief Converts provided radians to degrees.
 */
func RadToDeg(radians float64) float64 {
	return radians * K_RAD2DEG_MULTIPLIER
}
