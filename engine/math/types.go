package math

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector, typically a homogeneous point (W=1) or direction (W=0)
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A quaternion, used to represent rotational orientation. */
type Quaternion Vec4

/**
 * @brief a 4x4 matrix, typically used to represent object transformations.
 * Elements are stored column-major: Data[col*4+row]. This is the layout
 * a graphics pipeline expects on upload, so Data can be sent as-is.
 */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/** @brief a 2x2 matrix, column-major like Mat4: Data[col*2+row]. */
type Mat2 struct {
	Data [4]float32
}

/**
 * @brief Represents the transform of an object in the world: a position,
 * an axis-angle rotation and a (possibly non-uniform) scale. The model
 * matrix is rebuilt from these on every call to Model.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The axis the object is rotated about. Must be non-zero. */
	Axis Vec3
	/** @brief The scale in the world. */
	Scale Vec3
	/** @brief The rotation about Axis, in radians. */
	Angle float32
}
