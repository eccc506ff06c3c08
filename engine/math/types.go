package math

// Vec2i represents a 2D integer point, typically a cursor position in window pixels.
type Vec2i struct {
	X, Y int32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

/** @brief a 4x4 column-major matrix, typically used to represent view transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}
