package math

// Vec3 represents a 3D vector. It doubles as a point in mesh space.
type Vec3 struct {
	X, Y, Z float32
}

/** @brief a 4x4 matrix, row-vector convention, translation in Data[12..14]. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents the extents of a 3d object.
 */
type Extents3D struct {
	/** @brief The minimum extents of the object. */
	Min Vec3
	/** @brief The maximum extents of the object. */
	Max Vec3
}

// Size returns the edge lengths of the box.
func (e Extents3D) Size() Vec3 {
	return e.Max.Sub(e.Min)
}

// Center returns the midpoint of the box.
func (e Extents3D) Center() Vec3 {
	return e.Min.Add(e.Max).MulScalar(0.5)
}
