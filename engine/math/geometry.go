package math

// FaceNormal returns the unit normal of a planar polygon using Newell's
// method. Counter-clockwise winding seen from the normal's side gives a
// positive orientation, so the result points out of the solid for a
// correctly wound face. Degenerate polygons yield the zero vector.
func FaceNormal(points []Vec3) Vec3 {
	n := Vec3{}
	count := len(points)
	for i := 0; i < count; i++ {
		cur := points[i]
		next := points[(i+1)%count]
		n.X += (cur.Y - next.Y) * (cur.Z + next.Z)
		n.Y += (cur.Z - next.Z) * (cur.X + next.X)
		n.Z += (cur.X - next.X) * (cur.Y + next.Y)
	}
	return n.Normalized()
}

// Centroid is the arithmetic mean of the points.
func Centroid(points []Vec3) Vec3 {
	c := Vec3{}
	if len(points) == 0 {
		return c
	}
	for _, p := range points {
		c = c.Add(p)
	}
	return c.MulScalar(1.0 / float32(len(points)))
}
