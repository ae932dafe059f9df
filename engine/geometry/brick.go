package geometry

import (
	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/math"
	"github.com/spaghettifunk/brickforge/engine/mesh"
)

// StudOrigins returns where the studs stand: one per unit cell, on the roof.
func (c BrickConfig) StudOrigins() []math.Vec3 {
	_, _, hz := c.Dimensions()
	return PlaceOrigins(c.HorizontalUnit, c.Width, c.Depth, hz)
}

// TubeOrigins returns where the tubes stand: on the floor plane, at every
// point where four studs of a brick underneath would meet.
func (c BrickConfig) TubeOrigins() []math.Vec3 {
	return PlaceOrigins(c.HorizontalUnit, c.Width-1, c.Depth-1, 0)
}

// Counts predicts the vertex and face totals of GenerateBrick.
func Counts(c BrickConfig) (vertices, faces int) {
	studs := len(c.StudOrigins())
	tubes := len(c.TubeOrigins())
	stud := c.StudSpec()
	tube := c.TubeSpec()

	vertices = BoxShellVertexCount + studs*stud.VertexCount() + tubes*tube.VertexCount()
	faces = BoxShellFaceCount + studs*stud.FaceCount() + tubes*tube.FaceCount()
	return vertices, faces
}

// GenerateBrick assembles the body shell, the studs and the tubes into one
// mesh, in that order. Placement and shading are not applied here.
func GenerateBrick(c BrickConfig) mesh.MeshInfo {
	hx, hy, hz := c.Dimensions()

	vertexCount, faceCount := Counts(c)
	out := mesh.New(vertexCount, faceCount)

	out.Append(BoxShell(hx, hy, hz, c.WallThickness))
	out.Append(GenerateCylinders(c.StudOrigins(), c.StudSpec()))
	out.Append(GenerateCylinders(c.TubeOrigins(), c.TubeSpec()))

	core.LogDebug("brick %dx%dx%d: %d vertices, %d faces", c.Width, c.Depth, c.Height, out.VertexCount(), out.FaceCount())
	return out
}
