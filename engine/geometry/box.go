package geometry

import (
	"github.com/spaghettifunk/brickforge/engine/math"
	"github.com/spaghettifunk/brickforge/engine/mesh"
)

const (
	BoxShellVertexCount = 16
	BoxShellFaceCount   = 14
)

// BoxShell generates the hollow body of a brick: a closed shell of wall
// thickness t around a cavity that is open at the bottom. hx and hy are half
// extents, hz is the full height. The topology never changes; only the
// positions scale with the inputs. A thickness of half the smallest
// dimension or more folds the inner walls through the outer ones, and is
// left for the caller to avoid.
func BoxShell(hx, hy, hz, t float32) mesh.MeshInfo {
	ix := hx - t
	iy := hy - t
	iz := hz - t

	verts := []math.Vec3{
		// 0, 1, 2, 3 - outer bottom
		math.NewVec3(-hx, hy, 0),
		math.NewVec3(hx, hy, 0),
		math.NewVec3(hx, -hy, 0),
		math.NewVec3(-hx, -hy, 0),
		// 4, 5, 6, 7 - outer top
		math.NewVec3(-hx, hy, hz),
		math.NewVec3(hx, hy, hz),
		math.NewVec3(hx, -hy, hz),
		math.NewVec3(-hx, -hy, hz),
		// 8, 9, 10, 11 - inner bottom
		math.NewVec3(-ix, iy, 0),
		math.NewVec3(ix, iy, 0),
		math.NewVec3(ix, -iy, 0),
		math.NewVec3(-ix, -iy, 0),
		// 12, 13, 14, 15 - inner top, under the roof
		math.NewVec3(-ix, iy, iz),
		math.NewVec3(ix, iy, iz),
		math.NewVec3(ix, -iy, iz),
		math.NewVec3(-ix, -iy, iz),
	}

	faces := []mesh.Face{
		// roof
		mesh.Quad(4, 7, 6, 5),
		// outer walls
		mesh.Quad(0, 4, 5, 1),
		mesh.Quad(3, 7, 4, 0),
		mesh.Quad(2, 6, 7, 3),
		mesh.Quad(1, 5, 6, 2),
		// bottom rim
		mesh.Quad(2, 3, 11, 10),
		mesh.Quad(0, 8, 11, 3),
		mesh.Quad(0, 1, 9, 8),
		mesh.Quad(1, 2, 10, 9),
		// ceiling of the cavity
		mesh.Quad(12, 13, 14, 15),
		// inner walls
		mesh.Quad(10, 11, 15, 14),
		mesh.Quad(9, 10, 14, 13),
		mesh.Quad(8, 9, 13, 12),
		mesh.Quad(8, 12, 15, 11),
	}

	return mesh.MeshInfo{Vertices: verts, Faces: faces}
}
