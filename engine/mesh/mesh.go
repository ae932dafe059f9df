package mesh

import (
	"fmt"

	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/math"
)

// MeshInfo is the vertex buffer and face buffer produced by a generator.
// A vertex's position in Vertices is the index faces use to reference it.
// Ownership passes to the caller, who usually appends it onto a larger mesh.
type MeshInfo struct {
	Vertices []math.Vec3
	Faces    []Face
}

// New returns an empty mesh with room for the given number of vertices and faces.
func New(vertexCap, faceCap int) MeshInfo {
	return MeshInfo{
		Vertices: make([]math.Vec3, 0, vertexCap),
		Faces:    make([]Face, 0, faceCap),
	}
}

func (m *MeshInfo) VertexCount() int {
	return len(m.Vertices)
}

func (m *MeshInfo) FaceCount() int {
	return len(m.Faces)
}

// TriangleCount is the number of triangles after Triangulate.
func (m *MeshInfo) TriangleCount() int {
	count := 0
	for _, f := range m.Faces {
		count += int(f.Arity) - 2
	}
	return count
}

// Append concatenates other onto m. Faces of other are shifted by the
// vertex count m had before the call.
func (m *MeshInfo) Append(other MeshInfo) {
	offset := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, other.Vertices...)
	for _, f := range other.Faces {
		m.Faces = append(m.Faces, f.Offset(offset))
	}
}

// Validate checks that every face has a legal arity and only references
// vertices that exist. Errors wrap core.ErrDegenerateInput or
// core.ErrIndexOverflow along with the offending face.
func (m *MeshInfo) Validate() error {
	count := uint32(len(m.Vertices))
	for i, f := range m.Faces {
		if f.Arity != 3 && f.Arity != 4 {
			return fmt.Errorf("face %d has arity %d: %w", i, f.Arity, core.ErrDegenerateInput)
		}
		if f.MaxIndex() >= count {
			return fmt.Errorf("face %d %v references vertex %d of %d: %w", i, f.Slice(), f.MaxIndex(), count, core.ErrIndexOverflow)
		}
	}
	return nil
}

// MustValidate panics when Validate fails. Generators use it as an
// assertion: a bad index there is a bug in the stitch arithmetic.
func (m *MeshInfo) MustValidate() {
	if err := m.Validate(); err != nil {
		panic(err)
	}
}

// Points returns the positions of a face's corners in winding order.
func (m *MeshInfo) Points(f Face) []math.Vec3 {
	points := make([]math.Vec3, 0, f.Arity)
	for _, idx := range f.Slice() {
		points = append(points, m.Vertices[idx])
	}
	return points
}

// Normal is the outward unit normal of a face.
func (m *MeshInfo) Normal(f Face) math.Vec3 {
	return math.FaceNormal(m.Points(f))
}

// Triangulate returns a flat index buffer, three indices per triangle.
// Quads are split along their 0-2 diagonal, keeping the winding.
func (m *MeshInfo) Triangulate() []uint32 {
	indices := make([]uint32, 0, m.TriangleCount()*3)
	for _, f := range m.Faces {
		idx := f.Slice()
		for i := 1; i+1 < len(idx); i++ {
			indices = append(indices, idx[0], idx[i], idx[i+1])
		}
	}
	return indices
}

// Extents returns the axis-aligned bounding box of all vertices.
func (m *MeshInfo) Extents() math.Extents3D {
	if len(m.Vertices) == 0 {
		return math.Extents3D{}
	}
	ext := math.Extents3D{Min: m.Vertices[0], Max: m.Vertices[0]}
	for _, v := range m.Vertices[1:] {
		ext.Min.X = min(ext.Min.X, v.X)
		ext.Min.Y = min(ext.Min.Y, v.Y)
		ext.Min.Z = min(ext.Min.Z, v.Z)
		ext.Max.X = max(ext.Max.X, v.X)
		ext.Max.Y = max(ext.Max.Y, v.Y)
		ext.Max.Z = max(ext.Max.Z, v.Z)
	}
	return ext
}

// Transform moves every vertex by mat in place.
func (m *MeshInfo) Transform(mat math.Mat4) {
	for i, v := range m.Vertices {
		m.Vertices[i] = v.Transform(mat)
	}
}
