package geometry

import (
	"github.com/spaghettifunk/brickforge/engine/math"
)

// CylinderSpec describes one cylinder instance. An InnerRadius of zero
// makes a solid cylinder; anything else makes a tube.
type CylinderSpec struct {
	Segments    int
	OuterRadius float32
	InnerRadius float32
	Height      float32
	BottomCap   bool
	TopCap      bool
}

func (s CylinderSpec) Hollow() bool {
	return s.InnerRadius != 0
}

// Stride is the number of ring vertices emitted per angular step.
func (s CylinderSpec) Stride() int {
	return ringStride(s.Hollow())
}

// RingLen is the number of vertices in one ring.
func (s CylinderSpec) RingLen() int {
	return s.Segments * s.Stride()
}

// CenterCount is the number of cap centre vertices placed before the ring.
// Tubes close their ends with quads and need none.
func (s CylinderSpec) CenterCount() int {
	if s.Hollow() {
		return 0
	}
	n := 0
	if s.BottomCap {
		n++
	}
	if s.TopCap {
		n++
	}
	return n
}

// VertexCount is the number of vertices one instance appends.
func (s CylinderSpec) VertexCount() int {
	return s.CenterCount() + s.RingLen()
}

// FaceCount is the number of faces one instance appends.
func (s CylinderSpec) FaceCount() int {
	return StitchFaceCount(s.Segments, s.BottomCap, s.TopCap, s.Hollow())
}

func ringStride(hollow bool) int {
	if hollow {
		return 4
	}
	return 2
}

// RingVerts emits the ring of a cylinder standing on origin. For each angle
// step it writes the outer bottom and outer top points and, for a tube, the
// inner bottom and inner top points right after them. The stitcher relies on
// exactly this interleaving.
func RingVerts(origin math.Vec3, segments int, outerR, innerR, height float32) []math.Vec3 {
	hollow := innerR != 0
	up := math.NewVec3(0, 0, height)

	verts := make([]math.Vec3, 0, segments*ringStride(hollow))
	for i := 0; i < segments; i++ {
		angle := math.K_PI_2 * float32(i) / float32(segments)
		s := math.Sin(angle)
		c := math.Cos(angle)

		outer := origin.Add(math.NewVec3(s*outerR, c*outerR, 0))
		verts = append(verts, outer, outer.Add(up))

		if hollow {
			inner := origin.Add(math.NewVec3(s*innerR, c*innerR, 0))
			verts = append(verts, inner, inner.Add(up))
		}
	}
	return verts
}
