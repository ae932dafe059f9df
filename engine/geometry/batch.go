package geometry

import (
	"fmt"

	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/math"
	"github.com/spaghettifunk/brickforge/engine/mesh"
)

// GenerateCylinders builds one cylinder per origin and returns them as a
// single mesh whose indices start at zero.
func GenerateCylinders(origins []math.Vec3, spec CylinderSpec) mesh.MeshInfo {
	m := mesh.New(len(origins)*spec.VertexCount(), len(origins)*spec.FaceCount())
	GenerateCylindersInto(&m, origins, spec)
	return m
}

// GenerateCylindersInto appends one cylinder per origin to m. Each instance
// is stitched as soon as its ring is in the buffer, against the ring start
// recorded just before the append, so faces always index into m as it
// stands.
func GenerateCylindersInto(m *mesh.MeshInfo, origins []math.Vec3, spec CylinderSpec) {
	hollow := spec.Hollow()
	top := math.NewVec3(0, 0, spec.Height)

	for _, origin := range origins {
		if !hollow {
			if spec.BottomCap {
				m.Vertices = append(m.Vertices, origin)
			}
			if spec.TopCap {
				m.Vertices = append(m.Vertices, origin.Add(top))
			}
		}

		ringStart := uint32(len(m.Vertices))
		m.Vertices = append(m.Vertices, RingVerts(origin, spec.Segments, spec.OuterRadius, spec.InnerRadius, spec.Height)...)

		if got := RingStart(spec.Segments, len(m.Vertices), hollow); got != ringStart {
			panic(fmt.Errorf("ring expected at %d, found at %d: %w", ringStart, got, core.ErrIndexOverflow))
		}

		m.Faces = append(m.Faces, Stitch(spec.Segments, ringStart, spec.BottomCap, spec.TopCap, hollow)...)
	}
}
