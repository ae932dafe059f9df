package geometry

import "github.com/spaghettifunk/brickforge/engine/mesh"

// RingStart returns the index of the first vertex of a ring that was just
// appended to a buffer now holding vertexCount vertices.
func RingStart(segments, vertexCount int, hollow bool) uint32 {
	return uint32(vertexCount - segments*ringStride(hollow))
}

// StitchFaceCount is the number of faces Stitch returns for the same arguments.
func StitchFaceCount(segments int, bottomCap, topCap, hollow bool) int {
	perSegment := 1
	if hollow {
		perSegment = 2
	}
	if bottomCap {
		perSegment++
	}
	if topCap {
		perSegment++
	}
	return segments * perSegment
}

// Stitch builds the faces of one cylinder ring starting at ringStart.
//
// Ring layout per angle step (see RingVerts):
//
//	solid: +0 bottom, +1 top
//	tube:  +0 outer bottom, +1 outer top, +2 inner bottom, +3 inner top
//
// Every index is computed as (k+offset)%ringLen + ringStart, which wraps
// the last segment back onto the first without any adjacency lookup.
//
// Solid cylinders close their ends with triangle fans around centre
// vertices that sit directly before the ring: the top centre at
// ringStart-1, and the bottom centre before it when both caps are present
// (at ringStart-1 otherwise). Tubes close their ends with quads bridging the
// outer and inner rings.
//
// Faces are emitted per segment in the order lateral, bottom cap, top cap.
func Stitch(segments int, ringStart uint32, bottomCap, topCap, hollow bool) []mesh.Face {
	stride := uint32(ringStride(hollow))
	ringLen := uint32(segments) * stride
	faces := make([]mesh.Face, 0, StitchFaceCount(segments, bottomCap, topCap, hollow))
	if ringLen == 0 {
		return faces
	}

	at := func(k uint32) uint32 {
		return k%ringLen + ringStart
	}

	topCenter := ringStart - 1
	bottomCenter := ringStart - 1
	if topCap {
		bottomCenter--
	}

	for k := uint32(0); k < ringLen; k += stride {
		j := ringStart + k

		if hollow {
			faces = append(faces,
				mesh.Quad(at(k+0), at(k+1), at(k+5), at(k+4)),
				// inner wall runs backwards so it faces the bore
				mesh.Quad(at(k+6), at(k+7), at(k+3), at(k+2)),
			)
			if bottomCap {
				faces = append(faces, mesh.Quad(at(k+0), at(k+4), at(k+6), at(k+2)))
			}
			if topCap {
				faces = append(faces, mesh.Quad(at(k+1), at(k+3), at(k+7), at(k+5)))
			}
			continue
		}

		faces = append(faces, mesh.Quad(j, at(k+1), at(k+3), at(k+2)))
		if bottomCap {
			faces = append(faces, mesh.Tri(j, at(k+2), bottomCenter))
		}
		if topCap {
			faces = append(faces, mesh.Tri(at(k+1), topCenter, at(k+3)))
		}
	}
	return faces
}
