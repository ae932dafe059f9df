package geometry

import "github.com/spaghettifunk/brickforge/engine/math"

// PlaceOrigins lays out xCount*yCount instance origins on a square grid of
// the given spacing, centred on the z axis at height zPos. Points come out
// x-major: all y positions for x=0, then for x=1, and so on. A zero count on
// either axis produces no origins.
func PlaceOrigins(spacing float32, xCount, yCount int, zPos float32) []math.Vec3 {
	if xCount <= 0 || yCount <= 0 {
		return []math.Vec3{}
	}

	shift := math.NewVec3(
		float32(xCount-1)*spacing/2,
		float32(yCount-1)*spacing/2,
		0,
	)

	origins := make([]math.Vec3, 0, xCount*yCount)
	for x := 0; x < xCount; x++ {
		for y := 0; y < yCount; y++ {
			p := math.NewVec3(float32(x)*spacing, float32(y)*spacing, zPos)
			origins = append(origins, p.Sub(shift))
		}
	}
	return origins
}
