package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spaghettifunk/brickforge/engine/math"
	"github.com/spaghettifunk/brickforge/engine/mesh"
)

// STLWriter writes ASCII STL. Quads are split into two facets.
type STLWriter struct{}

func (sw *STLWriter) Extension() string {
	return ".stl"
}

func (sw *STLWriter) Write(w io.Writer, m *mesh.MeshInfo, opts Options) error {
	bw := bufio.NewWriter(w)
	name := objectName(opts)

	fmt.Fprintf(bw, "solid %s\n", name)
	indices := m.Triangulate()
	for i := 0; i+2 < len(indices); i += 3 {
		tri := []math.Vec3{m.Vertices[indices[i]], m.Vertices[indices[i+1]], m.Vertices[indices[i+2]]}
		n := math.FaceNormal(tri)
		fmt.Fprintf(bw, "  facet normal %g %g %g\n", n.X, n.Y, n.Z)
		fmt.Fprintln(bw, "    outer loop")
		for _, v := range tri {
			fmt.Fprintf(bw, "      vertex %g %g %g\n", v.X, v.Y, v.Z)
		}
		fmt.Fprintln(bw, "    endloop")
		fmt.Fprintln(bw, "  endfacet")
	}
	fmt.Fprintf(bw, "endsolid %s\n", name)
	return bw.Flush()
}
