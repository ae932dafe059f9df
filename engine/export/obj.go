package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/spaghettifunk/brickforge/engine/mesh"
)

// OBJWriter writes Wavefront OBJ. Quads stay quads.
type OBJWriter struct{}

func (ow *OBJWriter) Extension() string {
	return ".obj"
}

func (ow *OBJWriter) Write(w io.Writer, m *mesh.MeshInfo, opts Options) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "# brickforge %d vertices %d faces\n", m.VertexCount(), m.FaceCount())
	fmt.Fprintf(bw, "o %s\n", objectName(opts))
	for _, v := range m.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}

	if opts.Shading.Smooth {
		fmt.Fprintln(bw, "s 1")
	} else {
		fmt.Fprintln(bw, "s off")
	}

	for _, f := range m.Faces {
		bw.WriteString("f")
		for _, idx := range f.Slice() {
			// OBJ indices are 1-based
			fmt.Fprintf(bw, " %d", idx+1)
		}
		bw.WriteString("\n")
	}
	return bw.Flush()
}
