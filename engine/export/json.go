package export

import (
	"encoding/json"
	"io"

	"github.com/spaghettifunk/brickforge/engine/geometry"
	"github.com/spaghettifunk/brickforge/engine/mesh"
)

type jsonMesh struct {
	ID       string           `json:"id,omitempty"`
	Name     string           `json:"name"`
	Vertices [][3]float32     `json:"vertices"`
	Faces    [][]uint32       `json:"faces"`
	Shading  geometry.Shading `json:"shading"`
}

// JSONWriter writes the raw buffers, for hosts that build the mesh themselves.
type JSONWriter struct {
	Indent bool
}

func (jw *JSONWriter) Extension() string {
	return ".json"
}

func (jw *JSONWriter) Write(w io.Writer, m *mesh.MeshInfo, opts Options) error {
	out := jsonMesh{
		ID:       opts.ID,
		Name:     objectName(opts),
		Vertices: make([][3]float32, 0, m.VertexCount()),
		Faces:    make([][]uint32, 0, m.FaceCount()),
		Shading:  opts.Shading,
	}
	for _, v := range m.Vertices {
		out.Vertices = append(out.Vertices, [3]float32{v.X, v.Y, v.Z})
	}
	for _, f := range m.Faces {
		out.Faces = append(out.Faces, f.Slice())
	}

	enc := json.NewEncoder(w)
	if jw.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(out)
}
