package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spaghettifunk/brickforge/engine/core"
	"github.com/spaghettifunk/brickforge/engine/geometry"
	"github.com/spaghettifunk/brickforge/engine/mesh"
)

// Options carries what the host needs alongside the buffers.
type Options struct {
	ID      string
	Name    string
	Shading geometry.Shading
}

// Writer hands a finished mesh to something outside the generator.
type Writer interface {
	Write(w io.Writer, m *mesh.MeshInfo, opts Options) error
	Extension() string
}

var writers = map[string]Writer{
	".obj":  &OBJWriter{},
	".stl":  &STLWriter{},
	".json": &JSONWriter{},
}

// ForFormat returns the writer for a format name such as "obj" or ".stl".
func ForFormat(format string) (Writer, error) {
	ext := strings.ToLower(format)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	w, ok := writers[ext]
	if !ok {
		return nil, fmt.Errorf("format %q: %w", format, core.ErrUnknownFormat)
	}
	return w, nil
}

// ForPath picks a writer from the file extension.
func ForPath(path string) (Writer, error) {
	return ForFormat(filepath.Ext(path))
}

// Formats lists the supported extensions.
func Formats() []string {
	return []string{"obj", "stl", "json"}
}

func objectName(opts Options) string {
	name := opts.Name
	if name == "" {
		name = "brick"
	}
	if opts.ID != "" {
		name += "_" + core.ShortID(opts.ID)
	}
	return name
}
