package mesh

// Face is a planar polygon of three or four vertex indices. Winding is
// counter-clockwise when seen from outside the solid.
type Face struct {
	Indices [4]uint32
	Arity   uint8
}

// Tri builds a triangle face.
func Tri(a, b, c uint32) Face {
	return Face{Indices: [4]uint32{a, b, c, 0}, Arity: 3}
}

// Quad builds a quadrilateral face.
func Quad(a, b, c, d uint32) Face {
	return Face{Indices: [4]uint32{a, b, c, d}, Arity: 4}
}

// Slice returns the used indices. The returned slice aliases a copy of the
// face, never the face stored in a buffer.
func (f Face) Slice() []uint32 {
	return f.Indices[:f.Arity]
}

// IsQuad reports whether the face has four corners.
func (f Face) IsQuad() bool {
	return f.Arity == 4
}

// Offset returns a copy of the face with every index shifted by n.
func (f Face) Offset(n uint32) Face {
	out := f
	for i := uint8(0); i < f.Arity; i++ {
		out.Indices[i] += n
	}
	return out
}

// MaxIndex returns the largest index referenced by the face.
func (f Face) MaxIndex() uint32 {
	hi := uint32(0)
	for _, idx := range f.Slice() {
		if idx > hi {
			hi = idx
		}
	}
	return hi
}
