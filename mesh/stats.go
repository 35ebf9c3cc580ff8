package mesh

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Stats summarizes the contents of a mesh.
type Stats struct {
	Positions int
	TexCoords int
	Normals   int
	Faces     int

	// Face histogram by index count
	Degenerate int // fewer than 3 indices
	Triangles  int
	Quads      int
	Polygons   int // more than 4 indices

	Indices         int // total vertex indices across all faces
	TexCoordIndices int // indices with a texture coordinate reference
	NormalIndices   int // indices with a normal reference
	RelativeIndices int // indices with at least one negative reference
}

// Stats computes summary statistics for the mesh.
func (m *Mesh) Stats() Stats {
	var s Stats
	if m == nil {
		return s
	}
	s.Positions = len(m.Positions)
	s.TexCoords = len(m.TexCoords)
	s.Normals = len(m.Normals)
	s.Faces = len(m.Faces)

	for _, f := range m.Faces {
		switch n := len(f.Indices); {
		case n < 3:
			s.Degenerate++
		case n == 3:
			s.Triangles++
		case n == 4:
			s.Quads++
		default:
			s.Polygons++
		}
		for _, vi := range f.Indices {
			s.Indices++
			if vi.HasTexCoord() {
				s.TexCoordIndices++
			}
			if vi.HasNormal() {
				s.NormalIndices++
			}
			if vi.V < 0 || vi.VT < 0 || vi.VN < 0 {
				s.RelativeIndices++
			}
		}
	}
	return s
}

// Format renders the statistics as a multi-line summary with numbers
// grouped according to the conventions of tag.
func (s Stats) Format(tag language.Tag) string {
	p := message.NewPrinter(tag)
	var sb strings.Builder

	p.Fprintf(&sb, "positions: %d\n", s.Positions)
	p.Fprintf(&sb, "texcoords: %d\n", s.TexCoords)
	p.Fprintf(&sb, "normals:   %d\n", s.Normals)
	p.Fprintf(&sb, "faces:     %d (%d triangles, %d quads, %d polygons, %d degenerate)\n",
		s.Faces, s.Triangles, s.Quads, s.Polygons, s.Degenerate)
	p.Fprintf(&sb, "indices:   %d (%d with texcoord, %d with normal, %d relative)\n",
		s.Indices, s.TexCoordIndices, s.NormalIndices, s.RelativeIndices)

	return sb.String()
}

// String renders the statistics using English number formatting.
func (s Stats) String() string {
	return s.Format(language.English)
}
