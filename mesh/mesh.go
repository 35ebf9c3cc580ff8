package mesh

// Position is a vertex position from a "v" line.
type Position struct {
	X, Y, Z float32
}

// TexCoord is a texture coordinate from a "vt" line.
type TexCoord struct {
	U, V float32
}

// Normal is a vertex normal from a "vn" line.
type Normal struct {
	X, Y, Z float32
}

// VertexIndex is one v/vt/vn group of a face. Values are 1-based, negative
// values are relative to the end of the corresponding array, and 0 means
// the reference is absent.
type VertexIndex struct {
	V  int64 // position index
	VT int64 // texture coordinate index, 0 if absent
	VN int64 // normal index, 0 if absent
}

// HasTexCoord reports whether the index references a texture coordinate.
func (vi VertexIndex) HasTexCoord() bool {
	return vi.VT != 0
}

// HasNormal reports whether the index references a normal.
func (vi VertexIndex) HasNormal() bool {
	return vi.VN != 0
}

// Face is a polygon from an "f" line. Each face owns its index slice.
type Face struct {
	Indices []VertexIndex
}

// IndexCount returns the number of vertex indices in the face.
func (f Face) IndexCount() int {
	return len(f.Indices)
}

// Mesh is the result of parsing one OBJ source.
type Mesh struct {
	Positions []Position
	TexCoords []TexCoord
	Normals   []Normal
	Faces     []Face
}

// New returns an empty mesh whose slices are non-nil and zero-length.
func New() *Mesh {
	return &Mesh{
		Positions: []Position{},
		TexCoords: []TexCoord{},
		Normals:   []Normal{},
		Faces:     []Face{},
	}
}

// PositionCount returns the number of vertex positions.
func (m *Mesh) PositionCount() int {
	return len(m.Positions)
}

// TexCoordCount returns the number of texture coordinates.
func (m *Mesh) TexCoordCount() int {
	return len(m.TexCoords)
}

// NormalCount returns the number of normals.
func (m *Mesh) NormalCount() int {
	return len(m.Normals)
}

// FaceCount returns the number of faces.
func (m *Mesh) FaceCount() int {
	return len(m.Faces)
}

// IsEmpty reports whether the mesh holds no elements of any kind.
func (m *Mesh) IsEmpty() bool {
	return len(m.Positions) == 0 && len(m.TexCoords) == 0 &&
		len(m.Normals) == 0 && len(m.Faces) == 0
}

// Destroy releases every buffer owned by the mesh: the index slice of each
// face first, then the four top-level slices. The mesh must not be read
// afterwards. Destroying a nil or already destroyed mesh does nothing.
func (m *Mesh) Destroy() {
	if m == nil {
		return
	}
	for i := range m.Faces {
		m.Faces[i].Indices = nil
	}
	m.Positions = nil
	m.TexCoords = nil
	m.Normals = nil
	m.Faces = nil
}

// Destroy is a convenience wrapper around (*Mesh).Destroy.
func Destroy(m *Mesh) {
	m.Destroy()
}
