// Package mesh provides the in-memory representation of a parsed Wavefront
// OBJ file.
//
// A [Mesh] owns four independent sequences: vertex positions, texture
// coordinates, normals and faces. Faces reference the other three by the
// 1-based indices written in the OBJ source:
//
//	m := loadobj.Parse(text)
//	defer loadobj.Destroy(m)
//	for _, f := range m.Faces {
//	    for _, idx := range f.Indices {
//	        fmt.Println(idx.V, idx.VT, idx.VN)
//	    }
//	}
//
// # Absent References
//
// A [VertexIndex] that carries no texture coordinate or normal reference
// stores 0 in the corresponding field. OBJ indices are never 0, so the
// sentinel cannot collide with a real reference. Use
// [VertexIndex.HasTexCoord] and [VertexIndex.HasNormal] to test for it.
//
// # Relative Indices
//
// Negative indices count backwards from the most recently declared
// element. The parser stores them as written; [Resolve] converts any index
// to a 0-based slot once the caller knows the element count.
//
// # Integrity
//
// Nothing in this package checks that face indices fall inside the
// position, texture coordinate or normal arrays. Callers that need that
// guarantee resolve each index with [Resolve] and handle the false result.
package mesh
