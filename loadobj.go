// Package loadobj parses Wavefront OBJ geometry into an in-memory mesh.
//
// Basic usage:
//
//	m := loadobj.Parse(text)
//	defer loadobj.Destroy(m)
//	fmt.Println(m.PositionCount(), "positions,", m.FaceCount(), "faces")
//
// Parse never fails: lines it does not understand are skipped and numbers
// it cannot decode become 0. To see what was skipped, or to reject
// malformed input, use the fluent loader:
//
//	m, warnings, err := loadobj.FromBytes(data).
//	    Decompress().
//	    Strict().
//	    Mesh()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", loadobj.FormatWarnings(warnings))
//	}
//
// The caller supplies the text; this package performs no file I/O. For
// lower-level access, the core package exposes the scanner and parser.
package loadobj

import (
	"github.com/tsawler/loadobj/core"
	"github.com/tsawler/loadobj/mesh"
)

// Parse decodes OBJ source text into a mesh. Positions, texture
// coordinates, normals and faces are collected from v, vt, vn and f lines;
// every other line is ignored. Malformed numbers are decoded as 0.
//
// Example:
//
//	m := loadobj.Parse("v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n")
func Parse(text string) *mesh.Mesh {
	// A lenient parser cannot fail
	m, _ := core.NewParser(core.Options{}).Parse(text)
	return m
}

// ParseBytes is like Parse but takes the source as a byte slice.
func ParseBytes(data []byte) *mesh.Mesh {
	return Parse(string(data))
}

// Destroy releases every buffer owned by m, including the index buffer of
// each face. m must not be used afterwards.
func Destroy(m *mesh.Mesh) {
	mesh.Destroy(m)
}

// Must is a helper that wraps a call to a terminal Loader operation and
// panics if the error is non-nil. It discards warnings and returns just the
// value. It is intended for use in scripts or tests where error handling
// would be cumbersome.
//
// Example:
//
//	m := loadobj.Must(loadobj.FromBytes(data).Strict().Mesh())
func Must[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
