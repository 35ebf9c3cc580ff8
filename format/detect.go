// Package format provides format detection for the loadobj library.
package format

import (
	"encoding/binary"
	"path/filepath"
	"strings"

	"github.com/tsawler/loadobj/core"
)

// Format represents a file format the loader can recognize.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// OBJ indicates Wavefront OBJ geometry text.
	OBJ
	// MTL indicates a Wavefront material library.
	MTL
	// STL indicates an STL mesh, ASCII or binary.
	STL
	// Gzip indicates gzip-compressed data.
	Gzip
	// Zlib indicates zlib-compressed data.
	Zlib
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case OBJ:
		return "OBJ"
	case MTL:
		return "MTL"
	case STL:
		return "STL"
	case Gzip:
		return "gzip"
	case Zlib:
		return "zlib"
	default:
		return "Unknown"
	}
}

// Extension returns the typical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case OBJ:
		return ".obj"
	case MTL:
		return ".mtl"
	case STL:
		return ".stl"
	case Gzip:
		return ".gz"
	case Zlib:
		return ".zz"
	default:
		return ""
	}
}

// Detect determines file format from filename extension. A compressed
// file such as "model.obj.gz" is reported by its outer format.
func Detect(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".obj":
		return OBJ
	case ".mtl":
		return MTL
	case ".stl":
		return STL
	case ".gz", ".gzip":
		return Gzip
	case ".zz", ".zlib":
		return Zlib
	default:
		return Unknown
	}
}

// stlHeaderSize is the fixed header of a binary STL file: an 80-byte
// comment followed by a little-endian triangle count.
const (
	stlHeaderSize   = 84
	stlTriangleSize = 50
)

// sniffLimit bounds how much of a text buffer is inspected.
const sniffLimit = 4096

// DetectFromMagic checks leading bytes to determine format. Compressed
// data is recognized by its magic number, binary STL by its exact size,
// and text formats by their first directive. Returns Unknown if the
// format cannot be determined.
func DetectFromMagic(data []byte) Format {
	if len(data) >= 2 && data[0] == 0x1f && data[1] == 0x8b {
		return Gzip
	}

	if isBinarySTL(data) {
		return STL
	}

	if isZlibHeader(data) {
		return Zlib
	}

	return detectText(data)
}

// isBinarySTL reports whether the buffer size matches the triangle count
// stored in a binary STL header.
func isBinarySTL(data []byte) bool {
	if len(data) < stlHeaderSize {
		return false
	}
	count := binary.LittleEndian.Uint32(data[80:84])
	return uint64(len(data)) == stlHeaderSize+uint64(count)*stlTriangleSize
}

// isZlibHeader checks the RFC 1950 header: deflate method with a valid
// check value.
func isZlibHeader(data []byte) bool {
	if len(data) < 2 {
		return false
	}
	cmf, flg := data[0], data[1]
	return cmf&0x0f == 8 && cmf>>4 <= 7 && (uint16(cmf)<<8|uint16(flg))%31 == 0
}

// objDirectives lists the statements that may open an OBJ file
var objDirectives = map[string]bool{
	"v": true, "vt": true, "vn": true, "vp": true,
	"f": true, "l": true, "p": true,
	"o": true, "g": true, "s": true,
	"mtllib": true, "usemtl": true,
}

// detectText classifies text by its first non-comment directive.
func detectText(data []byte) Format {
	if len(data) > sniffLimit {
		data = data[:sniffLimit]
	}

	sc := core.NewScanner(string(data))
	for {
		ln, ok := sc.Next()
		if !ok {
			return Unknown
		}
		if ln.Kind == core.LineComment {
			continue
		}

		directive := ln.Directive()
		switch {
		case objDirectives[directive]:
			return OBJ
		case directive == "newmtl":
			return MTL
		case directive == "solid":
			return STL
		}
		return Unknown
	}
}
