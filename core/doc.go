// Package core provides the low-level Wavefront OBJ parsing primitives.
//
// Parsing happens in a single pass over text that is already in memory.
// The [Scanner] walks the input one logical line at a time, skipping
// leading whitespace and classifying each line by its directive:
//
//   - # starts a comment and the line is discarded
//   - v declares a vertex position (three numbers)
//   - vt declares a texture coordinate (two numbers)
//   - vn declares a vertex normal (three numbers)
//   - f declares a face made of vertex groups
//
// Every other line, including groups, materials and smoothing groups, is
// reported as [LineUnsupported] and skipped.
//
// # Numbers
//
// [ParseFloat] and [ParseInt] decode a number from the start of a string
// and report how many bytes they consumed. A zero count means nothing
// could be decoded; the value is then 0.
//
// # Faces
//
// Each whitespace-delimited group of an f line is decoded by
// [DecodeVertexIndex] in one of the forms v, v/vt, v//vn or v/vt/vn.
// References that are not present are stored as 0.
//
// # Parsing
//
// The [Parser] ties the pieces together:
//
//	p := core.NewParser(core.Options{})
//	m, err := p.Parse(text)
//
// By default the parser is lenient: malformed numbers become 0 and the
// fault is recorded as a [Diagnostic]. With Options.Strict the first
// malformed line produces a [SyntaxError] instead.
package core
