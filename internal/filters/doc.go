// Package filters provides in-memory decompression of OBJ payloads.
//
// Geometry is often distributed compressed (model.obj.gz). The loader
// inflates such buffers before handing the text to the parser.
//
// # Supported Filters
//
// Gzip:
//
//	decoded, err := filters.GzipDecode(data)
//
// Zlib (deflate with an RFC 1950 header):
//
//	decoded, err := filters.FlateDecode(data)
//
// Output is limited to [MaxDecodedSize] bytes; larger results fail with
// [ErrTooLarge].
package filters
