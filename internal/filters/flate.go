package filters

import (
	"bytes"
	"compress/gzip"
	"compress/zlib"
	"errors"
	"fmt"
	"io"
)

// MaxDecodedSize caps the output of a single decode so that a small
// compressed payload cannot expand without bound.
const MaxDecodedSize = 1 << 30

// ErrTooLarge is returned when decoded output would exceed MaxDecodedSize.
var ErrTooLarge = errors.New("decoded data exceeds size limit")

// FlateDecode decompresses zlib (RFC 1950) wrapped deflate data.
func FlateDecode(data []byte) ([]byte, error) {
	reader, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zlib reader: %w", err)
	}
	defer reader.Close()

	return readAll(reader)
}

// GzipDecode decompresses gzip (RFC 1952) data. Multi-member streams, as
// produced by concatenating .gz files, decode to the concatenated content.
func GzipDecode(data []byte) ([]byte, error) {
	reader, err := gzip.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer reader.Close()

	return readAll(reader)
}

// readAll drains r into memory, enforcing MaxDecodedSize.
func readAll(r io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(r, MaxDecodedSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress: %w", err)
	}
	if n > MaxDecodedSize {
		return nil, ErrTooLarge
	}

	return buf.Bytes(), nil
}
