package preview

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ImageFormat is an output encoding for rendered previews
type ImageFormat int

const (
	// PNG writes a grayscale PNG.
	PNG ImageFormat = iota
	// BMP writes an 8-bit paletted BMP.
	BMP
	// TIFF writes a deflate-compressed TIFF.
	TIFF
)

// String returns the format name
func (f ImageFormat) String() string {
	switch f {
	case BMP:
		return "BMP"
	case TIFF:
		return "TIFF"
	default:
		return "PNG"
	}
}

// FormatFromFilename picks an image format from a file extension. The
// second result is false for unrecognized extensions.
func FormatFromFilename(name string) (ImageFormat, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".png":
		return PNG, true
	case ".bmp":
		return BMP, true
	case ".tif", ".tiff":
		return TIFF, true
	}
	return PNG, false
}

// Encode writes img to w in the given format. Alpha masks are written as
// grayscale: covered pixels are white on a black background.
func Encode(w io.Writer, img image.Image, f ImageFormat) error {
	if a, ok := img.(*image.Alpha); ok {
		img = ToGray(a)
	}

	var err error
	switch f {
	case PNG:
		err = png.Encode(w, img)
	case BMP:
		err = bmp.Encode(w, img)
	case TIFF:
		err = tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %d", int(f))
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", f, err)
	}
	return nil
}

// ToGray converts an alpha mask into a grayscale image with the same
// pixel values
func ToGray(a *image.Alpha) *image.Gray {
	g := image.NewGray(a.Rect)
	copy(g.Pix, a.Pix)
	if g.Stride != a.Stride {
		for y := a.Rect.Min.Y; y < a.Rect.Max.Y; y++ {
			for x := a.Rect.Min.X; x < a.Rect.Max.X; x++ {
				g.Pix[g.PixOffset(x, y)] = a.Pix[a.PixOffset(x, y)]
			}
		}
	}
	return g
}
