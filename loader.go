package loadobj

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/tsawler/loadobj/core"
	"github.com/tsawler/loadobj/format"
	"github.com/tsawler/loadobj/internal/filters"
	"github.com/tsawler/loadobj/mesh"
	"github.com/tsawler/loadobj/preview"
)

// Loader provides a fluent interface for parsing OBJ data that is already
// in memory. Each configuration method returns a new Loader instance,
// making it safe for concurrent use and allowing method chaining.
type Loader struct {
	// Source
	text      string
	data      []byte
	fromBytes bool

	// Configuration
	options LoadOptions
}

// FromString creates a Loader for OBJ source text.
//
// Example:
//
//	m, warnings, err := loadobj.FromString(text).Mesh()
func FromString(text string) *Loader {
	return &Loader{
		text:    text,
		options: defaultOptions(),
	}
}

// FromBytes creates a Loader for OBJ source held in a byte slice. The
// slice is not modified or retained after a terminal operation returns.
//
// Example:
//
//	m, warnings, err := loadobj.FromBytes(data).Decompress().Mesh()
func FromBytes(data []byte) *Loader {
	return &Loader{
		data:      data,
		fromBytes: true,
		options:   defaultOptions(),
	}
}

// clone creates a shallow copy of the Loader with a copy of options.
func (l *Loader) clone() *Loader {
	return &Loader{
		text:      l.text,
		data:      l.data,
		fromBytes: l.fromBytes,
		options:   l.options.clone(),
	}
}

// ============================================================================
// Configuration Methods (return new Loader instance)
// ============================================================================

// Strict configures the loader to fail on the first malformed numeric
// field or face vertex group instead of decoding it as 0. Unsupported
// directives are still skipped.
//
// Example:
//
//	m, _, err := loadobj.FromString(text).Strict().Mesh()
func (l *Loader) Strict() *Loader {
	newLoader := l.clone()
	newLoader.options.strict = true
	return newLoader
}

// Decompress configures the loader to inflate gzip or zlib compressed
// input before parsing. Uncompressed input is parsed as is.
//
// Example:
//
//	m, _, err := loadobj.FromBytes(gzipped).Decompress().Mesh()
func (l *Loader) Decompress() *Loader {
	newLoader := l.clone()
	newLoader.options.decompress = true
	return newLoader
}

// LogUnsupported sends the raw text of every unsupported line to logger.
// Logging is advisory and never changes the parse result.
//
// Example:
//
//	logger := log.New(os.Stderr, "obj: ", 0)
//	m, _, err := loadobj.FromString(text).LogUnsupported(logger).Mesh()
func (l *Loader) LogUnsupported(logger *log.Logger) *Loader {
	newLoader := l.clone()
	newLoader.options.logger = logger
	return newLoader
}

// ============================================================================
// Terminal Operations (parse and return results)
// ============================================================================

// Mesh parses the source and returns the resulting mesh, any warnings
// encountered, and an error if parsing failed. Errors only occur in strict
// mode or when decompression fails; in strict mode they wrap a
// *core.SyntaxError.
//
// Example:
//
//	m, warnings, err := loadobj.FromString(text).Mesh()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", loadobj.FormatWarnings(warnings))
//	}
func (l *Loader) Mesh() (*mesh.Mesh, []Warning, error) {
	text, err := l.source()
	if err != nil {
		return nil, nil, err
	}

	opts := core.Options{Strict: l.options.strict}
	if logger := l.options.logger; logger != nil {
		opts.Unsupported = func(ln core.Line) {
			logger.Printf("Unsupported: %s", ln.Text)
		}
	}

	p := core.NewParser(opts)
	m, err := p.Parse(text)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing OBJ: %w", err)
	}

	return m, warningsFromDiagnostics(p.Diagnostics()), nil
}

// Stats parses the source and returns summary statistics of the mesh.
//
// Example:
//
//	stats, _, err := loadobj.FromBytes(data).Stats()
//	fmt.Print(stats)
func (l *Loader) Stats() (mesh.Stats, []Warning, error) {
	m, warnings, err := l.Mesh()
	if err != nil {
		return mesh.Stats{}, nil, err
	}
	defer m.Destroy()

	return m.Stats(), warnings, nil
}

// Preview parses the source and renders a silhouette of the mesh.
//
// Example:
//
//	img, _, err := loadobj.FromBytes(data).Preview(preview.DefaultOptions())
func (l *Loader) Preview(opts preview.Options) (*image.Alpha, []Warning, error) {
	m, warnings, err := l.Mesh()
	if err != nil {
		return nil, nil, err
	}
	defer m.Destroy()

	img, err := preview.Render(m, opts)
	if err != nil {
		return nil, warnings, fmt.Errorf("rendering preview: %w", err)
	}
	return img, warnings, nil
}

// source returns the text to parse, inflating it first if configured.
func (l *Loader) source() (string, error) {
	if !l.options.decompress {
		if l.fromBytes {
			return string(l.data), nil
		}
		return l.text, nil
	}

	data := l.data
	if !l.fromBytes {
		data = []byte(l.text)
	}

	switch f := format.DetectFromMagic(data); f {
	case format.Gzip:
		out, err := filters.GzipDecode(data)
		if err != nil {
			return "", fmt.Errorf("failed to decompress %s input: %w", f, err)
		}
		return string(out), nil
	case format.Zlib:
		out, err := filters.FlateDecode(data)
		if err != nil {
			return "", fmt.Errorf("failed to decompress %s input: %w", f, err)
		}
		return string(out), nil
	}
	return string(data), nil
}

// warningsFromDiagnostics converts parser diagnostics into warnings.
// Unsupported lines are folded into one warning per directive, reported
// at the first occurrence.
func warningsFromDiagnostics(diags []core.Diagnostic) []Warning {
	var warnings []Warning
	unsupported := make(map[string]int) // directive -> index in warnings

	for _, d := range diags {
		directive := d.Directive()

		if errors.Is(d.Err, core.ErrUnsupported) {
			if i, ok := unsupported[directive]; ok {
				warnings[i].Count++
				warnings[i].Message = unsupportedMessage(directive, warnings[i].Count)
				continue
			}
			unsupported[directive] = len(warnings)
			warnings = append(warnings, Warning{
				Line:      d.Line,
				Directive: directive,
				Count:     1,
				Message:   unsupportedMessage(directive, 1),
			})
			continue
		}

		warnings = append(warnings, Warning{
			Line:      d.Line,
			Column:    d.Column,
			Directive: d.Kind.String(),
			Count:     1,
			Message:   fmt.Sprintf("%s directive: %v", d.Kind, d.Err),
		})
	}
	return warnings
}

func unsupportedMessage(directive string, count int) string {
	if count == 1 {
		return fmt.Sprintf("unsupported directive %q skipped", directive)
	}
	return fmt.Sprintf("unsupported directive %q skipped (%d lines)", directive, count)
}
