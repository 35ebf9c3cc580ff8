package core

import "github.com/tsawler/loadobj/mesh"

// Options controls parser behavior
type Options struct {
	// Strict makes Parse fail on the first malformed numeric field or
	// vertex group instead of decoding it as 0. Unsupported directives
	// are skipped in both modes.
	Strict bool

	// Unsupported, if set, receives every line whose directive is not
	// decoded. It is advisory and cannot change the parse result.
	Unsupported func(Line)
}

// Parser decodes OBJ source into a mesh in a single pass. A Parser can be
// reused; each call to Parse starts from empty buffers.
type Parser struct {
	opts Options

	// Accumulators for the call in progress
	positions []mesh.Position
	texCoords []mesh.TexCoord
	normals   []mesh.Normal
	faces     []mesh.Face

	// Per-line scratch space
	indices []mesh.VertexIndex
	groups  []indexGroup
	fields  [3]float32

	diagnostics []Diagnostic
}

// NewParser creates a parser with the given options
func NewParser(opts Options) *Parser {
	return &Parser{opts: opts}
}

// Parse decodes text and returns the resulting mesh. In the default
// lenient mode it never fails; malformed input degrades into zeroed
// fields and is reported through Diagnostics. In strict mode the first
// malformed line aborts parsing with a *SyntaxError.
func (p *Parser) Parse(text string) (*mesh.Mesh, error) {
	p.reset()

	sc := NewScanner(text)
	for {
		ln, ok := sc.Next()
		if !ok {
			break
		}

		var err error
		switch ln.Kind {
		case LineComment:
			continue
		case LinePosition:
			err = p.parsePosition(ln)
		case LineTexCoord:
			err = p.parseTexCoord(ln)
		case LineNormal:
			err = p.parseNormal(ln)
		case LineFace:
			err = p.parseFace(ln)
		default:
			p.unsupported(ln)
		}
		if err != nil {
			p.reset()
			return nil, err
		}
	}

	m := p.finalize()
	p.positions, p.texCoords, p.normals, p.faces = nil, nil, nil, nil
	return m, nil
}

// Diagnostics returns the faults recovered from during the last Parse call
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}

// reset drops all state from a previous call
func (p *Parser) reset() {
	p.positions = nil
	p.texCoords = nil
	p.normals = nil
	p.faces = nil
	p.diagnostics = nil
}

func (p *Parser) parsePosition(ln Line) error {
	f := p.fields[:3]
	err := p.decodeFields(ln, f)
	p.positions = append(p.positions, mesh.Position{X: f[0], Y: f[1], Z: f[2]})
	return err
}

func (p *Parser) parseTexCoord(ln Line) error {
	f := p.fields[:2]
	err := p.decodeFields(ln, f)
	p.texCoords = append(p.texCoords, mesh.TexCoord{U: f[0], V: f[1]})
	return err
}

func (p *Parser) parseNormal(ln Line) error {
	f := p.fields[:3]
	err := p.decodeFields(ln, f)
	p.normals = append(p.normals, mesh.Normal{X: f[0], Y: f[1], Z: f[2]})
	return err
}

// decodeFields fills dst with the leading numbers of the line body. Once a
// field fails to decode the cursor stays put, so it and every later field
// are 0. Numbers beyond len(dst) are ignored.
func (p *Parser) decodeFields(ln Line, dst []float32) error {
	cursor := 0
	for k := range dst {
		v, n := ParseFloat(ln.Body[cursor:])
		if n == 0 {
			for j := k; j < len(dst); j++ {
				dst[j] = 0
			}
			start := skipSpace(ln.Body, cursor)
			err := ErrMalformedNumber
			if start >= len(ln.Body) {
				err = ErrMissingField
			}
			return p.fault(ln, ln.Column(start), err)
		}
		dst[k] = v
		cursor += n
	}
	return nil
}

// parseFace decodes every vertex group on the line into a new face. Bytes
// a group leaves undecoded are skipped, so each group yields exactly one
// index and the loop always advances.
func (p *Parser) parseFace(ln Line) error {
	p.groups = splitGroups(ln.Body, p.groups[:0])
	p.indices = p.indices[:0]

	if len(p.groups) == 0 {
		if err := p.fault(ln, 0, ErrEmptyFace); err != nil {
			return err
		}
	}

	for _, g := range p.groups {
		vi, n, ok := DecodeVertexIndex(g.text)
		if !ok || n < len(g.text) {
			if err := p.fault(ln, ln.Column(g.offset), ErrMalformedIndex); err != nil {
				return err
			}
		}
		p.indices = append(p.indices, vi)
	}

	p.faces = append(p.faces, mesh.Face{Indices: exact(p.indices)})
	return nil
}

func (p *Parser) unsupported(ln Line) {
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Line: ln.Number,
		Kind: ln.Kind,
		Text: ln.Text,
		Err:  ErrUnsupported,
	})
	if p.opts.Unsupported != nil {
		p.opts.Unsupported(ln)
	}
}

// fault records a recoverable fault, or returns it as a SyntaxError in
// strict mode
func (p *Parser) fault(ln Line, column int, err error) error {
	d := Diagnostic{
		Line:   ln.Number,
		Column: column,
		Kind:   ln.Kind,
		Text:   ln.Text,
		Err:    err,
	}
	if p.opts.Strict {
		return newSyntaxError(d)
	}
	p.diagnostics = append(p.diagnostics, d)
	return nil
}

// finalize copies every accumulator into an exactly sized slice
func (p *Parser) finalize() *mesh.Mesh {
	return &mesh.Mesh{
		Positions: exact(p.positions),
		TexCoords: exact(p.texCoords),
		Normals:   exact(p.normals),
		Faces:     exact(p.faces),
	}
}

// exact returns a copy of s with len == cap. The copy is non-nil even when
// s is empty.
func exact[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}
