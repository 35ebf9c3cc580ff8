package core

import "strings"

// LineKind classifies a logical line by its leading directive
type LineKind int

const (
	LineUnsupported LineKind = iota // anything not listed below
	LineComment                     // # ...
	LinePosition                    // v x y z
	LineTexCoord                    // vt u v
	LineNormal                      // vn x y z
	LineFace                        // f v/vt/vn ...
)

// String returns the directive name of the line kind
func (k LineKind) String() string {
	switch k {
	case LineComment:
		return "#"
	case LinePosition:
		return "v"
	case LineTexCoord:
		return "vt"
	case LineNormal:
		return "vn"
	case LineFace:
		return "f"
	default:
		return "unsupported"
	}
}

// Line is one logical line of OBJ source
type Line struct {
	Kind   LineKind
	Number int    // 1-based source line number
	Offset int    // byte offset of Text within the input
	Text   string // line content after leading whitespace, without terminator
	Body   string // Text with the directive prefix removed
}

// Column returns the 1-based column of byte i of Body within the line
func (ln Line) Column(i int) int {
	return len(ln.Text) - len(ln.Body) + i + 1
}

// Directive returns the leading token of the line, e.g. "usemtl"
func (ln Line) Directive() string {
	return leadingToken(ln.Text)
}

// Scanner splits OBJ source into classified logical lines
type Scanner struct {
	src  string
	pos  int
	line int
}

// NewScanner creates a scanner over text. Input ends at len(text) or at the
// first NUL byte, whichever comes first.
func NewScanner(text string) *Scanner {
	if i := strings.IndexByte(text, 0); i >= 0 {
		text = text[:i]
	}
	return &Scanner{
		src:  text,
		pos:  0,
		line: 1,
	}
}

// Next returns the next non-blank logical line. It returns false once the
// input is exhausted.
func (s *Scanner) Next() (Line, bool) {
	s.skipBlank()
	if s.pos >= len(s.src) {
		return Line{}, false
	}

	start := s.pos
	end := len(s.src)
	terminated := false
	if i := strings.IndexByte(s.src[start:], '\n'); i >= 0 {
		end = start + i
		terminated = true
	}
	raw := s.src[start:end]
	s.pos = end

	kind, body := classify(raw, terminated)

	// CR of a CRLF pair belongs to the terminator
	return Line{
		Kind:   kind,
		Number: s.line,
		Offset: start,
		Text:   strings.TrimSuffix(raw, "\r"),
		Body:   strings.TrimSuffix(body, "\r"),
	}, true
}

// skipBlank skips space, tab, CR and LF, counting line feeds
func (s *Scanner) skipBlank() {
	for s.pos < len(s.src) {
		switch s.src[s.pos] {
		case '\n':
			s.line++
		case ' ', '\t', '\r':
		default:
			return
		}
		s.pos++
	}
}

// classify determines the kind of a line and returns the text following
// its directive. A line that was ended by LF is treated as if the LF were
// still present, so "v" alone on a line is a position directive.
func classify(raw string, terminated bool) (LineKind, string) {
	switch {
	case raw[0] == '#':
		return LineComment, raw[1:]
	case hasDirective(raw, "v", terminated):
		return LinePosition, raw[1:]
	case hasDirective(raw, "vt", terminated):
		return LineTexCoord, raw[2:]
	case hasDirective(raw, "vn", terminated):
		return LineNormal, raw[2:]
	case hasDirective(raw, "f", terminated):
		return LineFace, raw[1:]
	}
	return LineUnsupported, raw
}

func hasDirective(raw, name string, terminated bool) bool {
	if !strings.HasPrefix(raw, name) {
		return false
	}
	if len(raw) == len(name) {
		return terminated
	}
	return isSpace(raw[len(name)])
}

func leadingToken(text string) string {
	end := 0
	for end < len(text) && !isSpace(text[end]) {
		end++
	}
	return text[:end]
}

// isSpace matches the C isspace set in the default locale
func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\v' || b == '\f' || b == '\r'
}
