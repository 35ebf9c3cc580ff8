package core

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupported marks a line whose directive the parser does not decode.
	ErrUnsupported = errors.New("unsupported directive")

	// ErrMissingField marks a v, vt or vn line with fewer numbers than required.
	ErrMissingField = errors.New("missing numeric field")

	// ErrMalformedNumber marks a numeric field that does not start with a number.
	ErrMalformedNumber = errors.New("malformed number")

	// ErrMalformedIndex marks a face vertex group that is not v, v/vt, v//vn or v/vt/vn.
	ErrMalformedIndex = errors.New("malformed vertex index")

	// ErrEmptyFace marks an f line without any vertex groups.
	ErrEmptyFace = errors.New("face without vertex indices")
)

// Diagnostic records a fault that the lenient parser recovered from
type Diagnostic struct {
	Line   int      // 1-based source line
	Column int      // 1-based byte column, 0 for whole-line faults
	Kind   LineKind // kind of the offending line
	Text   string   // raw line text
	Err    error    // one of the Err* sentinels
}

// Directive returns the leading token of the offending line
func (d Diagnostic) Directive() string {
	return leadingToken(d.Text)
}

// SyntaxError is returned by a strict parser for the first malformed line
type SyntaxError struct {
	Line   int
	Column int
	Kind   LineKind
	Text   string
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s directive: %v", e.Line, e.Column, e.Kind, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// newSyntaxError converts a diagnostic into a SyntaxError
func newSyntaxError(d Diagnostic) *SyntaxError {
	return &SyntaxError{
		Line:   d.Line,
		Column: d.Column,
		Kind:   d.Kind,
		Text:   d.Text,
		Err:    d.Err,
	}
}
