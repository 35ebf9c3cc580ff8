package loadobj

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue found while loading. The mesh is
// still produced; the affected line was skipped or decoded with zeros.
type Warning struct {
	Line      int    // 1-based line of the first occurrence
	Column    int    // 1-based column, 0 if the whole line is affected
	Directive string // leading token of the affected line
	Count     int    // number of lines the warning covers
	Message   string
}

// String formats the warning with its position.
func (w Warning) String() string {
	if w.Column > 0 {
		return fmt.Sprintf("line %d, column %d: %s", w.Line, w.Column, w.Message)
	}
	return fmt.Sprintf("line %d: %s", w.Line, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string, one
// warning per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
