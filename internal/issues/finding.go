package issues

import (
	"fmt"
	"strings"
)

// Finding is one concrete detected occurrence: a file, an optional 1-based
// line number, and an optional snippet or detail text. Immutable once created.
type Finding struct {
	File    string `json:"file"`
	Line    int    `json:"line,omitempty"`
	Snippet string `json:"snippet,omitempty"`
}

// String renders the finding as a report content line:
//
//	file:line: snippet
//	file:line
//	file (detail)
//	file
//
// Whole-file checks leave Line zero and list the path alone, or with a
// parenthesized detail such as the missing header keys.
func (f Finding) String() string {
	switch {
	case f.Line > 0 && f.Snippet != "":
		return fmt.Sprintf("%s:%d: %s", f.File, f.Line, f.Snippet)
	case f.Line > 0:
		return fmt.Sprintf("%s:%d", f.File, f.Line)
	case f.Snippet != "":
		return fmt.Sprintf("%s (%s)", f.File, f.Snippet)
	default:
		return f.File
	}
}

// Join renders findings as newline-separated content for Store.Record.
// Returns the empty string for an empty slice, which Record treats as a no-op.
func Join(findings []Finding) string {
	if len(findings) == 0 {
		return ""
	}
	lines := make([]string, len(findings))
	for i, f := range findings {
		lines[i] = f.String()
	}
	return strings.Join(lines, "\n")
}
