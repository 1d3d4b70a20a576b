package checks

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/hdl-tools/sv-lint/internal/issues"
)

// checkCStyleBraces flags C-style braces after control keywords. Comment
// lines are excluded so illustrative snippets in comments don't fire.
func checkCStyleBraces(ctx *Context) {
	ctx.Log.Info("checking for C-style braces")
	var found []issues.Finding
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		for i, line := range lines {
			if isCommentLine(line) {
				continue
			}
			if cStyleBracePattern.MatchString(line) {
				found = append(found, issues.Finding{File: f, Line: i + 1, Snippet: strings.TrimSpace(line)})
			}
		}
	}
	ctx.Store.Record(issues.Style, issues.KindCStyleBraces,
		"C-style curly braces detected", issues.Join(found),
		"Convert C-style braces {} to SystemVerilog begin/end blocks")
}

// checkTabs flags any line containing a tab character.
func checkTabs(ctx *Context) {
	ctx.Log.Info("checking for tabs")
	var found []issues.Finding
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		for i, line := range lines {
			if strings.Contains(line, "\t") {
				found = append(found, issues.Finding{File: f, Line: i + 1, Snippet: strings.TrimSpace(line)})
			}
		}
	}
	ctx.Store.Record(issues.Style, issues.KindTabs,
		"Tabs detected", issues.Join(found),
		"Replace all tabs with 4 spaces for consistent indentation")
}

// checkLineLength flags lines longer than the configured maximum, measured
// in characters without the trailing newline.
func checkLineLength(ctx *Context) {
	ctx.Log.Info("checking line lengths")
	maxLen := ctx.MaxLineLength
	var found []issues.Finding
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		for i, line := range lines {
			if utf8.RuneCountInString(line) > maxLen {
				found = append(found, issues.Finding{File: f, Line: i + 1, Snippet: strings.TrimSpace(line)})
			}
		}
	}
	ctx.Store.Record(issues.Style, issues.KindLineLength,
		fmt.Sprintf("Lines longer than %d characters", maxLen), issues.Join(found),
		"Break long lines for better readability and code review")
}

// checkTrailingWhitespace flags lines ending in spaces or tabs.
func checkTrailingWhitespace(ctx *Context) {
	ctx.Log.Info("checking for trailing whitespace")
	var found []issues.Finding
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		for i, line := range lines {
			if strings.TrimRight(line, " \t") != line {
				found = append(found, issues.Finding{File: f, Line: i + 1, Snippet: strings.TrimSpace(line)})
			}
		}
	}
	ctx.Store.Record(issues.Style, issues.KindTrailingWhitespace,
		"Trailing whitespace detected", issues.Join(found),
		"Remove all trailing spaces and tabs from line endings")
}

// checkLineEndings reads files in binary mode and flags any CRLF sequence.
// This runs on raw bytes because the text-mode line splitting normalizes
// line endings away.
func checkLineEndings(ctx *Context) {
	ctx.Log.Info("checking for Windows line endings")
	var found []issues.Finding
	for _, f := range ctx.Files {
		raw, err := os.ReadFile(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		if bytes.Contains(raw, []byte("\r\n")) {
			found = append(found, issues.Finding{File: f})
		}
	}
	ctx.Store.Record(issues.Style, issues.KindLineEndings,
		"Windows line endings (CRLF) detected", issues.Join(found),
		"Convert CRLF line endings to Unix LF format")
}

// checkCaseTypes flags casez/casex statements outside comments.
func checkCaseTypes(ctx *Context) {
	ctx.Log.Info("checking for case statement types")
	var found []issues.Finding
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		for i, line := range lines {
			if isCommentLine(line) {
				continue
			}
			if caseTypePattern.MatchString(line) {
				found = append(found, issues.Finding{File: f, Line: i + 1, Snippet: strings.TrimSpace(line)})
			}
		}
	}
	ctx.Store.Record(issues.Style, issues.KindCaseTypes,
		"casez/casex statements detected", issues.Join(found),
		"Use regular case statements with explicit don't care conditions for better synthesis")
}
