// Package checks implements the lint detectors. Each detector is an
// independent pass over the file set: it re-reads the files it needs,
// matches line patterns (optionally gated by a region from internal/region),
// and records findings into the shared issue store. Detectors never fail the
// run: a file that cannot be read is logged as a warning and skipped.
package checks

import (
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/hdl-tools/sv-lint/internal/issues"
)

// Context carries everything a detector needs for one run.
type Context struct {
	// Files is the deduplicated, sorted list of absolute source paths.
	Files []string

	// Store receives the detector's findings.
	Store *issues.Store

	// Log is the sink for scan progress and unreadable-file warnings.
	Log *log.Logger

	// MaxLineLength is the line-length threshold for the line-length check.
	MaxLineLength int
}

// Detector is a single independent check.
type Detector struct {
	// Rule is the config key used to disable the check.
	Rule string

	Run func(*Context)
}

// All returns the detectors in their fixed execution order: presence checks,
// then style/pattern checks, then structural checks, then aggregate per-file
// checks, then generate/port checks.
func All() []Detector {
	return []Detector{
		{Rule: "timescale", Run: checkTimescale},
		{Rule: "default-nettype", Run: checkDefaultNettype},
		{Rule: "file-header", Run: checkFileHeader},
		{Rule: "file-footer", Run: checkFileFooter},
		{Rule: "c-style-braces", Run: checkCStyleBraces},
		{Rule: "tabs", Run: checkTabs},
		{Rule: "line-length", Run: checkLineLength},
		{Rule: "trailing-whitespace", Run: checkTrailingWhitespace},
		{Rule: "line-endings", Run: checkLineEndings},
		{Rule: "case-types", Run: checkCaseTypes},
		{Rule: "blocking-in-clocked", Run: checkBlockingInClocked},
		{Rule: "nonblocking-in-comb", Run: checkNonblockingInComb},
		{Rule: "begin-end-balance", Run: checkBeginEndBalance},
		{Rule: "missing-default-case", Run: checkMissingDefaultCase},
		{Rule: "multiple-modules", Run: checkMultipleModules},
		{Rule: "no-comments", Run: checkFilesWithoutComments},
		{Rule: "non-ansi-module", Run: checkNonANSIModules},
		{Rule: "comment-before-always", Run: checkCommentBeforeAlways},
		{Rule: "unguarded-initial", Run: checkUnguardedInitial},
		{Rule: "unnamed-generate", Run: checkUnnamedGenerate},
		{Rule: "multiple-ports-per-line", Run: checkMultiplePortsPerLine},
		{Rule: "multiple-port-decls", Run: checkMultiplePortDecls},
	}
}

// readLines reads a file and returns its lines without line terminators.
// A nil slice with a non-nil error means the file could not be read; the
// caller logs and skips it.
func readLines(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return splitLines(string(content)), nil
}

// splitLines splits file content into lines, tolerating CRLF endings and a
// missing final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// readContent reads a file as text.
func readContent(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// isCommentLine reports whether the stripped line starts with a line-comment
// marker. Pattern checks prone to matching illustrative comments use this to
// skip them.
func isCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "//")
}

// warnUnreadable logs the standard skip warning for a file read failure.
func warnUnreadable(ctx *Context, path string, err error) {
	ctx.Log.Warn("could not read file", "file", path, "err", err)
}
