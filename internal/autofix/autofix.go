// Package autofix applies the mechanical whitespace fixes the linter can do
// safely on its own: trailing whitespace removal and CRLF to LF conversion.
// Anything needing judgment stays in the report.
package autofix

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// Result summarizes one fix pass.
type Result struct {
	// Changed lists the files that were rewritten.
	Changed []string

	// Skipped counts files that could not be read or written.
	Skipped int
}

// Apply rewrites each file in place with trailing whitespace stripped and
// Unix line endings. Files already clean are left untouched. Unreadable or
// unwritable files are logged and skipped; Apply itself never fails.
func Apply(files []string, logger *log.Logger) Result {
	var res Result
	for _, f := range files {
		raw, err := os.ReadFile(f)
		if err != nil {
			logger.Warn("could not read file for fixing", "file", f, "err", err)
			res.Skipped++
			continue
		}

		fixed := Fix(string(raw))
		if fixed == string(raw) {
			continue
		}

		if err := writeInPlace(f, []byte(fixed)); err != nil {
			logger.Warn("could not write fixed file", "file", f, "err", err)
			res.Skipped++
			continue
		}
		logger.Info("fixed whitespace", "file", f)
		res.Changed = append(res.Changed, f)
	}
	return res
}

// Fix returns the content with CRLF endings converted to LF, trailing spaces
// and tabs removed from every line, and a final newline guaranteed on
// non-empty content.
func Fix(content string) string {
	if content == "" {
		return content
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}

	out := strings.Join(lines, "\n")
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}

func writeInPlace(path string, data []byte) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat before rewrite: %w", err)
	}
	if err := os.WriteFile(path, data, info.Mode().Perm()); err != nil {
		return fmt.Errorf("rewriting file: %w", err)
	}
	return nil
}
