package checks

import (
	"strings"

	"github.com/hdl-tools/sv-lint/internal/issues"
	"github.com/hdl-tools/sv-lint/internal/region"
)

// checkMultiplePortsPerLine flags module-header lines where a port keyword is
// followed by a comma later on the same line (comments stripped first).
func checkMultiplePortsPerLine(ctx *Context) {
	ctx.Log.Info("checking for multiple ports per line in module headers")
	found := scanModuleHeader(ctx, func(line string) bool {
		loc := portKeywordPattern.FindStringIndex(line)
		if loc == nil {
			return false
		}
		code, _, _ := strings.Cut(line, "//")
		if len(code) < loc[1] {
			return false
		}
		return strings.Contains(code[loc[1]:], ",")
	})
	ctx.Store.Record(issues.Style, issues.KindMultiplePortsPerLine,
		"Multiple ports per line in module header", issues.Join(found),
		"Declare only one port per line in module headers for readability and maintainability.")
}

// checkMultiplePortDecls flags module-header lines carrying more than one
// port declaration keyword. This deliberately overlaps with
// checkMultiplePortsPerLine: the trigger conditions differ and both checks
// are kept.
func checkMultiplePortDecls(ctx *Context) {
	ctx.Log.Info("checking for multiple port declarations per line in module headers")
	found := scanModuleHeader(ctx, func(line string) bool {
		return len(portKeywordPattern.FindAllString(line, -1)) > 1
	})
	ctx.Store.Record(issues.Style, issues.KindMultiplePortDecls,
		"Multiple port declarations per line in module header", issues.Join(found),
		"Declare only one port per line in module headers for readability and maintainability.")
}

// scanModuleHeader collects lines inside the module-header region that
// satisfy violates.
func scanModuleHeader(ctx *Context, violates func(string) bool) []issues.Finding {
	var found []issues.Finding
	tracker := region.NewTracker(moduleHeaderRegion())
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		tracker.Reset()
		for i, line := range lines {
			tracker.Advance(line)
			if tracker.Active(regionModuleHeader) && violates(line) {
				found = append(found, issues.Finding{File: f, Line: i + 1, Snippet: strings.TrimSpace(line)})
			}
		}
	}
	return found
}
