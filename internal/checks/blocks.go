package checks

import (
	"strings"

	"github.com/hdl-tools/sv-lint/internal/issues"
	"github.com/hdl-tools/sv-lint/internal/region"
)

// checkBlockingInClocked flags blocking assignments inside clocked blocks.
// The region opens on always_ff / always @(posedge ...) and closes on the
// bare word end; comment lines inside the region are ignored.
func checkBlockingInClocked(ctx *Context) {
	ctx.Log.Info("checking for blocking assignments in clocked blocks")
	found := scanRegionViolations(ctx, clockedRegion(), func(line string) bool {
		return !isCommentLine(line) && hasBlockingAssign(line)
	})
	ctx.Store.Record(issues.Performance, issues.KindBlockingInClocked,
		"Blocking assignments in clocked logic", issues.Join(found),
		"Use non-blocking assignments (<=) in always_ff blocks to prevent race conditions")
}

// checkNonblockingInComb is the symmetric check: non-blocking assignments
// inside always_comb / always @(*) blocks.
func checkNonblockingInComb(ctx *Context) {
	ctx.Log.Info("checking for non-blocking assignments in combinational blocks")
	found := scanRegionViolations(ctx, combRegion(), func(line string) bool {
		return !isCommentLine(line) && nonblockingPattern.MatchString(line)
	})
	ctx.Store.Record(issues.Performance, issues.KindNonblockingInComb,
		"Non-blocking assignments in combinational logic", issues.Join(found),
		"Use blocking assignments (=) in always_comb blocks for proper simulation behavior")
}

// scanRegionViolations runs one region over every file and collects the
// lines inside it that satisfy violates. Region state resets per file.
func scanRegionViolations(ctx *Context, spec region.Spec, violates func(string) bool) []issues.Finding {
	var found []issues.Finding
	tracker := region.NewTracker(spec)
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		tracker.Reset()
		for i, line := range lines {
			tracker.Advance(line)
			if tracker.Active(spec.Name) && violates(line) {
				found = append(found, issues.Finding{File: f, Line: i + 1, Snippet: strings.TrimSpace(line)})
			}
		}
	}
	return found
}

// checkUnguardedInitial flags initial blocks outside an
// `ifndef SYNTHESIS ... `endif guard. Recorded per file, matching the other
// per-file structural checks.
func checkUnguardedInitial(ctx *Context) {
	ctx.Log.Info("checking for unguarded initial blocks")
	tracker := region.NewTracker(synthGuardRegion())
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		tracker.Reset()
		var found []issues.Finding
		for i, line := range lines {
			tracker.Advance(line)
			if !tracker.Active(regionSynthGuard) && initialPattern.MatchString(line) {
				found = append(found, issues.Finding{File: f, Line: i + 1, Snippet: strings.TrimSpace(line)})
			}
		}
		ctx.Store.Record(issues.BestPractice, issues.KindUnguardedInitial,
			"Unguarded initial block(s) detected", issues.Join(found),
			"Wrap all initial blocks in `ifndef SYNTHESIS ... `endif to prevent simulation-only code from being synthesized.")
	}
}

// checkUnnamedGenerate flags for/if lines ending in an unlabeled begin
// inside a generate ... endgenerate region.
func checkUnnamedGenerate(ctx *Context) {
	ctx.Log.Info("checking for unnamed generate blocks")
	var found []issues.Finding
	tracker := region.NewTracker(generateRegion())
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		tracker.Reset()
		for i, line := range lines {
			tracker.Advance(line)
			if !tracker.Active(regionGenerate) {
				continue
			}
			if generateForIfPattern.MatchString(line) && !generateLabelPattern.MatchString(line) {
				found = append(found, issues.Finding{File: f, Line: i + 1, Snippet: strings.TrimSpace(line)})
			}
		}
	}
	ctx.Store.Record(issues.BestPractice, issues.KindUnnamedGenerate,
		"Unnamed generate blocks (context-aware)", issues.Join(found),
		"Add labels to all generate blocks (begin : label_name)")
}
