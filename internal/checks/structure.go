package checks

import (
	"fmt"
	"strings"

	"github.com/hdl-tools/sv-lint/internal/issues"
)

// checkBeginEndBalance compares raw word-boundary counts of begin and end in
// each file. This is a count heuristic, not a nesting validation: equal
// counts do not prove the file is structurally balanced.
func checkBeginEndBalance(ctx *Context) {
	ctx.Log.Info("checking begin/end balance")
	for _, f := range ctx.Files {
		content, err := readContent(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		beginCount := len(beginWordPattern.FindAllString(content, -1))
		endCount := len(endWordPattern.FindAllString(content, -1))
		if beginCount == endCount {
			continue
		}
		finding := issues.Finding{File: f, Snippet: fmt.Sprintf("begin: %d, end: %d", beginCount, endCount)}
		ctx.Store.Record(issues.Critical, issues.KindBeginEndBalance,
			"Unbalanced begin/end blocks", finding.String(),
			"Fix mismatched begin/end pairs - causes compilation errors")
	}
}

// checkMissingDefaultCase flags files whose case-keyword count exceeds the
// number of extracted case..endcase blocks containing a default. The counts
// are file-wide, so a default belonging to one block can mask a missing
// default in another; kept as a documented approximation.
func checkMissingDefaultCase(ctx *Context) {
	ctx.Log.Info("checking for case statements without default")
	for _, f := range ctx.Files {
		content, err := readContent(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		caseCount := len(caseKeywordPattern.FindAllString(content, -1))
		if caseCount == 0 {
			continue
		}
		defaultCount := 0
		for _, block := range caseBlockPattern.FindAllString(content, -1) {
			if strings.Contains(block, "default") {
				defaultCount++
			}
		}
		if caseCount <= defaultCount {
			continue
		}
		finding := issues.Finding{
			File:    f,
			Snippet: fmt.Sprintf("has %d case statements but only %d default clauses", caseCount, defaultCount),
		}
		ctx.Store.Record(issues.BestPractice, issues.KindMissingDefaultCase,
			"Missing default cases in case statements", finding.String(),
			"Add default clause to all case statements to handle unexpected values")
	}
}

// checkMultipleModules flags files declaring more than one module.
func checkMultipleModules(ctx *Context) {
	ctx.Log.Info("checking for multiple modules per file")
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		count := 0
		for _, line := range lines {
			if modulePattern.MatchString(line) {
				count++
			}
		}
		if count <= 1 {
			continue
		}
		finding := issues.Finding{File: f, Snippet: fmt.Sprintf("%d modules", count)}
		ctx.Store.Record(issues.BestPractice, issues.KindMultipleModules,
			"Multiple modules per file", finding.String(),
			"Split files to contain only one module each for better organization")
	}
}

// checkFilesWithoutComments flags files with no comment marker at all.
func checkFilesWithoutComments(ctx *Context) {
	ctx.Log.Info("checking for files without comments")
	for _, f := range ctx.Files {
		content, err := readContent(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		if commentPattern.MatchString(content) {
			continue
		}
		ctx.Store.Record(issues.BestPractice, issues.KindNoComments,
			"Files without comments", issues.Finding{File: f}.String(),
			"Add meaningful comments to explain module functionality")
	}
}

// checkNonANSIModules flags module declarations immediately followed by a
// bare semicolon (no port list in the header).
func checkNonANSIModules(ctx *Context) {
	ctx.Log.Info("checking for non-ANSI module declarations")
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		for _, line := range lines {
			if nonANSIPattern.MatchString(line) {
				ctx.Store.Record(issues.BestPractice, issues.KindNonANSIModule,
					"Non-ANSI module declarations", issues.Finding{File: f}.String(),
					"Convert to ANSI-style port declarations (ports in module header)")
				break
			}
		}
	}
}

// checkCommentBeforeAlways flags always_ff/always_comb openers whose
// immediately preceding line carries no comment marker.
func checkCommentBeforeAlways(ctx *Context) {
	ctx.Log.Info("checking for comments before always blocks")
	for _, f := range ctx.Files {
		lines, err := readLines(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		var found []issues.Finding
		for i, line := range lines {
			if !alwaysBlockPattern.MatchString(line) {
				continue
			}
			if i > 0 && !commentPattern.MatchString(lines[i-1]) {
				found = append(found, issues.Finding{File: f, Line: i + 1})
			}
		}
		ctx.Store.Record(issues.BestPractice, issues.KindCommentBeforeAlways,
			"Missing comments before always blocks", issues.Join(found),
			"Add descriptive comments before always_ff/always_comb blocks")
	}
}
