// Package report renders the final issue store into the remediation
// document. Rendering is pure: it reads a frozen store snapshot and never
// mutates it, so two renders of the same store produce identical output.
//
// The Markdown shape is an external contract for downstream tooling: the
// category header emoji/text, the "### N. Title" numbering, and the
// "**Issue:**" / "**Affected Files/Lines:**" labels are structural markers,
// not decoration.
package report

import (
	"fmt"
	"strings"

	"github.com/hdl-tools/sv-lint/internal/issues"
)

type categorySection struct {
	cat    issues.Category
	header string
	action string
}

// sections lists the per-category report sections in their fixed order.
var sections = []categorySection{
	{
		cat:    issues.Critical,
		header: "## 🚨 CRITICAL ISSUES (Fix First - Blocks Compilation/Simulation)",
		action: "**Action Required:** Fix these issues immediately as they prevent compilation or simulation.",
	},
	{
		cat:    issues.Style,
		header: "## 🎨 STYLE ISSUES (Coding Standard Violations)",
	},
	{
		cat:    issues.BestPractice,
		header: "## 📋 BEST PRACTICE ISSUES (Improve Code Quality)",
	},
	{
		cat:    issues.Performance,
		header: "## ⚡ PERFORMANCE ISSUES (Synthesis/Timing Concerns)",
	},
}

// Render produces the full Markdown remediation document for a finished run.
func Render(store *issues.Store, files []string) string {
	var b strings.Builder

	writePreamble(&b, store, files)

	for _, sec := range sections {
		iss := store.Issues(sec.cat)
		if len(iss) == 0 {
			continue
		}
		b.WriteString(sec.header + "\n\n")
		for i, issue := range iss {
			fmt.Fprintf(&b, "### %d. %s\n\n", i+1, issue.Title)
			fmt.Fprintf(&b, "**Issue:** %s\n\n", issue.Solution)
			fmt.Fprintf(&b, "**Affected Files/Lines:**\n```\n%s\n```\n\n", issue.Content())
			if sec.action != "" {
				b.WriteString(sec.action + "\n\n")
			}
			// Worked examples are attached for style, best-practice and
			// performance issues, dispatched on the issue's check kind.
			if sec.cat != issues.Critical {
				if ex := exampleFor(issue.Kind); ex != "" {
					b.WriteString(ex)
				}
			}
		}
	}

	writeActionPlan(&b, store)
	writeGuidance(&b, len(files))

	return b.String()
}

// writePreamble emits the document title, project framing, and the
// executive linting summary.
func writePreamble(b *strings.Builder, store *issues.Store, files []string) {
	fmt.Fprintf(b, preambleFormat,
		len(files), store.TotalIssues(),
		len(files), store.TotalIssues(), countFilesWithIssues(store))
}

// writeActionPlan emits the phased checklist: critical fixes first, then
// style, then best practice and performance together. An empty phase renders
// a single checked "none found" line instead of an empty list.
func writeActionPlan(b *strings.Builder, store *issues.Store) {
	b.WriteString("## 📝 PRIORITIZED ACTION PLAN\n\n")

	b.WriteString("### Phase 1: Critical Fixes (Do First)\n")
	critical := store.Titles(issues.Critical)
	if len(critical) == 0 {
		b.WriteString("- [x] No critical issues found ✅\n")
	} else {
		for _, title := range critical {
			fmt.Fprintf(b, "- [ ] Fix: %s\n", title)
		}
	}

	b.WriteString("\n### Phase 2: Style Consistency\n")
	style := store.Titles(issues.Style)
	if len(style) == 0 {
		b.WriteString("- [x] No style issues found ✅\n")
	} else {
		for _, title := range style {
			fmt.Fprintf(b, "- [ ] Fix: %s\n", title)
		}
	}

	b.WriteString("\n### Phase 3: Best Practices & Performance\n")
	best := store.Titles(issues.BestPractice)
	perf := store.Titles(issues.Performance)
	if len(best)+len(perf) == 0 {
		b.WriteString("- [x] No best practice or performance issues found ✅\n")
	} else {
		for _, title := range best {
			fmt.Fprintf(b, "- [ ] Improve: %s\n", title)
		}
		for _, title := range perf {
			fmt.Fprintf(b, "- [ ] Optimize: %s\n", title)
		}
	}
}

// countFilesWithIssues counts the distinct files appearing in any issue's
// content. Each content line is cut at the first ':'; lines without one
// (bare paths, possibly with a parenthesized detail) count whole.
func countFilesWithIssues(store *issues.Store) int {
	seen := make(map[string]bool)
	for _, cat := range issues.Categories {
		for _, issue := range store.Issues(cat) {
			for _, line := range strings.Split(issue.Content(), "\n") {
				if line == "" {
					continue
				}
				file, _, _ := strings.Cut(line, ":")
				seen[file] = true
			}
		}
	}
	return len(seen)
}
