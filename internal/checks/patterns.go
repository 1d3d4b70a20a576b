package checks

import (
	"regexp"

	"github.com/hdl-tools/sv-lint/internal/region"
)

var (
	// Pattern: C-style brace after a control keyword
	cStyleBracePattern = regexp.MustCompile(`\b(if|else|for|while|case|always|initial)\b.*\{`)

	// Pattern: casez/casex statement
	caseTypePattern = regexp.MustCompile(`\b(casez|casex)\b`)

	// Pattern: a whole case..endcase block (non-greedy, spans lines)
	caseBlockPattern = regexp.MustCompile(`(?s)\bcase\b.*?endcase`)

	// Pattern: the case keyword itself
	caseKeywordPattern = regexp.MustCompile(`\bcase\b`)

	// Pattern: begin/end as standalone words (not endmodule, endcase, ...)
	beginWordPattern = regexp.MustCompile(`\bbegin\b`)
	endWordPattern   = regexp.MustCompile(`\bend\b`)

	// Pattern: a module declaration line
	modulePattern = regexp.MustCompile(`^\s*module\b`)

	// Pattern: non-ANSI module header (bare semicolon, no port list)
	nonANSIPattern = regexp.MustCompile(`^\s*module\s+[a-zA-Z0-9_]+\s*;`)

	// Pattern: any comment marker
	commentPattern = regexp.MustCompile(`//|/\*`)

	// Pattern: an always_ff/always_comb block opener
	alwaysBlockPattern = regexp.MustCompile(`always_(ff|comb)`)

	// Pattern: non-blocking assignment
	nonblockingPattern = regexp.MustCompile(`<=`)

	// Pattern: for/if line ending in an unlabeled begin
	generateForIfPattern = regexp.MustCompile(`^\s*(for|if)\b.*\bbegin\s*$`)

	// Pattern: begin with a label on the same line
	generateLabelPattern = regexp.MustCompile(`begin\s*:\s*\w+`)

	// Pattern: the initial keyword
	initialPattern = regexp.MustCompile(`\binitial\b`)

	// Pattern: a port declaration keyword
	portKeywordPattern = regexp.MustCompile(`\b(input|output|inout)\b`)
)

// Region names used by the stateful detectors.
const (
	regionClocked      = "clocked"
	regionComb         = "comb"
	regionGenerate     = "generate"
	regionSynthGuard   = "synth_guard"
	regionModuleHeader = "module_header"
)

// clockedRegion: always_ff or always @(posedge ...) until the bare word end.
func clockedRegion() region.Spec {
	return region.Spec{
		Name:  regionClocked,
		Enter: regexp.MustCompile(`always_ff|always\s+@\s*\(\s*posedge`),
		Exit:  regexp.MustCompile(`\bend\b`),
	}
}

// combRegion: always_comb or always @(*) until the bare word end.
func combRegion() region.Spec {
	return region.Spec{
		Name:  regionComb,
		Enter: regexp.MustCompile(`always_comb|always\s+@\s*\(\s*\*`),
		Exit:  regexp.MustCompile(`\bend\b`),
	}
}

// generateRegion: between the generate and endgenerate keywords.
func generateRegion() region.Spec {
	return region.Spec{
		Name:  regionGenerate,
		Enter: regexp.MustCompile(`\bgenerate\b`),
		Exit:  regexp.MustCompile(`\bendgenerate\b`),
	}
}

// synthGuardRegion: between `ifndef SYNTHESIS and the next `endif.
// First-match pairing, not nesting-aware.
func synthGuardRegion() region.Spec {
	return region.Spec{
		Name:  regionSynthGuard,
		Enter: regexp.MustCompile("`ifndef SYNTHESIS"),
		Exit:  regexp.MustCompile("`endif"),
	}
}

// moduleHeaderRegion: from "module <name> (" to the closing ");".
func moduleHeaderRegion() region.Spec {
	return region.Spec{
		Name:  regionModuleHeader,
		Enter: regexp.MustCompile(`^\s*module\b.*\(`),
		Exit:  regexp.MustCompile(`\)\s*;`),
	}
}

// hasBlockingAssign reports whether the line contains a blocking assignment:
// a bare = preceded (ignoring spaces) by an identifier character and not part
// of ==, <=, >=, !=, or any compound operator.
func hasBlockingAssign(line string) bool {
	for i := 0; i < len(line); i++ {
		if line[i] != '=' {
			continue
		}
		// Exclude == (either half).
		if i+1 < len(line) && line[i+1] == '=' {
			i++
			continue
		}
		if i > 0 && line[i-1] == '=' {
			continue
		}
		// Walk back over spaces to the assigned identifier.
		j := i - 1
		for j >= 0 && (line[j] == ' ' || line[j] == '\t') {
			j--
		}
		if j >= 0 && isWordByte(line[j]) {
			return true
		}
	}
	return false
}

func isWordByte(b byte) bool {
	return b == '_' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
