package checks

import (
	"strings"

	"github.com/hdl-tools/sv-lint/internal/issues"
)

// headerKeys are the fields every file header must carry, from the
// implementation-guidance template in the report appendix.
var headerKeys = []string{
	"// Company:",
	"// Project Name:",
	"// File:",
	"// MODULE_NAME:",
	"// AUTHOR:",
	"// VERSION:",
	"// DATE:",
	"// DESCRIPTION:",
	"// PRIMARY_PURPOSE:",
	"// ROLE_IN_SYSTEM:",
	"// PROBLEM_SOLVED:",
	"// MODULE_TYPE:",
	"// TARGET_TECHNOLOGY_PREF:",
	"// RELATED_SPECIFICATION:",
	"// VERIFICATION_STATUS:",
	"// QUALITY_STATUS:",
	"`timescale",
	"`default_nettype none",
}

// footerKeys are the fields every file footer must carry.
var footerKeys = []string{
	"// Dependencies:",
	"// Instantiated In:",
	"// Performance:",
	"// Verification Coverage:",
	"// Synthesis:",
	"// Testing:",
	"// Revision History:",
	"// Version | Date",
}

// checkTimescale flags files that never mention the `timescale directive.
// Failing files are listed by path only.
func checkTimescale(ctx *Context) {
	ctx.Log.Info("checking for timescale directive")
	var found []issues.Finding
	for _, f := range ctx.Files {
		content, err := readContent(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		if !strings.Contains(content, "`timescale") {
			found = append(found, issues.Finding{File: f})
		}
	}
	ctx.Store.Record(issues.Critical, issues.KindTimescale,
		"Missing timescale directive", issues.Join(found),
		"Add `timescale 1ns/1ps as the first line of each file - required for simulation")
}

// checkDefaultNettype flags files that never disable implicit nets.
func checkDefaultNettype(ctx *Context) {
	ctx.Log.Info("checking for default_nettype directive")
	var found []issues.Finding
	for _, f := range ctx.Files {
		content, err := readContent(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		if !strings.Contains(content, "`default_nettype none") {
			found = append(found, issues.Finding{File: f})
		}
	}
	ctx.Store.Record(issues.Critical, issues.KindDefaultNettype,
		"Missing default_nettype directive", issues.Join(found),
		"Add `default_nettype none after timescale - prevents implicit wire declarations")
}

// checkFileHeader reports, per file, the set of required header keys the file
// is missing, comma-joined into a single finding.
func checkFileHeader(ctx *Context) {
	ctx.Log.Info("checking file headers")
	checkRequiredKeys(ctx, headerKeys, issues.KindFileHeader,
		"Missing or incomplete file header",
		"Add standard file header with all required fields as per template.")
}

// checkFileFooter is the footer counterpart of checkFileHeader.
func checkFileFooter(ctx *Context) {
	ctx.Log.Info("checking file footers")
	checkRequiredKeys(ctx, footerKeys, issues.KindFileFooter,
		"Missing or incomplete file footer",
		"Add standard file footer with all required fields as per template.")
}

func checkRequiredKeys(ctx *Context, keys []string, kind issues.Kind, title, solution string) {
	for _, f := range ctx.Files {
		content, err := readContent(f)
		if err != nil {
			warnUnreadable(ctx, f, err)
			continue
		}
		var missing []string
		for _, k := range keys {
			if !strings.Contains(content, k) {
				missing = append(missing, k)
			}
		}
		if len(missing) == 0 {
			continue
		}
		finding := issues.Finding{File: f, Snippet: "missing: " + strings.Join(missing, ", ")}
		ctx.Store.Record(issues.Style, kind, title, finding.String(), solution)
	}
}
