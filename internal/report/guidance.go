package report

import (
	"fmt"
	"strings"
)

// preambleFormat is the document head: title, reviewer framing, and the
// linting summary. Placeholders in order: file count, issue category count,
// file count, issue category count, files-with-issues count.
const preambleFormat = `# SystemVerilog Linting Issues

## PROJECT CONTEXT
You are a Senior RTL Engineer with 10+ years of experience. You are working on a Systemverilog RTL Project.
You are following strict SystemVerilog coding standards for maintainability, synthesis, and verification.
Below are the files that need to be linted after running a lint check. Please fix the issues and provide a detailed explanation of the changes you made.

## GOAL - Success Criteria and Objectives
Achieve a **100%% lint-clean SystemVerilog codebase** that:
- ✅ Compiles without errors in all EDA tools
- ✅ Follows consistent coding standards for team collaboration
- ✅ Meets synthesis and timing closure requirements
- ✅ Passes automated quality checks and code reviews
- ✅ Is maintainable and well-documented

## BEFORE/AFTER - Current vs Desired State
**BEFORE (Current State):**
- %d files with %d categories of lint violations
- Compilation/simulation blockers present
- Inconsistent coding style and formatting
- Missing documentation and best practices

**AFTER (Desired State):**
- Zero lint violations across all SystemVerilog files
- Clean compilation and simulation
- Professional-grade code following industry standards
- Comprehensive documentation and comments

## RESULT - Expected Outcomes and Deliverables
**Upon completion, you must provide:**
1. **Modified SystemVerilog files** with all issues resolved
2. **Summary of changes** made per file with explanations
3. **Verification confirmation** that functionality is preserved
4. **Quality improvement metrics** showing before/after status

## FORMAT - How to Structure the Output/Response
**Required response structure:**
` + "```" + `
## EXECUTIVE SUMMARY
- Files Modified: [count]
- Issues Resolved: [count by category]
- Compilation Status: [PASS/FAIL]

## DETAILED CHANGES
### [FileName.sv]
**Issues Fixed:**
- [Issue type]: [description of fix]

**Code Changes:**
` + "```systemverilog" + `
// Before:
[original code]

// After:
[corrected code]
` + "```" + `

## LINTING SUMMARY
- **Total Files Checked:** %d
- **Total Issue Categories:** %d
- **Files with Issues:** %d

`

// guidanceText is the fixed appendix: header/footer templates and the
// coding standards summary. The closing note takes the file count.
const guidanceText = `
## 🎯 IMPLEMENTATION GUIDANCE

### File Header Template
Each SystemVerilog file should start with:
` + "```systemverilog" + `
//=============================================================================
// Company: <Company Name>
// Project Name: <ProjectName>
//
// File: <FileName.sv>
//
// ----- Fields for Automated Documentation -----
// MODULE_NAME: <ModuleName>
// AUTHOR: <Author Name> (<author_email@company.com>)
// VERSION: <X.Y.Z>
// DATE: <YYYY-MM-DD>
// DESCRIPTION: <Brief, description of the module's purpose.>
// PRIMARY_PURPOSE: <Detailed purpose of the module.>
// ROLE_IN_SYSTEM: <How this module fits into a larger system.>
// PROBLEM_SOLVED: <What specific problem this module addresses.>
// MODULE_TYPE: <e.g., RTL, Behavioral, Testbench_Component>
// TARGET_TECHNOLOGY_PREF: <ASIC/FPGA>
// RELATED_SPECIFICATION: <Document_Name_Or_Link_to_Spec>
//
// ----- Status and Tracking -----
// VERIFICATION_STATUS: <Not Verified | In Progress | Verified | Formally Verified>
// QUALITY_STATUS: <Draft | Reviewed | Approved | Released>
//
//=============================================================================

` + "`timescale 1ns/1ps\n`default_nettype none\n```" + `

### File Footer Template
Each SystemVerilog file should end with:
` + "```systemverilog" + `
  //=============================================================================
  // Dependencies: <list of dependencies>
  //
  // Instantiated In:
  //   - core/integration/some_subsystem.sv
  //   - memory/controller/another_module.sv
  //
  // Performance:
  //   - Critical Path: <expected critical path>
  //   - Max Frequency: <range of frequency>
  //   - Area: <rough estimate>
  //
  // Verification Coverage:
  //   - Code Coverage: <Coverage from tool>
  //   - Functional Coverage: <Coverage from tool>
  //   - Branch Coverage: <Coverage from tool>
  //
  // Synthesis:
  //   - Target Technology: ASIC/FPGA
  //   - Synthesis Tool: Design Compiler/Quartus
  //   - Clock Domains: <number of clk domain>
  //   - Constraints File: <SDC file name>
  //
  // Testing:
  //   - Testbench: <testbench name>
  //   - Test Vectors: <number of test vectors in testbench mentioned above>
  //
  //----
  // Revision History:
  // Version | Date       | Author            | Description
  //=============================================================================
  // 1.1.0   | YYYY-MM-DD | <Author Name>     | Added X / Implemented Y (Summary of changes)
  // 1.0.0   | YYYY-MM-DD | <Author Name>     | Initial release
  //=============================================================================
` + "```" + `

### Coding Standards Summary
- **Indentation:** 4 spaces, no tabs
- **Line Length:** Maximum 120 characters
- **Block Style:** SystemVerilog ` + "`begin/end`" + `, not C-style ` + "`{}`" + `
- **Clocked Logic:** Use non-blocking assignments (` + "`<=`" + `)
- **Combinational Logic:** Use blocking assignments (` + "`=`" + `)
- **Comments:** Describe purpose before every ` + "`always`" + ` block
- **Case Statements:** Always include ` + "`default`" + ` clause
- **Generate Blocks:** Always use labels (` + "`begin : label_name`" + `)

### Next Steps
1. **Run the fixes** in the order specified (Critical → Style → Best Practices)
2. **Test compilation** after each phase to catch any new issues
3. **Run the linter again** to verify all issues are resolved
4. **Consider adding** additional verification testbenches for modified modules

---
**Note:** This analysis was performed on `

func writeGuidance(b *strings.Builder, fileCount int) {
	b.WriteString(guidanceText)
	fmt.Fprintf(b, "%d SystemVerilog files. Focus on critical issues first to ensure the design compiles and simulates correctly.\n", fileCount)
}
