package checks

import (
	"strings"
	"testing"

	"github.com/hdl-tools/sv-lint/internal/issues"
)

func TestCheckBlockingInClocked(t *testing.T) {
	ctx := newTestContext(t, map[string]string{
		"m.sv": `always_ff @(posedge clk) begin
    temp = data;
    out <= temp;
    // next = wrong; only a comment
end
always_comb begin
    y = a;
end
`,
	})
	checkBlockingInClocked(ctx)

	iss := findIssue(t, ctx, issues.Performance, "Blocking assignments in clocked logic")
	lines := iss.ContentLines()
	if len(lines) != 1 {
		t.Fatalf("findings = %v, want only the blocking assignment", lines)
	}
	if !strings.HasSuffix(lines[0], ":2: temp = data;") {
		t.Errorf("finding = %q", lines[0])
	}
}

func TestCheckBlockingInClockedSingleLine(t *testing.T) {
	// The block opener takes effect on the following line, so a one-line
	// always_ff never exposes its body to the region.
	ctx := newTestContext(t, map[string]string{
		"m.sv": "always_ff @(posedge clk) begin temp = x; end\n",
	})
	checkBlockingInClocked(ctx)
	requireNoIssues(t, ctx)
}

func TestCheckBlockingInClockedRegionEndsAtEnd(t *testing.T) {
	ctx := newTestContext(t, map[string]string{
		"m.sv": `always_ff @(posedge clk) begin
    q <= d;
end
assign w = v;
x = 1;
`,
	})
	checkBlockingInClocked(ctx)
	requireNoIssues(t, ctx)
}

func TestCheckBlockingInClockedResetsPerFile(t *testing.T) {
	// a.sv leaves its clocked region open; the region must not leak into b.sv.
	ctx := newTestContext(t, map[string]string{
		"a.sv": "always_ff @(posedge clk) begin\n    q = d;\n",
		"b.sv": "x = 1;\n",
	})
	checkBlockingInClocked(ctx)

	iss := findIssue(t, ctx, issues.Performance, "Blocking assignments in clocked logic")
	content := iss.Content()
	if !strings.Contains(content, "a.sv") {
		t.Errorf("a.sv finding missing: %q", content)
	}
	if strings.Contains(content, "b.sv") {
		t.Errorf("region leaked across files: %q", content)
	}
}

func TestCheckNonblockingInComb(t *testing.T) {
	ctx := newTestContext(t, map[string]string{
		"m.sv": `always_comb begin
    y <= a;
    z = b;
end
always_ff @(posedge clk) begin
    q <= d;
end
`,
	})
	checkNonblockingInComb(ctx)

	iss := findIssue(t, ctx, issues.Performance, "Non-blocking assignments in combinational logic")
	lines := iss.ContentLines()
	if len(lines) != 1 || !strings.HasSuffix(lines[0], ":2: y <= a;") {
		t.Errorf("findings = %v, want only the non-blocking line in the comb block", lines)
	}
}

func TestCheckUnguardedInitial(t *testing.T) {
	ctx := newTestContext(t, map[string]string{
		"bad.sv":  "initial begin\n    x = 0;\nend\n",
		"good.sv": "`ifndef SYNTHESIS\ninitial begin\n    x = 0;\nend\n`endif\n",
	})
	checkUnguardedInitial(ctx)

	iss := findIssue(t, ctx, issues.BestPractice, "Unguarded initial block(s) detected")
	content := iss.Content()
	if !strings.Contains(content, "bad.sv") {
		t.Errorf("bad.sv not listed: %q", content)
	}
	if strings.Contains(content, "good.sv") {
		t.Errorf("guarded initial wrongly flagged: %q", content)
	}
}

func TestCheckUnnamedGenerate(t *testing.T) {
	ctx := newTestContext(t, map[string]string{
		"m.sv": `generate
    for (genvar i = 0; i < 4; i++) begin
    end
    for (genvar j = 0; j < 2; j++) begin : gen_named
    end
endgenerate
for (int k = 0; k < 8; k++) begin
end
`,
	})
	checkUnnamedGenerate(ctx)

	iss := findIssue(t, ctx, issues.BestPractice, "Unnamed generate blocks (context-aware)")
	lines := iss.ContentLines()
	if len(lines) != 1 {
		t.Fatalf("findings = %v, want only the unlabeled loop inside generate", lines)
	}
	if !strings.Contains(lines[0], ":2:") {
		t.Errorf("wrong line flagged: %q", lines[0])
	}
}
