package region

import (
	"regexp"
	"testing"
)

func clockedSpec() Spec {
	return Spec{
		Name:  "clocked",
		Enter: regexp.MustCompile(`always_ff|always\s+@\s*\(\s*posedge`),
		Exit:  regexp.MustCompile(`\bend\b`),
	}
}

func TestEnterTakesEffectNextLine(t *testing.T) {
	tr := NewTracker(clockedSpec())

	tr.Advance("always_ff @(posedge clk) begin")
	if tr.Active("clocked") {
		t.Fatalf("opener line must not be inside the region")
	}

	tr.Advance("    q <= d;")
	if !tr.Active("clocked") {
		t.Fatalf("line after opener must be inside the region")
	}
}

func TestExitBindsToCurrentLine(t *testing.T) {
	tr := NewTracker(clockedSpec())

	tr.Advance("always_ff @(posedge clk) begin")
	tr.Advance("    q <= d;")
	tr.Advance("end")
	if tr.Active("clocked") {
		t.Fatalf("line carrying the exit must already be outside the region")
	}
}

func TestWordBoundaryExitIgnoresEndcase(t *testing.T) {
	tr := NewTracker(clockedSpec())

	tr.Advance("always_ff @(posedge clk) begin")
	tr.Advance("    case (sel)")
	tr.Advance("    endcase")
	if !tr.Active("clocked") {
		t.Fatalf("endcase must not exit a region whose exit is the bare word end")
	}
}

func TestReenterWhileActiveIsNoop(t *testing.T) {
	tr := NewTracker(clockedSpec())

	tr.Advance("always_ff @(posedge clk) begin")
	tr.Advance("always_ff @(posedge clk2) begin")
	tr.Advance("    q <= d;")
	tr.Advance("end")
	if tr.Active("clocked") {
		t.Fatalf("nested enter must be a no-op: one exit closes the region")
	}
}

func TestEnterAndExitOnSameLineNeverActivates(t *testing.T) {
	tr := NewTracker(Spec{
		Name:  "module_header",
		Enter: regexp.MustCompile(`^\s*module\b.*\(`),
		Exit:  regexp.MustCompile(`\)\s*;`),
	})

	// A one-line header opens and closes on the same line; the body after it
	// must be outside the region.
	tr.Advance("module m(input a, input b);")
	if tr.Active("module_header") {
		t.Fatalf("opener line must not be inside the region")
	}
	tr.Advance("input c, d;")
	if tr.Active("module_header") {
		t.Fatalf("exit on the opener line must keep the body outside the region")
	}
}

func TestExitAndEnterOnSameLine(t *testing.T) {
	tr := NewTracker(clockedSpec())

	tr.Advance("always_ff @(posedge clk) begin")
	tr.Advance("    q <= d;")
	// This line closes the open region and opens a new one.
	tr.Advance("end always_ff @(posedge clk) begin")
	if tr.Active("clocked") {
		t.Fatalf("exit applies to the shared line itself")
	}
	tr.Advance("    r <= q;")
	if !tr.Active("clocked") {
		t.Fatalf("enter on the shared line applies to the next line")
	}
}

func TestRegionsAreIndependent(t *testing.T) {
	tr := NewTracker(
		clockedSpec(),
		Spec{
			Name:  "generate",
			Enter: regexp.MustCompile(`\bgenerate\b`),
			Exit:  regexp.MustCompile(`\bendgenerate\b`),
		},
	)

	tr.Advance("generate")
	tr.Advance("always_ff @(posedge clk) begin")
	if !tr.Active("generate") {
		t.Fatalf("generate region should be active")
	}
	if tr.Active("clocked") {
		t.Fatalf("clocked opener line is not yet inside the clocked region")
	}

	tr.Advance("    q <= d;")
	if !tr.Active("generate") || !tr.Active("clocked") {
		t.Fatalf("both regions should be active")
	}

	tr.Advance("end")
	if tr.Active("clocked") {
		t.Fatalf("end exits only the clocked region")
	}
	if !tr.Active("generate") {
		t.Fatalf("generate region unaffected by the clocked exit")
	}
}

func TestResetClearsState(t *testing.T) {
	tr := NewTracker(clockedSpec())

	// File ends with the region still open.
	tr.Advance("always_ff @(posedge clk) begin")
	tr.Advance("    q <= d;")
	if !tr.Active("clocked") {
		t.Fatalf("region should be open at end of file")
	}

	tr.Reset()
	tr.Advance("    q <= d;")
	if tr.Active("clocked") {
		t.Fatalf("region state must not leak into the next file")
	}
}

func TestUnknownRegionNeverActive(t *testing.T) {
	tr := NewTracker(clockedSpec())
	tr.Advance("always_ff @(posedge clk) begin")
	tr.Advance("x")
	if tr.Active("nope") {
		t.Fatalf("unknown region name must report inactive")
	}
}
