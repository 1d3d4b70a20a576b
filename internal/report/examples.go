package report

import "github.com/hdl-tools/sv-lint/internal/issues"

// exampleFor returns the worked before/after snippet for a check kind, or ""
// when the kind has none. New examples are added here, keyed on the kind
// rather than on title text so retitling an issue cannot detach its example.
func exampleFor(kind issues.Kind) string {
	switch kind {
	case issues.KindCStyleBraces:
		return exampleCStyleBraces
	case issues.KindTabs:
		return exampleTabs
	case issues.KindLineLength:
		return exampleLineLength
	case issues.KindMultiplePortsPerLine, issues.KindMultiplePortDecls:
		return exampleMultiplePorts
	case issues.KindMissingDefaultCase:
		return exampleDefaultCase
	case issues.KindCommentBeforeAlways:
		return exampleCommentBeforeAlways
	case issues.KindUnnamedGenerate:
		return exampleUnnamedGenerate
	case issues.KindUnguardedInitial:
		return exampleUnguardedInitial
	case issues.KindBlockingInClocked:
		return exampleBlockingInClocked
	case issues.KindNonblockingInComb:
		return exampleNonblockingInComb
	default:
		return ""
	}
}

const exampleCStyleBraces = "**Example Fix:**\n```systemverilog\n" +
	`// ❌ Incorrect (C-style)
if (condition) {
    signal <= value;
}

// ✅ Correct (SystemVerilog style)
if (condition) begin
    signal <= value;
end
` + "```\n\n"

const exampleTabs = "**Fix:** Replace all tabs with 4 spaces. Use your editor's \"Convert Tabs to Spaces\" function.\n\n"

const exampleLineLength = "**Example Fix:**\n```systemverilog\n" +
	`// ❌ Too long
assign very_long_signal_name = (condition1 && condition2 && condition3) ? long_value_name : another_long_value_name;

// ✅ Properly broken
assign very_long_signal_name = (condition1 && condition2 && condition3) ?
                               long_value_name :
                               another_long_value_name;
` + "```\n\n"

const exampleMultiplePorts = "**Example Fix:**\n```systemverilog\n" +
	`// ❌ Multiple ports per line
input logic clk, rst_n;
output logic x, y;

// ✅ One port per line
input logic clk;
input logic rst_n;
output logic x;
output logic y;
` + "```\n\n"

const exampleDefaultCase = "**Example Fix:**\n```systemverilog\n" +
	`// ❌ Missing default
case (opcode)
    3'b000: result = a + b;
    3'b001: result = a - b;
endcase

// ✅ With default
case (opcode)
    3'b000: result = a + b;
    3'b001: result = a - b;
    default: result = '0;  // or appropriate default
endcase
` + "```\n\n"

const exampleCommentBeforeAlways = "**Example Fix:**\n```systemverilog\n" +
	`// ❌ No comment
always_ff @(posedge clk) begin
    if (reset) counter <= '0;
    else counter <= counter + 1;
end

// ✅ With descriptive comment
// Counter logic: Increment on each clock cycle, reset to 0 on reset
always_ff @(posedge clk) begin
    if (reset) counter <= '0;
    else counter <= counter + 1;
end
` + "```\n\n"

const exampleUnnamedGenerate = "**Example Fix:**\n```systemverilog\n" +
	`// ❌ Unnamed generate block
generate
    for (genvar i = 0; i < 4; i++) begin
        // ...
    end
endgenerate

// ✅ Named generate block
generate
    for (genvar i = 0; i < 4; i++) begin : gen_label
        // ...
    end
endgenerate
` + "```\n\n"

const exampleUnguardedInitial = "**Example Fix:**\n```systemverilog\n" +
	"// ❌ Unguarded initial block\ninitial begin\n    // simulation-only code\nend\n\n" +
	"// ✅ Guarded initial block\n`ifndef SYNTHESIS\ninitial begin\n    // simulation-only code\nend\n`endif\n" +
	"```\n\n"

const exampleBlockingInClocked = "**Example Fix:**\n```systemverilog\n" +
	`// ❌ Blocking assignment in clocked logic (can cause race conditions)
always_ff @(posedge clk) begin
    temp = input_data;     // Bad: blocking assignment
    output_reg = temp + 1; // Bad: blocking assignment
end

// ✅ Non-blocking assignments in clocked logic
always_ff @(posedge clk) begin
    temp <= input_data;    // Good: non-blocking
    output_reg <= temp + 1; // Good: non-blocking
end
` + "```\n\n"

const exampleNonblockingInComb = "**Example Fix:**\n```systemverilog\n" +
	`// ❌ Non-blocking in combinational logic
always_comb begin
    temp <= a + b;   // Bad: non-blocking in combinational
    result <= temp;  // Bad: creates delta delay issues
end

// ✅ Blocking assignments in combinational logic
always_comb begin
    temp = a + b;    // Good: blocking assignment
    result = temp;   // Good: immediate assignment
end
` + "```\n\n"
