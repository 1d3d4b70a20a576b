package issues

// Category classifies an issue by severity/theme. The set is closed; adding a
// category is a recompilation-time change.
type Category int

const (
	// Critical issues block compilation or simulation.
	Critical Category = iota

	// Style issues are coding-standard violations.
	Style

	// BestPractice issues affect code quality and maintainability.
	BestPractice

	// Performance issues affect synthesis and timing behavior.
	Performance
)

// Categories lists all categories in the fixed report order.
var Categories = []Category{Critical, Style, BestPractice, Performance}

func (c Category) String() string {
	switch c {
	case Critical:
		return "critical"
	case Style:
		return "style"
	case BestPractice:
		return "best_practice"
	case Performance:
		return "performance"
	default:
		return "unknown"
	}
}

// Kind identifies which check produced an issue. The report generator
// switches on Kind to attach worked examples, instead of matching substrings
// of issue titles.
type Kind int

const (
	KindNone Kind = iota
	KindTimescale
	KindDefaultNettype
	KindFileHeader
	KindFileFooter
	KindCStyleBraces
	KindTabs
	KindLineLength
	KindTrailingWhitespace
	KindLineEndings
	KindCaseTypes
	KindBlockingInClocked
	KindNonblockingInComb
	KindBeginEndBalance
	KindMissingDefaultCase
	KindMultipleModules
	KindNoComments
	KindNonANSIModule
	KindCommentBeforeAlways
	KindUnguardedInitial
	KindUnnamedGenerate
	KindMultiplePortsPerLine
	KindMultiplePortDecls
)

func (k Kind) String() string {
	switch k {
	case KindTimescale:
		return "timescale"
	case KindDefaultNettype:
		return "default_nettype"
	case KindFileHeader:
		return "file_header"
	case KindFileFooter:
		return "file_footer"
	case KindCStyleBraces:
		return "c_style_braces"
	case KindTabs:
		return "tabs"
	case KindLineLength:
		return "line_length"
	case KindTrailingWhitespace:
		return "trailing_whitespace"
	case KindLineEndings:
		return "line_endings"
	case KindCaseTypes:
		return "case_types"
	case KindBlockingInClocked:
		return "blocking_in_clocked"
	case KindNonblockingInComb:
		return "nonblocking_in_comb"
	case KindBeginEndBalance:
		return "begin_end_balance"
	case KindMissingDefaultCase:
		return "missing_default_case"
	case KindMultipleModules:
		return "multiple_modules"
	case KindNoComments:
		return "no_comments"
	case KindNonANSIModule:
		return "non_ansi_module"
	case KindCommentBeforeAlways:
		return "comment_before_always"
	case KindUnguardedInitial:
		return "unguarded_initial"
	case KindUnnamedGenerate:
		return "unnamed_generate"
	case KindMultiplePortsPerLine:
		return "multiple_ports_per_line"
	case KindMultiplePortDecls:
		return "multiple_port_decls"
	default:
		return "none"
	}
}
