package tokenizer

// Type classifies a token.
type Type int

const (
	// TypeArgument is a plain value token, bound positionally or as an
	// option value.
	TypeArgument Type = iota
	// TypeOption starts with a recognized option prefix.
	TypeOption
	// TypeCommand matches a child command in the tentative scope.
	TypeCommand
	// TypeDirective is a well-formed bracketed token inside the leading
	// directive run.
	TypeDirective
	// TypeDoubleDash is the bare "--" literal switch.
	TypeDoubleDash
	// TypeUnmatched marks input the parser could not bind to any symbol.
	TypeUnmatched
)

// String returns the classification name for diagnostics.
func (t Type) String() string {
	switch t {
	case TypeArgument:
		return "argument"
	case TypeOption:
		return "option"
	case TypeCommand:
		return "command"
	case TypeDirective:
		return "directive"
	case TypeDoubleDash:
		return "double-dash"
	case TypeUnmatched:
		return "unmatched"
	default:
		return "unknown"
	}
}

// Token is one classified piece of input. Tokens are immutable once emitted;
// the parser records reclassifications by constructing new values.
type Token struct {
	Value string
	Type  Type
}
