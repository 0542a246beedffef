package cmdtree

import (
	"github.com/vk/cmdtree/internal/parser"
	"github.com/vk/cmdtree/internal/pipeline"
	"github.com/vk/cmdtree/internal/tokenizer"
	"github.com/vk/cmdtree/internal/tree"
)

// Symbol tree types and constructors.
type (
	Command   = tree.Command
	Option    = tree.Option
	Argument  = tree.Argument
	Directive = tree.Directive
	AliasSet  = tree.AliasSet
	Arity     = tree.Arity

	Action     = tree.Action
	ActionFunc = tree.ActionFunc
	ParseView  = tree.ParseView

	ValueConverter = tree.ValueConverter
	ConfigError    = tree.ConfigError
)

var (
	NewCommand   = tree.NewCommand
	NewOption    = tree.NewOption
	NewArgument  = tree.NewArgument
	NewDirective = tree.NewDirective
)

// Unbounded marks an arity with no upper limit.
const Unbounded = tree.Unbounded

var (
	ArityZero       = tree.ArityZero
	ArityZeroOrOne  = tree.ArityZeroOrOne
	ArityExactlyOne = tree.ArityExactlyOne
	ArityZeroOrMore = tree.ArityZeroOrMore
	ArityOneOrMore  = tree.ArityOneOrMore
)

// Tokenizer surface.
type (
	Token     = tokenizer.Token
	TokenType = tokenizer.Type
	Replacer  = tokenizer.Replacer
)

const (
	TokenArgument   = tokenizer.TypeArgument
	TokenOption     = tokenizer.TypeOption
	TokenCommand    = tokenizer.TypeCommand
	TokenDirective  = tokenizer.TypeDirective
	TokenDoubleDash = tokenizer.TypeDoubleDash
	TokenUnmatched  = tokenizer.TypeUnmatched
)

// DefaultResponseMarker prefixes response-file tokens.
const DefaultResponseMarker = tokenizer.DefaultResponseMarker

// Parser surface.
type (
	Result              = parser.Result
	DirectiveOccurrence = parser.DirectiveOccurrence
	ArityError          = parser.ArityError
)

// Pipeline exit codes and defaults.
const (
	ExitSuccess  = pipeline.ExitSuccess
	ExitFault    = pipeline.ExitFault
	ExitNoAction = pipeline.ExitNoAction

	DefaultTerminationGrace = pipeline.DefaultTerminationGrace
)
