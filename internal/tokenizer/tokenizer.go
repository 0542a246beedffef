package tokenizer

import (
	"strings"

	"github.com/vk/cmdtree/internal/tree"
)

// DefaultResponseMarker prefixes tokens that name a response file.
const DefaultResponseMarker = "@"

// Config controls one tokenization pass.
type Config struct {
	// Root anchors the tentative command scope used for command
	// classification and POSIX bundle expansion.
	Root *tree.Command
	// ResponseMarker prefixes response-file tokens. Empty disables
	// expansion; callers wanting the default pass DefaultResponseMarker.
	ResponseMarker string
	// Replacer expands response-file tokens. Nil disables expansion.
	Replacer Replacer
	// PosixBundling enables single-dash bundle expansion.
	PosixBundling bool
}

// Tokenize converts an argument vector into a classified token sequence. It
// never fails: input it cannot make sense of is emitted as plain argument
// tokens for the parser to resolve or collect as unmatched.
func Tokenize(args []string, cfg Config) []Token {
	args = expandResponseFiles(args, cfg.ResponseMarker, cfg.Replacer)

	var (
		tokens []Token
		// The leading directive run is open until the first token that is
		// not itself a directive; after that, bracketed tokens are ordinary
		// input.
		directivesOpen  = true
		afterDoubleDash = false
		// Tentative command path; the parser re-verifies descent against
		// binding order.
		path = []*tree.Command{}
	)
	if cfg.Root != nil {
		path = append(path, cfg.Root)
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if afterDoubleDash {
			tokens = append(tokens, Token{Value: arg, Type: TypeArgument})
			continue
		}

		if directivesOpen {
			if _, _, _, ok := SplitDirective(arg); ok {
				tokens = append(tokens, Token{Value: arg, Type: TypeDirective})
				continue
			}
			directivesOpen = false
		}

		if arg == "--" {
			tokens = append(tokens, Token{Value: arg, Type: TypeDoubleDash})
			afterDoubleDash = true
			continue
		}

		if cfg.PosixBundling {
			if expanded, ok := expandBundle(arg, visibleOptions(path)); ok {
				// Re-run classification over the expanded tokens: flags
				// become options, an inline value stays a plain argument.
				for _, e := range expanded {
					tokens = append(tokens, classify(e, path))
				}
				continue
			}
		}

		tok := classify(arg, path)
		if tok.Type == TypeCommand {
			path = append(path, path[len(path)-1].FindSubcommand(arg))
		}
		tokens = append(tokens, tok)
	}
	return tokens
}

// TokenizeString splits a single command-line string and tokenizes the
// result.
func TokenizeString(line string, cfg Config) []Token {
	return Tokenize(Split(line), cfg)
}

// classify performs the context-free lexical classification of one token.
func classify(arg string, path []*tree.Command) Token {
	if len(path) > 0 && path[len(path)-1].FindSubcommand(arg) != nil {
		return Token{Value: arg, Type: TypeCommand}
	}
	if strings.HasPrefix(arg, "-") && arg != "-" && arg != "--" {
		return Token{Value: arg, Type: TypeOption}
	}
	return Token{Value: arg, Type: TypeArgument}
}

// visibleOptions collects the options in scope at the tail of the tentative
// command path: everything declared on the current command plus inherited
// options of its ancestors.
func visibleOptions(path []*tree.Command) []*tree.Option {
	var out []*tree.Option
	for i, c := range path {
		last := i == len(path)-1
		for _, o := range c.Options() {
			if last || o.Inherited() {
				out = append(out, o)
			}
		}
	}
	return out
}

// SplitDirective checks the bit-exact directive token grammar
// "[" key (":" value)? "]" where the key is one or more characters containing
// neither whitespace nor "]" and not starting with ":". It returns the key,
// the value after the first ":" (which may be empty and may itself contain
// ":") and whether a value separator was present; ok is false for malformed
// forms, which are never directives.
func SplitDirective(token string) (key, value string, hasValue, ok bool) {
	if len(token) < 3 || token[0] != '[' || token[len(token)-1] != ']' {
		return "", "", false, false
	}
	if strings.ContainsAny(token, " \t") {
		// An embedded space anywhere disqualifies the token; the splitter's
		// word boundaries stand for string input, so this only triggers for
		// vector input.
		return "", "", false, false
	}
	inner := token[1 : len(token)-1]
	key, value, hasValue = strings.Cut(inner, ":")
	if key == "" || strings.ContainsAny(key, "]") {
		return "", "", false, false
	}
	return key, value, hasValue, true
}
