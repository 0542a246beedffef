package tokenizer

import (
	"strings"

	"github.com/vk/cmdtree/internal/tree"
)

// expandBundle tries to explode a POSIX bundle candidate ("-" followed by two
// or more characters) into separate single-dash tokens against the options
// visible in scope. Consecutive characters matching single-char flag aliases
// become one token each; the first character that instead matches a
// value-taking option, or matches nothing, ends the walk; the remainder is
// attached as the inline value of the most recently expanded option. If no
// prefix of the bundle matches any known alias the token is left alone.
func expandBundle(token string, scope []*tree.Option) ([]string, bool) {
	if !strings.HasPrefix(token, "-") || strings.HasPrefix(token, "--") {
		return nil, false
	}
	chars := []rune(token[1:])
	if len(chars) < 2 {
		return nil, false
	}

	var out []string
	for i, ch := range chars {
		alias := "-" + string(ch)
		opt := findInScope(scope, alias)
		switch {
		case opt != nil && opt.IsFlag():
			out = append(out, alias)
		case opt != nil:
			// Value-taking option: the rest of the bundle is its inline
			// value.
			out = append(out, alias)
			if rest := string(chars[i+1:]); rest != "" {
				out = append(out, rest)
			}
			return out, true
		case i == 0:
			// No prefix matched; leave the token for normal option lookup.
			return nil, false
		default:
			// The unmatched remainder becomes the previous option's value.
			out = append(out, string(chars[i:]))
			return out, true
		}
	}
	return out, true
}

func findInScope(scope []*tree.Option, alias string) *tree.Option {
	for _, o := range scope {
		if o.Matches(alias) {
			return o
		}
	}
	return nil
}
