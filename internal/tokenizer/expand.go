package tokenizer

import (
	"os"
	"strings"
)

// maxExpansionDepth bounds recursive response-file expansion so a file that
// references itself cannot loop forever. Tokens still carrying the marker at
// the limit are kept literal.
const maxExpansionDepth = 5

// Replacer expands a marker-prefixed token into zero or more replacement
// tokens. Returning ok == false signals the token could not be expanded; the
// tokenizer then keeps it literally.
type Replacer func(token string) (replacement []string, ok bool)

// FileReplacer returns the default response-file replacer: the token after
// the marker names a file whose non-empty, non-comment lines are split like
// command-line input. An unreadable file keeps the original token.
func FileReplacer(marker string) Replacer {
	return func(token string) ([]string, bool) {
		data, err := os.ReadFile(strings.TrimPrefix(token, marker))
		if err != nil {
			return nil, false
		}
		var out []string
		for _, line := range strings.Split(string(data), "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "#") {
				continue
			}
			out = append(out, Split(line)...)
		}
		return out, true
	}
}

// expandResponseFiles applies the replacer to every marker-prefixed token,
// recursively re-expanding the replacement output up to maxExpansionDepth.
func expandResponseFiles(args []string, marker string, replace Replacer) []string {
	return expandDepth(args, marker, replace, 0)
}

func expandDepth(args []string, marker string, replace Replacer, depth int) []string {
	if marker == "" || replace == nil || depth >= maxExpansionDepth {
		return args
	}
	out := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.HasPrefix(arg, marker) || len(arg) == len(marker) {
			out = append(out, arg)
			continue
		}
		replacement, ok := replace(arg)
		if !ok {
			// A token the replacer cannot expand is kept literally.
			out = append(out, arg)
			continue
		}
		out = append(out, expandDepth(replacement, marker, replace, depth+1)...)
	}
	return out
}
