package tokenizer

import (
	"strings"
	"unicode"
)

// Split breaks a single command-line string into tokens using shell-like
// quoting: whitespace separates tokens, double quotes group, and an escaped
// quote (`\"`) is preserved as a literal quote character.
func Split(line string) []string {
	var (
		tokens   []string
		current  strings.Builder
		inQuotes bool
		started  bool
	)

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch {
		case ch == '\\' && i+1 < len(runes) && runes[i+1] == '"':
			current.WriteRune('"')
			started = true
			i++
		case ch == '"':
			inQuotes = !inQuotes
			started = true
		case unicode.IsSpace(ch) && !inQuotes:
			if started {
				tokens = append(tokens, current.String())
				current.Reset()
				started = false
			}
		default:
			current.WriteRune(ch)
			started = true
		}
	}
	if started {
		tokens = append(tokens, current.String())
	}
	return tokens
}
