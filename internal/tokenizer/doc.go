// Package tokenizer converts raw command-line input into a classified token
// sequence. It expands response files, recognizes the leading directive run,
// expands POSIX option bundles against the tentative command scope, honors
// the "--" literal switch and performs the lexical classification that does
// not depend on parser state. Command/argument disambiguation that depends on
// binding order is deferred to the parser.
package tokenizer
