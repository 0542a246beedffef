// Package parser binds a classified token sequence against a symbol tree.
// Parsing never hard-fails: every token either descends into a subcommand,
// binds to an option, argument or directive, or is collected as unmatched,
// and arity violations accumulate as diagnostics inside the result.
package parser
