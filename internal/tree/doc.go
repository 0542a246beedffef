// Package tree defines the declarative symbol tree a command-line application
// is built from: commands, options, positional arguments and directives,
// together with their alias sets and parent links.
//
// Parent links are back-references only; a symbol may be attached to several
// commands, so the hierarchy is a DAG rather than a strict tree. Ownership of
// children always lies with the command the symbol was added to.
package tree
