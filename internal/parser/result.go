// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package parser

import (
	"github.com/vk/cmdtree/internal/tokenizer"
	"github.com/vk/cmdtree/internal/tree"
)

// DirectiveOccurrence is one matched directive instance on the command line.
// Occurrences are the single underlying sequence both derived views are built
// from: aggregated per-name value lists and per-occurrence action execution.
type DirectiveOccurrence struct {
	Directive *tree.Directive
	Value     string
	HasValue  bool
}

// Result is the structurally complete outcome of one parse. It always exists,
// even for entirely unrecognized input, and is immutable after construction;
// accessors return copies of internal slices.
type Result struct {
	tokens      []tokenizer.Token
	path        []*tree.Command
	options     map[string][]string
	arguments   map[string][]string
	occurrences []DirectiveOccurrence
	unmatched   []tokenizer.Token
	errs        []error
}

// Tokens returns the full classified token sequence in input order.
func (r *Result) Tokens() []tokenizer.Token {
	return append([]tokenizer.Token(nil), r.tokens...)
}

// CommandPath returns the matched commands from root to leaf.
func (r *Result) CommandPath() []*tree.Command {
	return append([]*tree.Command(nil), r.path...)
}

// Command returns the matched leaf command.
func (r *Result) Command() *tree.Command {
	return r.path[len(r.path)-1]
}

// OptionValues returns the tokens bound to the option with the given name or
// alias, and whether the option was bound at all. A present flag option
// reports true with an empty list.
func (r *Result) OptionValues(name string) ([]string, bool) {
	key := r.canonicalOption(name)
	vals, ok := r.options[key]
	if !ok {
		return nil, false
	}
	return append([]string(nil), vals...), true
}

// Options returns a copy of all option bindings keyed by canonical name.
func (r *Result) Options() map[string][]string {
	return copyBindings(r.options)
}

// ArgumentValues returns the tokens bound to the named positional argument.
func (r *Result) ArgumentValues(name string) ([]string, bool) {
	vals, ok := r.arguments[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), vals...), true
}

// Arguments returns a copy of all positional bindings keyed by argument name.
func (r *Result) Arguments() map[string][]string {
	return copyBindings(r.arguments)
}

// DirectiveValues returns the aggregated values of the named directive in
// encounter order and whether the directive occurred at all. Occurrences
// without a value separator contribute nothing to the list, so "[key]" yields
// a present directive with no recorded value while "[key:]" records "".
func (r *Result) DirectiveValues(name string) ([]string, bool) {
	found := false
	var vals []string
	for _, occ := range r.occurrences {
		if occ.Directive.Name() != name {
			continue
		}
		found = true
		if occ.HasValue {
			vals = append(vals, occ.Value)
		}
	}
	return vals, found
}

// DirectiveOccurrences returns every matched directive instance in encounter
// order. The invocation pipeline runs one action per occurrence, not per
// aggregated value.
func (r *Result) DirectiveOccurrences() []DirectiveOccurrence {
	return append([]DirectiveOccurrence(nil), r.occurrences...)
}

// Unmatched returns the tokens that bound to nothing, in input order.
func (r *Result) Unmatched() []tokenizer.Token {
	return append([]tokenizer.Token(nil), r.unmatched...)
}

// UnmatchedValues returns the raw values of the unmatched tokens.
func (r *Result) UnmatchedValues() []string {
	out := make([]string, len(r.unmatched))
	for i, tok := range r.unmatched {
		out[i] = tok.Value
	}
	return out
}

// Errors returns the non-fatal diagnostics accumulated during the parse.
// Callers decide whether to treat them as failure.
func (r *Result) Errors() []error {
	return append([]error(nil), r.errs...)
}

// canonicalOption resolves an option name or alias to the canonical binding
// key: the name of the option as declared somewhere on the command path.
func (r *Result) canonicalOption(name string) string {
	if _, ok := r.options[name]; ok {
		return name
	}
	for _, c := range r.path {
		if o := c.FindOption(name); o != nil {
			return o.Name()
		}
	}
	return name
}

func copyBindings(m map[string][]string) map[string][]string {
	out := make(map[string][]string, len(m))
	for k, v := range m {
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Result satisfies tree.ParseView so actions can consume it without importing
// this package.
var _ tree.ParseView = (*Result)(nil)
