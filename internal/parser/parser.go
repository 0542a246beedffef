// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package parser

import (
	"github.com/vk/cmdtree/internal/tokenizer"
	"github.com/vk/cmdtree/internal/tree"
)

// Parse binds a token sequence against the symbol tree rooted at root. It
// maintains a current-command cursor; subcommand descent is only possible
// before any option or argument has bound at the cursor's own level, while
// inherited ancestor options bind anywhere without blocking descent.
func Parse(tokens []tokenizer.Token, root *tree.Command) *Result {
	res := &Result{
		tokens:    append([]tokenizer.Token(nil), tokens...),
		path:      []*tree.Command{root},
		options:   make(map[string][]string),
		arguments: make(map[string][]string),
	}
	p := &run{res: res, root: root, cursor: root}

	i := 0
	for i < len(tokens) {
		tok := tokens[i]

		if p.afterDoubleDash {
			p.bindPositional(tok)
			i++
			continue
		}

		switch tok.Type {
		case tokenizer.TypeDirective:
			p.bindDirective(tok)
			i++

		case tokenizer.TypeDoubleDash:
			p.afterDoubleDash = true
			i++

		case tokenizer.TypeOption:
			i = p.bindOption(tokens, i)

		case tokenizer.TypeCommand:
			if child := p.cursor.FindSubcommand(tok.Value); child != nil && !p.localBound {
				p.descend(child)
			} else {
				// The tokenizer's classification was tentative; a command
				// token that cannot descend is ordinary positional input.
				p.bindPositional(tok)
			}
			i++

		default:
			p.bindPositional(tok)
			i++
		}
	}

	p.applyDefaults()
	p.checkArgumentMinimums()
	return res
}

// run is the mutable state of one parse call.
type run struct {
	res    *Result
	root   *tree.Command
	cursor *tree.Command

	// localBound is set once an option or argument declared on the cursor's
	// own level has bound, which closes further subcommand descent.
	localBound      bool
	afterDoubleDash bool

	argIdx   int
	argCount int
}

func (p *run) descend(child *tree.Command) {
	p.cursor = child
	p.res.path = append(p.res.path, child)
	p.argIdx = 0
	p.argCount = 0
}

func (p *run) bindDirective(tok tokenizer.Token) {
	key, value, hasValue, ok := tokenizer.SplitDirective(tok.Value)
	if !ok {
		p.unmatched(tok)
		return
	}
	d := p.root.FindDirective(key)
	if d == nil {
		p.unmatched(tok)
		return
	}
	p.res.occurrences = append(p.res.occurrences, DirectiveOccurrence{
		Directive: d,
		Value:     value,
		HasValue:  hasValue,
	})
}

// bindOption resolves the option token at index i, consumes its values and
// returns the index of the first unconsumed token.
func (p *run) bindOption(tokens []tokenizer.Token, i int) int {
	opt, onCursor := p.findOption(tokens[i].Value)
	if opt == nil {
		p.unmatched(tokens[i])
		return i + 1
	}

	var vals []string
	j := i + 1
	for j < len(tokens) && opt.Arity().Accepts(len(vals)) && tokens[j].Type == tokenizer.TypeArgument {
		vals = append(vals, tokens[j].Value)
		j++
	}
	if len(vals) < opt.Arity().Min {
		p.res.errs = append(p.res.errs, &ArityError{
			Symbol: opt.Name(),
			Min:    opt.Arity().Min,
			Got:    len(vals),
		})
	}

	// Repeated occurrences of one option aggregate into a single binding.
	// A flag binds with a non-nil empty list so presence is observable.
	existing, bound := p.res.options[opt.Name()]
	if !bound && vals == nil {
		vals = []string{}
	}
	p.res.options[opt.Name()] = append(existing, vals...)

	// Inherited options are ancestor-scoped; they may appear anywhere and
	// never close subcommand descent, even when matched on the cursor itself.
	if onCursor && !opt.Inherited() {
		p.localBound = true
	}
	return j
}

// findOption resolves an option token against the cursor's own options first,
// then against ancestor options explicitly marked inherited. The second
// return reports whether the match was on the cursor's own level.
func (p *run) findOption(v string) (*tree.Option, bool) {
	if o := p.cursor.FindOption(v); o != nil {
		return o, true
	}
	for i := len(p.res.path) - 2; i >= 0; i-- {
		if o := p.res.path[i].FindOption(v); o != nil && o.Inherited() {
			return o, false
		}
	}
	return nil, false
}

// bindPositional binds a value token to the cursor's declared arguments in
// declaration order, respecting each arity window; the final argument, if
// variadic, absorbs everything left. Overflow is unmatched.
func (p *run) bindPositional(tok tokenizer.Token) {
	args := p.cursor.Arguments()
	for p.argIdx < len(args) {
		a := args[p.argIdx]
		if a.Arity().Accepts(p.argCount) {
			p.res.arguments[a.Name()] = append(p.res.arguments[a.Name()], tok.Value)
			p.argCount++
			p.localBound = true
			return
		}
		p.argIdx++
		p.argCount = 0
	}
	p.unmatched(tok)
}

func (p *run) unmatched(tok tokenizer.Token) {
	p.res.unmatched = append(p.res.unmatched, tokenizer.Token{
		Value: tok.Value,
		Type:  tokenizer.TypeUnmatched,
	})
}

// applyDefaults binds declared defaults for visible options that did not
// occur: all options of the leaf command plus inherited ancestor options.
func (p *run) applyDefaults() {
	for i, c := range p.res.path {
		leaf := i == len(p.res.path)-1
		for _, o := range c.Options() {
			if !leaf && !o.Inherited() {
				continue
			}
			def, has := o.Default()
			if !has {
				continue
			}
			if _, bound := p.res.options[o.Name()]; !bound {
				p.res.options[o.Name()] = []string{def}
			}
		}
	}
}

// checkArgumentMinimums records a diagnostic for every declared argument of
// the matched command that ended up under its minimum arity.
func (p *run) checkArgumentMinimums() {
	for _, a := range p.cursor.Arguments() {
		if got := len(p.res.arguments[a.Name()]); got < a.Arity().Min {
			p.res.errs = append(p.res.errs, &ArityError{
				Symbol: a.Name(),
				Min:    a.Arity().Min,
				Got:    got,
			})
		}
	}
}
