// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package tree

// Directive is a bracketed pre-command instruction, written on the command
// line as [key] or [key:value]. Directives only take effect when declared on
// the root command.
type Directive struct {
	symbol
	action      Action
	terminating bool
}

// NewDirective constructs a directive. The key follows the shared naming
// rule: non-empty, no whitespace. Violations fail here, never at parse time.
func NewDirective(name string) (*Directive, error) {
	s, err := newSymbol("directive", name)
	if err != nil {
		return nil, err
	}
	return &Directive{symbol: s}, nil
}

// Action returns the directive's action, or nil.
func (d *Directive) Action() Action { return d.action }

// SetAction attaches the directive's behavior.
func (d *Directive) SetAction(a Action) { d.action = a }

// Terminating reports whether running this directive's action stops the
// invocation pipeline before the command action.
func (d *Directive) Terminating() bool { return d.terminating }

// SetTerminating marks the directive as pipeline-terminating.
func (d *Directive) SetTerminating(v bool) { d.terminating = v }
