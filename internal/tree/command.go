// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package tree

import "fmt"

// Command is a named grouping of subcommands, options and positional
// arguments, optionally carrying an action. Directives are only meaningful on
// the root command of a tree.
type Command struct {
	symbol
	subcommands []*Command
	options     []*Option
	arguments   []*Argument
	directives  []*Directive
	action      Action
}

// NewCommand constructs a command. The name must be non-empty and contain no
// whitespace.
func NewCommand(name string) (*Command, error) {
	s, err := newSymbol("command", name)
	if err != nil {
		return nil, err
	}
	return &Command{symbol: s}, nil
}

// AddSubcommand attaches a child command and records the parent link on it.
// Sibling collision rules are not enforced here; Validate checks them.
func (c *Command) AddSubcommand(sub *Command) {
	c.subcommands = append(c.subcommands, sub)
	sub.addParent(c)
}

// AddOption attaches an option to this command.
func (c *Command) AddOption(o *Option) {
	c.options = append(c.options, o)
	o.addParent(c)
}

// AddArgument attaches a positional argument. Only the last declared argument
// may be variadic, so declaring one after an unbounded argument is rejected.
func (c *Command) AddArgument(a *Argument) error {
	if n := len(c.arguments); n > 0 && c.arguments[n-1].Arity().IsUnbounded() {
		return fmt.Errorf("command %q: argument %q cannot follow variadic argument %q",
			c.Name(), a.Name(), c.arguments[n-1].Name())
	}
	c.arguments = append(c.arguments, a)
	a.addParent(c)
	return nil
}

// AddDirective attaches a directive. Directives attached anywhere but the
// root of the parsed tree are never matched.
func (c *Command) AddDirective(d *Directive) {
	c.directives = append(c.directives, d)
	d.addParent(c)
}

// Subcommands returns the child commands in declaration order.
func (c *Command) Subcommands() []*Command { return c.subcommands }

// Options returns the options declared on this command.
func (c *Command) Options() []*Option { return c.options }

// Arguments returns the positional arguments in declaration order.
func (c *Command) Arguments() []*Argument { return c.arguments }

// Directives returns the directives declared on this command.
func (c *Command) Directives() []*Directive { return c.directives }

// Action returns the command's action, or nil.
func (c *Command) Action() Action { return c.action }

// SetAction attaches the command's behavior.
func (c *Command) SetAction(a Action) { c.action = a }

// FindSubcommand returns the child command matching the given name or alias.
func (c *Command) FindSubcommand(v string) *Command {
	for _, sub := range c.subcommands {
		if sub.Matches(v) {
			return sub
		}
	}
	return nil
}

// FindOption returns the option declared on this command matching the given
// name or alias.
func (c *Command) FindOption(v string) *Option {
	for _, o := range c.options {
		if o.Matches(v) {
			return o
		}
	}
	return nil
}

// FindDirective returns the directive declared on this command with the given
// key.
func (c *Command) FindDirective(key string) *Directive {
	for _, d := range c.directives {
		if d.Matches(key) {
			return d
		}
	}
	return nil
}
