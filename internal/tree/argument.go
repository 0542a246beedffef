// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package tree

// Argument is a positionally bound symbol within a command. An unbounded
// maximum makes it variadic; only the last declared argument of a command may
// be variadic.
type Argument struct {
	symbol
	arity Arity
}

// NewArgument constructs a positional argument with the given arity.
func NewArgument(name string, arity Arity) (*Argument, error) {
	s, err := newSymbol("argument", name)
	if err != nil {
		return nil, err
	}
	return &Argument{symbol: s, arity: arity}, nil
}

// Arity returns the argument's arity range.
func (a *Argument) Arity() Arity { return a.arity }
