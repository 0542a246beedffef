// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package tree

// ValueConverter turns the raw tokens bound to an option into a typed value.
// The core never calls it; binding layers apply it to already-collected
// tokens.
type ValueConverter func(values []string) (any, error)

// Option is a named, dash-prefixed symbol with an arity range. An option with
// arity zero is a flag: its presence is the binding.
type Option struct {
	symbol
	arity      Arity
	inherited  bool
	defaultVal string
	hasDefault bool
	convert    ValueConverter
}

// NewOption constructs a flag option (arity zero) with the given name and
// aliases. Names conventionally carry their prefix, e.g. "--verbose" with
// alias "-v".
func NewOption(name string, aliases ...string) (*Option, error) {
	s, err := newSymbol("option", name)
	if err != nil {
		return nil, err
	}
	o := &Option{symbol: s, arity: ArityZero()}
	for _, a := range aliases {
		if err := o.AddAlias(a); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Arity returns the option's value arity.
func (o *Option) Arity() Arity { return o.arity }

// SetArity declares how many value tokens the option consumes.
func (o *Option) SetArity(a Arity) { o.arity = a }

// IsFlag reports whether the option consumes no value tokens.
func (o *Option) IsFlag() bool { return o.arity.Max == 0 }

// Inherited reports whether the option is visible on descendant commands.
func (o *Option) Inherited() bool { return o.inherited }

// SetInherited marks the option as visible on descendant commands.
func (o *Option) SetInherited(v bool) { o.inherited = v }

// Default returns the value bound when the option is absent, if one was set.
func (o *Option) Default() (string, bool) { return o.defaultVal, o.hasDefault }

// SetDefault declares a value to bind when the option does not occur on the
// command line.
func (o *Option) SetDefault(v string) {
	o.defaultVal = v
	o.hasDefault = true
}

// Converter returns the externally supplied value-conversion capability, or
// nil.
func (o *Option) Converter() ValueConverter { return o.convert }

// SetConverter attaches an opaque value-conversion capability.
func (o *Option) SetConverter(c ValueConverter) { o.convert = c }
