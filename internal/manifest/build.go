// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/vk/cmdtree/internal/tree"
)

// buildCommand converts one decoded command block, recursively, into a
// symbol tree node.
func buildCommand(b *commandBlock) (*tree.Command, error) {
	cmd, err := tree.NewCommand(b.Name)
	if err != nil {
		return nil, fmt.Errorf("command %q: %w", b.Name, err)
	}
	cmd.SetDescription(b.Description)
	for _, alias := range b.Aliases {
		if err := cmd.AddAlias(alias); err != nil {
			return nil, fmt.Errorf("command %q: %w", b.Name, err)
		}
	}

	for _, ob := range b.Options {
		opt, err := buildOption(ob)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", b.Name, err)
		}
		cmd.AddOption(opt)
	}

	for _, ab := range b.Arguments {
		arg, err := buildArgument(ab)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", b.Name, err)
		}
		if err := cmd.AddArgument(arg); err != nil {
			return nil, err
		}
	}

	for _, db := range b.Directives {
		d, err := tree.NewDirective(db.Key)
		if err != nil {
			return nil, fmt.Errorf("command %q: %w", b.Name, err)
		}
		d.SetDescription(db.Description)
		d.SetTerminating(db.Terminating)
		cmd.AddDirective(d)
	}

	for _, cb := range b.Commands {
		sub, err := buildCommand(cb)
		if err != nil {
			return nil, err
		}
		cmd.AddSubcommand(sub)
	}
	return cmd, nil
}

func buildOption(b *optionBlock) (*tree.Option, error) {
	opt, err := tree.NewOption(b.Name, b.Aliases...)
	if err != nil {
		return nil, err
	}
	opt.SetDescription(b.Description)
	arity := tree.Arity{Min: b.MinValues, Max: b.MaxValues}
	if arity.Max == 0 && arity.Min > 0 {
		// An unset maximum on a value-taking option means the minimum.
		arity.Max = arity.Min
	}
	opt.SetArity(arity)
	opt.SetInherited(b.Inherited)

	if b.Default != nil && !b.Default.IsNull() {
		// Manifests may write any convertible value; the core binds opaque
		// string tokens, so defaults are normalized here.
		s, err := convert.Convert(*b.Default, cty.String)
		if err != nil {
			return nil, fmt.Errorf("option %q: unsupported default value: %w", b.Name, err)
		}
		opt.SetDefault(s.AsString())
	}
	return opt, nil
}

func buildArgument(b *argumentBlock) (*tree.Argument, error) {
	arity := tree.Arity{Min: b.MinValues, Max: b.MaxValues}
	switch {
	case b.Variadic:
		arity.Max = tree.Unbounded
	case arity.Max == 0:
		// An unset maximum means "one value", or the minimum when larger.
		arity.Max = 1
		if arity.Min > 1 {
			arity.Max = arity.Min
		}
	}
	return tree.NewArgument(b.Name, arity)
}
