// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package manifest

import "github.com/zclconf/go-cty/cty"

// manifestFile is the top-level structure of one manifest file for decoding.
type manifestFile struct {
	Commands []*commandBlock `hcl:"command,block"`
}

// commandBlock is a `command "name" { ... }` block. Commands nest.
type commandBlock struct {
	Name        string            `hcl:"name,label"`
	Description string            `hcl:"description,optional"`
	Aliases     []string          `hcl:"aliases,optional"`
	Options     []*optionBlock    `hcl:"option,block"`
	Arguments   []*argumentBlock  `hcl:"argument,block"`
	Directives  []*directiveBlock `hcl:"directive,block"`
	Commands    []*commandBlock   `hcl:"command,block"`
}

// optionBlock is an `option "--name" { ... }` block. With both bounds unset
// the option is a flag; an unset max_values otherwise defaults to min_values,
// and -1 makes the option variadic. The default is decoded as a cty value so
// manifests can write numbers or bools and still bind a string token.
type optionBlock struct {
	Name        string     `hcl:"name,label"`
	Description string     `hcl:"description,optional"`
	Aliases     []string   `hcl:"aliases,optional"`
	MinValues   int        `hcl:"min_values,optional"`
	MaxValues   int        `hcl:"max_values,optional"`
	Inherited   bool       `hcl:"inherited,optional"`
	Default     *cty.Value `hcl:"default,optional"`
}

// argumentBlock is an `argument "name" { ... }` block. An unset max_values
// defaults to one value (or min_values when larger); variadic overrides it.
type argumentBlock struct {
	Name        string `hcl:"name,label"`
	Description string `hcl:"description,optional"`
	MinValues   int    `hcl:"min_values,optional"`
	MaxValues   int    `hcl:"max_values,optional"`
	Variadic    bool   `hcl:"variadic,optional"`
}

// directiveBlock is a `directive "key" { ... }` block.
type directiveBlock struct {
	Key         string `hcl:"key,label"`
	Description string `hcl:"description,optional"`
	Terminating bool   `hcl:"terminating,optional"`
}
