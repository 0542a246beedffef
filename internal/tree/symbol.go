// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package tree

import (
	"fmt"
	"strings"
	"unicode"
)

// symbol carries the attributes shared by every node kind: a name, an alias
// set and non-owning links to the commands the node is attached to.
type symbol struct {
	name        string
	description string
	aliases     AliasSet
	parents     []*Command
}

// newSymbol validates the shared naming rule: a name is never empty and never
// contains whitespace. The rule is enforced at construction, not at parse time.
func newSymbol(kind, name string) (symbol, error) {
	if err := checkName(kind, name); err != nil {
		return symbol{}, err
	}
	return symbol{name: name, aliases: NewAliasSet()}, nil
}

func checkName(kind, name string) error {
	if name == "" {
		return fmt.Errorf("%s name must not be empty", kind)
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return fmt.Errorf("%s name %q must not contain whitespace", kind, name)
	}
	return nil
}

// Name returns the symbol's primary name.
func (s *symbol) Name() string { return s.name }

// Description returns the free-form description attached to the symbol.
func (s *symbol) Description() string { return s.description }

// SetDescription attaches a free-form description. The core never interprets
// it; help renderers do.
func (s *symbol) SetDescription(d string) { s.description = d }

// Aliases returns the symbol's aliases in the order they were added.
func (s *symbol) Aliases() []string { return s.aliases.All() }

// AddAlias registers an alternate name. Aliases follow the same naming rule
// as primary names.
func (s *symbol) AddAlias(alias string) error {
	if err := checkName("alias", alias); err != nil {
		return err
	}
	s.aliases.Add(alias)
	return nil
}

// Matches reports whether the given string equals the symbol's name or one of
// its aliases, using ordinal comparison.
func (s *symbol) Matches(v string) bool {
	return v == s.name || s.aliases.Contains(v)
}

// Parents returns the commands this symbol is attached to. The slice is the
// live backing store and must not be mutated by callers.
func (s *symbol) Parents() []*Command { return s.parents }

func (s *symbol) addParent(c *Command) { s.parents = append(s.parents, c) }

// AliasSet is a set-backed membership structure over alias strings. Lookup is
// O(1) amortized; insertion order is preserved for deterministic listing.
type AliasSet struct {
	members map[string]struct{}
	order   []string
}

// NewAliasSet returns an empty alias set.
func NewAliasSet() AliasSet {
	return AliasSet{members: make(map[string]struct{})}
}

// Add inserts an alias. Adding an existing member is a no-op.
func (a *AliasSet) Add(alias string) {
	if _, ok := a.members[alias]; ok {
		return
	}
	a.members[alias] = struct{}{}
	a.order = append(a.order, alias)
}

// Contains reports membership.
func (a AliasSet) Contains(alias string) bool {
	_, ok := a.members[alias]
	return ok
}

// Overlaps returns the first member shared with the other set, if any.
func (a AliasSet) Overlaps(other AliasSet) (string, bool) {
	for _, m := range a.order {
		if other.Contains(m) {
			return m, true
		}
	}
	return "", false
}

// All returns the members in insertion order.
func (a AliasSet) All() []string {
	out := make([]string, len(a.order))
	copy(out, a.order)
	return out
}

// Len returns the member count.
func (a AliasSet) Len() int { return len(a.order) }
