package tree

import (
	"errors"
	"fmt"
)

// ConfigError describes a single configuration mistake found by Validate.
type ConfigError struct {
	Command string // name of the command the mistake was found on
	Detail  string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return fmt.Sprintf("command %q: %s", e.Command, e.Detail)
}

// Validate eagerly checks a symbol tree for configuration mistakes: sibling
// name/alias collisions among each command's immediate subcommands and
// options, and commands reachable from themselves via parent links. It is an
// explicit precondition check for startup or tests, intentionally not run by
// Parse or Invoke. Returns nil when the tree is clean, otherwise all found
// errors joined.
func Validate(root *Command) error {
	var errs []error
	visited := make(map[*Command]bool)
	walk(root, visited, &errs)
	return errors.Join(errs...)
}

// walk visits every command reachable from c once. The hierarchy may be a
// DAG, so the visited set bounds the traversal.
func walk(c *Command, visited map[*Command]bool, errs *[]error) {
	if visited[c] {
		return
	}
	visited[c] = true

	checkSiblings(c, errs)
	if isOwnAncestor(c) {
		*errs = append(*errs, &ConfigError{
			Command: c.Name(),
			Detail:  "command is reachable from itself via parent links",
		})
	}

	for _, sub := range c.subcommands {
		walk(sub, visited, errs)
	}
}

// namedSibling is the common shape of the symbols the sibling check compares:
// subcommands and options. Directives are excluded.
type namedSibling interface {
	Name() string
	Aliases() []string
}

// checkSiblings builds a temporary alias index over c's immediate children
// and flags any name/name, name/alias or alias/alias collision. Child counts
// are small, so the pairwise cost is acceptable.
func checkSiblings(c *Command, errs *[]error) {
	siblings := make([]namedSibling, 0, len(c.subcommands)+len(c.options))
	kinds := make([]string, 0, cap(siblings))
	for _, sub := range c.subcommands {
		siblings = append(siblings, sub)
		kinds = append(kinds, "subcommand")
	}
	for _, o := range c.options {
		siblings = append(siblings, o)
		kinds = append(kinds, "option")
	}

	// alias or name -> description of the symbol that claimed it first
	index := make(map[string]string, len(siblings)*2)
	for i, s := range siblings {
		owner := fmt.Sprintf("%s %q", kinds[i], s.Name())
		// A symbol's own alias duplicating its own name is harmless; dedupe
		// the candidate set per symbol before consulting the index.
		seen := map[string]bool{}
		for _, candidate := range append([]string{s.Name()}, s.Aliases()...) {
			if seen[candidate] {
				continue
			}
			seen[candidate] = true
			if prev, ok := index[candidate]; ok {
				*errs = append(*errs, &ConfigError{
					Command: c.Name(),
					Detail:  fmt.Sprintf("alias %q of %s collides with %s", candidate, owner, prev),
				})
				continue
			}
			index[candidate] = owner
		}
	}
}

// isOwnAncestor walks c's parent graph breadth-first with a visited set and
// reports whether c can reach itself. Multiple parents are permitted, so this
// is general-graph reachability, not a depth walk.
func isOwnAncestor(c *Command) bool {
	visited := make(map[*Command]bool)
	queue := append([]*Command(nil), c.Parents()...)
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if p == c {
			return true
		}
		if visited[p] {
			continue
		}
		visited[p] = true
		queue = append(queue, p.Parents()...)
	}
	return false
}
