package tree

import "context"

// ParseView is the read-only view of a parse result an action receives. The
// concrete type is produced by the parser; declaring the interface here keeps
// the symbol tree free of parser internals.
type ParseView interface {
	// CommandPath returns the matched commands from root to leaf.
	CommandPath() []*Command
	// OptionValues returns the tokens bound to the named option and whether
	// the option was present at all. A present flag option has an empty list.
	OptionValues(name string) ([]string, bool)
	// ArgumentValues returns the tokens bound to the named positional argument.
	ArgumentValues(name string) ([]string, bool)
	// DirectiveValues returns the aggregated values of the named directive in
	// encounter order, and whether the directive occurred at all. Occurrences
	// without a value contribute nothing to the list.
	DirectiveValues(name string) ([]string, bool)
	// UnmatchedValues returns the raw values of all unmatched tokens in input
	// order.
	UnmatchedValues() []string
}

// Action is the behavior attached to a command or directive. A synchronous
// action ignores ctx; an asynchronous one blocks on ctx-aware work and is
// expected to observe cancellation voluntarily. The returned int becomes the
// process exit code.
type Action interface {
	Invoke(ctx context.Context, view ParseView) (int, error)
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(ctx context.Context, view ParseView) (int, error)

// Invoke implements Action.
func (f ActionFunc) Invoke(ctx context.Context, view ParseView) (int, error) {
	return f(ctx, view)
}
