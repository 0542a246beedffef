package parser

import "fmt"

// ArityError records an option or argument that received fewer value tokens
// than its declared minimum. It is a diagnostic, never a parse failure.
type ArityError struct {
	Symbol string
	Min    int
	Got    int
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%s: expected at least %d value(s), got %d", e.Symbol, e.Min, e.Got)
}
