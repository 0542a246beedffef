package tree

// Unbounded marks an arity with no upper limit on consumed tokens.
const Unbounded = -1

// Arity bounds how many value tokens an option or argument consumes.
type Arity struct {
	Min int
	Max int
}

// IsUnbounded reports whether the arity has no upper limit.
func (a Arity) IsUnbounded() bool { return a.Max == Unbounded }

// Accepts reports whether a symbol with this arity can still consume another
// token after already holding n of them.
func (a Arity) Accepts(n int) bool {
	return a.IsUnbounded() || n < a.Max
}

// Common arities.
func ArityZero() Arity       { return Arity{Min: 0, Max: 0} }
func ArityZeroOrOne() Arity  { return Arity{Min: 0, Max: 1} }
func ArityExactlyOne() Arity { return Arity{Min: 1, Max: 1} }
func ArityZeroOrMore() Arity { return Arity{Min: 0, Max: Unbounded} }
func ArityOneOrMore() Arity  { return Arity{Min: 1, Max: Unbounded} }
