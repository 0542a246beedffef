package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/vk/cmdtree/internal/parser"
)

// WriteReport renders a parse result as a human-readable summary: the
// matched command path, every binding, the accumulated diagnostics and the
// unmatched tokens.
func WriteReport(w io.Writer, res *parser.Result) {
	names := make([]string, 0, len(res.CommandPath()))
	for _, c := range res.CommandPath() {
		names = append(names, c.Name())
	}
	fmt.Fprintf(w, "command: %s\n", strings.Join(names, " "))

	writeBindings(w, "options", res.Options())
	writeBindings(w, "arguments", res.Arguments())

	if occs := res.DirectiveOccurrences(); len(occs) > 0 {
		fmt.Fprintln(w, "directives:")
		for _, occ := range occs {
			if occ.HasValue {
				fmt.Fprintf(w, "  [%s:%s]\n", occ.Directive.Name(), occ.Value)
			} else {
				fmt.Fprintf(w, "  [%s]\n", occ.Directive.Name())
			}
		}
	}

	if unmatched := res.UnmatchedValues(); len(unmatched) > 0 {
		fmt.Fprintf(w, "unmatched: %s\n", strings.Join(unmatched, " "))
	}

	for _, err := range res.Errors() {
		fmt.Fprintf(w, "error: %v\n", err)
	}
}

func writeBindings(w io.Writer, header string, bindings map[string][]string) {
	if len(bindings) == 0 {
		return
	}
	keys := make([]string, 0, len(bindings))
	for k := range bindings {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	fmt.Fprintf(w, "%s:\n", header)
	for _, k := range keys {
		fmt.Fprintf(w, "  %s = %q\n", k, bindings[k])
	}
}
