package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"plain words", "build --verbose out", []string{"build", "--verbose", "out"}},
		{"collapsed whitespace", "  a \t b  ", []string{"a", "b"}},
		{"double quotes group", `copy "my file.txt" dest`, []string{"copy", "my file.txt", "dest"}},
		{"escaped quote preserved", `say \"hello\"`, []string{`say`, `"hello"`}},
		{"escaped quote inside quotes", `msg "a \"b\" c"`, []string{"msg", `a "b" c`}},
		{"empty quoted token", `a "" b`, []string{"a", "", "b"}},
		{"empty input", "", nil},
		{"only whitespace", "   ", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Split(tc.in))
		})
	}
}
