package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cmdtree/internal/tokenizer"
	"github.com/vk/cmdtree/internal/tree"
)

// fixture builds:
//
//	tool (directives: parse, key, directive; options: -y, -a, --count <n>;
//	      inherited option --verbose/-v)
//	└── build (option: --output/-o <path>; args: target [extras...])
func fixture(t *testing.T) *tree.Command {
	t.Helper()
	root, err := tree.NewCommand("tool")
	require.NoError(t, err)

	for _, key := range []string{"parse", "key", "directive"} {
		d, err := tree.NewDirective(key)
		require.NoError(t, err)
		root.AddDirective(d)
	}

	for _, name := range []string{"-y", "-a"} {
		o, err := tree.NewOption(name)
		require.NoError(t, err)
		root.AddOption(o)
	}

	count, err := tree.NewOption("--count")
	require.NoError(t, err)
	count.SetArity(tree.ArityExactlyOne())
	root.AddOption(count)

	verbose, err := tree.NewOption("--verbose", "-v")
	require.NoError(t, err)
	verbose.SetInherited(true)
	root.AddOption(verbose)

	build, err := tree.NewCommand("build")
	require.NoError(t, err)
	root.AddSubcommand(build)

	output, err := tree.NewOption("--output", "-o")
	require.NoError(t, err)
	output.SetArity(tree.ArityExactlyOne())
	build.AddOption(output)

	target, err := tree.NewArgument("target", tree.ArityExactlyOne())
	require.NoError(t, err)
	require.NoError(t, build.AddArgument(target))
	extras, err := tree.NewArgument("extras", tree.ArityZeroOrMore())
	require.NoError(t, err)
	require.NoError(t, build.AddArgument(extras))

	return root
}

func parseString(t *testing.T, root *tree.Command, line string) *Result {
	t.Helper()
	return Parse(tokenizer.TokenizeString(line, tokenizer.Config{Root: root}), root)
}

func TestParse_LeadingDirectiveWithFlag(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "[parse] -y")

	vals, present := res.DirectiveValues("parse")
	require.True(t, present)
	assert.Empty(t, vals)

	_, yBound := res.OptionValues("-y")
	assert.True(t, yBound)
	assert.Empty(t, res.Unmatched())
}

func TestParse_DirectiveAfterOptionIsUnmatched(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "-y [parse]")

	_, present := res.DirectiveValues("parse")
	assert.False(t, present)
	assert.Equal(t, []string{"[parse]"}, res.UnmatchedValues())
}

func TestParse_DirectiveValueExtraction(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	cases := []struct {
		input string
		want  []string
	}{
		{"[key:value]", []string{"value"}},
		{"[key:value:more]", []string{"value:more"}},
		{"[key:]", []string{""}},
		{"[key]", nil},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			res := parseString(t, root, tc.input)
			vals, present := res.DirectiveValues("key")
			require.True(t, present)
			assert.Equal(t, tc.want, vals)
		})
	}
}

func TestParse_RepeatedDirectiveAggregates(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "[directive:one] [directive:two] -a")

	vals, present := res.DirectiveValues("directive")
	require.True(t, present)
	assert.Equal(t, []string{"one", "two"}, vals)
	assert.Len(t, res.DirectiveOccurrences(), 2)

	_, aBound := res.OptionValues("-a")
	assert.True(t, aBound)
}

func TestParse_MalformedDirectiveSplitsAtWordBoundaries(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "[par se] -y")

	assert.Equal(t, []string{"[par", "se]"}, res.UnmatchedValues())
	_, present := res.DirectiveValues("parse")
	assert.False(t, present)
	_, yBound := res.OptionValues("-y")
	assert.True(t, yBound)
}

func TestParse_UndeclaredDirectiveIsUnmatched(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "[nope] -y")

	assert.Equal(t, []string{"[nope]"}, res.UnmatchedValues())
}

func TestParse_SubcommandDescentAndPositionals(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "build main.c extra1 extra2")

	path := res.CommandPath()
	require.Len(t, path, 2)
	assert.Equal(t, "build", res.Command().Name())

	target, ok := res.ArgumentValues("target")
	require.True(t, ok)
	assert.Equal(t, []string{"main.c"}, target)

	extras, ok := res.ArgumentValues("extras")
	require.True(t, ok)
	assert.Equal(t, []string{"extra1", "extra2"}, extras)
	assert.Empty(t, res.Unmatched())
}

func TestParse_DescentBlockedAfterLocalBinding(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	// -a binds on the root level, so "build" can no longer descend; with no
	// positional arguments declared on root it falls through to unmatched.
	res := parseString(t, root, "-a build")

	require.Len(t, res.CommandPath(), 1)
	assert.Equal(t, []string{"build"}, res.UnmatchedValues())
}

func TestParse_InheritedOptionDoesNotBlockDescent(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "--verbose build main.c")

	assert.Equal(t, "build", res.Command().Name())
	_, bound := res.OptionValues("--verbose")
	assert.True(t, bound)
}

func TestParse_InheritedOptionBindsUnderSubcommand(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "build main.c -v")

	vals, bound := res.OptionValues("--verbose")
	require.True(t, bound)
	assert.Empty(t, vals)
	assert.Empty(t, res.Unmatched())
}

func TestParse_NonInheritedRootOptionInvisibleUnderSubcommand(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "build main.c -a")

	_, bound := res.OptionValues("-a")
	assert.False(t, bound)
	assert.Equal(t, []string{"-a"}, res.UnmatchedValues())
}

func TestParse_OptionValueConsumption(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	t.Run("consumes up to max arity", func(t *testing.T) {
		res := parseString(t, root, "--count 3")
		vals, ok := res.OptionValues("--count")
		require.True(t, ok)
		assert.Equal(t, []string{"3"}, vals)
		assert.Empty(t, res.Errors())
	})

	t.Run("missing minimum is a diagnostic, not a failure", func(t *testing.T) {
		res := parseString(t, root, "--count")
		_, ok := res.OptionValues("--count")
		assert.True(t, ok)

		errs := res.Errors()
		require.Len(t, errs, 1)
		var arityErr *ArityError
		require.ErrorAs(t, errs[0], &arityErr)
		assert.Equal(t, "--count", arityErr.Symbol)
		assert.Equal(t, 1, arityErr.Min)
		assert.Equal(t, 0, arityErr.Got)
	})

	t.Run("consumption stops at the next option", func(t *testing.T) {
		res := parseString(t, root, "--count -y")
		vals, _ := res.OptionValues("--count")
		assert.Empty(t, vals)
		_, yBound := res.OptionValues("-y")
		assert.True(t, yBound)
		assert.Len(t, res.Errors(), 1)
	})

	t.Run("alias resolves to the same binding", func(t *testing.T) {
		res := parseString(t, root, "build main.c -o out.bin")
		byAlias, ok := res.OptionValues("-o")
		require.True(t, ok)
		byName, _ := res.OptionValues("--output")
		assert.Equal(t, byName, byAlias)
		assert.Equal(t, []string{"out.bin"}, byName)
	})
}

func TestParse_UnknownOptionIsUnmatched(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "--frobnicate -y")

	assert.Equal(t, []string{"--frobnicate"}, res.UnmatchedValues())
	_, yBound := res.OptionValues("-y")
	assert.True(t, yBound)
}

func TestParse_MissingRequiredArgumentDiagnostic(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "build")

	errs := res.Errors()
	require.Len(t, errs, 1)
	var arityErr *ArityError
	require.ErrorAs(t, errs[0], &arityErr)
	assert.Equal(t, "target", arityErr.Symbol)
}

func TestParse_DoubleDashForcesPositionals(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "build main.c -- -y --output")

	extras, ok := res.ArgumentValues("extras")
	require.True(t, ok)
	assert.Equal(t, []string{"-y", "--output"}, extras)
	assert.Empty(t, res.Unmatched())
}

func TestParse_EntirelyUnrecognizedInputStillYieldsResult(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "wibble wobble --wumpus")

	require.NotNil(t, res)
	assert.Equal(t, "tool", res.Command().Name())
	assert.Equal(t, []string{"wibble", "wobble", "--wumpus"}, res.UnmatchedValues())
}

func TestParse_OptionDefaultApplied(t *testing.T) {
	t.Parallel()
	root := fixture(t)
	port, err := tree.NewOption("--port")
	require.NoError(t, err)
	port.SetArity(tree.ArityExactlyOne())
	port.SetDefault("8080")
	root.AddOption(port)

	t.Run("absent option binds its default", func(t *testing.T) {
		res := parseString(t, root, "-y")
		vals, ok := res.OptionValues("--port")
		require.True(t, ok)
		assert.Equal(t, []string{"8080"}, vals)
	})

	t.Run("explicit value wins", func(t *testing.T) {
		res := parseString(t, root, "--port 9999")
		vals, _ := res.OptionValues("--port")
		assert.Equal(t, []string{"9999"}, vals)
	})
}

func TestParse_RepeatedOptionAggregates(t *testing.T) {
	t.Parallel()
	root := fixture(t)

	res := parseString(t, root, "--count 1 --count 2")

	vals, _ := res.OptionValues("--count")
	assert.Equal(t, []string{"1", "2"}, vals)
}
