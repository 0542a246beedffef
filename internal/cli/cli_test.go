package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Bootstrap(t *testing.T) {
	t.Parallel()

	t.Run("flags and rest split", func(t *testing.T) {
		boot, exit, err := Parse([]string{"-m", "tool.hcl", "-no-bundle", "build", "-y"}, &bytes.Buffer{})
		require.NoError(t, err)
		require.False(t, exit)
		assert.Equal(t, "tool.hcl", boot.ManifestPath)
		assert.True(t, boot.NoBundle)
		assert.Equal(t, "@", boot.ResponseMarker)
		assert.Equal(t, []string{"build", "-y"}, boot.Rest)
	})

	t.Run("missing manifest prints usage and exits cleanly", func(t *testing.T) {
		out := &bytes.Buffer{}
		_, exit, err := Parse(nil, out)
		require.NoError(t, err)
		assert.True(t, exit)
		assert.Contains(t, out.String(), "Usage:")
	})

	t.Run("invalid log level", func(t *testing.T) {
		_, _, err := Parse([]string{"-m", "x.hcl", "-log-level", "loud"}, &bytes.Buffer{})
		require.Error(t, err)
		exitErr, ok := err.(*ExitError)
		require.True(t, ok)
		assert.Equal(t, 2, exitErr.Code)
	})

	t.Run("invalid log format", func(t *testing.T) {
		_, _, err := Parse([]string{"-m", "x.hcl", "-log-format", "xml"}, &bytes.Buffer{})
		require.Error(t, err)
	})
}
