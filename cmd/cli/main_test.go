package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cmdtree/internal/cli"
)

const toolManifest = `
command "tool" {
  option "--yes" {
    aliases = ["-y"]
  }

  directive "parse" {}

  command "build" {
    option "--output" {
      aliases    = ["-o"]
      min_values = 1
      max_values = 1
    }

    argument "target" {
      min_values = 1
    }
  }
}
`

func writeTempManifest(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tool.hcl")
	require.NoError(t, os.WriteFile(path, []byte(toolManifest), 0o600))
	return path
}

func TestRun_ReportsBindings(t *testing.T) {
	t.Parallel()

	path := writeTempManifest(t)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-m", path, "build", "main.c", "-o", "out.bin"})
	require.NoError(t, err)

	report := out.String()
	assert.Contains(t, report, "command: tool build")
	assert.Contains(t, report, "--output")
	assert.Contains(t, report, "out.bin")
	assert.Contains(t, report, "main.c")
}

func TestRun_UnmatchedInputExitsNonZero(t *testing.T) {
	t.Parallel()

	path := writeTempManifest(t)
	out := &bytes.Buffer{}

	err := run(out, &bytes.Buffer{}, []string{"-m", path, "--", "--wumpus"})
	require.Error(t, err)

	exitErr, ok := err.(*cli.ExitError)
	require.True(t, ok)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, out.String(), "unmatched: --wumpus")
}

func TestRun_MissingManifestPathPrintsUsage(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	err := run(out, &bytes.Buffer{}, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_InvalidManifestSurfacesValidationError(t *testing.T) {
	t.Parallel()

	// Subcommand and option alias collide on "build".
	manifest := `
command "tool" {
  option "--binary" {
    aliases = ["build"]
  }

  command "build" {}
}
`
	path := filepath.Join(t.TempDir(), "bad.hcl")
	require.NoError(t, os.WriteFile(path, []byte(manifest), 0o600))

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-m", path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
	assert.Contains(t, err.Error(), `"build"`)
}

func TestRun_MissingManifestFileErrors(t *testing.T) {
	t.Parallel()

	err := run(&bytes.Buffer{}, &bytes.Buffer{}, []string{"-m", filepath.Join(t.TempDir(), "nope.hcl")})
	require.Error(t, err)
}
