package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Bootstrap holds the inspector's own configuration, parsed before any of
// the remaining input is handed to the command tree.
type Bootstrap struct {
	ManifestPath   string
	LogFormat      string
	LogLevel       string
	ResponseMarker string
	NoBundle       bool
	Rest           []string
}

// Parse processes the inspector's bootstrap flags. It returns the populated
// Bootstrap, a boolean indicating the program should exit cleanly, or an
// ExitError.
func Parse(args []string, output io.Writer) (*Bootstrap, bool, error) {
	slog.Debug("Bootstrap flag parsing started.")
	flagSet := flag.NewFlagSet("cmdtree", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
cmdtree - a command-tree parse inspector.

Usage:
  cmdtree [options] [-- ] INPUT...

Loads a command tree from an HCL manifest, parses INPUT against it and
reports the resulting bindings, diagnostics and unmatched tokens.

Options:
`)
		flagSet.PrintDefaults()
	}

	manifestFlag := flagSet.String("manifest", "", "Path to a manifest .hcl file or a directory of manifests.")
	mFlag := flagSet.String("m", "", "Path to a manifest .hcl file or a directory of manifests (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	markerFlag := flagSet.String("response-marker", "@", "Prefix marking response-file tokens.")
	noBundleFlag := flagSet.Bool("no-bundle", false, "Disable POSIX bundling of single-character flags.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := *manifestFlag
	if path == "" {
		path = *mFlag
	}
	if path == "" {
		slog.Debug("No manifest path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	slog.Debug("Bootstrap flag parsing finished successfully.")
	return &Bootstrap{
		ManifestPath:   path,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
		ResponseMarker: *markerFlag,
		NoBundle:       *noBundleFlag,
		Rest:           flagSet.Args(),
	}, false, nil
}
