package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/cmdtree"
	"github.com/vk/cmdtree/internal/cli"
	"github.com/vk/cmdtree/internal/ctxlog"
)

// main is the entrypoint for the cmdtree inspector.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		if exitErr, ok := err.(*cli.ExitError); ok {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the inspector's logic for easier testing and error
// handling: load the manifest, validate it, parse the remaining input
// against it and report the bindings.
func run(outW, errW io.Writer, args []string) error {
	boot, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	logger := cli.NewLogger(boot.LogLevel, boot.LogFormat, errW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	root, err := loadTree(ctx, boot.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load manifest: %w", err)
	}

	// Manifests are user input; check them early and loudly.
	if err := cmdtree.Validate(root); err != nil {
		return fmt.Errorf("manifest failed validation: %w", err)
	}
	logger.Debug("Manifest loaded and validated.", "root", root.Name())

	cfg, err := cmdtree.NewConfig(cmdtree.Config{
		Root:           root,
		Output:         outW,
		Error:          errW,
		ResponseMarker: boot.ResponseMarker,
		PosixBundling:  !boot.NoBundle,
	})
	if err != nil {
		return &cli.ExitError{Code: 2, Message: err.Error()}
	}

	res := cfg.Parse(boot.Rest)
	logger.Debug("Input parsed.",
		"tokens", len(res.Tokens()),
		"unmatched", len(res.UnmatchedValues()),
		"errors", len(res.Errors()))

	cli.WriteReport(outW, res)

	if len(res.Errors()) > 0 || len(res.UnmatchedValues()) > 0 {
		return &cli.ExitError{Code: 2, Message: "input did not fully match the command tree"}
	}
	return nil
}

// loadTree accepts either a single manifest file or a directory of them.
func loadTree(ctx context.Context, path string) (*cmdtree.Command, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return cmdtree.LoadManifestDir(ctx, path)
	}
	return cmdtree.LoadManifest(ctx, path)
}
