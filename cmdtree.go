// Package cmdtree is a declarative command-line parsing and invocation
// engine. Applications describe a tree of commands, options, arguments and
// directives, parse raw process-start input against it without ever hard
// failing, and dispatch the matched actions under a cooperative
// cancellation contract.
package cmdtree

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/vk/cmdtree/internal/manifest"
	"github.com/vk/cmdtree/internal/parser"
	"github.com/vk/cmdtree/internal/pipeline"
	"github.com/vk/cmdtree/internal/tokenizer"
	"github.com/vk/cmdtree/internal/tree"
)

// Config wires a symbol tree to the tokenizer, parser and invocation
// pipeline. Zero fields are defaulted by NewConfig; sinks default lazily to
// the process's standard streams and an explicit no-op sink is io.Discard.
type Config struct {
	// Root is the command tree everything is resolved against. Required.
	Root *Command

	// ResponseMarker prefixes response-file tokens. Defaults to "@".
	ResponseMarker string
	// Replacer expands response-file tokens; defaults to reading the named
	// file. A replacer that reports failure keeps the token literal.
	Replacer Replacer
	// DisableResponseFiles turns expansion off entirely.
	DisableResponseFiles bool
	// PosixBundling enables single-dash flag bundle expansion.
	PosixBundling bool

	// Output is the nominal text sink. Defaults to os.Stdout.
	Output io.Writer
	// Error is the diagnostic text sink. Defaults to os.Stderr.
	Error io.Writer

	// TerminationGrace enables SIGINT/SIGTERM handling when non-nil: the
	// signal cancels the action context and this is how long the pipeline
	// waits before returning anyway. Nil disables signal handling.
	TerminationGrace *time.Duration
	// DisableFaultHandler propagates action errors and panics to the caller
	// instead of converting them to a diagnostic plus a fault exit code.
	DisableFaultHandler bool
}

// NewConfig validates the required fields and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Root == nil {
		return nil, errors.New("Root is a required configuration field and cannot be nil")
	}
	if cfg.ResponseMarker == "" {
		cfg.ResponseMarker = tokenizer.DefaultResponseMarker
	}
	if cfg.Replacer == nil {
		cfg.Replacer = tokenizer.FileReplacer(cfg.ResponseMarker)
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Error == nil {
		cfg.Error = os.Stderr
	}
	return &cfg, nil
}

// Parse tokenizes and parses a pre-split argument vector. The returned
// result is always structurally complete; unresolved input degrades to
// unmatched tokens and per-symbol diagnostics.
func (c *Config) Parse(args []string) *Result {
	return parser.Parse(tokenizer.Tokenize(args, c.tokenizerConfig()), c.Root)
}

// ParseString splits a single command-line string with shell-like quoting
// and parses the pieces.
func (c *Config) ParseString(line string) *Result {
	return c.Parse(tokenizer.Split(line))
}

// Invoke is the blocking entry point: it runs the matched directive and
// command actions and returns the exit code.
func (c *Config) Invoke(res *Result) int {
	return c.invoker().Invoke(res)
}

// InvokeContext runs the pipeline under the caller's context. With the fault
// handler disabled, action errors are returned instead of converted.
func (c *Config) InvokeContext(ctx context.Context, res *Result) (int, error) {
	return c.invoker().InvokeContext(ctx, res)
}

// Run parses the argument vector and invokes the result in one step.
func (c *Config) Run(args []string) int {
	return c.Invoke(c.Parse(args))
}

func (c *Config) tokenizerConfig() tokenizer.Config {
	tc := tokenizer.Config{
		Root:           c.Root,
		ResponseMarker: c.ResponseMarker,
		Replacer:       c.Replacer,
		PosixBundling:  c.PosixBundling,
	}
	if c.DisableResponseFiles {
		tc.ResponseMarker = ""
		tc.Replacer = nil
	}
	return tc
}

func (c *Config) invoker() *pipeline.Invoker {
	return pipeline.New(pipeline.Config{
		Output:              c.Output,
		Error:               c.Error,
		TerminationGrace:    c.TerminationGrace,
		DisableFaultHandler: c.DisableFaultHandler,
	})
}

// Parse resolves an argument vector against a tree with default settings.
func Parse(root *Command, args []string) *Result {
	cfg, _ := NewConfig(Config{Root: root})
	return cfg.Parse(args)
}

// ParseString resolves a single command-line string against a tree with
// default settings.
func ParseString(root *Command, line string) *Result {
	cfg, _ := NewConfig(Config{Root: root})
	return cfg.ParseString(line)
}

// Validate eagerly checks a tree for duplicate sibling aliases and parent
// cycles. It is an explicit startup/test check, never run on the parse path.
func Validate(root *Command) error {
	return tree.Validate(root)
}

// LoadManifest builds a command tree from a single HCL manifest file.
func LoadManifest(ctx context.Context, path string) (*Command, error) {
	return manifest.LoadFile(ctx, path)
}

// LoadManifestDir builds a command tree from all .hcl manifests under a
// directory.
func LoadManifestDir(ctx context.Context, path string) (*Command, error) {
	return manifest.LoadDir(ctx, path)
}
