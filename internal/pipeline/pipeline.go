package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vk/cmdtree/internal/ctxlog"
	"github.com/vk/cmdtree/internal/parser"
	"github.com/vk/cmdtree/internal/tree"
)

// Exit codes returned by the pipeline.
const (
	// ExitSuccess is the nominal exit code.
	ExitSuccess = 0
	// ExitFault is returned when the fault handler caught an action error or
	// panic, or the termination grace period elapsed.
	ExitFault = 1
	// ExitNoAction is returned when neither a terminating directive nor the
	// matched command had an action to run.
	ExitNoAction = 2
)

// DefaultTerminationGrace is how long the pipeline waits for an action to
// observe cancellation after a termination signal.
const DefaultTerminationGrace = 2 * time.Second

// Config holds the sinks and behavior toggles for one invoker. The zero
// value is usable: standard streams, fault handler on, signal handling off.
type Config struct {
	// Output is the nominal text sink. Defaults to os.Stdout.
	Output io.Writer
	// Error is the diagnostic text sink. Defaults to os.Stderr.
	Error io.Writer
	// TerminationGrace enables termination-signal handling when non-nil:
	// SIGINT/SIGTERM cancel the action's context and start this timer. Nil
	// disables signal handling entirely.
	TerminationGrace *time.Duration
	// DisableFaultHandler propagates action errors and panics to the caller
	// instead of converting them into a diagnostic plus ExitFault.
	DisableFaultHandler bool
}

// Invoker runs the actions selected by a parse result.
type Invoker struct {
	cfg Config
	// sigOverride replaces the OS signal subscription in tests.
	sigOverride chan os.Signal
}

// New returns an invoker with the config's zero fields defaulted.
func New(cfg Config) *Invoker {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Error == nil {
		cfg.Error = os.Stderr
	}
	return &Invoker{cfg: cfg}
}

// outcome carries one action run across the goroutine boundary.
type outcome struct {
	code     int
	err      error
	panicked bool
	panicVal any
}

// Invoke is the blocking entry point: it drives the pipeline to completion
// and reduces everything, including propagated faults, to an exit code.
func (inv *Invoker) Invoke(res *parser.Result) int {
	code, err := inv.InvokeContext(context.Background(), res)
	if err != nil {
		fmt.Fprintln(inv.cfg.Error, err)
		return ExitFault
	}
	return code
}

// InvokeContext runs the pipeline under the caller's context. One
// cancellation chain is created per call; concurrent invocations are
// independent except for the shared symbol tree and sinks.
func (inv *Invoker) InvokeContext(ctx context.Context, res *parser.Result) (int, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if inv.cfg.TerminationGrace == nil {
		return inv.settle(inv.runActions(ctx, res))
	}

	sigCh := inv.sigOverride
	if sigCh == nil {
		sigCh = make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(sigCh)
	}

	done := make(chan outcome, 1)
	go func() { done <- inv.runActions(ctx, res) }()

	select {
	case out := <-done:
		return inv.settle(out)
	case <-sigCh:
		ctxlog.FromContext(ctx).Debug("Termination requested, cancelling action context.")
		cancel()
		timer := time.NewTimer(*inv.cfg.TerminationGrace)
		defer timer.Stop()
		select {
		case out := <-done:
			return inv.settle(out)
		case <-timer.C:
			// Cooperative only: the action goroutine is abandoned to observe
			// the cancelled context on its own, never killed.
			fmt.Fprintln(inv.cfg.Error, "termination grace period elapsed before the action completed")
			return ExitFault, nil
		}
	}
}

// runActions executes directive actions in root-declared order, one run per
// command-line occurrence, then the matched command's action.
func (inv *Invoker) runActions(ctx context.Context, res *parser.Result) outcome {
	root := res.CommandPath()[0]
	occurrences := res.DirectiveOccurrences()

	for _, d := range root.Directives() {
		if d.Action() == nil {
			continue
		}
		for _, occ := range occurrences {
			if occ.Directive != d {
				continue
			}
			out := inv.call(ctx, d.Action(), res)
			if out.panicked || out.err != nil {
				return out
			}
			if d.Terminating() {
				ctxlog.FromContext(ctx).Debug("Terminating directive ran, skipping command action.", "directive", d.Name())
				return out
			}
		}
	}

	cmd := res.Command()
	if cmd.Action() == nil {
		return outcome{code: ExitNoAction}
	}
	return inv.call(ctx, cmd.Action(), res)
}

// call runs one action, always containing panics at the goroutine boundary;
// settle decides whether to re-raise them.
func (inv *Invoker) call(ctx context.Context, a tree.Action, res *parser.Result) (out outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = outcome{panicked: true, panicVal: r}
		}
	}()
	code, err := a.Invoke(ctx, res)
	return outcome{code: code, err: err}
}

// settle applies the fault-containment policy to a finished run.
func (inv *Invoker) settle(out outcome) (int, error) {
	switch {
	case out.panicked:
		if inv.cfg.DisableFaultHandler {
			panic(out.panicVal)
		}
		fmt.Fprintf(inv.cfg.Error, "unhandled fault in action: %v\n", out.panicVal)
		return ExitFault, nil
	case out.err != nil:
		if inv.cfg.DisableFaultHandler {
			return out.code, out.err
		}
		fmt.Fprintf(inv.cfg.Error, "action failed: %v\n", out.err)
		return ExitFault, nil
	default:
		return out.code, nil
	}
}
