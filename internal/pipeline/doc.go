// Package pipeline walks a parse result to run directive actions and the
// matched command's action under a cooperative cancellation contract.
// Directive actions run first, in root-declared order, once per command-line
// occurrence; a terminating directive stops the pipeline before the command
// action. Cancellation is advisory only: termination signals cancel the
// shared context and start a grace timer, after which the pipeline returns
// without waiting, never forcibly killing the action.
package pipeline
