// Package cli is responsible for parsing the inspector's own bootstrap
// flags, validating user input, and handling process-level concerns like
// exit codes. It translates CLI flags into the inspector's configuration and
// renders parse results to the output sink.
package cli
