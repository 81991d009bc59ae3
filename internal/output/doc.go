// Package output renders simplegit results for terminals and scripts.
//
// Every CLI command builds a Printer from its cobra command:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, colorEnabled)
//
// In JSON mode envelopes are written verbatim with WriteJSON, and errors
// become {"error": "...", "code": N}. In human mode the Printer renders
// lipgloss-styled tables, sections and key/value pairs, and drops all
// styling when the writer is not a terminal or --color never is set.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: success
//	output.ExitUserError   // 1: invalid argument, bad flag, bad config
//	output.ExitSystemError // 2: git exited non-zero or could not start
//	output.ExitConflict    // 3: state conflict
//
// Errors carrying a code are built with NewUserError, NewSystemError and
// friends; GetExitCode recovers the code for the process exit status.
package output
