// Package output provides structured output handling for the gig CLI.
//
// Every command writes through a Printer so that the same code path serves
// people at a terminal and scripts reading JSON.
//
// # Printer
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), jsonMode, output.IsTTY(cmd.OutOrStdout()))
//
//	printer.Success(map[string]any{"message": "Created .gitignore", "templates": keys})
//	printer.Error(err)
//	printer.Warn("template %q overrides %q", kept, dropped)
//
// # JSON Mode
//
// With --json, results are JSON objects and errors are {"error": "...", "code": N}
// written to stdout.
//
// # Styling
//
// Human output uses lipgloss styles that are cleared when the writer is not a
// terminal or when --color never is given (see ResolveColorMode).
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: Unknown or ambiguous template, bad arguments
//	output.ExitSystemError // 2: I/O error
//	output.ExitConflict    // 3: Output file already exists
package output
