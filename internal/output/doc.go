// Package output provides structured output handling for the guestmail CLI.
//
// Every command writes through a Printer, which switches between styled
// human output and JSON depending on the --json flag and TTY detection:
//
//	printer := output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), output.IsTTY(cmd.OutOrStdout()))
//	printer.Success(map[string]any{"message": "Template added", "name": name})
//	printer.Error(err)
//
// In JSON mode errors are written as {"error": "message", "code": N}.
//
// # Exit Codes
//
//	output.ExitSuccess     // 0: Success
//	output.ExitUserError   // 1: User error (bad args, unknown template, missing fields)
//	output.ExitSystemError // 2: System error (I/O error, malformed template record)
//	output.ExitConflict    // 3: Conflict (template already exists)
//
// Use the constructors to create properly coded errors:
//
//	output.NewUserError("specify a template name")
//	output.NewSystemErrorWithCause("failed to write file", err)
//	output.WithCode(output.ExitConflict, err)
package output
