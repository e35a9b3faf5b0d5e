// Package export formats rendered emails and saves them to files.
//
// # Formats
//
//   - txt: a header block, a blank line, then the body
//   - json: {"to", "subject", "body"}
//   - md: YAML frontmatter with to and subject, then the body
//
// Example txt output:
//
//	To: ana@example.com
//	Subject: Booking Confirmation - Sea View
//
//	Dear Ana,
//	...
//
// The body is written exactly as rendered; no trailing newline is added.
package export
