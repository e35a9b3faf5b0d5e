// Package render resolves placeholders in guest email templates.
//
// A placeholder is a dollar sign followed by an identifier, either bare or
// wrapped in braces:
//
//	Dear $guest_name,
//	Your room is ${room_type}.
//
// Identifiers start with an ASCII letter or underscore, followed by ASCII
// letters, digits or underscores. The bare form takes the longest such run.
// A dollar sign that does not start a placeholder, as in "$5" or a lone "$",
// is ordinary text and is copied through unchanged. There is no escape
// sequence.
//
// Substitution is single pass: a value that itself looks like a placeholder
// is inserted verbatim and never expanded again.
package render
