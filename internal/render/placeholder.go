package render

import "strings"

// sentinel introduces a placeholder.
const sentinel = '$'

// token is one piece of a scanned pattern: either literal text or a
// placeholder reference.
type token struct {
	text  string // literal text, or the field name for a placeholder
	field bool
}

// IsIdentifier reports whether s is a valid placeholder name.
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	return identLen(s) == len(s)
}

// identLen returns the length of the identifier at the start of s, or 0 if
// s does not start with one.
func identLen(s string) int {
	if s == "" || !isIdentStart(s[0]) {
		return 0
	}
	n := 1
	for n < len(s) && isIdentPart(s[n]) {
		n++
	}
	return n
}

func isIdentStart(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isIdentPart(c byte) bool {
	return isIdentStart(c) || ('0' <= c && c <= '9')
}

// scan splits text into literal and placeholder tokens. Adjacent literal
// runs are merged.
func scan(text string) []token {
	var tokens []token
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			tokens = append(tokens, token{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		idx := strings.IndexByte(text[i:], sentinel)
		if idx < 0 {
			lit.WriteString(text[i:])
			break
		}
		lit.WriteString(text[i : i+idx])
		i += idx

		name, width := placeholderAt(text[i:])
		if width == 0 {
			lit.WriteByte(sentinel)
			i++
			continue
		}

		flush()
		tokens = append(tokens, token{text: name, field: true})
		i += width
	}
	flush()

	return tokens
}

// placeholderAt parses a placeholder at the start of s, which begins with the
// sentinel. It returns the field name and the number of bytes consumed, or a
// zero width when s does not start a placeholder.
func placeholderAt(s string) (string, int) {
	rest := s[1:]
	if strings.HasPrefix(rest, "{") {
		end := strings.IndexByte(rest, '}')
		if end < 0 {
			return "", 0
		}
		name := rest[1:end]
		if !IsIdentifier(name) {
			return "", 0
		}
		return name, end + 2
	}

	n := identLen(rest)
	if n == 0 {
		return "", 0
	}
	return rest[:n], n + 1
}

// Placeholders returns the distinct field names referenced by text, in order
// of first appearance.
func Placeholders(text string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, tok := range scan(text) {
		if tok.field && !seen[tok.text] {
			seen[tok.text] = true
			names = append(names, tok.text)
		}
	}
	return names
}
