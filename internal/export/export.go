package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gorewood/guestmail/internal/output"
	"github.com/gorewood/guestmail/internal/render"
)

// Format names an email file layout.
type Format string

// Supported formats.
const (
	FormatTxt      Format = "txt"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "md"
)

// Formats lists the accepted format names.
func Formats() []string {
	return []string{string(FormatTxt), string(FormatJSON), string(FormatMarkdown)}
}

// ParseFormat validates a format name. An empty name means txt.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case "", FormatTxt:
		return FormatTxt, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatMarkdown, "markdown":
		return FormatMarkdown, nil
	default:
		return "", output.NewUserError(fmt.Sprintf("unknown format %q: use %s", name, strings.Join(Formats(), ", ")))
	}
}

// EncodeText renders an email as a To/Subject header block followed by a
// blank line and the body.
func EncodeText(email render.Email) string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "To: %s\n", email.To)
	fmt.Fprintf(&builder, "Subject: %s\n\n", email.Subject)
	builder.WriteString(email.Body)
	return builder.String()
}

// EncodeMarkdown renders an email with YAML frontmatter.
func EncodeMarkdown(email render.Email) (string, error) {
	front, err := yaml.Marshal(struct {
		To      string `yaml:"to"`
		Subject string `yaml:"subject"`
	}{To: email.To, Subject: email.Subject})
	if err != nil {
		return "", fmt.Errorf("encoding frontmatter: %w", err)
	}

	var builder strings.Builder
	builder.WriteString("---\n")
	builder.Write(front)
	builder.WriteString("---\n\n")
	builder.WriteString(email.Body)
	return builder.String(), nil
}

// EncodeJSON encodes an email as indented JSON.
func EncodeJSON(email render.Email) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(email); err != nil {
		return nil, fmt.Errorf("encoding email: %w", err)
	}
	return buf.Bytes(), nil
}

// Encode renders an email in the given format.
func Encode(email render.Email, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return EncodeJSON(email)
	case FormatMarkdown:
		md, err := EncodeMarkdown(email)
		if err != nil {
			return nil, err
		}
		return []byte(md), nil
	default:
		return []byte(EncodeText(email)), nil
	}
}

// WriteFile saves an email to path, creating parent directories as needed.
// An existing file is replaced.
func WriteFile(path string, email render.Email, format Format) error {
	data, err := Encode(email, format)
	if err != nil {
		return output.NewSystemErrorWithCause("failed to format email", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return output.NewSystemErrorWithCause("failed to create directory "+dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return output.NewSystemErrorWithCause("failed to write file "+path, err)
	}
	return nil
}
