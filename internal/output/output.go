package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes command results either as JSON or as styled text.
type Printer struct {
	w      io.Writer
	errW   io.Writer
	json   bool
	isTTY  bool
	styles Styles
}

// Styles holds lipgloss styles for human-readable output.
type Styles struct {
	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Bold    lipgloss.Style
	Dim     lipgloss.Style
	Title   lipgloss.Style
	Key     lipgloss.Style
	Border  lipgloss.Color
}

// newStyles returns the palette, or unstyled text when color is off.
func newStyles(color bool) Styles {
	if !color {
		plain := lipgloss.NewStyle()
		return Styles{
			Error: plain, Success: plain, Warning: plain, Bold: plain,
			Dim: plain, Title: plain, Key: plain,
		}
	}
	return Styles{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Bold:    lipgloss.NewStyle().Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Key:     lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		Border:  lipgloss.Color("8"),
	}
}

// NewPrinter creates a Printer writing to writer. Colors are used only when
// isTTY is true and jsonMode is false.
func NewPrinter(writer io.Writer, jsonMode bool, isTTY bool) *Printer {
	return &Printer{
		w:      writer,
		errW:   writer,
		json:   jsonMode,
		isTTY:  isTTY,
		styles: newStyles(isTTY && !jsonMode),
	}
}

// WithStderr sets a separate writer for human-mode errors and warnings.
// JSON errors always go to the main writer so callers can parse one stream.
func (p *Printer) WithStderr(w io.Writer) *Printer {
	p.errW = w
	return p
}

// IsJSON reports whether the printer is in JSON mode.
func (p *Printer) IsJSON() bool {
	return p.json
}

// IsTTY reports whether human output goes to a terminal.
func (p *Printer) IsTTY() bool {
	return p.isTTY
}

// Success writes a result. In human mode a "message" key is printed alone;
// otherwise every key is printed in sorted order.
func (p *Printer) Success(data map[string]any) error {
	if p.json {
		return p.WriteJSON(data)
	}

	if msg, ok := data["message"].(string); ok {
		mustWrite(fmt.Fprintln(p.w, p.styles.Success.Render(msg)))
		return nil
	}

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	for _, key := range keys {
		mustWrite(fmt.Fprintf(p.w, "%s: %v\n", p.styles.Bold.Render(key), data[key]))
	}
	return nil
}

// Error writes err. JSON mode emits {"error": "...", "code": N}; human mode
// writes "Error: ..." to the error writer. Errors without an exit code are
// reported as user errors.
func (p *Printer) Error(err error) {
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		exitErr = &ExitError{Code: ExitUserError, Message: err.Error()}
	}

	if p.json {
		mustWrite(p.w.Write(ErrorJSON(exitErr.Message, exitErr.Code)))
		mustWrite(fmt.Fprintln(p.w))
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Error.Render("Error"), exitErr.Message))
}

// Warn writes a warning: {"warning": "..."} in JSON mode, "Warning: ..." to
// the error writer otherwise.
func (p *Printer) Warn(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.json {
		_ = p.WriteJSON(map[string]any{"warning": msg})
		return
	}
	mustWrite(fmt.Fprintf(p.errW, "%s: %s\n", p.styles.Warning.Render("Warning"), msg))
}

// Print formats and writes to the output without a newline.
func (p *Printer) Print(format string, args ...any) {
	mustWrite(fmt.Fprintf(p.w, format, args...))
}

// Println writes a line to the output.
func (p *Printer) Println(args ...any) {
	mustWrite(fmt.Fprintln(p.w, args...))
}

// WriteJSON writes data as indented JSON. Template text keeps '<', '>' and
// '&' unescaped.
func (p *Printer) WriteJSON(data any) error {
	enc := json.NewEncoder(p.w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(data); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// ErrorJSON returns {"error": message, "code": code} as JSON bytes.
func ErrorJSON(message string, code int) []byte {
	result, _ := json.Marshal(map[string]any{
		"error": message,
		"code":  code,
	})
	return result
}

// mustWrite panics if a write fails. Output goes to stdout, stderr or
// buffers, where a failed write leaves nothing sensible to report.
func mustWrite(_ int, err error) {
	if err != nil {
		panic(fmt.Sprintf("write failed: %v", err))
	}
}

// Table writes rows under bold headers, columns separated by two spaces.
// Widths are measured in terminal cells so non-ASCII subjects line up.
func (p *Printer) Table(headers []string, rows [][]string) {
	if len(headers) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	p.writeRow(headers, widths, true)
	for _, row := range rows {
		p.writeRow(row, widths, false)
	}
}

func (p *Printer) writeRow(cells []string, widths []int, header bool) {
	var line strings.Builder
	for i, cell := range cells {
		if i >= len(widths) {
			break
		}
		if i > 0 {
			line.WriteString("  ")
		}
		cell = padRight(cell, widths[i])
		if header {
			cell = p.styles.Bold.Render(cell)
		}
		line.WriteString(cell)
	}
	mustWrite(fmt.Fprintln(p.w, line.String()))
}

// Box writes content under a title. On a terminal it is drawn inside a
// rounded border; otherwise as plain text.
func (p *Printer) Box(title string, content string) {
	if !p.isTTY {
		if title != "" {
			mustWrite(fmt.Fprintf(p.w, "%s\n\n", title))
		}
		mustWrite(fmt.Fprintln(p.w, content))
		return
	}

	if title != "" {
		content = p.styles.Title.Render(title) + "\n\n" + content
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.styles.Border).
		Padding(0, 1)
	mustWrite(fmt.Fprintln(p.w, box.Render(content)))
}

// Section writes a blank line, then the title underlined.
func (p *Printer) Section(title string) {
	underline := strings.Repeat("─", lipgloss.Width(title))
	mustWrite(fmt.Fprintf(p.w, "\n%s\n%s\n", p.styles.Title.Render(title), p.styles.Dim.Render(underline)))
}

// KeyValue writes "Key: Value".
func (p *Printer) KeyValue(key string, value string) {
	mustWrite(fmt.Fprintf(p.w, "%s %s\n", p.styles.Key.Render(key+":"), value))
}

// Bullets writes each item on its own indented "- " line.
func (p *Printer) Bullets(items []string) {
	for _, item := range items {
		mustWrite(fmt.Fprintf(p.w, "  %s %s\n", p.styles.Dim.Render("-"), item))
	}
}

func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
