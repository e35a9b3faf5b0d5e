package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/gorewood/guestmail/internal/output"
)

// bodyTerminator ends multi-line body entry.
const bodyTerminator = "."

// errNoInput reports that stdin closed before an answer was read.
var errNoInput = errors.New("no input")

// prompter reads answers line by line from the command's stdin.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	return &prompter{in: bufio.NewReader(cmd.InOrStdin()), out: cmd.ErrOrStderr()}
}

// canPrompt reports whether questions can be asked: forced by a flag, or
// stdin is a terminal.
func canPrompt(cmd *cobra.Command, force bool) bool {
	return force || output.IsInteractive(cmd.InOrStdin())
}

// readLine returns one line without its line ending. A final line without
// a newline is returned as is; EOF with nothing read is errNoInput.
func (p *prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", errNoInput
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ask prints label and returns the answer exactly as typed.
func (p *prompter) ask(label string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s: ", label)
	return p.readLine()
}

// confirm asks a yes/no question. Anything but y or yes is no.
func (p *prompter) confirm(question string) bool {
	_, _ = fmt.Fprintf(p.out, "%s [y/N] ", question)
	answer, err := p.readLine()
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

// askLines reads lines until one equal to bodyTerminator and joins them with
// newlines. EOF also ends entry.
func (p *prompter) askLines(label string) (string, error) {
	_, _ = fmt.Fprintf(p.out, "%s (type '%s' on a new line when finished):\n", label, bodyTerminator)

	var lines []string
	for {
		line, err := p.readLine()
		if errors.Is(err, errNoInput) {
			break
		}
		if err != nil {
			return "", err
		}
		if line == bodyTerminator {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), nil
}

// askFields prompts for each field in order and returns the answers keyed by
// field name.
func (p *prompter) askFields(fields []string) (map[string]string, error) {
	values := make(map[string]string, len(fields))
	for _, field := range fields {
		value, err := p.ask(fieldLabel(field))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", field, err)
		}
		values[field] = value
	}
	return values, nil
}

var titleCaser = cases.Title(language.English)

// fieldLabel turns a field name into a prompt label: check_in_date becomes
// "Check In Date".
func fieldLabel(field string) string {
	return titleCaser.String(strings.TrimSpace(strings.ReplaceAll(field, "_", " ")))
}
