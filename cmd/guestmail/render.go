package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gorewood/guestmail/internal/export"
	"github.com/gorewood/guestmail/internal/logging"
	"github.com/gorewood/guestmail/internal/output"
	"github.com/gorewood/guestmail/internal/render"
	"github.com/gorewood/guestmail/internal/templates"
)

// renderFlags holds the render command's options.
type renderFlags struct {
	sets     []string
	varsFile string
	out      string
	format   string
	prompt   bool
}

// renderResult is the structured form of a rendered email.
type renderResult struct {
	Template string `json:"template"`
	To       string `json:"to"`
	Subject  string `json:"subject"`
	Body     string `json:"body"`
	SavedTo  string `json:"saved_to,omitempty"`
}

// newRenderCmd creates the render command.
func newRenderCmd() *cobra.Command {
	return newRenderCmdInternal(nil)
}

// newRenderCmdInternal creates the render command with optional store injection.
func newRenderCmdInternal(store *templates.Store) *cobra.Command {
	var flags renderFlags

	cmd := &cobra.Command{
		Use:     "render <template>",
		Aliases: []string{"generate"},
		Short:   "Render an email from a template and guest details",
		Long: `Render an email from a template and guest details.

Guest details come from --vars (a YAML or JSON mapping of field to value)
and --set field=value, with --set winning. Fields still missing are asked
for interactively when stdin is a terminal (or with --prompt); otherwise
the command fails listing every missing field.

guest_email, when given, becomes the To address.

Examples:
  guestmail render checkout_reminder --vars guest.yaml
  guestmail render booking_confirmation --set guest_name=Ana --set hotel_name='Sea View'
  guestmail render feedback_request --vars guest.yaml --out email.txt
  guestmail render feedback_request --vars guest.yaml --out email.json --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, store, args[0], flags)
		},
	}

	cmd.Flags().StringArrayVar(&flags.sets, "set", nil, "Guest detail as field=value (repeatable)")
	cmd.Flags().StringVar(&flags.varsFile, "vars", "", "YAML or JSON file of guest details")
	cmd.Flags().StringVarP(&flags.out, "out", "o", "", "Save the email to this file")
	cmd.Flags().StringVar(&flags.format, "format", "txt", "File format for --out: "+strings.Join(export.Formats(), ", "))
	cmd.Flags().BoolVar(&flags.prompt, "prompt", false, "Prompt for missing fields even when stdin is not a terminal")

	return cmd
}

func runRender(cmd *cobra.Command, store *templates.Store, name string, flags renderFlags) error {
	printer := newPrinter(cmd)

	format, err := export.ParseFormat(flags.format)
	if err != nil {
		return fail(printer, err)
	}

	values, err := collectValues(flags)
	if err != nil {
		return fail(printer, err)
	}

	store, err = openStore(cmd, store)
	if err != nil {
		printer.Error(err)
		return err
	}

	tmpl, err := store.Get(name)
	if err != nil {
		return fail(printer, err)
	}

	if missing := render.MissingFields(tmpl, values); len(missing) > 0 && canPrompt(cmd, flags.prompt) && !printer.IsJSON() {
		answers, err := newPrompter(cmd).askFields(missing)
		if err != nil {
			return fail(printer, output.NewUserError(err.Error()))
		}
		for field, value := range answers {
			values[field] = value
		}
	}

	email, err := render.Render(tmpl, values)
	if err != nil {
		return fail(printer, err)
	}

	result := renderResult{Template: name, To: email.To, Subject: email.Subject, Body: email.Body}
	if flags.out != "" {
		if err := export.WriteFile(flags.out, email, format); err != nil {
			return fail(printer, err)
		}
		result.SavedTo = flags.out
		logger := logging.Component("cli")
		logger.Info().Str("template", name).Str("path", flags.out).Msg("email saved")
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	outputRenderHuman(printer, result)
	return nil
}

// collectValues merges the vars file and --set pairs, --set last.
func collectValues(flags renderFlags) (map[string]string, error) {
	values := make(map[string]string)

	if flags.varsFile != "" {
		fromFile, err := readVarsFile(flags.varsFile)
		if err != nil {
			return nil, err
		}
		for key, value := range fromFile {
			values[key] = value
		}
	}

	for _, pair := range flags.sets {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || !render.IsIdentifier(key) {
			return nil, output.NewUserError(fmt.Sprintf("invalid --set %q: use field=value", pair))
		}
		values[key] = value
	}

	return values, nil
}

// readVarsFile parses a flat mapping of field names to scalar values. JSON
// is accepted as YAML. Null values become empty strings.
func readVarsFile(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, output.NewUserError("cannot read vars file: " + err.Error())
	}

	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, output.NewUserError(fmt.Sprintf("cannot parse vars file %s: %v", path, err))
	}

	values := make(map[string]string, len(doc))
	keys := make([]string, 0, len(doc))
	for key := range doc {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		node := doc[key]
		if node.Kind != yaml.ScalarNode {
			return nil, output.NewUserError(fmt.Sprintf("vars file %s: value for %q must be a plain value", path, key))
		}
		if node.Tag == "!!null" {
			values[key] = ""
			continue
		}
		values[key] = node.Value
	}
	return values, nil
}

func outputRenderHuman(printer *output.Printer, result renderResult) {
	if result.SavedTo != "" {
		_ = printer.Success(map[string]any{"message": "Email saved to " + result.SavedTo})
		return
	}

	printer.KeyValue("To", result.To)
	printer.KeyValue("Subject", result.Subject)
	printer.Println()
	printer.Print("%s", result.Body)
	if !strings.HasSuffix(result.Body, "\n") {
		printer.Println()
	}
}
