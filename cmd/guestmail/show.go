package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/gorewood/guestmail/internal/output"
	"github.com/gorewood/guestmail/internal/render"
	"github.com/gorewood/guestmail/internal/templates"
)

// showResult is the structured form of a template with its fields.
type showResult struct {
	Name    string   `json:"name"`
	Subject string   `json:"subject"`
	Body    string   `json:"body"`
	Fields  []string `json:"fields"`
}

// newShowCmd creates the show command.
func newShowCmd() *cobra.Command {
	return newShowCmdInternal(nil)
}

// newShowCmdInternal creates the show command with optional store injection.
func newShowCmdInternal(store *templates.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "show <template>",
		Short: "Display a template and its required fields",
		Long: `Display a template's subject and body patterns and the guest details it needs.

Examples:
  guestmail show booking_confirmation
  guestmail show booking_confirmation --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, store, args[0])
		},
	}
}

func runShow(cmd *cobra.Command, store *templates.Store, name string) error {
	printer := newPrinter(cmd)

	store, err := openStore(cmd, store)
	if err != nil {
		printer.Error(err)
		return err
	}

	tmpl, err := store.Get(name)
	if err != nil {
		return fail(printer, err)
	}

	result := showResult{
		Name:    tmpl.Name,
		Subject: tmpl.Subject,
		Body:    tmpl.Body,
		Fields:  nonNilFields(render.RequiredFields(tmpl)),
	}

	if printer.IsJSON() {
		return printer.WriteJSON(result)
	}

	outputShowHuman(printer, result)
	return nil
}

func outputShowHuman(printer *output.Printer, result showResult) {
	printer.Box(result.Name, strings.TrimRight(result.Body, "\n"))
	printer.KeyValue("Subject", result.Subject)
	printer.Section("Required Fields")
	if len(result.Fields) == 0 {
		printer.Println("(none)")
		return
	}
	printer.Bullets(result.Fields)
}
