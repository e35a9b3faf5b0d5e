package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/guestmail/internal/render"
	"github.com/gorewood/guestmail/internal/templates"
)

// newFieldsCmd creates the fields command.
func newFieldsCmd() *cobra.Command {
	return newFieldsCmdInternal(nil)
}

// newFieldsCmdInternal creates the fields command with optional store injection.
func newFieldsCmdInternal(store *templates.Store) *cobra.Command {
	return &cobra.Command{
		Use:   "fields <template>",
		Short: "List the guest details a template needs",
		Long: `List the fields a template references, sorted by name, one per line.

Examples:
  guestmail fields booking_confirmation
  guestmail fields booking_confirmation --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFields(cmd, store, args[0])
		},
	}
}

func runFields(cmd *cobra.Command, store *templates.Store, name string) error {
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
	fields := nonNilFields(render.RequiredFields(tmpl))

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"name": tmpl.Name, "fields": fields})
	}

	for _, field := range fields {
		printer.Println(field)
	}
	return nil
}
