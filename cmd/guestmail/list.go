package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/gorewood/guestmail/internal/output"
	"github.com/gorewood/guestmail/internal/render"
	"github.com/gorewood/guestmail/internal/templates"
)

// listItem is one template in list output.
type listItem struct {
	Name    string   `json:"name"`
	Subject string   `json:"subject"`
	Fields  []string `json:"fields"`
}

// newListCmd creates the list command.
func newListCmd() *cobra.Command {
	return newListCmdInternal(nil)
}

// newListCmdInternal creates the list command with optional store injection.
func newListCmdInternal(store *templates.Store) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List available templates",
		Long: `List every template with its field count and subject pattern.

Examples:
  guestmail list          # Table of templates
  guestmail list --json   # Templates with their required fields`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runList(cmd, store)
		},
	}
}

func runList(cmd *cobra.Command, store *templates.Store) error {
	printer := newPrinter(cmd)

	store, err := openStore(cmd, store)
	if err != nil {
		printer.Error(err)
		return err
	}

	items := make([]listItem, 0, store.Len())
	for _, name := range store.Names() {
		tmpl, err := store.Get(name)
		if err != nil {
			return fail(printer, err)
		}
		items = append(items, listItem{
			Name:    tmpl.Name,
			Subject: tmpl.Subject,
			Fields:  nonNilFields(render.RequiredFields(tmpl)),
		})
	}

	if printer.IsJSON() {
		return printer.WriteJSON(map[string]any{"count": len(items), "templates": items})
	}

	outputListHuman(printer, items)
	return nil
}

func outputListHuman(printer *output.Printer, items []listItem) {
	if len(items) == 0 {
		printer.Println("No templates available. Add one with 'guestmail add'.")
		return
	}

	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Name, strconv.Itoa(len(item.Fields)), item.Subject})
	}
	printer.Table([]string{"NAME", "FIELDS", "SUBJECT"}, rows)
}

// nonNilFields keeps empty field lists encoding as [] rather than null.
func nonNilFields(fields []string) []string {
	if fields == nil {
		return []string{}
	}
	return fields
}
