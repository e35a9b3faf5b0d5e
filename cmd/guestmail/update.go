package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/guestmail/internal/output"
	"github.com/gorewood/guestmail/internal/templates"
)

// newUpdateCmd creates the update command.
func newUpdateCmd() *cobra.Command {
	return newUpdateCmdInternal(nil)
}

// newUpdateCmdInternal creates the update command with optional store injection.
func newUpdateCmdInternal(store *templates.Store) *cobra.Command {
	var (
		subject string
		body    bodyFlags
	)

	cmd := &cobra.Command{
		Use:   "update <name>",
		Short: "Change a template's subject, body, or both",
		Long: `Change a template's subject, body, or both. Parts you do not pass are kept.

Examples:
  guestmail update greeting --subject 'Hello $guest_name'
  guestmail update greeting --body-file greeting.txt
  cat body.txt | guestmail update greeting --body-file -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUpdate(cmd, store, args[0], subject, &body)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "New subject pattern")
	body.register(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, store *templates.Store, name, subject string, body *bodyFlags) error {
	printer := newPrinter(cmd)

	var patch templates.Patch
	if cmd.Flags().Changed("subject") {
		patch.Subject = &subject
	}
	bodyText, err := body.resolve(cmd)
	if err != nil {
		return fail(printer, err)
	}
	patch.Body = bodyText

	if patch.IsEmpty() {
		return fail(printer, output.NewUserError("nothing to update: pass --subject, --body or --body-file"))
	}

	store, err = openStore(cmd, store)
	if err != nil {
		printer.Error(err)
		return err
	}

	if _, err := store.Update(name, patch); err != nil {
		return fail(printer, err)
	}

	return printer.Success(map[string]any{
		"status":          "updated",
		"name":            name,
		"subject_changed": patch.Subject != nil,
		"body_changed":    patch.Body != nil,
		"message":         "Template '" + name + "' updated",
	})
}
