package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/guestmail/internal/output"
	"github.com/gorewood/guestmail/internal/templates"
)

// newDeleteCmd creates the delete command.
func newDeleteCmd() *cobra.Command {
	return newDeleteCmdInternal(nil)
}

// newDeleteCmdInternal creates the delete command with optional store injection.
func newDeleteCmdInternal(store *templates.Store) *cobra.Command {
	var force, prompt bool

	cmd := &cobra.Command{
		Use:     "delete <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a template",
		Long: `Delete a template and its stored file. Asks for confirmation unless
--force or --json is given. Without a terminal to ask on, --force is
required.

Examples:
  guestmail delete greeting
  guestmail delete greeting --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(cmd, store, args[0], force, prompt)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Skip the confirmation prompt")
	cmd.Flags().BoolVar(&prompt, "prompt", false, "Ask for confirmation even when stdin is not a terminal")

	return cmd
}

func runDelete(cmd *cobra.Command, store *templates.Store, name string, force, prompt bool) error {
	printer := newPrinter(cmd)

	store, err := openStore(cmd, store)
	if err != nil {
		printer.Error(err)
		return err
	}

	if !store.Has(name) {
		return fail(printer, &templates.NotFoundError{Name: name})
	}

	if !force && !printer.IsJSON() {
		if !canPrompt(cmd, prompt) {
			return fail(printer, output.NewUserError("cannot confirm deletion without a terminal: use --force to delete non-interactively"))
		}
		if !newPrompter(cmd).confirm("Delete template '" + name + "'?") {
			printer.Println("Cancelled.")
			return nil
		}
	}

	if _, err := store.Delete(name); err != nil {
		return fail(printer, err)
	}

	return printer.Success(map[string]any{
		"status":  "deleted",
		"name":    name,
		"message": "Template '" + name + "' deleted",
	})
}
