package main

import (
	"github.com/spf13/cobra"

	"github.com/gorewood/guestmail/internal/output"
	"github.com/gorewood/guestmail/internal/render"
	"github.com/gorewood/guestmail/internal/templates"
)

// newAddCmd creates the add command.
func newAddCmd() *cobra.Command {
	return newAddCmdInternal(nil)
}

// newAddCmdInternal creates the add command with optional store injection.
func newAddCmdInternal(store *templates.Store) *cobra.Command {
	var (
		subject string
		body    bodyFlags
		prompt  bool
	)

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new template",
		Long: `Create a new template. Names use lowercase letters, digits and underscores
and may not start with a digit. Use $field or ${field} for guest details.

Without --body or --body-file, the body is read interactively until a line
containing only '.'.

Examples:
  guestmail add welcome --subject 'Welcome, $guest_name' --body 'Hello $guest_name!'
  guestmail add late_arrival --subject 'Late arrival' --body-file late.txt
  guestmail add late_arrival --subject 'Late arrival'        # type the body`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, store, args[0], subject, &body, prompt)
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "Subject pattern")
	body.register(cmd)
	cmd.Flags().BoolVar(&prompt, "prompt", false, "Read the body from stdin lines even when stdin is not a terminal")

	return cmd
}

func runAdd(cmd *cobra.Command, store *templates.Store, name, subject string, body *bodyFlags, prompt bool) error {
	printer := newPrinter(cmd)

	if !cmd.Flags().Changed("subject") {
		return fail(printer, output.NewUserError("missing required flag: --subject"))
	}
	if !templates.ValidName(name) {
		return fail(printer, &templates.InvalidNameError{Name: name})
	}

	bodyText, err := body.resolve(cmd)
	if err != nil {
		return fail(printer, err)
	}
	if bodyText == nil {
		if !canPrompt(cmd, prompt) {
			return fail(printer, output.NewUserError("specify --body or --body-file"))
		}
		text, err := newPrompter(cmd).askLines("Body")
		if err != nil {
			return fail(printer, output.NewUserError("reading body: "+err.Error()))
		}
		bodyText = &text
	}

	store, err = openStore(cmd, store)
	if err != nil {
		printer.Error(err)
		return err
	}

	if _, err := store.Add(name, subject, *bodyText); err != nil {
		return fail(printer, err)
	}

	tmpl, err := store.Get(name)
	if err != nil {
		return fail(printer, err)
	}
	fields := nonNilFields(render.RequiredFields(tmpl))

	if printer.IsJSON() {
		return printer.Success(map[string]any{"status": "created", "name": name, "fields": fields})
	}

	if err := printer.Success(map[string]any{"message": "Template '" + name + "' created"}); err != nil {
		return err
	}
	printer.Section("Required Fields")
	printer.Bullets(fields)
	return nil
}
