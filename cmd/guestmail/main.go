// Package main provides the entry point for the guestmail CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/gorewood/guestmail/internal/config"
	"github.com/gorewood/guestmail/internal/envfile"
	"github.com/gorewood/guestmail/internal/logging"
	"github.com/gorewood/guestmail/internal/output"
)

// Build info set via ldflags at build time by goreleaser.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// isJSONMode reads the --json persistent flag from the command hierarchy.
func isJSONMode(cmd *cobra.Command) bool {
	flag := cmd.Flags().Lookup("json")
	if flag == nil {
		flag = cmd.Root().PersistentFlags().Lookup("json")
	}
	return flag != nil && flag.Value.String() == "true"
}

// buildVersion returns the full version string including commit and date.
func buildVersion() string {
	if commit == "none" && date == "unknown" {
		return version
	}
	shortCommit := commit
	if len(commit) > 7 {
		shortCommit = commit[:7]
	}
	return fmt.Sprintf("%s (%s, %s)", version, shortCommit, date)
}

func main() {
	code := run()
	os.Exit(code)
}

func run() int {
	cmd := newRootCmd()
	err := fang.Execute(context.Background(), cmd, fang.WithVersion(buildVersion()))
	return output.GetExitCode(err)
}

// newRootCmd creates the root command for the guestmail CLI.
func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "guestmail",
		Short: "Generate guest emails from reusable templates",
		Long: `guestmail - Generate hotel guest emails from named templates.

Templates have a subject and a body with $field or ${field} placeholders.
guestmail lists the fields a template needs, collects guest details from
flags, a vars file or interactive prompts, and renders the final email.

Templates are stored one JSON file per template. The first run creates the
template directory and seeds five defaults:
  booking_confirmation, inquiry_response, special_request,
  checkout_reminder, feedback_request

All commands support --json for structured output.`,
		Version:       buildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if isJSONMode(cmd) {
				printer := output.NewPrinter(cmd.OutOrStdout(), true, false)
				err := output.NewUserError("no command specified. Run 'guestmail --help' for usage")
				printer.Error(err)
				return err
			}
			return cmd.Help()
		},
	}

	// Env files first so GUESTMAIL_* values in them feed the config layer.
	// Environment variables always take precedence over file values.
	cmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		loadEnvFiles()
		return setupSettings(cmd)
	}

	cmd.PersistentFlags().Bool("json", false, "Output in JSON format")
	cmd.PersistentFlags().String("templates-dir", "", "Template directory (default: <config dir>/templates)")
	cmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error")
	cmd.PersistentFlags().String("color", "", "Color output: never, always, auto")

	lipgloss.SetHasDarkBackground(true)

	addCommandGroups(cmd)
	addCommands(cmd)

	return cmd
}

// loadEnvFiles loads env files in priority order. First match for each
// variable wins; environment variables already set always take precedence.
//
// Resolution order:
//  1. $CWD/.env.local
//  2. $CWD/.env
//  3. ~/.config/guestmail/env (global fallback)
func loadEnvFiles() {
	paths := []string{".env.local", ".env"}
	if dir := config.Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "env"))
	}
	if err := envfile.LoadAll(paths...); err != nil {
		logger := logging.Component("cli")
		logger.Warn().Err(err).Msg("env file not loaded")
	}
}

// addCommandGroups defines the command groups for help output.
func addCommandGroups(cmd *cobra.Command) {
	cmd.AddGroup(&cobra.Group{ID: "email", Title: "Email Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "templates", Title: "Template Commands:"})
	cmd.AddGroup(&cobra.Group{ID: "agent", Title: "Agent Commands:"})
}

// addCommands adds all subcommands with their group assignments.
func addCommands(cmd *cobra.Command) {
	addGroupedCommand(cmd, newRenderCmd(), "email")
	addGroupedCommand(cmd, newFieldsCmd(), "email")

	addGroupedCommand(cmd, newListCmd(), "templates")
	addGroupedCommand(cmd, newShowCmd(), "templates")
	addGroupedCommand(cmd, newAddCmd(), "templates")
	addGroupedCommand(cmd, newUpdateCmd(), "templates")
	addGroupedCommand(cmd, newDeleteCmd(), "templates")

	addGroupedCommand(cmd, newServeCmd(), "agent")
}

// addGroupedCommand adds a subcommand with a group assignment.
func addGroupedCommand(parent *cobra.Command, child *cobra.Command, groupID string) {
	child.GroupID = groupID
	parent.AddCommand(child)
}
