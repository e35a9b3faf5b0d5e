package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/gorewood/guestmail/internal/config"
	"github.com/gorewood/guestmail/internal/logging"
	"github.com/gorewood/guestmail/internal/output"
	"github.com/gorewood/guestmail/internal/templates"
)

type settingsKey struct{}

// flagBindings maps config keys to the root persistent flags that override
// them.
var flagBindings = map[string]string{
	config.KeyTemplatesDir: "templates-dir",
	config.KeyLogLevel:     "log-level",
	config.KeyColor:        "color",
}

// setupSettings resolves configuration, installs the logger and stores the
// settings on the command context for the command about to run.
func setupSettings(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		exitErr := output.NewUserError(err.Error())
		newPrinter(cmd).Error(exitErr)
		return exitErr
	}

	colorOn := output.ResolveColorMode(cfg.Color, output.IsTTY(cmd.ErrOrStderr()))
	if err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel, colorOn); err != nil {
		exitErr := output.NewUserError(err.Error())
		newPrinter(cmd).Error(exitErr)
		return exitErr
	}

	logger := logging.Component("cli")
	logger.Debug().
		Str("templates_dir", cfg.TemplatesDir).
		Str("log_level", cfg.LogLevel).
		Msg("configuration resolved")

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(context.WithValue(ctx, settingsKey{}, cfg))
	return nil
}

// loadConfig merges defaults, config file, environment and root flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := config.NewViper()
	flags := cmd.Root().PersistentFlags()
	for key, name := range flagBindings {
		if flag := flags.Lookup(name); flag != nil && flag.Changed {
			v.Set(key, flag.Value.String())
		}
	}
	return config.FromViper(v)
}

// settingsFrom returns the settings resolved for cmd, or nil when the
// command runs outside the root command.
func settingsFrom(cmd *cobra.Command) *config.Config {
	if ctx := cmd.Context(); ctx != nil {
		if cfg, ok := ctx.Value(settingsKey{}).(*config.Config); ok {
			return cfg
		}
	}
	return nil
}

// newPrinter builds the printer for cmd, honoring --json and --color.
func newPrinter(cmd *cobra.Command) *output.Printer {
	colorMode := "auto"
	if cfg := settingsFrom(cmd); cfg != nil {
		colorMode = cfg.Color
	}
	isTTY := output.ResolveColorMode(colorMode, output.IsTTY(cmd.OutOrStdout()))
	return output.NewPrinter(cmd.OutOrStdout(), isJSONMode(cmd), isTTY).WithStderr(cmd.ErrOrStderr())
}

// openStore returns store if one was injected, otherwise opens the
// configured template directory.
func openStore(cmd *cobra.Command, store *templates.Store) (*templates.Store, error) {
	if store != nil {
		return store, nil
	}

	dir := config.DefaultTemplatesDir()
	if cfg := settingsFrom(cmd); cfg != nil {
		dir = cfg.TemplatesDir
	}

	opened, err := templates.Open(dir, logging.Component("templates"))
	if err != nil {
		return nil, toExitError(err)
	}
	return opened, nil
}
