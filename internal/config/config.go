package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Setting keys shared by viper, the config file and flag bindings.
const (
	KeyTemplatesDir = "templates_dir"
	KeyLogLevel     = "log_level"
	KeyColor        = "color"
)

// EnvPrefix prefixes every environment override, e.g. GUESTMAIL_TEMPLATES_DIR.
const EnvPrefix = "GUESTMAIL"

// Config holds resolved settings.
type Config struct {
	TemplatesDir string `mapstructure:"templates_dir"`
	LogLevel     string `mapstructure:"log_level"`
	Color        string `mapstructure:"color"`
}

// NewViper returns a viper instance with defaults, environment overrides and
// the optional <Dir()>/config.yaml registered. Flags are bound by the caller.
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault(KeyTemplatesDir, DefaultTemplatesDir())
	v.SetDefault(KeyLogLevel, "warn")
	v.SetDefault(KeyColor, "auto")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if dir := Dir(); dir != "" {
		v.SetConfigFile(filepath.Join(dir, "config.yaml"))
	}
	return v
}

// FromViper reads the config file if present and decodes and validates the
// merged settings.
func FromViper(v *viper.Viper) (*Config, error) {
	if v.ConfigFileUsed() != "" {
		if err := v.ReadInConfig(); err != nil && !isMissingConfig(err) {
			return nil, fmt.Errorf("reading config %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that every setting has a usable value.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.TemplatesDir) == "" {
		return errors.New("templates_dir must not be empty")
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	switch c.Color {
	case "never", "always", "auto":
	default:
		return fmt.Errorf("invalid color %q: use never, always or auto", c.Color)
	}
	return nil
}

// isMissingConfig reports whether err means the config file does not exist.
func isMissingConfig(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist)
}
