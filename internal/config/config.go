// Package config loads chatblocks configuration from
// ~/.config/chatblocks/config.yaml with CHATBLOCKS_* environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Render RenderConfig `mapstructure:"render"`
	Images ImagesConfig `mapstructure:"images"`
	Theme  ThemeConfig  `mapstructure:"theme"`
}

// RenderConfig sets the defaults for the render command.
type RenderConfig struct {
	Width  int    `mapstructure:"width"`  // target terminal width
	Format string `mapstructure:"format"` // "term", "html" or "json"
}

// ImagesConfig extends the image URL heuristics of the parser.
type ImagesConfig struct {
	Domains    []string `mapstructure:"domains"`    // extra image-serving domains
	Extensions []string `mapstructure:"extensions"` // extra file extensions (with dot)
}

// ThemeConfig allows customization of UI colors.
// Colors can be ANSI color numbers (0-255) or hex codes (#RRGGBB).
type ThemeConfig struct {
	Primary   string `mapstructure:"primary"`   // accent (headers, filenames)
	Secondary string `mapstructure:"secondary"` // secondary accent (borders)
	Success   string `mapstructure:"success"`   // completed steps
	Warning   string `mapstructure:"warning"`   // clock notes
	Muted     string `mapstructure:"muted"`     // dimmed text
	Text      string `mapstructure:"text"`      // primary text
	Link      string `mapstructure:"link"`      // image URLs
}

// Dir returns the configuration directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "chatblocks"), nil
}

// Load reads configuration from disk and the environment. A missing config
// file is not an error; defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	if dir, err := Dir(); err == nil {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix("CHATBLOCKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("render.width", 100)
	v.SetDefault("render.format", "term")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}
