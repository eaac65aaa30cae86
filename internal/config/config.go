// Package config loads refdoc settings from refdoc.toml and REFDOC_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/agentflare-ai/refdoc/internal/extract"
)

// Config holds the generator settings.
type Config struct {
	// Project prefixes headings; empty means the documented program name.
	Project string `mapstructure:"project"`
	// Version is printed in the API reference.
	Version string `mapstructure:"version"`
	// Output is the directory holding api.md and cli.md.
	Output string `mapstructure:"output"`
	// Root is the Go package tree documented as the library.
	Root            string   `mapstructure:"root"`
	Exclude         []string `mapstructure:"exclude"`
	Trailing        []string `mapstructure:"trailing"`
	IncludeInternal bool     `mapstructure:"include_internal"`
}

func newViper(fs afero.Fs, path string) *viper.Viper {
	v := viper.New()
	v.SetFs(fs)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("refdoc")
		v.SetConfigType("toml")
		v.AddConfigPath(".")
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			v.AddConfigPath(filepath.Join(xdg, "refdoc"))
		} else if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "refdoc"))
		}
	}

	v.SetDefault("project", "")
	v.SetDefault("version", "dev")
	v.SetDefault("output", "docs")
	v.SetDefault("root", ".")
	v.SetDefault("exclude", extract.DefaultOptions.Exclude)
	v.SetDefault("trailing", extract.DefaultOptions.Trailing)
	v.SetDefault("include_internal", false)

	v.SetEnvPrefix("REFDOC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the config file at path, or searches for refdoc.toml in the
// working directory and the user config directory when path is empty. A
// missing file is not an error unless path names it explicitly.
func Load(fs afero.Fs, path string) (*Config, error) {
	v := newViper(fs, path)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToSliceHookFunc(","),
		WeaklyTypedInput: true,
		Result:           &cfg,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(v.AllSettings()); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
