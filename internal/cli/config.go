package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/osmtools/phonelint/internal/phonediff"
)

// Config is phonelint's configuration, loaded from TOML. A global
// ~/.phonelint/config.toml is read first; a ./phonelint.toml in the working
// directory overrides it.
type Config struct {
	// Region is the default region (ISO 3166-1 alpha-2, e.g. "BE") assumed
	// for numbers written without a country code.
	Region string `toml:"region"`

	// Locale is a BCP 47 tag; it selects the separator profile (German
	// locales keep '/' inside numbers).
	Locale string `toml:"locale"`

	// Profile names a separator profile explicitly ("default" or
	// "no-slash") and takes precedence over Locale.
	Profile string `toml:"profile"`
}

func configPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".phonelint", "config.toml"))
	}
	paths = append(paths, "phonelint.toml")
	return paths
}

func loadConfig() (Config, error) {
	var cfg Config
	for _, path := range configPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", path, err)
		}
	}
	return cfg, nil
}

// separatorProfile resolves the profile from the --profile flag, then the
// config's explicit profile, then its locale, in that order.
func separatorProfile(cmd *cobra.Command, cfg Config) (phonediff.Profile, error) {
	name, _ := cmd.Flags().GetString("profile")
	if name == "" {
		name = cfg.Profile
	}
	if name != "" {
		p, ok := phonediff.ProfileByName(name)
		if !ok {
			return phonediff.Profile{}, fmt.Errorf("unknown separator profile %q", name)
		}
		return p, nil
	}
	if cfg.Locale != "" {
		tag, err := language.Parse(cfg.Locale)
		if err != nil {
			return phonediff.Profile{}, fmt.Errorf("parse locale %q: %w", cfg.Locale, err)
		}
		return phonediff.ProfileForTag(tag), nil
	}
	return phonediff.DefaultProfile, nil
}
