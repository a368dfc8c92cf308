// Package config loads runtime settings from the environment.
package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the settings shared by the CLI commands. Command-line flags
// take precedence over these values.
type Config struct {
	// PacksDir is the directory holding index.json and the pack files.
	PacksDir string `env:"DUNGEONQUIZ_PACKS" envDefault:"packs"`

	// Library is the path of the SQLite pack library. When set, packs are
	// read from the library instead of PacksDir.
	Library string `env:"DUNGEONQUIZ_LIBRARY"`

	// Count is the number of questions per run.
	Count int `env:"DUNGEONQUIZ_COUNT" envDefault:"5"`

	// Kids lists the player profiles as "Name:emoji" pairs.
	Kids []string `env:"DUNGEONQUIZ_KIDS" envSeparator:"," envDefault:"Xigua:🍉,Youzi:🍊"`
}

// Kid is a player profile.
type Kid struct {
	Name  string
	Emoji string
}

func (k Kid) String() string {
	if k.Emoji == "" {
		return k.Name
	}
	return k.Emoji + " " + k.Name
}

// ParseEnv loads configuration from environment variables into target.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads Config from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the settings are usable.
func (c Config) Validate() error {
	if c.Count <= 0 {
		return fmt.Errorf("question count must be positive, got %d", c.Count)
	}
	if len(c.KidProfiles()) == 0 {
		return fmt.Errorf("at least one kid profile is required")
	}
	return nil
}

// KidProfiles parses Kids. Entries without a name are skipped.
func (c Config) KidProfiles() []Kid {
	var kids []Kid
	for _, entry := range c.Kids {
		name, emoji, _ := strings.Cut(entry, ":")
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		kids = append(kids, Kid{Name: name, Emoji: strings.TrimSpace(emoji)})
	}
	return kids
}
