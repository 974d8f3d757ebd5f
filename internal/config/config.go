// Package config holds the service configuration: a yaml file with env
// overrides on top. The engine packages never read configuration
// themselves; everything is resolved here and passed in.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kimyoungjin06/MRC-running-bingo/internal/board"
	"github.com/kimyoungjin06/MRC-running-bingo/internal/draft"
)

type Config struct {
	Server    Server    `yaml:"server"`
	Season    Season    `yaml:"season"`
	Deck      Deck      `yaml:"deck"`
	Generator Generator `yaml:"generator"`
	Draft     Draft     `yaml:"draft"`
}

type Server struct {
	Port string `yaml:"port"`
}

type Season struct {
	// Seed keys the label shuffle for the running season. Opaque text;
	// hashed as-is.
	Seed string `yaml:"seed"`
	// VariantW enables the tier wild variants (intermediate 2W corner,
	// advanced 3W diagonal).
	VariantW bool `yaml:"variant_w"`
}

type Deck struct {
	// Path of the markdown deck file. Empty means the built-in
	// reference deck.
	Path string `yaml:"path"`
}

type Generator struct {
	PlacementTrials int `yaml:"placement_trials"`
}

type Draft struct {
	Mode  string  `yaml:"mode"`
	Alpha float64 `yaml:"alpha"`
}

// Default returns the season defaults used when no file is present.
func Default() Config {
	return Config{
		Server:    Server{Port: "8470"},
		Season:    Season{Seed: "2025W"},
		Generator: Generator{PlacementTrials: board.DefaultPlacementTrials},
		Draft:     Draft{Mode: string(draft.ModeWeighted), Alpha: 0.9},
	}
}

// Load reads a yaml config file over the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
