package config

import (
	"os"
	"strconv"
)

// FromEnv layers environment overrides on top of a config. Unset variables
// leave the config untouched.
func FromEnv(cfg Config) Config {
	if v := os.Getenv("MRC_PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("MRC_SEASON_SEED"); v != "" {
		cfg.Season.Seed = v
	}
	if v, ok := getEnvBool("MRC_VARIANT_W"); ok {
		cfg.Season.VariantW = v
	}
	if v := os.Getenv("MRC_DECK_PATH"); v != "" {
		cfg.Deck.Path = v
	}
	if v := getEnvInt("MRC_PLACEMENT_TRIALS"); v > 0 {
		cfg.Generator.PlacementTrials = v
	}
	if v := os.Getenv("MRC_DRAFT_MODE"); v != "" {
		cfg.Draft.Mode = v
	}
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return false, false
	}
	return b, true
}
