// Package config loads search tuning from an optional YAML file, using
// viper per call rather than a package-global instance — the same
// "viper.New() per invocation" pattern used for loading training configs
// elsewhere in this dependency's ecosystem, since a long-lived global
// instance doesn't compose well across multiple independent config files.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// SearchConfig tunes one planner invocation: the search method, the wall
// clock timeout, the frontier/arena initial capacity hint, the log level and
// the closed-set key mode. cmd/planner lets CLI flags override the timeout
// and the log level; it does not use Method, since its positional method
// argument always selects the search.
type SearchConfig struct {
	Method          string `mapstructure:"method"`
	TimeoutSeconds  int    `mapstructure:"timeout_seconds"`
	InitialCapacity int    `mapstructure:"initial_capacity"`
	LogLevel        string `mapstructure:"log_level"`
	LossyClosedSet  bool   `mapstructure:"lossy_closed_set"`
}

// Default returns the built-in defaults, used when no config file is given
// and no flag overrides a field. TimeoutSeconds mirrors
// original_source/planner.c's literal TIMEOUT constant.
func Default() SearchConfig {
	return SearchConfig{
		Method:          "astar",
		TimeoutSeconds:  600,
		InitialCapacity: 1000,
		LogLevel:        "info",
		LossyClosedSet:  false,
	}
}

// Timeout converts TimeoutSeconds to a time.Duration.
func (c SearchConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Load reads path as a YAML config file and returns a SearchConfig layered
// over Default(): any field absent from the file keeps its default value.
func Load(path string) (SearchConfig, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	vp := viper.New()
	vp.SetConfigFile(path)
	vp.SetConfigType("yaml")

	vp.SetDefault("method", cfg.Method)
	vp.SetDefault("timeout_seconds", cfg.TimeoutSeconds)
	vp.SetDefault("initial_capacity", cfg.InitialCapacity)
	vp.SetDefault("log_level", cfg.LogLevel)
	vp.SetDefault("lossy_closed_set", cfg.LossyClosedSet)

	if err := vp.ReadInConfig(); err != nil {
		return SearchConfig{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := vp.Unmarshal(&cfg); err != nil {
		return SearchConfig{}, fmt.Errorf("config: decoding %s: %w", path, err)
	}
	return cfg, nil
}
