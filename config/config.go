// Package config loads dipscore's TOML configuration file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"dipscore/scoring"
)

// Defaults names the scoring systems used when a tournament or round does
// not choose its own
type Defaults struct {
	GameScoring       string `toml:"game_scoring"`
	RoundScoring      string `toml:"round_scoring"`
	TournamentScoring string `toml:"tournament_scoring"`
}

// Config holds everything the server and CLI need to run
type Config struct {
	ListenAddr   string   `toml:"listen_addr"`
	DatabasePath string   `toml:"database_path"`
	Defaults     Defaults `toml:"defaults"`
}

// Default returns the configuration used when no file is given
func Default() Config {
	return Config{
		ListenAddr:   ":8080",
		DatabasePath: "dipscore.db",
		Defaults: Defaults{
			GameScoring:       "Sum of Squares",
			RoundScoring:      "Best game counts",
			TournamentScoring: "Sum best 2 rounds",
		},
	}
}

// Load reads the TOML file at path on top of the defaults. Unknown scoring
// system names are rejected here rather than surfacing later mid-tournament.
func Load(path string) (Config, error) {
	cfg := Default()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("loading config %s: unknown key %q", path, undecoded[0])
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("loading config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that the named scoring systems are registered
func (c Config) Validate() error {
	if c.ListenAddr == "" {
		return fmt.Errorf("listen_addr must not be empty")
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("database_path must not be empty")
	}
	if _, err := scoring.GameSystem(c.Defaults.GameScoring); err != nil {
		return fmt.Errorf("defaults.game_scoring: %w", err)
	}
	if _, err := scoring.RoundSystem(c.Defaults.RoundScoring); err != nil {
		return fmt.Errorf("defaults.round_scoring: %w", err)
	}
	if _, err := scoring.TournamentSystem(c.Defaults.TournamentScoring); err != nil {
		return fmt.Errorf("defaults.tournament_scoring: %w", err)
	}
	return nil
}
