// Package config loads mimic's run configuration from a TOML file,
// following the same FillDefaults/Validate shape the teacher's server
// config uses.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// DefaultBufferSize matches the reference lexer's twin-buffer width.
const DefaultBufferSize = 512

// Config is mimic's run configuration.
type Config struct {
	// BufferSize is the size of each half of the lexer's twin buffer.
	BufferSize int `toml:"buffer_size"`

	// HistoryDB is the path to the sqlite database used to persist run
	// history. FillDefaults sets it to "mimic_history.db" when empty.
	HistoryDB string `toml:"history_db"`

	// ServeAddr is the bind address the read-only HTTP API listens on.
	ServeAddr string `toml:"serve_addr"`

	// ArtifactDir is where first/follow/parse-table/tree dumps are written.
	ArtifactDir string `toml:"artifact_dir"`
}

// Load reads and parses a TOML config file at path.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return cfg, nil
}

// FillDefaults returns a copy of cfg with unset fields set to their
// defaults.
func (cfg Config) FillDefaults() Config {
	newCfg := cfg

	if newCfg.BufferSize == 0 {
		newCfg.BufferSize = DefaultBufferSize
	}
	if newCfg.HistoryDB == "" {
		newCfg.HistoryDB = "mimic_history.db"
	}
	if newCfg.ServeAddr == "" {
		newCfg.ServeAddr = ":8080"
	}
	if newCfg.ArtifactDir == "" {
		newCfg.ArtifactDir = "."
	}

	return newCfg
}

// Validate returns an error if cfg has invalid field values. Call it on the
// result of FillDefaults if defaults are meant to be used.
func (cfg Config) Validate() error {
	if cfg.BufferSize < 1 {
		return fmt.Errorf("buffer_size: must be positive, is %d", cfg.BufferSize)
	}
	if cfg.ArtifactDir != "" {
		if info, err := os.Stat(cfg.ArtifactDir); err == nil && !info.IsDir() {
			return fmt.Errorf("artifact_dir: %q is not a directory", cfg.ArtifactDir)
		}
	}
	return nil
}
