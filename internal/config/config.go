// Package config provides program configuration for the chess front ends.
//
// A Config starts from NewConfig's defaults, is overlaid by the optional
// JSON file chess-rules/config.json found through the XDG config search
// path, and finally by command-line flags.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/snapshot"
)

// File is the config file location relative to the XDG config directories.
const File = "chess-rules/config.json"

// Verbosity levels for diagnostics written to LogFile.
const (
	Silent     = 0 // nothing
	GameEvents = 1 // restores, promotions, game over
	Commentary = 2 // every refused move and why
)

// Config holds all program configuration.
type Config struct {
	Verbosity int `json:"verbosity"`

	// LogPath names a file diagnostics are appended to; empty means LogFile
	// is used as is.
	LogPath string    `json:"log_file,omitempty"`
	LogFile io.Writer `json:"-"`

	// SaveFile is where the game is saved and loaded; empty means the XDG
	// data file.
	SaveFile string `json:"save_file,omitempty"`
	Autosave bool   `json:"autosave"`

	Theme Theme `json:"theme"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity: GameEvents,
		LogFile:   os.Stderr,
		Autosave:  true,
		Theme:     DefaultTheme(),
	}
}

// Load builds a Config from defaults overlaid by the JSON file at path.
func Load(path string) (*Config, error) {
	cfg := NewConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "%s: %v", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadDefault searches the XDG config directories for File and loads it.
// Without a config file the defaults are returned.
func LoadDefault() (*Config, error) {
	path, err := xdg.SearchConfigFile(File)
	if err != nil {
		return NewConfig(), nil
	}
	return Load(path)
}

// Save writes the config as indented JSON to path.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0664)
}

// DefaultPath returns the path Save should write to under the XDG config
// home.
func DefaultPath() (string, error) {
	return xdg.ConfigFile(File)
}

// SavePath resolves the save file location.
func (c *Config) SavePath() (string, error) {
	if c.SaveFile != "" {
		return c.SaveFile, nil
	}
	return snapshot.DefaultPath()
}

// OpenLog opens LogPath for appending and installs it as LogFile. The
// returned function closes it. Without a LogPath it is a no-op.
func (c *Config) OpenLog() (func() error, error) {
	if c.LogPath == "" {
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	c.LogFile = f
	return f.Close, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Verbosity < Silent || c.Verbosity > Commentary {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d not in %d..%d", c.Verbosity, Silent, Commentary)
	}
	return c.Theme.Validate()
}
