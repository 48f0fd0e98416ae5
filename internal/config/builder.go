package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// From starts the builder from an existing Config, such as one read from
// the config file. The Config is modified in place.
func From(cfg *Config) *ConfigBuilder {
	return &ConfigBuilder{cfg: cfg}
}

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithLogPath sets the file diagnostics are appended to.
func (b *ConfigBuilder) WithLogPath(path string) *ConfigBuilder {
	b.cfg.LogPath = path
	return b
}

// WithSaveFile sets the save file location.
func (b *ConfigBuilder) WithSaveFile(path string) *ConfigBuilder {
	b.cfg.SaveFile = path
	return b
}

// WithAutosave controls saving on quit.
func (b *ConfigBuilder) WithAutosave(enabled bool) *ConfigBuilder {
	b.cfg.Autosave = enabled
	return b
}

// WithGlyphs sets the piece symbols.
func (b *ConfigBuilder) WithGlyphs(g Glyphs) *ConfigBuilder {
	b.cfg.Theme.Glyphs = g
	return b
}
