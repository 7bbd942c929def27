package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Config holds all configurable paths and pipeline settings.
type Config struct {
	// Paths
	SourceDir  string `json:"source_dir"`
	OutputDir  string `json:"output_dir"`
	TextureDir string `json:"texture_dir"` // loose textures for non-binary glTF sources

	// Pipeline settings
	Level          string `json:"level"`            // campaign level driving the manifest weathering block
	MaxTextureSize int    `json:"max_texture_size"` // 0 keeps original resolution
	Workers        int    `json:"workers"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	SourceDir      string
	OutputDir      string
	TextureDir     string
	Level          string
	MaxTextureSize int
	Workers        int
	LogLevel       string
}

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.SourceDir != "" {
		c.SourceDir = flags.SourceDir
	}
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.Level != "" {
		c.Level = flags.Level
	}
	if flags.MaxTextureSize > 0 {
		c.MaxTextureSize = flags.MaxTextureSize
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.LogLevel != "" {
		c.LogLevel = flags.LogLevel
	}

	if c.TextureDir == "" && c.SourceDir != "" {
		c.TextureDir = c.SourceDir
	}
	if c.OutputDir == "" && c.SourceDir != "" {
		c.OutputDir = filepath.Join(c.SourceDir, "retextured")
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}
