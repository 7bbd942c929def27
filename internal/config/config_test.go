package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadAndResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	body := `{
		"source_dir": "/assets/marines",
		"max_texture_size": 1024,
		"log_level": "debug"
	}`
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	cfg.Resolve(Flags{})

	if cfg.SourceDir != "/assets/marines" {
		t.Errorf("SourceDir = %q", cfg.SourceDir)
	}
	if cfg.TextureDir != "/assets/marines" {
		t.Errorf("TextureDir = %q, want source dir default", cfg.TextureDir)
	}
	if want := filepath.Join("/assets/marines", "retextured"); cfg.OutputDir != want {
		t.Errorf("OutputDir = %q, want %q", cfg.OutputDir, want)
	}
	if cfg.MaxTextureSize != 1024 {
		t.Errorf("MaxTextureSize = %d, want 1024", cfg.MaxTextureSize)
	}
	if cfg.Workers != runtime.NumCPU() {
		t.Errorf("Workers = %d, want NumCPU", cfg.Workers)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
}

func TestFlagsOverrideConfig(t *testing.T) {
	cfg := Config{SourceDir: "/from-file", Workers: 2, LogLevel: "warn"}
	cfg.Resolve(Flags{SourceDir: "/from-flag", Workers: 8, Level: "southern-ice"})

	if cfg.SourceDir != "/from-flag" {
		t.Errorf("SourceDir = %q, want flag value", cfg.SourceDir)
	}
	if cfg.Workers != 8 {
		t.Errorf("Workers = %d, want 8", cfg.Workers)
	}
	if cfg.Level != "southern-ice" {
		t.Errorf("Level = %q, want southern-ice", cfg.Level)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn (unchanged)", cfg.LogLevel)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Load(missing) = nil error")
	}
}
