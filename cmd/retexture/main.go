package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"stellar-retexture/internal/batch"
	"stellar-retexture/internal/config"
	"stellar-retexture/internal/logger"
	"stellar-retexture/internal/palette"
	"stellar-retexture/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	source := flag.String("source", "", "Directory with original exported GLB files")
	output := flag.String("output", "", "Output directory for retextured marines")
	textureDir := flag.String("textures", "", "Directory with loose textures for non-binary glTF sources (default: source dir)")
	role := flag.String("role", "", "Process a single role (marine_soldier, marine_sergeant, marine_elite, marine_crusader)")
	level := flag.String("level", "", "Campaign level whose weathering palette is recorded in the manifest")
	maxTexSize := flag.Int("max-texture-size", 0, "Downsample textures larger than this (0 keeps original size)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	dryRun := flag.Bool("dry-run", false, "Preview changes without writing files")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Parse()

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		SourceDir:      *source,
		OutputDir:      *output,
		TextureDir:     *textureDir,
		Level:          *level,
		MaxTextureSize: *maxTexSize,
		Workers:        *workers,
		LogLevel:       *logLevel,
	})

	logger.Init(cfg.LogLevel, cfg.LogFile)
	defer logger.Sync()

	if cfg.SourceDir == "" {
		fmt.Fprintln(os.Stderr, "Error: no source directory. Use -source or config.json.")
		os.Exit(1)
	}
	if _, err := os.Stat(cfg.SourceDir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: source directory: %v\n", err)
		os.Exit(1)
	}

	jobs, err := batch.Jobs(*role)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	texCache := texture.NewCache(texture.BuildIndex(cfg.TextureDir))

	scheme := palette.ArmorScheme
	logger.Log.Info("marine armor retexture pipeline",
		zap.String("source", cfg.SourceDir),
		zap.String("output", cfg.OutputDir),
		zap.Int("roles", len(jobs)),
		zap.String("armor", scheme.Name),
		zap.Float64s("plate_color", scheme.PlateColor[:]),
		zap.Float64("metallic", scheme.PlateMetallic),
		zap.Float64("roughness", scheme.PlateRoughness),
		zap.Bool("dry_run", *dryRun))

	start := time.Now()

	results := batch.Run(batch.Config{
		SourceDir:      cfg.SourceDir,
		OutputDir:      cfg.OutputDir,
		Textures:       texCache,
		Scheme:         scheme,
		MaxTextureSize: cfg.MaxTextureSize,
		Workers:        cfg.Workers,
		DryRun:         *dryRun,
	}, jobs)

	ok, failed := 0, 0
	for _, r := range results {
		if r.Success {
			ok++
			logger.Log.Info("retextured",
				zap.String("role", r.Key),
				zap.String("output", r.Output),
				zap.Int("diffuse", r.TintedDiffuse),
				zap.Int("emissive", r.TintedEmissive),
				zap.Int("kept", r.Kept))
		} else {
			failed++
			logger.Log.Error("failed",
				zap.String("role", r.Key),
				zap.String("error", r.Error))
		}
	}
	logger.Log.Info("done",
		zap.Int("succeeded", ok),
		zap.Int("failed", failed),
		zap.Duration("elapsed", time.Since(start)))

	if !*dryRun && ok > 0 {
		manifestPath := filepath.Join(cfg.OutputDir, "retexture_manifest.json")
		m := batch.BuildManifest(scheme, results, cfg.Level)
		if err := batch.WriteManifest(manifestPath, m); err != nil {
			logger.Log.Warn("manifest write failed", zap.Error(err))
		} else {
			logger.Log.Info("manifest written", zap.String("path", manifestPath))
		}
	}

	if failed > 0 {
		os.Exit(1)
	}
}
