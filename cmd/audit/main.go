package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"stellar-retexture/internal/audit"
	"stellar-retexture/internal/logger"
)

func main() {
	dir := flag.String("dir", "", "Directory with glTF/GLB files to audit")
	out := flag.String("out", "", "Write the JSON report to this path (default: stdout summary only)")
	logLevel := flag.String("log-level", "info", "Log level: debug, info, warn, error")
	flag.Parse()

	logger.Init(*logLevel, "")
	defer logger.Sync()

	if *dir == "" {
		fmt.Fprintln(os.Stderr, "Usage: audit -dir <models-dir> [-out report.json]")
		os.Exit(1)
	}

	reports, err := audit.Dir(*dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	counts := map[string]int{}
	for _, r := range reports {
		counts[r.Status]++
		switch r.Status {
		case audit.StatusOK:
			logger.Log.Info(r.Filename,
				zap.Int("verts", r.TotalVerts),
				zap.Int("faces", r.TotalFaces),
				zap.Float64("max_dim", r.MaxDimension))
		case audit.StatusWarning, audit.StatusTiny:
			logger.Log.Warn(r.Filename,
				zap.String("status", r.Status),
				zap.Strings("warnings", r.Warnings))
		default:
			logger.Log.Error(r.Filename,
				zap.String("status", r.Status),
				zap.String("error", r.Error))
		}
	}
	logger.Log.Info("audit complete",
		zap.Int("files", len(reports)),
		zap.Int("ok", counts[audit.StatusOK]),
		zap.Int("warnings", counts[audit.StatusWarning]+counts[audit.StatusTiny]),
		zap.Int("failed", counts[audit.StatusNoGeometry]+counts[audit.StatusImportFailed]))

	if *out != "" {
		if err := audit.WriteReport(*out, reports); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
		logger.Log.Info("report written", zap.String("path", *out))
	}

	if counts[audit.StatusNoGeometry]+counts[audit.StatusImportFailed] > 0 {
		os.Exit(1)
	}
}
